package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"printshop_billing/internal/domain/entities"
	"printshop_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"printshop_billing/internal/infrastructure/database"
)

const (
	defaultRatesTableName = "rate_configs"

	// currentPointerKey is a reserved item in the rates table whose
	// target_version attribute names the version new quotes price against.
	currentPointerKey = "__current__"
)

type rateConfigItem struct {
	Version    string `dynamodbav:"version"`
	ConfigJSON string `dynamodbav:"config_json"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type currentPointerItem struct {
	Version       string `dynamodbav:"version"`
	TargetVersion string `dynamodbav:"target_version"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// RateConfigDynamoRepository persists versioned rate tables in DynamoDB.
//
// Table requirements:
//   - PK: version (string)
//
// Published versions are write-once: Put is conditional on the version not
// existing yet, so the figures a saved quote froze can never drift under it.
// Switching the active version only rewrites the pointer item.

type RateConfigDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IRateConfigRepository = (*RateConfigDynamoRepository)(nil)

func NewRateConfigDynamoRepository(ddb database.DynamoDBAPI) *RateConfigDynamoRepository {
	return &RateConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATES_TABLE", defaultRatesTableName),
	}
}

func (r *RateConfigDynamoRepository) Put(ctx context.Context, rc entities.RateConfig) (entities.RateConfig, error) {
	cfgJSON, err := json.Marshal(rc)
	if err != nil {
		return entities.RateConfig{}, err
	}
	av, err := attributevalue.MarshalMap(rateConfigItem{
		Version:    rc.Version,
		ConfigJSON: string(cfgJSON),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.RateConfig{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#version)"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RateConfig{}, nil
		}
		return entities.RateConfig{}, err
	}
	return rc, nil
}

func (r *RateConfigDynamoRepository) GetByVersion(ctx context.Context, version string) (entities.RateConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"version": &types.AttributeValueMemberS{Value: version},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RateConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.RateConfig{}, nil
	}

	var it rateConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RateConfig{}, err
	}

	var rc entities.RateConfig
	if err := json.Unmarshal([]byte(it.ConfigJSON), &rc); err != nil {
		return entities.RateConfig{}, err
	}
	return rc, nil
}

func (r *RateConfigDynamoRepository) GetCurrent(ctx context.Context) (entities.RateConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"version": &types.AttributeValueMemberS{Value: currentPointerKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RateConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.RateConfig{}, nil
	}

	var ptr currentPointerItem
	if err := attributevalue.UnmarshalMap(out.Item, &ptr); err != nil {
		return entities.RateConfig{}, err
	}
	if ptr.TargetVersion == "" {
		return entities.RateConfig{}, nil
	}
	return r.GetByVersion(ctx, ptr.TargetVersion)
}

func (r *RateConfigDynamoRepository) SetCurrent(ctx context.Context, version string) error {
	av, err := attributevalue.MarshalMap(currentPointerItem{
		Version:       currentPointerKey,
		TargetVersion: version,
		UpdatedAt:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
