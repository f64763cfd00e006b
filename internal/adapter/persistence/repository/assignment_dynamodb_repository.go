package repository

import (
	"context"
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
	defaultAssignmentsTableName = "maker_assignments"
	assignmentOrderIndexName    = "order_id-index"
)

type assignmentItem struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	MakerID    string `dynamodbav:"maker_id"`
	Status     string `dynamodbav:"status"`
	Reason     string `dynamodbav:"reason"`
	AssignedBy string `dynamodbav:"assigned_by"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// MakerAssignmentDynamoRepository persists MakerAssignment entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI order_id-index: PK order_id (string)
//
// Superseded and declined assignments stay in the table as history; only
// one pending or accepted assignment exists per order at a time, enforced
// by the use case via conditional supersede-then-create.

type MakerAssignmentDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IMakerAssignmentRepository = (*MakerAssignmentDynamoRepository)(nil)

func NewMakerAssignmentDynamoRepository(ddb database.DynamoDBAPI) *MakerAssignmentDynamoRepository {
	return &MakerAssignmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSIGNMENTS_TABLE", defaultAssignmentsTableName),
	}
}

func (r *MakerAssignmentDynamoRepository) Create(ctx context.Context, a entities.MakerAssignment) (entities.MakerAssignment, error) {
	av, err := attributevalue.MarshalMap(toAssignmentItem(a))
	if err != nil {
		return entities.MakerAssignment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.MakerAssignment{}, err
	}
	return a, nil
}

func (r *MakerAssignmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.MakerAssignment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MakerAssignment{}, err
	}
	if len(out.Item) == 0 {
		return entities.MakerAssignment{}, nil
	}

	var it assignmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MakerAssignment{}, err
	}
	return fromAssignmentItem(it), nil
}

// GetActiveByOrderID queries the order GSI and picks the newest pending or
// accepted assignment. The index is eventually consistent, which is fine
// here: the use case re-checks status with a conditional write before acting.
func (r *MakerAssignmentDynamoRepository) GetActiveByOrderID(ctx context.Context, orderID string) (entities.MakerAssignment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(assignmentOrderIndexName),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		FilterExpression:       aws.String("#status = :pending OR #status = :accepted"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
			"#status":   "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
			":pending":  &types.AttributeValueMemberS{Value: string(entities.AssignmentStatusPendingAcceptance)},
			":accepted": &types.AttributeValueMemberS{Value: string(entities.AssignmentStatusAccepted)},
		},
	})
	if err != nil {
		return entities.MakerAssignment{}, err
	}
	if len(out.Items) == 0 {
		return entities.MakerAssignment{}, nil
	}

	var latest entities.MakerAssignment
	for _, item := range out.Items {
		var it assignmentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return entities.MakerAssignment{}, err
		}
		a := fromAssignmentItem(it)
		if latest.ID == "" || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	return latest, nil
}

func (r *MakerAssignmentDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, target entities.AssignmentStatus) (entities.MakerAssignment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :target, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":target":     &types.AttributeValueMemberS{Value: string(target)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MakerAssignment{}, nil
		}
		return entities.MakerAssignment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.MakerAssignment{}, nil
	}

	var it assignmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.MakerAssignment{}, err
	}
	return fromAssignmentItem(it), nil
}

func toAssignmentItem(a entities.MakerAssignment) assignmentItem {
	return assignmentItem{
		ID:         a.ID,
		OrderID:    a.OrderID,
		MakerID:    a.MakerID,
		Status:     string(a.Status),
		Reason:     a.Reason,
		AssignedBy: a.AssignedBy,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAssignmentItem(it assignmentItem) entities.MakerAssignment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.MakerAssignment{
		ID:         it.ID,
		OrderID:    it.OrderID,
		MakerID:    it.MakerID,
		Status:     entities.AssignmentStatus(it.Status),
		Reason:     it.Reason,
		AssignedBy: it.AssignedBy,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
