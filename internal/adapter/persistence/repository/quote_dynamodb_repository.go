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

const defaultQuotesTableName = "quotes"

// quoteItem is the DynamoDB shape of a Quote. The request and breakdown are
// stored as JSON blobs: they are written once, read whole, and never queried
// by attribute, so flattening them into item attributes buys nothing.
type quoteItem struct {
	ID            string `dynamodbav:"id"`
	Status        string `dynamodbav:"status"`
	RequestJSON   string `dynamodbav:"request_json"`
	BreakdownJSON string `dynamodbav:"breakdown_json"`
	RateVersion   string `dynamodbav:"rate_version"`
	OrderID       string `dynamodbav:"order_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	ExpiresAt     string `dynamodbav:"expires_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Conversion to an order touches three tables (quotes, orders, order audit)
// in one TransactWriteItems call, so a quote can never be converted twice
// and an order can never exist without its converted quote and its first
// audit record.

type QuoteDynamoRepository struct {
	ddb             database.DynamoDBAPI
	tableName       string
	ordersTableName string
	auditTableName  string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb database.DynamoDBAPI) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		ordersTableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		auditTableName:  getenvDefault("ORDER_AUDIT_TABLE", defaultOrderAuditTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

// ConvertToOrder atomically flips the quote from saved to converted, creates
// the order and appends the first audit record. The conditional update on
// the quote status makes concurrent checkouts of the same quote resolve to
// exactly one winner; losers get a zero-value Order back.
func (r *QuoteDynamoRepository) ConvertToOrder(ctx context.Context, quoteID string, order entities.Order, audit entities.AuditRecord) (entities.Order, error) {
	orderAV, err := attributevalue.MarshalMap(toOrderItem(order))
	if err != nil {
		return entities.Order{}, err
	}
	auditAV, err := attributevalue.MarshalMap(toAuditItem(audit))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: quoteID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :saved"),
					UpdateExpression:    aws.String("SET #status = :converted, #order_id = :order_id"),
					ExpressionAttributeNames: map[string]string{
						"#id":       "id",
						"#status":   "status",
						"#order_id": "order_id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":saved":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusSaved)},
						":converted": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusConverted)},
						":order_id":  &types.AttributeValueMemberS{Value: order.ID},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.ordersTableName),
					Item:                orderAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.auditTableName),
					Item:      auditAV,
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return order, nil
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	reqJSON, err := json.Marshal(q.Request)
	if err != nil {
		return quoteItem{}, err
	}
	bdJSON, err := json.Marshal(q.Breakdown)
	if err != nil {
		return quoteItem{}, err
	}
	return quoteItem{
		ID:            q.ID,
		Status:        string(q.Status),
		RequestJSON:   string(reqJSON),
		BreakdownJSON: string(bdJSON),
		RateVersion:   q.Breakdown.RateVersion,
		OrderID:       q.OrderID,
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:     q.ExpiresAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	var req entities.QuoteRequest
	if err := json.Unmarshal([]byte(it.RequestJSON), &req); err != nil {
		return entities.Quote{}, err
	}
	var bd entities.QuoteBreakdown
	if err := json.Unmarshal([]byte(it.BreakdownJSON), &bd); err != nil {
		return entities.Quote{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	return entities.Quote{
		ID:        it.ID,
		Request:   req,
		Breakdown: bd,
		Status:    entities.QuoteStatus(it.Status),
		OrderID:   it.OrderID,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}, nil
}
