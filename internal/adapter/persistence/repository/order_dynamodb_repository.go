package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
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
	defaultOrdersTableName     = "orders"
	defaultOrderAuditTableName = "order_audit"
)

type orderItem struct {
	ID                 string `dynamodbav:"id"`
	QuoteID            string `dynamodbav:"quote_id"`
	Status             string `dynamodbav:"status"`
	PaymentRef         string `dynamodbav:"payment_ref,omitempty"`
	PaymentConfirmedAt string `dynamodbav:"payment_confirmed_at,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// auditItem keys on order_id with a timestamp-prefixed sort key, so a Query
// on the partition returns an order's history already in chronological order.
// The record ID suffix keeps keys unique when two writes share a timestamp.
type auditItem struct {
	OrderID    string `dynamodbav:"order_id"`
	SortKey    string `dynamodbav:"sk"`
	ID         string `dynamodbav:"id"`
	Actor      string `dynamodbav:"actor"`
	FromStatus string `dynamodbav:"from_status"`
	ToStatus   string `dynamodbav:"to_status"`
	Reason     string `dynamodbav:"reason"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities and their audit trail in
// DynamoDB.
//
// Table requirements:
//   - orders: PK id (string)
//   - order_audit: PK order_id (string), SK sk (string)
//
// Status updates are compare-and-set on the current status and write the
// matching audit record in the same transaction. The audit table is
// insert-only.

type OrderDynamoRepository struct {
	ddb            database.DynamoDBAPI
	tableName      string
	auditTableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb database.DynamoDBAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		auditTableName: getenvDefault("ORDER_AUDIT_TABLE", defaultOrderAuditTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// UpdateStatus moves the order to target and appends an audit record in one
// transaction, conditional on the order still being in the expected status.
// The first transition to paid also stamps payment_confirmed_at; the stamp
// is never overwritten on later writes.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, orderID string, expected, target entities.OrderStatus, audit entities.AuditRecord, paymentRef string) (entities.Order, error) {
	now := audit.Timestamp.UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :target, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
		":target":     &types.AttributeValueMemberS{Value: string(target)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}

	if target == entities.OrderStatusPaid {
		updateExpr += ", #payment_confirmed_at = if_not_exists(#payment_confirmed_at, :confirmed_at)"
		names["#payment_confirmed_at"] = "payment_confirmed_at"
		values[":confirmed_at"] = &types.AttributeValueMemberS{Value: now}
		if paymentRef != "" {
			updateExpr += ", #payment_ref = :payment_ref"
			names["#payment_ref"] = "payment_ref"
			values[":payment_ref"] = &types.AttributeValueMemberS{Value: paymentRef}
		}
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
						"id": &types.AttributeValueMemberS{Value: orderID},
					},
					ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
					UpdateExpression:          aws.String(updateExpr),
					ExpressionAttributeNames:  names,
					ExpressionAttributeValues: values,
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
			return entities.Order{}, interfaces.ErrStatusConflict
		}
		return entities.Order{}, err
	}

	return r.GetByID(ctx, orderID)
}

func (r *OrderDynamoRepository) ListAudit(ctx context.Context, orderID string) ([]entities.AuditRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.auditTableName),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.AuditRecord, 0, len(out.Items))
	for _, item := range out.Items {
		var it auditItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		records = append(records, fromAuditItem(it))
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:         o.ID,
		QuoteID:    o.QuoteID,
		Status:     string(o.Status),
		PaymentRef: o.PaymentRef,
		CreatedAt:  o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.PaymentConfirmedAt != nil {
		it.PaymentConfirmedAt = o.PaymentConfirmedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	o := entities.Order{
		ID:         it.ID,
		QuoteID:    it.QuoteID,
		Status:     entities.OrderStatus(it.Status),
		PaymentRef: it.PaymentRef,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	if it.PaymentConfirmedAt != "" {
		confirmedAt, err := time.Parse(time.RFC3339Nano, it.PaymentConfirmedAt)
		if err == nil {
			o.PaymentConfirmedAt = &confirmedAt
		}
	}
	return o
}

func toAuditItem(a entities.AuditRecord) auditItem {
	ts := a.Timestamp.UTC().Format(time.RFC3339Nano)
	return auditItem{
		OrderID:    a.OrderID,
		SortKey:    fmt.Sprintf("%s#%s", ts, a.ID),
		ID:         a.ID,
		Actor:      a.Actor,
		FromStatus: string(a.From),
		ToStatus:   string(a.To),
		Reason:     a.Reason,
		CreatedAt:  ts,
	}
}

func fromAuditItem(it auditItem) entities.AuditRecord {
	ts, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.AuditRecord{
		ID:        it.ID,
		OrderID:   it.OrderID,
		Actor:     it.Actor,
		From:      entities.OrderStatus(it.FromStatus),
		To:        entities.OrderStatus(it.ToStatus),
		Reason:    it.Reason,
		Timestamp: ts,
	}
}
