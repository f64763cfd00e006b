package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"printshop_billing/internal/domain/entities"
	"printshop_billing/internal/usecase/interfaces"
)

func seedOrder(t *testing.T, db *fakeDynamo, o entities.Order) {
	t.Helper()
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		t.Fatalf("marshal order: %v", err)
	}
	db.table(aws.String(defaultOrdersTableName))[o.ID] = av
}

func testOrder(status entities.OrderStatus) entities.Order {
	now := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	return entities.Order{
		ID:        "order-1",
		QuoteID:   "quote-1",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOrderRepository_UpdateStatusToPaid(t *testing.T) {
	db := newFakeDynamo()
	repo := NewOrderDynamoRepository(db)
	ctx := context.Background()

	seedOrder(t, db, testOrder(entities.OrderStatusAwaitingPayment))

	paidAt := time.Date(2024, 3, 11, 10, 30, 0, 0, time.UTC)
	audit := entities.AuditRecord{
		ID:        "audit-2",
		OrderID:   "order-1",
		Actor:     "system",
		From:      entities.OrderStatusAwaitingPayment,
		To:        entities.OrderStatusPaid,
		Reason:    "payment confirmed by provider",
		Timestamp: paidAt,
	}

	got, err := repo.UpdateStatus(ctx, "order-1", entities.OrderStatusAwaitingPayment, entities.OrderStatusPaid, audit, "stripe_ch_123")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if got.Status != entities.OrderStatusPaid {
		t.Errorf("status = %q, want paid", got.Status)
	}
	if got.PaymentRef != "stripe_ch_123" {
		t.Errorf("payment_ref = %q, want stripe_ch_123", got.PaymentRef)
	}
	if got.PaymentConfirmedAt == nil || !got.PaymentConfirmedAt.Equal(paidAt) {
		t.Errorf("payment_confirmed_at = %v, want %v", got.PaymentConfirmedAt, paidAt)
	}

	trail, err := repo.ListAudit(ctx, "order-1")
	if err != nil {
		t.Fatalf("ListAudit: %v", err)
	}
	if len(trail) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(trail))
	}
	if trail[0].From != entities.OrderStatusAwaitingPayment || trail[0].To != entities.OrderStatusPaid {
		t.Errorf("unexpected audit record %+v", trail[0])
	}
}

func TestOrderRepository_UpdateStatusConflict(t *testing.T) {
	db := newFakeDynamo()
	repo := NewOrderDynamoRepository(db)
	ctx := context.Background()

	seedOrder(t, db, testOrder(entities.OrderStatusPaid))

	audit := entities.AuditRecord{
		ID:        "audit-3",
		OrderID:   "order-1",
		Actor:     "system",
		From:      entities.OrderStatusAwaitingPayment,
		To:        entities.OrderStatusPaid,
		Reason:    "payment confirmed by provider",
		Timestamp: time.Now().UTC(),
	}

	_, err := repo.UpdateStatus(ctx, "order-1", entities.OrderStatusAwaitingPayment, entities.OrderStatusPaid, audit, "")
	if !errors.Is(err, interfaces.ErrStatusConflict) {
		t.Fatalf("expected ErrStatusConflict, got %v", err)
	}

	// conflict must not leak an audit record
	trail, err := repo.ListAudit(ctx, "order-1")
	if err != nil {
		t.Fatalf("ListAudit: %v", err)
	}
	if len(trail) != 0 {
		t.Errorf("expected no audit records after failed CAS, got %+v", trail)
	}
}

func TestOrderRepository_PaymentConfirmedAtSetOnce(t *testing.T) {
	db := newFakeDynamo()
	repo := NewOrderDynamoRepository(db)
	ctx := context.Background()

	// contrived: an awaiting_payment order that already carries a payment
	// stamp. Re-paying must not overwrite the original stamp.
	firstPaid := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	order := testOrder(entities.OrderStatusAwaitingPayment)
	order.PaymentConfirmedAt = &firstPaid
	seedOrder(t, db, order)

	audit := entities.AuditRecord{
		ID:        "audit-4",
		OrderID:   order.ID,
		Actor:     "system",
		From:      entities.OrderStatusAwaitingPayment,
		To:        entities.OrderStatusPaid,
		Reason:    "payment confirmed by provider",
		Timestamp: firstPaid.Add(time.Hour),
	}
	got, err := repo.UpdateStatus(ctx, order.ID, entities.OrderStatusAwaitingPayment, entities.OrderStatusPaid, audit, "")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if got.PaymentConfirmedAt == nil || !got.PaymentConfirmedAt.Equal(firstPaid) {
		t.Errorf("payment_confirmed_at = %v, want original %v", got.PaymentConfirmedAt, firstPaid)
	}
}

func TestOrderRepository_ListAuditChronological(t *testing.T) {
	db := newFakeDynamo()
	repo := NewOrderDynamoRepository(db)
	ctx := context.Background()

	seedOrder(t, db, testOrder(entities.OrderStatusAwaitingPayment))
	base := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)

	steps := []struct {
		from, to entities.OrderStatus
		ref      string
	}{
		{entities.OrderStatusAwaitingPayment, entities.OrderStatusPaid, "stripe_ch_9"},
		{entities.OrderStatusPaid, entities.OrderStatusInProduction, ""},
		{entities.OrderStatusInProduction, entities.OrderStatusShipped, ""},
	}
	for i, s := range steps {
		audit := entities.AuditRecord{
			ID:        string(rune('a' + i)),
			OrderID:   "order-1",
			Actor:     "admin-7",
			From:      s.from,
			To:        s.to,
			Reason:    "step",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := repo.UpdateStatus(ctx, "order-1", s.from, s.to, audit, s.ref); err != nil {
			t.Fatalf("UpdateStatus step %d: %v", i, err)
		}
	}

	trail, err := repo.ListAudit(ctx, "order-1")
	if err != nil {
		t.Fatalf("ListAudit: %v", err)
	}
	if len(trail) != len(steps) {
		t.Fatalf("expected %d records, got %d", len(steps), len(trail))
	}
	for i, s := range steps {
		if trail[i].From != s.from || trail[i].To != s.to {
			t.Errorf("record %d = %s->%s, want %s->%s", i, trail[i].From, trail[i].To, s.from, s.to)
		}
	}
}

func TestOrderRepository_GetMissingReturnsZero(t *testing.T) {
	repo := NewOrderDynamoRepository(newFakeDynamo())

	got, err := repo.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero order, got %+v", got)
	}
}
