package repository

import (
	"context"
	"reflect"
	"testing"
	"time"

	"printshop_billing/internal/domain/entities"
)

func testQuote(id string) entities.Quote {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	return entities.Quote{
		ID: id,
		Request: entities.QuoteRequest{
			Material:      entities.MaterialPLAStandard,
			Grams:         120,
			Quantity:      2,
			JobSize:       entities.JobSizeSmall,
			DeliverySpeed: entities.DeliveryStandard,
			Color:         "black",
		},
		Breakdown: entities.QuoteBreakdown{
			LineItems: []entities.LineItem{
				{Label: "Platform fee", Amount: 2.00, Type: entities.LineItemFee},
				{Label: "Filament", Amount: 21.60, Type: entities.LineItemFee, Details: "240g PLA_STANDARD"},
			},
			Subtotal:       23.60,
			Total:          23.60,
			TotalCredits:   94,
			MemberTotal:    21.44,
			EstimatedHours: 4.37,
			RateVersion:    "2024-01-seed",
		},
		Status:    entities.QuoteStatusSaved,
		CreatedAt: now,
		ExpiresAt: now.Add(72 * time.Hour),
	}
}

func testOrderForQuote(q entities.Quote) (entities.Order, entities.AuditRecord) {
	now := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:        "order-1",
		QuoteID:   q.ID,
		Status:    entities.OrderStatusAwaitingPayment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	audit := entities.AuditRecord{
		ID:        "audit-1",
		OrderID:   order.ID,
		Actor:     "user-42",
		From:      entities.OrderStatusAwaitingPayment,
		To:        entities.OrderStatusAwaitingPayment,
		Reason:    "quote accepted at checkout",
		Timestamp: now,
	}
	return order, audit
}

func TestQuoteRepository_CreateAndGet(t *testing.T) {
	db := newFakeDynamo()
	repo := NewQuoteDynamoRepository(db)
	ctx := context.Background()

	q := testQuote("quote-1")
	if _, err := repo.Create(ctx, q); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "quote-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !reflect.DeepEqual(got, q) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, q)
	}
}

func TestQuoteRepository_CreateDuplicateFails(t *testing.T) {
	db := newFakeDynamo()
	repo := NewQuoteDynamoRepository(db)
	ctx := context.Background()

	q := testQuote("quote-1")
	if _, err := repo.Create(ctx, q); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := repo.Create(ctx, q); err == nil {
		t.Error("expected error creating duplicate quote id")
	}
}

func TestQuoteRepository_GetMissingReturnsZero(t *testing.T) {
	repo := NewQuoteDynamoRepository(newFakeDynamo())

	got, err := repo.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero quote, got %+v", got)
	}
}

func TestQuoteRepository_ConvertToOrder(t *testing.T) {
	db := newFakeDynamo()
	quotes := NewQuoteDynamoRepository(db)
	orders := NewOrderDynamoRepository(db)
	ctx := context.Background()

	q := testQuote("quote-1")
	if _, err := quotes.Create(ctx, q); err != nil {
		t.Fatalf("Create: %v", err)
	}
	order, audit := testOrderForQuote(q)

	got, err := quotes.ConvertToOrder(ctx, q.ID, order, audit)
	if err != nil {
		t.Fatalf("ConvertToOrder: %v", err)
	}
	if got.ID != order.ID {
		t.Fatalf("expected order %q, got %+v", order.ID, got)
	}

	converted, err := quotes.GetByID(ctx, q.ID)
	if err != nil {
		t.Fatalf("GetByID after convert: %v", err)
	}
	if converted.Status != entities.QuoteStatusConverted {
		t.Errorf("quote status = %q, want converted", converted.Status)
	}
	if converted.OrderID != order.ID {
		t.Errorf("quote order_id = %q, want %q", converted.OrderID, order.ID)
	}

	persisted, err := orders.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("order GetByID: %v", err)
	}
	if persisted.Status != entities.OrderStatusAwaitingPayment || persisted.QuoteID != q.ID {
		t.Errorf("unexpected persisted order %+v", persisted)
	}

	trail, err := orders.ListAudit(ctx, order.ID)
	if err != nil {
		t.Fatalf("ListAudit: %v", err)
	}
	if len(trail) != 1 || trail[0].Reason != audit.Reason {
		t.Errorf("expected conversion audit record, got %+v", trail)
	}
}

func TestQuoteRepository_ConvertTwiceLosesRace(t *testing.T) {
	db := newFakeDynamo()
	quotes := NewQuoteDynamoRepository(db)
	ctx := context.Background()

	q := testQuote("quote-1")
	if _, err := quotes.Create(ctx, q); err != nil {
		t.Fatalf("Create: %v", err)
	}
	order, audit := testOrderForQuote(q)
	if _, err := quotes.ConvertToOrder(ctx, q.ID, order, audit); err != nil {
		t.Fatalf("first ConvertToOrder: %v", err)
	}

	second := order
	second.ID = "order-2"
	got, err := quotes.ConvertToOrder(ctx, q.ID, second, audit)
	if err != nil {
		t.Fatalf("second ConvertToOrder: %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero order for lost race, got %+v", got)
	}

	// the losing order must not have been created
	orders := NewOrderDynamoRepository(db)
	leftover, err := orders.GetByID(ctx, "order-2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if leftover.ID != "" {
		t.Errorf("losing order was persisted: %+v", leftover)
	}
}
