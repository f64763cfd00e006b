package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"printshop_billing/internal/domain/entities"
	"printshop_billing/internal/domain/pricing"
	mock_interfaces "printshop_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validQuoteRequest() entities.QuoteRequest {
	return entities.QuoteRequest{
		Material:      entities.MaterialPLAStandard,
		Grams:         50,
		Quantity:      1,
		JobSize:       entities.JobSizeSmall,
		DeliverySpeed: entities.DeliveryStandard,
	}
}

func TestQuoteUseCase_ComputeQuote(t *testing.T) {
	t.Run("uses published rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rates := mock_interfaces.NewMockIRateConfigRepository(ctrl)
		uc := NewQuoteUseCase(nil, rates, 0)

		published := entities.DefaultRateConfig()
		published.Version = "2026-03"
		rates.EXPECT().GetCurrent(gomock.Any()).Return(published, nil)

		bd, err := uc.ComputeQuote(context.Background(), validQuoteRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bd.RateVersion != "2026-03" {
			t.Fatalf("expected rate version 2026-03, got %s", bd.RateVersion)
		}
	})

	t.Run("falls back to seed rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rates := mock_interfaces.NewMockIRateConfigRepository(ctrl)
		uc := NewQuoteUseCase(nil, rates, 0)

		rates.EXPECT().GetCurrent(gomock.Any()).Return(entities.RateConfig{}, nil)

		bd, err := uc.ComputeQuote(context.Background(), validQuoteRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bd.RateVersion != entities.DefaultRateConfig().Version {
			t.Fatalf("expected seed rate version, got %s", bd.RateVersion)
		}
	})

	t.Run("pricing error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rates := mock_interfaces.NewMockIRateConfigRepository(ctrl)
		uc := NewQuoteUseCase(nil, rates, 0)

		rates.EXPECT().GetCurrent(gomock.Any()).Return(entities.DefaultRateConfig(), nil)

		req := validQuoteRequest()
		req.Grams = 0
		_, err := uc.ComputeQuote(context.Background(), req)
		if !errors.Is(err, pricing.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestQuoteUseCase_SaveQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	rates := mock_interfaces.NewMockIRateConfigRepository(ctrl)
	uc := NewQuoteUseCase(quotes, rates, 48*time.Hour)
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	uc.nowFunc = func() time.Time { return now }

	rates.EXPECT().GetCurrent(gomock.Any()).Return(entities.DefaultRateConfig(), nil)
	quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			if q.ID == "" || q.Status != entities.QuoteStatusSaved {
				t.Fatalf("unexpected quote: %+v", q)
			}
			if !q.CreatedAt.Equal(now) || !q.ExpiresAt.Equal(now.Add(48*time.Hour)) {
				t.Fatalf("unexpected quote window: created=%v expires=%v", q.CreatedAt, q.ExpiresAt)
			}
			if q.Breakdown.RateVersion == "" || q.Breakdown.Total <= 0 {
				t.Fatalf("breakdown not frozen on quote: %+v", q.Breakdown)
			}
			return q, nil
		})

	saved, err := uc.SaveQuote(context.Background(), validQuoteRequest(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected generated quote id")
	}
}

func TestQuoteUseCase_ConvertQuoteToOrder(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	savedQuote := func() entities.Quote {
		return entities.Quote{
			ID:        "quote-1",
			Status:    entities.QuoteStatusSaved,
			CreatedAt: now.Add(-time.Hour),
			ExpiresAt: now.Add(time.Hour),
		}
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(quotes, nil, 0)
		uc.nowFunc = func() time.Time { return now }

		quotes.EXPECT().GetByID(gomock.Any(), "quote-1").Return(entities.Quote{}, nil)

		_, err := uc.ConvertQuoteToOrder(context.Background(), "quote-1", "user-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("already converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(quotes, nil, 0)
		uc.nowFunc = func() time.Time { return now }

		q := savedQuote()
		q.Status = entities.QuoteStatusConverted
		q.OrderID = "order-9"
		quotes.EXPECT().GetByID(gomock.Any(), "quote-1").Return(q, nil)

		_, err := uc.ConvertQuoteToOrder(context.Background(), "quote-1", "user-1")
		if !errors.Is(err, ErrQuoteAlreadyConverted) {
			t.Fatalf("expected ErrQuoteAlreadyConverted, got %v", err)
		}
	})

	t.Run("expired at time of use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(quotes, nil, 0)
		uc.nowFunc = func() time.Time { return now.Add(3 * time.Hour) }

		quotes.EXPECT().GetByID(gomock.Any(), "quote-1").Return(savedQuote(), nil)

		_, err := uc.ConvertQuoteToOrder(context.Background(), "quote-1", "user-1")
		if !errors.Is(err, ErrQuoteExpired) {
			t.Fatalf("expected ErrQuoteExpired, got %v", err)
		}
	})

	t.Run("success creates awaiting_payment order with audit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(quotes, nil, 0)
		uc.nowFunc = func() time.Time { return now }

		quotes.EXPECT().GetByID(gomock.Any(), "quote-1").Return(savedQuote(), nil)
		quotes.EXPECT().ConvertToOrder(gomock.Any(), "quote-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, quoteID string, order entities.Order, audit entities.AuditRecord) (entities.Order, error) {
				if order.ID == "" || order.QuoteID != "quote-1" || order.Status != entities.OrderStatusAwaitingPayment {
					t.Fatalf("unexpected order: %+v", order)
				}
				if audit.OrderID != order.ID || audit.To != entities.OrderStatusAwaitingPayment || audit.Actor != "user-1" {
					t.Fatalf("unexpected audit: %+v", audit)
				}
				return order, nil
			})

		order, err := uc.ConvertQuoteToOrder(context.Background(), "quote-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != entities.OrderStatusAwaitingPayment {
			t.Fatalf("expected awaiting_payment, got %s", order.Status)
		}
	})

	t.Run("conditional loser maps to already converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(quotes, nil, 0)
		uc.nowFunc = func() time.Time { return now }

		quotes.EXPECT().GetByID(gomock.Any(), "quote-1").Return(savedQuote(), nil)
		quotes.EXPECT().ConvertToOrder(gomock.Any(), "quote-1", gomock.Any(), gomock.Any()).Return(entities.Order{}, nil)

		_, err := uc.ConvertQuoteToOrder(context.Background(), "quote-1", "user-1")
		if !errors.Is(err, ErrQuoteAlreadyConverted) {
			t.Fatalf("expected ErrQuoteAlreadyConverted, got %v", err)
		}
	})
}
