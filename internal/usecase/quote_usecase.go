package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"printshop_billing/internal/domain/entities"
	"printshop_billing/internal/domain/pricing"
	"printshop_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrQuoteExpired          = errors.New("quote expired")
	ErrQuoteAlreadyConverted = errors.New("quote already converted")
)

// DefaultQuoteTTL applies when the caller does not ask for a specific
// validity window.
const DefaultQuoteTTL = 72 * time.Hour

// IQuoteUseCase exposes quote pricing and lifecycle operations.
//
// ComputeQuote is the shared calculator used by both the preview path and
// the authoritative save path; there is no second client-side pricing
// implementation to drift from it.
type IQuoteUseCase interface {
	ComputeQuote(ctx context.Context, req entities.QuoteRequest) (entities.QuoteBreakdown, error)
	SaveQuote(ctx context.Context, req entities.QuoteRequest, ttl time.Duration) (entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	ConvertQuoteToOrder(ctx context.Context, quoteID, actorID string) (entities.Order, error)
}

type QuoteUseCase struct {
	quotes     interfaces.IQuoteRepository
	rates      interfaces.IRateConfigRepository
	defaultTTL time.Duration
	nowFunc    func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, rates interfaces.IRateConfigRepository, defaultTTL time.Duration) *QuoteUseCase {
	if defaultTTL <= 0 {
		defaultTTL = DefaultQuoteTTL
	}
	return &QuoteUseCase{
		quotes:     quotes,
		rates:      rates,
		defaultTTL: defaultTTL,
		nowFunc:    time.Now,
	}
}

// currentRates loads the published rate config, falling back to the built-in
// seed when the store has never been written.
func (u *QuoteUseCase) currentRates(ctx context.Context) (entities.RateConfig, error) {
	rc, err := u.rates.GetCurrent(ctx)
	if err != nil {
		return entities.RateConfig{}, err
	}
	if rc.Version == "" {
		log.Printf("[quote][usecase] no published rate config; using seed defaults")
		rc = entities.DefaultRateConfig()
	}
	return rc, nil
}

func (u *QuoteUseCase) ComputeQuote(ctx context.Context, req entities.QuoteRequest) (entities.QuoteBreakdown, error) {
	rc, err := u.currentRates(ctx)
	if err != nil {
		return entities.QuoteBreakdown{}, err
	}
	return pricing.Compute(req, rc)
}

func (u *QuoteUseCase) SaveQuote(ctx context.Context, req entities.QuoteRequest, ttl time.Duration) (entities.Quote, error) {
	rc, err := u.currentRates(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	breakdown, err := pricing.Compute(req, rc)
	if err != nil {
		return entities.Quote{}, err
	}

	if ttl <= 0 {
		ttl = u.defaultTTL
	}
	now := u.nowFunc().UTC()
	q := entities.Quote{
		ID:        uuid.NewString(),
		Request:   req,
		Breakdown: breakdown,
		Status:    entities.QuoteStatusSaved,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	return u.quotes.Create(ctx, q)
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// ConvertQuoteToOrder turns a saved quote into an order in awaiting_payment.
//
// Expiry is checked here, at time of use, so a quote displayed just before
// its deadline cannot be committed just after it. Conversion is conditional
// in the store: of two concurrent checkouts exactly one wins, the other
// observes ErrQuoteAlreadyConverted.
func (u *QuoteUseCase) ConvertQuoteToOrder(ctx context.Context, quoteID, actorID string) (entities.Order, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Order{}, ErrInvalidQuoteID
	}
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.Order{}, ErrInvalidActorID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Order{}, err
	}
	if q.ID == "" {
		return entities.Order{}, ErrQuoteNotFound
	}
	if q.Status == entities.QuoteStatusConverted {
		return entities.Order{}, ErrQuoteAlreadyConverted
	}

	now := u.nowFunc().UTC()
	if q.ExpiredAt(now) {
		return entities.Order{}, ErrQuoteExpired
	}

	order := entities.Order{
		ID:        uuid.NewString(),
		QuoteID:   q.ID,
		Status:    entities.OrderStatusAwaitingPayment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	audit := entities.AuditRecord{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Actor:     actorID,
		From:      "",
		To:        entities.OrderStatusAwaitingPayment,
		Reason:    "quote accepted at checkout",
		Timestamp: now,
	}

	created, err := u.quotes.ConvertToOrder(ctx, q.ID, order, audit)
	if err != nil {
		return entities.Order{}, err
	}
	if created.ID == "" {
		// Lost the conditional write: another checkout converted first.
		return entities.Order{}, ErrQuoteAlreadyConverted
	}
	log.Printf("[quote][usecase] converted quote_id=%s order_id=%s actor=%s", q.ID, created.ID, actorID)
	return created, nil
}
