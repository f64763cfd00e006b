package interfaces

import (
	"context"

	"printshop_billing/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Not-found lookups return a zero-value Quote, not an error. ConvertToOrder
// is transactional: it flips the quote to converted (conditional on it still
// being saved), creates the order and writes the initial audit record in one
// atomic write, returning a zero-value Order if the condition lost the race.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ConvertToOrder(ctx context.Context, quoteID string, order entities.Order, audit entities.AuditRecord) (entities.Order, error)
}
