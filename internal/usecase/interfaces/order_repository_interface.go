package interfaces

import (
	"context"
	"errors"

	"printshop_billing/internal/domain/entities"
)

// ErrStatusConflict is returned by IOrderRepository.UpdateStatus when the
// compare-and-set on the current status fails: another writer moved the
// order first.
var ErrStatusConflict = errors.New("order status conflict")

// IOrderRepository abstracts DynamoDB persistence for Order and its
// append-only audit log.
//
// UpdateStatus performs the order update and the audit append in a single
// transaction, conditional on the order still being in the expected status.
// Audit records are insert-only; nothing ever updates or deletes them.
type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, expected, target entities.OrderStatus, audit entities.AuditRecord, paymentRef string) (entities.Order, error)
	ListAudit(ctx context.Context, orderID string) ([]entities.AuditRecord, error)
}
