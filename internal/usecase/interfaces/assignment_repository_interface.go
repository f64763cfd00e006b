package interfaces

import (
	"context"

	"printshop_billing/internal/domain/entities"
)

// IMakerAssignmentRepository abstracts DynamoDB persistence for
// MakerAssignment.
//
// GetActiveByOrderID returns the single pending or accepted assignment for an
// order, or a zero value when none is active. UpdateStatus is conditional on
// the expected current status and returns a zero value when the condition
// fails.
type IMakerAssignmentRepository interface {
	Create(ctx context.Context, a entities.MakerAssignment) (entities.MakerAssignment, error)
	GetByID(ctx context.Context, id string) (entities.MakerAssignment, error)
	GetActiveByOrderID(ctx context.Context, orderID string) (entities.MakerAssignment, error)
	UpdateStatus(ctx context.Context, id string, expected, target entities.AssignmentStatus) (entities.MakerAssignment, error)
}
