package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"printshop_billing/internal/domain/entities"
	"printshop_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAssignmentID  = errors.New("invalid assignment id")
	ErrInvalidMakerID       = errors.New("invalid maker id")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrAssignmentNotPending = errors.New("assignment not pending")
	ErrMakerMismatch        = errors.New("assignment belongs to another maker")
	ErrOrderNotPaid         = errors.New("order not paid")
)

// IAssignmentUseCase manages which maker fulfils a paid order.
//
// Assignment never changes the order status: the order reflects payment and
// production truth, the assignment reflects who. File access is gated on the
// maker's explicit acceptance.
type IAssignmentUseCase interface {
	AssignMaker(ctx context.Context, orderID, makerID, reason, actorID string) (entities.MakerAssignment, error)
	AcceptAssignment(ctx context.Context, assignmentID, makerID string) (entities.MakerAssignment, error)
	DeclineAssignment(ctx context.Context, assignmentID, makerID string) (entities.MakerAssignment, error)
	GetAssignment(ctx context.Context, assignmentID string) (entities.MakerAssignment, error)
}

type AssignmentUseCase struct {
	assignments interfaces.IMakerAssignmentRepository
	orders      interfaces.IOrderRepository
	nowFunc     func() time.Time
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(assignments interfaces.IMakerAssignmentRepository, orders interfaces.IOrderRepository) *AssignmentUseCase {
	return &AssignmentUseCase{assignments: assignments, orders: orders, nowFunc: time.Now}
}

// AssignMaker creates a pending assignment for a paid order. An existing
// active assignment is superseded, not deleted; the history stays queryable.
func (u *AssignmentUseCase) AssignMaker(ctx context.Context, orderID, makerID, reason, actorID string) (entities.MakerAssignment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.MakerAssignment{}, ErrInvalidOrderID
	}
	makerID = strings.TrimSpace(makerID)
	if makerID == "" {
		return entities.MakerAssignment{}, ErrInvalidMakerID
	}
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.MakerAssignment{}, ErrInvalidActorID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.MakerAssignment{}, ErrMissingReason
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.MakerAssignment{}, err
	}
	if o.ID == "" {
		return entities.MakerAssignment{}, ErrOrderNotFound
	}
	if o.Status != entities.OrderStatusPaid {
		return entities.MakerAssignment{}, ErrOrderNotPaid
	}

	if active, err := u.assignments.GetActiveByOrderID(ctx, orderID); err != nil {
		return entities.MakerAssignment{}, err
	} else if active.ID != "" {
		superseded, err := u.assignments.UpdateStatus(ctx, active.ID, active.Status, entities.AssignmentStatusSuperseded)
		if err != nil {
			return entities.MakerAssignment{}, err
		}
		if superseded.ID == "" {
			// The active assignment changed underneath us; the caller can
			// retry against the fresh state.
			return entities.MakerAssignment{}, ErrAssignmentNotPending
		}
		log.Printf("[assignment][usecase] superseded assignment_id=%s order_id=%s", active.ID, orderID)
	}

	now := u.nowFunc().UTC()
	a := entities.MakerAssignment{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		MakerID:    makerID,
		Status:     entities.AssignmentStatusPendingAcceptance,
		Reason:     reason,
		AssignedBy: actorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.assignments.Create(ctx, a)
}

func (u *AssignmentUseCase) AcceptAssignment(ctx context.Context, assignmentID, makerID string) (entities.MakerAssignment, error) {
	return u.respond(ctx, assignmentID, makerID, entities.AssignmentStatusAccepted)
}

func (u *AssignmentUseCase) DeclineAssignment(ctx context.Context, assignmentID, makerID string) (entities.MakerAssignment, error) {
	return u.respond(ctx, assignmentID, makerID, entities.AssignmentStatusDeclined)
}

func (u *AssignmentUseCase) respond(ctx context.Context, assignmentID, makerID string, target entities.AssignmentStatus) (entities.MakerAssignment, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		return entities.MakerAssignment{}, ErrInvalidAssignmentID
	}
	makerID = strings.TrimSpace(makerID)
	if makerID == "" {
		return entities.MakerAssignment{}, ErrInvalidMakerID
	}

	a, err := u.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return entities.MakerAssignment{}, err
	}
	if a.ID == "" {
		return entities.MakerAssignment{}, ErrAssignmentNotFound
	}
	if a.MakerID != makerID {
		return entities.MakerAssignment{}, ErrMakerMismatch
	}
	if a.Status != entities.AssignmentStatusPendingAcceptance {
		return entities.MakerAssignment{}, ErrAssignmentNotPending
	}

	updated, err := u.assignments.UpdateStatus(ctx, assignmentID, entities.AssignmentStatusPendingAcceptance, target)
	if err != nil {
		return entities.MakerAssignment{}, err
	}
	if updated.ID == "" {
		return entities.MakerAssignment{}, ErrAssignmentNotPending
	}
	log.Printf("[assignment][usecase] %s assignment_id=%s maker=%s", target, assignmentID, makerID)
	return updated, nil
}

func (u *AssignmentUseCase) GetAssignment(ctx context.Context, assignmentID string) (entities.MakerAssignment, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		return entities.MakerAssignment{}, ErrInvalidAssignmentID
	}

	a, err := u.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return entities.MakerAssignment{}, err
	}
	if a.ID == "" {
		return entities.MakerAssignment{}, ErrAssignmentNotFound
	}
	return a, nil
}
