package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"printshop_billing/internal/domain/entities"
	"printshop_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidActorID    = errors.New("invalid actor id")
	ErrOrderNotFound     = errors.New("order not found")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrMissingReason     = errors.New("missing reason")
)

// IOrderUseCase exposes the order lifecycle: one guarded transition
// operation plus reads of the order and its audit trail.
type IOrderUseCase interface {
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListAudit(ctx context.Context, orderID string) ([]entities.AuditRecord, error)
	TransitionOrder(ctx context.Context, orderID, targetStatus, reason, actorID, paymentRef string) (entities.Order, error)
}

type OrderUseCase struct {
	orders  interfaces.IOrderRepository
	nowFunc func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, nowFunc: time.Now}
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListAudit(ctx context.Context, orderID string) ([]entities.AuditRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, ErrOrderNotFound
	}
	return u.orders.ListAudit(ctx, orderID)
}

// TransitionOrder is the single guarded path for every status change.
//
// It validates the target against the closed transition table, requires a
// justification, and commits the status flip together with an append-only
// audit record in one conditional write. A retry of an already-applied
// request is answered idempotently; a genuinely illegal move surfaces
// ErrIllegalTransition carrying the order's true current status, never a
// masked or guessed one.
func (u *OrderUseCase) TransitionOrder(ctx context.Context, orderID, targetStatus, reason, actorID, paymentRef string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.Order{}, ErrInvalidActorID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Order{}, ErrMissingReason
	}
	target, ok := entities.ParseOrderStatus(strings.TrimSpace(targetStatus))
	if !ok {
		return entities.Order{}, fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, targetStatus)
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	if o.Status == target {
		// Idempotent replay: the exact request that produced the current
		// status is acknowledged again without a second audit record.
		audits, err := u.orders.ListAudit(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		if n := len(audits); n > 0 {
			last := audits[n-1]
			if last.To == target && last.Actor == actorID && last.Reason == reason {
				log.Printf("[order][usecase] idempotent replay order_id=%s status=%s actor=%s", orderID, target, actorID)
				return o, nil
			}
		}
		return entities.Order{}, fmt.Errorf("%w: order is already %s", ErrIllegalTransition, o.Status)
	}

	if !o.Status.CanTransitionTo(target) {
		return entities.Order{}, fmt.Errorf("%w: cannot move order from %s to %s", ErrIllegalTransition, o.Status, target)
	}

	audit := entities.AuditRecord{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Actor:     actorID,
		From:      o.Status,
		To:        target,
		Reason:    reason,
		Timestamp: u.nowFunc().UTC(),
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, o.Status, target, audit, paymentRef)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			// A concurrent writer won the compare-and-set. Report the true
			// current status; a paid order must never look payable again.
			current, getErr := u.orders.GetByID(ctx, orderID)
			if getErr != nil || current.ID == "" {
				return entities.Order{}, fmt.Errorf("%w: order moved concurrently", ErrIllegalTransition)
			}
			return entities.Order{}, fmt.Errorf("%w: order is %s", ErrIllegalTransition, current.Status)
		}
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] transition order_id=%s %s->%s actor=%s", orderID, o.Status, target, actorID)
	return updated, nil
}
