package entities

import "time"

// OrderStatus is the closed set of order lifecycle states.
//
//	awaiting_payment -> paid | cancelled
//	paid             -> in_production | refunded
//	in_production    -> shipped | refunded
//	shipped          -> delivered | refunded
//	delivered        -> refunded
//
// cancelled and refunded accept no further transitions.
type OrderStatus string

const (
	OrderStatusAwaitingPayment OrderStatus = "awaiting_payment"
	OrderStatusPaid            OrderStatus = "paid"
	OrderStatusInProduction    OrderStatus = "in_production"
	OrderStatusShipped         OrderStatus = "shipped"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusRefunded        OrderStatus = "refunded"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusAwaitingPayment: {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:            {OrderStatusInProduction, OrderStatusRefunded},
	OrderStatusInProduction:    {OrderStatusShipped, OrderStatusRefunded},
	OrderStatusShipped:         {OrderStatusDelivered, OrderStatusRefunded},
	OrderStatusDelivered:       {OrderStatusRefunded},
	OrderStatusCancelled:       {},
	OrderStatusRefunded:        {},
}

// ParseOrderStatus maps a wire string to an OrderStatus. The second return is
// false for anything outside the closed set.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(s)
	_, ok := orderTransitions[st]
	return st, ok
}

// CanTransitionTo reports whether the transition table permits moving from s
// to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible from s.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// AuditRecord is one append-only entry in an order's status history. Records
// are never updated or deleted.
type AuditRecord struct {
	ID        string      `json:"id"`
	OrderID   string      `json:"order_id"`
	Actor     string      `json:"actor"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	Reason    string      `json:"reason"`
	Timestamp time.Time   `json:"timestamp"`
}

// Matches reports whether the record describes the same transition request.
// Used to recognize idempotent retries.
func (a AuditRecord) Matches(from, to OrderStatus, actor, reason string) bool {
	return a.From == from && a.To == to && a.Actor == actor && a.Reason == reason
}

// Order is a converted quote moving through fulfilment.
//
// PaymentConfirmedAt is set exactly once, on the transition to paid, and is
// never cleared afterwards (a refund does not erase the payment record).
type Order struct {
	ID                 string      `json:"id"`
	QuoteID            string      `json:"quote_id"`
	Status             OrderStatus `json:"status"`
	PaymentRef         string      `json:"payment_ref,omitempty"`
	PaymentConfirmedAt *time.Time  `json:"payment_confirmed_at,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}
