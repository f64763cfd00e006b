package entities

import "testing"

func TestOrderStatus_TransitionTable(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderStatusAwaitingPayment, OrderStatusPaid},
		{OrderStatusAwaitingPayment, OrderStatusCancelled},
		{OrderStatusPaid, OrderStatusInProduction},
		{OrderStatusPaid, OrderStatusRefunded},
		{OrderStatusInProduction, OrderStatusShipped},
		{OrderStatusInProduction, OrderStatusRefunded},
		{OrderStatusShipped, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusRefunded},
		{OrderStatusDelivered, OrderStatusRefunded},
	}

	all := []OrderStatus{
		OrderStatusAwaitingPayment, OrderStatusPaid, OrderStatusInProduction,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded,
	}

	isAllowed := func(from, to OrderStatus) bool {
		for _, p := range allowed {
			if p.from == from && p.to == to {
				return true
			}
		}
		return false
	}

	for _, from := range all {
		for _, to := range all {
			got := from.CanTransitionTo(to)
			want := isAllowed(from, to)
			if got != want {
				t.Fatalf("CanTransitionTo(%s -> %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestOrderStatus_CancelledAcceptsNothing(t *testing.T) {
	all := []OrderStatus{
		OrderStatusAwaitingPayment, OrderStatusPaid, OrderStatusInProduction,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded,
	}
	for _, to := range all {
		if OrderStatusCancelled.CanTransitionTo(to) {
			t.Fatalf("cancelled order must not transition to %s", to)
		}
	}
	if !OrderStatusCancelled.Terminal() {
		t.Fatalf("cancelled must be terminal")
	}
	if !OrderStatusRefunded.Terminal() {
		t.Fatalf("refunded must be terminal")
	}
}

func TestParseOrderStatus(t *testing.T) {
	if st, ok := ParseOrderStatus("paid"); !ok || st != OrderStatusPaid {
		t.Fatalf("expected paid to parse, got %q ok=%v", st, ok)
	}
	if _, ok := ParseOrderStatus("teleported"); ok {
		t.Fatalf("expected unknown status to fail parsing")
	}
	if _, ok := ParseOrderStatus(""); ok {
		t.Fatalf("expected empty status to fail parsing")
	}
}

func TestAuditRecord_Matches(t *testing.T) {
	rec := AuditRecord{From: OrderStatusAwaitingPayment, To: OrderStatusPaid, Actor: "user-1", Reason: "card charge settled"}
	if !rec.Matches(OrderStatusAwaitingPayment, OrderStatusPaid, "user-1", "card charge settled") {
		t.Fatalf("expected identical request to match")
	}
	if rec.Matches(OrderStatusAwaitingPayment, OrderStatusPaid, "user-2", "card charge settled") {
		t.Fatalf("different actor must not match")
	}
}
