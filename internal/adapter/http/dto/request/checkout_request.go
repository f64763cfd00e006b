package request

import "strings"

// CheckoutRequest is the payload for converting a saved quote into an order.
type CheckoutRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}

func (r CheckoutRequest) ResolveActorID() string {
	return strings.TrimSpace(r.ActorID)
}
