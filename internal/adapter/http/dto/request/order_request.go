package request

import "strings"

// OrderTransitionRequest is the payload for the order status route.
//
// Reason is not enforced by binding: the use case owns the audit rules and
// answers with a coded error so clients can tell a missing reason apart from
// a malformed payload.
type OrderTransitionRequest struct {
	TargetStatus string `json:"target_status" binding:"required"`
	Reason       string `json:"reason"`
	ActorID      string `json:"actor_id" binding:"required"`
	PaymentRef   string `json:"payment_ref"`
}

func (r OrderTransitionRequest) ResolveActorID() string {
	return strings.TrimSpace(r.ActorID)
}
