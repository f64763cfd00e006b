package request

import "strings"

// AssignMakerRequest is the payload for assigning or reassigning an order to
// a maker. The order comes from the route path; Reason is validated by the
// use case so reassignment audits stay meaningful.
type AssignMakerRequest struct {
	MakerID string `json:"maker_id" binding:"required"`
	Reason  string `json:"reason"`
	ActorID string `json:"actor_id" binding:"required"`
}

func (r AssignMakerRequest) ResolveMakerID() string {
	return strings.TrimSpace(r.MakerID)
}

// AssignmentResponseRequest is the payload for a maker accepting or declining
// an assignment.
type AssignmentResponseRequest struct {
	MakerID string `json:"maker_id" binding:"required"`
}

func (r AssignmentResponseRequest) ResolveMakerID() string {
	return strings.TrimSpace(r.MakerID)
}
