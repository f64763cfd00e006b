package entities

import "time"

// AssignmentStatus tracks a maker's response to a fulfilment assignment.
type AssignmentStatus string

const (
	AssignmentStatusPendingAcceptance AssignmentStatus = "pending_acceptance"
	AssignmentStatusAccepted          AssignmentStatus = "accepted"
	AssignmentStatusDeclined          AssignmentStatus = "declined"
	AssignmentStatusSuperseded        AssignmentStatus = "superseded"
)

// Active reports whether the assignment still binds the order to its maker.
func (s AssignmentStatus) Active() bool {
	return s == AssignmentStatusPendingAcceptance || s == AssignmentStatusAccepted
}

// MakerAssignment links a paid order to the maker who will print it.
//
// At most one assignment per order is active; assigning over an existing one
// supersedes it but the historical record is kept. Assignment never changes
// the order status: status reflects payment and production truth, the
// assignment reflects who is fulfilling.
type MakerAssignment struct {
	ID         string           `json:"id"`
	OrderID    string           `json:"order_id"`
	MakerID    string           `json:"maker_id"`
	Status     AssignmentStatus `json:"status"`
	Reason     string           `json:"reason"`
	AssignedBy string           `json:"assigned_by"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// CanDownloadFiles gates model-file access: a maker may download the job's
// files only after explicitly accepting the assignment.
func (a MakerAssignment) CanDownloadFiles() bool {
	return a.Status == AssignmentStatusAccepted
}
