package response

import (
	"time"

	"printshop_billing/internal/domain/entities"
)

type AssignmentResponse struct {
	AssignmentID      string    `json:"assignment_id"`
	OrderID           string    `json:"order_id"`
	MakerID           string    `json:"maker_id"`
	Status            string    `json:"status"`
	Reason            string    `json:"reason,omitempty"`
	AssignedBy        string    `json:"assigned_by"`
	FilesDownloadable bool      `json:"files_downloadable"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromAssignment(a entities.MakerAssignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:      a.ID,
		OrderID:           a.OrderID,
		MakerID:           a.MakerID,
		Status:            string(a.Status),
		Reason:            a.Reason,
		AssignedBy:        a.AssignedBy,
		FilesDownloadable: a.CanDownloadFiles(),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// DownloadAccessResponse answers the file-access gate for a maker.
type DownloadAccessResponse struct {
	AssignmentID string `json:"assignment_id"`
	OrderID      string `json:"order_id"`
	Allowed      bool   `json:"allowed"`
}

func FromDownloadAccess(a entities.MakerAssignment) DownloadAccessResponse {
	return DownloadAccessResponse{
		AssignmentID: a.ID,
		OrderID:      a.OrderID,
		Allowed:      a.CanDownloadFiles(),
	}
}
