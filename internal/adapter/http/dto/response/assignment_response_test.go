package response

import (
	"testing"

	"printshop_billing/internal/domain/entities"
)

func TestFromAssignment_FileAccessFollowsStatus(t *testing.T) {
	a := entities.MakerAssignment{
		ID:      "asg-1",
		OrderID: "order-1",
		MakerID: "maker-9",
		Status:  entities.AssignmentStatusPendingAcceptance,
	}

	if res := FromAssignment(a); res.FilesDownloadable {
		t.Fatalf("pending assignment must not expose downloads: %+v", res)
	}

	a.Status = entities.AssignmentStatusAccepted
	if res := FromAssignment(a); !res.FilesDownloadable {
		t.Fatalf("accepted assignment must expose downloads: %+v", res)
	}
}

func TestFromDownloadAccess(t *testing.T) {
	a := entities.MakerAssignment{ID: "asg-1", OrderID: "order-1", Status: entities.AssignmentStatusDeclined}
	res := FromDownloadAccess(a)
	if res.Allowed {
		t.Fatalf("declined assignment must not allow downloads: %+v", res)
	}
	if res.AssignmentID != "asg-1" || res.OrderID != "order-1" {
		t.Fatalf("unexpected mapping: %+v", res)
	}
}
