package response

import (
	"time"

	"printshop_billing/internal/domain/entities"
	"printshop_billing/internal/domain/pricing"
)

type LineItemResponse struct {
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Type    string  `json:"type"`
	Details string  `json:"details,omitempty"`
}

type MakerPayoutResponse struct {
	BedRental           float64 `json:"bed_rental"`
	MaterialShare       float64 `json:"material_share"`
	PostProcessingShare float64 `json:"post_processing_share"`
	Total               float64 `json:"total"`
	Disclaimer          string  `json:"disclaimer"`
}

type BreakdownResponse struct {
	LineItems          []LineItemResponse  `json:"line_items"`
	Subtotal           float64             `json:"subtotal"`
	Total              float64             `json:"total"`
	TotalCredits       int64               `json:"total_credits"`
	MemberTotal        float64             `json:"member_total"`
	MemberTotalCredits int64               `json:"member_total_credits"`
	MemberSavings      float64             `json:"member_savings"`
	MakerPayout        MakerPayoutResponse `json:"maker_payout"`
	EstimatedHours     float64             `json:"estimated_hours"`
	RateVersion        string              `json:"rate_version"`
}

// FromBreakdown renders the itemized quote. The minimum-order adjustment is
// surfaced as its own visible line so customers can see why a small job costs
// the floor price.
func FromBreakdown(b entities.QuoteBreakdown) BreakdownResponse {
	items := make([]LineItemResponse, 0, len(b.LineItems)+1)
	for _, li := range b.LineItems {
		items = append(items, LineItemResponse{
			Label:   li.Label,
			Amount:  li.Amount,
			Type:    string(li.Type),
			Details: li.Details,
		})
	}
	if b.MinimumAdjustment != 0 {
		items = append(items, LineItemResponse{
			Label:  pricing.LabelMinimumAdjustment,
			Amount: b.MinimumAdjustment,
			Type:   string(entities.LineItemAdjustment),
		})
	}
	return BreakdownResponse{
		LineItems:          items,
		Subtotal:           b.Subtotal,
		Total:              b.Total,
		TotalCredits:       b.TotalCredits,
		MemberTotal:        b.MemberTotal,
		MemberTotalCredits: b.MemberTotalCredits,
		MemberSavings:      b.MemberSavings,
		MakerPayout: MakerPayoutResponse{
			BedRental:           b.MakerPayout.BedRental,
			MaterialShare:       b.MakerPayout.MaterialShare,
			PostProcessingShare: b.MakerPayout.PostProcessingShare,
			Total:               b.MakerPayout.Total,
			Disclaimer:          pricing.PayoutDisclaimer,
		},
		EstimatedHours: b.EstimatedHours,
		RateVersion:    b.RateVersion,
	}
}

type QuoteResponse struct {
	QuoteID   string            `json:"quote_id"`
	Status    string            `json:"status"`
	OrderID   string            `json:"order_id,omitempty"`
	Breakdown BreakdownResponse `json:"breakdown"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:   q.ID,
		Status:    string(q.Status),
		OrderID:   q.OrderID,
		Breakdown: FromBreakdown(q.Breakdown),
		CreatedAt: q.CreatedAt,
		ExpiresAt: q.ExpiresAt,
	}
}
