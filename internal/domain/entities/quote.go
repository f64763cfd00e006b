package entities

import "time"

// QuoteStatus represents the lifecycle of a persisted quote.
//
// A quote is saved with a TTL; expiry is a function of the clock, checked at
// time of use rather than stored as a status. Conversion links the quote 1:1
// to an Order and is permanent.
type QuoteStatus string

const (
	QuoteStatusSaved     QuoteStatus = "saved"
	QuoteStatusConverted QuoteStatus = "converted"
)

// PostProcessing describes optional finishing work on a quote request.
type PostProcessing struct {
	Enabled bool               `json:"enabled"`
	Tier    PostProcessingTier `json:"tier"`
	Minutes float64            `json:"minutes"`
}

// QuoteRequest carries the client-supplied print-job parameters. Weight is an
// opaque estimate produced upstream by file analysis.
type QuoteRequest struct {
	Material       MaterialType   `json:"material"`
	Grams          float64        `json:"grams"`
	Quantity       int            `json:"quantity"`
	JobSize        JobSize        `json:"job_size"`
	DeliverySpeed  DeliverySpeed  `json:"delivery_speed"`
	IsMember       bool           `json:"is_member"`
	Color          string         `json:"color"`
	PostProcessing PostProcessing `json:"post_processing"`
}

// LineItemType classifies a breakdown line.
type LineItemType string

const (
	LineItemFee        LineItemType = "fee"
	LineItemDiscount   LineItemType = "discount"
	LineItemAdjustment LineItemType = "adjustment"
	LineItemRush       LineItemType = "rush"
	LineItemInfo       LineItemType = "info"
)

// LineItem is one visible component of a quote breakdown. Amount is signed:
// discounts carry negative amounts.
type LineItem struct {
	Label   string       `json:"label"`
	Amount  float64      `json:"amount"`
	Type    LineItemType `json:"type"`
	Details string       `json:"details,omitempty"`
}

// MakerPayout is the derived share of a breakdown attributable to the
// fulfilling maker. BedRental + MaterialShare + PostProcessingShare == Total.
type MakerPayout struct {
	BedRental           float64 `json:"bed_rental"`
	MaterialShare       float64 `json:"material_share"`
	PostProcessingShare float64 `json:"post_processing_share"`
	Total               float64 `json:"total"`
}

// QuoteBreakdown is the itemized pricing result.
//
// Invariants: Total == sum(LineItems.Amount) + MinimumAdjustment;
// Total >= the rate config's minimum order total; MemberTotal <= Total;
// MemberSavings >= 0.
type QuoteBreakdown struct {
	LineItems          []LineItem  `json:"line_items"`
	Subtotal           float64     `json:"subtotal"`
	MinimumAdjustment  float64     `json:"minimum_adjustment"`
	Total              float64     `json:"total"`
	TotalCredits       int64       `json:"total_credits"`
	MemberTotal        float64     `json:"member_total"`
	MemberTotalCredits int64       `json:"member_total_credits"`
	MemberSavings      float64     `json:"member_savings"`
	MakerPayout        MakerPayout `json:"maker_payout"`
	EstimatedHours     float64     `json:"estimated_hours"`
	RateVersion        string      `json:"rate_version"`
}

// Quote is a persisted, time-limited snapshot of a priced print job.
//
// Quotes are immutable once saved: changing parameters produces a new Quote,
// and the rate version used to compute the breakdown is frozen forever.
type Quote struct {
	ID        string         `json:"id"`
	Request   QuoteRequest   `json:"request"`
	Breakdown QuoteBreakdown `json:"breakdown"`
	Status    QuoteStatus    `json:"status"`
	OrderID   string         `json:"order_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// ExpiredAt reports whether the quote is past its TTL at the given instant.
// Expiry is evaluated at time of use so a quote displayed moments before its
// deadline cannot be committed moments after it.
func (q Quote) ExpiredAt(now time.Time) bool {
	return now.After(q.ExpiresAt)
}
