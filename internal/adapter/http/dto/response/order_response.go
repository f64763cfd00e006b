package response

import (
	"time"

	"printshop_billing/internal/domain/entities"
)

type OrderResponse struct {
	OrderID            string     `json:"order_id"`
	QuoteID            string     `json:"quote_id"`
	Status             string     `json:"status"`
	PaymentRef         string     `json:"payment_ref,omitempty"`
	PaymentConfirmedAt *time.Time `json:"payment_confirmed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:            o.ID,
		QuoteID:            o.QuoteID,
		Status:             string(o.Status),
		PaymentRef:         o.PaymentRef,
		PaymentConfirmedAt: o.PaymentConfirmedAt,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

type AuditRecordResponse struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

type AuditTrailResponse struct {
	OrderID string                `json:"order_id"`
	Records []AuditRecordResponse `json:"records"`
}

func FromAuditTrail(orderID string, records []entities.AuditRecord) AuditTrailResponse {
	out := AuditTrailResponse{OrderID: orderID, Records: make([]AuditRecordResponse, 0, len(records))}
	for _, rec := range records {
		out.Records = append(out.Records, AuditRecordResponse{
			ID:        rec.ID,
			Actor:     rec.Actor,
			From:      string(rec.From),
			To:        string(rec.To),
			Reason:    rec.Reason,
			Timestamp: rec.Timestamp,
		})
	}
	return out
}
