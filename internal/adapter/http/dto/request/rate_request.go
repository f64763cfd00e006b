package request

import (
	"printshop_billing/internal/domain/entities"
)

// PublishRatesRequest is the admin payload for publishing a new rate-table
// version. Published versions are immutable; MakeCurrent switches the version
// new quotes price against.
type PublishRatesRequest struct {
	Config      entities.RateConfig `json:"config" binding:"required"`
	MakeCurrent bool                `json:"make_current"`
}
