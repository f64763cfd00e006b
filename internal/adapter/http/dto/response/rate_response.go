package response

import (
	"printshop_billing/internal/domain/entities"
)

// RateConfigResponse exposes the full rate table; the quoting UI needs every
// figure to mirror the server-side calculator for live previews.
type RateConfigResponse struct {
	Version string              `json:"version"`
	Current bool                `json:"current"`
	Config  entities.RateConfig `json:"config"`
}

func FromRateConfig(rc entities.RateConfig, current bool) RateConfigResponse {
	return RateConfigResponse{
		Version: rc.Version,
		Current: current,
		Config:  rc,
	}
}
