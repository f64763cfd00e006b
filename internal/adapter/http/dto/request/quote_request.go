package request

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"printshop_billing/internal/domain/entities"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("material", validMaterial)
	}
}

func validMaterial(fl validator.FieldLevel) bool {
	switch entities.MaterialType(fl.Field().String()) {
	case entities.MaterialPLAStandard, entities.MaterialPLASilk, entities.MaterialPETG,
		entities.MaterialABS, entities.MaterialTPU, entities.MaterialResin:
		return true
	}
	return false
}

type PostProcessingRequest struct {
	Enabled bool    `json:"enabled"`
	Tier    string  `json:"tier" binding:"omitempty,oneof=basic standard premium"`
	Minutes float64 `json:"minutes"`
}

// QuoteRequest is the payload for both the preview and the save-quote routes.
// Deeper rule checks (material floors, post-processing coherence) live in the
// pricing calculator; binding only rejects payloads that are not worth
// sending there.
type QuoteRequest struct {
	Material       string                `json:"material" binding:"required,material"`
	Grams          float64               `json:"grams" binding:"required"`
	Quantity       int                   `json:"quantity" binding:"required"`
	JobSize        string                `json:"job_size" binding:"required,oneof=small medium large"`
	DeliverySpeed  string                `json:"delivery_speed" binding:"omitempty,oneof=standard emergency"`
	IsMember       bool                  `json:"is_member"`
	Color          string                `json:"color"`
	PostProcessing PostProcessingRequest `json:"post_processing"`
	TTLHours       int                   `json:"ttl_hours"`
}

func (r QuoteRequest) ToEntity() entities.QuoteRequest {
	speed := entities.DeliverySpeed(r.DeliverySpeed)
	if r.DeliverySpeed == "" {
		speed = entities.DeliveryStandard
	}
	return entities.QuoteRequest{
		Material:      entities.MaterialType(r.Material),
		Grams:         r.Grams,
		Quantity:      r.Quantity,
		JobSize:       entities.JobSize(r.JobSize),
		DeliverySpeed: speed,
		IsMember:      r.IsMember,
		Color:         r.Color,
		PostProcessing: entities.PostProcessing{
			Enabled: r.PostProcessing.Enabled,
			Tier:    entities.PostProcessingTier(r.PostProcessing.Tier),
			Minutes: r.PostProcessing.Minutes,
		},
	}
}

// ResolveTTL returns the requested quote validity window, or zero to let the
// use case apply its default.
func (r QuoteRequest) ResolveTTL() time.Duration {
	if r.TTLHours <= 0 {
		return 0
	}
	return time.Duration(r.TTLHours) * time.Hour
}
