package entities

import "time"

// MaterialType identifies a printable filament or resin.
type MaterialType string

const (
	MaterialPLAStandard MaterialType = "PLA_STANDARD"
	MaterialPLASilk     MaterialType = "PLA_SILK"
	MaterialPETG        MaterialType = "PETG"
	MaterialABS         MaterialType = "ABS"
	MaterialTPU         MaterialType = "TPU"
	MaterialResin       MaterialType = "RESIN_STANDARD"
)

// JobSize buckets a print job by its expected footprint on a printer bed.
type JobSize string

const (
	JobSizeSmall  JobSize = "small"
	JobSizeMedium JobSize = "medium"
	JobSizeLarge  JobSize = "large"
)

// DeliverySpeed selects the fulfilment lane for an order.
type DeliverySpeed string

const (
	DeliveryStandard  DeliverySpeed = "standard"
	DeliveryEmergency DeliverySpeed = "emergency"
)

// PostProcessingTier grades the finishing work applied after printing.
type PostProcessingTier string

const (
	PostProcessingBasic    PostProcessingTier = "basic"
	PostProcessingStandard PostProcessingTier = "standard"
	PostProcessingPremium  PostProcessingTier = "premium"
)

// RateConfig is a versioned, immutable set of pricing parameters.
//
// Configs are append-only: publishing a new version never alters an existing
// one, and a saved Quote permanently references the version it was priced
// with. All monetary values are CAD.
type RateConfig struct {
	Version string `json:"version"`

	PlatformFee   float64 `json:"platform_fee"`
	BedHourlyRate float64 `json:"bed_hourly_rate"`

	// MaterialRates is the per-gram cost per material. MaterialMinGrams is the
	// billing floor: jobs lighter than the floor are billed at the floor.
	MaterialRates    map[MaterialType]float64 `json:"material_rates"`
	MaterialMinGrams map[MaterialType]float64 `json:"material_min_grams"`

	// JobSizeHours is the default machine-time allotment per job size; print
	// time beyond the allotment is billed at ExtendedTimeHourlyRate.
	JobSizeHours           map[JobSize]float64 `json:"job_size_hours"`
	ExtendedTimeHourlyRate float64             `json:"extended_time_hourly_rate"`

	RushRate float64 `json:"rush_rate"`

	QuantityDiscountThreshold int     `json:"quantity_discount_threshold"`
	QuantityDiscountRate      float64 `json:"quantity_discount_rate"`

	MemberDiscountRate float64 `json:"member_discount_rate"`

	PostProcessingRates map[PostProcessingTier]float64 `json:"post_processing_rates"` // per minute

	DesignerRoyalty   float64 `json:"designer_royalty"` // per unit
	MinimumOrderTotal float64 `json:"minimum_order_total"`

	CADPerCredit float64 `json:"cad_per_credit"`

	MakerMaterialShareRate float64 `json:"maker_material_share_rate"`
	MakerPostShareRate     float64 `json:"maker_post_share_rate"`

	CreatedAt time.Time `json:"created_at"`
}

// DefaultRateConfig returns the built-in seed configuration. The figures are
// illustrative boot defaults, not production rates; operators publish real
// tables through the rates store.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		Version:       "2024-01-seed",
		PlatformFee:   2.00,
		BedHourlyRate: 1.50,
		MaterialRates: map[MaterialType]float64{
			MaterialPLAStandard: 0.09,
			MaterialPLASilk:     0.12,
			MaterialPETG:        0.11,
			MaterialABS:         0.10,
			MaterialTPU:         0.16,
			MaterialResin:       0.20,
		},
		MaterialMinGrams: map[MaterialType]float64{
			MaterialPLAStandard: 15,
			MaterialPLASilk:     15,
			MaterialPETG:        15,
			MaterialABS:         15,
			MaterialTPU:         10,
			MaterialResin:       20,
		},
		JobSizeHours: map[JobSize]float64{
			JobSizeSmall:  3,
			JobSizeMedium: 8,
			JobSizeLarge:  24,
		},
		ExtendedTimeHourlyRate:    0.75,
		RushRate:                  0.25,
		QuantityDiscountThreshold: 10,
		QuantityDiscountRate:      0.10,
		MemberDiscountRate:        0.10,
		PostProcessingRates: map[PostProcessingTier]float64{
			PostProcessingBasic:    0.20,
			PostProcessingStandard: 0.35,
			PostProcessingPremium:  0.50,
		},
		DesignerRoyalty:        0.75,
		MinimumOrderTotal:      15.00,
		CADPerCredit:           0.25,
		MakerMaterialShareRate: 0.70,
		MakerPostShareRate:     0.80,
		CreatedAt:              time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
