package pricing

import (
	"errors"
	"fmt"
	"math"

	"printshop_billing/internal/domain/entities"
)

var (
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Print-time curve coefficients. Estimated hours grow monotonically with
// total weight but with diminishing marginal time per gram.
const (
	setupHours       = 0.5
	hoursPerSqrtGram = 0.25
)

// Line item labels. Stable strings: clients key savings displays off them.
const (
	LabelPlatformFee       = "Platform fee"
	LabelBedRental         = "Bed rental"
	LabelFilament          = "Filament"
	LabelPostProcessing    = "Post-processing"
	LabelExtendedTime      = "Extended print time"
	LabelRushSurcharge     = "Rush surcharge"
	LabelQuantityDiscount  = "Quantity discount"
	LabelDesignerRoyalty   = "Designer royalty"
	LabelMinimumAdjustment = "Minimum order adjustment"
)

// EstimateHours returns the estimated machine hours for the given total
// weight. Monotonic in grams with a diminishing marginal rate, plus a fixed
// setup allowance.
func EstimateHours(totalGrams float64) float64 {
	if totalGrams <= 0 {
		return 0
	}
	return setupHours + hoursPerSqrtGram*math.Sqrt(totalGrams)
}

// Compute prices a print job against a rate configuration.
//
// It is pure and deterministic: identical inputs against the same RateConfig
// produce an identical breakdown, with no I/O and no shared state, so it is
// safe to call concurrently and to run on both the preview and the
// authoritative checkout path. Errors return no partial breakdown.
func Compute(req entities.QuoteRequest, rates entities.RateConfig) (entities.QuoteBreakdown, error) {
	if req.Grams <= 0 {
		return entities.QuoteBreakdown{}, fmt.Errorf("%w: grams must be positive, got %v", ErrInvalidQuantity, req.Grams)
	}
	if req.Quantity <= 0 {
		return entities.QuoteBreakdown{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidQuantity, req.Quantity)
	}

	gramRate, ok := rates.MaterialRates[req.Material]
	if !ok {
		return entities.QuoteBreakdown{}, fmt.Errorf("%w: unknown material %q", ErrInvalidConfiguration, req.Material)
	}
	allotment, ok := rates.JobSizeHours[req.JobSize]
	if !ok {
		return entities.QuoteBreakdown{}, fmt.Errorf("%w: unknown job size %q", ErrInvalidConfiguration, req.JobSize)
	}
	switch req.DeliverySpeed {
	case entities.DeliveryStandard, entities.DeliveryEmergency:
	default:
		return entities.QuoteBreakdown{}, fmt.Errorf("%w: unknown delivery speed %q", ErrInvalidConfiguration, req.DeliverySpeed)
	}
	var postRate float64
	if req.PostProcessing.Enabled {
		postRate, ok = rates.PostProcessingRates[req.PostProcessing.Tier]
		if !ok {
			return entities.QuoteBreakdown{}, fmt.Errorf("%w: unknown post-processing tier %q", ErrInvalidConfiguration, req.PostProcessing.Tier)
		}
		if req.PostProcessing.Minutes <= 0 {
			return entities.QuoteBreakdown{}, fmt.Errorf("%w: post-processing minutes must be positive", ErrInvalidQuantity)
		}
	}

	qty := float64(req.Quantity)

	// Sub-floor jobs bill at the material's minimum grams; the floor never
	// rejects a job, it only sets the billing weight.
	billedGrams := req.Grams
	if floor := rates.MaterialMinGrams[req.Material]; billedGrams < floor {
		billedGrams = floor
	}

	hours := EstimateHours(billedGrams * qty)

	items := make([]entities.LineItem, 0, 9)

	platformFee := round2(rates.PlatformFee)
	items = append(items, entities.LineItem{
		Label:  LabelPlatformFee,
		Amount: platformFee,
		Type:   entities.LineItemFee,
	})

	bedRental := round2(hours * rates.BedHourlyRate)
	items = append(items, entities.LineItem{
		Label:   LabelBedRental,
		Amount:  bedRental,
		Type:    entities.LineItemFee,
		Details: fmt.Sprintf("%.2f h @ $%.2f/h", hours, rates.BedHourlyRate),
	})

	filament := round2(billedGrams * qty * gramRate)
	items = append(items, entities.LineItem{
		Label:   LabelFilament,
		Amount:  filament,
		Type:    entities.LineItemFee,
		Details: fmt.Sprintf("%s, %.0f g x %d @ $%.2f/g", req.Material, billedGrams, req.Quantity, gramRate),
	})

	var post float64
	if req.PostProcessing.Enabled {
		post = round2(postRate * req.PostProcessing.Minutes)
		items = append(items, entities.LineItem{
			Label:   LabelPostProcessing,
			Amount:  post,
			Type:    entities.LineItemFee,
			Details: fmt.Sprintf("%s tier, %.0f min @ $%.2f/min", req.PostProcessing.Tier, req.PostProcessing.Minutes, postRate),
		})
	}

	var extended float64
	if hours > allotment {
		extended = round2((hours - allotment) * rates.ExtendedTimeHourlyRate)
		items = append(items, entities.LineItem{
			Label:   LabelExtendedTime,
			Amount:  extended,
			Type:    entities.LineItemFee,
			Details: fmt.Sprintf("%.2f h beyond the %.0f h %s allotment", hours-allotment, allotment, req.JobSize),
		})
	}

	var rush float64
	if req.DeliverySpeed == entities.DeliveryEmergency {
		preRush := platformFee + bedRental + filament + post + extended
		rush = round2(preRush * rates.RushRate)
		items = append(items, entities.LineItem{
			Label:   LabelRushSurcharge,
			Amount:  rush,
			Type:    entities.LineItemRush,
			Details: fmt.Sprintf("%.0f%% of $%.2f", rates.RushRate*100, preRush),
		})
	}

	// Quantity discount applies to materials and processing only; platform
	// and time fees are never discounted.
	var qtyDiscount float64
	if rates.QuantityDiscountThreshold > 0 && req.Quantity >= rates.QuantityDiscountThreshold {
		qtyDiscount = -round2((filament + post) * rates.QuantityDiscountRate)
		items = append(items, entities.LineItem{
			Label:   LabelQuantityDiscount,
			Amount:  qtyDiscount,
			Type:    entities.LineItemDiscount,
			Details: fmt.Sprintf("%.0f%% off materials and processing at %d+ units", rates.QuantityDiscountRate*100, rates.QuantityDiscountThreshold),
		})
	}

	royalty := round2(rates.DesignerRoyalty * qty)
	items = append(items, entities.LineItem{
		Label:   LabelDesignerRoyalty,
		Amount:  royalty,
		Type:    entities.LineItemFee,
		Details: fmt.Sprintf("$%.2f per unit, reserved for the model's creator", rates.DesignerRoyalty),
	})

	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Amount
	}
	subtotal = round2(subtotal)

	// The minimum-order shortfall is reported on its own, never folded into
	// another line. It is kept out of LineItems so that
	// Total == sum(LineItems) + MinimumAdjustment holds exactly; the HTTP
	// layer renders it as its own visible row.
	var minimumAdjustment float64
	if subtotal < rates.MinimumOrderTotal {
		minimumAdjustment = round2(rates.MinimumOrderTotal - subtotal)
	}

	total := round2(subtotal + minimumAdjustment)

	// Member pricing discounts only bed rental, filament and post-processing.
	// Both totals are computed so non-members see the savings they forgo.
	memberDiscount := round2((bedRental + filament + post) * rates.MemberDiscountRate)
	memberTotal := round2(total - memberDiscount)
	if memberTotal < rates.MinimumOrderTotal {
		memberTotal = rates.MinimumOrderTotal
	}
	memberSavings := round2(total - memberTotal)

	payout := EstimatePayout(PayoutInputs{
		BedRental:      bedRental,
		Filament:       filament,
		PostProcessing: post,
		NonFeeSubtotal: round2(bedRental + filament + post + extended + qtyDiscount),
	}, rates)

	return entities.QuoteBreakdown{
		LineItems:          items,
		Subtotal:           subtotal,
		MinimumAdjustment:  minimumAdjustment,
		Total:              total,
		TotalCredits:       CadToCredits(total, rates.CADPerCredit),
		MemberTotal:        memberTotal,
		MemberTotalCredits: CadToCredits(memberTotal, rates.CADPerCredit),
		MemberSavings:      memberSavings,
		MakerPayout:        payout,
		EstimatedHours:     hours,
		RateVersion:        rates.Version,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
