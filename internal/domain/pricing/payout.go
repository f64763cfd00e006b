package pricing

import "printshop_billing/internal/domain/entities"

// PayoutDisclaimer accompanies every payout estimate surfaced to makers.
const PayoutDisclaimer = "Estimated payout. The final amount may vary with rounding and maker tier adjustments."

// PayoutInputs are the breakdown components a payout derives from.
// NonFeeSubtotal is the materials-and-machine portion of the quote: platform
// fee and designer royalty are excluded, quantity discounts included.
type PayoutInputs struct {
	BedRental      float64
	Filament       float64
	PostProcessing float64
	NonFeeSubtotal float64
}

// EstimatePayout derives the maker's share of a breakdown. Bed rental passes
// through whole; filament and post-processing are shared at the configured
// rates. The payout never exceeds the non-fee subtotal: when the raw shares
// would, all three components are scaled down proportionally so they still
// sum to the total.
func EstimatePayout(in PayoutInputs, rates entities.RateConfig) entities.MakerPayout {
	bed := round2(in.BedRental)
	material := round2(in.Filament * rates.MakerMaterialShareRate)
	post := round2(in.PostProcessing * rates.MakerPostShareRate)

	cap := in.NonFeeSubtotal
	if cap < 0 {
		cap = 0
	}
	sum := bed + material + post
	if sum > cap && sum > 0 {
		factor := cap / sum
		bed = round2(bed * factor)
		material = round2(material * factor)
		post = round2(post * factor)
	}

	return entities.MakerPayout{
		BedRental:           bed,
		MaterialShare:       material,
		PostProcessingShare: post,
		Total:               round2(bed + material + post),
	}
}
