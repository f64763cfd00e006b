package pricing

import "math"

// DefaultCADPerCredit is the platform exchange rate used when a rate config
// does not override it.
const DefaultCADPerCredit = 0.25

// CadToCredits converts a CAD amount to whole platform credits at the given
// exchange rate.
//
// Rounding rule: the fractional credit value is rounded half away from zero
// to the nearest whole credit. $1.00 at $0.25/credit is exactly 4 credits;
// $1.10 is 4.4 credits and rounds down to 4; the 4.5-credit midpoint rounds
// up to 5. A non-positive rate yields zero credits rather than a division
// blow-up.
func CadToCredits(cad, cadPerCredit float64) int64 {
	if cadPerCredit <= 0 {
		return 0
	}
	return int64(math.Round(cad / cadPerCredit))
}
