// Package zakat computes the annual alms obligation from liquid wealth.
package zakat

// NisabGoldGrams is the gold weight defining the nisab threshold.
const NisabGoldGrams = 87.48

// Rate is the zakat rate applied to eligible wealth.
const Rate = 0.025

// DefaultGoldPrice is the pre-filled USD price per gram of gold.
const DefaultGoldPrice = 65.0

// Result is one zakat computation.
type Result struct {
	Eligible bool
	Amount   float64 // due when eligible, zero otherwise
	Nisab    float64 // threshold in the same currency as the assets
}

// Calculate determines whether zakat is due on the given assets at the
// given gold price per gram, and how much.
func Calculate(assets, goldPricePerGram float64) Result {
	nisab := NisabGoldGrams * goldPricePerGram
	eligible := assets >= nisab

	var amount float64
	if eligible {
		amount = assets * Rate
	}

	return Result{
		Eligible: eligible,
		Amount:   amount,
		Nisab:    nisab,
	}
}
