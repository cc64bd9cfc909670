package pricing

// RateTier is the sales-commission tier multiplier applied to the full
// per-visit subtotal, always after minimums.
type RateTier string

const (
	TierRed   RateTier = "red"
	TierGreen RateTier = "green"
)

// Multiplier returns the tier factor. Green scales by greenFactor (1.3 by
// default in every service config); red and unknown tiers pass through
// unchanged. Factors below 1 are clamped so green never undercuts red.
func (t RateTier) Multiplier(greenFactor float64) float64 {
	if t != TierGreen {
		return 1
	}
	if greenFactor < 1 {
		return 1
	}
	return greenFactor
}
