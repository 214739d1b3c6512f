package fundingprogress

import "github.com/shopspring/decimal"

// DefaultTickCount is the number of gridline intervals on the funding chart.
const DefaultTickCount = 4

// MinTickSize is the smallest step the y-axis ever uses: one currency unit.
const MinTickSize = 1.0

var niceMultipliers = []decimal.Decimal{
	decimal.NewFromInt(1),
	decimal.NewFromInt(2),
	decimal.NewFromInt(5),
}

// YAxisTickSize returns the smallest nice step (1, 2 or 5 times a power of
// ten, never below MinTickSize) such that tickCount steps reach maxVal.
// The comparison is exact. Non-positive maxVal yields MinTickSize.
// e.g., (3500, 4) -> 1000, (1000, 4) -> 500, (4000.000000001, 4) -> 2000
func YAxisTickSize(maxVal decimal.Decimal, tickCount int) float64 {
	if tickCount < 1 {
		tickCount = DefaultTickCount
	}
	ticks := decimal.NewFromInt(int64(tickCount))
	floor := decimal.NewFromFloat(MinTickSize)
	if floor.Mul(ticks).GreaterThanOrEqual(maxVal) {
		return MinTickSize
	}

	// Start one decade under the rough step; Div rounds, so its digit
	// count is only an estimate.
	rough := maxVal.Div(ticks).Floor()
	exp := max(0, len(rough.BigInt().String())-2)
	base := decimal.New(1, int32(exp))

	for {
		for _, m := range niceMultipliers {
			step := base.Mul(m)
			if step.Mul(ticks).GreaterThanOrEqual(maxVal) {
				return step.InexactFloat64()
			}
		}
		base = base.Shift(1)
	}
}
