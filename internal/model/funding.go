package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundingDateStat is one sample of a project's funding time series.
type FundingDateStat struct {
	Date              time.Time
	CumulativePledged decimal.Decimal
	Pledged           decimal.Decimal // pledged on this date alone
	BackersCount      int             // backers gained on this date
}

// GraphData is everything a funding chart needs to draw itself.
type GraphData struct {
	Project       Project
	Stats         []FundingDateStat
	YAxisTickSize float64
}

// MaxCumulativePledged returns the largest cumulative pledged amount in
// stats, or zero for an empty series. Order does not matter.
func MaxCumulativePledged(stats []FundingDateStat) decimal.Decimal {
	if len(stats) == 0 {
		return decimal.Zero
	}
	peak := stats[0].CumulativePledged
	for _, s := range stats[1:] {
		if s.CumulativePledged.GreaterThan(peak) {
			peak = s.CumulativePledged
		}
	}
	return peak
}
