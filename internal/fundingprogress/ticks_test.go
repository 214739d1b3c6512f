package fundingprogress

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestYAxisTickSize(t *testing.T) {
	tests := []struct {
		name      string
		max       string
		tickCount int
		want      float64
	}{
		{"cumulative 3500", "3500", 4, 1000},
		{"exact nice boundary", "4000", 4, 1000},
		{"250 is not nice", "1000", 4, 500},
		{"small", "8", 4, 2},
		{"99", "99", 4, 50},
		{"just over boundary", "4001", 4, 2000},
		{"a fraction over boundary", "4000.000000001", 4, 2000},
		{"a hair over boundary", "4000.0000000000000000001", 4, 2000},
		{"fraction over small boundary", "8.01", 4, 5},
		{"one tick", "3500", 1, 5000},
		{"five ticks", "3500", 5, 1000},
		{"large", "1234567", 4, 500_000},
		{"below one unit", "0.3", 4, 1},
		{"exactly tick count", "4", 4, 1},
		{"zero", "0", 4, 1},
		{"negative", "-50", 4, 1},
		{"bad tick count uses default", "3500", 0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YAxisTickSize(decimal.RequireFromString(tt.max), tt.tickCount)
			if got != tt.want {
				t.Errorf("YAxisTickSize(%s, %d) = %v, want %v", tt.max, tt.tickCount, got, tt.want)
			}
		})
	}
}

// covers reports whether tickCount steps reach maxVal, compared exactly.
func covers(step float64, tickCount int, maxVal decimal.Decimal) bool {
	return decimal.NewFromFloat(step).Mul(decimal.NewFromInt(int64(tickCount))).GreaterThanOrEqual(maxVal)
}

func TestYAxisTickSize_CoversMaximum(t *testing.T) {
	for _, s := range []string{"1", "3", "7", "10", "19", "101", "999", "1001", "25000", "333333", "9999999", "2000.01", "5000.000001"} {
		maxVal := decimal.RequireFromString(s)
		for tickCount := 1; tickCount <= 6; tickCount++ {
			step := YAxisTickSize(maxVal, tickCount)
			if !covers(step, tickCount, maxVal) {
				t.Errorf("YAxisTickSize(%s, %d) = %v does not reach max", s, tickCount, step)
			}
			if step < MinTickSize {
				t.Errorf("YAxisTickSize(%s, %d) = %v below minimum", s, tickCount, step)
			}
		}
	}
}

func FuzzYAxisTickSize(f *testing.F) {
	f.Add(int64(3500), int32(0), 4)
	f.Add(int64(0), int32(0), 4)
	f.Add(int64(-1), int32(0), 1)
	f.Add(int64(4000000000001), int32(-9), 4)
	f.Add(int64(1), int32(15), 5)

	f.Fuzz(func(t *testing.T, coef int64, exp int32, tickCount int) {
		if tickCount > 1000 || tickCount < -1000 || exp > 30 || exp < -30 {
			t.Skip()
		}
		maxVal := decimal.New(coef, exp)
		step := YAxisTickSize(maxVal, tickCount)
		if step < MinTickSize {
			t.Errorf("YAxisTickSize(%s, %d) = %v below minimum", maxVal, tickCount, step)
		}
		if tickCount >= 1 && !covers(step, tickCount, maxVal) {
			t.Errorf("YAxisTickSize(%s, %d) = %v does not reach max", maxVal, tickCount, step)
		}
	})
}
