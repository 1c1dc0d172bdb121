package momentum

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultROCPeriod = 14

	DefaultCoppockLongROC  = 14
	DefaultCoppockShortROC = 11
	DefaultCoppockWMA      = 10
)

// ROCSeries returns the percentage change against the price period bars
// earlier. Slots before period, or whose base price is 0, are 0.
func ROCSeries(s core.Series, period int) []float64 {
	n := s.Len()
	out := core.Zeros(n)
	if period < 1 || n < period+1 {
		return out
	}
	for i := period; i < n; i++ {
		base := s[i-period].Price
		out[i] = core.SafeDiv(s[i].Price-base, base, 0) * 100
	}
	return out
}

// ROC returns the current rate of change in percent.
func ROC(s core.Series, period int) float64 {
	return core.LastOf(ROCSeries(s, period))
}

// CoppockSeries returns the Coppock curve: a WMA of the sum of two rates of
// change, taken over the part of the sum where both are defined.
func CoppockSeries(s core.Series, longROC, shortROC, wmaPeriod int) []float64 {
	n := s.Len()
	start := max(longROC, shortROC)
	if longROC < 1 || shortROC < 1 || wmaPeriod < 1 || n < start+wmaPeriod {
		return core.Zeros(n)
	}
	long := ROCSeries(s, longROC)
	short := ROCSeries(s, shortROC)
	sum := make([]float64, n)
	for i := range sum {
		sum[i] = long[i] + short[i]
	}
	return core.SmoothFrom(sum, start, func(tail []float64) []float64 {
		return core.WMAValues(tail, wmaPeriod)
	})
}

// Coppock returns the latest Coppock curve value.
func Coppock(s core.Series, longROC, shortROC, wmaPeriod int) float64 {
	return core.LastOf(CoppockSeries(s, longROC, shortROC, wmaPeriod))
}
