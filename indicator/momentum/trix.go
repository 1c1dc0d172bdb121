package momentum

import "github.com/evdnx/gosignal/indicator/core"

const DefaultTRIXPeriod = 14

// TRIXSeries returns the one-bar percentage change of a triple-smoothed EMA.
// Each smoothing pass runs over the defined part of the previous one, so the
// first value sits at slot 3*(period-1)+1.
func TRIXSeries(s core.Series, period int) []float64 {
	n := s.Len()
	out := core.Zeros(n)
	first := 3*(period-1) + 1
	if period < 1 || n <= first {
		return out
	}
	e1 := core.EMAValues(s.Closes(), period)
	e2 := smoothEMA(e1, period-1, period)
	e3 := smoothEMA(e2, 2*(period-1), period)
	for i := first; i < n; i++ {
		out[i] = core.SafeDiv(e3[i]-e3[i-1], e3[i-1], 0) * 100
	}
	return out
}

// TRIX returns the latest TRIX value.
func TRIX(s core.Series, period int) float64 {
	return core.LastOf(TRIXSeries(s, period))
}
