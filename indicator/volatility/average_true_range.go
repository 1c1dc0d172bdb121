package volatility

import "github.com/evdnx/gosignal/indicator/core"

const DefaultATRPeriod = 14

// TrueRangeSeries returns the true range of every bar. The first bar has no
// previous close and uses high - low.
func TrueRangeSeries(s core.Series) []float64 {
	out := make([]float64, s.Len())
	for i := range s {
		out[i] = s.TrueRange(i)
	}
	return out
}

// ATRSeries returns Wilder's Average True Range. Slot period holds the mean of
// the true ranges of bars 1..period; later slots apply
// atr = (atr*(period-1) + tr)/period. Earlier slots are 0, and fewer than
// period+1 bars yields all zeros.
func ATRSeries(s core.Series, period int) []float64 {
	n := s.Len()
	out := core.Zeros(n)
	if period < 1 || n < period+1 {
		return out
	}
	tr := TrueRangeSeries(s)
	copy(out[1:], core.WilderValues(tr[1:], period))
	return out
}

// ATR returns the latest Average True Range, 0 on insufficient data.
func ATR(s core.Series, period int) float64 {
	return core.LastOf(ATRSeries(s, period))
}
