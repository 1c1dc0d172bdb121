package trend

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultSMAPeriod        = 20
	DefaultEMAPeriod        = 12
	DefaultWMAPeriod        = 20
	DefaultTEMAPeriod       = 12
	DefaultCrossShortPeriod = 50
	DefaultCrossLongPeriod  = 200
	DefaultRibbonPeriod     = 14
	DefaultRibbonCount      = 5
)

// SMA returns the simple moving average of the bar prices. Warm-up slots are
// 0 and a series shorter than period yields all zeros.
func SMA(s core.Series, period int) []float64 {
	return core.SMAValues(s.Closes(), period)
}

// EMA returns the exponential moving average of the bar prices, seeded with
// the SMA of the first period bars.
func EMA(s core.Series, period int) []float64 {
	return core.EMAValues(s.Closes(), period)
}

// WMA returns the linearly weighted moving average of the bar prices.
func WMA(s core.Series, period int) []float64 {
	return core.WMAValues(s.Closes(), period)
}

// TEMA returns the triple exponential moving average 3*e1 - 3*e2 + e3, where
// e2 is the EMA of the defined part of e1 and e3 the EMA of the defined part
// of e2. Slots before 3*(period-1) are 0.
func TEMA(s core.Series, period int) []float64 {
	n := s.Len()
	out := core.Zeros(n)
	if period < 1 || n < 3*period-2 {
		return out
	}
	e1 := EMA(s, period)
	e2 := nestedEMA(e1, period-1, period)
	e3 := nestedEMA(e2, 2*(period-1), period)
	for i := 3 * (period - 1); i < n; i++ {
		out[i] = 3*e1[i] - 3*e2[i] + e3[i]
	}
	return out
}

// nestedEMA smooths values[start:] with the same EMA used for prices by
// wrapping the defined tail back into bars.
func nestedEMA(values []float64, start, period int) []float64 {
	return core.SmoothFrom(values, start, func(tail []float64) []float64 {
		return EMA(core.FromValues(tail), period)
	})
}

// Ribbon returns count simple moving averages with periods period, 2*period,
// ..., count*period, shortest first.
func Ribbon(s core.Series, period, count int) [][]float64 {
	if count < 1 {
		return nil
	}
	ribbon := make([][]float64, count)
	for i := range ribbon {
		ribbon[i] = SMA(s, period*(i+1))
	}
	return ribbon
}
