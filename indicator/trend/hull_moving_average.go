package trend

import (
	"math"

	"github.com/evdnx/gosignal/indicator/core"
)

const DefaultHMAPeriod = 9

// HMA calculates the Hull Moving Average: WMA(2*WMA(n/2) - WMA(n), sqrt(n)).
// The raw difference is defined from slot period-1, so the result is defined
// from slot period+sqrt(period)-2.
func HMA(s core.Series, period int) []float64 {
	n := s.Len()
	if period < 1 || n < period {
		return core.Zeros(n)
	}
	half := max(period/2, 1)
	sqrtPeriod := max(int(math.Sqrt(float64(period))), 1)

	closes := s.Closes()
	wmaHalf := core.WMAValues(closes, half)
	wmaFull := core.WMAValues(closes, period)

	raw := core.Zeros(n)
	for i := period - 1; i < n; i++ {
		raw[i] = 2*wmaHalf[i] - wmaFull[i]
	}
	return core.SmoothFrom(raw, period-1, func(tail []float64) []float64 {
		return core.WMAValues(tail, sqrtPeriod)
	})
}
