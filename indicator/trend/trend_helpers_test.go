package trend

import (
	"math"

	"github.com/evdnx/gosignal/indicator/core"
)

func approxEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}

// rampSeries returns n price-only bars start, start+step, ...
func rampSeries(start, step float64, n int) core.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + step*float64(i)
	}
	return core.FromValues(values)
}

// ohlcRamp returns bars with close start+i, high close+1 and low close-1.
func ohlcRamp(start float64, n int) core.Series {
	s := make(core.Series, n)
	for i := range s {
		c := start + float64(i)
		s[i] = core.NewOHLCV(c, c+1, c-1, c, 1000)
	}
	return s
}
