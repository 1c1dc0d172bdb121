package momentum

import (
	"math"

	"github.com/evdnx/gosignal/indicator/core"
)

func approxEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}

func constantSeries(price float64, n int) core.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = price
	}
	return core.FromValues(values)
}

func rampSeries(start, step float64, n int) core.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + step*float64(i)
	}
	return core.FromValues(values)
}

// mapSeries builds price-only bars from f(i).
func mapSeries(n int, f func(i int) float64) core.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = f(i)
	}
	return core.FromValues(values)
}

// wavyOHLC is a deterministic OHLCV series with both gains and losses.
func wavyOHLC(n int) core.Series {
	s := make(core.Series, n)
	for i := range s {
		c := 100 + 5*math.Sin(float64(i)/3) + 0.2*float64(i)
		o := c - math.Cos(float64(i))
		s[i] = core.NewOHLCV(o, max(o, c)+1.5, min(o, c)-1.2, c, 1000+100*float64(i%7))
	}
	return s
}

func columns(s core.Series) (open, high, low, close []float64) {
	open = make([]float64, s.Len())
	for i := range s {
		open[i] = s.OpenAt(i)
	}
	return open, s.Highs(), s.Lows(), s.Closes()
}
