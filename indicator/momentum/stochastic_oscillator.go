package momentum

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultStochasticPeriod = 14
	DefaultWilliamsRPeriod  = 14
)

// Stochastic returns %K for the last bar:
// (close - lowestLow)/(highestHigh - lowestLow)*100 over the last period bars,
// clamped to [0,100]. A zero range or insufficient data gives 0.
func Stochastic(s core.Series, period int) float64 {
	if period < 1 || s.Len() < period {
		return 0
	}
	w := s.Tail(period)
	hh, ll := core.Highest(w.Highs()), core.Lowest(w.Lows())
	if hh == ll {
		return 0
	}
	close := w[len(w)-1].Price
	return core.Clamp((close-ll)/(hh-ll)*100, 0, 100)
}

// WilliamsR returns Williams %R for the last bar:
// (highestHigh - close)/(highestHigh - lowestLow)*-100, clamped to [-100,0].
// A zero range or insufficient data gives 0.
func WilliamsR(s core.Series, period int) float64 {
	if period < 1 || s.Len() < period {
		return 0
	}
	w := s.Tail(period)
	hh, ll := core.Highest(w.Highs()), core.Lowest(w.Lows())
	if hh == ll {
		return 0
	}
	close := w[len(w)-1].Price
	return core.Clamp((hh-close)/(hh-ll)*-100, -100, 0)
}
