package pattern

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultFibonacciPeriod         = 20
	DefaultSupportResistancePeriod = 20
)

// Retracement holds the 38.2% and 61.8% Fibonacci levels measured up from
// the low of the window.
type Retracement struct {
	Level382 float64 `json:"level382"`
	Level618 float64 `json:"level618"`
}

// FibonacciRetracement measures the high/low extremes of the last period bars
// and returns low + 0.382*range and low + 0.618*range.
func FibonacciRetracement(s core.Series, period int) Retracement {
	if period < 1 || s.Len() < period {
		return Retracement{}
	}
	w := s.Tail(period)
	high, low := core.Highest(w.Highs()), core.Lowest(w.Lows())
	diff := high - low
	return Retracement{Level382: low + 0.382*diff, Level618: low + 0.618*diff}
}

// Levels is a support/resistance pair.
type Levels struct {
	Support    float64 `json:"support"`
	Resistance float64 `json:"resistance"`
}

// SupportResistance returns the lowest low and highest high of the last
// period bars.
func SupportResistance(s core.Series, period int) Levels {
	if period < 1 || s.Len() < period {
		return Levels{}
	}
	w := s.Tail(period)
	return Levels{Support: core.Lowest(w.Lows()), Resistance: core.Highest(w.Highs())}
}

// Pivots holds classic floor-trader pivot levels.
type Pivots struct {
	Pivot float64 `json:"pivot"`
	R1    float64 `json:"r1"`
	S1    float64 `json:"s1"`
	R2    float64 `json:"r2"`
	S2    float64 `json:"s2"`
}

// PivotPoints derives the pivot (high+low+close)/3 of the last bar and the
// first two resistance and support levels around it.
func PivotPoints(s core.Series) Pivots {
	last, err := s.Last()
	if err != nil {
		return Pivots{}
	}
	high, low := last.HighOrPrice(), last.LowOrPrice()
	p := (high + low + last.Price) / 3
	return Pivots{
		Pivot: p,
		R1:    2*p - low,
		S1:    2*p - high,
		R2:    p + (high - low),
		S2:    p - (high - low),
	}
}
