package momentum

import (
	"math"

	"github.com/evdnx/gosignal/indicator/core"
)

const DefaultCCIPeriod = 20

// cciConstant scales the mean deviation so roughly 70-80% of values fall
// within ±100.
const cciConstant = 0.015

// CCI returns the Commodity Channel Index of the last bar: the distance of
// the typical price from its period mean, divided by 0.015 times the mean
// absolute deviation. A zero deviation gives 0.
func CCI(s core.Series, period int) float64 {
	n := s.Len()
	if period < 1 || n < period {
		return 0
	}
	typical := make([]float64, period)
	for i := range typical {
		typical[i] = s.TypicalPrice(n - period + i)
	}
	mean := core.Mean(typical)
	var dev float64
	for _, tp := range typical {
		dev += math.Abs(tp - mean)
	}
	dev /= float64(period)
	if dev == 0 {
		return 0
	}
	return (typical[period-1] - mean) / (cciConstant * dev)
}
