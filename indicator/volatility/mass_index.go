package volatility

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultMassEMAPeriod = 9
	DefaultMassSumPeriod = 25
)

// MassIndex sums, over the last sumPeriod bars, the ratio of a single EMA of
// the high-low range to a double EMA of it. Readings above 27 followed by a
// drop below 26.5 mark the classic reversal bulge.
func MassIndex(s core.Series, emaPeriod, sumPeriod int) float64 {
	n := s.Len()
	first := 2 * (emaPeriod - 1)
	if emaPeriod < 1 || sumPeriod < 1 || n < first+sumPeriod {
		return 0
	}
	spread := make([]float64, n)
	for i, b := range s {
		spread[i] = b.HighOrPrice() - b.LowOrPrice()
	}
	single := core.EMAValues(spread, emaPeriod)
	double := core.SmoothFrom(single, emaPeriod-1, func(tail []float64) []float64 {
		return core.EMAValues(tail, emaPeriod)
	})
	var sum float64
	for i := n - sumPeriod; i < n; i++ {
		sum += core.SafeDiv(single[i], double[i], 0)
	}
	return sum
}
