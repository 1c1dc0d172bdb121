package momentum

import "github.com/evdnx/gosignal/indicator/core"

const DefaultBOPPeriod = 14

// BOP returns the Balance of Power averaged over the last period bars:
// (close - open)/(high - low) per bar, 0 for bars with no range.
func BOP(s core.Series, period int) float64 {
	n := s.Len()
	if period < 1 || n < period {
		return 0
	}
	var sum float64
	for i := n - period; i < n; i++ {
		spread := s[i].HighOrPrice() - s[i].LowOrPrice()
		sum += core.SafeDiv(s[i].Price-s.OpenAt(i), spread, 0)
	}
	return sum / float64(period)
}
