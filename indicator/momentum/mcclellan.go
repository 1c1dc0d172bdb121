package momentum

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultMcClellanFast = 19
	DefaultMcClellanSlow = 39
)

// McClellan adapts the breadth oscillator to a single instrument: the one-bar
// price change stands in for net advances, and the result is
// EMA(fast) - EMA(slow) of those changes at the last bar.
func McClellan(s core.Series, fast, slow int) float64 {
	n := s.Len()
	if fast < 1 || slow < 1 || n < max(fast, slow)+1 {
		return 0
	}
	changes := make([]float64, n-1)
	for i := 1; i < n; i++ {
		changes[i-1] = s[i].Price - s[i-1].Price
	}
	return core.LastOf(core.EMAValues(changes, fast)) - core.LastOf(core.EMAValues(changes, slow))
}
