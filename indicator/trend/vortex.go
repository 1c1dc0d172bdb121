package trend

import (
	"math"

	"github.com/evdnx/gosignal/indicator/core"
)

const DefaultVortexPeriod = 14

// VortexResult holds VI+ and VI- at the last bar.
type VortexResult struct {
	Plus  float64 `json:"plus"`
	Minus float64 `json:"minus"`
}

// Vortex sums the positive (|high - prevLow|) and negative (|low - prevHigh|)
// vortex movements over the last period bars and divides each by the true
// range sum over the same bars. Needs period+1 bars; zero true range gives 0.
func Vortex(s core.Series, period int) VortexResult {
	n := s.Len()
	if period < 1 || n < period+1 {
		return VortexResult{}
	}
	var vmPlus, vmMinus, trSum float64
	for i := n - period; i < n; i++ {
		vmPlus += math.Abs(s[i].HighOrPrice() - s[i-1].LowOrPrice())
		vmMinus += math.Abs(s[i].LowOrPrice() - s[i-1].HighOrPrice())
		trSum += s.TrueRange(i)
	}
	if trSum == 0 {
		return VortexResult{}
	}
	return VortexResult{Plus: vmPlus / trSum, Minus: vmMinus / trSum}
}
