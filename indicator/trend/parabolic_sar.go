package trend

import (
	"github.com/evdnx/gosignal/indicator/core"
)

const (
	DefaultSARStep    = 0.02
	DefaultSARMaxStep = 0.2
)

// ParabolicSAR implements Wilder's Parabolic SAR (Stop and Reverse) as a
// series aligned with the input. The first value is the first price; the
// initial trend is up when the second price exceeds the first. The trend
// flips when the price crosses the SAR, at which point the SAR jumps to the
// extreme point and the acceleration factor resets to step. Otherwise the
// factor grows by step up to maxStep.
func ParabolicSAR(s core.Series, step, maxStep float64) []float64 {
	n := s.Len()
	if n < 2 || step <= 0 || maxStep < step {
		return core.Zeros(n)
	}

	sar := make([]float64, n)
	sar[0] = s[0].Price
	uptrend := s[1].Price > s[0].Price
	ep := s[1].LowOrPrice()
	if uptrend {
		ep = s[1].HighOrPrice()
	}
	af := step

	for i := 1; i < n; i++ {
		next := sar[i-1] + af*(ep-sar[i-1])
		if uptrend {
			next = min(next, s[i-1].LowOrPrice())
			if i > 1 {
				next = min(next, s[i-2].LowOrPrice())
			}
			if s[i].Price < next {
				// Reversal to downtrend.
				uptrend = false
				next = ep
				ep = s[i].LowOrPrice()
				af = step
			} else {
				ep = max(ep, s[i].HighOrPrice())
				af = min(af+step, maxStep)
			}
		} else {
			next = max(next, s[i-1].HighOrPrice())
			if i > 1 {
				next = max(next, s[i-2].HighOrPrice())
			}
			if s[i].Price > next {
				// Reversal to uptrend.
				uptrend = true
				next = ep
				ep = s[i].HighOrPrice()
				af = step
			} else {
				ep = min(ep, s[i].LowOrPrice())
				af = min(af+step, maxStep)
			}
		}
		sar[i] = next
	}
	return sar
}
