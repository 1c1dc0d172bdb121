package trend

import "github.com/evdnx/gosignal/indicator/core"

const DefaultDPOPeriod = 20

// DPO returns the Detrended Price Oscillator series: the price period/2+1
// bars ago minus the current period SMA. Slots where either term is
// undefined are 0.
func DPO(s core.Series, period int) []float64 {
	n := s.Len()
	out := core.Zeros(n)
	if period < 1 || n < period {
		return out
	}
	shift := period/2 + 1
	sma := SMA(s, period)
	for i := max(period-1, shift); i < n; i++ {
		out[i] = s[i-shift].Price - sma[i]
	}
	return out
}
