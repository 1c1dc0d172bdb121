package momentum

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultRMIPeriod   = 14
	DefaultRMILookback = 5
	DefaultCMOPeriod   = 14
)

// RMI is the Relative Momentum Index: RSI computed on price changes over
// lookback bars instead of one, averaged simply over the last period changes.
// RS is taken as 100 when there are no losses.
func RMI(s core.Series, period, lookback int) float64 {
	n := s.Len()
	if period < 1 || lookback < 1 || n < period+lookback {
		return 0
	}
	var gains, losses float64
	for i := n - period; i < n; i++ {
		change := s[i].Price - s[i-lookback].Price
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}
	return rsiFromAverages(gains/float64(period), losses/float64(period))
}

// CMO is Chande's Momentum Oscillator over the last period one-bar changes:
// (sumUp - sumDown)/(sumUp + sumDown)*100. No movement gives 0.
func CMO(s core.Series, period int) float64 {
	n := s.Len()
	if period < 1 || n < period+1 {
		return 0
	}
	var up, down float64
	for i := n - period; i < n; i++ {
		change := s[i].Price - s[i-1].Price
		if change > 0 {
			up += change
		} else {
			down -= change
		}
	}
	return core.SafeDiv(up-down, up+down, 0) * 100
}
