package momentum

import "github.com/evdnx/gosignal/indicator/core"

const DefaultElderEMAPeriod = 13

// Impulse is the Elder Impulse System bar colour.
type Impulse string

const (
	ImpulseGreen Impulse = "Green"
	ImpulseRed   Impulse = "Red"
	ImpulseBlue  Impulse = "Blue"
)

// ElderImpulse colours the last bar: Green when both the EMA and the MACD
// histogram rose from the previous bar, Red when both fell, Blue otherwise or
// when there is not enough data for both slopes.
func ElderImpulse(s core.Series, emaPeriod, fast, slow, signal int) Impulse {
	n := s.Len()
	if emaPeriod < 1 || n < emaPeriod+1 || n < max(fast, slow)+signal {
		return ImpulseBlue
	}
	ema := core.EMAValues(s.Closes(), emaPeriod)
	hist := MACD(s, fast, slow, signal).Histogram()

	emaSlope := ema[n-1] - ema[n-2]
	histSlope := hist[n-1] - hist[n-2]
	switch {
	case emaSlope > 0 && histSlope > 0:
		return ImpulseGreen
	case emaSlope < 0 && histSlope < 0:
		return ImpulseRed
	default:
		return ImpulseBlue
	}
}
