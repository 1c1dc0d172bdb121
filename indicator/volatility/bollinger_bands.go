package volatility

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultBollingerPeriod     = 20
	DefaultBollingerMultiplier = 2.0
)

// BollingerBands returns SMA(period) ± multiplier * population standard
// deviation of the same window. Warm-up slots are 0 in all three lines and a
// series shorter than period yields all zeros.
func BollingerBands(s core.Series, period int, multiplier float64) core.Bands {
	n := s.Len()
	bands := core.NewBands(n)
	if period < 1 || n < period {
		return bands
	}
	closes := s.Closes()
	sma := core.SMAValues(closes, period)
	for i := period - 1; i < n; i++ {
		window := closes[i-period+1 : i+1]
		sd := core.PopulationStdDev(window, core.Mean(window))
		bands.Middle[i] = sma[i]
		bands.Upper[i] = sma[i] + multiplier*sd
		bands.Lower[i] = sma[i] - multiplier*sd
	}
	return bands
}
