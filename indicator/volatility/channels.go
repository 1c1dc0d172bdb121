package volatility

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultKeltnerPeriod     = 20
	DefaultKeltnerMultiplier = 2.0
	DefaultDonchianPeriod    = 20
)

// KeltnerChannels returns EMA(period) ± multiplier * ATR(period). Slots
// before period, where the ATR is still warming up, are 0.
func KeltnerChannels(s core.Series, period int, multiplier float64) core.Bands {
	n := s.Len()
	bands := core.NewBands(n)
	if period < 1 || n < period+1 {
		return bands
	}
	ema := core.EMAValues(s.Closes(), period)
	atr := ATRSeries(s, period)
	for i := period; i < n; i++ {
		bands.Middle[i] = ema[i]
		bands.Upper[i] = ema[i] + multiplier*atr[i]
		bands.Lower[i] = ema[i] - multiplier*atr[i]
	}
	return bands
}

// DonchianChannels returns the highest high and lowest low over each window
// of period bars, with their midpoint as the middle line.
func DonchianChannels(s core.Series, period int) core.Bands {
	n := s.Len()
	bands := core.NewBands(n)
	if period < 1 || n < period {
		return bands
	}
	highs, lows := s.Highs(), s.Lows()
	for i := period - 1; i < n; i++ {
		bands.Upper[i] = core.Highest(highs[i-period+1 : i+1])
		bands.Lower[i] = core.Lowest(lows[i-period+1 : i+1])
		bands.Middle[i] = (bands.Upper[i] + bands.Lower[i]) / 2
	}
	return bands
}
