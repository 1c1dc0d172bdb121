package momentum

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultRSIPeriod      = 14
	DefaultStochRSIPeriod = 14
)

// RSISeries returns Wilder's Relative Strength Index for every bar. Slot
// period holds the value from the plain averages of the first period changes;
// later slots apply avg = (avg*(period-1)+new)/period. When the average loss
// is zero RS is taken as 100. Earlier slots are 0.
func RSISeries(s core.Series, period int) []float64 {
	n := s.Len()
	out := core.Zeros(n)
	if period < 1 || n < period+1 {
		return out
	}

	var gains, losses float64
	for i := 1; i <= period; i++ {
		change := s[i].Price - s[i-1].Price
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}
	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)
	out[period] = rsiFromAverages(avgGain, avgLoss)

	for i := period + 1; i < n; i++ {
		change := s[i].Price - s[i-1].Price
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiFromAverages(avgGain, avgLoss)
	}
	return out
}

// RSI returns the current RSI (0-100), or 0 when fewer than period+1 bars are
// available.
func RSI(s core.Series, period int) float64 {
	return core.LastOf(RSISeries(s, period))
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	rs := 100.0
	if avgLoss != 0 {
		rs = avgGain / avgLoss
	}
	return 100 - 100/(1+rs)
}

// StochRSI applies the stochastic formula to the RSI series: the position of
// the latest RSI within the range of the last stochPeriod RSI values, scaled
// to 0-100. A flat RSI range gives 0.
func StochRSI(s core.Series, rsiPeriod, stochPeriod int) float64 {
	n := s.Len()
	if rsiPeriod < 1 || stochPeriod < 1 || n < rsiPeriod+stochPeriod {
		return 0
	}
	window := core.KeepLast(RSISeries(s, rsiPeriod), stochPeriod)
	hi, lo := core.Highest(window), core.Lowest(window)
	if hi == lo {
		return 0
	}
	return core.Clamp((core.LastOf(window)-lo)/(hi-lo)*100, 0, 100)
}
