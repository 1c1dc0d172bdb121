package pattern

import "github.com/evdnx/gosignal/indicator/core"

const DefaultElliottPeriod = 50

// ElliottWaveCount counts direction changes across the last period prices.
// The starting direction is taken from the first two prices; every later
// reversal (an up leg followed by a lower price, or the reverse) adds one.
func ElliottWaveCount(s core.Series, period int) int {
	if period < 2 || s.Len() < period {
		return 0
	}
	prices := s.Tail(period).Closes()
	up := prices[1] > prices[0]
	count := 0
	for i := 1; i < len(prices)-1; i++ {
		switch {
		case up && prices[i+1] < prices[i]:
			up = false
			count++
		case !up && prices[i+1] > prices[i]:
			up = true
			count++
		}
	}
	return count
}

// Fractal reports whether the third-from-last bar is a five-bar fractal: its
// high strictly above the two highs on either side, or its low strictly below
// the two lows on either side.
func Fractal(s core.Series) bool {
	n := s.Len()
	if n < 5 {
		return false
	}
	i := n - 3
	high, low := s[i].HighOrPrice(), s[i].LowOrPrice()
	peak, trough := true, true
	for _, j := range []int{i - 2, i - 1, i + 1, i + 2} {
		if s[j].HighOrPrice() >= high {
			peak = false
		}
		if s[j].LowOrPrice() <= low {
			trough = false
		}
	}
	return peak || trough
}
