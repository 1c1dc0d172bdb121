package pattern

import (
	"math"

	"github.com/evdnx/gosignal/indicator/core"
)

const (
	DefaultDojiThreshold     = 0.1
	DefaultTrendlinePeriod   = 20
	DefaultTrendPeriod       = 20
	DefaultMeanPeriod        = 20
	DefaultPriceActionPeriod = 5
)

// Direction is a coarse market-direction label.
type Direction string

const (
	Bullish Direction = "Bullish"
	Bearish Direction = "Bearish"
	Neutral Direction = "Neutral"
)

// Doji reports whether the last bar's body |close-open| is at most threshold
// times its high-low range. Bars without an open use the previous close.
func Doji(s core.Series, threshold float64) bool {
	n := s.Len()
	if n < 2 {
		return false
	}
	last := s[n-1]
	body := math.Abs(last.Price - s.OpenAt(n-1))
	spread := last.HighOrPrice() - last.LowOrPrice()
	return body <= threshold*spread
}

// TrendlineBreakout compares the last price with the period bars before it.
// The prior window's trend is up when its last price exceeds its first; an up
// trend breaks out when the last price clears the window high, a down trend
// when it undercuts the window low.
func TrendlineBreakout(s core.Series, period int) bool {
	n := s.Len()
	if period < 2 || n < period+1 {
		return false
	}
	prior := s[n-1-period : n-1].Closes()
	last := s[n-1].Price
	if prior[len(prior)-1] > prior[0] {
		return last > core.Highest(prior)
	}
	return last < core.Lowest(prior)
}

// TrendFollowing labels the last price against SMA(period): Bullish above,
// Bearish at or below, Neutral when there is not enough data.
func TrendFollowing(s core.Series, period int) Direction {
	n := s.Len()
	if period < 1 || n < period {
		return Neutral
	}
	if s[n-1].Price > core.LastOf(core.SMAValues(s.Closes(), period)) {
		return Bullish
	}
	return Bearish
}

// Mean returns the average price of the last period bars, 0 on insufficient
// data. Mean reversion trades the distance from it.
func Mean(s core.Series, period int) float64 {
	if period < 1 || s.Len() < period {
		return 0
	}
	return core.Mean(s.Tail(period).Closes())
}

// PriceAction labels the last period prices Bullish when they never fall,
// Bearish when they never rise and Neutral otherwise. A flat run counts as
// Bullish.
func PriceAction(s core.Series, period int) Direction {
	if period < 1 || s.Len() < period {
		return Neutral
	}
	prices := s.Tail(period).Closes()
	rising, falling := true, true
	for i := 1; i < len(prices); i++ {
		if prices[i] < prices[i-1] {
			rising = false
		}
		if prices[i] > prices[i-1] {
			falling = false
		}
	}
	switch {
	case rising:
		return Bullish
	case falling:
		return Bearish
	default:
		return Neutral
	}
}
