package pattern

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"

	"github.com/evdnx/gosignal/indicator/core"
)

func prices(values ...float64) core.Series { return core.FromValues(values) }

func ramp(start, step float64, n int) core.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + step*float64(i)
	}
	return core.FromValues(values)
}

func TestFibonacciRetracement(t *testing.T) {
	r := FibonacciRetracement(ramp(100, 1, 30), DefaultFibonacciPeriod)
	// window 110..129, range 19
	assert.InDelta(t, 110+0.382*19, r.Level382, 1e-12)
	assert.InDelta(t, 110+0.618*19, r.Level618, 1e-12)
	assert.Equal(t, Retracement{}, FibonacciRetracement(ramp(1, 1, 5), DefaultFibonacciPeriod))
}

func TestSupportResistance(t *testing.T) {
	l := SupportResistance(ramp(100, 1, 30), DefaultSupportResistancePeriod)
	assert.Equal(t, Levels{Support: 110, Resistance: 129}, l)
	assert.Equal(t, Levels{}, SupportResistance(nil, 20))
}

func TestPivotPoints(t *testing.T) {
	p := PivotPoints(core.Series{core.NewOHLCV(10, 12, 6, 9, 0)})
	assert.InDelta(t, 9.0, p.Pivot, 1e-12)
	assert.InDelta(t, 12.0, p.R1, 1e-12)
	assert.InDelta(t, 6.0, p.S1, 1e-12)
	assert.InDelta(t, 15.0, p.R2, 1e-12)
	assert.InDelta(t, 3.0, p.S2, 1e-12)
	assert.Equal(t, Pivots{}, PivotPoints(nil))
}

func TestElliottWaveCount(t *testing.T) {
	zigzag := make([]float64, 50)
	for i := range zigzag {
		zigzag[i] = float64(i % 2)
	}
	// starts up (0->1), then every later step reverses
	assert.Equal(t, 48, ElliottWaveCount(prices(zigzag...), DefaultElliottPeriod))
	assert.Equal(t, 0, ElliottWaveCount(ramp(1, 1, 50), DefaultElliottPeriod))
	assert.Equal(t, 0, ElliottWaveCount(ramp(1, 1, 10), DefaultElliottPeriod))

	five := prices(1, 2, 3, 2, 1, 2, 3, 2, 1, 2, 3, 2)
	assert.Equal(t, 5, ElliottWaveCount(five, 12))
}

func TestFractal(t *testing.T) {
	assert.True(t, Fractal(prices(1, 2, 5, 2, 1)))
	assert.True(t, Fractal(prices(5, 4, 1, 4, 5)))
	assert.False(t, Fractal(prices(1, 2, 3, 4, 5)))
	assert.False(t, Fractal(prices(1, 5, 5, 2, 1)))
	assert.False(t, Fractal(prices(1, 2, 3)))
}

func TestDoji(t *testing.T) {
	s := core.Series{
		core.NewBar(10),
		{Price: 10.05, High: optional.Some(11.0), Low: optional.Some(9.0), Open: optional.Some(10.0)},
	}
	assert.True(t, Doji(s, DefaultDojiThreshold))

	wide := core.Series{core.NewBar(10), core.NewOHLCV(9, 12, 8.5, 11.5, 0)}
	assert.False(t, Doji(wide, DefaultDojiThreshold))

	// open falls back to the previous close
	proxy := core.Series{core.NewBar(10), {Price: 10.1, High: optional.Some(11.0), Low: optional.Some(9.0)}}
	assert.True(t, Doji(proxy, DefaultDojiThreshold))
	assert.False(t, Doji(prices(1), DefaultDojiThreshold))
}

func TestTrendlineBreakout(t *testing.T) {
	up := append(ramp(100, 1, 20), core.NewBar(130))
	assert.True(t, TrendlineBreakout(up, DefaultTrendlinePeriod))

	inside := append(ramp(100, 1, 20), core.NewBar(110))
	assert.False(t, TrendlineBreakout(inside, DefaultTrendlinePeriod))

	down := append(ramp(200, -1, 20), core.NewBar(150))
	assert.True(t, TrendlineBreakout(down, DefaultTrendlinePeriod))

	assert.False(t, TrendlineBreakout(ramp(1, 1, 20), DefaultTrendlinePeriod))
}

func TestTrendFollowingAndMean(t *testing.T) {
	assert.Equal(t, Bullish, TrendFollowing(ramp(100, 1, 30), DefaultTrendPeriod))
	assert.Equal(t, Bearish, TrendFollowing(ramp(100, -1, 30), DefaultTrendPeriod))
	assert.Equal(t, Neutral, TrendFollowing(ramp(1, 1, 3), DefaultTrendPeriod))

	assert.InDelta(t, 119.5, Mean(ramp(100, 1, 30), DefaultMeanPeriod), 1e-12)
	assert.Zero(t, Mean(ramp(1, 1, 3), DefaultMeanPeriod))
}

func TestPriceAction(t *testing.T) {
	assert.Equal(t, Bullish, PriceAction(prices(1, 2, 2, 3, 4), DefaultPriceActionPeriod))
	assert.Equal(t, Bearish, PriceAction(prices(5, 4, 4, 3, 1), DefaultPriceActionPeriod))
	assert.Equal(t, Neutral, PriceAction(prices(1, 3, 2, 4, 5), DefaultPriceActionPeriod))
	assert.Equal(t, Bullish, PriceAction(prices(7, 7, 7, 7, 7), DefaultPriceActionPeriod))
	assert.Equal(t, Neutral, PriceAction(prices(1, 2), DefaultPriceActionPeriod))
}
