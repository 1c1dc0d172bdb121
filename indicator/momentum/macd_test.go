package momentum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gosignal/indicator/core"
)

func TestMACD_SignalIsEMAOfLine(t *testing.T) {
	s := wavyOHLC(70)
	m := MACD(s, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)
	require.Len(t, m.Line, 70)
	require.Len(t, m.Signal, 70)

	start := DefaultMACDSlowPeriod - 1
	for i := 0; i < start; i++ {
		assert.Zero(t, m.Line[i])
	}
	fast := core.EMAValues(s.Closes(), 12)
	slow := core.EMAValues(s.Closes(), 26)
	assert.InDelta(t, fast[69]-slow[69], m.Line[69], 1e-12)

	signal := core.EMAValues(m.Line[start:], DefaultMACDSignalPeriod)
	for i := start; i < 70; i++ {
		assert.InDelta(t, signal[i-start], m.Signal[i], 1e-12)
	}
	// signal warm-up: defined from slow-1 + signal-1
	assert.Zero(t, m.Signal[start+DefaultMACDSignalPeriod-2])
	assert.NotZero(t, m.Signal[start+DefaultMACDSignalPeriod-1])

	hist := m.Histogram()
	assert.InDelta(t, m.Line[69]-m.Signal[69], hist[69], 1e-12)
}

func TestMACD_InsufficientData(t *testing.T) {
	m := MACD(rampSeries(1, 1, 34), 12, 26, 9)
	assert.Equal(t, core.Zeros(34), m.Line)
	assert.Equal(t, core.Zeros(34), m.Signal)
}

func TestPPO(t *testing.T) {
	flat := PPO(constantSeries(10, 50), DefaultPPOFastPeriod, DefaultPPOSlowPeriod, DefaultPPOSignalPeriod)
	for _, v := range flat.Line {
		assert.Zero(t, v)
	}
	up := PPO(rampSeries(100, 1, 60), 12, 26, 9)
	assert.Greater(t, up.LastLine(), 0.0)
	assert.False(t, math.IsNaN(up.LastSignal()))

	zero := PPO(constantSeries(0, 50), 12, 26, 9)
	assert.Zero(t, zero.LastLine())
}
