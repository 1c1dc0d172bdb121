package momentum

import (
	"testing"

	talib "github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"

	"github.com/evdnx/gosignal/indicator/core"
)

func TestRSI_ConstantPriceUsesLossFallback(t *testing.T) {
	rsi := RSI(constantSeries(100, 15), DefaultRSIPeriod)
	assert.InDelta(t, 100-100.0/101.0, rsi, 1e-9)
	assert.Greater(t, rsi, 70.0)
}

func TestRSI_InsufficientData(t *testing.T) {
	assert.Zero(t, RSI(constantSeries(100, 14), DefaultRSIPeriod))
	assert.Zero(t, RSI(nil, DefaultRSIPeriod))
}

func TestRSISeries_MatchesTalib(t *testing.T) {
	s := wavyOHLC(60)
	got := RSISeries(s, DefaultRSIPeriod)
	want := talib.Rsi(s.Closes(), DefaultRSIPeriod)
	for i := DefaultRSIPeriod; i < s.Len(); i++ {
		if !approxEqual(got[i], want[i]) {
			t.Fatalf("RSI[%d] = %f, want %f", i, got[i], want[i])
		}
	}
	for i := 0; i < DefaultRSIPeriod; i++ {
		assert.Zero(t, got[i])
	}
}

func TestRSI_Bounded(t *testing.T) {
	for _, s := range []core.Series{wavyOHLC(80), rampSeries(100, -1, 40), rampSeries(100, 2, 40)} {
		for _, v := range RSISeries(s, DefaultRSIPeriod) {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestStochRSI(t *testing.T) {
	v := StochRSI(wavyOHLC(80), DefaultRSIPeriod, DefaultStochRSIPeriod)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 100.0)

	// RSI is pinned at the fallback value, so its range is flat.
	assert.Zero(t, StochRSI(constantSeries(50, 40), 14, 14))
	assert.Zero(t, StochRSI(constantSeries(50, 27), 14, 14))
}
