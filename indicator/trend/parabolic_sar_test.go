package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gosignal/indicator/core"
)

func TestParabolicSAR_Uptrend(t *testing.T) {
	s := rampSeries(100, 1, 30)
	sar := ParabolicSAR(s, DefaultSARStep, DefaultSARMaxStep)
	require.Len(t, sar, 30)
	assert.Equal(t, 100.0, sar[0])
	for i := 1; i < len(sar); i++ {
		if sar[i] >= s[i].Price {
			t.Fatalf("SAR[%d]=%f should stay below price %f in an uptrend", i, sar[i], s[i].Price)
		}
	}
}

func TestParabolicSAR_Downtrend(t *testing.T) {
	s := rampSeries(200, -1, 30)
	sar := ParabolicSAR(s, DefaultSARStep, DefaultSARMaxStep)
	for i := 1; i < len(sar); i++ {
		if sar[i] <= s[i].Price {
			t.Fatalf("SAR[%d]=%f should stay above price %f in a downtrend", i, sar[i], s[i].Price)
		}
	}
}

func TestParabolicSAR_Reversal(t *testing.T) {
	values := []float64{10, 11, 12, 13, 14, 15, 9, 8, 7}
	sar := ParabolicSAR(core.FromValues(values), DefaultSARStep, DefaultSARMaxStep)
	// the collapse at index 6 flips the trend and the SAR jumps to the prior extreme
	assert.Equal(t, 15.0, sar[6])
	assert.Greater(t, sar[8], values[8])
}

func TestParabolicSAR_Degenerate(t *testing.T) {
	assert.Equal(t, []float64{0}, ParabolicSAR(core.FromValues([]float64{5}), 0.02, 0.2))
	assert.Empty(t, ParabolicSAR(nil, 0.02, 0.2))
	assert.Equal(t, []float64{0, 0, 0}, ParabolicSAR(rampSeries(1, 1, 3), 0.5, 0.2))
}
