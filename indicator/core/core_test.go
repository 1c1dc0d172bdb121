package core

import (
	"math"
	"testing"

	talib "github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approxEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}

func ramp(start float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}

func TestKeepLast(t *testing.T) {
	assert.Equal(t, []int{3, 4}, KeepLast([]int{1, 2, 3, 4}, 2))
	assert.Equal(t, []int{1, 2}, KeepLast([]int{1, 2}, 5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
	assert.Equal(t, 100.0, Clamp(150, 0, 100))
	assert.Equal(t, 42.0, Clamp(42, 0, 100))
	assert.Equal(t, 7.0, Clamp(1, 7, 7))
}

func TestHighestLowestMean(t *testing.T) {
	v := []float64{3, 9, -2, 4}
	assert.Equal(t, 9.0, Highest(v))
	assert.Equal(t, -2.0, Lowest(v))
	assert.Equal(t, 3.5, Mean(v))
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Highest(nil))
}

func TestStandardDeviation(t *testing.T) {
	v := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.0, PopulationStdDev(v, Mean(v)), 1e-12)
	assert.Equal(t, 0.0, PopulationStdDev([]float64{5}, 5))
}

func TestCalculateWMA(t *testing.T) {
	got, err := calculateWMA([]float64{1, 2, 3}, 3)
	require.NoError(t, err)
	// (1*1 + 2*2 + 3*3) / 6
	assert.InDelta(t, 14.0/6.0, got, 1e-12)

	_, err = calculateWMA([]float64{1}, 3)
	assert.Error(t, err)
	_, err = calculateWMA([]float64{1}, 0)
	assert.Error(t, err)
}

func TestSafeDivAndFinite(t *testing.T) {
	assert.Equal(t, 50.0, SafeDiv(1, 0, 50))
	assert.Equal(t, 0.5, SafeDiv(1, 2, 50))
	assert.True(t, IsFinite(1, 2, 3))
	assert.False(t, IsFinite(1, math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestValidators(t *testing.T) {
	assert.True(t, IsNonNegativePrice(0))
	assert.False(t, IsNonNegativePrice(math.NaN()))
	assert.True(t, IsValidVolume(0))
	assert.False(t, IsValidVolume(-1))
}

func TestSMAValues_MatchesTalib(t *testing.T) {
	in := ramp(100, 40)
	got := SMAValues(in, 20)
	want := talib.Sma(in, 20)
	require.Len(t, got, len(in))
	for i := 19; i < len(in); i++ {
		if !approxEqual(got[i], want[i]) {
			t.Fatalf("SMA[%d] = %f, want %f", i, got[i], want[i])
		}
	}
	for i := 0; i < 19; i++ {
		assert.Zero(t, got[i])
	}
}

func TestEMAValues_MatchesTalib(t *testing.T) {
	in := []float64{22.27, 22.19, 22.08, 22.17, 22.18, 22.13, 22.23, 22.43, 22.24, 22.29,
		22.15, 22.39, 22.38, 22.61, 23.36, 24.05, 23.75, 23.83, 23.95, 23.63}
	got := EMAValues(in, 10)
	want := talib.Ema(in, 10)
	for i := 9; i < len(in); i++ {
		if !approxEqual(got[i], want[i]) {
			t.Fatalf("EMA[%d] = %f, want %f", i, got[i], want[i])
		}
	}
	assert.InDelta(t, Mean(in[:10]), got[9], 1e-12)
}

func TestWMAValues_MatchesTalib(t *testing.T) {
	in := []float64{5, 7, 6, 9, 12, 11, 10, 14, 13, 15}
	got := WMAValues(in, 4)
	want := talib.Wma(in, 4)
	for i := 3; i < len(in); i++ {
		if !approxEqual(got[i], want[i]) {
			t.Fatalf("WMA[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestMovingAverages_ShortInput(t *testing.T) {
	for name, fn := range map[string]func([]float64, int) []float64{
		"sma":    SMAValues,
		"ema":    EMAValues,
		"wma":    WMAValues,
		"wilder": WilderValues,
	} {
		got := fn([]float64{1, 2, 3}, 5)
		assert.Equal(t, []float64{0, 0, 0}, got, name)
		assert.Empty(t, fn(nil, 5), name)
	}
}

func TestWilderValues(t *testing.T) {
	got := WilderValues([]float64{2, 4, 6, 8}, 2)
	assert.Equal(t, []float64{0, 3, 4.5, 6.25}, got)
}

func TestSmoothFrom(t *testing.T) {
	in := []float64{0, 0, 1, 2, 3}
	got := SmoothFrom(in, 2, func(v []float64) []float64 { return SMAValues(v, 2) })
	assert.Equal(t, []float64{0, 0, 0, 1.5, 2.5}, got)
	assert.Equal(t, []float64{0, 0}, SmoothFrom([]float64{1, 2}, 5, func(v []float64) []float64 { return v }))
}

func TestDualLineHistogram(t *testing.T) {
	d := DualLine{Line: []float64{3, 2, 1}, Signal: []float64{1, 1, 1}}
	assert.Equal(t, []float64{2, 1, 0}, d.Histogram())
	assert.Equal(t, 1.0, d.LastLine())
	assert.Equal(t, 0.0, NewDualLine(0).LastSignal())
}
