package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gosignal/errors"
)

func TestLoadCSV_FullBars(t *testing.T) {
	in := "open,high,low,close,volume\n" +
		"10,12,9,11,1000\n" +
		"11,13,10,12.5,1500\n"
	series, err := LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, series, 2)

	b := series[1]
	assert.Equal(t, 12.5, b.Price)
	assert.Equal(t, 13.0, b.HighOrPrice())
	assert.Equal(t, 10.0, b.LowOrPrice())
	assert.Equal(t, 11.0, b.OpenOrPrice())
	assert.Equal(t, 1500.0, b.VolumeOrZero())
}

func TestLoadCSV_PriceOnlyAndEmptyCells(t *testing.T) {
	in := "price,high,volume\n" +
		"100,,\n" +
		"101,102,50\n"
	series, err := LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.True(t, series[0].High.IsNone())
	assert.True(t, series[0].Volume.IsNone())
	assert.True(t, series[0].Open.IsNone())
	assert.Equal(t, 100.0, series[0].HighOrPrice())
	assert.Equal(t, 0.0, series[0].VolumeOrZero())
	assert.Equal(t, 102.0, series[1].HighOrPrice())
}

func TestLoadCSV_Errors(t *testing.T) {
	cases := map[string]string{
		"bad number":    "price\nabc\n",
		"missing price": "high,low\n10,9\n",
		"negative":      "price\n-5\n",
		"bad volume":    "price,volume\n10,-1\n",
	}
	for name, in := range cases {
		_, err := LoadCSV(strings.NewReader(in))
		require.Error(t, err, name)
		assert.True(t, errors.HasCode(err, errors.ErrCodeDataParseFailed), name)
	}
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, os.WriteFile(path, []byte("price\n1\n2\n3\n"), 0o600))

	series, err := LoadCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, series.Closes())

	_, err = LoadCSVFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDataReadFailed))
}

func TestGenerator_Deterministic(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Count = 200

	a := NewGenerator(7).Generate(cfg)
	b := NewGenerator(7).Generate(cfg)
	require.Len(t, a, 200)
	assert.Equal(t, a, b)

	c := NewGenerator(8).Generate(cfg)
	assert.NotEqual(t, a.Closes(), c.Closes())
}

func TestGenerator_BarsAreConsistent(t *testing.T) {
	for _, b := range Generate(1000) {
		assert.Greater(t, b.Price, 0.0)
		assert.GreaterOrEqual(t, b.HighOrPrice(), b.Price)
		assert.GreaterOrEqual(t, b.HighOrPrice(), b.OpenOrPrice())
		assert.LessOrEqual(t, b.LowOrPrice(), b.Price)
		assert.LessOrEqual(t, b.LowOrPrice(), b.OpenOrPrice())
		assert.GreaterOrEqual(t, b.VolumeOrZero(), 0.0)
	}
}

func TestGenerator_EmptyCount(t *testing.T) {
	assert.Empty(t, Generate(0))
}
