package gosignal

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateDefaultCatalogue(t *testing.T) {
	results, summary, err := Evaluate(GenerateSeries(300))
	require.NoError(t, err)
	assert.Len(t, results, 59)
	assert.Equal(t, 59, summary.Total)
	assert.Zero(t, summary.Errors)
	assert.Equal(t, summary.Total, summary.Bullish+summary.Bearish+summary.Neutral+summary.Errors)
}

func TestEvaluateEmptySeries(t *testing.T) {
	results, summary, err := Evaluate(Series{})
	require.NoError(t, err)
	assert.Len(t, results, 59)
	assert.Greater(t, summary.Errors, 0)
}

func TestCatalogueFromCSV(t *testing.T) {
	var b strings.Builder
	b.WriteString("price\n")
	for p := 100; p < 130; p++ {
		b.WriteString(strconv.Itoa(p) + "\n")
	}
	series, err := LoadCSV(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Equal(t, 30, series.Len())
	assert.Equal(t, 129.0, series[29].Price)

	c, err := NewCatalogue(DefaultConfig())
	require.NoError(t, err)
	res, err := c.Evaluate("Simple Moving Average (SMA)", series)
	require.NoError(t, err)
	assert.Equal(t, Result{Match: true, Signal: "Bullish", Description: "Simple Moving Average"}, res)
}

func TestNewCatalogueRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trend.SMAPeriod = 0
	_, err := NewCatalogue(cfg)
	assert.Error(t, err)
}
