package core

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gosignal/errors"
)

func TestBar_Defaults(t *testing.T) {
	b := NewBar(10)
	assert.Equal(t, 10.0, b.HighOrPrice())
	assert.Equal(t, 10.0, b.LowOrPrice())
	assert.Equal(t, 10.0, b.OpenOrPrice())
	assert.Equal(t, 0.0, b.VolumeOrZero())

	full := NewOHLCV(9, 12, 8, 11, 500)
	assert.Equal(t, 12.0, full.HighOrPrice())
	assert.Equal(t, 8.0, full.LowOrPrice())
	assert.Equal(t, 9.0, full.OpenOrPrice())
	assert.Equal(t, 500.0, full.VolumeOrZero())
}

func TestSeries_Last(t *testing.T) {
	_, err := Series{}.Last()
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientDataError(err))

	s := FromValues([]float64{1, 2, 3})
	last, err := s.LastPrice()
	require.NoError(t, err)
	assert.Equal(t, 3.0, last)
}

func TestSeries_Projections(t *testing.T) {
	s := Series{
		NewOHLCV(1, 3, 0.5, 2, 10),
		{Price: 4, High: optional.Some(5.0)},
	}
	assert.Equal(t, []float64{2, 4}, s.Closes())
	assert.Equal(t, []float64{3, 5}, s.Highs())
	assert.Equal(t, []float64{0.5, 4}, s.Lows())
	assert.Equal(t, []float64{10, 0}, s.Volumes())
	assert.Equal(t, 1, s.Tail(1).Len())
	assert.Equal(t, 2, s.Tail(10).Len())
	assert.Equal(t, 0, s.Tail(-1).Len())
}

func TestSeries_OpenAt(t *testing.T) {
	s := Series{NewBar(10), NewBar(12), {Price: 13, Open: optional.Some(11.5)}}
	assert.Equal(t, 10.0, s.OpenAt(0))
	assert.Equal(t, 10.0, s.OpenAt(1))
	assert.Equal(t, 11.5, s.OpenAt(2))
}

func TestSeries_TrueRange(t *testing.T) {
	s := Series{NewOHLCV(10, 11, 9, 10, 0), NewOHLCV(14, 15, 13, 14, 0)}
	assert.Equal(t, 2.0, s.TrueRange(0))
	// gap up: |15 - 10| dominates the 2-point bar range
	assert.Equal(t, 5.0, s.TrueRange(1))
	assert.InDelta(t, 14.0, s.TypicalPrice(1), 1e-12)
}
