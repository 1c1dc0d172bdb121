package core

import (
	"github.com/moznion/go-optional"

	"github.com/evdnx/gosignal/errors"
)

// Bar is one observation of the price series. Only Price is required; the
// remaining fields fall back to Price (High, Low, Open) or 0 (Volume) when
// absent.
type Bar struct {
	Price  float64                  `json:"price"`
	High   optional.Option[float64] `json:"high,omitempty"`
	Low    optional.Option[float64] `json:"low,omitempty"`
	Open   optional.Option[float64] `json:"open,omitempty"`
	Volume optional.Option[float64] `json:"volume,omitempty"`
}

// NewBar returns a price-only bar.
func NewBar(price float64) Bar {
	return Bar{Price: price}
}

// NewOHLCV returns a bar with every field populated.
func NewOHLCV(open, high, low, close, volume float64) Bar {
	return Bar{
		Price:  close,
		High:   optional.Some(high),
		Low:    optional.Some(low),
		Open:   optional.Some(open),
		Volume: optional.Some(volume),
	}
}

// HighOrPrice returns the bar high, or the price when no high was recorded.
func (b Bar) HighOrPrice() float64 { return b.High.TakeOr(b.Price) }

// LowOrPrice returns the bar low, or the price when no low was recorded.
func (b Bar) LowOrPrice() float64 { return b.Low.TakeOr(b.Price) }

// OpenOrPrice returns the bar open, or the price when no open was recorded.
func (b Bar) OpenOrPrice() float64 { return b.Open.TakeOr(b.Price) }

// VolumeOrZero returns the bar volume, or 0 when no volume was recorded.
func (b Bar) VolumeOrZero() float64 { return b.Volume.TakeOr(0) }

// Series is an ordered sequence of bars, oldest first.
type Series []Bar

// FromValues wraps plain values into price-only bars so a derived series can
// be fed back into any indicator.
func FromValues(values []float64) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = Bar{Price: v}
	}
	return s
}

// Len returns the number of bars.
func (s Series) Len() int { return len(s) }

// Last returns the most recent bar.
func (s Series) Last() (Bar, error) {
	if len(s) == 0 {
		return Bar{}, errors.NewInsufficientDataError(1, 0, "series is empty")
	}
	return s[len(s)-1], nil
}

// LastPrice returns the price of the most recent bar.
func (s Series) LastPrice() (float64, error) {
	b, err := s.Last()
	if err != nil {
		return 0, err
	}
	return b.Price, nil
}

// Tail returns the last n bars (or the whole series when it is shorter).
func (s Series) Tail(n int) Series {
	if n < 0 {
		n = 0
	}
	return keepLast(s, n)
}

// Closes returns the bar prices.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Price
	}
	return out
}

// Highs returns the bar highs with the price fallback applied.
func (s Series) Highs() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.HighOrPrice()
	}
	return out
}

// Lows returns the bar lows with the price fallback applied.
func (s Series) Lows() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.LowOrPrice()
	}
	return out
}

// Volumes returns the bar volumes, 0 where absent.
func (s Series) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.VolumeOrZero()
	}
	return out
}

// OpenAt returns the open of bar i. Bars without a recorded open use the
// previous bar's price; the first bar falls back to its own price.
func (s Series) OpenAt(i int) float64 {
	b := s[i]
	if b.Open.IsSome() {
		return b.Open.Unwrap()
	}
	if i == 0 {
		return b.Price
	}
	return s[i-1].Price
}

// TypicalPrice returns (high+low+close)/3 for bar i.
func (s Series) TypicalPrice(i int) float64 {
	b := s[i]
	return (b.HighOrPrice() + b.LowOrPrice() + b.Price) / 3
}

// TrueRange returns max(high-low, |high-prevClose|, |low-prevClose|) for bar
// i >= 1, and high-low for the first bar.
func (s Series) TrueRange(i int) float64 {
	high, low := s[i].HighOrPrice(), s[i].LowOrPrice()
	if i == 0 {
		return high - low
	}
	prevClose := s[i-1].Price
	return max(high-low, abs(high-prevClose), abs(low-prevClose))
}
