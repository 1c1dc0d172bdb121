package volume

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultCMFPeriod = 20
	DefaultMFIPeriod = 14
)

// moneyFlowMultiplier is ((close-low)-(high-close))/(high-low), 0 for a bar
// with no range.
func moneyFlowMultiplier(b core.Bar) float64 {
	high, low := b.HighOrPrice(), b.LowOrPrice()
	return core.SafeDiv((b.Price-low)-(high-b.Price), high-low, 0)
}

// CMF returns the Chaikin Money Flow over the last period bars: the sum of
// multiplier*volume divided by the volume sum. Zero volume gives 0.
func CMF(s core.Series, period int) float64 {
	n := s.Len()
	if period < 1 || n < period {
		return 0
	}
	var flow, vol float64
	for _, b := range s[n-period:] {
		v := b.VolumeOrZero()
		flow += moneyFlowMultiplier(b) * v
		vol += v
	}
	return core.SafeDiv(flow, vol, 0)
}

// ADLSeries returns the Accumulation/Distribution Line, the running sum of
// multiplier*volume.
func ADLSeries(s core.Series) []float64 {
	out := core.Zeros(s.Len())
	acc := 0.0
	for i, b := range s {
		acc += moneyFlowMultiplier(b) * b.VolumeOrZero()
		out[i] = acc
	}
	return out
}

// MFI returns the Money Flow Index over the last period typical-price
// changes. Bars whose typical price rose contribute positive flow, bars whose
// typical price fell contribute negative flow. With no negative flow the
// index is 100, or 50 when there is no flow at all.
func MFI(s core.Series, period int) float64 {
	n := s.Len()
	if period < 1 || n < period+1 {
		return 0
	}
	var pos, neg float64
	for i := n - period; i < n; i++ {
		tp, prev := s.TypicalPrice(i), s.TypicalPrice(i-1)
		flow := tp * s[i].VolumeOrZero()
		switch {
		case tp > prev:
			pos += flow
		case tp < prev:
			neg += flow
		}
	}
	if neg == 0 {
		if pos == 0 {
			return 50
		}
		return 100
	}
	return 100 - 100/(1+pos/neg)
}
