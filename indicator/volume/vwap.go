package volume

import "github.com/evdnx/gosignal/indicator/core"

// VWAP returns the volume-weighted average price over the whole series:
// Σ(price*volume)/Σ(volume). An empty series or zero total volume gives 0.
func VWAP(s core.Series) float64 {
	var pv, vol float64
	for _, b := range s {
		v := b.VolumeOrZero()
		pv += b.Price * v
		vol += v
	}
	return core.SafeDiv(pv, vol, 0)
}

// OBVSeries returns On-Balance Volume starting from 0: each bar adds its
// volume on an up close and subtracts it on a down close.
func OBVSeries(s core.Series) []float64 {
	out := core.Zeros(s.Len())
	for i := 1; i < s.Len(); i++ {
		out[i] = out[i-1]
		switch change := s[i].Price - s[i-1].Price; {
		case change > 0:
			out[i] += s[i].VolumeOrZero()
		case change < 0:
			out[i] -= s[i].VolumeOrZero()
		}
	}
	return out
}

// OBV returns the latest On-Balance Volume.
func OBV(s core.Series) float64 {
	return core.LastOf(OBVSeries(s))
}

// PVTSeries returns the Price Volume Trend: the running sum of volume scaled
// by each bar's fractional price change. A zero previous price adds nothing.
func PVTSeries(s core.Series) []float64 {
	out := core.Zeros(s.Len())
	for i := 1; i < s.Len(); i++ {
		prev := s[i-1].Price
		out[i] = out[i-1] + core.SafeDiv(s[i].Price-prev, prev, 0)*s[i].VolumeOrZero()
	}
	return out
}
