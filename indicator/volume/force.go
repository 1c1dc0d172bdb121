package volume

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultForceIndexPeriod = 13
	DefaultEMVPeriod        = 14
	DefaultEMVScale         = 1e8
)

// ForceIndex returns the EMA(period) of (price change * volume) at the last
// bar. Needs period+1 bars.
func ForceIndex(s core.Series, period int) float64 {
	n := s.Len()
	if period < 1 || n < period+1 {
		return 0
	}
	raw := make([]float64, n-1)
	for i := 1; i < n; i++ {
		raw[i-1] = (s[i].Price - s[i-1].Price) * s[i].VolumeOrZero()
	}
	return core.LastOf(core.EMAValues(raw, period))
}

// EMV returns the Ease of Movement averaged with SMA(period). Each bar's
// value is the midpoint move divided by the box ratio (volume/scale)/(high-low);
// bars with no range or no volume contribute 0.
func EMV(s core.Series, period int, scale float64) float64 {
	n := s.Len()
	if period < 1 || n < period+1 || scale <= 0 {
		return 0
	}
	raw := make([]float64, n-1)
	for i := 1; i < n; i++ {
		high, low := s[i].HighOrPrice(), s[i].LowOrPrice()
		move := (high+low)/2 - (s[i-1].HighOrPrice()+s[i-1].LowOrPrice())/2
		box := core.SafeDiv(s[i].VolumeOrZero()/scale, high-low, 0)
		raw[i-1] = core.SafeDiv(move, box, 0)
	}
	return core.LastOf(core.SMAValues(raw, period))
}
