package volume

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultVolumeOscShort = 14
	DefaultVolumeOscLong  = 28

	DefaultKlingerShort  = 34
	DefaultKlingerLong   = 55
	DefaultKlingerSignal = 13
)

// VolumeOscillator returns the percentage difference between the short and
// long SMAs of volume. A zero long average gives 0.
func VolumeOscillator(s core.Series, short, long int) float64 {
	n := s.Len()
	if short < 1 || long < 1 || n < max(short, long) {
		return 0
	}
	vols := s.Volumes()
	shortMA := core.LastOf(core.SMAValues(vols, short))
	longMA := core.LastOf(core.SMAValues(vols, long))
	return core.SafeDiv(shortMA-longMA, longMA, 0) * 100
}

// Klinger returns the Klinger volume oscillator, EMA(short) - EMA(long) of
// signed volume, with an EMA(signal) signal line. Volume is signed by the
// direction of the bar's high+low+close against the previous bar.
func Klinger(s core.Series, short, long, signal int) core.DualLine {
	n := s.Len()
	if short < 1 || long < 1 || signal < 1 || n < max(short, long)+signal {
		return core.NewDualLine(n)
	}
	signed := make([]float64, n-1)
	for i := 1; i < n; i++ {
		hlc := s[i].HighOrPrice() + s[i].LowOrPrice() + s[i].Price
		prev := s[i-1].HighOrPrice() + s[i-1].LowOrPrice() + s[i-1].Price
		v := s[i].VolumeOrZero()
		if hlc < prev {
			v = -v
		}
		signed[i-1] = v
	}
	shortEMA := core.EMAValues(signed, short)
	longEMA := core.EMAValues(signed, long)

	// signed[j] belongs to bar j+1
	start := max(short, long)
	line := core.Zeros(n)
	for i := start; i < n; i++ {
		line[i] = shortEMA[i-1] - longEMA[i-1]
	}
	sig := core.SmoothFrom(line, start, func(tail []float64) []float64 {
		return core.EMAValues(tail, signal)
	})
	return core.DualLine{Line: line, Signal: sig}
}
