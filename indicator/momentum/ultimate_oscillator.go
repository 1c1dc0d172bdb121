package momentum

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultUltimateShort  = 7
	DefaultUltimateMedium = 14
	DefaultUltimateLong   = 28
)

// UltimateOscillator blends buying pressure over three windows:
// 100*(4*avg(short) + 2*avg(medium) + avg(long))/7, where each average is the
// buying-pressure sum over the true-range sum of the window. Windows with no
// true range contribute 0.
func UltimateOscillator(s core.Series, short, medium, long int) float64 {
	n := s.Len()
	longest := max(short, medium, long)
	if short < 1 || medium < 1 || long < 1 || n < longest+1 {
		return 0
	}
	bp := make([]float64, n)
	tr := make([]float64, n)
	for i := 1; i < n; i++ {
		prevClose := s[i-1].Price
		trueLow := min(s[i].LowOrPrice(), prevClose)
		trueHigh := max(s[i].HighOrPrice(), prevClose)
		bp[i] = s[i].Price - trueLow
		tr[i] = trueHigh - trueLow
	}
	avg := func(period int) float64 {
		return core.SafeDiv(core.Sum(bp[n-period:]), core.Sum(tr[n-period:]), 0)
	}
	uo := 100 * (4*avg(short) + 2*avg(medium) + avg(long)) / 7
	return core.Clamp(uo, 0, 100)
}
