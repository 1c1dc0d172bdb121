package momentum

import "github.com/evdnx/gosignal/indicator/core"

const DefaultRVIPeriod = 10

// swma is the 1-2-2-1 symmetric weighted average ending at slot i.
func swma(values []float64, i int) float64 {
	return (values[i] + 2*values[i-1] + 2*values[i-2] + values[i-3]) / 6
}

// RVI returns the Relative Vigor Index and its signal line. Each bar
// contributes close-open (vigor) and high-low (range), both smoothed with a
// 1-2-2-1 weighting; the index is the ratio of their period sums and the
// signal line is the same weighting applied to the index. A zero range sum
// gives 0.
func RVI(s core.Series, period int) core.DualLine {
	n := s.Len()
	if period < 1 || n < period+3 {
		return core.NewDualLine(n)
	}
	vigor := make([]float64, n)
	spread := make([]float64, n)
	for i := range s {
		vigor[i] = s[i].Price - s.OpenAt(i)
		spread[i] = s[i].HighOrPrice() - s[i].LowOrPrice()
	}

	num := core.Zeros(n)
	den := core.Zeros(n)
	for i := 3; i < n; i++ {
		num[i] = swma(vigor, i)
		den[i] = swma(spread, i)
	}

	line := core.Zeros(n)
	first := period + 2
	for i := first; i < n; i++ {
		line[i] = core.SafeDiv(core.Sum(num[i-period+1:i+1]), core.Sum(den[i-period+1:i+1]), 0)
	}
	signal := core.Zeros(n)
	for i := first + 3; i < n; i++ {
		signal[i] = swma(line, i)
	}
	return core.DualLine{Line: line, Signal: signal}
}
