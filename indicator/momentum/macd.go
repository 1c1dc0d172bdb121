package momentum

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9

	DefaultPPOFastPeriod   = 12
	DefaultPPOSlowPeriod   = 26
	DefaultPPOSignalPeriod = 9
)

// MACD returns the Moving Average Convergence Divergence line
// (EMA(fast) - EMA(slow)) and its signal line, the EMA of the defined part of
// the MACD line. The line is defined from slot slow-1. Fewer than slow+signal
// bars yields all zeros.
func MACD(s core.Series, fast, slow, signal int) core.DualLine {
	n := s.Len()
	if fast < 1 || slow < 1 || signal < 1 || n < max(fast, slow)+signal {
		return core.NewDualLine(n)
	}
	closes := s.Closes()
	fastEMA := core.EMAValues(closes, fast)
	slowEMA := core.EMAValues(closes, slow)

	start := max(fast, slow) - 1
	line := core.Zeros(n)
	for i := start; i < n; i++ {
		line[i] = fastEMA[i] - slowEMA[i]
	}
	return core.DualLine{Line: line, Signal: smoothEMA(line, start, signal)}
}

// PPO is the Percentage Price Oscillator: the MACD line expressed as a
// percentage of the slow EMA, with an EMA signal line. A zero slow EMA gives 0.
func PPO(s core.Series, fast, slow, signal int) core.DualLine {
	n := s.Len()
	if fast < 1 || slow < 1 || signal < 1 || n < max(fast, slow)+signal {
		return core.NewDualLine(n)
	}
	closes := s.Closes()
	fastEMA := core.EMAValues(closes, fast)
	slowEMA := core.EMAValues(closes, slow)

	start := max(fast, slow) - 1
	line := core.Zeros(n)
	for i := start; i < n; i++ {
		line[i] = core.SafeDiv(fastEMA[i]-slowEMA[i], slowEMA[i], 0) * 100
	}
	return core.DualLine{Line: line, Signal: smoothEMA(line, start, signal)}
}

// smoothEMA runs the price EMA over values[start:], the defined part of a
// derived line.
func smoothEMA(values []float64, start, period int) []float64 {
	return core.SmoothFrom(values, start, func(tail []float64) []float64 {
		return core.EMAValues(tail, period)
	})
}

// smoothSMA is smoothEMA with a simple moving average.
func smoothSMA(values []float64, start, period int) []float64 {
	return core.SmoothFrom(values, start, func(tail []float64) []float64 {
		return core.SMAValues(tail, period)
	})
}
