package suite

import (
	"github.com/evdnx/gosignal/errors"
	"github.com/evdnx/gosignal/indicator/core"
)

// checkFinite rejects NaN and infinite indicator output, which the indicator
// packages only produce when fed NaN or infinite prices.
func checkFinite(values ...float64) error {
	if !core.IsFinite(values...) {
		return errors.New(errors.ErrCodeIndicatorCalculation, "indicator produced a non-finite value")
	}
	return nil
}

func directional(label string, bullish bool) Result {
	if bullish {
		return Result{Match: true, Signal: SignalBullish, Description: label}
	}
	return Result{Match: true, Signal: SignalBearish, Description: label}
}

// zone labels value above upper, below lower, or in between. Only the outer
// zones match.
func zone(label string, value, upper, lower float64, above, below, inside string) Result {
	signal := inside
	switch {
	case value > upper:
		signal = above
	case value < lower:
		signal = below
	}
	return Result{Match: signal != inside, Signal: signal, Description: label}
}

// priceAbove is Bullish while the last price is above level(s).
func priceAbove(label string, level func(core.Series) float64) rule {
	return func(s core.Series) (Result, error) {
		price, err := s.LastPrice()
		if err != nil {
			return Result{}, err
		}
		lvl := level(s)
		if err := checkFinite(price, lvl); err != nil {
			return Result{}, err
		}
		return directional(label, price > lvl), nil
	}
}

// positive is Bullish while value(s) is above zero.
func positive(label string, value func(core.Series) float64) rule {
	return func(s core.Series) (Result, error) {
		v := value(s)
		if err := checkFinite(v); err != nil {
			return Result{}, err
		}
		return directional(label, v > 0), nil
	}
}

// oscillator classifies value(s) against overbought and oversold levels.
func oscillator(label string, value func(core.Series) float64, overbought, oversold float64, inside string) rule {
	return func(s core.Series) (Result, error) {
		v := value(s)
		if err := checkFinite(v); err != nil {
			return Result{}, err
		}
		return zone(label, v, overbought, oversold, SignalOverbought, SignalOversold, inside), nil
	}
}

// rising is Bullish when the last value of the series exceeds the previous
// one. Fewer than two values give No Signal.
func rising(label string, series func(core.Series) []float64) rule {
	return func(s core.Series) (Result, error) {
		values := series(s)
		n := len(values)
		if n < 2 {
			return Result{Match: false, Signal: SignalNone, Description: label}, nil
		}
		if err := checkFinite(values[n-1], values[n-2]); err != nil {
			return Result{}, err
		}
		return directional(label, values[n-1] > values[n-2]), nil
	}
}

// crossing is Bullish while the line sits above its signal line.
func crossing(label string, lines func(core.Series) core.DualLine) rule {
	return func(s core.Series) (Result, error) {
		d := lines(s)
		line, signal := d.LastLine(), d.LastSignal()
		if err := checkFinite(line, signal); err != nil {
			return Result{}, err
		}
		return directional(label, line > signal), nil
	}
}
