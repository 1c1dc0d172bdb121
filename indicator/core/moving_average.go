package core

// SMAValues returns the simple moving average of values aligned index for
// index with the input. Warm-up slots are 0; when len(values) < period the
// whole result is zero.
func SMAValues(values []float64, period int) []float64 {
	out := Zeros(len(values))
	if period < 1 || len(values) < period {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMAValues returns the exponential moving average of values. Slot period-1
// holds the seed (the mean of the first period values); later slots apply
// ema = (v - prev)*k + prev with k = 2/(period+1). Earlier slots are 0.
func EMAValues(values []float64, period int) []float64 {
	out := Zeros(len(values))
	if period < 1 || len(values) < period {
		return out
	}
	k := 2.0 / float64(period+1)
	out[period-1] = Mean(values[:period])
	for i := period; i < len(values); i++ {
		out[i] = (values[i]-out[i-1])*k + out[i-1]
	}
	return out
}

// WMAValues returns the linearly weighted moving average of values, newest
// value weighted highest. Warm-up slots are 0.
func WMAValues(values []float64, period int) []float64 {
	out := Zeros(len(values))
	if period < 1 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		out[i], _ = calculateWMA(values[:i+1], period)
	}
	return out
}

// WilderValues applies Wilder smoothing avg = (avg*(period-1)+v)/period,
// seeded with the mean of the first period values at slot period-1.
func WilderValues(values []float64, period int) []float64 {
	out := Zeros(len(values))
	if period < 1 || len(values) < period {
		return out
	}
	out[period-1] = Mean(values[:period])
	for i := period; i < len(values); i++ {
		out[i] = (out[i-1]*float64(period-1) + values[i]) / float64(period)
	}
	return out
}

// SmoothFrom applies smooth to values[start:] and re-aligns the result with
// values, leaving slots before start at 0. It lets a derived series be
// smoothed again without its own warm-up zeros seeding the next average.
func SmoothFrom(values []float64, start int, smooth func([]float64) []float64) []float64 {
	out := Zeros(len(values))
	if start < 0 || start >= len(values) {
		return out
	}
	copy(out[start:], smooth(values[start:]))
	return out
}
