package core

import (
	"errors"
	"fmt"
	"math"
)

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

// keepLast returns the last n elements of a slice (or the whole slice if it is
// shorter). It works for any element type thanks to Go generics.
func keepLast[T any](s []T, n int) []T {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// KeepLast is the exported wrapper for keepLast to share slice logic across packages.
func KeepLast[T any](s []T, n int) []T {
	return keepLast(s, n)
}

func copySlice(src []float64) []float64 {
	if src == nil {
		return nil
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}

// Zeros returns a zero-filled slice of length n, the degenerate result for a
// series indicator that cannot be computed.
func Zeros(n int) []float64 {
	if n < 0 {
		n = 0
	}
	return make([]float64, n)
}

// LastOf returns the final element of values, or 0 for an empty slice.
func LastOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1]
}

/* -------------------------------------------------------------------------
   Numeric helpers
--------------------------------------------------------------------------*/

func abs(v float64) float64 { return math.Abs(v) }

func clamp(value, min, max float64) float64 {
	if min == max {
		return min // avoid division‑by‑zero style issues
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Clamp exposes clamp to other packages.
func Clamp(value, min, max float64) float64 {
	return clamp(value, min, max)
}

// Sum adds up values.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Highest returns the maximum of values, 0 for an empty slice.
func Highest(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	hi := values[0]
	for _, v := range values[1:] {
		if v > hi {
			hi = v
		}
	}
	return hi
}

// Lowest returns the minimum of values, 0 for an empty slice.
func Lowest(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	lo := values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
	}
	return lo
}

// PopulationStdDev returns the population standard deviation (divisor n) of
// values around mean.
func PopulationStdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// calculateWMA computes the Weighted Moving Average of the last period values.
// The most recent value receives the highest weight (standard WMA definition).
func calculateWMA(data []float64, period int) (float64, error) {
	if period < 1 {
		return 0, errors.New("period must be at least 1")
	}
	if len(data) < period {
		return 0, fmt.Errorf("insufficient data for WMA: need %d, have %d", period, len(data))
	}
	sum, weightSum := 0.0, 0.0
	for i := 0; i < period; i++ {
		weight := float64(i + 1) // weight increases: 1, 2, ..., period (newest gets highest)
		sum += data[len(data)-period+i] * weight
		weightSum += weight
	}
	return sum / weightSum, nil
}

// SafeDiv returns num/den, or fallback when den is zero.
func SafeDiv(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	return num / den
}

/* -------------------------------------------------------------------------
   Validation helpers
--------------------------------------------------------------------------*/

func isNonNegativePrice(price float64) bool {
	return price >= 0 && !math.IsNaN(price) && !math.IsInf(price, 0)
}

func isValidVolume(volume float64) bool {
	return volume >= 0 && !math.IsNaN(volume) && !math.IsInf(volume, 0)
}

// IsNonNegativePrice exposes the non-negative price validator.
func IsNonNegativePrice(price float64) bool { return isNonNegativePrice(price) }

// IsValidVolume exposes the volume validator.
func IsValidVolume(volume float64) bool { return isValidVolume(volume) }

// IsFinite reports whether every value is neither NaN nor ±Inf.
func IsFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
