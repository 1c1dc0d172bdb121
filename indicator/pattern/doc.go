// Package pattern holds price-structure indicators: retracement and pivot
// levels, swing counting, fractals, candlestick and breakout detection.
package pattern
