package feed

import (
	"math"
	"math/rand"

	"github.com/evdnx/gosignal/indicator/core"
)

// GeneratorConfig configures how bars are generated.
type GeneratorConfig struct {
	// Count is the number of bars to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement (0.01 = 1% per bar)
	Volatility float64
	// Trend is the total drift spread across all bars (-0.1 to 0.1 is typical)
	Trend float64
	// VolumeBase is the average volume per bar
	VolumeBase float64
	// VolumeVariance is the variance in volume (0.0 to 1.0)
	VolumeVariance float64
}

// DefaultGeneratorConfig returns a sensible default configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Count:          500,
		InitialPrice:   100.0,
		Volatility:     0.01,
		Trend:          0.0,
		VolumeBase:     10000,
		VolumeVariance: 0.3,
	}
}

// Generator produces OHLCV bars following geometric Brownian motion.
// Two generators with the same seed produce the same bars.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate returns config.Count bars, oldest first.
func (g *Generator) Generate(config GeneratorConfig) core.Series {
	if config.Count <= 0 {
		return core.Series{}
	}
	series := make(core.Series, config.Count)
	current := config.InitialPrice

	for i := 0; i < config.Count; i++ {
		open := current

		// Box-Muller transform for a standard normal draw
		u1 := 1 - g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		drift := config.Trend / float64(config.Count)
		closePrice := open * (1 + config.Volatility*z + drift)
		if closePrice <= 0 {
			closePrice = open * 0.99
		}

		high := math.Max(open, closePrice) + math.Abs(g.rng.Float64()*config.Volatility*open*0.5)
		low := math.Min(open, closePrice) - math.Abs(g.rng.Float64()*config.Volatility*open*0.5)
		if low <= 0 {
			low = math.Min(open, closePrice) * 0.99
		}

		volume := config.VolumeBase * (1.0 + (g.rng.Float64()*2-1)*config.VolumeVariance)
		if volume < 0 {
			volume = config.VolumeBase * 0.1
		}

		series[i] = core.NewOHLCV(
			roundToDecimals(open, 4),
			roundToDecimals(high, 4),
			roundToDecimals(low, 4),
			roundToDecimals(closePrice, 4),
			roundToDecimals(volume, 2),
		)
		current = closePrice
	}
	return series
}

// Generate returns count bars from the default configuration with a fixed
// seed, for tests and benchmarks.
func Generate(count int) core.Series {
	config := DefaultGeneratorConfig()
	config.Count = count
	return NewGenerator(42).Generate(config)
}

func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
