// Package gosignal classifies the latest bar of a price series with a fixed
// catalogue of technical-analysis strategies.
//
// The indicator math lives under indicator/, the catalogue under suite/ and
// the tunable periods and thresholds under config/. This package re-exports
// the common entry points so that callers need a single import.
package gosignal

import (
	"io"

	"github.com/evdnx/gosignal/config"
	"github.com/evdnx/gosignal/feed"
	"github.com/evdnx/gosignal/indicator/core"
	"github.com/evdnx/gosignal/suite"
)

// ---- Bars ----
type (
	Bar      = core.Bar
	Series   = core.Series
	PlotData = core.PlotData
)

func NewBar(price float64) Bar { return core.NewBar(price) }

func NewOHLCV(open, high, low, close, volume float64) Bar {
	return core.NewOHLCV(open, high, low, close, volume)
}

func FromValues(values []float64) Series { return core.FromValues(values) }

// LoadCSV reads bars from CSV with a price or close column.
func LoadCSV(r io.Reader) (Series, error) { return feed.LoadCSV(r) }

// GenerateSeries returns count deterministic synthetic bars.
func GenerateSeries(count int) Series { return feed.Generate(count) }

// ---- Config ----
type IndicatorConfig = config.IndicatorConfig

func DefaultConfig() IndicatorConfig { return config.DefaultConfig() }

func LoadConfig(path string) (IndicatorConfig, error) { return config.Load(path) }

// ---- Catalogue ----
type (
	Result    = suite.Result
	Strategy  = suite.Strategy
	Catalogue = suite.Catalogue
	Summary   = suite.Summary
	Reporter  = suite.Reporter
	Option    = suite.Option
)

func NewCatalogue(cfg IndicatorConfig, opts ...Option) (*Catalogue, error) {
	return suite.New(cfg, opts...)
}

func WithReporter(r Reporter) Option { return suite.WithReporter(r) }

func Summarize(results []Result) Summary { return suite.Summarize(results) }

// Evaluate runs the default catalogue over s and summarizes the results.
func Evaluate(s Series) ([]Result, Summary, error) {
	c, err := suite.NewDefault()
	if err != nil {
		return nil, Summary{}, err
	}
	results := c.EvaluateAll(s)
	return results, suite.Summarize(results), nil
}
