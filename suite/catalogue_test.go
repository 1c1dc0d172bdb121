package suite

import (
	"math"
	"testing"

	testifysuite "github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/evdnx/gosignal/config"
	"github.com/evdnx/gosignal/errors"
	"github.com/evdnx/gosignal/feed"
	"github.com/evdnx/gosignal/indicator/core"
	"github.com/evdnx/gosignal/mocks"
)

type CatalogueTestSuite struct {
	testifysuite.Suite
	catalogue *Catalogue
}

func TestCatalogueSuite(t *testing.T) {
	testifysuite.Run(t, new(CatalogueTestSuite))
}

func (s *CatalogueTestSuite) SetupTest() {
	c, err := New(config.DefaultConfig())
	s.Require().NoError(err)
	s.catalogue = c
}

func ramp(from, to float64) core.Series {
	var series core.Series
	for p := from; p <= to; p++ {
		series = append(series, core.NewBar(p))
	}
	return series
}

func constant(n int, price float64) core.Series {
	series := make(core.Series, n)
	for i := range series {
		series[i] = core.NewBar(price)
	}
	return series
}

// recordingReporter keeps every report for inspection.
type recordingReporter struct {
	names []string
	errs  []error
}

func (r *recordingReporter) Report(name string, err error) {
	r.names = append(r.names, name)
	r.errs = append(r.errs, err)
}

func (s *CatalogueTestSuite) TestOrderAndSize() {
	names := s.catalogue.Names()
	s.Len(names, 59)
	s.Equal(59, s.catalogue.Len())

	s.Equal("RSI Overbought/Oversold", names[0])
	s.Equal("MACD Cross", names[1])
	s.Equal("Simple Moving Average (SMA)", names[3])
	s.Equal("Trix Indicator", names[41])
	s.Equal("Accumulation/Distribution Line (ADL)", names[42])
	s.Equal("Balance of Power (BOP)", names[58])

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		s.False(seen[n], "duplicate strategy %q", n)
		seen[n] = true
	}
}

func (s *CatalogueTestSuite) TestStrategiesReturnsCopy() {
	list := s.catalogue.Strategies()
	list[0].Name = "changed"
	s.Equal("RSI Overbought/Oversold", s.catalogue.Strategies()[0].Name)

	for _, st := range list[1:] {
		s.NotEmpty(st.Description)
		s.NotEmpty(st.Label())
	}
}

func (s *CatalogueTestSuite) TestLookup() {
	st, err := s.catalogue.Lookup("VWAP")
	s.NoError(err)
	s.Equal("VWAP", st.Name)

	_, err = s.catalogue.Lookup("Nope")
	s.Error(err)
	s.True(errors.HasCode(err, errors.ErrCodeStrategyNotFound))

	_, err = s.catalogue.Evaluate("Nope", ramp(1, 10))
	s.True(errors.HasCode(err, errors.ErrCodeStrategyNotFound))
}

func (s *CatalogueTestSuite) TestNewRejectsInvalidConfig() {
	cfg := config.DefaultConfig()
	cfg.Momentum.RSIPeriod = 0
	c, err := New(cfg)
	s.Error(err)
	s.Nil(c)
	s.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (s *CatalogueTestSuite) TestSMARampScenario() {
	res, err := s.catalogue.Evaluate("Simple Moving Average (SMA)", ramp(100, 129))
	s.NoError(err)
	s.Equal(Result{Match: true, Signal: SignalBullish, Description: "Simple Moving Average"}, res)
}

func (s *CatalogueTestSuite) TestRSIConstantScenario() {
	res, err := s.catalogue.Evaluate("RSI Overbought/Oversold", constant(15, 100))
	s.NoError(err)
	s.Equal(Result{Match: true, Signal: SignalOverbought, Description: "RSI Overbought/Oversold"}, res)
}

func (s *CatalogueTestSuite) TestRampClassifications() {
	series := ramp(100, 129)
	cases := []struct {
		name  string
		match bool
		label string
	}{
		// %R is 0 at the top of the range. Revisions disagree on the
		// boundary direction; above -20 is read as Overbought here.
		{"Williams %R", true, SignalOverbought},
		// 50/200 SMAs are still warming up
		{"Golden Cross", false, SignalNone},
		{"Death Cross", false, SignalNone},
		// upper band is 119.5 + 2*sqrt(33.25)
		{"Bollinger Bands Breakout", false, "No Signal | No Signal"},
		{"Mean Reversion", true, "Sell"},
		{"Price Action Trading", true, SignalBullish},
		{"Trend Following", true, SignalBullish},
		{"Trendline Breakout", true, "Trendline Breakout"},
		{"Aroon Indicator", true, SignalBullish},
		{"Rate of Change (ROC)", true, SignalBullish},
		// price-only bars carry no volume
		{"On-Balance Volume (OBV)", true, SignalBearish},
		{"Exponential Moving Average (EMA)", true, SignalBullish},
		{"Weighted Moving Average (WMA)", true, SignalBullish},
	}
	for _, tc := range cases {
		res, err := s.catalogue.Evaluate(tc.name, series)
		s.NoError(err, tc.name)
		s.Equal(tc.match, res.Match, tc.name)
		s.Equal(tc.label, res.Signal, tc.name)
	}
}

func (s *CatalogueTestSuite) TestEvaluateAllOnGeneratedBars() {
	series := feed.Generate(300)
	results := s.catalogue.EvaluateAll(series)
	s.Len(results, s.catalogue.Len())

	strategies := s.catalogue.Strategies()
	for i, r := range results {
		s.False(r.IsError(), "strategy %q failed", strategies[i].Name)
		s.Equal(strategies[i].Label(), r.Description)
		s.NotEmpty(r.Signal)
	}
}

func (s *CatalogueTestSuite) TestEvaluateAllIsIdempotent() {
	series := feed.Generate(250)
	s.Equal(s.catalogue.EvaluateAll(series), s.catalogue.EvaluateAll(series))
}

func (s *CatalogueTestSuite) TestEmptySeriesDegradesPerStrategy() {
	rec := &recordingReporter{}
	c, err := New(config.DefaultConfig(), WithReporter(rec))
	s.Require().NoError(err)

	results := c.EvaluateAll(core.Series{})
	s.Len(results, c.Len())

	errorsSeen := 0
	for _, r := range results {
		if r.IsError() {
			errorsSeen++
			s.False(r.Match)
		}
	}
	s.Greater(errorsSeen, 0)
	s.Less(errorsSeen, c.Len())
	s.Len(rec.names, errorsSeen)

	res, err := c.Evaluate("Simple Moving Average (SMA)", core.Series{})
	s.NoError(err)
	s.Equal(Result{Match: false, Signal: SignalError, Description: "Simple Moving Average"}, res)
}

func (s *CatalogueTestSuite) TestNonFiniteValueIsReported() {
	ctrl := gomock.NewController(s.T())
	reporter := mocks.NewMockReporter(ctrl)

	c, err := New(config.DefaultConfig(), WithReporter(reporter))
	s.Require().NoError(err)

	series := ramp(100, 129)
	series[len(series)-1] = core.NewBar(math.NaN())

	reporter.EXPECT().
		Report("Simple Moving Average (SMA)", gomock.Any()).
		Do(func(_ string, err error) {
			s.True(errors.HasCode(err, errors.ErrCodeIndicatorCalculation))
		}).
		Times(1)

	res, err := c.Evaluate("Simple Moving Average (SMA)", series)
	s.NoError(err)
	s.True(res.IsError())
	s.Equal("Simple Moving Average", res.Description)
}

func (s *CatalogueTestSuite) TestPanicIsRecovered() {
	ctrl := gomock.NewController(s.T())
	reporter := mocks.NewMockReporter(ctrl)

	c := &Catalogue{
		strategies: []Strategy{
			{Name: "Boom", Description: "always panics", label: "Boom", rule: func(core.Series) (Result, error) {
				panic("boom")
			}},
			{Name: "Boom Error", Description: "panics with an error", label: "Boom Error", rule: func(core.Series) (Result, error) {
				panic(errors.New(errors.ErrCodeUnknown, "bad"))
			}},
			{Name: "Fine", Description: "always bullish", label: "Fine", rule: func(core.Series) (Result, error) {
				return directional("Fine", true), nil
			}},
		},
		reporter: NopReporter{},
	}
	WithReporter(reporter)(c)

	reporter.EXPECT().
		Report("Boom", gomock.Any()).
		Do(func(_ string, err error) {
			s.True(errors.HasCode(err, errors.ErrCodeStrategyRuntimeError))
			s.Contains(err.Error(), "boom")
		})
	reporter.EXPECT().
		Report("Boom Error", gomock.Any()).
		Do(func(_ string, err error) {
			s.True(errors.HasCode(err, errors.ErrCodeStrategyRuntimeError))
		})

	results := c.EvaluateAll(ramp(1, 5))
	s.Equal([]Result{
		{Match: false, Signal: SignalError, Description: "Boom"},
		{Match: false, Signal: SignalError, Description: "Boom Error"},
		{Match: true, Signal: SignalBullish, Description: "Fine"},
	}, results)
}

func (s *CatalogueTestSuite) TestStrategyEvaluateExposesRawError() {
	st, err := s.catalogue.Lookup("VWAP")
	s.Require().NoError(err)

	_, err = st.Evaluate(core.Series{})
	s.Error(err)
	s.True(errors.IsInsufficientDataError(err))
}

func (s *CatalogueTestSuite) TestWithNilReporterKeepsDefault() {
	c, err := New(config.DefaultConfig(), WithReporter(nil))
	s.Require().NoError(err)
	s.IsType(NopReporter{}, c.reporter)
}

func (s *CatalogueTestSuite) TestZapReporter() {
	obsCore, logs := observer.New(zap.WarnLevel)
	c, err := New(config.DefaultConfig(), WithReporter(NewZapReporter(zap.New(obsCore))))
	s.Require().NoError(err)

	_, err = c.Evaluate("VWAP", core.Series{})
	s.NoError(err)

	entries := logs.FilterMessage("strategy evaluation failed").All()
	s.Len(entries, 1)
	s.Equal("VWAP", entries[0].ContextMap()["strategy"])

	s.NotPanics(func() { NewZapReporter(nil).Report("x", errors.New(errors.ErrCodeUnknown, "y")) })
}
