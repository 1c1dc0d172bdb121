package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func results(signals ...string) []Result {
	out := make([]Result, len(signals))
	for i, sig := range signals {
		out[i] = Result{Match: sig != SignalNone, Signal: sig, Description: sig}
	}
	return out
}

func TestBiasOf(t *testing.T) {
	cases := map[string]Bias{
		SignalBullish:                  BiasBullish,
		"Bullish Cross":                BiasBullish,
		SignalOversold:                 BiasBullish,
		"Buy":                          BiasBullish,
		SignalBearish:                  BiasBearish,
		SignalOverbought:               BiasBearish,
		"Sell":                         BiasBearish,
		SignalError:                    BiasError,
		SignalNone:                     BiasNeutral,
		"Strong Trend":                 BiasNeutral,
		"No Signal | Bearish Breakout": BiasBearish,
		"Bullish Breakout | No Signal": BiasBullish,
		"No Signal | No Signal":        BiasNeutral,
	}
	for signal, want := range cases {
		assert.Equal(t, want, BiasOf(signal), signal)
	}
}

func TestSummarize(t *testing.T) {
	cases := []struct {
		name    string
		in      []Result
		verdict string
	}{
		{"empty", nil, VerdictNeutral},
		{"single directional", results(SignalBullish, SignalNone), VerdictNeutral},
		{"all bullish", results(SignalBullish, "Bullish Cross", "Buy"), VerdictStrongBullish},
		{"mostly bullish", results(SignalBullish, SignalBullish, SignalBullish, SignalBullish, SignalBearish, SignalBearish), VerdictBullish},
		{"balanced", results(SignalBullish, SignalBearish), VerdictNeutral},
		{"mostly bearish", results(SignalBearish, SignalBearish, SignalBearish, SignalBearish, SignalBullish, SignalBullish), VerdictBearish},
		{"all bearish", results(SignalBearish, SignalOverbought), VerdictStrongBearish},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.verdict, Summarize(tc.in).Verdict, tc.name)
	}
}

func TestSummarizeCounts(t *testing.T) {
	sum := Summarize(results(SignalBullish, SignalBearish, SignalError, SignalNone, "High Volatility"))
	assert.Equal(t, Summary{
		Total:   5,
		Matched: 4,
		Bullish: 1,
		Bearish: 1,
		Neutral: 2,
		Errors:  1,
		Verdict: VerdictNeutral,
	}, sum)
}
