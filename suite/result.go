package suite

import (
	"github.com/evdnx/gosignal/indicator/core"
)

// Signal labels shared by several strategies.
const (
	SignalBullish    = "Bullish"
	SignalBearish    = "Bearish"
	SignalNeutral    = "Neutral"
	SignalNone       = "No Signal"
	SignalOverbought = "Overbought"
	SignalOversold   = "Oversold"
	SignalError      = "Error"
)

// Result is the outcome of evaluating one strategy against a series.
type Result struct {
	Match       bool   `json:"match"`
	Signal      string `json:"signal"`
	Description string `json:"description"`
}

// IsError reports whether the result is the sentinel produced for a failed
// evaluation.
func (r Result) IsError() bool { return r.Signal == SignalError }

// errorResult is what a failing strategy yields instead of propagating.
func errorResult(label string) Result {
	return Result{Match: false, Signal: SignalError, Description: label}
}

type rule func(s core.Series) (Result, error)

// Strategy is one named entry of the catalogue. Its rule is fixed when the
// catalogue is built.
type Strategy struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	label string
	rule  rule
}

// Label is the short name carried in every Result of the strategy.
func (st Strategy) Label() string { return st.label }

// Evaluate runs the raw rule without the catalogue's recovery boundary: a
// returned error is passed through and a panic is not recovered.
func (st Strategy) Evaluate(s core.Series) (Result, error) {
	return st.rule(s)
}
