package suite

import "strings"

// Bias is the direction a signal label leans.
type Bias int

const (
	BiasNeutral Bias = iota
	BiasBullish
	BiasBearish
	BiasError
)

// Verdict labels produced by Summarize.
const (
	VerdictStrongBullish = "Strong Bullish"
	VerdictBullish       = "Bullish"
	VerdictNeutral       = "Neutral"
	VerdictBearish       = "Bearish"
	VerdictStrongBearish = "Strong Bearish"
)

var signalBias = map[string]Bias{
	SignalBullish:      BiasBullish,
	"Bullish Cross":    BiasBullish,
	"Bullish Breakout": BiasBullish,
	"Buy":              BiasBullish,
	SignalOversold:     BiasBullish,
	SignalBearish:      BiasBearish,
	"Bearish Cross":    BiasBearish,
	"Bearish Breakout": BiasBearish,
	"Sell":             BiasBearish,
	SignalOverbought:   BiasBearish,
	SignalError:        BiasError,
}

// BiasOf maps a signal label to its direction. Oversold leans bullish and
// overbought bearish. A compound "X | Y" label takes the first directional
// part.
func BiasOf(signal string) Bias {
	if b, ok := signalBias[signal]; ok {
		return b
	}
	for _, part := range strings.Split(signal, " | ") {
		if b := signalBias[part]; b == BiasBullish || b == BiasBearish {
			return b
		}
	}
	return BiasNeutral
}

// Summary counts the directional lean of a set of results.
type Summary struct {
	Total   int    `json:"total"`
	Matched int    `json:"matched"`
	Bullish int    `json:"bullish"`
	Bearish int    `json:"bearish"`
	Neutral int    `json:"neutral"`
	Errors  int    `json:"errors"`
	Verdict string `json:"verdict"`
}

// Summarize combines results into one verdict. At least two directional
// results are required; otherwise the verdict is Neutral. The balance
// (bullish-bearish)/(bullish+bearish) of 0.5 or more in either direction is
// Strong, above 0.2 is plain.
func Summarize(results []Result) Summary {
	sum := Summary{Total: len(results)}
	for _, r := range results {
		if r.Match {
			sum.Matched++
		}
		switch BiasOf(r.Signal) {
		case BiasBullish:
			sum.Bullish++
		case BiasBearish:
			sum.Bearish++
		case BiasError:
			sum.Errors++
		default:
			sum.Neutral++
		}
	}

	directional := sum.Bullish + sum.Bearish
	sum.Verdict = VerdictNeutral
	if directional < 2 {
		return sum
	}
	balance := float64(sum.Bullish-sum.Bearish) / float64(directional)
	switch {
	case balance >= 0.5:
		sum.Verdict = VerdictStrongBullish
	case balance > 0.2:
		sum.Verdict = VerdictBullish
	case balance <= -0.5:
		sum.Verdict = VerdictStrongBearish
	case balance < -0.2:
		sum.Verdict = VerdictBearish
	}
	return sum
}
