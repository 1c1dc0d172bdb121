package trend

import "github.com/evdnx/gosignal/indicator/core"

const (
	DefaultTenkanPeriod  = 9
	DefaultKijunPeriod   = 26
	DefaultSenkouBPeriod = 52
)

// IchimokuResult holds the latest Ichimoku cloud components.
type IchimokuResult struct {
	Tenkan       float64 `json:"tenkan"`
	Kijun        float64 `json:"kijun"`
	SpanA        float64 `json:"spanA"`
	SpanB        float64 `json:"spanB"`
	CloudBullish bool    `json:"cloudBullish"`
}

// Ichimoku evaluates the cloud at the last bar. Tenkan and Kijun are the
// (highest high + lowest low)/2 midlines over their periods, Span A is their
// average and Span B is the SMA over senkouB bars. The cloud is bullish when
// the last price is above both spans. Fewer than senkouB bars yields the zero
// result.
func Ichimoku(s core.Series, tenkan, kijun, senkouB int) IchimokuResult {
	n := s.Len()
	if n == 0 || n < senkouB || n < tenkan || n < kijun || tenkan < 1 || kijun < 1 || senkouB < 1 {
		return IchimokuResult{}
	}
	var r IchimokuResult
	r.Tenkan = midline(s, tenkan)
	r.Kijun = midline(s, kijun)
	r.SpanA = (r.Tenkan + r.Kijun) / 2
	r.SpanB = core.LastOf(SMA(s, senkouB))

	last := s[n-1].Price
	r.CloudBullish = last > r.SpanA && last > r.SpanB
	return r
}

func midline(s core.Series, period int) float64 {
	w := s.Tail(period)
	return (core.Highest(w.Highs()) + core.Lowest(w.Lows())) / 2
}
