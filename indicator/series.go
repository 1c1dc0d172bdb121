package indicator

import (
	"sort"

	"github.com/evdnx/gosignal/errors"
	"github.com/evdnx/gosignal/indicator/core"
	"github.com/evdnx/gosignal/indicator/momentum"
	"github.com/evdnx/gosignal/indicator/trend"
	"github.com/evdnx/gosignal/indicator/volatility"
	"github.com/evdnx/gosignal/indicator/volume"
)

// SeriesFunc computes an aligned series from bars and a single period.
// Indicators that take no period ignore it.
type SeriesFunc func(s Series, period int) []float64

var seriesFuncs = map[string]SeriesFunc{
	"sma":  trend.SMA,
	"ema":  trend.EMA,
	"wma":  trend.WMA,
	"hma":  trend.HMA,
	"tema": trend.TEMA,
	"dpo":  trend.DPO,
	"rsi":  momentum.RSISeries,
	"roc":  momentum.ROCSeries,
	"trix": momentum.TRIXSeries,
	"atr":  volatility.ATRSeries,
	"sar": func(s Series, _ int) []float64 {
		return trend.ParabolicSAR(s, trend.DefaultSARStep, trend.DefaultSARMaxStep)
	},
	"macd": func(s Series, _ int) []float64 {
		return momentum.MACD(s, momentum.DefaultMACDFastPeriod, momentum.DefaultMACDSlowPeriod, momentum.DefaultMACDSignalPeriod).Line
	},
	"obv": func(s Series, _ int) []float64 { return volume.OBVSeries(s) },
	"adl": func(s Series, _ int) []float64 { return volume.ADLSeries(s) },
	"pvt": func(s Series, _ int) []float64 { return volume.PVTSeries(s) },
}

// LookupSeries returns the series indicator registered under name.
func LookupSeries(name string) (SeriesFunc, error) {
	fn, ok := seriesFuncs[name]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator %q not found", name)
	}
	return fn, nil
}

// SeriesNames lists the names accepted by LookupSeries in sorted order.
func SeriesNames() []string {
	names := make([]string, 0, len(seriesFuncs))
	for name := range seriesFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Plot computes the named series and wraps it as plot data.
func Plot(name string, s Series, period int) (PlotData, error) {
	fn, err := LookupSeries(name)
	if err != nil {
		return PlotData{}, err
	}
	return core.NewPlotData(name, fn(s, period)), nil
}
