// Package indicator re-exports the indicator sub-packages behind one import
// and provides a name-keyed lookup of the single-period series indicators.
package indicator

import (
	"github.com/evdnx/gosignal/indicator/core"
	"github.com/evdnx/gosignal/indicator/momentum"
	"github.com/evdnx/gosignal/indicator/pattern"
	"github.com/evdnx/gosignal/indicator/trend"
	"github.com/evdnx/gosignal/indicator/volatility"
	"github.com/evdnx/gosignal/indicator/volume"
)

// ---- Shared data types ----
type (
	Bar      = core.Bar
	Series   = core.Series
	Bands    = core.Bands
	DualLine = core.DualLine
	PlotData = core.PlotData
)

func NewBar(price float64) Bar { return core.NewBar(price) }
func NewOHLCV(open, high, low, close, volume float64) Bar {
	return core.NewOHLCV(open, high, low, close, volume)
}
func FromValues(values []float64) Series { return core.FromValues(values) }

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	return core.GenerateTimestamps(startTime, count, interval)
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	return core.FormatPlotDataJSON(data)
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	return core.FormatPlotDataCSV(data)
}

// ---- Trend ----
type (
	IchimokuResult      = trend.IchimokuResult
	AroonResult         = trend.AroonResult
	VortexResult        = trend.VortexResult
	DirectionalMovement = trend.DirectionalMovement
)

func SMA(s Series, period int) []float64  { return trend.SMA(s, period) }
func EMA(s Series, period int) []float64  { return trend.EMA(s, period) }
func WMA(s Series, period int) []float64  { return trend.WMA(s, period) }
func HMA(s Series, period int) []float64  { return trend.HMA(s, period) }
func TEMA(s Series, period int) []float64 { return trend.TEMA(s, period) }
func Ribbon(s Series, period, count int) [][]float64 {
	return trend.Ribbon(s, period, count)
}
func ParabolicSAR(s Series, step, maxStep float64) []float64 {
	return trend.ParabolicSAR(s, step, maxStep)
}
func Ichimoku(s Series, tenkan, kijun, senkouB int) IchimokuResult {
	return trend.Ichimoku(s, tenkan, kijun, senkouB)
}
func ADX(s Series, period int) float64             { return trend.ADX(s, period) }
func DMI(s Series, period int) DirectionalMovement { return trend.DMI(s, period) }
func Aroon(s Series, period int) AroonResult       { return trend.Aroon(s, period) }
func Vortex(s Series, period int) VortexResult     { return trend.Vortex(s, period) }
func DPO(s Series, period int) []float64           { return trend.DPO(s, period) }

// ---- Momentum ----
type (
	Impulse   = momentum.Impulse
	KSTParams = momentum.KSTParams
)

func RSI(s Series, period int) float64         { return momentum.RSI(s, period) }
func RSISeries(s Series, period int) []float64 { return momentum.RSISeries(s, period) }
func StochRSI(s Series, rsiPeriod, stochPeriod int) float64 {
	return momentum.StochRSI(s, rsiPeriod, stochPeriod)
}
func MACD(s Series, fast, slow, signal int) DualLine { return momentum.MACD(s, fast, slow, signal) }
func PPO(s Series, fast, slow, signal int) DualLine  { return momentum.PPO(s, fast, slow, signal) }
func Stochastic(s Series, period int) float64        { return momentum.Stochastic(s, period) }
func WilliamsR(s Series, period int) float64         { return momentum.WilliamsR(s, period) }
func CCI(s Series, period int) float64               { return momentum.CCI(s, period) }
func ROC(s Series, period int) float64               { return momentum.ROC(s, period) }
func ROCSeries(s Series, period int) []float64       { return momentum.ROCSeries(s, period) }
func RMI(s Series, period, lookback int) float64     { return momentum.RMI(s, period, lookback) }
func CMO(s Series, period int) float64               { return momentum.CMO(s, period) }
func TRIX(s Series, period int) float64              { return momentum.TRIX(s, period) }
func TRIXSeries(s Series, period int) []float64      { return momentum.TRIXSeries(s, period) }
func Coppock(s Series, longROC, shortROC, wma int) float64 {
	return momentum.Coppock(s, longROC, shortROC, wma)
}
func RVI(s Series, period int) DualLine          { return momentum.RVI(s, period) }
func KST(s Series, p KSTParams) DualLine         { return momentum.KST(s, p) }
func DefaultKSTParams() KSTParams                { return momentum.DefaultKSTParams() }
func BOP(s Series, period int) float64           { return momentum.BOP(s, period) }
func McClellan(s Series, fast, slow int) float64 { return momentum.McClellan(s, fast, slow) }
func UltimateOscillator(s Series, short, medium, long int) float64 {
	return momentum.UltimateOscillator(s, short, medium, long)
}
func ElderImpulse(s Series, emaPeriod, fast, slow, signal int) Impulse {
	return momentum.ElderImpulse(s, emaPeriod, fast, slow, signal)
}

// ---- Volatility ----
func BollingerBands(s Series, period int, multiplier float64) Bands {
	return volatility.BollingerBands(s, period, multiplier)
}
func KeltnerChannels(s Series, period int, multiplier float64) Bands {
	return volatility.KeltnerChannels(s, period, multiplier)
}
func DonchianChannels(s Series, period int) Bands { return volatility.DonchianChannels(s, period) }
func ATR(s Series, period int) float64            { return volatility.ATR(s, period) }
func ATRSeries(s Series, period int) []float64    { return volatility.ATRSeries(s, period) }
func MassIndex(s Series, emaPeriod, sumPeriod int) float64 {
	return volatility.MassIndex(s, emaPeriod, sumPeriod)
}

// ---- Volume ----
func VWAP(s Series) float64                   { return volume.VWAP(s) }
func OBV(s Series) float64                    { return volume.OBV(s) }
func OBVSeries(s Series) []float64            { return volume.OBVSeries(s) }
func PVTSeries(s Series) []float64            { return volume.PVTSeries(s) }
func ADLSeries(s Series) []float64            { return volume.ADLSeries(s) }
func CMF(s Series, period int) float64        { return volume.CMF(s, period) }
func MFI(s Series, period int) float64        { return volume.MFI(s, period) }
func ForceIndex(s Series, period int) float64 { return volume.ForceIndex(s, period) }
func EMV(s Series, period int, scale float64) float64 {
	return volume.EMV(s, period, scale)
}
func VolumeOscillator(s Series, short, long int) float64 {
	return volume.VolumeOscillator(s, short, long)
}
func Klinger(s Series, short, long, signal int) DualLine {
	return volume.Klinger(s, short, long, signal)
}

// ---- Patterns ----
type (
	Retracement = pattern.Retracement
	Levels      = pattern.Levels
	Pivots      = pattern.Pivots
	Direction   = pattern.Direction
)

func FibonacciRetracement(s Series, period int) Retracement {
	return pattern.FibonacciRetracement(s, period)
}
func SupportResistance(s Series, period int) Levels { return pattern.SupportResistance(s, period) }
func PivotPoints(s Series) Pivots                   { return pattern.PivotPoints(s) }
func ElliottWaveCount(s Series, period int) int     { return pattern.ElliottWaveCount(s, period) }
func Fractal(s Series) bool                         { return pattern.Fractal(s) }
func Doji(s Series, threshold float64) bool         { return pattern.Doji(s, threshold) }
func TrendlineBreakout(s Series, period int) bool   { return pattern.TrendlineBreakout(s, period) }
func TrendFollowing(s Series, period int) Direction { return pattern.TrendFollowing(s, period) }
func Mean(s Series, period int) float64             { return pattern.Mean(s, period) }
func PriceAction(s Series, period int) Direction    { return pattern.PriceAction(s, period) }
