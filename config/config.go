// Package config holds every tunable period, multiplier and threshold used by
// the signal catalogue, together with defaults, validation and YAML loading.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/evdnx/gosignal/errors"
	"github.com/evdnx/gosignal/indicator/momentum"
	"github.com/evdnx/gosignal/indicator/pattern"
	"github.com/evdnx/gosignal/indicator/trend"
	"github.com/evdnx/gosignal/indicator/volatility"
	"github.com/evdnx/gosignal/indicator/volume"
)

// maxReasonablePeriod is the upper bound every period is checked against.
// Anything larger almost certainly comes from a typo or an overflowed value.
const maxReasonablePeriod = 1_000_000

// -----------------------------------------------------------------------------
// IndicatorConfig – central place for all tunable parameters
// -----------------------------------------------------------------------------
type IndicatorConfig struct {
	Trend      TrendConfig      `yaml:"trend" json:"trend" jsonschema:"title=Trend,description=Moving averages and trend indicators"`
	Momentum   MomentumConfig   `yaml:"momentum" json:"momentum" jsonschema:"title=Momentum,description=Oscillators and momentum indicators"`
	Volatility VolatilityConfig `yaml:"volatility" json:"volatility" jsonschema:"title=Volatility,description=Bands channels and ranges"`
	Volume     VolumeConfig     `yaml:"volume" json:"volume" jsonschema:"title=Volume,description=Volume based indicators"`
	Pattern    PatternConfig    `yaml:"pattern" json:"pattern" jsonschema:"title=Pattern,description=Price pattern detectors"`
	Thresholds ThresholdConfig  `yaml:"thresholds" json:"thresholds" jsonschema:"title=Thresholds,description=Levels used to classify indicator values"`
}

type TrendConfig struct {
	SMAPeriod        int     `yaml:"sma_period" json:"sma_period" validate:"gte=1" jsonschema:"title=SMA period,default=20"`
	EMAPeriod        int     `yaml:"ema_period" json:"ema_period" validate:"gte=1" jsonschema:"title=EMA period,default=12"`
	WMAPeriod        int     `yaml:"wma_period" json:"wma_period" validate:"gte=1" jsonschema:"title=WMA period,default=20"`
	HMAPeriod        int     `yaml:"hma_period" json:"hma_period" validate:"gte=2" jsonschema:"title=Hull MA period,default=9"`
	TEMAPeriod       int     `yaml:"tema_period" json:"tema_period" validate:"gte=1" jsonschema:"title=TEMA period,default=12"`
	CrossShortPeriod int     `yaml:"cross_short_period" json:"cross_short_period" validate:"gte=1" jsonschema:"title=Golden/death cross short period,default=50"`
	CrossLongPeriod  int     `yaml:"cross_long_period" json:"cross_long_period" validate:"gtfield=CrossShortPeriod" jsonschema:"title=Golden/death cross long period,default=200"`
	RibbonPeriod     int     `yaml:"ribbon_period" json:"ribbon_period" validate:"gte=1" jsonschema:"title=Ribbon base period,default=14"`
	RibbonCount      int     `yaml:"ribbon_count" json:"ribbon_count" validate:"gte=2" jsonschema:"title=Ribbon line count,default=5"`
	SARStep          float64 `yaml:"sar_step" json:"sar_step" validate:"gt=0" jsonschema:"title=Parabolic SAR step,default=0.02"`
	SARMaxStep       float64 `yaml:"sar_max_step" json:"sar_max_step" validate:"gtefield=SARStep" jsonschema:"title=Parabolic SAR maximum step,default=0.2"`
	TenkanPeriod     int     `yaml:"tenkan_period" json:"tenkan_period" validate:"gte=1" jsonschema:"title=Ichimoku conversion period,default=9"`
	KijunPeriod      int     `yaml:"kijun_period" json:"kijun_period" validate:"gte=1" jsonschema:"title=Ichimoku base period,default=26"`
	SenkouBPeriod    int     `yaml:"senkou_b_period" json:"senkou_b_period" validate:"gte=1" jsonschema:"title=Ichimoku leading span B period,default=52"`
	ADXPeriod        int     `yaml:"adx_period" json:"adx_period" validate:"gte=1" jsonschema:"title=ADX period,default=14"`
	AroonPeriod      int     `yaml:"aroon_period" json:"aroon_period" validate:"gte=1" jsonschema:"title=Aroon period,default=25"`
	VortexPeriod     int     `yaml:"vortex_period" json:"vortex_period" validate:"gte=1" jsonschema:"title=Vortex period,default=14"`
	DPOPeriod        int     `yaml:"dpo_period" json:"dpo_period" validate:"gte=1" jsonschema:"title=Detrended price oscillator period,default=20"`
}

type MomentumConfig struct {
	RSIPeriod        int                `yaml:"rsi_period" json:"rsi_period" validate:"gte=1" jsonschema:"title=RSI period,default=14"`
	StochRSIPeriod   int                `yaml:"stoch_rsi_period" json:"stoch_rsi_period" validate:"gte=1" jsonschema:"title=Stochastic RSI window,default=14"`
	MACDFast         int                `yaml:"macd_fast" json:"macd_fast" validate:"gte=1" jsonschema:"title=MACD fast period,default=12"`
	MACDSlow         int                `yaml:"macd_slow" json:"macd_slow" validate:"gtfield=MACDFast" jsonschema:"title=MACD slow period,default=26"`
	MACDSignal       int                `yaml:"macd_signal" json:"macd_signal" validate:"gte=1" jsonschema:"title=MACD signal period,default=9"`
	PPOFast          int                `yaml:"ppo_fast" json:"ppo_fast" validate:"gte=1" jsonschema:"title=PPO fast period,default=12"`
	PPOSlow          int                `yaml:"ppo_slow" json:"ppo_slow" validate:"gtfield=PPOFast" jsonschema:"title=PPO slow period,default=26"`
	PPOSignal        int                `yaml:"ppo_signal" json:"ppo_signal" validate:"gte=1" jsonschema:"title=PPO signal period,default=9"`
	StochasticPeriod int                `yaml:"stochastic_period" json:"stochastic_period" validate:"gte=1" jsonschema:"title=Stochastic period,default=14"`
	WilliamsRPeriod  int                `yaml:"williams_r_period" json:"williams_r_period" validate:"gte=1" jsonschema:"title=Williams %R period,default=14"`
	CCIPeriod        int                `yaml:"cci_period" json:"cci_period" validate:"gte=1" jsonschema:"title=CCI period,default=20"`
	ROCPeriod        int                `yaml:"roc_period" json:"roc_period" validate:"gte=1" jsonschema:"title=Rate of change period,default=14"`
	CoppockLongROC   int                `yaml:"coppock_long_roc" json:"coppock_long_roc" validate:"gte=1" jsonschema:"title=Coppock long ROC,default=14"`
	CoppockShortROC  int                `yaml:"coppock_short_roc" json:"coppock_short_roc" validate:"gte=1" jsonschema:"title=Coppock short ROC,default=11"`
	CoppockWMA       int                `yaml:"coppock_wma" json:"coppock_wma" validate:"gte=1" jsonschema:"title=Coppock WMA period,default=10"`
	RMIPeriod        int                `yaml:"rmi_period" json:"rmi_period" validate:"gte=1" jsonschema:"title=RMI period,default=14"`
	RMILookback      int                `yaml:"rmi_lookback" json:"rmi_lookback" validate:"gte=1" jsonschema:"title=RMI momentum lookback,default=5"`
	CMOPeriod        int                `yaml:"cmo_period" json:"cmo_period" validate:"gte=1" jsonschema:"title=CMO period,default=14"`
	TRIXPeriod       int                `yaml:"trix_period" json:"trix_period" validate:"gte=1" jsonschema:"title=TRIX period,default=14"`
	RVIPeriod        int                `yaml:"rvi_period" json:"rvi_period" validate:"gte=1" jsonschema:"title=RVI period,default=10"`
	KST              momentum.KSTParams `yaml:"kst" json:"kst" jsonschema:"title=Know Sure Thing"`
	UltimateShort    int                `yaml:"ultimate_short" json:"ultimate_short" validate:"gte=1" jsonschema:"title=Ultimate oscillator short period,default=7"`
	UltimateMedium   int                `yaml:"ultimate_medium" json:"ultimate_medium" validate:"gtfield=UltimateShort" jsonschema:"title=Ultimate oscillator medium period,default=14"`
	UltimateLong     int                `yaml:"ultimate_long" json:"ultimate_long" validate:"gtfield=UltimateMedium" jsonschema:"title=Ultimate oscillator long period,default=28"`
	BOPPeriod        int                `yaml:"bop_period" json:"bop_period" validate:"gte=1" jsonschema:"title=Balance of power period,default=14"`
	ElderEMAPeriod   int                `yaml:"elder_ema_period" json:"elder_ema_period" validate:"gte=1" jsonschema:"title=Elder impulse EMA period,default=13"`
	McClellanFast    int                `yaml:"mcclellan_fast" json:"mcclellan_fast" validate:"gte=1" jsonschema:"title=McClellan fast EMA,default=19"`
	McClellanSlow    int                `yaml:"mcclellan_slow" json:"mcclellan_slow" validate:"gtfield=McClellanFast" jsonschema:"title=McClellan slow EMA,default=39"`
}

type VolatilityConfig struct {
	BollingerPeriod     int     `yaml:"bollinger_period" json:"bollinger_period" validate:"gte=1" jsonschema:"title=Bollinger period,default=20"`
	BollingerMultiplier float64 `yaml:"bollinger_multiplier" json:"bollinger_multiplier" validate:"gt=0" jsonschema:"title=Bollinger stddev multiplier,default=2"`
	ATRPeriod           int     `yaml:"atr_period" json:"atr_period" validate:"gte=1" jsonschema:"title=ATR period,default=14"`
	KeltnerPeriod       int     `yaml:"keltner_period" json:"keltner_period" validate:"gte=1" jsonschema:"title=Keltner period,default=20"`
	KeltnerMultiplier   float64 `yaml:"keltner_multiplier" json:"keltner_multiplier" validate:"gt=0" jsonschema:"title=Keltner ATR multiplier,default=2"`
	DonchianPeriod      int     `yaml:"donchian_period" json:"donchian_period" validate:"gte=1" jsonschema:"title=Donchian period,default=20"`
	MassEMAPeriod       int     `yaml:"mass_ema_period" json:"mass_ema_period" validate:"gte=1" jsonschema:"title=Mass index EMA period,default=9"`
	MassSumPeriod       int     `yaml:"mass_sum_period" json:"mass_sum_period" validate:"gte=1" jsonschema:"title=Mass index sum period,default=25"`
}

type VolumeConfig struct {
	CMFPeriod        int     `yaml:"cmf_period" json:"cmf_period" validate:"gte=1" jsonschema:"title=Chaikin money flow period,default=20"`
	MFIPeriod        int     `yaml:"mfi_period" json:"mfi_period" validate:"gte=1" jsonschema:"title=Money flow index period,default=14"`
	ForceIndexPeriod int     `yaml:"force_index_period" json:"force_index_period" validate:"gte=1" jsonschema:"title=Force index EMA period,default=13"`
	EMVPeriod        int     `yaml:"emv_period" json:"emv_period" validate:"gte=1" jsonschema:"title=Ease of movement period,default=14"`
	EMVScale         float64 `yaml:"emv_scale" json:"emv_scale" validate:"gt=0" jsonschema:"title=Ease of movement volume divisor,default=100000000"`
	VolumeOscShort   int     `yaml:"volume_osc_short" json:"volume_osc_short" validate:"gte=1" jsonschema:"title=Volume oscillator short period,default=14"`
	VolumeOscLong    int     `yaml:"volume_osc_long" json:"volume_osc_long" validate:"gtfield=VolumeOscShort" jsonschema:"title=Volume oscillator long period,default=28"`
	KlingerShort     int     `yaml:"klinger_short" json:"klinger_short" validate:"gte=1" jsonschema:"title=Klinger short EMA,default=34"`
	KlingerLong      int     `yaml:"klinger_long" json:"klinger_long" validate:"gtfield=KlingerShort" jsonschema:"title=Klinger long EMA,default=55"`
	KlingerSignal    int     `yaml:"klinger_signal" json:"klinger_signal" validate:"gte=1" jsonschema:"title=Klinger signal EMA,default=13"`
}

type PatternConfig struct {
	FibonacciPeriod         int     `yaml:"fibonacci_period" json:"fibonacci_period" validate:"gte=1" jsonschema:"title=Fibonacci lookback,default=20"`
	SupportResistancePeriod int     `yaml:"support_resistance_period" json:"support_resistance_period" validate:"gte=1" jsonschema:"title=Support/resistance lookback,default=20"`
	ElliottPeriod           int     `yaml:"elliott_period" json:"elliott_period" validate:"gte=3" jsonschema:"title=Elliott wave lookback,default=50"`
	DojiThreshold           float64 `yaml:"doji_threshold" json:"doji_threshold" validate:"gt=0,lt=1" jsonschema:"title=Doji body to range ratio,default=0.1"`
	TrendlinePeriod         int     `yaml:"trendline_period" json:"trendline_period" validate:"gte=1" jsonschema:"title=Trendline lookback,default=20"`
	TrendPeriod             int     `yaml:"trend_period" json:"trend_period" validate:"gte=1" jsonschema:"title=Trend following SMA period,default=20"`
	MeanPeriod              int     `yaml:"mean_period" json:"mean_period" validate:"gte=1" jsonschema:"title=Mean reversion period,default=20"`
	PriceActionPeriod       int     `yaml:"price_action_period" json:"price_action_period" validate:"gte=2" jsonschema:"title=Price action lookback,default=5"`
}

// ThresholdConfig holds the fixed levels the catalogue classifies against.
type ThresholdConfig struct {
	RSIOverbought        float64 `yaml:"rsi_overbought" json:"rsi_overbought" validate:"gtfield=RSIOversold" jsonschema:"default=70"`
	RSIOversold          float64 `yaml:"rsi_oversold" json:"rsi_oversold" validate:"gte=0" jsonschema:"default=30"`
	StochasticOverbought float64 `yaml:"stochastic_overbought" json:"stochastic_overbought" validate:"gtfield=StochasticOversold" jsonschema:"default=80"`
	StochasticOversold   float64 `yaml:"stochastic_oversold" json:"stochastic_oversold" validate:"gte=0" jsonschema:"default=20"`
	WilliamsROverbought  float64 `yaml:"williams_r_overbought" json:"williams_r_overbought" validate:"lte=0,gtfield=WilliamsROversold" jsonschema:"default=-20"`
	WilliamsROversold    float64 `yaml:"williams_r_oversold" json:"williams_r_oversold" validate:"gte=-100" jsonschema:"default=-80"`
	ADXStrongTrend       float64 `yaml:"adx_strong_trend" json:"adx_strong_trend" validate:"gte=0,lte=100" jsonschema:"default=25"`
	AroonStrong          float64 `yaml:"aroon_strong" json:"aroon_strong" validate:"gte=0,lte=100" jsonschema:"default=70"`
	CCIUpper             float64 `yaml:"cci_upper" json:"cci_upper" validate:"gtfield=CCILower" jsonschema:"default=100"`
	CCILower             float64 `yaml:"cci_lower" json:"cci_lower" jsonschema:"default=-100"`
	ATRHighVolatility    float64 `yaml:"atr_high_volatility" json:"atr_high_volatility" validate:"gte=0" jsonschema:"default=1"`
	RMIOverbought        float64 `yaml:"rmi_overbought" json:"rmi_overbought" validate:"gtfield=RMIOversold" jsonschema:"default=70"`
	RMIOversold          float64 `yaml:"rmi_oversold" json:"rmi_oversold" validate:"gte=0" jsonschema:"default=30"`
	StochRSIOverbought   float64 `yaml:"stoch_rsi_overbought" json:"stoch_rsi_overbought" validate:"gtfield=StochRSIOversold" jsonschema:"default=80"`
	StochRSIOversold     float64 `yaml:"stoch_rsi_oversold" json:"stoch_rsi_oversold" validate:"gte=0" jsonschema:"default=20"`
	UltimateOverbought   float64 `yaml:"ultimate_overbought" json:"ultimate_overbought" validate:"gtfield=UltimateOversold" jsonschema:"default=70"`
	UltimateOversold     float64 `yaml:"ultimate_oversold" json:"ultimate_oversold" validate:"gte=0" jsonschema:"default=30"`
	CMOOverbought        float64 `yaml:"cmo_overbought" json:"cmo_overbought" validate:"gtfield=CMOOversold" jsonschema:"default=50"`
	CMOOversold          float64 `yaml:"cmo_oversold" json:"cmo_oversold" validate:"gte=-100" jsonschema:"default=-50"`
	MFIOverbought        float64 `yaml:"mfi_overbought" json:"mfi_overbought" validate:"gtfield=MFIOversold" jsonschema:"default=80"`
	MFIOversold          float64 `yaml:"mfi_oversold" json:"mfi_oversold" validate:"gte=0" jsonschema:"default=20"`
	MassReversal         float64 `yaml:"mass_reversal" json:"mass_reversal" validate:"gt=0" jsonschema:"default=27"`
}

// DefaultConfig returns a sensible set of defaults for every indicator.
func DefaultConfig() IndicatorConfig {
	return IndicatorConfig{
		Trend: TrendConfig{
			SMAPeriod:        trend.DefaultSMAPeriod,
			EMAPeriod:        trend.DefaultEMAPeriod,
			WMAPeriod:        trend.DefaultWMAPeriod,
			HMAPeriod:        trend.DefaultHMAPeriod,
			TEMAPeriod:       trend.DefaultTEMAPeriod,
			CrossShortPeriod: trend.DefaultCrossShortPeriod,
			CrossLongPeriod:  trend.DefaultCrossLongPeriod,
			RibbonPeriod:     trend.DefaultRibbonPeriod,
			RibbonCount:      trend.DefaultRibbonCount,
			SARStep:          trend.DefaultSARStep,
			SARMaxStep:       trend.DefaultSARMaxStep,
			TenkanPeriod:     trend.DefaultTenkanPeriod,
			KijunPeriod:      trend.DefaultKijunPeriod,
			SenkouBPeriod:    trend.DefaultSenkouBPeriod,
			ADXPeriod:        trend.DefaultADXPeriod,
			AroonPeriod:      trend.DefaultAroonPeriod,
			VortexPeriod:     trend.DefaultVortexPeriod,
			DPOPeriod:        trend.DefaultDPOPeriod,
		},
		Momentum: MomentumConfig{
			RSIPeriod:        momentum.DefaultRSIPeriod,
			StochRSIPeriod:   momentum.DefaultStochRSIPeriod,
			MACDFast:         momentum.DefaultMACDFastPeriod,
			MACDSlow:         momentum.DefaultMACDSlowPeriod,
			MACDSignal:       momentum.DefaultMACDSignalPeriod,
			PPOFast:          momentum.DefaultPPOFastPeriod,
			PPOSlow:          momentum.DefaultPPOSlowPeriod,
			PPOSignal:        momentum.DefaultPPOSignalPeriod,
			StochasticPeriod: momentum.DefaultStochasticPeriod,
			WilliamsRPeriod:  momentum.DefaultWilliamsRPeriod,
			CCIPeriod:        momentum.DefaultCCIPeriod,
			ROCPeriod:        momentum.DefaultROCPeriod,
			CoppockLongROC:   momentum.DefaultCoppockLongROC,
			CoppockShortROC:  momentum.DefaultCoppockShortROC,
			CoppockWMA:       momentum.DefaultCoppockWMA,
			RMIPeriod:        momentum.DefaultRMIPeriod,
			RMILookback:      momentum.DefaultRMILookback,
			CMOPeriod:        momentum.DefaultCMOPeriod,
			TRIXPeriod:       momentum.DefaultTRIXPeriod,
			RVIPeriod:        momentum.DefaultRVIPeriod,
			KST:              momentum.DefaultKSTParams(),
			UltimateShort:    momentum.DefaultUltimateShort,
			UltimateMedium:   momentum.DefaultUltimateMedium,
			UltimateLong:     momentum.DefaultUltimateLong,
			BOPPeriod:        momentum.DefaultBOPPeriod,
			ElderEMAPeriod:   momentum.DefaultElderEMAPeriod,
			McClellanFast:    momentum.DefaultMcClellanFast,
			McClellanSlow:    momentum.DefaultMcClellanSlow,
		},
		Volatility: VolatilityConfig{
			BollingerPeriod:     volatility.DefaultBollingerPeriod,
			BollingerMultiplier: volatility.DefaultBollingerMultiplier,
			ATRPeriod:           volatility.DefaultATRPeriod,
			KeltnerPeriod:       volatility.DefaultKeltnerPeriod,
			KeltnerMultiplier:   volatility.DefaultKeltnerMultiplier,
			DonchianPeriod:      volatility.DefaultDonchianPeriod,
			MassEMAPeriod:       volatility.DefaultMassEMAPeriod,
			MassSumPeriod:       volatility.DefaultMassSumPeriod,
		},
		Volume: VolumeConfig{
			CMFPeriod:        volume.DefaultCMFPeriod,
			MFIPeriod:        volume.DefaultMFIPeriod,
			ForceIndexPeriod: volume.DefaultForceIndexPeriod,
			EMVPeriod:        volume.DefaultEMVPeriod,
			EMVScale:         volume.DefaultEMVScale,
			VolumeOscShort:   volume.DefaultVolumeOscShort,
			VolumeOscLong:    volume.DefaultVolumeOscLong,
			KlingerShort:     volume.DefaultKlingerShort,
			KlingerLong:      volume.DefaultKlingerLong,
			KlingerSignal:    volume.DefaultKlingerSignal,
		},
		Pattern: PatternConfig{
			FibonacciPeriod:         pattern.DefaultFibonacciPeriod,
			SupportResistancePeriod: pattern.DefaultSupportResistancePeriod,
			ElliottPeriod:           pattern.DefaultElliottPeriod,
			DojiThreshold:           pattern.DefaultDojiThreshold,
			TrendlinePeriod:         pattern.DefaultTrendlinePeriod,
			TrendPeriod:             pattern.DefaultTrendPeriod,
			MeanPeriod:              pattern.DefaultMeanPeriod,
			PriceActionPeriod:       pattern.DefaultPriceActionPeriod,
		},
		Thresholds: ThresholdConfig{
			RSIOverbought:        70,
			RSIOversold:          30,
			StochasticOverbought: 80,
			StochasticOversold:   20,
			WilliamsROverbought:  -20,
			WilliamsROversold:    -80,
			ADXStrongTrend:       25,
			AroonStrong:          70,
			CCIUpper:             100,
			CCILower:             -100,
			ATRHighVolatility:    1,
			RMIOverbought:        70,
			RMIOversold:          30,
			StochRSIOverbought:   80,
			StochRSIOversold:     20,
			UltimateOverbought:   70,
			UltimateOversold:     30,
			CMOOverbought:        50,
			CMOOversold:          -50,
			MFIOverbought:        80,
			MFIOversold:          20,
			MassReversal:         27,
		},
	}
}

// -------------------------------------------------------------------
// Validate – checks that the configuration values are sensible.
// -------------------------------------------------------------------
func (c *IndicatorConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	for k, p := range c.Momentum.KST.ROC {
		if p < 1 || c.Momentum.KST.SMA[k] < 1 {
			return errors.Newf(errors.ErrCodeInvalidPeriod,
				"kst period %d must be at least 1, got roc=%d sma=%d", k, p, c.Momentum.KST.SMA[k])
		}
	}
	if c.Momentum.KST.Signal < 1 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "kst signal must be at least 1, got %d", c.Momentum.KST.Signal)
	}

	// Upper-bound sanity check: an absurdly large period is treated as an
	// error (covers the wrap-around case of an overflowed literal).
	for _, p := range c.periods() {
		if p.value > maxReasonablePeriod {
			return errors.Newf(errors.ErrCodeInvalidPeriod,
				"%s is unreasonably large (%d); must be ≤ %d", p.name, p.value, maxReasonablePeriod)
		}
	}
	return nil
}

type namedPeriod struct {
	name  string
	value int
}

func (c *IndicatorConfig) periods() []namedPeriod {
	t, m, v, vo, p := c.Trend, c.Momentum, c.Volatility, c.Volume, c.Pattern
	out := []namedPeriod{
		{"trend.sma_period", t.SMAPeriod},
		{"trend.ema_period", t.EMAPeriod},
		{"trend.wma_period", t.WMAPeriod},
		{"trend.hma_period", t.HMAPeriod},
		{"trend.tema_period", t.TEMAPeriod},
		{"trend.cross_long_period", t.CrossLongPeriod},
		{"trend.ribbon_period", t.RibbonPeriod},
		{"trend.ribbon_count", t.RibbonCount},
		{"trend.senkou_b_period", t.SenkouBPeriod},
		{"trend.adx_period", t.ADXPeriod},
		{"trend.aroon_period", t.AroonPeriod},
		{"trend.vortex_period", t.VortexPeriod},
		{"trend.dpo_period", t.DPOPeriod},
		{"momentum.rsi_period", m.RSIPeriod},
		{"momentum.stoch_rsi_period", m.StochRSIPeriod},
		{"momentum.macd_slow", m.MACDSlow},
		{"momentum.macd_signal", m.MACDSignal},
		{"momentum.ppo_slow", m.PPOSlow},
		{"momentum.ppo_signal", m.PPOSignal},
		{"momentum.stochastic_period", m.StochasticPeriod},
		{"momentum.williams_r_period", m.WilliamsRPeriod},
		{"momentum.cci_period", m.CCIPeriod},
		{"momentum.roc_period", m.ROCPeriod},
		{"momentum.coppock_long_roc", m.CoppockLongROC},
		{"momentum.coppock_wma", m.CoppockWMA},
		{"momentum.rmi_period", m.RMIPeriod},
		{"momentum.rmi_lookback", m.RMILookback},
		{"momentum.cmo_period", m.CMOPeriod},
		{"momentum.trix_period", m.TRIXPeriod},
		{"momentum.rvi_period", m.RVIPeriod},
		{"momentum.kst.signal", m.KST.Signal},
		{"momentum.ultimate_long", m.UltimateLong},
		{"momentum.bop_period", m.BOPPeriod},
		{"momentum.elder_ema_period", m.ElderEMAPeriod},
		{"momentum.mcclellan_slow", m.McClellanSlow},
		{"volatility.bollinger_period", v.BollingerPeriod},
		{"volatility.atr_period", v.ATRPeriod},
		{"volatility.keltner_period", v.KeltnerPeriod},
		{"volatility.donchian_period", v.DonchianPeriod},
		{"volatility.mass_sum_period", v.MassSumPeriod},
		{"volume.cmf_period", vo.CMFPeriod},
		{"volume.mfi_period", vo.MFIPeriod},
		{"volume.force_index_period", vo.ForceIndexPeriod},
		{"volume.emv_period", vo.EMVPeriod},
		{"volume.volume_osc_long", vo.VolumeOscLong},
		{"volume.klinger_long", vo.KlingerLong},
		{"volume.klinger_signal", vo.KlingerSignal},
		{"pattern.fibonacci_period", p.FibonacciPeriod},
		{"pattern.support_resistance_period", p.SupportResistancePeriod},
		{"pattern.elliott_period", p.ElliottPeriod},
		{"pattern.trendline_period", p.TrendlinePeriod},
		{"pattern.trend_period", p.TrendPeriod},
		{"pattern.mean_period", p.MeanPeriod},
		{"pattern.price_action_period", p.PriceActionPeriod},
	}
	for k := range m.KST.ROC {
		out = append(out,
			namedPeriod{fmt.Sprintf("momentum.kst.roc[%d]", k), m.KST.ROC[k]},
			namedPeriod{fmt.Sprintf("momentum.kst.sma[%d]", k), m.KST.SMA[k]},
		)
	}
	return out
}

// Parse decodes YAML on top of DefaultConfig, so a document only needs the
// keys it overrides, and validates the result.
func Parse(data []byte) (IndicatorConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return IndicatorConfig{}, errors.Wrap(errors.ErrCodeConfigLoadFailed, "failed to decode config", err)
	}
	if err := cfg.Validate(); err != nil {
		return IndicatorConfig{}, err
	}
	return cfg, nil
}

// Load reads and parses a YAML config file.
func Load(path string) (IndicatorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return IndicatorConfig{}, errors.Wrapf(errors.ErrCodeConfigLoadFailed, err, "failed to read config file %s", path)
	}
	return Parse(data)
}

// Schema returns the JSON schema of IndicatorConfig.
func Schema() (string, error) {
	schema := jsonschema.Reflect(&IndicatorConfig{})

	jsonSchemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(jsonSchemaBytes), nil
}
