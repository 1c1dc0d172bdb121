package suite

import (
	"fmt"

	"github.com/evdnx/gosignal/config"
	"github.com/evdnx/gosignal/errors"
	"github.com/evdnx/gosignal/indicator/core"
	"github.com/evdnx/gosignal/indicator/momentum"
	"github.com/evdnx/gosignal/indicator/pattern"
	"github.com/evdnx/gosignal/indicator/trend"
	"github.com/evdnx/gosignal/indicator/volatility"
	"github.com/evdnx/gosignal/indicator/volume"
)

// strategies builds the catalogue entries in their fixed order.
func strategies(cfg config.IndicatorConfig) []Strategy {
	tr, mo, vt, vo, pt, th := cfg.Trend, cfg.Momentum, cfg.Volatility, cfg.Volume, cfg.Pattern, cfg.Thresholds

	return []Strategy{
		{
			Name:        "RSI Overbought/Oversold",
			Description: "RSI indicates possible reversal zones.",
			label:       "RSI Overbought/Oversold",
			rule: oscillator("RSI Overbought/Oversold", func(s core.Series) float64 {
				return momentum.RSI(s, mo.RSIPeriod)
			}, th.RSIOverbought, th.RSIOversold, SignalNone),
		},
		{
			Name:        "MACD Cross",
			Description: "MACD line crossing signal line.",
			label:       "MACD Cross",
			rule: crossLabels("MACD Cross", func(s core.Series) core.DualLine {
				return momentum.MACD(s, mo.MACDFast, mo.MACDSlow, mo.MACDSignal)
			}),
		},
		{
			Name:        "Bollinger Bands Breakout",
			Description: "Breakout above or below Bollinger Bands.",
			label:       "Bollinger Bands Breakout",
			rule:        bollingerBreakout(vt.BollingerPeriod, vt.BollingerMultiplier),
		},
		{
			Name:        "Simple Moving Average (SMA)",
			Description: "SMA indicates the average price over a given period.",
			label:       "Simple Moving Average",
			rule: priceAbove("Simple Moving Average", func(s core.Series) float64 {
				return core.LastOf(trend.SMA(s, tr.SMAPeriod))
			}),
		},
		{
			Name:        "Exponential Moving Average (EMA)",
			Description: "EMA gives more weight to recent prices.",
			label:       "Exponential Moving Average",
			rule: priceAbove("Exponential Moving Average", func(s core.Series) float64 {
				return core.LastOf(trend.EMA(s, tr.EMAPeriod))
			}),
		},
		{
			Name:        "Golden Cross",
			Description: "Bullish crossover when the short-term moving average crosses above the long-term moving average.",
			label:       "Golden Cross",
			rule:        maCross("Golden Cross", tr.CrossShortPeriod, tr.CrossLongPeriod, true),
		},
		{
			Name:        "Death Cross",
			Description: "Bearish crossover when the short-term moving average crosses below the long-term moving average.",
			label:       "Death Cross",
			rule:        maCross("Death Cross", tr.CrossShortPeriod, tr.CrossLongPeriod, false),
		},
		{
			Name:        "Stochastic Oscillator",
			Description: "Identifies overbought and oversold conditions.",
			label:       "Stochastic Oscillator",
			rule: oscillator("Stochastic Oscillator", func(s core.Series) float64 {
				return momentum.Stochastic(s, mo.StochasticPeriod)
			}, th.StochasticOverbought, th.StochasticOversold, SignalNeutral),
		},
		{
			Name:        "Parabolic SAR",
			Description: "Indicates trends and potential reversals.",
			label:       "Parabolic SAR",
			rule: priceAbove("Parabolic SAR", func(s core.Series) float64 {
				return core.LastOf(trend.ParabolicSAR(s, tr.SARStep, tr.SARMaxStep))
			}),
		},
		{
			Name:        "Ichimoku Cloud",
			Description: "A trend-following system that identifies support/resistance and trend strength.",
			label:       "Ichimoku Cloud",
			rule: func(s core.Series) (Result, error) {
				ich := trend.Ichimoku(s, tr.TenkanPeriod, tr.KijunPeriod, tr.SenkouBPeriod)
				if err := checkFinite(ich.SpanA, ich.SpanB); err != nil {
					return Result{}, err
				}
				return directional("Ichimoku Cloud", ich.CloudBullish), nil
			},
		},
		{
			Name:        "Fibonacci Retracement",
			Description: "Identifies potential support and resistance levels.",
			label:       "Fibonacci Retracement",
			rule: priceAbove("Fibonacci Retracement", func(s core.Series) float64 {
				return pattern.FibonacciRetracement(s, pt.FibonacciPeriod).Level618
			}),
		},
		{
			Name:        "VWAP",
			Description: "A volume-based average price used by traders to analyze trend strength.",
			label:       "VWAP",
			rule:        priceAbove("VWAP", volume.VWAP),
		},
		{
			Name:        "ADX",
			Description: "Measures the strength of a trend.",
			label:       "ADX",
			rule: func(s core.Series) (Result, error) {
				adx := trend.ADX(s, tr.ADXPeriod)
				if err := checkFinite(adx); err != nil {
					return Result{}, err
				}
				signal := "Weak Trend"
				if adx > th.ADXStrongTrend {
					signal = "Strong Trend"
				}
				return Result{Match: true, Signal: signal, Description: "ADX"}, nil
			},
		},
		{
			Name:        "Williams %R",
			Description: "Identifies overbought and oversold conditions.",
			label:       "Williams %R",
			rule: oscillator("Williams %R", func(s core.Series) float64 {
				return momentum.WilliamsR(s, mo.WilliamsRPeriod)
			}, th.WilliamsROverbought, th.WilliamsROversold, SignalNeutral),
		},
		{
			Name:        "Aroon Indicator",
			Description: "Measures the strength of a trend and indicates trend reversals.",
			label:       "Aroon Indicator",
			rule: func(s core.Series) (Result, error) {
				a := trend.Aroon(s, tr.AroonPeriod)
				if err := checkFinite(a.Up, a.Down); err != nil {
					return Result{}, err
				}
				signal := SignalNeutral
				switch {
				case a.Up > th.AroonStrong:
					signal = SignalBullish
				case a.Down > th.AroonStrong:
					signal = SignalBearish
				}
				return Result{Match: signal != SignalNeutral, Signal: signal, Description: "Aroon Indicator"}, nil
			},
		},
		{
			Name:        "Elliott Wave Theory",
			Description: "Identifies patterns in price movements to predict future trends.",
			label:       "Elliott Wave Theory",
			rule: func(s core.Series) (Result, error) {
				return directional("Elliott Wave Theory", pattern.ElliottWaveCount(s, pt.ElliottPeriod) == 5), nil
			},
		},
		{
			Name:        "Fractal Indicators",
			Description: "Helps in identifying reversal points in trends.",
			label:       "Fractal Indicators",
			rule: func(s core.Series) (Result, error) {
				if pattern.Fractal(s) {
					return Result{Match: true, Signal: "Reversal", Description: "Fractal Indicators"}, nil
				}
				return Result{Match: false, Signal: SignalNone, Description: "Fractal Indicators"}, nil
			},
		},
		{
			Name:        "Donchian Channels",
			Description: "Identifies breakout points in the market.",
			label:       "Donchian Channels",
			rule: func(s core.Series) (Result, error) {
				price, err := s.LastPrice()
				if err != nil {
					return Result{}, err
				}
				upper := volatility.DonchianChannels(s, vt.DonchianPeriod).LastUpper()
				if err := checkFinite(price, upper); err != nil {
					return Result{}, err
				}
				return directional("Donchian Channels", upper > price), nil
			},
		},
		{
			Name:        "Keltner Channels",
			Description: "Shows volatility and overbought/oversold conditions.",
			label:       "Keltner Channels",
			rule: channelZone("Keltner Channels", func(s core.Series) core.Bands {
				return volatility.KeltnerChannels(s, vt.KeltnerPeriod, vt.KeltnerMultiplier)
			}, SignalOverbought, SignalOversold),
		},
		{
			Name:        "Chaikin Money Flow (CMF)",
			Description: "Measures the volume-weighted average price of an asset over a specific period.",
			label:       "Chaikin Money Flow",
			rule: positive("Chaikin Money Flow", func(s core.Series) float64 {
				return volume.CMF(s, vo.CMFPeriod)
			}),
		},
		{
			Name:        "Coppock Curve",
			Description: "A long-term momentum indicator used to identify buy signals.",
			label:       "Coppock Curve",
			rule: positive("Coppock Curve", func(s core.Series) float64 {
				return momentum.Coppock(s, mo.CoppockLongROC, mo.CoppockShortROC, mo.CoppockWMA)
			}),
		},
		{
			Name:        "Relative Vigor Index (RVI)",
			Description: "Measures the strength of a trend based on closing prices.",
			label:       "Relative Vigor Index",
			rule: crossing("Relative Vigor Index", func(s core.Series) core.DualLine {
				return momentum.RVI(s, mo.RVIPeriod)
			}),
		},
		{
			Name:        "Price Action Trading",
			Description: "Focuses on interpreting price movements and patterns rather than indicators.",
			label:       "Price Action Trading",
			rule: direction("Price Action Trading", func(s core.Series) pattern.Direction {
				return pattern.PriceAction(s, pt.PriceActionPeriod)
			}),
		},
		{
			Name:        "Pivot Points",
			Description: "Used to determine potential support and resistance levels.",
			label:       "Pivot Points",
			rule: priceAbove("Pivot Points", func(s core.Series) float64 {
				return pattern.PivotPoints(s).Pivot
			}),
		},
		{
			Name:        "Support and Resistance Levels",
			Description: "Identifies key levels where the price tends to reverse.",
			label:       "Support and Resistance",
			rule: func(s core.Series) (Result, error) {
				price, err := s.LastPrice()
				if err != nil {
					return Result{}, err
				}
				lv := pattern.SupportResistance(s, pt.SupportResistancePeriod)
				if err := checkFinite(price, lv.Support, lv.Resistance); err != nil {
					return Result{}, err
				}
				return zone("Support and Resistance", price, lv.Resistance, lv.Support,
					SignalBullish, SignalBearish, SignalNeutral), nil
			},
		},
		{
			Name:        "Candlestick Patterns",
			Description: "Analyzes patterns like Doji, Engulfing, etc., to predict price movements.",
			label:       "Candlestick Patterns",
			rule: func(s core.Series) (Result, error) {
				if pattern.Doji(s, pt.DojiThreshold) {
					return Result{Match: true, Signal: "Pattern Detected", Description: "Candlestick Patterns"}, nil
				}
				return Result{Match: false, Signal: "No Pattern", Description: "Candlestick Patterns"}, nil
			},
		},
		{
			Name:        "Trendline Breakout",
			Description: "Identifies breakouts from trendlines.",
			label:       "Trendline Breakout",
			rule: func(s core.Series) (Result, error) {
				return Result{
					Match:       pattern.TrendlineBreakout(s, pt.TrendlinePeriod),
					Signal:      "Trendline Breakout",
					Description: "Trendline Breakout",
				}, nil
			},
		},
		{
			Name:        "Trend Following",
			Description: "This strategy follows the prevailing market trend.",
			label:       "Trend Following",
			rule: direction("Trend Following", func(s core.Series) pattern.Direction {
				return pattern.TrendFollowing(s, pt.TrendPeriod)
			}),
		},
		{
			Name:        "Mean Reversion",
			Description: "This strategy assumes that prices tend to return to the mean over time.",
			label:       "Mean Reversion",
			rule: func(s core.Series) (Result, error) {
				price, err := s.LastPrice()
				if err != nil {
					return Result{}, err
				}
				mean := pattern.Mean(s, pt.MeanPeriod)
				if err := checkFinite(price, mean); err != nil {
					return Result{}, err
				}
				return zone("Mean Reversion", price, mean, mean, "Sell", "Buy", SignalNeutral), nil
			},
		},
		{
			Name:        "MACD Histogram",
			Description: "Analyzes the difference between MACD and its signal line to identify trend momentum.",
			label:       "MACD Histogram",
			rule: positive("MACD Histogram", func(s core.Series) float64 {
				return core.LastOf(momentum.MACD(s, mo.MACDFast, mo.MACDSlow, mo.MACDSignal).Histogram())
			}),
		},
		{
			Name:        "Triple Exponential Moving Average (TEMA)",
			Description: "A smoothing indicator that attempts to reduce lag in moving averages.",
			label:       "Triple Exponential Moving Average",
			rule: priceAbove("Triple Exponential Moving Average", func(s core.Series) float64 {
				return core.LastOf(trend.TEMA(s, tr.TEMAPeriod))
			}),
		},
		{
			Name:        "Volume Oscillator",
			Description: "Indicates the difference between two volume moving averages.",
			label:       "Volume Oscillator",
			rule: positive("Volume Oscillator", func(s core.Series) float64 {
				return volume.VolumeOscillator(s, vo.VolumeOscShort, vo.VolumeOscLong)
			}),
		},
		{
			Name:        "Klinger Oscillator",
			Description: "Uses volume to predict price trends.",
			label:       "Klinger Oscillator",
			rule: positive("Klinger Oscillator", func(s core.Series) float64 {
				return volume.Klinger(s, vo.KlingerShort, vo.KlingerLong, vo.KlingerSignal).LastLine()
			}),
		},
		{
			Name:        "Commodity Channel Index (CCI)",
			Description: "Measures the deviation of price from its average.",
			label:       "Commodity Channel Index",
			rule: func(s core.Series) (Result, error) {
				cci := momentum.CCI(s, mo.CCIPeriod)
				if err := checkFinite(cci); err != nil {
					return Result{}, err
				}
				return zone("Commodity Channel Index", cci, th.CCIUpper, th.CCILower,
					SignalBullish, SignalBearish, SignalNeutral), nil
			},
		},
		{
			Name:        "McClellan Oscillator",
			Description: "A breadth indicator that measures the difference between the advancing and declining issues.",
			label:       "McClellan Oscillator",
			rule: positive("McClellan Oscillator", func(s core.Series) float64 {
				return momentum.McClellan(s, mo.McClellanFast, mo.McClellanSlow)
			}),
		},
		{
			Name:        "Average True Range (ATR)",
			Description: "Measures market volatility.",
			label:       "Average True Range",
			rule: func(s core.Series) (Result, error) {
				atr := volatility.ATR(s, vt.ATRPeriod)
				if err := checkFinite(atr); err != nil {
					return Result{}, err
				}
				signal := "Low Volatility"
				if atr > th.ATRHighVolatility {
					signal = "High Volatility"
				}
				return Result{Match: true, Signal: signal, Description: "Average True Range"}, nil
			},
		},
		{
			Name:        "Donchian Channel Breakout",
			Description: "Identifies breakouts from a price range using Donchian Channels.",
			label:       "Donchian Channel Breakout",
			rule: channelZone("Donchian Channel Breakout", func(s core.Series) core.Bands {
				return volatility.DonchianChannels(s, vt.DonchianPeriod)
			}, SignalBullish, SignalBearish),
		},
		{
			Name:        "Rate of Change (ROC)",
			Description: "Measures the percentage change in price over a given period.",
			label:       "Rate of Change",
			rule: positive("Rate of Change", func(s core.Series) float64 {
				return momentum.ROC(s, mo.ROCPeriod)
			}),
		},
		{
			Name:        "On-Balance Volume (OBV)",
			Description: "Uses volume flow to predict price changes.",
			label:       "On-Balance Volume",
			rule:        positive("On-Balance Volume", volume.OBV),
		},
		{
			Name:        "Relative Momentum Index (RMI)",
			Description: "A momentum oscillator that improves upon RSI.",
			label:       "Relative Momentum Index",
			rule: oscillator("Relative Momentum Index", func(s core.Series) float64 {
				return momentum.RMI(s, mo.RMIPeriod, mo.RMILookback)
			}, th.RMIOverbought, th.RMIOversold, SignalNeutral),
		},
		{
			Name:        "Moving Average Ribbon",
			Description: "A series of moving averages used to identify trend strength.",
			label:       "Moving Average Ribbon",
			rule: func(s core.Series) (Result, error) {
				ribbon := trend.Ribbon(s, tr.RibbonPeriod, tr.RibbonCount)
				if len(ribbon) < 2 {
					return Result{}, errors.Newf(errors.ErrCodeInvalidParameter,
						"ribbon needs at least two lines, got %d", len(ribbon))
				}
				fast, slow := core.LastOf(ribbon[0]), core.LastOf(ribbon[1])
				if err := checkFinite(fast, slow); err != nil {
					return Result{}, err
				}
				return directional("Moving Average Ribbon", fast > slow), nil
			},
		},
		{
			Name:        "Trix Indicator",
			Description: "A momentum oscillator that shows the rate of change in a triple-smoothed exponential moving average.",
			label:       "Trix Indicator",
			rule: positive("Trix Indicator", func(s core.Series) float64 {
				return momentum.TRIX(s, mo.TRIXPeriod)
			}),
		},

		{
			Name:        "Accumulation/Distribution Line (ADL)",
			Description: "Tracks cumulative money flow to confirm price trends.",
			label:       "Accumulation/Distribution Line",
			rule:        rising("Accumulation/Distribution Line", volume.ADLSeries),
		},
		{
			Name:        "Stochastic RSI",
			Description: "Applies the stochastic formula to RSI to find overbought and oversold momentum.",
			label:       "Stochastic RSI",
			rule: oscillator("Stochastic RSI", func(s core.Series) float64 {
				return momentum.StochRSI(s, mo.RSIPeriod, mo.StochRSIPeriod)
			}, th.StochRSIOverbought, th.StochRSIOversold, SignalNeutral),
		},
		{
			Name:        "Force Index",
			Description: "Combines price change and volume to measure buying and selling pressure.",
			label:       "Force Index",
			rule: positive("Force Index", func(s core.Series) float64 {
				return volume.ForceIndex(s, vo.ForceIndexPeriod)
			}),
		},
		{
			Name:        "Ease of Movement (EMV)",
			Description: "Relates price change to volume to show how easily price moves.",
			label:       "Ease of Movement",
			rule: positive("Ease of Movement", func(s core.Series) float64 {
				return volume.EMV(s, vo.EMVPeriod, vo.EMVScale)
			}),
		},
		{
			Name:        "Ultimate Oscillator",
			Description: "Blends buying pressure over three timeframes to reduce false divergence signals.",
			label:       "Ultimate Oscillator",
			rule: oscillator("Ultimate Oscillator", func(s core.Series) float64 {
				return momentum.UltimateOscillator(s, mo.UltimateShort, mo.UltimateMedium, mo.UltimateLong)
			}, th.UltimateOverbought, th.UltimateOversold, SignalNeutral),
		},
		{
			Name:        "Vortex Indicator",
			Description: "Compares upward and downward trend movement to spot trend direction.",
			label:       "Vortex Indicator",
			rule: func(s core.Series) (Result, error) {
				v := trend.Vortex(s, tr.VortexPeriod)
				if err := checkFinite(v.Plus, v.Minus); err != nil {
					return Result{}, err
				}
				return directional("Vortex Indicator", v.Plus > v.Minus), nil
			},
		},
		{
			Name:        "Chande Momentum Oscillator (CMO)",
			Description: "Measures momentum as the balance of up and down moves.",
			label:       "Chande Momentum Oscillator",
			rule: oscillator("Chande Momentum Oscillator", func(s core.Series) float64 {
				return momentum.CMO(s, mo.CMOPeriod)
			}, th.CMOOverbought, th.CMOOversold, SignalNeutral),
		},
		{
			Name:        "Detrended Price Oscillator (DPO)",
			Description: "Removes the trend from price to expose cycles.",
			label:       "Detrended Price Oscillator",
			rule: positive("Detrended Price Oscillator", func(s core.Series) float64 {
				return core.LastOf(trend.DPO(s, tr.DPOPeriod))
			}),
		},
		{
			Name:        "Money Flow Index (MFI)",
			Description: "A volume-weighted RSI that flags overbought and oversold money flow.",
			label:       "Money Flow Index",
			rule: oscillator("Money Flow Index", func(s core.Series) float64 {
				return volume.MFI(s, vo.MFIPeriod)
			}, th.MFIOverbought, th.MFIOversold, SignalNeutral),
		},
		{
			Name:        "Weighted Moving Average (WMA)",
			Description: "A moving average that weights recent prices linearly more.",
			label:       "Weighted Moving Average",
			rule: priceAbove("Weighted Moving Average", func(s core.Series) float64 {
				return core.LastOf(trend.WMA(s, tr.WMAPeriod))
			}),
		},
		{
			Name:        "Hull Moving Average (HMA)",
			Description: "A fast, low-lag moving average built from weighted averages.",
			label:       "Hull Moving Average",
			rule: priceAbove("Hull Moving Average", func(s core.Series) float64 {
				return core.LastOf(trend.HMA(s, tr.HMAPeriod))
			}),
		},
		{
			Name:        "Elder Impulse System",
			Description: "Combines EMA slope and MACD histogram slope to colour each bar.",
			label:       "Elder Impulse System",
			rule: func(s core.Series) (Result, error) {
				switch momentum.ElderImpulse(s, mo.ElderEMAPeriod, mo.MACDFast, mo.MACDSlow, mo.MACDSignal) {
				case momentum.ImpulseGreen:
					return directional("Elder Impulse System", true), nil
				case momentum.ImpulseRed:
					return directional("Elder Impulse System", false), nil
				default:
					return Result{Match: false, Signal: SignalNeutral, Description: "Elder Impulse System"}, nil
				}
			},
		},
		{
			Name:        "Know Sure Thing (KST)",
			Description: "A weighted sum of smoothed rates of change with a signal line.",
			label:       "Know Sure Thing",
			rule: crossing("Know Sure Thing", func(s core.Series) core.DualLine {
				return momentum.KST(s, mo.KST)
			}),
		},
		{
			Name:        "Price Volume Trend (PVT)",
			Description: "Accumulates volume weighted by relative price change.",
			label:       "Price Volume Trend",
			rule:        rising("Price Volume Trend", volume.PVTSeries),
		},
		{
			Name:        "Mass Index",
			Description: "Watches range expansion to anticipate trend reversals.",
			label:       "Mass Index",
			rule: func(s core.Series) (Result, error) {
				mi := volatility.MassIndex(s, vt.MassEMAPeriod, vt.MassSumPeriod)
				if err := checkFinite(mi); err != nil {
					return Result{}, err
				}
				if mi > th.MassReversal {
					return Result{Match: true, Signal: "Reversal Warning", Description: "Mass Index"}, nil
				}
				return Result{Match: false, Signal: SignalNone, Description: "Mass Index"}, nil
			},
		},
		{
			Name:        "Percentage Price Oscillator (PPO)",
			Description: "MACD expressed as a percentage of the slow moving average.",
			label:       "Percentage Price Oscillator",
			rule: crossLabels("Percentage Price Oscillator", func(s core.Series) core.DualLine {
				return momentum.PPO(s, mo.PPOFast, mo.PPOSlow, mo.PPOSignal)
			}),
		},
		{
			Name:        "Balance of Power (BOP)",
			Description: "Measures the strength of buyers against sellers within each bar.",
			label:       "Balance of Power",
			rule: positive("Balance of Power", func(s core.Series) float64 {
				return momentum.BOP(s, mo.BOPPeriod)
			}),
		},
	}
}

// crossLabels reports Bullish Cross (matching) while the line is above its
// signal line and Bearish Cross otherwise.
func crossLabels(label string, lines func(core.Series) core.DualLine) rule {
	return func(s core.Series) (Result, error) {
		d := lines(s)
		line, signal := d.LastLine(), d.LastSignal()
		if err := checkFinite(line, signal); err != nil {
			return Result{}, err
		}
		if line > signal {
			return Result{Match: true, Signal: "Bullish Cross", Description: label}, nil
		}
		return Result{Match: false, Signal: "Bearish Cross", Description: label}, nil
	}
}

func bollingerBreakout(period int, multiplier float64) rule {
	const label = "Bollinger Bands Breakout"
	return func(s core.Series) (Result, error) {
		price, err := s.LastPrice()
		if err != nil {
			return Result{}, err
		}
		bands := volatility.BollingerBands(s, period, multiplier)
		upper, lower := bands.LastUpper(), bands.LastLower()
		if err := checkFinite(price, upper, lower); err != nil {
			return Result{}, err
		}
		up, down := SignalNone, SignalNone
		if price > upper {
			up = "Bullish Breakout"
		}
		if price < lower {
			down = "Bearish Breakout"
		}
		return Result{
			Match:       up != SignalNone || down != SignalNone,
			Signal:      fmt.Sprintf("%s | %s", up, down),
			Description: label,
		}, nil
	}
}

// maCross compares SMA(short) with SMA(long) at the last bar. The golden
// variant fires while short is above long, the death variant while below.
func maCross(label string, short, long int, golden bool) rule {
	return func(s core.Series) (Result, error) {
		fast := core.LastOf(trend.SMA(s, short))
		slow := core.LastOf(trend.SMA(s, long))
		if err := checkFinite(fast, slow); err != nil {
			return Result{}, err
		}
		switch {
		case golden && fast > slow:
			return Result{Match: true, Signal: SignalBullish, Description: label}, nil
		case !golden && fast < slow:
			return Result{Match: true, Signal: SignalBearish, Description: label}, nil
		}
		return Result{Match: false, Signal: SignalNone, Description: label}, nil
	}
}

// channelZone classifies the last price against the outer lines of a band.
func channelZone(label string, bands func(core.Series) core.Bands, above, below string) rule {
	return func(s core.Series) (Result, error) {
		price, err := s.LastPrice()
		if err != nil {
			return Result{}, err
		}
		b := bands(s)
		upper, lower := b.LastUpper(), b.LastLower()
		if err := checkFinite(price, upper, lower); err != nil {
			return Result{}, err
		}
		return zone(label, price, upper, lower, above, below, SignalNeutral), nil
	}
}

func direction(label string, fn func(core.Series) pattern.Direction) rule {
	return func(s core.Series) (Result, error) {
		d := fn(s)
		return Result{Match: d != pattern.Neutral, Signal: string(d), Description: label}, nil
	}
}
