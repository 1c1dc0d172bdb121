package trend

import (
	"math"

	"github.com/evdnx/gosignal/indicator/core"
)

const DefaultADXPeriod = 14

// DirectionalMovement holds the Wilder-smoothed directional indicators at the
// last bar.
type DirectionalMovement struct {
	PlusDI  float64 `json:"plusDI"`
	MinusDI float64 `json:"minusDI"`
	DX      float64 `json:"dx"`
}

// DMI smooths +DM, -DM and true range with Wilder's running sum
// (sum = sum - sum/period + value) over the whole series, after seeding each
// with the plain sum of its first period values, and derives +DI, -DI and DX
// from the final smoothed values. Needs period+1 bars.
func DMI(s core.Series, period int) DirectionalMovement {
	n := s.Len()
	if period < 1 || n < period+1 {
		return DirectionalMovement{}
	}

	var smPlus, smMinus, smTR float64
	p := float64(period)
	for i := 1; i < n; i++ {
		upMove := s[i].HighOrPrice() - s[i-1].HighOrPrice()
		downMove := s[i-1].LowOrPrice() - s[i].LowOrPrice()
		plusDM, minusDM := 0.0, 0.0
		if upMove > downMove && upMove > 0 {
			plusDM = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM = downMove
		}
		tr := s.TrueRange(i)

		if i <= period {
			smPlus += plusDM
			smMinus += minusDM
			smTR += tr
			continue
		}
		smPlus = smPlus - smPlus/p + plusDM
		smMinus = smMinus - smMinus/p + minusDM
		smTR = smTR - smTR/p + tr
	}

	if smTR == 0 {
		return DirectionalMovement{}
	}
	var dm DirectionalMovement
	dm.PlusDI = smPlus / smTR * 100
	dm.MinusDI = smMinus / smTR * 100
	if sum := dm.PlusDI + dm.MinusDI; sum != 0 {
		dm.DX = math.Abs(dm.PlusDI-dm.MinusDI) / sum * 100
	}
	return dm
}

// ADX returns the trend strength (0-100) at the last bar: the DX of the final
// Wilder-smoothed directional movement. Insufficient data or a flat series
// gives 0.
func ADX(s core.Series, period int) float64 {
	return DMI(s, period).DX
}
