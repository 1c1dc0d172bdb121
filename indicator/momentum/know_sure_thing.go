package momentum

import "github.com/evdnx/gosignal/indicator/core"

// KSTParams configures the Know Sure Thing oscillator: four rate-of-change
// periods, the SMA applied to each, and the signal SMA.
type KSTParams struct {
	ROC    [4]int `json:"roc" yaml:"roc"`
	SMA    [4]int `json:"sma" yaml:"sma"`
	Signal int    `json:"signal" yaml:"signal"`
}

// DefaultKSTParams returns Pring's daily settings.
func DefaultKSTParams() KSTParams {
	return KSTParams{
		ROC:    [4]int{10, 15, 20, 30},
		SMA:    [4]int{10, 10, 10, 15},
		Signal: 9,
	}
}

// KST returns the Know Sure Thing line, the 1-2-3-4 weighted sum of four
// smoothed rates of change, and its SMA signal line.
func KST(s core.Series, p KSTParams) core.DualLine {
	n := s.Len()
	start := 0
	for k := 0; k < 4; k++ {
		if p.ROC[k] < 1 || p.SMA[k] < 1 {
			return core.NewDualLine(n)
		}
		start = max(start, p.ROC[k]+p.SMA[k]-1)
	}
	if p.Signal < 1 || n < start+p.Signal {
		return core.NewDualLine(n)
	}

	line := core.Zeros(n)
	for k := 0; k < 4; k++ {
		roc := ROCSeries(s, p.ROC[k])
		smoothed := smoothSMA(roc, p.ROC[k], p.SMA[k])
		weight := float64(k + 1)
		for i := start; i < n; i++ {
			line[i] += weight * smoothed[i]
		}
	}
	return core.DualLine{Line: line, Signal: smoothSMA(line, start, p.Signal)}
}
