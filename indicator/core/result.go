package core

// Bands is a channel indicator result: an upper and lower envelope around a
// middle line, each aligned with the input series.
type Bands struct {
	Upper  []float64 `json:"upper"`
	Middle []float64 `json:"middle"`
	Lower  []float64 `json:"lower"`
}

// NewBands allocates zero-filled bands of length n.
func NewBands(n int) Bands {
	return Bands{Upper: Zeros(n), Middle: Zeros(n), Lower: Zeros(n)}
}

// LastUpper returns the most recent upper value, 0 when empty.
func (b Bands) LastUpper() float64 { return LastOf(b.Upper) }

// LastMiddle returns the most recent middle value, 0 when empty.
func (b Bands) LastMiddle() float64 { return LastOf(b.Middle) }

// LastLower returns the most recent lower value, 0 when empty.
func (b Bands) LastLower() float64 { return LastOf(b.Lower) }

// DualLine pairs an indicator line with its smoothed signal line (MACD, PPO,
// KST, RVI, Klinger).
type DualLine struct {
	Line   []float64 `json:"line"`
	Signal []float64 `json:"signal"`
}

// NewDualLine allocates a zero-filled dual line of length n.
func NewDualLine(n int) DualLine {
	return DualLine{Line: Zeros(n), Signal: Zeros(n)}
}

// Histogram returns Line - Signal index for index.
func (d DualLine) Histogram() []float64 {
	n := min(len(d.Line), len(d.Signal))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = d.Line[i] - d.Signal[i]
	}
	return out
}

// LastLine returns the most recent line value, 0 when empty.
func (d DualLine) LastLine() float64 { return LastOf(d.Line) }

// LastSignal returns the most recent signal value, 0 when empty.
func (d DualLine) LastSignal() float64 { return LastOf(d.Signal) }
