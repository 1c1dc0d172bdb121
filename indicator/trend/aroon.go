package trend

import "github.com/evdnx/gosignal/indicator/core"

const DefaultAroonPeriod = 25

// AroonResult holds Aroon Up and Aroon Down, each within [0,100].
type AroonResult struct {
	Up   float64 `json:"up"`
	Down float64 `json:"down"`
}

// Oscillator returns Up - Down.
func (a AroonResult) Oscillator() float64 { return a.Up - a.Down }

// Aroon measures how recently the highest high and the lowest low of the last
// period bars occurred: up = (period - barsSinceHigh)/period*100, where a high
// on the latest bar gives 100. Ties resolve to the most recent bar.
func Aroon(s core.Series, period int) AroonResult {
	n := s.Len()
	if period < 1 || n < period {
		return AroonResult{}
	}
	w := s.Tail(period)
	hiIdx, loIdx := 0, 0
	for i := range w {
		if w[i].HighOrPrice() >= w[hiIdx].HighOrPrice() {
			hiIdx = i
		}
		if w[i].LowOrPrice() <= w[loIdx].LowOrPrice() {
			loIdx = i
		}
	}
	sinceHigh := float64(period - 1 - hiIdx)
	sinceLow := float64(period - 1 - loIdx)
	p := float64(period)
	return AroonResult{
		Up:   (p - sinceHigh) / p * 100,
		Down: (p - sinceLow) / p * 100,
	}
}
