package core

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gocarina/gocsv"
)

// PlotData is a named, chart-ready projection of an indicator series.
type PlotData struct {
	Name      string    `json:"name"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Type      string    `json:"type,omitempty"`
	Signal    string    `json:"signal,omitempty"`
	Timestamp []int64   `json:"timestamp,omitempty"`
}

// NewPlotData builds a line plot of values against their bar index.
func NewPlotData(name string, values []float64) PlotData {
	x := make([]float64, len(values))
	for i := range x {
		x[i] = float64(i)
	}
	return PlotData{Name: name, X: x, Y: copySlice(values), Type: "line"}
}

// GenerateTimestamps returns count timestamps starting at startTime spaced by
// interval.
func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	if count <= 0 {
		return nil
	}
	ts := make([]int64, count)
	for i := 0; i < count; i++ {
		ts[i] = startTime + int64(i)*interval
	}
	return ts
}

func validatePlotData(data []PlotData) error {
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
	}
	return nil
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "[]", nil
	}
	if err := validatePlotData(data); err != nil {
		return "", err
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plot data: %w", err)
	}
	return string(b), nil
}

type plotRow struct {
	Name      string `csv:"Name"`
	X         string `csv:"X"`
	Y         string `csv:"Y"`
	Type      string `csv:"Type"`
	Signal    string `csv:"Signal"`
	Timestamp string `csv:"Timestamp"`
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if err := validatePlotData(data); err != nil {
		return "", err
	}
	rows := make([]*plotRow, 0)
	for _, d := range data {
		for i := range d.X {
			ts := ""
			if i < len(d.Timestamp) {
				ts = strconv.FormatInt(d.Timestamp[i], 10)
			}
			rows = append(rows, &plotRow{
				Name:      d.Name,
				X:         strconv.FormatFloat(d.X[i], 'f', 6, 64),
				Y:         strconv.FormatFloat(d.Y[i], 'f', 6, 64),
				Type:      d.Type,
				Signal:    d.Signal,
				Timestamp: ts,
			})
		}
	}
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plot data: %w", err)
	}
	return out, nil
}
