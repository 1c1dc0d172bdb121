// Package feed produces bar series for the catalogue: a CSV loader and a
// deterministic synthetic generator.
package feed

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/moznion/go-optional"

	"github.com/evdnx/gosignal/errors"
	"github.com/evdnx/gosignal/indicator/core"
)

// csvRow mirrors one line of a bar file. Columns are optional except one of
// price or close; cells are kept as text so an empty cell can stay absent.
type csvRow struct {
	Price  string `csv:"price"`
	Close  string `csv:"close"`
	High   string `csv:"high"`
	Low    string `csv:"low"`
	Open   string `csv:"open"`
	Volume string `csv:"volume"`
}

// LoadCSV reads bars, oldest first, from CSV with a lower-case header row.
// Empty optional cells stay absent on the bar.
func LoadCSV(r io.Reader) (core.Series, error) {
	var rows []csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataParseFailed, "failed to unmarshal CSV", err)
	}

	series := make(core.Series, 0, len(rows))
	for i, row := range rows {
		bar, err := row.bar()
		if err != nil {
			// header is line 1
			return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "line %d", i+2)
		}
		series = append(series, bar)
	}
	return series, nil
}

// LoadCSVFile opens path and loads it with LoadCSV.
func LoadCSVFile(path string) (core.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataReadFailed, err, "failed to open CSV file %s", path)
	}
	defer f.Close()

	return LoadCSV(f)
}

func (row csvRow) bar() (core.Bar, error) {
	priceCell := row.Price
	if strings.TrimSpace(priceCell) == "" {
		priceCell = row.Close
	}
	price, err := parseCell("price", priceCell)
	if err != nil {
		return core.Bar{}, err
	}
	if price.IsNone() {
		return core.Bar{}, errors.New(errors.ErrCodeDataParseFailed, "missing price")
	}
	if !core.IsNonNegativePrice(price.Unwrap()) {
		return core.Bar{}, errors.Newf(errors.ErrCodeDataParseFailed, "invalid price %v", price.Unwrap())
	}

	bar := core.NewBar(price.Unwrap())
	if bar.High, err = parseCell("high", row.High); err != nil {
		return core.Bar{}, err
	}
	if bar.Low, err = parseCell("low", row.Low); err != nil {
		return core.Bar{}, err
	}
	if bar.Open, err = parseCell("open", row.Open); err != nil {
		return core.Bar{}, err
	}
	if bar.Volume, err = parseCell("volume", row.Volume); err != nil {
		return core.Bar{}, err
	}
	if !core.IsValidVolume(bar.VolumeOrZero()) {
		return core.Bar{}, errors.Newf(errors.ErrCodeDataParseFailed, "invalid volume %v", bar.VolumeOrZero())
	}
	return bar, nil
}

func parseCell(column, cell string) (optional.Option[float64], error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return optional.None[float64](), nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "invalid %s %q", column, cell)
	}
	return optional.Some(v), nil
}
