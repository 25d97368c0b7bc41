package main

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/quantbio/relqpcr/plate"
)

type wellRow struct {
	Well   string `csv:"Well"`
	Sample string `csv:"Sample Name"`
	Ct     string `csv:"CT"`
}

// loadWellTable reads a rectangular per-well CSV export. The vendor's
// metadata preamble must already have been stripped; the first line is the
// header row.
func loadWellTable(path string) ([]plate.WellMeasurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.LazyQuotes = true
		r.TrimLeadingSpace = true
		return r
	})

	rows := []*wellRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}

	out := make([]plate.WellMeasurement, 0, len(rows))
	for _, row := range rows {
		well, err := plate.ParseWell(strings.TrimSpace(row.Well))
		if err != nil {
			return nil, err
		}

		out = append(out, plate.WellMeasurement{
			Well:        well,
			SampleLabel: strings.TrimSpace(row.Sample),
			Ct:          plate.ParseCt(row.Ct),
		})
	}

	return out, nil
}
