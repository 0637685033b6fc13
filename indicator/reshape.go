package indicator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

const (
	// CountryColumn is the World Bank column holding ISO3 country codes.
	CountryColumn = "Country Code"

	// metadataLines precede the header row in World Bank exports.
	metadataLines = 4

	yearKey = "year"
)

// Reshape reads a World Bank wide-format indicator file and returns the
// row for country as a long, year-indexed series named valueName.
func Reshape(path, valueName, country string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("open indicator: %w", err)
	}
	defer f.Close()

	s, err := ReshapeReader(f, valueName, country)
	if err != nil {
		return Series{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ReshapeReader is Reshape over an arbitrary reader.
func ReshapeReader(r io.Reader, valueName, country string) (Series, error) {
	br := bufio.NewReader(r)
	for i := 0; i < metadataLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return Series{}, ErrNoHeader
			}
			return Series{}, fmt.Errorf("skip metadata: %w", err)
		}
	}

	frame, err := ReadFrame(br)
	if err != nil {
		return Series{}, err
	}
	if !frame.Has(CountryColumn) {
		return Series{}, ErrNoCountryColumn
	}

	rows, err := frame.Where(CountryColumn, country)
	if err != nil {
		return Series{}, err
	}
	if rows.Nrow() == 0 {
		return Series{}, fmt.Errorf("%w: %s", ErrCountryNotFound, country)
	}

	long, err := rows.Pivot(0, yearColumns(frame.Names()), yearKey, valueName)
	if err != nil {
		return Series{}, err
	}
	keys, err := long.Column(yearKey)
	if err != nil {
		return Series{}, err
	}
	cells, err := long.Column(valueName)
	if err != nil {
		return Series{}, err
	}

	s := Series{Name: valueName}
	seen := make(map[int]bool, len(keys))
	for i, k := range keys {
		year, err := strconv.Atoi(k)
		if err != nil {
			return Series{}, fmt.Errorf("year column %q: %w", k, err)
		}
		if seen[year] {
			continue
		}
		seen[year] = true
		s.Points = append(s.Points, Point{Year: year, Value: ParseValue(cells[i])})
	}
	sort.Slice(s.Points, func(i, j int) bool {
		return s.Points[i].Year < s.Points[j].Year
	})
	return s, nil
}

// yearColumns returns the names made up only of ASCII digits.
func yearColumns(names []string) []string {
	var years []string
	for _, n := range names {
		if isDigits(n) {
			years = append(years, n)
		}
	}
	return years
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
