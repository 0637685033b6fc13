package indicator

import (
	"fmt"
	"path/filepath"
	"sort"
)

const (
	// DefaultCountry is the ISO3 code the report is built for.
	DefaultCountry = "ARG"
	// DefaultFloor is the earliest year kept in the consolidated table.
	DefaultFloor = 1990
)

// Spec names an indicator and the file it is read from.
type Spec struct {
	Name string
	File string
}

// DefaultSpecs lists the three indicators of the Argentina report in join
// order.
func DefaultSpecs() []Spec {
	return []Spec{
		{Name: "inflation", File: "inflation_ar.csv"},
		{Name: "unemployment", File: "unemployment_ar.csv"},
		{Name: "poverty", File: "poverty_ar.csv"},
	}
}

// Join inner-joins series on year, in argument order. Only years present in
// every series survive. Rows are sorted by year.
func Join(series ...Series) Table {
	t := Table{Columns: make([]string, len(series))}
	for i, s := range series {
		t.Columns[i] = s.Name
	}
	if len(series) == 0 {
		return t
	}

	indexes := make([]map[int]Value, len(series))
	for i, s := range series {
		indexes[i] = s.index()
	}

	seen := make(map[int]bool, len(series[0].Points))
	for _, p := range series[0].Points {
		if seen[p.Year] {
			continue
		}
		seen[p.Year] = true

		row := Row{Year: p.Year, Values: make([]Value, len(series))}
		complete := true
		for i, idx := range indexes {
			v, ok := idx[p.Year]
			if !ok {
				complete = false
				break
			}
			row.Values[i] = v
		}
		if complete {
			t.Rows = append(t.Rows, row)
		}
	}

	sort.Slice(t.Rows, func(i, j int) bool {
		return t.Rows[i].Year < t.Rows[j].Year
	})
	return t
}

// Load reshapes each indicator file under dataDir for country, joins them and
// drops years before floor. Any file failing aborts the load.
func Load(dataDir string, specs []Spec, country string, floor int) (Table, error) {
	series := make([]Series, 0, len(specs))
	for _, spec := range specs {
		s, err := Reshape(filepath.Join(dataDir, spec.File), spec.Name, country)
		if err != nil {
			return Table{}, fmt.Errorf("loading %s: %w", spec.Name, err)
		}
		series = append(series, s)
	}
	return Join(series...).Since(floor), nil
}
