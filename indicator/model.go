package indicator

import (
	"math"
	"strconv"
	"strings"
)

// Value is a single indicator observation. Missing observations have
// Valid == false; V is meaningless for them.
type Value struct {
	V     float64
	Valid bool
}

// Some returns a present value.
func Some(v float64) Value { return Value{V: v, Valid: true} }

// Missing returns an absent value.
func Missing() Value { return Value{} }

// Float returns the value as a float64, with NaN standing in for missing.
func (v Value) Float() float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.V
}

// String formats the value for CSV output. Missing values are empty.
func (v Value) String() string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.V, 'f', -1, 64)
}

// ParseValue coerces a raw cell to a Value. Anything that doesn't parse as a
// finite number is missing rather than an error.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Missing()
	}
	return Some(v)
}

// Point is one year of an indicator series.
type Point struct {
	Year  int
	Value Value
}

// Series is a year-indexed indicator for a single country. Years are unique
// and ascending.
type Series struct {
	Name   string
	Points []Point
}

// Years returns the years present in the series, in order.
func (s Series) Years() []int {
	years := make([]int, len(s.Points))
	for i, p := range s.Points {
		years[i] = p.Year
	}
	return years
}

func (s Series) index() map[int]Value {
	m := make(map[int]Value, len(s.Points))
	for _, p := range s.Points {
		if _, ok := m[p.Year]; !ok {
			m[p.Year] = p.Value
		}
	}
	return m
}

// Row holds one year of the consolidated table, one value per column.
type Row struct {
	Year   int
	Values []Value
}

// Table is the consolidated annual time series: one column per indicator,
// one row per year present in every indicator.
type Table struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Years returns the row years in table order.
func (t Table) Years() []int {
	years := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		years[i] = r.Year
	}
	return years
}

// Column returns the values of the named column in row order.
func (t Table) Column(name string) ([]Value, bool) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	vals := make([]Value, len(t.Rows))
	for i, r := range t.Rows {
		vals[i] = r.Values[idx]
	}
	return vals, true
}

// Since returns the rows whose year is >= floor.
func (t Table) Since(floor int) Table {
	out := Table{Columns: t.Columns}
	for _, r := range t.Rows {
		if r.Year >= floor {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}
