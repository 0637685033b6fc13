package indicator

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Frame is a table of named string fields. Cells are kept as text so that
// numeric coercion happens in one place (ParseValue).
type Frame struct {
	df dataframe.DataFrame
}

// ReadFrame reads a CSV whose first record is the header row.
func ReadFrame(r io.Reader) (Frame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return Frame{}, fmt.Errorf("read csv: %w", df.Err)
	}
	return Frame{df: df}, nil
}

// Names returns the column names in file order.
func (f Frame) Names() []string { return f.df.Names() }

// Nrow returns the number of data rows.
func (f Frame) Nrow() int { return f.df.Nrow() }

// Has reports whether the frame has a column with the given name.
func (f Frame) Has(name string) bool {
	for _, n := range f.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Where returns the rows whose column col equals val.
func (f Frame) Where(col, val string) (Frame, error) {
	out := f.df.Filter(dataframe.F{
		Colname:    col,
		Comparator: series.Eq,
		Comparando: val,
	})
	if out.Err != nil {
		return Frame{}, fmt.Errorf("filter %s == %q: %w", col, val, out.Err)
	}
	return Frame{df: out}, nil
}

// Column returns the cells of the named column as text.
func (f Frame) Column(name string) ([]string, error) {
	if !f.Has(name) {
		return nil, fmt.Errorf("no column %q", name)
	}
	return f.df.Col(name).Records(), nil
}

// Pivot turns one wide row into a long, two-column frame: the names of cols
// become the key column and the row's cells under them the value column.
func (f Frame) Pivot(row int, cols []string, key, value string) (Frame, error) {
	if row < 0 || row >= f.df.Nrow() {
		return Frame{}, fmt.Errorf("pivot row %d out of range (%d rows)", row, f.df.Nrow())
	}
	keys := make([]string, 0, len(cols))
	vals := make([]string, 0, len(cols))
	for _, c := range cols {
		if !f.Has(c) {
			return Frame{}, fmt.Errorf("pivot: no column %q", c)
		}
		keys = append(keys, c)
		vals = append(vals, f.df.Col(c).Elem(row).String())
	}
	long := dataframe.New(
		series.New(keys, series.String, key),
		series.New(vals, series.String, value),
	)
	if long.Err != nil {
		return Frame{}, fmt.Errorf("pivot: %w", long.Err)
	}
	return Frame{df: long}, nil
}
