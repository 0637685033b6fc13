package cmd

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/zalepa/macroar/indicator"
)

const exportFile = "macro_ar.csv"

// writeCSV writes the consolidated table, one row per year. Missing values
// are empty cells.
func writeCSV(path string, t indicator.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := append([]string{"year"}, t.Columns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range t.Rows {
		row := make([]string, 0, len(r.Values)+1)
		row = append(row, strconv.Itoa(r.Year))
		for _, v := range r.Values {
			row = append(row, v.String())
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
