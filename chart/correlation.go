package chart

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/zalepa/macroar/indicator"
)

// Correlation returns the Pearson correlation matrix of the table's columns.
// Each pair uses only the rows where both values are present; a pair with
// fewer than two such rows, or with no variance, is NaN.
func Correlation(t indicator.Table) *mat.SymDense {
	n := len(t.Columns)
	if n == 0 {
		return &mat.SymDense{}
	}
	cols := make([][]indicator.Value, n)
	for i, name := range t.Columns {
		cols[i], _ = t.Column(name)
	}

	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m.SetSym(i, j, pairwise(cols[i], cols[j]))
		}
	}
	return m
}

func pairwise(a, b []indicator.Value) float64 {
	var x, y []float64
	for k := range a {
		if a[k].Valid && b[k].Valid {
			x = append(x, a[k].V)
			y = append(y, b[k].V)
		}
	}
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}
