package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func yearSeries(name string, years ...int) Series {
	s := Series{Name: name}
	for _, y := range years {
		s.Points = append(s.Points, Point{Year: y, Value: Some(float64(y))})
	}
	return s
}

func TestJoin_Intersection(t *testing.T) {
	got := Join(
		yearSeries("inflation", 1990, 1991, 1992),
		yearSeries("unemployment", 1991, 1992, 1993),
		yearSeries("poverty", 1990, 1991, 1992),
	)
	if diff := cmp.Diff([]int{1991, 1992}, got.Years()); diff != "" {
		t.Errorf("years (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"inflation", "unemployment", "poverty"}, got.Columns); diff != "" {
		t.Errorf("columns (-want +got):\n%s", diff)
	}
}

func TestJoin_SortsByYear(t *testing.T) {
	a := Series{Name: "a", Points: []Point{{Year: 2001, Value: Some(1)}, {Year: 1999, Value: Some(2)}}}
	b := Series{Name: "b", Points: []Point{{Year: 1999, Value: Missing()}, {Year: 2001, Value: Some(3)}}}

	got := Join(a, b)
	want := Table{
		Columns: []string{"a", "b"},
		Rows: []Row{
			{Year: 1999, Values: []Value{Some(2), Missing()}},
			{Year: 2001, Values: []Value{Some(1), Some(3)}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Join (-want +got):\n%s", diff)
	}
}

func TestJoin_NoCommonYears(t *testing.T) {
	got := Join(yearSeries("a", 1990), yearSeries("b", 1991))
	if got.Len() != 0 {
		t.Errorf("got %d rows, want 0", got.Len())
	}
}

func TestTable_Since(t *testing.T) {
	tbl := Join(yearSeries("a", 1985, 1989, 1990, 2000), yearSeries("b", 1985, 1989, 1990, 2000))
	got := tbl.Since(DefaultFloor)
	if diff := cmp.Diff([]int{1990, 2000}, got.Years()); diff != "" {
		t.Errorf("years (-want +got):\n%s", diff)
	}
}

func TestTable_Column(t *testing.T) {
	tbl := Join(yearSeries("a", 1990, 1991), yearSeries("b", 1990, 1991))
	vals, ok := tbl.Column("b")
	if !ok {
		t.Fatal("column b not found")
	}
	if diff := cmp.Diff([]Value{Some(1990), Some(1991)}, vals); diff != "" {
		t.Errorf("column (-want +got):\n%s", diff)
	}
	if _, ok := tbl.Column("c"); ok {
		t.Error("column c should not exist")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeIndicator(t, dir, "inflation_ar.csv",
		[]string{"1988", "1990", "1991", "1992"},
		map[string][]string{"ARG": {"3079.8", "2314.0", "171.7", "24.9"}})
	writeIndicator(t, dir, "unemployment_ar.csv",
		[]string{"1988", "1991", "1992", "1993"},
		map[string][]string{"ARG": {"6.1", "5.4", "6.4", "10.1"}})
	writeIndicator(t, dir, "poverty_ar.csv",
		[]string{"1988", "1990", "1991", "1992"},
		map[string][]string{"ARG": {"x", "", "", "19.1"}})

	tbl, err := Load(dir, DefaultSpecs(), DefaultCountry, DefaultFloor)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Table{
		Columns: []string{"inflation", "unemployment", "poverty"},
		Rows: []Row{
			{Year: 1991, Values: []Value{Some(171.7), Some(5.4), Missing()}},
			{Year: 1992, Values: []Value{Some(24.9), Some(6.4), Some(19.1)}},
		},
	}
	if diff := cmp.Diff(want, tbl); diff != "" {
		t.Errorf("Load (-want +got):\n%s", diff)
	}
}

func TestLoad_PropagatesReshapeFailure(t *testing.T) {
	dir := t.TempDir()
	writeIndicator(t, dir, "inflation_ar.csv", []string{"1990"}, map[string][]string{"ARG": {"1"}})
	writeIndicator(t, dir, "unemployment_ar.csv", []string{"1990"}, map[string][]string{"BRA": {"1"}})
	writeIndicator(t, dir, "poverty_ar.csv", []string{"1990"}, map[string][]string{"ARG": {"1"}})

	_, err := Load(dir, DefaultSpecs(), DefaultCountry, DefaultFloor)
	if !errors.Is(err, ErrCountryNotFound) {
		t.Errorf("err = %v, want ErrCountryNotFound", err)
	}
}

func TestValue_Float(t *testing.T) {
	if got := Some(2.5).Float(); got != 2.5 {
		t.Errorf("Some(2.5).Float() = %v", got)
	}
	if got := Missing().Float(); !math.IsNaN(got) {
		t.Errorf("Missing().Float() = %v, want NaN", got)
	}
	if got := Missing().String(); got != "" {
		t.Errorf("Missing().String() = %q, want empty", got)
	}
}
