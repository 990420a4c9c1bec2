package pattern

import (
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Table is an ordered tabular dataset with all-numeric cells. Field names
// are matched after trimming incidental whitespace, mirroring how measurement
// exports pad their CSV headers.
type Table struct {
	Name   string
	Fields []string
	Rows   [][]float64
}

// FieldSpec names the two coordinate columns and the value column a
// comparison operates on. All three are caller configuration, not defaults.
type FieldSpec struct {
	CoordA string
	CoordB string
	Value  string
}

// AlignedRow is one joined sample: both source values plus the derived
// error columns.
type AlignedRow struct {
	CoordA float64
	CoordB float64
	Ref    float64
	Recon  float64
	Diff   float64 // Recon - Ref
	SqErr  float64
	AbsErr float64
}

// AlignedTable is the inner join of a reference and a reconstruction table
// on the coordinate key. Rows keep the reference table's original order.
type AlignedTable struct {
	Spec FieldSpec
	Rows []AlignedRow
}

// Summary holds the aggregate error statistics of one comparison run.
type Summary struct {
	MSE  float64
	RMSE float64
	Bias float64
	N    int
}

// GridSet holds the three dense grids pivoted from an aligned table. All
// three share shape and coordinate-to-index mapping; cells with no aligned
// sample hold NaN.
type GridSet struct {
	Recon  *mat.Dense
	Ref    *mat.Dense
	AbsErr *mat.Dense

	RowCoords []float64 // sorted distinct coord A values
	ColCoords []float64 // sorted distinct coord B values
}

// Result is the immutable outcome of one comparison run.
type Result struct {
	Aligned *AlignedTable
	Summary Summary
	Top     []AlignedRow
	Grids   *GridSet
}

// FieldIndex returns the position of a field by trimmed name, or -1.
func (t *Table) FieldIndex(name string) int {
	want := strings.TrimSpace(name)
	for i, f := range t.Fields {
		if strings.TrimSpace(f) == want {
			return i
		}
	}
	return -1
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
