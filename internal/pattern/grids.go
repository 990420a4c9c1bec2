package pattern

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ToGrids pivots the aligned table into three dense grids keyed by coord A
// (rows) and coord B (columns). The reconstruction grid is built first and
// its sorted distinct coordinates define the canonical axes; the reference
// and error grids are then reindexed onto exactly those axes. Cells whose
// coordinate pair has no aligned row hold NaN, so the three grids always
// share shape and coordinate-to-index mapping.
func ToGrids(at *AlignedTable) *GridSet {
	rowCoords, colCoords := gridAxes(at.Rows)

	rowIdx := coordIndex(rowCoords)
	colIdx := coordIndex(colCoords)

	recon := nanDense(len(rowCoords), len(colCoords))
	for _, r := range at.Rows {
		recon.Set(rowIdx[r.CoordA], colIdx[r.CoordB], r.Recon)
	}

	// Reference and error grids are filled independently, but strictly onto
	// the reconstruction grid's axes.
	ref := reindexOnto(at.Rows, rowIdx, colIdx, func(r AlignedRow) float64 { return r.Ref })
	absErr := reindexOnto(at.Rows, rowIdx, colIdx, func(r AlignedRow) float64 { return r.AbsErr })

	return &GridSet{
		Recon:     recon,
		Ref:       ref,
		AbsErr:    absErr,
		RowCoords: rowCoords,
		ColCoords: colCoords,
	}
}

func gridAxes(rows []AlignedRow) (rowCoords, colCoords []float64) {
	seenA := make(map[float64]struct{})
	seenB := make(map[float64]struct{})
	for _, r := range rows {
		if _, ok := seenA[r.CoordA]; !ok {
			seenA[r.CoordA] = struct{}{}
			rowCoords = append(rowCoords, r.CoordA)
		}
		if _, ok := seenB[r.CoordB]; !ok {
			seenB[r.CoordB] = struct{}{}
			colCoords = append(colCoords, r.CoordB)
		}
	}
	sort.Float64s(rowCoords)
	sort.Float64s(colCoords)
	return rowCoords, colCoords
}

func coordIndex(coords []float64) map[float64]int {
	idx := make(map[float64]int, len(coords))
	for i, c := range coords {
		idx[c] = i
	}
	return idx
}

func nanDense(rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = math.NaN()
	}
	return mat.NewDense(rows, cols, data)
}

func reindexOnto(rows []AlignedRow, rowIdx, colIdx map[float64]int, value func(AlignedRow) float64) *mat.Dense {
	grid := nanDense(len(rowIdx), len(colIdx))
	for _, r := range rows {
		i, okRow := rowIdx[r.CoordA]
		j, okCol := colIdx[r.CoordB]
		if !okRow || !okCol {
			continue
		}
		grid.Set(i, j, value(r))
	}
	return grid
}
