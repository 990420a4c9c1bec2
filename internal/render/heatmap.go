package render

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var shades = []rune{' ', '░', '▒', '▓', '█'}

// HeatmapTerminal renders a dense grid as a shaded terminal heatmap.
// Rows are printed with coord A increasing upward so the layout matches a
// lower-origin plot. Cells without data render as '·'.
func HeatmapTerminal(grid *mat.Dense, rowCoords, colCoords []float64, title string) string {
	rows, cols := grid.Dims()

	minVal, maxVal := gridRange(grid)

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", title)

	for i := rows - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%8.1f |", rowCoords[i])
		for j := 0; j < cols; j++ {
			v := grid.At(i, j)
			if math.IsNaN(v) {
				b.WriteRune('·')
				continue
			}
			b.WriteRune(shade(v, minVal, maxVal))
		}
		b.WriteRune('\n')
	}

	fmt.Fprintf(&b, "%8s +%s\n", "", strings.Repeat("-", cols))
	if len(colCoords) > 0 {
		fmt.Fprintf(&b, "%9s %g .. %g\n", "", colCoords[0], colCoords[len(colCoords)-1])
	}
	fmt.Fprintf(&b, "Scale: Min=%.4f, Max=%.4f\n", minVal, maxVal)

	return b.String()
}

func gridRange(grid *mat.Dense) (minVal, maxVal float64) {
	rows, cols := grid.Dims()
	minVal = math.Inf(1)
	maxVal = math.Inf(-1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := grid.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}
	return minVal, maxVal
}

func shade(v, minVal, maxVal float64) rune {
	if maxVal == minVal {
		return shades[len(shades)/2]
	}
	idx := int((v - minVal) / (maxVal - minVal) * float64(len(shades)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(shades) {
		idx = len(shades) - 1
	}
	return shades[idx]
}
