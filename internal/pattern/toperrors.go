package pattern

import "sort"

// TopErrors returns the n rows with the largest squared error, descending.
// Ties keep original row order (stable sort). When the table has fewer than
// n rows, all of them are returned; a non-positive n returns none.
func TopErrors(at *AlignedTable, n int) []AlignedRow {
	if n < 0 {
		n = 0
	}
	ranked := make([]AlignedRow, len(at.Rows))
	copy(ranked, at.Rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SqErr > ranked[j].SqErr
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
