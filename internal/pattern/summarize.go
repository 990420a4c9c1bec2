package pattern

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summarize computes the aggregate error statistics over an aligned table:
// MSE as the mean squared error, RMSE as its square root, and bias as the
// mean signed difference. Align has already rejected the empty case.
func Summarize(at *AlignedTable) Summary {
	n := len(at.Rows)
	sqErrs := make([]float64, n)
	diffs := make([]float64, n)
	for i, row := range at.Rows {
		sqErrs[i] = row.SqErr
		diffs[i] = row.Diff
	}

	mse := stat.Mean(sqErrs, nil)
	return Summary{
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		Bias: stat.Mean(diffs, nil),
		N:    n,
	}
}
