// Package render formats comparison results for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/antennalabs/patterncmp/internal/pattern"
)

// FormatSummary renders the one-line statistics report. The bias annotation
// is commentary for the reader: a positive bias means the reconstruction
// reads hot ("Optimistic"), otherwise "Conservative".
func FormatSummary(s pattern.Summary) string {
	biasDesc := "Conservative"
	if s.Bias > 0 {
		biasDesc = "Optimistic"
	}

	return fmt.Sprintf(
		"COMPARISON STATISTICS  |  MSE: %.4f  |  RMSE: %.4f  |  Mean Bias: %.4f dB (%s)  |  Points: %d",
		s.MSE, s.RMSE, s.Bias, biasDesc, s.N,
	)
}

// FormatTopErrors renders the ranked extremes as an aligned table.
func FormatTopErrors(rows []pattern.AlignedRow, spec pattern.FieldSpec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Top %d Largest Differences:\n", len(rows))
	fmt.Fprintf(&b, "%12s %12s %12s %12s %12s\n", spec.CoordA, spec.CoordB, "reference", "reconstr.", "diff")
	for _, r := range rows {
		fmt.Fprintf(&b, "%12g %12g %12.4f %12.4f %+12.4f\n", r.CoordA, r.CoordB, r.Ref, r.Recon, r.Diff)
	}

	return b.String()
}
