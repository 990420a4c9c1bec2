package pattern

import (
	"math"

	"github.com/rs/zerolog/log"
)

type coordKey struct {
	a, b float64
}

// Align inner-joins the reference and reconstruction tables on the
// (CoordA, CoordB) key with exact equality. Every joined row carries both
// source values plus the derived difference, squared error, and absolute
// error columns. Rows whose key exists in only one table are dropped.
//
// Aligned rows keep the reference table's row order. A row with a cell
// count that does not match its table's field count fails with
// *RaggedRowError; a key repeated within a single table fails with
// *DuplicateKeyError; a join with zero rows fails with
// *EmptyAlignmentError.
func Align(ref, recon *Table, spec FieldSpec) (*AlignedTable, error) {
	if err := Validate(ref, spec.CoordA, spec.CoordB, spec.Value); err != nil {
		return nil, err
	}
	if err := Validate(recon, spec.CoordA, spec.CoordB, spec.Value); err != nil {
		return nil, err
	}

	for _, t := range []*Table{ref, recon} {
		for i, row := range t.Rows {
			if len(row) != len(t.Fields) {
				return nil, &RaggedRowError{Table: t.Name, Row: i, Cells: len(row), Fields: len(t.Fields)}
			}
		}
	}

	refA, refB, refV := ref.FieldIndex(spec.CoordA), ref.FieldIndex(spec.CoordB), ref.FieldIndex(spec.Value)
	reconA, reconB, reconV := recon.FieldIndex(spec.CoordA), recon.FieldIndex(spec.CoordB), recon.FieldIndex(spec.Value)

	reconValues := make(map[coordKey]float64, recon.Len())
	for _, row := range recon.Rows {
		key := coordKey{a: row[reconA], b: row[reconB]}
		if _, exists := reconValues[key]; exists {
			return nil, &DuplicateKeyError{Table: recon.Name, CoordA: key.a, CoordB: key.b}
		}
		reconValues[key] = row[reconV]
	}

	seen := make(map[coordKey]struct{}, ref.Len())
	aligned := &AlignedTable{Spec: spec}
	for _, row := range ref.Rows {
		key := coordKey{a: row[refA], b: row[refB]}
		if _, dup := seen[key]; dup {
			return nil, &DuplicateKeyError{Table: ref.Name, CoordA: key.a, CoordB: key.b}
		}
		seen[key] = struct{}{}

		reconValue, ok := reconValues[key]
		if !ok {
			continue
		}

		diff := reconValue - row[refV]
		aligned.Rows = append(aligned.Rows, AlignedRow{
			CoordA: key.a,
			CoordB: key.b,
			Ref:    row[refV],
			Recon:  reconValue,
			Diff:   diff,
			SqErr:  diff * diff,
			AbsErr: math.Abs(diff),
		})
	}

	if len(aligned.Rows) == 0 {
		return nil, &EmptyAlignmentError{RefRows: ref.Len(), ReconRows: recon.Len()}
	}

	log.Debug().
		Int("aligned", len(aligned.Rows)).
		Int("reference_rows", ref.Len()).
		Int("reconstruction_rows", recon.Len()).
		Msg("aligned tables on coordinate key")

	return aligned, nil
}
