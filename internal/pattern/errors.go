package pattern

import (
	"fmt"
	"strings"
)

// MissingFieldsError reports required fields absent from an input table.
type MissingFieldsError struct {
	Table  string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("table %q missing required fields: %s", e.Table, strings.Join(e.Fields, ", "))
}

// EmptyAlignmentError reports a join that produced zero rows. The usual
// cause is a coordinate-range mismatch between the two exports, e.g. one
// using [-180,180] and the other [0,360) for the same physical angle. The
// engine never normalizes ranges.
type EmptyAlignmentError struct {
	RefRows   int
	ReconRows int
}

func (e *EmptyAlignmentError) Error() string {
	return fmt.Sprintf("no matching coordinate keys between tables (%d reference rows, %d reconstruction rows); check angle ranges", e.RefRows, e.ReconRows)
}

// RaggedRowError reports a row whose cell count does not match the table's
// field count. Tables read from CSV cannot be ragged; this guards tables
// assembled from wire payloads.
type RaggedRowError struct {
	Table  string
	Row    int
	Cells  int
	Fields int
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("table %q row %d has %d cells for %d fields", e.Table, e.Row, e.Cells, e.Fields)
}

// DuplicateKeyError reports a coordinate key that appears more than once
// within a single input table. Duplicates would silently multiply joined
// rows, so they are rejected outright.
type DuplicateKeyError struct {
	Table  string
	CoordA float64
	CoordB float64
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("table %q has duplicate coordinate key (%g, %g)", e.Table, e.CoordA, e.CoordB)
}
