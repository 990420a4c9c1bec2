// Package pattern aligns two irregularly-sampled angular gain tables and
// quantifies how well a reconstruction reproduces the reference.
package pattern

import (
	"github.com/antennalabs/patterncmp/internal/utils/logger"
)

// Comparer runs the full comparison pipeline:
// validate -> align -> summarize + top errors + grids.
type Comparer struct {
	Spec FieldSpec
	TopN int
}

type ComparerOption func(*Comparer)

func WithFieldSpec(spec FieldSpec) ComparerOption {
	return func(c *Comparer) {
		c.Spec = spec
	}
}

func WithCoordFields(coordA, coordB string) ComparerOption {
	return func(c *Comparer) {
		c.Spec.CoordA = coordA
		c.Spec.CoordB = coordB
	}
}

func WithValueField(value string) ComparerOption {
	return func(c *Comparer) {
		c.Spec.Value = value
	}
}

func WithTopN(n int) ComparerOption {
	return func(c *Comparer) {
		c.TopN = n
	}
}

func NewComparer(opts ...ComparerOption) *Comparer {
	c := &Comparer{
		Spec: DefaultFieldSpec(),
		TopN: DefaultTopN,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compare runs one comparison. Every failure is terminal for the run; no
// partial results are produced.
func (c *Comparer) Compare(ref, recon *Table) (*Result, error) {
	logger.Sugar().Infow("Comparing tables", "reference", ref.Name, "reconstruction", recon.Name, "fieldSpec", c.Spec)

	if err := Validate(ref, c.Spec.CoordA, c.Spec.CoordB, c.Spec.Value); err != nil {
		return nil, err
	}
	if err := Validate(recon, c.Spec.CoordA, c.Spec.CoordB, c.Spec.Value); err != nil {
		return nil, err
	}

	aligned, err := Align(ref, recon, c.Spec)
	if err != nil {
		return nil, err
	}

	return &Result{
		Aligned: aligned,
		Summary: Summarize(aligned),
		Top:     TopErrors(aligned, c.TopN),
		Grids:   ToGrids(aligned),
	}, nil
}
