package pattern

import (
	"errors"
	"math/rand"
	"testing"
)

func TestComparer(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := NewComparer()
		if c.TopN != DefaultTopN {
			t.Errorf("expected top N %d, got %d", DefaultTopN, c.TopN)
		}
		if c.Spec != DefaultFieldSpec() {
			t.Errorf("expected default field spec, got %+v", c.Spec)
		}
	})

	t.Run("options override defaults", func(t *testing.T) {
		c := NewComparer(
			WithCoordFields("az", "el"),
			WithValueField("power"),
			WithTopN(3),
		)
		if c.Spec.CoordA != "az" || c.Spec.CoordB != "el" || c.Spec.Value != "power" {
			t.Errorf("unexpected field spec %+v", c.Spec)
		}
		if c.TopN != 3 {
			t.Errorf("expected top N 3, got %d", c.TopN)
		}
	})

	t.Run("full pipeline", func(t *testing.T) {
		ref := testTable("ref",
			[]float64{0, 0, 10.0},
			[]float64{0, 90, 8.0},
			[]float64{45, 0, 6.0},
		)
		recon := testTable("recon",
			[]float64{0, 0, 12.0},
			[]float64{0, 90, 8.0},
			[]float64{45, 0, 5.0},
		)

		c := NewComparer(WithFieldSpec(testSpec), WithTopN(2))
		result, err := c.Compare(ref, recon)
		if err != nil {
			t.Fatalf("compare failed: %v", err)
		}

		if result.Summary.N != 3 {
			t.Errorf("expected 3 aligned points, got %d", result.Summary.N)
		}
		if len(result.Top) != 2 {
			t.Errorf("expected 2 ranked extremes, got %d", len(result.Top))
		}
		if result.Top[0].SqErr != 4.0 {
			t.Errorf("expected largest squared error 4.0, got %g", result.Top[0].SqErr)
		}

		rows, cols := result.Grids.Recon.Dims()
		if rows != 2 || cols != 2 {
			t.Errorf("expected 2x2 grids, got %dx%d", rows, cols)
		}
	})

	t.Run("validation failure is terminal", func(t *testing.T) {
		ref := testTable("ref", []float64{0, 0, 10.0})
		recon := testTable("recon", []float64{0, 0, 12.0})

		c := NewComparer(WithValueField("no-such-column"), WithCoordFields("Phi[deg]", "Theta[deg]"))
		result, err := c.Compare(ref, recon)

		var missingErr *MissingFieldsError
		if !errors.As(err, &missingErr) {
			t.Fatalf("expected MissingFieldsError, got %v", err)
		}
		if result != nil {
			t.Error("expected no partial result on failure")
		}
	})
}

func BenchmarkCompare(b *testing.B) {
	const phiSteps, thetaSteps = 72, 37 // 5 degree sampling

	refRows := make([][]float64, 0, phiSteps*thetaSteps)
	reconRows := make([][]float64, 0, phiSteps*thetaSteps)
	for p := 0; p < phiSteps; p++ {
		for th := 0; th < thetaSteps; th++ {
			phi, theta := float64(p*5), float64(th*5)
			gain := rand.Float64()*40 - 30
			refRows = append(refRows, []float64{phi, theta, gain})
			reconRows = append(reconRows, []float64{phi, theta, gain + rand.Float64() - 0.5})
		}
	}

	ref := testTable("ref", refRows...)
	recon := testTable("recon", reconRows...)
	c := NewComparer(WithFieldSpec(testSpec))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Compare(ref, recon); err != nil {
			b.Fatal(err)
		}
	}
}
