package forces

import (
	"math"
	"testing"

	"github.com/san-kum/rpmdlab/internal/phase"
)

func TestHarmonicForce(t *testing.T) {
	h := NewHarmonic()
	f := h.Force()

	if f(1.0) != -1.0 {
		t.Errorf("expected f(1) = -1, got %f", f(1.0))
	}
	if f(0.0) != 0.0 {
		t.Errorf("expected f(0) = 0, got %f", f(0.0))
	}
	if f(-2.0) != 2.0 {
		t.Errorf("expected f(-2) = 2, got %f", f(-2.0))
	}
}

func TestHarmonicEnergy(t *testing.T) {
	h := NewHarmonic()
	e := h.Energy(phase.State{P: 1, Q: 1})
	if math.Abs(e-1.0) > 1e-14 {
		t.Errorf("expected energy 1.0, got %f", e)
	}
}

func TestForceIsNegativePotentialGradient(t *testing.T) {
	laws := []struct {
		name   string
		force  phase.Force
		energy func(phase.State) float64
	}{
		{"harmonic", NewHarmonic().Force(), NewHarmonic().Energy},
		{"doublewell", NewDoubleWell().Force(), NewDoubleWell().Energy},
		{"morse", NewMorse().Force(), NewMorse().Energy},
	}

	eps := 1e-6
	for _, law := range laws {
		t.Run(law.name, func(t *testing.T) {
			for _, q := range []float64{-1.5, -0.3, 0.2, 0.8, 2.0} {
				vPlus := law.energy(phase.State{Q: q + eps})
				vMinus := law.energy(phase.State{Q: q - eps})
				grad := (vPlus - vMinus) / (2 * eps)
				if math.Abs(law.force(q)+grad) > 1e-5 {
					t.Errorf("q=%.2f: force %f does not match -dV/dq %f", q, law.force(q), -grad)
				}
			}
		})
	}
}

func TestSetParam(t *testing.T) {
	h := NewHarmonic()
	if err := h.SetParam("k", 4.0); err != nil {
		t.Fatal(err)
	}
	if h.Force()(1.0) != -4.0 {
		t.Errorf("expected f(1) = -4 after SetParam, got %f", h.Force()(1.0))
	}
}
