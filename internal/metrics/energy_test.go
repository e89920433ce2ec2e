package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/rpmdlab/internal/phase"
)

func harmonicEnergy(s phase.State) float64 {
	return 0.5*s.P*s.P + 0.5*s.Q*s.Q
}

func TestEnergyMean(t *testing.T) {
	m := NewEnergy(harmonicEnergy)

	m.Observe(phase.State{P: 1, Q: 0}, 0)
	m.Observe(phase.State{P: 0, Q: 1}, 0.1)

	if math.Abs(m.Value()-0.5) > 1e-14 {
		t.Errorf("expected mean energy 0.5, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestEnergyDrift(t *testing.T) {
	m := NewEnergyDrift(harmonicEnergy)

	m.Observe(phase.State{P: 1, Q: 0}, 0)
	if m.Value() != 0 {
		t.Errorf("expected zero drift at first sample, got %f", m.Value())
	}

	m.Observe(phase.State{P: 1.1, Q: 0}, 0.1)
	expected := math.Abs(0.5*1.1*1.1-0.5) / 0.5
	if math.Abs(m.Value()-expected) > 1e-12 {
		t.Errorf("expected drift %f, got %f", expected, m.Value())
	}

	// Drift is the max, not the last value.
	m.Observe(phase.State{P: 1, Q: 0}, 0.2)
	if math.Abs(m.Value()-expected) > 1e-12 {
		t.Errorf("drift should retain its maximum, got %f", m.Value())
	}
}
