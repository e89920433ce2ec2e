package experiment

import (
	"context"
	"testing"

	"github.com/san-kum/rpmdlab/internal/phase"
)

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"harmonic", "doublewell", "morse"} {
		if _, err := r.GetForce(name); err != nil {
			t.Errorf("force %s: %v", name, err)
		}
	}
	for _, name := range []string{"verlet", "euler", "rk4"} {
		if _, err := r.GetIntegrator(name); err != nil {
			t.Errorf("integrator %s: %v", name, err)
		}
	}

	if _, err := r.GetForce("nonexistent"); err == nil {
		t.Error("expected error for unknown force")
	}
	if _, err := r.GetIntegrator("nonexistent"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func TestExperimentRun(t *testing.T) {
	r := NewRegistry()
	law, err := r.GetForce("harmonic")
	if err != nil {
		t.Fatal(err)
	}
	integ, err := r.GetIntegrator("verlet")
	if err != nil {
		t.Fatal(err)
	}

	exp := New(Config{
		Force:      "harmonic",
		Integrator: "verlet",
		Initial:    phase.State{P: 1, Q: 0},
		Dt:         0.01,
		Duration:   1.0,
	})
	if err := exp.Setup(law, integ, nil); err != nil {
		t.Fatal(err)
	}

	traj, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if traj.Steps != 100 {
		t.Errorf("expected 100 steps, got %d", traj.Steps)
	}
	if traj.EnergyDrift > 1e-6 {
		t.Errorf("drift too large for 1s harmonic run: %.2e", traj.EnergyDrift)
	}
}

func TestExperimentNotSetup(t *testing.T) {
	exp := New(Config{})
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error before setup")
	}
}
