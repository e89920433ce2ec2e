package phase

import (
	"context"
	"math"
	"testing"
)

func TestEnsembleOrderedResults(t *testing.T) {
	e := NewEnsemble(harmonic, 1.0, func() Integrator { return verletStepper{} }, 1)

	cfg := Config{Dt: 0.1, Duration: 1.0, Seed: 7}
	trajs, err := e.Run(context.Background(), 5, BoltzmannSampler(1, 1, 1), cfg)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}

	if len(trajs) != 5 {
		t.Fatalf("expected 5 trajectories, got %d", len(trajs))
	}
	for i, tr := range trajs {
		if tr == nil || tr.Steps != 10 {
			t.Errorf("member %d: unexpected record %+v", i, tr)
		}
	}
}

func TestEnsembleReproducible(t *testing.T) {
	cfg := Config{Dt: 0.1, Duration: 1.0, Seed: 42}
	sampler := BoltzmannSampler(1, 1, 1)

	run := func(workers int) []*Trajectory {
		e := NewEnsemble(harmonic, 1.0, func() Integrator { return verletStepper{} }, workers)
		trajs, err := e.Run(context.Background(), 8, sampler, cfg)
		if err != nil {
			t.Fatalf("ensemble failed: %v", err)
		}
		return trajs
	}

	serial := run(1)
	parallel := run(4)

	for i := range serial {
		if serial[i].Initial != parallel[i].Initial {
			t.Errorf("member %d: initial states differ between serial and parallel", i)
		}
		for k := range serial[i].Q {
			if serial[i].Q[k] != parallel[i].Q[k] {
				t.Fatalf("member %d step %d: positions differ", i, k)
			}
		}
	}
}

func TestEnsembleMembersIndependent(t *testing.T) {
	e := NewEnsemble(harmonic, 1.0, func() Integrator { return verletStepper{} }, 1)

	cfg := Config{Dt: 0.1, Duration: 1.0, Seed: 1}
	trajs, err := e.Run(context.Background(), 3, BoltzmannSampler(1, 1, 1), cfg)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}

	// Distinct seeds should give distinct initial conditions.
	same := 0
	for i := 1; i < len(trajs); i++ {
		if trajs[i].Initial == trajs[0].Initial {
			same++
		}
	}
	if same == len(trajs)-1 {
		t.Error("all members share the same initial state")
	}
}

func TestFixedSampler(t *testing.T) {
	s := State{P: 0.5, Q: -1.0}
	e := NewEnsemble(harmonic, 1.0, func() Integrator { return verletStepper{} }, 1)

	trajs, err := e.Run(context.Background(), 2, FixedSampler(s), Config{Dt: 0.1, Duration: 0.5, Seed: 3})
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	for i, tr := range trajs {
		if tr.Initial != s {
			t.Errorf("member %d: expected fixed initial state", i)
		}
	}
}

func TestBoltzmannSamplerWidth(t *testing.T) {
	e := NewEnsemble(harmonic, 1.0, func() Integrator { return verletStepper{} }, 1)

	beta := 2.0
	cfg := Config{Dt: 0.1, Duration: 0.1, Seed: 11}
	trajs, err := e.Run(context.Background(), 2000, BoltzmannSampler(beta, 1, 1), cfg)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}

	var sumP2 float64
	for _, tr := range trajs {
		sumP2 += tr.Initial.P * tr.Initial.P
	}
	meanP2 := sumP2 / float64(len(trajs))

	// <p^2> = m/beta
	if math.Abs(meanP2-1.0/beta) > 0.05 {
		t.Errorf("thermal momentum width off: <p^2> = %.4f, expected %.4f", meanP2, 1.0/beta)
	}
}
