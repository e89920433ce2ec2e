package phase

import (
	"context"
	"math"
	"math/rand"
	"sync"
)

// Sampler draws an initial phase-space state for one ensemble member.
type Sampler func(r *rand.Rand) State

// FixedSampler always returns the same initial state.
func FixedSampler(s State) Sampler {
	return func(*rand.Rand) State { return s }
}

// BoltzmannSampler draws (p, q) from the classical thermal distribution
// of a harmonic well with stiffness k at inverse temperature beta.
func BoltzmannSampler(beta, mass, k float64) Sampler {
	return func(r *rand.Rand) State {
		return State{
			P: r.NormFloat64() * math.Sqrt(mass/beta),
			Q: r.NormFloat64() / math.Sqrt(beta*k),
		}
	}
}

// Ensemble runs n independent trajectories. Each member owns its own
// propagator, state and output record; members never share mutable state.
type Ensemble struct {
	force      Force
	mass       float64
	integrator func() Integrator
	energy     EnergyFunc
	workers    int
}

// NewEnsemble builds an ensemble over one force law. The integrator is a
// factory so that stateful steppers are never shared across members.
// workers <= 1 runs members serially.
func NewEnsemble(f Force, mass float64, integrator func() Integrator, workers int) *Ensemble {
	return &Ensemble{force: f, mass: mass, integrator: integrator, workers: workers}
}

func (e *Ensemble) SetEnergy(fn EnergyFunc) { e.energy = fn }

// Run produces one trajectory record per member, in member order.
// Member i is seeded with cfg.Seed+i so runs are reproducible.
func (e *Ensemble) Run(ctx context.Context, n int, sample Sampler, cfg Config) ([]*Trajectory, error) {
	results := make([]*Trajectory, n)
	errs := make([]error, n)

	runOne := func(idx int) {
		r := rand.New(rand.NewSource(cfg.Seed + int64(idx)))
		prop := NewPropagator(e.force, e.mass, e.integrator())
		if e.energy != nil {
			prop.SetEnergy(e.energy)
		}
		results[idx], errs[idx] = prop.Run(ctx, sample(r), cfg)
	}

	if e.workers <= 1 {
		for i := 0; i < n; i++ {
			runOne(i)
		}
	} else {
		sem := make(chan struct{}, e.workers)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(idx int) {
				defer wg.Done()
				defer func() { <-sem }()
				runOne(idx)
			}(i)
		}
		wg.Wait()
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
