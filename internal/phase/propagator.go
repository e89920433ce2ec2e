package phase

import (
	"context"
	"fmt"
	"math"
)

// Propagator runs classical trajectories for one force law.
type Propagator struct {
	force      Force
	mass       float64
	integrator Integrator
	energy     EnergyFunc
	metrics    []Metric
	observers  []Observer
}

func NewPropagator(f Force, mass float64, integrator Integrator) *Propagator {
	return &Propagator{
		force:      f,
		mass:       mass,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (p *Propagator) AddMetric(m Metric)     { p.metrics = append(p.metrics, m) }
func (p *Propagator) AddObserver(o Observer) { p.observers = append(p.observers, o) }

// SetEnergy installs an energy function used for drift bookkeeping.
func (p *Propagator) SetEnergy(e EnergyFunc) { p.energy = e }

// Run propagates s0 for cfg.Steps() steps and records (p, q, f) after
// each step. The returned trajectory does not include the initial state.
func (p *Propagator) Run(ctx context.Context, s0 State, cfg Config) (*Trajectory, error) {
	if err := p.validate(cfg); err != nil {
		return nil, err
	}

	steps := cfg.Steps()
	traj := &Trajectory{
		P:       make([]float64, 0, steps),
		Q:       make([]float64, 0, steps),
		F:       make([]float64, 0, steps),
		Times:   make([]float64, 0, steps),
		Initial: s0,
		Dt:      cfg.Dt,
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range p.metrics {
		m.Reset()
	}

	s := s0
	t := 0.0
	initialEnergy := p.computeEnergy(s)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return traj, ctx.Err()
		default:
		}

		for _, m := range p.metrics {
			m.Observe(s, t)
		}
		for _, obs := range p.observers {
			obs.OnStep(s, t)
		}

		s = p.integrator.Step(p.force, p.mass, s, cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState && !s.IsValid() {
			err := StepError{Step: i, Time: t, Message: "invalid state (NaN/Inf)"}
			traj.Errors = append(traj.Errors, err)
			break
		}

		traj.P = append(traj.P, s.P)
		traj.Q = append(traj.Q, s.Q)
		traj.F = append(traj.F, p.force(s.Q))
		traj.Times = append(traj.Times, t)
		traj.Steps++
	}

	finalEnergy := p.computeEnergy(s)
	if initialEnergy != 0 {
		traj.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range p.metrics {
		traj.Metrics[m.Name()] = m.Value()
	}

	return traj, nil
}

// Reverse reruns a completed trajectory from its endpoint with the
// momentum negated, for the same step count and step size. Reading the
// reversed positions backwards recovers the forward positions up to
// integration error.
func (p *Propagator) Reverse(ctx context.Context, fwd *Trajectory) (*Trajectory, error) {
	if fwd.Steps == 0 {
		return nil, ErrEmptyTrajectory
	}
	last := fwd.Last()
	s0 := State{P: -last.P, Q: last.Q}
	// Half a step of headroom so the truncating step count lands exactly
	// on fwd.Steps.
	cfg := Config{
		Dt:       fwd.Dt,
		Duration: fwd.Dt * (float64(fwd.Steps) + 0.5),
	}
	return p.Run(ctx, s0, cfg)
}

func (p *Propagator) validate(cfg Config) error {
	if p.force == nil {
		return ErrNoForce
	}
	if cfg.Dt <= 0 || cfg.Duration <= 0 {
		return fmt.Errorf("%w: dt=%f duration=%f", ErrConfig, cfg.Dt, cfg.Duration)
	}
	return nil
}

func (p *Propagator) computeEnergy(s State) float64 {
	if p.energy == nil {
		return 0
	}
	return p.energy(s)
}
