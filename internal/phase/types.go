package phase

import (
	"fmt"
	"math"
)

// State is a point in the phase space of a one-dimensional particle.
type State struct {
	P float64 // momentum
	Q float64 // position
}

func (s State) IsValid() bool {
	return !math.IsNaN(s.P) && !math.IsInf(s.P, 0) &&
		!math.IsNaN(s.Q) && !math.IsInf(s.Q, 0)
}

// Force is a one-dimensional force law q -> f(q).
type Force func(q float64) float64

// EnergyFunc returns the total energy of a phase-space state for the
// potential a Force derives from.
type EnergyFunc func(s State) float64

// Integrator advances a state by one time step under a force law.
type Integrator interface {
	Step(f Force, mass float64, s State, dt float64) State
}

// Metric accumulates a scalar observable over a trajectory.
type Metric interface {
	Name() string
	Observe(s State, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every accepted step.
type Observer interface {
	OnStep(s State, t float64)
}

type Config struct {
	Dt            float64
	Duration      float64
	Seed          int64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Duration:      10.0,
		ValidateState: true,
	}
}

// Steps is the number of integration steps a run performs, truncated.
func (c Config) Steps() int {
	return int(c.Duration / c.Dt)
}

// Trajectory records a completed run. The sequences hold one entry per
// step, sampled after the step; the initial state is not included.
type Trajectory struct {
	P     []float64
	Q     []float64
	F     []float64
	Times []float64

	Initial     State
	Dt          float64
	Steps       int
	EnergyDrift float64
	Metrics     map[string]float64
	Errors      []error
}

// Last returns the phase-space state after the final step.
func (tr *Trajectory) Last() State {
	n := len(tr.P)
	if n == 0 {
		return tr.Initial
	}
	return State{P: tr.P[n-1], Q: tr.Q[n-1]}
}

type StepError struct {
	Step    int
	Time    float64
	Message string
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
