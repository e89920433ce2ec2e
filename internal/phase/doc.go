// Package phase provides core primitives for one-dimensional classical
// phase-space dynamics.
//
// The package defines the fundamental types for propagating a single
// particle under a pluggable force law:
//
//   - [State]: a (momentum, position) pair
//   - [Force]: force law f(q)
//   - [Integrator]: numerical stepper interface
//   - [Propagator]: orchestrates trajectory runs
//   - [Trajectory]: immutable per-step record of a completed run
//
// # Example
//
//	f := forces.NewHarmonic().Force()
//	prop := phase.NewPropagator(f, 1.0, integrators.NewVelocityVerlet())
//	traj, _ := prop.Run(ctx, phase.State{P: 1, Q: 0}, cfg)
//
// # Thread Safety
//
// Propagator instances are NOT thread-safe. For independent trajectory
// ensembles, use [Ensemble], which gives each member its own propagator.
package phase
