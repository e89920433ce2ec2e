// Package forces provides one-dimensional force laws for the trajectory
// propagator.
//
// Each law is a small parameter struct exposing Force() for the stepper
// and Energy() for conservation checks:
//
//   - [Harmonic]: f(q) = -k q, the lab's reference oscillator
//   - [DoubleWell]: bistable quartic well
//   - [Morse]: anharmonic bond-stretch potential
package forces
