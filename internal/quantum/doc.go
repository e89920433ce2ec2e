// Package quantum evaluates time-correlation functions of the quantum
// harmonic oscillator from truncated eigenstate sums.
//
// Two evaluators are provided:
//
//   - [StandardTCF]: the standard quantum position autocorrelation C(t)
//   - [KuboTCF]: its Kubo transform, the imaginary-time-averaged form
//     that classical and ring-polymer dynamics approximate
//
// Both work in atomic units by default (hbar = 1, m = 1) and broadcast
// elementwise over the supplied time grid. The eigenstate sum is
// truncated at a caller-chosen order; convergence with truncation is a
// deliberate exercise, not an enforced contract.
package quantum
