// Package viz renders lab results in the terminal.
//
//   - asciigraph line plots for correlation functions, trajectories and
//     spectra
//   - an ASCII phase-portrait scatter
//   - a Bubble Tea live view of the evolving oscillator
package viz
