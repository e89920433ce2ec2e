// Package analysis provides spectral and trajectory diagnostics.
//
//   - [FFT] / [PowerSpectrum]: radix-2 transform of sampled signals
//   - [Spectrum]: frequency grid and intensities of a correlation function
//   - [DetailedBalanceFactor]: temperature factor linking Kubo and
//     standard spectra
//   - [ReversalDeviation]: how far a time-reversed run strays from
//     retracing its forward trajectory
package analysis
