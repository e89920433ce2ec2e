package analysis

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/rpmdlab/internal/phase"
)

// Spectrum transforms a correlation function sampled at spacing dt into
// an angular-frequency grid with intensities, zero-padded to a power of
// two. Only the positive-frequency half is returned.
func Spectrum(tcf []complex128, dt float64) (freqs, intens []float64) {
	n := nextPow2(len(tcf))
	padded := make([]complex128, n)
	copy(padded, tcf)

	fft := FFT(padded)
	half := n / 2

	freqs = make([]float64, half)
	intens = make([]float64, half)
	dw := 2 * math.Pi / (float64(n) * dt)
	for k := 0; k < half; k++ {
		freqs[k] = float64(k) * dw
		intens[k] = cmplx.Abs(fft[k]) * dt
	}
	return freqs, intens
}

// DetailedBalanceFactor is the temperature factor relating the spectra
// of the Kubo-transformed and standard correlation functions:
// C_std(w) = factor(w) * C_kubo(w). It tends to 1 as w -> 0.
func DetailedBalanceFactor(omega, beta, hbar float64) float64 {
	x := beta * hbar * omega
	if x == 0 {
		return 1
	}
	return x / (1 - math.Exp(-x))
}

// StandardFromKubo rescales a Kubo spectrum bin-wise by the detailed
// balance factor.
func StandardFromKubo(freqs, kubo []float64, beta, hbar float64) []float64 {
	std := make([]float64, len(kubo))
	for k := range kubo {
		std[k] = DetailedBalanceFactor(freqs[k], beta, hbar) * kubo[k]
	}
	return std
}

// ReversalDeviation measures how far a momentum-reversed rerun strays
// from retracing the forward positions: the reversed sequence read
// backwards is compared entry-wise against the forward sequence, and the
// final reversed sample against the forward initial position.
func ReversalDeviation(fwd, rev *phase.Trajectory) float64 {
	n := fwd.Steps
	if n == 0 || rev.Steps != n {
		return math.NaN()
	}

	maxDev := 0.0
	for k := 0; k < n-1; k++ {
		maxDev = math.Max(maxDev, math.Abs(fwd.Q[k]-rev.Q[n-2-k]))
	}
	maxDev = math.Max(maxDev, math.Abs(rev.Q[n-1]-fwd.Initial.Q))
	return maxDev
}
