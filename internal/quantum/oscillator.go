package quantum

import (
	"errors"
	"math"
)

// Domain errors for degenerate parameterizations.
var (
	// ErrFrequency indicates a non-positive oscillator frequency.
	ErrFrequency = errors.New("quantum: frequency must be positive")

	// ErrTruncation indicates a negative eigenstate truncation order.
	ErrTruncation = errors.New("quantum: truncation order must be >= 0")

	// ErrGrid indicates an imaginary-time grid with no points.
	ErrGrid = errors.New("quantum: imaginary-time grid needs at least one point")
)

// Params collects the parameters of a correlation-function evaluation.
type Params struct {
	Omega float64 // oscillator angular frequency
	Beta  float64 // inverse temperature
	Hbar  float64
	Mass  float64
	IMax  int // eigenstate truncation order
	GridL int // imaginary-time grid points (Kubo only)

	// ZeroPoint shifts eigenenergies by the hbar*omega/2 ground-state
	// offset. Correlation functions are unaffected (the shift cancels
	// against the partition function); absolute energies are not.
	ZeroPoint bool
}

func DefaultParams() Params {
	return Params{
		Omega: 1.0,
		Beta:  1.0,
		Hbar:  1.0,
		Mass:  1.0,
		IMax:  20,
		GridL: 100,
	}
}

func (p Params) validate() error {
	if p.Omega <= 0 {
		return ErrFrequency
	}
	if p.IMax < 0 {
		return ErrTruncation
	}
	return nil
}

// EigenEnergy returns the energy of eigenstate i: i*hbar*omega, plus the
// zero-point offset hbar*omega/2 when zeroPoint is set.
func EigenEnergy(i int, omega, hbar float64, zeroPoint bool) float64 {
	e := float64(i) * hbar * omega
	if zeroPoint {
		e += 0.5 * hbar * omega
	}
	return e
}

// MatrixElement returns the position matrix element <i|q|j>. It vanishes
// unless |i-j| = 1; neighboring states give sqrt(hbar/(2 m omega)) *
// sqrt(max(i, j)). The matrix is symmetric.
func MatrixElement(i, j int, omega, hbar, mass float64) float64 {
	d := i - j
	if d != 1 && d != -1 {
		return 0
	}
	return math.Sqrt(hbar/(2*mass*omega)) * math.Sqrt(float64(max(i, j)))
}

// Partition returns the partial partition function over the truncated
// state range, Z = sum_{i<IMax} exp(-beta*E_i).
func Partition(p Params) float64 {
	z := 0.0
	for i := 0; i < p.IMax; i++ {
		z += math.Exp(-p.Beta * EigenEnergy(i, p.Omega, p.Hbar, p.ZeroPoint))
	}
	return z
}
