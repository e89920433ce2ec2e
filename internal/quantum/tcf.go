package quantum

import (
	"math"
	"math/cmplx"
)

// StandardTCF evaluates the standard quantum position autocorrelation
// C(t) = <q(0) q(t)> on the given time grid. The eigenstate sum runs over
// i < IMax with neighbors j = i±1; each term carries the unnormalized
// Boltzmann weight of state i and the whole sum is divided by the partial
// partition function. IMax = 0 degenerates to the zero function.
func StandardTCF(t []float64, p Params) ([]complex128, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	c := make([]complex128, len(t))
	if p.IMax == 0 {
		return c, nil
	}

	for i := 0; i < p.IMax; i++ {
		ei := EigenEnergy(i, p.Omega, p.Hbar, p.ZeroPoint)
		weight := math.Exp(-p.Beta * ei)

		for _, j := range []int{i - 1, i + 1} {
			if j < 0 {
				continue
			}
			qij := MatrixElement(i, j, p.Omega, p.Hbar, p.Mass)
			ej := EigenEnergy(j, p.Omega, p.Hbar, p.ZeroPoint)
			gap := (ei - ej) / p.Hbar
			amp := weight * qij * qij

			for k, tk := range t {
				c[k] += complex(amp, 0) * cmplx.Exp(complex(0, -gap*tk))
			}
		}
	}

	z := complex(Partition(p), 0)
	for k := range c {
		c[k] /= z
	}
	return c, nil
}

// KuboTCF evaluates the Kubo-transformed correlation function. Each
// (i, j) term of the standard sum is multiplied by the imaginary-time
// average (1/beta) * int_0^beta exp(-lambda*(E_j - E_i)) dlambda,
// approximated with a GridL-point rectangle rule.
func KuboTCF(t []float64, p Params) ([]complex128, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if p.GridL < 1 {
		return nil, ErrGrid
	}

	c := make([]complex128, len(t))
	if p.IMax == 0 {
		return c, nil
	}

	dLambda := p.Beta / float64(p.GridL)

	for i := 0; i < p.IMax; i++ {
		ei := EigenEnergy(i, p.Omega, p.Hbar, p.ZeroPoint)
		weight := math.Exp(-p.Beta * ei)

		for _, j := range []int{i - 1, i + 1} {
			if j < 0 {
				continue
			}
			qij := MatrixElement(i, j, p.Omega, p.Hbar, p.Mass)
			ej := EigenEnergy(j, p.Omega, p.Hbar, p.ZeroPoint)

			lterm := 0.0
			for l := 0; l < p.GridL; l++ {
				lambda := float64(l) * dLambda
				lterm += math.Exp(-lambda * (ej - ei))
			}
			lterm *= dLambda / p.Beta

			gap := (ei - ej) / p.Hbar
			amp := lterm * weight * qij * qij

			for k, tk := range t {
				c[k] += complex(amp, 0) * cmplx.Exp(complex(0, -gap*tk))
			}
		}
	}

	z := complex(Partition(p), 0)
	for k := range c {
		c[k] /= z
	}
	return c, nil
}

// ConvergedIMax grows the truncation order until the Boltzmann weight of
// the next state relative to the running partition function falls below
// tol. Fixed IMax remains the reproducible mode; this helper is opt-in.
func ConvergedIMax(p Params, tol float64) int {
	z := math.Exp(-p.Beta * EigenEnergy(0, p.Omega, p.Hbar, p.ZeroPoint))
	i := 1
	for {
		w := math.Exp(-p.Beta * EigenEnergy(i, p.Omega, p.Hbar, p.ZeroPoint))
		if w/z < tol {
			return i
		}
		z += w
		i++
	}
}

// TimeGrid returns n uniformly spaced times over [0, tMax].
func TimeGrid(tMax float64, n int) []float64 {
	if n < 2 {
		return []float64{0}
	}
	t := make([]float64, n)
	dt := tMax / float64(n-1)
	for i := range t {
		t[i] = float64(i) * dt
	}
	return t
}
