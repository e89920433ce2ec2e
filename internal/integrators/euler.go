package integrators

import "github.com/san-kum/rpmdlab/internal/phase"

// Euler is the explicit first-order stepper. It is neither symplectic
// nor time-reversible; kept for energy-drift comparison against Verlet.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f phase.Force, mass float64, s phase.State, dt float64) phase.State {
	return phase.State{
		P: s.P + f(s.Q)*dt,
		Q: s.Q + s.P/mass*dt,
	}
}
