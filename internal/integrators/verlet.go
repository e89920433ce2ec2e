package integrators

import "github.com/san-kum/rpmdlab/internal/phase"

// VelocityVerlet is the symplectic half-kick / drift / half-kick stepper.
// It is time-reversible: negating the momentum and stepping again walks
// the trajectory back through the same positions.
type VelocityVerlet struct{}

func NewVelocityVerlet() *VelocityVerlet {
	return &VelocityVerlet{}
}

func (v *VelocityVerlet) Step(f phase.Force, mass float64, s phase.State, dt float64) phase.State {
	halfDt := 0.5 * dt

	p := s.P + f(s.Q)*halfDt
	q := s.Q + p*dt/mass
	p += f(q) * halfDt

	return phase.State{P: p, Q: q}
}
