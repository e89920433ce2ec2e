package integrators

import "github.com/san-kum/rpmdlab/internal/phase"

// RK4 is the classical fourth-order Runge-Kutta stepper applied to the
// Hamiltonian pair dq/dt = p/m, dp/dt = f(q).
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f phase.Force, mass float64, s phase.State, dt float64) phase.State {
	k1q := s.P / mass
	k1p := f(s.Q)

	k2q := (s.P + 0.5*dt*k1p) / mass
	k2p := f(s.Q + 0.5*dt*k1q)

	k3q := (s.P + 0.5*dt*k2p) / mass
	k3p := f(s.Q + 0.5*dt*k2q)

	k4q := (s.P + dt*k3p) / mass
	k4p := f(s.Q + dt*k3q)

	dt6 := dt / 6.0
	return phase.State{
		P: s.P + dt6*(k1p+2*k2p+2*k3p+k4p),
		Q: s.Q + dt6*(k1q+2*k2q+2*k3q+k4q),
	}
}
