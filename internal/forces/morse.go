package forces

import (
	"math"

	"github.com/san-kum/rpmdlab/internal/phase"
)

// Morse is the anharmonic bond potential D (1 - exp(-a q))^2, with q the
// displacement from equilibrium.
type Morse struct {
	D, Alpha, Mass float64
}

func NewMorse() *Morse {
	return &Morse{D: 1.0, Alpha: 1.0, Mass: DefaultMass}
}

func (m *Morse) Force() phase.Force {
	d, a := m.D, m.Alpha
	return func(q float64) float64 {
		e := math.Exp(-a * q)
		return -2 * d * a * e * (1 - e)
	}
}

func (m *Morse) Energy(s phase.State) float64 {
	e := 1 - math.Exp(-m.Alpha*s.Q)
	return 0.5*s.P*s.P/m.Mass + m.D*e*e
}

func (m *Morse) GetParams() map[string]float64 {
	return map[string]float64{"D": m.D, "alpha": m.Alpha, "mass": m.Mass}
}

func (m *Morse) SetParam(name string, v float64) error {
	switch name {
	case "D":
		m.D = v
	case "alpha":
		m.Alpha = v
	case "mass":
		m.Mass = v
	}
	return nil
}
