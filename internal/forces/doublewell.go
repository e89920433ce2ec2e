package forces

import (
	"math"

	"github.com/san-kum/rpmdlab/internal/phase"
)

// DoubleWell is a particle in the bistable potential A (q^2 - B)^2.
type DoubleWell struct {
	A, B, Mass float64
}

func NewDoubleWell() *DoubleWell {
	return &DoubleWell{A: 1.0, B: 1.0, Mass: DefaultMass}
}

func (d *DoubleWell) Force() phase.Force {
	a, b := d.A, d.B
	return func(q float64) float64 { return -4 * a * q * (q*q - b) }
}

func (d *DoubleWell) Energy(s phase.State) float64 {
	return 0.5*s.P*s.P/d.Mass + d.A*math.Pow(s.Q*s.Q-d.B, 2)
}

func (d *DoubleWell) GetParams() map[string]float64 {
	return map[string]float64{"A": d.A, "B": d.B, "mass": d.Mass}
}

func (d *DoubleWell) SetParam(name string, v float64) error {
	switch name {
	case "A":
		d.A = v
	case "B":
		d.B = v
	case "mass":
		d.Mass = v
	}
	return nil
}
