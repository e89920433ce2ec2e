package forces

import "github.com/san-kum/rpmdlab/internal/phase"

const (
	DefaultStiffness = 1.0
	DefaultMass      = 1.0
)

// Harmonic is the unit-stiffness restoring force f(q) = -k q.
type Harmonic struct {
	K    float64
	Mass float64
}

func NewHarmonic() *Harmonic {
	return &Harmonic{K: DefaultStiffness, Mass: DefaultMass}
}

func (h *Harmonic) Force() phase.Force {
	k := h.K
	return func(q float64) float64 { return -k * q }
}

func (h *Harmonic) Energy(s phase.State) float64 {
	return 0.5*s.P*s.P/h.Mass + 0.5*h.K*s.Q*s.Q
}

func (h *Harmonic) GetParams() map[string]float64 {
	return map[string]float64{"k": h.K, "mass": h.Mass}
}

func (h *Harmonic) SetParam(name string, v float64) error {
	switch name {
	case "k":
		h.K = v
	case "mass":
		h.Mass = v
	}
	return nil
}
