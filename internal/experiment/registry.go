package experiment

import (
	"fmt"

	"github.com/san-kum/rpmdlab/internal/forces"
	"github.com/san-kum/rpmdlab/internal/integrators"
	"github.com/san-kum/rpmdlab/internal/phase"
)

// ForceLaw bundles a force with its energy function for drift tracking.
type ForceLaw struct {
	Force  phase.Force
	Energy phase.EnergyFunc
	Mass   float64
}

type Registry struct {
	forces      map[string]func() ForceLaw
	integrators map[string]func() phase.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		forces:      make(map[string]func() ForceLaw),
		integrators: make(map[string]func() phase.Integrator),
	}

	r.forces["harmonic"] = func() ForceLaw {
		h := forces.NewHarmonic()
		return ForceLaw{Force: h.Force(), Energy: h.Energy, Mass: h.Mass}
	}
	r.forces["doublewell"] = func() ForceLaw {
		d := forces.NewDoubleWell()
		return ForceLaw{Force: d.Force(), Energy: d.Energy, Mass: d.Mass}
	}
	r.forces["morse"] = func() ForceLaw {
		m := forces.NewMorse()
		return ForceLaw{Force: m.Force(), Energy: m.Energy, Mass: m.Mass}
	}

	r.integrators["verlet"] = func() phase.Integrator { return integrators.NewVelocityVerlet() }
	r.integrators["euler"] = func() phase.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() phase.Integrator { return integrators.NewRK4() }

	return r
}

func (r *Registry) GetForce(name string) (ForceLaw, error) {
	fn, ok := r.forces[name]
	if !ok {
		return ForceLaw{}, fmt.Errorf("unknown force law: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetIntegrator(name string) (phase.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

// IntegratorFactory returns a fresh-instance factory for ensemble use.
func (r *Registry) IntegratorFactory(name string) (func() phase.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn, nil
}
