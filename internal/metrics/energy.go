package metrics

import (
	"math"

	"github.com/san-kum/rpmdlab/internal/phase"
)

// Energy tracks the running mean total energy of a trajectory.
type Energy struct {
	name    string
	energy  phase.EnergyFunc
	samples int
	total   float64
}

func NewEnergy(e phase.EnergyFunc) *Energy {
	return &Energy{name: "energy", energy: e}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(s phase.State, t float64) {
	e.total += e.energy(s)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift tracks the maximum relative deviation from the initial
// energy. Bounded drift over long runs is the symplectic signature.
type EnergyDrift struct {
	name     string
	energy   phase.EnergyFunc
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(e phase.EnergyFunc) *EnergyDrift {
	return &EnergyDrift{name: "energy_drift", energy: e}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s phase.State, t float64) {
	energy := e.energy(s)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
