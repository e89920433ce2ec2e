package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/rpmdlab/internal/phase"
)

// Config names the ingredients of one trajectory experiment.
type Config struct {
	Force      string
	Integrator string
	Initial    phase.State
	Dt         float64
	Duration   float64
	Seed       int64
}

type Experiment struct {
	cfg        Config
	propagator *phase.Propagator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(law ForceLaw, integ phase.Integrator, metrics []phase.Metric) error {
	e.propagator = phase.NewPropagator(law.Force, law.Mass, integ)
	e.propagator.SetEnergy(law.Energy)
	for _, m := range metrics {
		e.propagator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*phase.Trajectory, error) {
	if e.propagator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	cfg := phase.Config{
		Dt:            e.cfg.Dt,
		Duration:      e.cfg.Duration,
		Seed:          e.cfg.Seed,
		ValidateState: true,
	}
	return e.propagator.Run(ctx, e.cfg.Initial, cfg)
}

// Propagator exposes the underlying propagator for observers and
// derived runs.
func (e *Experiment) Propagator() *phase.Propagator {
	return e.propagator
}
