package phase

import "errors"

// Domain errors for trajectory propagation.
var (
	// ErrInvalidState indicates a state with NaN or Inf components.
	ErrInvalidState = errors.New("phase: invalid state (NaN or Inf detected)")

	// ErrConfig indicates a non-positive time step or duration.
	ErrConfig = errors.New("phase: dt and duration must be positive")

	// ErrNoForce indicates a propagator constructed without a force law.
	ErrNoForce = errors.New("phase: nil force law")

	// ErrEmptyTrajectory indicates a derived run requested from a
	// trajectory with no recorded steps.
	ErrEmptyTrajectory = errors.New("phase: trajectory has no steps")
)
