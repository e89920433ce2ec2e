package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/rpmdlab/internal/phase"
)

type ExportData struct {
	ID         string             `json:"id"`
	Kind       string             `json:"kind"`
	Force      string             `json:"force,omitempty"`
	Integrator string             `json:"integrator,omitempty"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	P          []float64          `json:"p,omitempty"`
	Q          []float64          `json:"q,omitempty"`
	F          []float64          `json:"f,omitempty"`
	Re         []float64          `json:"re,omitempty"`
	Im         []float64          `json:"im,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

// ExportTrajectoryJSON writes a stored trajectory run as indented JSON.
func ExportTrajectoryJSON(w io.Writer, meta *RunMetadata, traj *phase.Trajectory) error {
	data := ExportData{
		ID:         meta.ID,
		Kind:       meta.Kind,
		Force:      meta.Force,
		Integrator: meta.Integrator,
		Dt:         meta.Dt,
		Steps:      traj.Steps,
		Times:      traj.Times,
		P:          traj.P,
		Q:          traj.Q,
		F:          traj.F,
		Metrics:    meta.Metrics,
	}
	return encodeIndented(w, data)
}

// ExportTCFJSON writes a stored correlation-function run as indented JSON.
func ExportTCFJSON(w io.Writer, meta *RunMetadata, times []float64, c []complex128) error {
	data := ExportData{
		ID:    meta.ID,
		Kind:  meta.Kind,
		Dt:    meta.Dt,
		Steps: len(times),
		Times: times,
		Re:    make([]float64, len(c)),
		Im:    make([]float64, len(c)),
	}
	for i, v := range c {
		data.Re[i] = real(v)
		data.Im[i] = imag(v)
	}
	return encodeIndented(w, data)
}

func encodeIndented(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Stdout is the default export destination for the CLI.
var Stdout io.Writer = os.Stdout
