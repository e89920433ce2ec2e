package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/san-kum/rpmdlab/internal/phase"
)

func sampleTrajectory() *phase.Trajectory {
	return &phase.Trajectory{
		Times:   []float64{0.01, 0.02, 0.03},
		P:       []float64{-0.01, -0.02, -0.03},
		Q:       []float64{0.9999, 0.9996, 0.9991},
		F:       []float64{-0.9999, -0.9996, -0.9991},
		Steps:   3,
		Dt:      0.01,
		Metrics: map[string]float64{"energy_drift": 1e-8},
	}
}

func TestSaveLoadTrajectory(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	meta := RunMetadata{Kind: "trajectory", Force: "harmonic", Integrator: "verlet", Dt: 0.01}
	runID, err := st.SaveTrajectory(meta, sampleTrajectory())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Steps != 3 {
		t.Fatalf("expected 3 steps, got %d", loaded.Steps)
	}
	if math.Abs(loaded.Q[2]-0.9991) > 1e-9 {
		t.Errorf("position mismatch: %f", loaded.Q[2])
	}
	if math.Abs(loaded.Dt-0.01) > 1e-9 {
		t.Errorf("dt mismatch: %f", loaded.Dt)
	}
}

func TestSaveLoadTCF(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	times := []float64{0, 0.5, 1.0}
	c := []complex128{complex(1, 0), complex(0.8, -0.1), complex(0.5, -0.3)}

	meta := RunMetadata{Kind: "kubo", Dt: 0.5, Params: map[string]float64{"beta": 1, "omega": 1}}
	runID, err := st.SaveTCF(meta, times, c)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loadedTimes, loadedC, err := st.LoadTCF(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loadedTimes) != 3 || len(loadedC) != 3 {
		t.Fatalf("expected 3 rows, got %d/%d", len(loadedTimes), len(loadedC))
	}
	if math.Abs(imag(loadedC[2])+0.3) > 1e-9 {
		t.Errorf("imaginary part mismatch: %v", loadedC[2])
	}
}

func TestListAndLoadMetadata(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	meta := RunMetadata{Kind: "trajectory", Force: "doublewell", Integrator: "rk4", Dt: 0.005}
	runID, err := st.SaveTrajectory(meta, sampleTrajectory())
	if err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("expected one run %s, got %v", runID, runs)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Force != "doublewell" {
		t.Errorf("expected doublewell, got %s", loaded.Force)
	}
	if loaded.Metrics["energy_drift"] != 1e-8 {
		t.Errorf("metrics not persisted: %v", loaded.Metrics)
	}
}

func TestListEmptyStore(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportTrajectoryJSON(t *testing.T) {
	meta := &RunMetadata{ID: "trajectory_1", Kind: "trajectory", Force: "harmonic", Dt: 0.01}

	var buf bytes.Buffer
	if err := ExportTrajectoryJSON(&buf, meta, sampleTrajectory()); err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if data.Steps != 3 || len(data.Q) != 3 {
		t.Errorf("unexpected export: %+v", data)
	}
}
