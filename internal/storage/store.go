// Package storage persists lab runs as per-run directories holding a
// metadata.json plus a CSV data table.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/rpmdlab/internal/phase"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a stored run. Kind is "trajectory", "standard"
// or "kubo".
type RunMetadata struct {
	ID         string             `json:"id"`
	Kind       string             `json:"kind"`
	Force      string             `json:"force,omitempty"`
	Integrator string             `json:"integrator,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed,omitempty"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration,omitempty"`
	Params     map[string]float64 `json:"params,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

func (s *Store) runDir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

func (s *Store) writeMeta(meta RunMetadata) error {
	f, err := os.Create(filepath.Join(s.runDir(meta.ID), "metadata.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// SaveTrajectory writes a trajectory run: metadata.json plus a
// trajectory.csv with columns (time, p, q, f).
func (s *Store) SaveTrajectory(meta RunMetadata, traj *phase.Trajectory) (string, error) {
	meta.ID = fmt.Sprintf("%s_%d", meta.Kind, time.Now().UnixNano())
	meta.Timestamp = time.Now()
	meta.Metrics = traj.Metrics

	if err := os.MkdirAll(s.runDir(meta.ID), 0755); err != nil {
		return "", err
	}
	if err := s.writeMeta(meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(s.runDir(meta.ID), "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "p", "q", "f"}); err != nil {
		return "", err
	}
	for i := range traj.Times {
		row := []string{
			strconv.FormatFloat(traj.Times[i], 'f', 6, 64),
			strconv.FormatFloat(traj.P[i], 'g', 12, 64),
			strconv.FormatFloat(traj.Q[i], 'g', 12, 64),
			strconv.FormatFloat(traj.F[i], 'g', 12, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return meta.ID, nil
}

// SaveTCF writes a correlation-function run: metadata.json plus a
// tcf.csv with columns (time, re, im).
func (s *Store) SaveTCF(meta RunMetadata, t []float64, c []complex128) (string, error) {
	meta.ID = fmt.Sprintf("%s_%d", meta.Kind, time.Now().UnixNano())
	meta.Timestamp = time.Now()

	if err := os.MkdirAll(s.runDir(meta.ID), 0755); err != nil {
		return "", err
	}
	if err := s.writeMeta(meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(s.runDir(meta.ID), "tcf.csv"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "re", "im"}); err != nil {
		return "", err
	}
	for i := range t {
		row := []string{
			strconv.FormatFloat(t[i], 'f', 6, 64),
			strconv.FormatFloat(real(c[i]), 'g', 12, 64),
			strconv.FormatFloat(imag(c[i]), 'g', 12, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return meta.ID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.runDir(runID), "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads back a stored trajectory run.
func (s *Store) LoadTrajectory(runID string) (*phase.Trajectory, error) {
	records, err := s.readCSV(runID, "trajectory.csv")
	if err != nil {
		return nil, err
	}

	traj := &phase.Trajectory{}
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 4 {
			continue
		}
		vals, ok := parseFloats(rec[:4])
		if !ok {
			continue
		}
		traj.Times = append(traj.Times, vals[0])
		traj.P = append(traj.P, vals[1])
		traj.Q = append(traj.Q, vals[2])
		traj.F = append(traj.F, vals[3])
	}
	traj.Steps = len(traj.Times)
	if traj.Steps > 1 {
		traj.Dt = traj.Times[1] - traj.Times[0]
	}
	return traj, nil
}

// LoadTCF reads back a stored correlation-function run.
func (s *Store) LoadTCF(runID string) ([]float64, []complex128, error) {
	records, err := s.readCSV(runID, "tcf.csv")
	if err != nil {
		return nil, nil, err
	}

	times := make([]float64, 0, len(records))
	c := make([]complex128, 0, len(records))
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 3 {
			continue
		}
		vals, ok := parseFloats(rec[:3])
		if !ok {
			continue
		}
		times = append(times, vals[0])
		c = append(c, complex(vals[1], vals[2]))
	}
	return times, c, nil
}

func (s *Store) readCSV(runID, name string) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.runDir(runID), name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func parseFloats(fields []string) ([]float64, bool) {
	vals := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}
