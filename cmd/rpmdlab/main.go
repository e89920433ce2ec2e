package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/rpmdlab/internal/analysis"
	"github.com/san-kum/rpmdlab/internal/config"
	"github.com/san-kum/rpmdlab/internal/experiment"
	"github.com/san-kum/rpmdlab/internal/metrics"
	"github.com/san-kum/rpmdlab/internal/phase"
	"github.com/san-kum/rpmdlab/internal/quantum"
	"github.com/san-kum/rpmdlab/internal/spectrum"
	"github.com/san-kum/rpmdlab/internal/storage"
	"github.com/san-kum/rpmdlab/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	p0         float64
	q0         float64
	seed       int64
	force      string
	integrator string
	// quantum parameters
	omega     float64
	beta      float64
	iMax      int
	gridL     int
	tMax      float64
	samples   int
	zeroPoint bool
	tcfKind   string
	// ensemble
	ensembleSize int
	workers      int
	thermal      bool
	// spectrum
	rawUnits bool
	// config file / preset
	configFile string
	preset     string
	noPlot     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rpmdlab",
		Short: "quantum correlation functions and classical trajectory lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rpmdlab", "data directory")

	tcfCmd := &cobra.Command{
		Use:   "tcf",
		Short: "compute a harmonic-oscillator time-correlation function",
		RunE:  computeTCF,
	}
	tcfCmd.Flags().StringVar(&tcfKind, "kind", "standard", "standard or kubo")
	tcfCmd.Flags().Float64Var(&omega, "omega", config.DefaultOmega, "oscillator frequency")
	tcfCmd.Flags().Float64Var(&beta, "beta", config.DefaultBeta, "inverse temperature")
	tcfCmd.Flags().IntVar(&iMax, "imax", config.DefaultIMax, "eigenstate truncation order")
	tcfCmd.Flags().IntVar(&gridL, "grid", config.DefaultGridL, "imaginary-time grid points (kubo)")
	tcfCmd.Flags().Float64Var(&tMax, "tmax", 20.0, "time grid extent")
	tcfCmd.Flags().IntVar(&samples, "samples", 256, "time grid samples")
	tcfCmd.Flags().BoolVar(&zeroPoint, "zero-point", false, "include zero-point energy offset")
	tcfCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	tcfCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	tcfCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip terminal plot")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a classical trajectory",
		RunE:  runTrajectory,
	}
	addTrajectoryFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	reverseCmd := &cobra.Command{
		Use:   "reverse [run_id]",
		Short: "rerun a stored trajectory with reversed momentum",
		Args:  cobra.ExactArgs(1),
		RunE:  reverseRun,
	}

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run an ensemble of independent trajectories",
		RunE:  runEnsemble,
	}
	addTrajectoryFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&ensembleSize, "size", config.DefaultEnsemble, "ensemble members")
	ensembleCmd.Flags().IntVar(&workers, "workers", 1, "parallel workers (1 = serial)")
	ensembleCmd.Flags().BoolVar(&thermal, "thermal", true, "Boltzmann-sample initial conditions")
	ensembleCmd.Flags().Float64Var(&beta, "beta", config.DefaultBeta, "inverse temperature for sampling")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the same force law",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	addTrajectoryFlags(compareCmd)

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [file]",
		Short: "plot a vibrational spectrum from the MD driver's analysis output",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSpectrumFile,
	}
	spectrumCmd.Flags().BoolVar(&rawUnits, "raw", false, "keep atomic units instead of cm^-1")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a trajectory evolve",
		RunE:  runLive,
	}
	addTrajectoryFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored trajectory as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(tcfCmd, runCmd, reverseCmd, ensembleCmd, compareCmd,
		spectrumCmd, analyzeCmd, liveCmd, listCmd, plotCmd, exportJSONCmd,
		exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addTrajectoryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&force, "force", "harmonic", "force law")
	cmd.Flags().StringVar(&integrator, "integrator", "verlet", "integrator")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&p0, "p0", 1.0, "initial momentum")
	cmd.Flags().Float64Var(&q0, "q0", 0.0, "initial position")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
}

// applyConfig layers preset and config-file values under any flags the
// user did not set explicitly.
func applyConfig(cmd *cobra.Command) error {
	var cfg *config.Config

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cfg == nil {
		return nil
	}

	set := func(name string, apply func()) {
		if f := cmd.Flags().Lookup(name); f != nil && !f.Changed {
			apply()
		}
	}
	set("force", func() { force = cfg.Force })
	set("integrator", func() { integrator = cfg.Integrator })
	set("dt", func() {
		if cfg.Dt > 0 {
			dt = cfg.Dt
		}
	})
	set("time", func() {
		if cfg.Duration > 0 {
			duration = cfg.Duration
		}
	})
	set("p0", func() { p0 = cfg.InitState.P })
	set("q0", func() { q0 = cfg.InitState.Q })
	set("omega", func() {
		if cfg.Quantum.Omega > 0 {
			omega = cfg.Quantum.Omega
		}
	})
	set("beta", func() {
		if cfg.Quantum.Beta > 0 {
			beta = cfg.Quantum.Beta
		}
	})
	set("imax", func() {
		if cfg.Quantum.IMax > 0 {
			iMax = cfg.Quantum.IMax
		}
	})
	set("grid", func() {
		if cfg.Quantum.GridL > 0 {
			gridL = cfg.Quantum.GridL
		}
	})
	set("tmax", func() {
		if cfg.Quantum.TMax > 0 {
			tMax = cfg.Quantum.TMax
		}
	})
	set("samples", func() {
		if cfg.Quantum.Samples > 0 {
			samples = cfg.Quantum.Samples
		}
	})
	set("zero-point", func() { zeroPoint = cfg.Quantum.ZeroPoint })
	if cfg.Seed != 0 {
		set("seed", func() { seed = cfg.Seed })
	}
	return nil
}

func computeTCF(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	p := quantum.Params{
		Omega: omega, Beta: beta, Hbar: 1, Mass: 1,
		IMax: iMax, GridL: gridL, ZeroPoint: zeroPoint,
	}
	t := quantum.TimeGrid(tMax, samples)

	var (
		c   []complex128
		err error
	)
	switch tcfKind {
	case "standard":
		c, err = quantum.StandardTCF(t, p)
	case "kubo":
		c, err = quantum.KuboTCF(t, p)
	default:
		return fmt.Errorf("unknown tcf kind: %s (standard or kubo)", tcfKind)
	}
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	gridStep := 0.0
	if len(t) > 1 {
		gridStep = t[1] - t[0]
	}
	meta := storage.RunMetadata{
		Kind: tcfKind,
		Dt:   gridStep,
		Params: map[string]float64{
			"omega": omega, "beta": beta,
			"imax": float64(iMax), "grid": float64(gridL),
		},
	}
	runID, err := st.SaveTCF(meta, t, c)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("omega=%.3f beta=%.3f imax=%d", omega, beta, iMax)
	if tcfKind == "kubo" {
		fmt.Printf(" grid=%d", gridL)
	}
	fmt.Printf("\nC(0) = %.6f\n\n", real(c[0]))

	if !noPlot {
		fmt.Println(viz.PlotTCF(c, tcfKind))
	}
	return nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	law, err := registry.GetForce(force)
	if err != nil {
		return err
	}
	integ, err := registry.GetIntegrator(integrator)
	if err != nil {
		return err
	}

	exp := experiment.New(experiment.Config{
		Force:      force,
		Integrator: integrator,
		Initial:    phase.State{P: p0, Q: q0},
		Dt:         dt,
		Duration:   duration,
		Seed:       seed,
	})
	mets := []phase.Metric{metrics.NewEnergy(law.Energy), metrics.NewEnergyDrift(law.Energy)}
	if err := exp.Setup(law, integ, mets); err != nil {
		return err
	}

	fmt.Printf("running %s trajectory (%s, dt=%.4f, %.1fs)...\n", force, integrator, dt, duration)
	start := time.Now()

	traj, err := exp.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	meta := storage.RunMetadata{
		Kind:       "trajectory",
		Force:      force,
		Integrator: integrator,
		Dt:         dt,
		Duration:   duration,
		Seed:       seed,
		Params:     map[string]float64{"p0": p0, "q0": q0},
	}
	runID, err := st.SaveTrajectory(meta, traj)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", traj.Steps)
	fmt.Printf("energy drift: %.2e\n", traj.EnergyDrift)
	fmt.Println("\nmetrics:")
	for name, val := range traj.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func reverseRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	if meta.Kind != "trajectory" {
		return fmt.Errorf("run %s is a %s run, not a trajectory", runID, meta.Kind)
	}

	fwd, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if fwd.Steps == 0 {
		return fmt.Errorf("run %s has no steps", runID)
	}
	fwd.Initial = phase.State{P: meta.Params["p0"], Q: meta.Params["q0"]}

	registry := experiment.NewRegistry()
	law, err := registry.GetForce(meta.Force)
	if err != nil {
		return err
	}
	integ, err := registry.GetIntegrator(meta.Integrator)
	if err != nil {
		return err
	}

	prop := phase.NewPropagator(law.Force, law.Mass, integ)
	prop.SetEnergy(law.Energy)

	rev, err := prop.Reverse(context.Background(), fwd)
	if err != nil {
		return err
	}

	dev := analysis.ReversalDeviation(fwd, rev)
	fmt.Printf("forward run: %s (%d steps, dt=%.4f)\n", runID, fwd.Steps, fwd.Dt)
	fmt.Printf("max position deviation after reversal: %.3e\n\n", dev)

	fmt.Println(viz.PlotSeries(fwd.Q, "forward q(t)"))
	fmt.Println()
	fmt.Println(viz.PlotSeries(rev.Q, "reversed q(t)"))
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	law, err := registry.GetForce(force)
	if err != nil {
		return err
	}
	factory, err := registry.IntegratorFactory(integrator)
	if err != nil {
		return err
	}

	ens := phase.NewEnsemble(law.Force, law.Mass, factory, workers)
	ens.SetEnergy(law.Energy)

	var sampler phase.Sampler
	if thermal {
		sampler = phase.BoltzmannSampler(beta, law.Mass, 1.0)
	} else {
		sampler = phase.FixedSampler(phase.State{P: p0, Q: q0})
	}

	cfg := phase.Config{Dt: dt, Duration: duration, Seed: seed, ValidateState: true}

	fmt.Printf("running %d %s trajectories (%s, workers=%d)...\n", ensembleSize, force, integrator, workers)
	start := time.Now()

	trajs, err := ens.Run(context.Background(), ensembleSize, sampler, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MEMBER\tP0\tQ0\tFINAL_Q\tENERGY_DRIFT")
	var meanE, meanDrift float64
	for i, tr := range trajs {
		fmt.Fprintf(w, "%d\t%+.4f\t%+.4f\t%+.4f\t%.2e\n",
			i, tr.Initial.P, tr.Initial.Q, tr.Last().Q, tr.EnergyDrift)
		meanE += law.Energy(tr.Initial)
		meanDrift += tr.EnergyDrift
	}
	if err := w.Flush(); err != nil {
		return err
	}

	n := float64(len(trajs))
	fmt.Printf("\nmean initial energy: %.4f\n", meanE/n)
	fmt.Printf("mean energy drift:   %.2e\n", meanDrift/n)
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	law, err := registry.GetForce(force)
	if err != nil {
		return err
	}

	fmt.Printf("comparing integrators on %s (dt=%.4f, %.1fs)\n\n", force, dt, duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tFINAL_Q\tENERGY_DRIFT\tTIME")

	for _, name := range args {
		integ, err := registry.GetIntegrator(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
			continue
		}

		prop := phase.NewPropagator(law.Force, law.Mass, integ)
		prop.SetEnergy(law.Energy)

		start := time.Now()
		traj, err := prop.Run(context.Background(), phase.State{P: p0, Q: q0},
			phase.Config{Dt: dt, Duration: duration})
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%+.6f\t%.2e\t%v\n", name, traj.Last().Q, traj.EnergyDrift, elapsed)
	}
	return w.Flush()
}

func plotSpectrumFile(cmd *cobra.Command, args []string) error {
	tbl, err := spectrum.Load(args[0])
	if err != nil {
		return err
	}

	unit := "a.u."
	if !rawUnits {
		tbl = tbl.ToWavenumbers()
		unit = "cm^-1"
	}

	fmt.Printf("spectrum: %s (%d points, frequencies in %s)\n\n", args[0], tbl.Len(), unit)
	fmt.Println(viz.PlotSpectrum(tbl.Freq, tbl.Intens, "spectral density"))

	if tbl.Err != nil {
		var maxErr float64
		for _, e := range tbl.Err {
			if e > maxErr {
				maxErr = e
			}
		}
		fmt.Printf("max error estimate: %.3e\n", maxErr)
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	if meta.Kind != "trajectory" {
		return fmt.Errorf("run %s is a %s run, not a trajectory", runID, meta.Kind)
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if traj.Steps == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s (%s on %s)\n\n", runID, meta.Integrator, meta.Force)

	ps := analysis.PowerSpectrum(traj.Q)
	plotData := ps[:len(ps)/4]
	if len(plotData) < 2 {
		return fmt.Errorf("trajectory too short to analyze")
	}
	fmt.Println(viz.PlotSeries(plotData, "power spectrum of q(t)"))

	// Skip the DC bin when locating the peak.
	maxIdx := 1
	for k := 2; k < len(plotData); k++ {
		if plotData[k] > plotData[maxIdx] {
			maxIdx = k
		}
	}
	n := 1
	for n < traj.Steps {
		n *= 2
	}
	w := 2 * 3.141592653589793 * float64(maxIdx) / (float64(n) * traj.Dt)
	fmt.Printf("\ndominant angular frequency: %.4f\n", w)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	law, err := registry.GetForce(force)
	if err != nil {
		return err
	}
	integ, err := registry.GetIntegrator(integrator)
	if err != nil {
		return err
	}

	m := viz.NewModel(law.Force, law.Energy, law.Mass, integ,
		phase.State{P: p0, Q: q0}, dt, force)

	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tFORCE\tINTEG\tDT\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.4f\t%s\n",
			run.ID, run.Kind, run.Force, run.Integrator, run.Dt,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	switch meta.Kind {
	case "trajectory":
		traj, err := st.LoadTrajectory(runID)
		if err != nil {
			return err
		}
		if traj.Steps == 0 {
			return fmt.Errorf("no data to plot")
		}
		fmt.Printf("run: %s (%s on %s)\n\n", runID, meta.Integrator, meta.Force)
		fmt.Println(viz.PlotSeries(traj.Q, "position q(t)"))
		fmt.Println()
		fmt.Println(viz.PlotSeries(traj.P, "momentum p(t)"))
		fmt.Println()
		fmt.Println(viz.PhasePortrait(traj.Q, traj.P))
		return nil

	case "standard", "kubo":
		_, c, err := st.LoadTCF(runID)
		if err != nil {
			return err
		}
		if len(c) == 0 {
			return fmt.Errorf("no data to plot")
		}
		fmt.Printf("run: %s\n\n", runID)
		fmt.Println(viz.PlotTCF(c, meta.Kind))
		return nil

	default:
		return fmt.Errorf("unknown run kind: %s", meta.Kind)
	}
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	switch meta.Kind {
	case "trajectory":
		traj, err := st.LoadTrajectory(runID)
		if err != nil {
			return err
		}
		return storage.ExportTrajectoryJSON(storage.Stdout, meta, traj)
	case "standard", "kubo":
		times, c, err := st.LoadTCF(runID)
		if err != nil {
			return err
		}
		return storage.ExportTCFJSON(storage.Stdout, meta, times, c)
	default:
		return fmt.Errorf("unknown run kind: %s", meta.Kind)
	}
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if traj.Steps == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "p", "q", "f"}); err != nil {
		return err
	}
	for i := range traj.Times {
		row := []string{
			strconv.FormatFloat(traj.Times[i], 'f', 6, 64),
			strconv.FormatFloat(traj.P[i], 'g', 12, 64),
			strconv.FormatFloat(traj.Q[i], 'g', 12, 64),
			strconv.FormatFloat(traj.F[i], 'g', 12, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
