package config

import "sort"

var Presets = map[string]*Config{
	// Long harmonic run for the time-reversal exercise.
	"reversal": {
		Force: "harmonic", Integrator: "verlet", Dt: 0.01, Duration: 100.0,
		InitState: InitState{P: 1.0, Q: 0.0},
	},
	// Coarse step to make Euler's energy drift visible.
	"drift": {
		Force: "harmonic", Integrator: "euler", Dt: 0.05, Duration: 50.0,
		InitState: InitState{P: 1.0, Q: 0.0},
	},
	// Hopping between the two wells.
	"doublewell": {
		Force: "doublewell", Integrator: "verlet", Dt: 0.005, Duration: 60.0,
		InitState: InitState{P: 1.8, Q: 1.0},
	},
	// High-temperature regime where Kubo and standard TCFs coincide.
	"hightemp": {
		Force: "harmonic", Integrator: "verlet", Dt: 0.01, Duration: 100.0,
		InitState: InitState{P: 1.0, Q: 0.0},
		Quantum: QuantumConfig{
			Omega: 1.0, Beta: 0.05, IMax: 60, GridL: 400, TMax: 20.0, Samples: 256,
		},
	},
	// Deep quantum regime where the two TCFs visibly differ.
	"quantum": {
		Force: "harmonic", Integrator: "verlet", Dt: 0.01, Duration: 100.0,
		InitState: InitState{P: 1.0, Q: 0.0},
		Quantum: QuantumConfig{
			Omega: 1.0, Beta: 8.0, IMax: 20, GridL: 200, TMax: 20.0, Samples: 256,
		},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
