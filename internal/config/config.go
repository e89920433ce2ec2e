package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 100.0
	DefaultOmega    = 1.0
	DefaultBeta     = 1.0
	DefaultIMax     = 20
	DefaultGridL    = 100
	DefaultEnsemble = 16
)

type Config struct {
	Force      string         `yaml:"force"`
	Integrator string         `yaml:"integrator"`
	Dt         float64        `yaml:"dt"`
	Duration   float64        `yaml:"duration"`
	Seed       int64          `yaml:"seed"`
	InitState  InitState      `yaml:"init_state"`
	Quantum    QuantumConfig  `yaml:"quantum"`
	Ensemble   EnsembleConfig `yaml:"ensemble"`
}

type InitState struct {
	P float64 `yaml:"p"`
	Q float64 `yaml:"q"`
}

type QuantumConfig struct {
	Omega     float64 `yaml:"omega"`
	Beta      float64 `yaml:"beta"`
	IMax      int     `yaml:"imax"`
	GridL     int     `yaml:"grid"`
	ZeroPoint bool    `yaml:"zero_point"`
	TMax      float64 `yaml:"tmax"`
	Samples   int     `yaml:"samples"`
}

type EnsembleConfig struct {
	Size    int  `yaml:"size"`
	Workers int  `yaml:"workers"`
	Thermal bool `yaml:"thermal"`
}

func DefaultConfig() *Config {
	return &Config{
		Force:      "harmonic",
		Integrator: "verlet",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		InitState:  InitState{P: 1.0, Q: 0.0},
		Quantum: QuantumConfig{
			Omega:   DefaultOmega,
			Beta:    DefaultBeta,
			IMax:    DefaultIMax,
			GridL:   DefaultGridL,
			TMax:    20.0,
			Samples: 256,
		},
		Ensemble: EnsembleConfig{
			Size:    DefaultEnsemble,
			Workers: 1,
			Thermal: true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
