package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration. Command-line flags take
// precedence over these environment variables.
type Config struct {
	// Seed fixes every random draw of a session; zero picks a fresh seed.
	Seed         uint64 `env:"PLUNDER_SEED"`
	CampaignPath string `env:"PLUNDER_CAMPAIGN"`
	MapPath      string `env:"PLUNDER_MAP"`
	Plain        bool   `env:"PLUNDER_PLAIN"`
	Name         string `env:"PLUNDER_NAME"`

	SimRuns      int `env:"PLUNDER_SIM_RUNS" envDefault:"200"`
	SimWorkers   int `env:"PLUNDER_SIM_WORKERS" envDefault:"4"`
	SimFleeBelow int `env:"PLUNDER_SIM_FLEE_BELOW" envDefault:"0"`
}

// Load loads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SimRuns < 0 || cfg.SimWorkers < 0 || cfg.SimFleeBelow < 0 {
		return Config{}, errors.New("simulation settings must not be negative")
	}
	return cfg, nil
}
