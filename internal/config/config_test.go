package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 0 || cfg.CampaignPath != "" || cfg.Plain {
		t.Errorf("expected zero interactive settings, got %+v", cfg)
	}
	if cfg.SimRuns != 200 || cfg.SimWorkers != 4 {
		t.Errorf("expected simulation defaults 200/4, got %d/%d", cfg.SimRuns, cfg.SimWorkers)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PLUNDER_SEED", "42")
	t.Setenv("PLUNDER_CAMPAIGN", "seas.yaml")
	t.Setenv("PLUNDER_PLAIN", "true")
	t.Setenv("PLUNDER_NAME", "Anne Bonny")
	t.Setenv("PLUNDER_SIM_FLEE_BELOW", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 42 || cfg.CampaignPath != "seas.yaml" || !cfg.Plain || cfg.Name != "Anne Bonny" || cfg.SimFleeBelow != 25 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("PLUNDER_SEED", "not-a-number")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejectsNegativeSimulation(t *testing.T) {
	t.Setenv("PLUNDER_SIM_RUNS", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}
