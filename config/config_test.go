package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
)

const sampleYaml = `
protocol:
  mu: 0.65
  nu: 0.08
  signalPercentage: 0.75
  decoyPercentage: 0.125
  vacuumPercentage: 0.125

channel:
  lengthKm: 20
  lossDbPerKm: 0.28
  receiverLossDb: 3.5

detector:
  efficiency: 0.10
  errorRate: 0.01
  darkCountRate: 0.0001

attack:
  type: "pns"
  splitRatio: 0.5

simulation:
  numPulses: 10000
  numRuns: 10
  maxPhotonNumber: 5
  seed: 42

resultsDir: "simulation_results"
plotsDir: "static/plots"
`

func writeSampleConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(sampleYaml), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadParameters(t *testing.T) {
	cfg, err := Load(writeSampleConfig(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	params := cfg.Parameters()
	if err = params.Validate(); err != nil {
		t.Fatalf("loaded parameters invalid: %v", err)
	}
	if params.Mu != 0.65 || params.Nu != 0.08 {
		t.Fatalf("mean photon numbers = %f, %f", params.Mu, params.Nu)
	}
	if params.Attack != data.AttackPNS {
		t.Fatalf("attack = %s, want pns", params.Attack)
	}
	if params.NumPulses != 10000 || params.NumRuns != 10 || params.Seed != 42 {
		t.Fatalf("simulation block misparsed: %+v", params)
	}
	if cfg.ResultsDir != "simulation_results" || cfg.PlotsDir != "static/plots" {
		t.Fatalf("output dirs misparsed: %s, %s", cfg.ResultsDir, cfg.PlotsDir)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("BB84_ATTACK", "bs")
	t.Setenv("BB84_SEED", "7")

	cfg, err := Load(writeSampleConfig(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Attack.Type != "bs" {
		t.Fatalf("attack = %s, want env override bs", cfg.Attack.Type)
	}
	if cfg.Simulation.Seed != 7 {
		t.Fatalf("seed = %d, want env override 7", cfg.Simulation.Seed)
	}
}

func TestLoadFallsBackToShippedDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load fallback: %v", err)
	}
	if err = cfg.Parameters().Validate(); err != nil {
		t.Fatalf("shipped defaults invalid: %v", err)
	}
}
