package config

import (
	"path/filepath"
	"runtime"

	pl "github.com/HannahMarsh/PrettyLogger"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
)

type Protocol struct {
	Mu               float64 `yaml:"mu"`
	Nu               float64 `yaml:"nu"`
	SignalPercentage float64 `yaml:"signalPercentage"`
	DecoyPercentage  float64 `yaml:"decoyPercentage"`
	VacuumPercentage float64 `yaml:"vacuumPercentage"`
}

type Channel struct {
	LengthKm    float64 `yaml:"lengthKm"`
	LossDbPerKm float64 `yaml:"lossDbPerKm"`
	ReceiverDb  float64 `yaml:"receiverLossDb"`
}

type Detector struct {
	Efficiency    float64 `yaml:"efficiency"`
	ErrorRate     float64 `yaml:"errorRate"`
	DarkCountRate float64 `yaml:"darkCountRate"`
}

type Attack struct {
	Type       string  `yaml:"type" env:"BB84_ATTACK"`
	SplitRatio float64 `yaml:"splitRatio"`
}

type Simulation struct {
	NumPulses       int    `yaml:"numPulses"`
	NumRuns         int    `yaml:"numRuns"`
	MaxPhotonNumber int    `yaml:"maxPhotonNumber"`
	Seed            uint64 `yaml:"seed" env:"BB84_SEED"`
}

type Config struct {
	Protocol   Protocol   `yaml:"protocol"`
	Channel    Channel    `yaml:"channel"`
	Detector   Detector   `yaml:"detector"`
	Attack     Attack     `yaml:"attack"`
	Simulation Simulation `yaml:"simulation"`
	ResultsDir string     `yaml:"resultsDir" env:"BB84_RESULTS_DIR"`
	PlotsDir   string     `yaml:"plotsDir" env:"BB84_PLOTS_DIR"`
}

// Load reads the YAML config at path, falling back to the config.yml shipped
// next to this file, then applies environment overrides. Validation happens
// on the Parameters snapshot, after any CLI overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		if _, currentFile, _, ok := runtime.Caller(0); !ok {
			return nil, pl.NewError("failed to get current file path")
		} else if err = cleanenv.ReadConfig(filepath.Join(filepath.Dir(currentFile), "config.yml"), cfg); err != nil {
			return nil, pl.WrapError(err, "config.Load(): failed to read %s", path)
		}
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, pl.WrapError(err, "config.Load(): failed to read environment")
	}
	return cfg, nil
}

// Parameters converts the loaded config into the immutable snapshot the
// simulation core consumes.
func (c *Config) Parameters() data.Parameters {
	return data.Parameters{
		NumPulses:          c.Simulation.NumPulses,
		NumRuns:            c.Simulation.NumRuns,
		MaxPhotonNumber:    c.Simulation.MaxPhotonNumber,
		Mu:                 c.Protocol.Mu,
		Nu:                 c.Protocol.Nu,
		SignalPercentage:   c.Protocol.SignalPercentage,
		DecoyPercentage:    c.Protocol.DecoyPercentage,
		VacuumPercentage:   c.Protocol.VacuumPercentage,
		ChannelLengthKm:    c.Channel.LengthKm,
		ChannelLossDbPerKm: c.Channel.LossDbPerKm,
		ReceiverLossDb:     c.Channel.ReceiverDb,
		DetectorEfficiency: c.Detector.Efficiency,
		DetectorErrorRate:  c.Detector.ErrorRate,
		DarkCountRate:      c.Detector.DarkCountRate,
		Attack:             data.AttackType(c.Attack.Type),
		SplitRatio:         c.Attack.SplitRatio,
		Seed:               c.Simulation.Seed,
	}
}
