package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pl "github.com/HannahMarsh/PrettyLogger"
	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/exp/slog"

	"github.com/qkd-lab/bb84-decoy-evaluation/config"
	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
	"github.com/qkd-lab/bb84-decoy-evaluation/internal/simulation"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	cfgPath := flag.String("config", "config/config.yml", "Path to the YAML configuration")
	pulses := flag.Int("pulses", 0, "Override number of pulses per run (0 = config value)")
	runs := flag.Int("runs", 0, "Override number of runs (0 = config value)")
	attack := flag.String("attack", "", "Override attack type: none, pns or bs (empty = config value)")
	mu := flag.Float64("mu", -1, "Override signal mean photon number (negative = config value)")
	nu := flag.Float64("nu", -1, "Override decoy mean photon number (negative = config value)")
	seed := flag.Uint64("seed", 0, "Override master RNG seed (0 = config value)")
	flag.Usage = flag.PrintDefaults
	flag.Parse()

	pl.SetUpLogrusAndSlog(*logLevel)

	if _, err := maxprocs.Set(); err != nil {
		slog.Error("failed to set max procs", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", err)
		os.Exit(1)
	}

	params := cfg.Parameters()
	if *pulses > 0 {
		params.NumPulses = *pulses
	}
	if *runs > 0 {
		params.NumRuns = *runs
	}
	if *attack != "" {
		params.Attack = data.AttackType(*attack)
	}
	if *mu >= 0 {
		params.Mu = *mu
	}
	if *nu >= 0 {
		params.Nu = *nu
	}
	if *seed != 0 {
		params.Seed = *seed
	}
	if err = params.Validate(); err != nil {
		slog.Error("invalid parameters", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		fmt.Printf("Received signal: %s\n", sig)
		cancel()
	}()

	rec, err := simulation.Run(ctx, params)
	if err != nil {
		slog.Error("simulation failed", err)
		os.Exit(1)
	}

	path, err := data.SaveRecord(cfg.ResultsDir, rec)
	if err != nil {
		slog.Error("failed to save record", err)
		os.Exit(1)
	}
	slog.Info("record saved", "path", path)

	printSummary(rec)
}

func printSummary(rec *data.Record) {
	for _, class := range data.Classes {
		gain := rec.Summary.Gains[class]
		if !gain.Valid {
			fmt.Printf("%s state gain: undefined (no pulses sent)\n", class)
			continue
		}
		fmt.Printf("%s state gain: %f\n", class, gain.Value)
	}
	for n := 1; n <= rec.Params.MaxPhotonNumber; n++ {
		expected, _ := rec.Summary.MeanYield(data.SeriesExpected, n)
		sig, _ := rec.Summary.MeanYield(data.SeriesSignal, n)
		decoy, _ := rec.Summary.MeanYield(data.SeriesDecoy, n)
		fmt.Printf("Y_%d: expected=%f signal=%f decoy=%f\n", n, expected, sig, decoy)
	}
}
