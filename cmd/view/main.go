package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pl "github.com/HannahMarsh/PrettyLogger"
	"golang.org/x/exp/slog"

	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
	"github.com/qkd-lab/bb84-decoy-evaluation/internal/display"
	"github.com/qkd-lab/bb84-decoy-evaluation/pkg/utils"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	dir := flag.String("dir", "simulation_results", "Directory holding saved simulation records")
	file := flag.String("file", "", "Record to display (empty = newest in -dir)")
	list := flag.Bool("list", false, "List saved records and exit")
	doPlot := flag.Bool("plot", true, "Render the yield comparison figure")
	plotsDir := flag.String("plots-dir", "static/plots", "Directory for rendered figures")
	nsFlag := flag.String("n", "", "Comma-separated photon numbers to plot (empty = all)")
	flag.Usage = flag.PrintDefaults
	flag.Parse()

	pl.SetUpLogrusAndSlog(*logLevel)

	paths, err := data.ListRecords(*dir)
	if err != nil {
		slog.Error("failed to list records", err)
		os.Exit(1)
	}
	utils.SortOrdered(paths)

	if *list {
		listRecords(paths)
		return
	}

	path := *file
	if path == "" {
		if len(paths) == 0 {
			pl.LogNewError("no saved records in %s", *dir)
			os.Exit(1)
		}
		path = paths[len(paths)-1]
	}

	rec, err := data.LoadRecord(path)
	if err != nil {
		slog.Error("failed to load record", err)
		os.Exit(1)
	}
	printRecord(path, rec)

	if !*doPlot {
		return
	}
	ns, err := parsePhotonNumbers(*nsFlag)
	if err != nil {
		slog.Error("invalid -n flag", err)
		os.Exit(1)
	}
	figure, err := display.PlotYields(rec, ns, *plotsDir)
	if err != nil {
		slog.Error("failed to plot yields", err)
		os.Exit(1)
	}
	slog.Info("figure saved", "path", figure)
}

func listRecords(paths []string) {
	for i, path := range paths {
		rec, err := data.LoadRecord(path)
		if err != nil {
			fmt.Printf("%d. %s (unreadable: %v)\n", i+1, filepath.Base(path), err)
			continue
		}
		fmt.Printf("%d. %s\n", i+1, filepath.Base(path))
		fmt.Printf("   Date: %s\n", rec.Timestamp)
		fmt.Printf("   Runs: %d x %d pulses, attack=%s\n", len(rec.Runs), rec.Params.NumPulses, rec.Params.Attack)
		fmt.Printf("   Parameters: mu=%g, nu=%g\n\n", rec.Params.Mu, rec.Params.Nu)
	}
}

func printRecord(path string, rec *data.Record) {
	fmt.Printf("--- %s ---\n", filepath.Base(path))
	fmt.Printf("Parameters: mu=%g nu=%g percentages=%g/%g/%g attack=%s\n",
		rec.Params.Mu, rec.Params.Nu,
		rec.Params.SignalPercentage, rec.Params.DecoyPercentage, rec.Params.VacuumPercentage,
		rec.Params.Attack)
	fmt.Printf("Channel: %g km x %g dB/km + %g dB receiver (transmittance %g)\n",
		rec.Params.ChannelLengthKm, rec.Params.ChannelLossDbPerKm, rec.Params.ReceiverLossDb,
		rec.Params.Transmittance())
	for _, class := range data.Classes {
		gain := rec.Summary.Gains[class]
		if !gain.Valid {
			fmt.Printf("%s state gain: undefined\n", class)
			continue
		}
		fmt.Printf("%s state gain: %f\n", class, gain.Value)
	}
	for n := 1; n <= rec.Params.MaxPhotonNumber; n++ {
		fmt.Printf("--- Photon number %d ---\n", n)
		for _, series := range data.Series {
			if mean, ok := rec.Summary.MeanYield(series, n); ok {
				fmt.Printf("%s Y_%d: mean=%.6f\n", series, n, mean)
			}
		}
	}
}

func parsePhotonNumbers(flagValue string) ([]int, error) {
	if flagValue == "" {
		return nil, nil
	}
	var ns []int
	for _, part := range strings.Split(flagValue, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, pl.WrapError(err, "bad photon number %q", part)
		}
		ns = append(ns, n)
	}
	return ns, nil
}
