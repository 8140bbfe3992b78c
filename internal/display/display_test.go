package display

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
)

func sampleRecord() *data.Record {
	return &data.Record{
		Params: data.Parameters{
			NumPulses:          100,
			NumRuns:            2,
			MaxPhotonNumber:    3,
			Mu:                 0.65,
			Nu:                 0.08,
			SignalPercentage:   0.75,
			DecoyPercentage:    0.125,
			VacuumPercentage:   0.125,
			ChannelLengthKm:    20,
			ChannelLossDbPerKm: 0.28,
			ReceiverLossDb:     3.5,
			DetectorEfficiency: 0.10,
			DetectorErrorRate:  0.01,
			DarkCountRate:      1e-5,
			Attack:             data.AttackNone,
			Seed:               7,
		},
		Timestamp: "20260831_120000",
		Summary: data.Summary{
			Expected: data.YieldStats{Mean: []float64{0.012, 0.024, 0.036}},
			Signal:   data.YieldStats{Mean: []float64{0.011, 0.023, 0.034}},
			Decoy:    data.YieldStats{Mean: []float64{0.013, 0.026, 0.038}},
		},
	}
}

func TestPlotYieldsSavesFigure(t *testing.T) {
	dir := t.TempDir()
	path, err := PlotYields(sampleRecord(), nil, dir)
	if err != nil {
		t.Fatalf("PlotYields: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("figure saved to %s, want directory %s", path, dir)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("figure file is empty")
	}
}

func TestPlotYieldsRejectsOutOfRangePhotonNumber(t *testing.T) {
	if _, err := PlotYields(sampleRecord(), []int{4}, t.TempDir()); err == nil {
		t.Fatalf("expected error for photon number beyond the analyzed range")
	}
}

func TestSelectPhotonNumbersDefaultsAndSorts(t *testing.T) {
	ns, err := selectPhotonNumbers(nil, 3)
	if err != nil {
		t.Fatalf("selectPhotonNumbers: %v", err)
	}
	if len(ns) != 3 || ns[0] != 1 || ns[2] != 3 {
		t.Fatalf("default selection = %v", ns)
	}

	ns, err = selectPhotonNumbers([]int{3, 1}, 3)
	if err != nil {
		t.Fatalf("selectPhotonNumbers: %v", err)
	}
	if ns[0] != 1 || ns[1] != 3 {
		t.Fatalf("selection not sorted: %v", ns)
	}
}

func TestYieldPointsDegenerateSeries(t *testing.T) {
	points := yieldPoints(data.YieldStats{Mean: []float64{0.5}}, []int{1, 2})
	if points[0].Y != 0.5 {
		t.Fatalf("covered photon number plotted at %f", points[0].Y)
	}
	if points[1].Y != 0 {
		t.Fatalf("uncovered photon number plotted at %f, want 0", points[1].Y)
	}
}
