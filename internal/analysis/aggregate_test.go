package analysis

import (
	"math"
	"testing"

	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
)

func TestSummarizeMeansAndVariances(t *testing.T) {
	runs := []data.RunResult{
		{
			Gains:          map[data.StateClass]data.Gain{data.Signal: {Value: 0.2, Valid: true}},
			ExpectedYields: []float64{0.1, 0.2},
			SignalYields:   []float64{0.3, 0.4},
		},
		{
			Gains:          map[data.StateClass]data.Gain{data.Signal: {Value: 0.4, Valid: true}},
			ExpectedYields: []float64{0.1, 0.2},
			SignalYields:   []float64{0.5, 0.8},
		},
	}
	summary := Summarize(runs)

	if got := summary.Expected.Mean; got[0] != 0.1 || got[1] != 0.2 {
		t.Fatalf("expected means = %v", got)
	}
	if got := summary.Expected.Variance; got[0] != 0 || got[1] != 0 {
		t.Fatalf("constant series should have zero variance, got %v", got)
	}
	if got := summary.Signal.Mean; math.Abs(got[0]-0.4) > 1e-12 || math.Abs(got[1]-0.6) > 1e-12 {
		t.Fatalf("signal means = %v, want [0.4 0.6]", got)
	}
	// Sample variance of {0.3, 0.5} is 0.02.
	if got := summary.Signal.Variance[0]; math.Abs(got-0.02) > 1e-12 {
		t.Fatalf("signal variance = %f, want 0.02", got)
	}
	if g := summary.Gains[data.Signal]; !g.Valid || math.Abs(g.Value-0.3) > 1e-12 {
		t.Fatalf("mean signal gain = %+v, want 0.3", g)
	}
}

func TestSummarizeSkipsDegenerateRunsPerSeries(t *testing.T) {
	runs := []data.RunResult{
		{
			Gains:       map[data.StateClass]data.Gain{data.Decoy: {}},
			DecoyYields: nil,
		},
		{
			Gains:       map[data.StateClass]data.Gain{data.Decoy: {Value: 0.5, Valid: true}},
			DecoyYields: []float64{0.6},
		},
	}
	summary := Summarize(runs)

	if got := summary.Decoy.Mean; len(got) != 1 || got[0] != 0.6 {
		t.Fatalf("decoy mean = %v, want [0.6] from the one defined run", got)
	}
	if g := summary.Gains[data.Decoy]; !g.Valid || g.Value != 0.5 {
		t.Fatalf("mean decoy gain = %+v, want 0.5 from the one valid run", g)
	}
}

func TestSummarizeAllDegenerateStaysUndefined(t *testing.T) {
	runs := []data.RunResult{
		{Gains: map[data.StateClass]data.Gain{data.Vacuum: {}}},
		{Gains: map[data.StateClass]data.Gain{data.Vacuum: {}}},
	}
	summary := Summarize(runs)
	if g := summary.Gains[data.Vacuum]; g.Valid {
		t.Fatalf("vacuum gain should stay undefined, got %+v", g)
	}
}
