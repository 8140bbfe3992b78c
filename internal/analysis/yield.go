package analysis

import (
	"math"

	"golang.org/x/exp/slog"

	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
)

// Analyzer turns the raw click counts of one protocol run into gains,
// per-class efficiencies and per-photon-number yields. It is a pure value
// over the run's parameter snapshot.
type Analyzer struct {
	params data.Parameters
}

func NewAnalyzer(params data.Parameters) Analyzer {
	return Analyzer{params: params}
}

// ExpectedYields computes the theoretical Y_n for n = 1..MaxPhotonNumber:
// the dark-count floor plus the probability that at least one of n photons
// survives the channel and fires the detector.
func (a Analyzer) ExpectedYields() []float64 {
	eta := a.params.DetectorEfficiency * a.params.Transmittance()
	return a.photonYields(eta)
}

// photonYields evaluates Y_n = Y_0 + 1 - (1-eff)^n for n = 1..MaxPhotonNumber.
func (a Analyzer) photonYields(eff float64) []float64 {
	yields := make([]float64, a.params.MaxPhotonNumber)
	for n := 1; n <= a.params.MaxPhotonNumber; n++ {
		yields[n-1] = a.params.DarkCountRate + 1 - math.Pow(1-eff, float64(n))
	}
	return yields
}

// ClassEfficiency back-solves the effective single-photon efficiency of a
// state class from its observed gain and mean photon number. It is undefined
// for an undefined gain or a zero-mean (vacuum) class.
func (a Analyzer) ClassEfficiency(gain data.Gain, mean float64) (float64, bool) {
	if !gain.Valid || mean <= 0 {
		return 0, false
	}
	return -math.Log(math.Abs(1+a.params.DarkCountRate-gain.Value)) / mean, true
}

// Analyze computes the full per-run result from the accumulated counts.
// Yield estimates outside [0,1] are statistical-noise artifacts of small
// runs; they are logged and reported as-is, never clamped, since they signal
// estimator instability downstream.
func (a Analyzer) Analyze(counts map[data.StateClass]data.ClassCounts) data.RunResult {
	result := data.RunResult{
		Counts:         counts,
		Gains:          make(map[data.StateClass]data.Gain, len(counts)),
		ExpectedYields: a.ExpectedYields(),
	}
	for class, c := range counts {
		result.Gains[class] = data.NewGain(c.Clicked, c.Sent)
	}

	if eff, ok := a.ClassEfficiency(result.Gains[data.Signal], a.params.Mu); ok {
		result.SignalEfficiency = eff
		result.SignalYields = a.photonYields(eff)
		warnUnstable(data.SeriesSignal, result.SignalYields)
	}
	if eff, ok := a.ClassEfficiency(result.Gains[data.Decoy], a.params.Nu); ok {
		result.DecoyEfficiency = eff
		result.DecoyYields = a.photonYields(eff)
		warnUnstable(data.SeriesDecoy, result.DecoyYields)
	}
	return result
}

func warnUnstable(series data.YieldSeries, yields []float64) {
	for i, y := range yields {
		if y < 0 || y > 1 {
			slog.Warn("yield estimate outside [0,1], keeping as-is",
				"series", string(series), "n", i+1, "value", y)
		}
	}
}
