package data

// ClassCounts accumulates per-class tallies over one protocol run.
type ClassCounts struct {
	Sent        int `json:"sent"`
	Clicked     int `json:"clicked"`
	DarkCounts  int `json:"darkCounts"`
	Intercepted int `json:"intercepted"`

	// Sifted clicks are those where sender and receiver bases agreed;
	// SiftedErrors counts the flipped bits among them (the QBER numerator).
	SiftedClicks int `json:"siftedClicks"`
	SiftedErrors int `json:"siftedErrors"`
}

// Gain is an observed click rate. Valid is false when no pulses of the class
// were sent, so a degenerate run stays visible instead of decaying to NaN.
type Gain struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// NewGain computes clicked/sent, tagging the zero-sent case as undefined.
func NewGain(clicked, sent int) Gain {
	if sent == 0 {
		return Gain{}
	}
	return Gain{Value: float64(clicked) / float64(sent), Valid: true}
}

// YieldSeries names one of the per-photon-number yield curves.
type YieldSeries string

const (
	SeriesExpected YieldSeries = "expected"
	SeriesSignal   YieldSeries = "signal"
	SeriesDecoy    YieldSeries = "decoy"
)

// Series lists the yield series in plotting order.
var Series = []YieldSeries{SeriesExpected, SeriesSignal, SeriesDecoy}

// RunResult holds everything computed from a single protocol run. Yield
// slices are indexed by photon number minus one (index 0 is Y_1). It is
// immutable once the analyzer has produced it.
type RunResult struct {
	Counts map[StateClass]ClassCounts `json:"counts"`
	Gains  map[StateClass]Gain        `json:"gains"`

	SignalEfficiency float64 `json:"signalEfficiency"`
	DecoyEfficiency  float64 `json:"decoyEfficiency"`

	ExpectedYields []float64 `json:"expectedYields"`
	SignalYields   []float64 `json:"signalYields"`
	DecoyYields    []float64 `json:"decoyYields"`
}

// TotalSent sums the sent counts across all state classes.
func (r RunResult) TotalSent() int {
	total := 0
	for _, c := range r.Counts {
		total += c.Sent
	}
	return total
}

// Yield returns Y_n for the given series, reporting ok=false when n is out of
// the analyzed range.
func (r RunResult) Yield(series YieldSeries, n int) (float64, bool) {
	return yieldAt(r.yields(series), n)
}

func (r RunResult) yields(series YieldSeries) []float64 {
	switch series {
	case SeriesExpected:
		return r.ExpectedYields
	case SeriesSignal:
		return r.SignalYields
	case SeriesDecoy:
		return r.DecoyYields
	default:
		return nil
	}
}

// YieldStats carries the across-run mean and variance for one yield series,
// indexed by photon number minus one.
type YieldStats struct {
	Mean     []float64 `json:"mean"`
	Variance []float64 `json:"variance"`
}

// Summary aggregates yield statistics and mean gains across all runs of a
// record.
type Summary struct {
	Expected YieldStats          `json:"expected"`
	Signal   YieldStats          `json:"signal"`
	Decoy    YieldStats          `json:"decoy"`
	Gains    map[StateClass]Gain `json:"gains"`
}

func (s Summary) stats(series YieldSeries) YieldStats {
	switch series {
	case SeriesExpected:
		return s.Expected
	case SeriesSignal:
		return s.Signal
	case SeriesDecoy:
		return s.Decoy
	default:
		return YieldStats{}
	}
}

// MeanYield returns the across-run mean of Y_n for the given series.
func (s Summary) MeanYield(series YieldSeries, n int) (float64, bool) {
	return yieldAt(s.stats(series).Mean, n)
}

func yieldAt(ys []float64, n int) (float64, bool) {
	if n < 1 || n > len(ys) {
		return 0, false
	}
	return ys[n-1], true
}

// Record is the persisted unit: the parameter snapshot, every per-run result,
// and the across-run summary.
type Record struct {
	Params    Parameters  `json:"params"`
	Timestamp string      `json:"timestamp"`
	Runs      []RunResult `json:"runs"`
	Summary   Summary     `json:"summary"`
}
