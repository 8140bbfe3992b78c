package analysis

import (
	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
	"github.com/qkd-lab/bb84-decoy-evaluation/pkg/utils"
)

// Summarize folds a sequence of run results into across-run statistics. It is
// independent of how the runs were produced, sequentially or in parallel.
func Summarize(runs []data.RunResult) data.Summary {
	return data.Summary{
		Expected: yieldStats(runs, func(r data.RunResult) []float64 { return r.ExpectedYields }),
		Signal:   yieldStats(runs, func(r data.RunResult) []float64 { return r.SignalYields }),
		Decoy:    yieldStats(runs, func(r data.RunResult) []float64 { return r.DecoyYields }),
		Gains:    meanGains(runs),
	}
}

// yieldStats computes the per-photon-number mean and variance of one yield
// series across runs. Runs where the series is undefined (degenerate classes)
// are skipped per index.
func yieldStats(runs []data.RunResult, series func(data.RunResult) []float64) data.YieldStats {
	width := 0
	if len(runs) > 0 {
		width = utils.MaxOver(utils.Map(runs, func(r data.RunResult) int { return len(series(r)) }))
	}
	stats := data.YieldStats{
		Mean:     make([]float64, width),
		Variance: make([]float64, width),
	}
	for i := 0; i < width; i++ {
		covering := utils.Filter(runs, func(r data.RunResult) bool { return i < len(series(r)) })
		column := utils.Map(covering, func(r data.RunResult) float64 { return series(r)[i] })
		if len(column) == 0 {
			continue
		}
		stats.Mean[i] = utils.Mean(column)
		stats.Variance[i] = utils.Variance(column)
	}
	return stats
}

// meanGains averages each class's gain over the runs where it was defined.
// A class with no defined gain in any run stays tagged as undefined.
func meanGains(runs []data.RunResult) map[data.StateClass]data.Gain {
	gains := make(map[data.StateClass]data.Gain, len(data.Classes))
	for _, class := range data.Classes {
		defined := utils.Filter(runs, func(r data.RunResult) bool {
			g, ok := r.Gains[class]
			return ok && g.Valid
		})
		if len(defined) == 0 {
			gains[class] = data.Gain{}
			continue
		}
		values := utils.Map(defined, func(r data.RunResult) float64 { return r.Gains[class].Value })
		gains[class] = data.Gain{Value: utils.Mean(values), Valid: true}
	}
	return gains
}
