package simulation

import (
	"context"
	"time"

	pl "github.com/HannahMarsh/PrettyLogger"
	"golang.org/x/exp/slog"

	"github.com/qkd-lab/bb84-decoy-evaluation/internal/analysis"
	"github.com/qkd-lab/bb84-decoy-evaluation/internal/data"
	"github.com/qkd-lab/bb84-decoy-evaluation/internal/protocol"
	"github.com/qkd-lab/bb84-decoy-evaluation/pkg/utils/executor"
)

// Run executes params.NumRuns independent protocol runs on a worker pool and
// collects them into a record. Each run owns a private RNG stream seeded from
// the master seed, so runs are uncorrelated but the whole record is
// reproducible. Cancellation is coarse: the context is only checked between
// run submissions, never mid-run, because a partially executed run is not a
// statistically valid sample.
func Run(ctx context.Context, params data.Parameters) (*data.Record, error) {
	if err := params.Validate(); err != nil {
		return nil, pl.WrapError(err, "invalid simulation parameters")
	}

	analyzer := analysis.NewAnalyzer(params)
	pool := executor.NewWorkerPool()
	defer pool.Stop()

	futures := make([]*executor.Future[data.RunResult], 0, params.NumRuns)
	for i := 0; i < params.NumRuns; i++ {
		if err := ctx.Err(); err != nil {
			return nil, pl.WrapError(err, "simulation canceled after %d submitted runs", i)
		}
		seed := params.Seed + uint64(i)
		futures = append(futures, executor.SubmitWithError(pool, data.RunResult{}, func() (data.RunResult, error) {
			proto, err := protocol.New(params, seed)
			if err != nil {
				return data.RunResult{}, err
			}
			return analyzer.Analyze(proto.Run()), nil
		}))
	}

	runs := make([]data.RunResult, 0, len(futures))
	for i, fut := range futures {
		result, err := fut.Get()
		if err != nil {
			return nil, pl.WrapError(err, "run %d failed", i)
		}
		runs = append(runs, result)
	}
	slog.Info("simulation complete", "runs", len(runs), "pulsesPerRun", params.NumPulses, "attack", string(params.Attack))

	return &data.Record{
		Params:    params,
		Timestamp: time.Now().Format("20060102_150405"),
		Runs:      runs,
		Summary:   analysis.Summarize(runs),
	}, nil
}
