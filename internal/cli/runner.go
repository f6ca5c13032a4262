package cli

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/utkarsh5026/splitwork/internal/fib"
	"github.com/utkarsh5026/splitwork/pool"
)

// RunResult is the outcome of one backend/threshold run.
type RunResult struct {
	Backend    pool.Backend
	Threshold  int
	Sequential bool
	Elapsed    time.Duration
	Values     []*big.Int
}

// Runner executes the demo: every configured backend at every threshold,
// in that order, over the same dataset.
type Runner struct {
	cfg    Config
	log    *zap.Logger
	out    io.Writer
	errOut io.Writer
}

// NewRunner creates a runner printing results to out and progress to errOut.
func NewRunner(cfg Config, log *zap.Logger, out, errOut io.Writer) *Runner {
	return &Runner{cfg: cfg, log: log, out: out, errOut: errOut}
}

// Run executes all runs and prints their results. It stops at the first
// failing run.
func (r *Runner) Run() error {
	fmt.Fprintln(r.out, "Initializing...")
	items := r.cfg.Dataset()
	fmt.Fprintln(r.out, "Starting demo...")

	bar := r.newProgressBar(len(r.cfg.Backends) * len(r.cfg.Thresholds))
	results := make([]RunResult, 0, len(r.cfg.Backends)*len(r.cfg.Thresholds))

	for _, backend := range r.cfg.Backends {
		for _, threshold := range r.cfg.Thresholds {
			res, err := r.runOne(items, backend, threshold)
			if err != nil {
				r.log.Error("run failed",
					zap.Stringer("backend", backend),
					zap.Int("threshold", threshold),
					zap.Error(err),
				)
				return fmt.Errorf("%s on threshold %d: %w", backend, threshold, err)
			}

			_ = bar.Add(1)
			printRun(r.out, res)
			results = append(results, res)
		}
	}
	_ = bar.Finish()

	if r.cfg.Summary {
		return renderSummary(r.out, len(items), results)
	}
	return nil
}

func (r *Runner) runOne(items []uint, backend pool.Backend, threshold int) (RunResult, error) {
	res := RunResult{Backend: backend, Threshold: threshold}

	start := time.Now()
	values, err := pool.SplitWork(items, fib.Fib, threshold,
		pool.WithBackend(backend),
		pool.WithLogger(r.log),
		pool.WithSequentialHook(func() { res.Sequential = true }),
	)
	if err != nil {
		return res, err
	}

	res.Elapsed = time.Since(start)
	res.Values = values

	r.log.Info("run finished",
		zap.Stringer("backend", backend),
		zap.Int("threshold", threshold),
		zap.Bool("sequential", res.Sequential),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

func (r *Runner) newProgressBar(total int) *progressbar.ProgressBar {
	if !r.cfg.Progress {
		return progressbar.DefaultSilent(int64(total))
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.errOut),
		progressbar.OptionSetDescription("Running demo"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
