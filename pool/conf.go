package pool

import (
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultWorkers is the worker count used when the machine's cores cannot
// be enumerated.
const DefaultWorkers = 4

// Backend selects how the parallel branch of SplitWork is executed.
type Backend int

const (
	// BackendManual runs a fresh pool of pinned workers fed round-robin.
	BackendManual Backend = iota
	// BackendLibrary hands the index range to pargo's divide-and-conquer
	// scheduler.
	BackendLibrary
)

// String returns the backend's short name.
func (b Backend) String() string {
	switch b {
	case BackendManual:
		return "manual"
	case BackendLibrary:
		return "library"
	default:
		return "unknown"
	}
}

// Option is a functional option for configuring a mapper.
type Option func(*config)

type config struct {
	backend      Backend
	logger       *zap.Logger
	pin          bool
	rateLimiter  *rate.Limiter
	onSequential func()
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		backend: BackendManual,
		logger:  zap.NewNop(),
		pin:     true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithBackend picks the backend SplitWork uses above the threshold.
// Defaults to BackendManual.
func WithBackend(b Backend) Option {
	return func(cfg *config) {
		cfg.backend = b
	}
}

// WithLogger sets the logger used for per-invocation diagnostics.
// If not specified, nothing is logged.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithAffinity enables or disables pinning workers to cores. The worker
// count is still derived from the core count when pinning is disabled.
// Pinning is enabled by default.
func WithAffinity(enabled bool) Option {
	return func(cfg *config) {
		cfg.pin = enabled
	}
}

// WithRateLimit caps how many items per second the manual pool's workers
// start, across all workers of an invocation.
//
// Example:
//
//	WithRateLimit(100, 10) // 100 items/sec with a burst of 10
func WithRateLimit(itemsPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if itemsPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(itemsPerSecond), burst)
		}
	}
}

// WithSequentialHook registers fn to be called once for every call that
// takes the sequential branch.
func WithSequentialHook(fn func()) Option {
	return func(cfg *config) {
		cfg.onSequential = fn
	}
}
