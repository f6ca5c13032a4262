package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/utkarsh5026/splitwork/pool"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the demo settings. The zero-flag defaults reproduce the
// original demo: Fibonacci of 1000, 1100, ..., 1900 with both backends at
// thresholds 8 and 16.
type Config struct {
	Thresholds []int
	Start      uint
	Step       uint
	Count      int
	Backends   []pool.Backend
	Summary    bool
	Progress   bool
	LogLevel   string
}

// DefaultConfig returns the settings used when no flag or variable is set.
func DefaultConfig() Config {
	return Config{
		Thresholds: []int{8, 16},
		Start:      1000,
		Step:       100,
		Count:      10,
		Backends:   []pool.Backend{pool.BackendManual, pool.BackendLibrary},
		LogLevel:   "warn",
	}
}

// Dataset returns Count values starting at Start, Step apart.
func (c Config) Dataset() []uint {
	items := make([]uint, c.Count)
	for i := range items {
		items[i] = c.Start + uint(i)*c.Step
	}
	return items
}

// Load reads the configuration from v, which carries bound flags and
// SPLITWORK_* environment variables.
func Load(v *viper.Viper) (Config, error) {
	thresholds, err := parseInts(v.GetStringSlice(keyThresholds))
	if err != nil {
		return Config{}, err
	}

	backends, err := parseBackends(v.GetStringSlice(keyBackends))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Thresholds: thresholds,
		Start:      v.GetUint(keyStart),
		Step:       v.GetUint(keyStep),
		Count:      v.GetInt(keyCount),
		Backends:   backends,
		Summary:    v.GetBool(keySummary),
		Progress:   v.GetBool(keyProgress),
		LogLevel:   v.GetString(keyLogLevel),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidConfig, c.Count)
	case len(c.Thresholds) == 0:
		return fmt.Errorf("%w: at least one threshold is required", ErrInvalidConfig)
	case len(c.Backends) == 0:
		return fmt.Errorf("%w: at least one backend is required", ErrInvalidConfig)
	}

	for _, t := range c.Thresholds {
		if t < 0 {
			return fmt.Errorf("%w: threshold must not be negative, got %d", ErrInvalidConfig, t)
		}
	}
	return nil
}

// splitList flattens values that may themselves be comma separated, as
// they are when they come from an environment variable.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseInts(values []string) ([]int, error) {
	parts := splitList(values)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: threshold %q is not an integer", ErrInvalidConfig, p)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseBackends(values []string) ([]pool.Backend, error) {
	parts := splitList(values)
	out := make([]pool.Backend, 0, len(parts))
	for _, p := range parts {
		switch strings.ToLower(p) {
		case pool.BackendManual.String():
			out = append(out, pool.BackendManual)
		case pool.BackendLibrary.String():
			out = append(out, pool.BackendLibrary)
		default:
			return nil, fmt.Errorf("%w: unknown backend %q (want manual or library)", ErrInvalidConfig, p)
		}
	}
	return out, nil
}
