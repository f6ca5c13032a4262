// Package cli implements the splitwork demo command.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "SPLITWORK"

	keyThresholds = "thresholds"
	keyStart      = "start"
	keyStep       = "step"
	keyCount      = "count"
	keyBackends   = "backends"
	keySummary    = "summary"
	keyProgress   = "progress"
	keyLogLevel   = "log-level"
)

// NewRootCommand builds the splitwork command. Every flag can also be set
// through a SPLITWORK_<FLAG> environment variable, dashes replaced by
// underscores.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	def := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "splitwork",
		Short: "Map Fibonacci over a dataset with both parallel backends",
		Long: `splitwork maps a big-integer Fibonacci function over a small dataset,
once per backend and threshold, and prints each ordered result sequence.
Inputs shorter than the threshold run sequentially; longer ones run on a
pool of workers.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := Load(v)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return NewRunner(cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr()).Run()
		},
	}

	backends := make([]string, len(def.Backends))
	for i, b := range def.Backends {
		backends[i] = b.String()
	}

	flags := cmd.Flags()
	flags.IntSlice(keyThresholds, def.Thresholds, "thresholds to run each backend with")
	flags.Uint(keyStart, def.Start, "first Fibonacci index in the dataset")
	flags.Uint(keyStep, def.Step, "distance between consecutive dataset values")
	flags.Int(keyCount, def.Count, "number of dataset values")
	flags.StringSlice(keyBackends, backends, "backends to run (manual, library)")
	flags.Bool(keySummary, def.Summary, "print a timing table after the runs")
	flags.Bool(keyProgress, def.Progress, "show a progress bar on stderr")
	flags.String(keyLogLevel, def.LogLevel, "log level (debug, info, warn, error)")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}
