// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/degseq/config"
	"github.com/katalvlaran/degseq/logger"
)

// flagKeys maps CLI flags onto configuration keys.
var flagKeys = map[string]string{
	"method":          "generate.method",
	"seed":            "generate.seed",
	"samples":         "generate.samples",
	"workers":         "generate.workers",
	"timeout":         "generate.timeout",
	"check-interval":  "generate.check_interval",
	"max-attempts":    "generate.max_attempts",
	"dense-threshold": "generate.dense_threshold",
	"rewire-factor":   "generate.rewire_factor",
	"format":          "generate.format",
	"log-level":       "log.level",
	"metrics-file":    "metrics.textfile",
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "degseq",
		Short:         "Random graphs with a prescribed degree sequence",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newGenerateCmd(), newCheckCmd())

	return root
}

// session is the resolved environment of one command invocation.
type session struct {
	cfg    *config.Config
	log    *slog.Logger
	closer io.Closer
}

// setup loads the configuration with changed flags applied on top and
// opens the logger.
func setup(cmd *cobra.Command) (*session, error) {
	overrides := map[string]any{}
	visit := func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
		if f.Name == "metrics-file" {
			overrides["metrics.enabled"] = true
		}
	}
	cmd.Flags().Visit(visit)

	opts := []config.LoaderOption{config.WithOverrides(overrides)}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		opts = append(opts, config.WithFile(path))
	}
	cfg, err := config.NewLoader(opts...).Load()
	if err != nil {
		return nil, err
	}

	log, closer, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, log: log, closer: closer}, nil
}
