// Package cmd implements the interp command line.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/agenthands/interp/pkg/config"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCommand builds the interp command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "interp",
		Short: "Evaluate integer expression statements line by line",
		Long: `interp reads one statement per line, each ended by ';', and reports
either its integer value or the first error found.

Statements are built from decimal integers, + - * / ^, parentheses and
the comparisons < <= > >= == != (which yield 1 or 0).`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file, TOML or YAML (default: $"+config.EnvVar+")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newEvalCommand(opts),
		newTokenizeCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command line until it finishes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

// loadConfig resolves the configuration: --config first, then the
// environment variable, then built-in defaults.
func (o *globalOptions) loadConfig() (config.Config, error) {
	if o.cfgFile != "" {
		cfg, err := config.Load(o.cfgFile)
		return cfg, errors.Wrap(err, "loading --config")
	}
	return config.LoadFromEnv()
}
