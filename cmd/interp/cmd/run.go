package cmd

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/agenthands/interp/pkg/config"
	"github.com/agenthands/interp/pkg/interp"
	"github.com/agenthands/interp/pkg/metric"
)

// runOptions holds the flags shared by eval and tokenize. They override the
// config file only when set on the command line.
type runOptions struct {
	*globalOptions
	echo          bool
	color         bool
	summary       bool
	skipBlank     bool
	maxLineLength int
	metricsFile   string
}

type runFunc func(r *interp.Runner, ctx context.Context, in io.Reader, out io.Writer) (interp.Stats, error)

func newEvalCommand(g *globalOptions) *cobra.Command {
	opts := &runOptions{globalOptions: g}
	cmd := &cobra.Command{
		Use:   "eval [input] [output]",
		Short: "Evaluate one statement per line and report each result",
		Long: `Evaluate reads statements from input (stdin when missing or "-") and
writes a report for every line to output (stdout when missing).

Example:
  echo '3+4*2;' | interp eval`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, (*interp.Runner).Evaluate)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func newTokenizeCommand(g *globalOptions) *cobra.Command {
	opts := &runOptions{globalOptions: g}
	cmd := &cobra.Command{
		Use:   "tokenize [input] [output]",
		Short: "List the lexemes of each statement",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, (*interp.Runner).Tokenize)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func (o *runOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&o.echo, "echo", true, "echo each input line before its report")
	f.BoolVar(&o.color, "color", false, "color reports green or red")
	f.BoolVar(&o.summary, "summary", false, "print a summary table to stderr")
	f.BoolVar(&o.skipBlank, "skip-blank", false, "skip blank lines instead of reporting them")
	f.IntVar(&o.maxLineLength, "max-line-length", config.DefaultMaxLineLength, "reject lines longer than this many bytes")
	f.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
}

func (o *runOptions) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("echo") {
		cfg.EchoInput = o.echo
	}
	if f.Changed("color") {
		cfg.Color = o.color
	}
	if f.Changed("summary") {
		cfg.Summary = o.summary
	}
	if f.Changed("skip-blank") {
		cfg.SkipBlankLines = o.skipBlank
	}
	if f.Changed("max-line-length") {
		cfg.MaxLineLength = o.maxLineLength
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}
	return cfg, errors.Wrap(cfg.Validate(), "invalid flags")
}

func (o *runOptions) run(cmd *cobra.Command, args []string, fn runFunc) error {
	cfg, err := o.config(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, o.verbose)

	in := cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	var outFile *os.File
	if len(args) > 1 {
		outFile, err = os.Create(args[1])
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer outFile.Close()
		out = outFile
	}

	r := interp.NewRunner(cfg, interp.WithLogger(log))
	stats, err := fn(r, cmd.Context(), in, out)
	if err != nil {
		log.Errorf("%s stopped after %d lines: %v", cmd.Name(), stats.Lines, err)
		return err
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return errors.Wrap(err, "closing output")
		}
	}

	if cfg.Summary {
		stats.Render(cmd.ErrOrStderr())
	}
	if cfg.MetricsFile != "" {
		if err := metric.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.Debugf("wrote metrics to %s", cfg.MetricsFile)
	}
	return nil
}
