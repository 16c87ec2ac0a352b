// Package interp drives the evaluator over line-oriented input: it reads one
// statement per line, evaluates it, and writes a report for every line so no
// failure goes unreported. It also provides the lexeme listing mode.
package interp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/agenthands/interp/pkg/compiler/lexer"
	"github.com/agenthands/interp/pkg/compiler/parser"
	"github.com/agenthands/interp/pkg/config"
	"github.com/agenthands/interp/pkg/core/value"
	"github.com/agenthands/interp/pkg/metric"
)

// Logger is the logging surface the runner needs. *logger.Logger from
// github.com/jcgregorio/logger satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l Logger) Option {
	return func(r *Runner) {
		r.log = l
	}
}

// Runner evaluates or tokenizes statement streams. A Runner is not safe for
// concurrent use; create one per stream.
type Runner struct {
	cfg    config.Config
	log    Logger
	parser *parser.Parser
	rep    *reporter
}

func NewRunner(cfg config.Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:    cfg,
		log:    nopLogger{},
		parser: parser.NewParser(),
		rep:    newReporter(cfg.Color),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Evaluate evaluates every line of in as one statement and writes a report
// per line to out. Statement errors are reported and counted, never
// returned; only I/O failures and cancellation end the run early.
func (r *Runner) Evaluate(ctx context.Context, in io.Reader, out io.Writer) (stats Stats, err error) {
	started := time.Now()
	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "writing reports")
		}
		metric.SetRunFinished("eval", started, time.Now())
	}()

	lines := newLineReader(in, r.cfg.MaxLineLength)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		line, n, tooLong, err := lines.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, errors.Wrap(err, "reading statements")
		}
		stats.Lines++

		if tooLong {
			stats.Rejected++
			metric.IncLineRejected("too_long")
			r.log.Warningf("line %d: %d bytes exceeds limit of %d", stats.Lines, n, r.cfg.MaxLineLength)
			if err := r.rep.lineTooLong(w, n, r.cfg.MaxLineLength); err != nil {
				return stats, errors.Wrap(err, "writing reports")
			}
			if _, err := w.WriteString("\n"); err != nil {
				return stats, errors.Wrap(err, "writing reports")
			}
			continue
		}
		if r.cfg.SkipBlankLines && len(bytes.TrimSpace(line)) == 0 {
			stats.Skipped++
			metric.IncLineRejected("blank")
			continue
		}

		res := r.parser.Eval(line)
		stats.record(res)
		metric.IncStatement(res.Outcome())
		r.log.Debugf("line %d: %q -> %s", stats.Lines, line, res.Format())

		if err := r.writeStatement(w, line, res); err != nil {
			return stats, errors.Wrap(err, "writing reports")
		}
	}

	r.log.Infof("evaluated %d statements: %d ok, %d failed", stats.Statements, stats.OK, stats.Failed())
	return stats, nil
}

func (r *Runner) writeStatement(w *bufio.Writer, line []byte, res value.Result) error {
	if r.cfg.EchoInput {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	if err := r.rep.result(w, res); err != nil {
		return err
	}
	_, err := w.WriteString("\n")
	return err
}

// Tokenize lists the lexemes of in, grouped into statements ended by ';'.
// A statement may span lines. Invalid lexemes are reported as lexical errors
// and not numbered. Over-long lines get the same report as in Evaluate but,
// like every tokenize report, no blank separator.
func (r *Runner) Tokenize(ctx context.Context, in io.Reader, out io.Writer) (stats Stats, err error) {
	started := time.Now()
	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "writing lexemes")
		}
		metric.SetRunFinished("tokenize", started, time.Now())
	}()

	var (
		s     lexer.Scanner
		start = true
		count int
	)
	lines := newLineReader(in, r.cfg.MaxLineLength)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		line, n, tooLong, err := lines.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, errors.Wrap(err, "reading statements")
		}
		stats.Lines++

		if tooLong {
			stats.Rejected++
			metric.IncLineRejected("too_long")
			r.log.Warningf("line %d: %d bytes exceeds limit of %d", stats.Lines, n, r.cfg.MaxLineLength)
			if err := r.rep.lineTooLong(w, n, r.cfg.MaxLineLength); err != nil {
				return stats, errors.Wrap(err, "writing lexemes")
			}
			continue
		}
		if r.cfg.SkipBlankLines && len(bytes.TrimSpace(line)) == 0 {
			stats.Skipped++
			metric.IncLineRejected("blank")
			continue
		}

		if start {
			count = 0
			stats.Statements++
			if _, err := fmt.Fprintf(w, "Statement #%d\n", stats.Statements); err != nil {
				return stats, errors.Wrap(err, "writing lexemes")
			}
			start = false
		}

		s.Reset(line)
		for tok := s.Next(); tok.Kind != lexer.KindEOL; tok = s.Next() {
			valid, err := s.CheckValid(w, tok)
			if err != nil {
				return stats, errors.Wrap(err, "writing lexemes")
			}
			metric.IncLexeme(valid)
			if !valid {
				stats.InvalidLexemes++
				continue
			}
			stats.Lexemes++
			start = tok.Kind == lexer.KindSemicolon
			if _, err := fmt.Fprintf(w, "Lexeme %d is %s\n", count, s.Text(tok)); err != nil {
				return stats, errors.Wrap(err, "writing lexemes")
			}
			count++
		}

		if start {
			if _, err := w.WriteString(Dashes); err != nil {
				return stats, errors.Wrap(err, "writing lexemes")
			}
		}
	}

	r.log.Infof("tokenized %d statements: %d lexemes, %d invalid", stats.Statements, stats.Lexemes, stats.InvalidLexemes)
	return stats, nil
}
