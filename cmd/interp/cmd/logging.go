package cmd

import (
	"io"

	"github.com/jcgregorio/logger"
)

type syncWriter struct {
	io.Writer
}

func (syncWriter) Sync() error {
	return nil
}

// leveledLogger drops messages below its level. The underlying logger only
// knows whether to include debug output.
type leveledLogger struct {
	*logger.Logger
	level int
}

var levels = map[string]int{
	"debug":   0,
	"info":    1,
	"warning": 2,
	"error":   3,
}

func newLogger(w io.Writer, level string, verbose bool) *leveledLogger {
	if verbose {
		level = "debug"
	}
	n, ok := levels[level]
	if !ok {
		n = levels["info"]
	}
	l := logger.NewFromOptions(&logger.Options{
		SyncWriter:   syncWriter{w},
		IncludeDebug: n == 0,
	})
	return &leveledLogger{Logger: l, level: n}
}

func (l *leveledLogger) Infof(format string, args ...interface{}) {
	if l.level <= levels["info"] {
		l.Logger.Infof(format, args...)
	}
}

func (l *leveledLogger) Warningf(format string, args ...interface{}) {
	if l.level <= levels["warning"] {
		l.Logger.Warningf(format, args...)
	}
}
