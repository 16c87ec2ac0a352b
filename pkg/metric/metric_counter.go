package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	statementCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "interp",
			Subsystem: "eval",
			Name:      "statements_total",
			Help:      "Total number of statements evaluated, by result.",
		}, []string{"result"})

	lexemeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "interp",
			Subsystem: "lexer",
			Name:      "lexemes_total",
			Help:      "Total number of lexemes recognized in tokenize mode.",
		}, []string{"valid"})

	lineRejectedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "interp",
			Subsystem: "input",
			Name:      "lines_rejected_total",
			Help:      "Total number of input lines not evaluated.",
		}, []string{"reason"})
)

// IncStatement counts one evaluated statement. result is "ok" or an error kind.
func IncStatement(result string) {
	statementCounter.WithLabelValues(result).Inc()
}

// IncLexeme counts one lexeme seen by the tokenizer.
func IncLexeme(valid bool) {
	if valid {
		lexemeCounter.WithLabelValues("true").Inc()
		return
	}
	lexemeCounter.WithLabelValues("false").Inc()
}

// IncLineRejected counts a line skipped before evaluation.
func IncLineRejected(reason string) {
	lineRejectedCounter.WithLabelValues(reason).Inc()
}
