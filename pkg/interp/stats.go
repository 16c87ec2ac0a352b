package interp

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/agenthands/interp/pkg/core/value"
)

// Stats counts what a run saw.
type Stats struct {
	Lines    int // input lines read
	Rejected int // lines over the length limit
	Skipped  int // blank lines skipped

	Statements    int
	OK            int
	Lexical       int
	UnexpectedEOL int
	Syntax        int
	Arithmetic    int

	Lexemes        int
	InvalidLexemes int
}

func (s *Stats) record(res value.Result) {
	s.Statements++
	if res.OK() {
		s.OK++
		return
	}
	switch res.Err.Kind {
	case value.ErrorLexical:
		s.Lexical++
	case value.ErrorUnexpectedEOL:
		s.UnexpectedEOL++
	case value.ErrorSyntax:
		s.Syntax++
	case value.ErrorArithmetic:
		s.Arithmetic++
	}
}

// Failed is the number of statements that did not produce a value.
func (s Stats) Failed() int {
	return s.Lexical + s.UnexpectedEOL + s.Syntax + s.Arithmetic
}

// Render writes the counters as a table.
func (s Stats) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Outcome", "Count"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	rows := []struct {
		name  string
		count int
	}{
		{"Lines", s.Lines},
		{"Statements", s.Statements},
		{"Syntax OK", s.OK},
		{"Lexical error", s.Lexical},
		{"Unexpected end of line", s.UnexpectedEOL},
		{"Syntax error", s.Syntax},
		{"Arithmetic error", s.Arithmetic},
		{"Lexemes", s.Lexemes},
		{"Invalid lexemes", s.InvalidLexemes},
		{"Rejected lines", s.Rejected},
		{"Skipped lines", s.Skipped},
	}
	for _, row := range rows {
		table.Append([]string{row.name, strconv.Itoa(row.count)})
	}
	table.Render()
}
