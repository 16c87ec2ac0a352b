package interp

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/agenthands/interp/pkg/compiler/lexer"
	"github.com/agenthands/interp/pkg/core/value"
)

// Dashes closes a statement in tokenize mode.
const Dashes = "---------------------------------------------------------\n"

// reporter renders per-statement reports, optionally in color.
type reporter struct {
	good *color.Color
	bad  *color.Color
	buf  bytes.Buffer
}

func newReporter(enabled bool) *reporter {
	rep := &reporter{
		good: color.New(color.FgGreen),
		bad:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{rep.good, rep.bad} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return rep
}

// result writes the report for one evaluated statement, without the blank
// separator line.
func (rep *reporter) result(w io.Writer, res value.Result) error {
	rep.buf.Reset()
	if err := formatResult(&rep.buf, res); err != nil {
		return err
	}
	paint := rep.good
	if !res.OK() {
		paint = rep.bad
	}
	_, err := io.WriteString(w, paint.Sprint(rep.buf.String()))
	return err
}

func (rep *reporter) lineTooLong(w io.Writer, n, max int) error {
	_, err := io.WriteString(w, rep.bad.Sprintf("===> %d bytes, limit is %d\nLine too long\n", n, max))
	return err
}

// formatResult writes the plain-text report for res.
func formatResult(w io.Writer, res value.Result) error {
	if res.OK() {
		_, err := fmt.Fprintf(w, "Syntax OK\nValue is %d\n", res.Value)
		return err
	}

	e := res.Err
	var err error
	switch e.Kind {
	case value.ErrorLexical:
		err = lexer.WriteLexicalError(w, e.Lexeme)
	case value.ErrorSyntax:
		_, err = fmt.Fprintf(w, "===> '%s' expected\nSyntax Error\n", e.Expected)
	case value.ErrorUnexpectedEOL:
		_, err = fmt.Fprintf(w, "===> '%s' expected\nSyntax Error: unexpected end of line\n", e.Expected)
	case value.ErrorArithmetic:
		_, err = fmt.Fprintf(w, "===> '%s'\nArithmetic Error: %s\n", e.Lexeme, e.Reason)
	default:
		_, err = fmt.Fprintf(w, "Error: %v\n", e)
	}
	return err
}
