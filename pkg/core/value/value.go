package value

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind classifies why a statement failed to evaluate.
type ErrorKind uint8

const (
	ErrorLexical ErrorKind = iota + 1
	ErrorUnexpectedEOL
	ErrorSyntax
	ErrorArithmetic
)

var (
	ErrLexical       = errors.New("value: lexical error")
	ErrUnexpectedEOL = errors.New("value: unexpected end of line")
	ErrSyntax        = errors.New("value: syntax error")
	ErrArithmetic    = errors.New("value: arithmetic error")
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorLexical:
		return "lexical"
	case ErrorUnexpectedEOL:
		return "unexpected_eol"
	case ErrorSyntax:
		return "syntax"
	case ErrorArithmetic:
		return "arithmetic"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrorLexical:
		return ErrLexical
	case ErrorUnexpectedEOL:
		return ErrUnexpectedEOL
	case ErrorSyntax:
		return ErrSyntax
	case ErrorArithmetic:
		return ErrArithmetic
	default:
		return nil
	}
}

// Error describes a failed statement. Which fields are set depends on Kind:
// Lexeme names the offending lexeme (lexical, arithmetic), Expected names the
// missing terminal (syntax, end of line), Found is the lexeme seen instead.
type Error struct {
	Kind     ErrorKind
	Lexeme   string
	Expected string
	Found    string
	Reason   string
	Offset   int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorLexical:
		return fmt.Sprintf("lexical error at %d: %q is not a lexeme", e.Offset, e.Lexeme)
	case ErrorUnexpectedEOL:
		return fmt.Sprintf("unexpected end of line at %d: %q expected", e.Offset, e.Expected)
	case ErrorSyntax:
		return fmt.Sprintf("syntax error at %d: %q expected, found %q", e.Offset, e.Expected, e.Found)
	case ErrorArithmetic:
		return fmt.Sprintf("arithmetic error at %d: %s", e.Offset, e.Reason)
	default:
		return "unknown error"
	}
}

// Unwrap exposes the sentinel for the kind so callers can use errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// Result is the tagged outcome of evaluating one statement: either an
// integer value or an error, never both.
type Result struct {
	Value int64
	Err   *Error
}

// Int wraps a successful value.
func Int(v int64) Result {
	return Result{Value: v}
}

// Fail wraps an evaluation error.
func Fail(err *Error) Result {
	return Result{Err: err}
}

// OK reports whether the statement evaluated to a value.
func (r Result) OK() bool {
	return r.Err == nil
}

// Outcome names the result for metrics and summaries.
func (r Result) Outcome() string {
	if r.Err == nil {
		return "ok"
	}
	return r.Err.Kind.String()
}

// Format returns the value, or the error message for a failed result.
func (r Result) Format() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return strconv.FormatInt(r.Value, 10)
}
