// Package parser evaluates statements by recursive descent while checking
// their syntax. Each grammar level is one method; the call stack carries the
// parse state.
//
//	statement      -> additive ;
//	additive       -> multiplicative { (+ | -) multiplicative }
//	multiplicative -> relational { (* | /) relational }
//	relational     -> exponent { (< | <= | > | >= | == | !=) exponent }
//	exponent       -> primary [ ^ exponent ]
//	primary        -> ( additive ) | number
//
// Comparisons yield 1 or 0 and take part in arithmetic like any integer.
package parser

import (
	"math"
	"sync"

	"github.com/agenthands/interp/pkg/compiler/lexer"
	"github.com/agenthands/interp/pkg/core/value"
)

// Names of the terminals reported as expected.
const (
	ExpectSemicolon = ";"
	ExpectRParen    = ")"
	ExpectNumber    = "number"
)

// Parser holds the lexer cursor and the single lexeme of look-ahead for the
// statement being evaluated.
type Parser struct {
	scanner lexer.Scanner
	curTok  lexer.Token
}

func NewParser() *Parser {
	return &Parser{}
}

var parserPool = sync.Pool{
	New: func() any { return NewParser() },
}

// Eval evaluates a single statement line with a pooled parser.
func Eval(line string) value.Result {
	p := parserPool.Get().(*Parser)
	res := p.Eval([]byte(line))
	p.scanner.Reset(nil)
	parserPool.Put(p)
	return res
}

// Eval evaluates one statement. The cursor starts fresh on every call, so the
// same line always produces the same result.
func (p *Parser) Eval(line []byte) value.Result {
	p.scanner.Reset(line)
	p.nextToken()

	v, err := p.statement()
	if err != nil {
		return value.Fail(err)
	}
	return value.Int(v)
}

func (p *Parser) nextToken() {
	p.curTok = p.scanner.Next()
}

func (p *Parser) statement() (int64, *value.Error) {
	v, err := p.additive()
	if err != nil {
		return 0, err
	}
	if p.curTok.Kind != lexer.KindSemicolon {
		return 0, p.fail(ExpectSemicolon)
	}
	// Anything after the terminator is not part of the statement.
	return v, nil
}

func (p *Parser) additive() (int64, *value.Error) {
	left, err := p.multiplicative()
	if err != nil {
		return 0, err
	}
	for p.curTok.Kind == lexer.KindPlus || p.curTok.Kind == lexer.KindMinus {
		op := p.curTok
		p.nextToken()
		right, err := p.multiplicative()
		if err != nil {
			return 0, err
		}
		if left, err = p.apply(op, left, right); err != nil {
			return 0, err
		}
	}
	return left, nil
}

func (p *Parser) multiplicative() (int64, *value.Error) {
	left, err := p.relational()
	if err != nil {
		return 0, err
	}
	for p.curTok.Kind == lexer.KindStar || p.curTok.Kind == lexer.KindSlash {
		op := p.curTok
		p.nextToken()
		right, err := p.relational()
		if err != nil {
			return 0, err
		}
		if left, err = p.apply(op, left, right); err != nil {
			return 0, err
		}
	}
	return left, nil
}

func (p *Parser) relational() (int64, *value.Error) {
	left, err := p.exponent()
	if err != nil {
		return 0, err
	}
	for p.curTok.Kind.IsComparison() {
		op := p.curTok
		p.nextToken()
		right, err := p.exponent()
		if err != nil {
			return 0, err
		}
		if left, err = p.apply(op, left, right); err != nil {
			return 0, err
		}
	}
	return left, nil
}

// exponent is right-associative: 2^3^2 is 2^(3^2).
func (p *Parser) exponent() (int64, *value.Error) {
	base, err := p.primary()
	if err != nil {
		return 0, err
	}
	if p.curTok.Kind != lexer.KindCaret {
		return base, nil
	}
	op := p.curTok
	p.nextToken()
	exp, err := p.exponent()
	if err != nil {
		return 0, err
	}
	return p.apply(op, base, exp)
}

func (p *Parser) primary() (int64, *value.Error) {
	switch p.curTok.Kind {
	case lexer.KindLParen:
		p.nextToken()
		v, err := p.additive()
		if err != nil {
			return 0, err
		}
		if p.curTok.Kind != lexer.KindRParen {
			return 0, p.fail(ExpectRParen)
		}
		p.nextToken()
		return v, nil
	case lexer.KindNumber:
		tok := p.curTok
		v, ok := parseNumber(p.scanner.Text(tok))
		if !ok {
			return 0, p.arithmetic(tok, "integer literal out of range")
		}
		p.nextToken()
		return v, nil
	default:
		return 0, p.fail(ExpectNumber)
	}
}

// fail classifies a failure at the current lexeme. The lexeme itself decides
// the kind: an invalid lexeme is a lexical error whatever was expected, the
// end of line means the statement was cut short, anything else is a syntax
// error naming the expected terminal.
func (p *Parser) fail(expected string) *value.Error {
	tok := p.curTok
	switch {
	case tok.Kind == lexer.KindEOL:
		return &value.Error{
			Kind:     value.ErrorUnexpectedEOL,
			Expected: expected,
			Offset:   int(tok.Offset),
		}
	case !lexer.IsValid(tok):
		return &value.Error{
			Kind:   value.ErrorLexical,
			Lexeme: string(p.scanner.Text(tok)),
			Offset: int(tok.Offset),
		}
	default:
		return &value.Error{
			Kind:     value.ErrorSyntax,
			Expected: expected,
			Found:    string(p.scanner.Text(tok)),
			Offset:   int(tok.Offset),
		}
	}
}

func (p *Parser) arithmetic(tok lexer.Token, reason string) *value.Error {
	return &value.Error{
		Kind:   value.ErrorArithmetic,
		Lexeme: string(p.scanner.Text(tok)),
		Reason: reason,
		Offset: int(tok.Offset),
	}
}

// apply combines two operands with the binary operator op.
func (p *Parser) apply(op lexer.Token, l, r int64) (int64, *value.Error) {
	var (
		v  int64
		ok = true
	)
	switch op.Kind {
	case lexer.KindPlus:
		v, ok = add(l, r)
	case lexer.KindMinus:
		v, ok = sub(l, r)
	case lexer.KindStar:
		v, ok = mul(l, r)
	case lexer.KindSlash:
		if r == 0 {
			return 0, p.arithmetic(op, "division by zero")
		}
		if l == math.MinInt64 && r == -1 {
			ok = false
		} else {
			v = l / r
		}
	case lexer.KindCaret:
		if r < 0 {
			return 0, p.arithmetic(op, "negative exponent")
		}
		v, ok = pow(l, r)
	case lexer.KindLT:
		v = boolInt(l < r)
	case lexer.KindLE:
		v = boolInt(l <= r)
	case lexer.KindGT:
		v = boolInt(l > r)
	case lexer.KindGE:
		v = boolInt(l >= r)
	case lexer.KindEQ:
		v = boolInt(l == r)
	case lexer.KindNE:
		v = boolInt(l != r)
	}
	if !ok {
		return 0, p.arithmetic(op, "integer overflow")
	}
	return v, nil
}
