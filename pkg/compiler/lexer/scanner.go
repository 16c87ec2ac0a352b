package lexer

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// Scanner performs lexical analysis on a single statement line.
type Scanner struct {
	source []byte
	cursor int
}

// NewScanner creates a new scanner for the given line.
func NewScanner(source []byte) *Scanner {
	s := &Scanner{}
	s.Reset(source)
	return s
}

// Reset re-initializes the scanner with a new line for pool reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.skipWhitespace()
}

// Next advances past exactly one lexeme and returns it. Whitespace on both
// sides of the lexeme is consumed. At the end of the line it keeps returning
// KindEOL without moving.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	if s.atEOL() {
		return Token{Kind: KindEOL, Offset: uint32(s.cursor)}
	}

	start := s.cursor
	ch := s.source[s.cursor]
	s.cursor++

	var kind Kind
	switch ch {
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindStar
	case '/':
		kind = KindSlash
	case '^':
		kind = KindCaret
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case ';':
		kind = KindSemicolon
	case '=':
		kind = s.withEquals(KindAssign, KindEQ)
	case '<':
		kind = s.withEquals(KindLT, KindLE)
	case '>':
		kind = s.withEquals(KindGT, KindGE)
	case '!':
		kind = s.withEquals(KindBang, KindNE)
	default:
		if isDigit(ch) {
			for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
				s.cursor++
			}
			kind = KindNumber
		} else {
			// Swallow the whole character so reports can name it.
			_, size := utf8.DecodeRune(s.source[start:])
			s.cursor = start + size
			kind = KindInvalid
		}
	}

	tok := Token{Kind: kind, Offset: uint32(start), Length: uint32(s.cursor - start)}
	s.skipWhitespace()
	return tok
}

// Text returns the raw bytes of tok. The slice aliases the scanned line.
func (s *Scanner) Text(tok Token) []byte {
	return s.source[tok.Offset : tok.Offset+tok.Length]
}

// withEquals extends a one-character operator into its two-character
// comparison form when the next character is '='.
func (s *Scanner) withEquals(single, double Kind) Kind {
	if s.cursor < len(s.source) && s.source[s.cursor] == '=' {
		s.cursor++
		return double
	}
	return single
}

func (s *Scanner) atEOL() bool {
	return s.cursor >= len(s.source) || s.source[s.cursor] == 0
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) && isSpace(s.source[s.cursor]) {
		s.cursor++
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsValid reports whether tok may appear in a statement. Lone '=' and '!'
// scan as lexemes but no production accepts them.
func IsValid(tok Token) bool {
	switch tok.Kind {
	case KindInvalid, KindAssign, KindBang:
		return false
	}
	return true
}

// CheckValid is IsValid with reporting: an invalid lexeme is written to w as
// a lexical error naming the offending character.
func (s *Scanner) CheckValid(w io.Writer, tok Token) (bool, error) {
	if IsValid(tok) {
		return true, nil
	}
	return false, WriteLexicalError(w, string(s.Text(tok)))
}

// WriteLexicalError writes the lexical error report for lexeme. Bytes that
// are not valid UTF-8 are written as Go escapes.
func WriteLexicalError(w io.Writer, lexeme string) error {
	if !utf8.ValidString(lexeme) {
		quoted := strconv.Quote(lexeme)
		lexeme = quoted[1 : len(quoted)-1]
	}
	_, err := fmt.Fprintf(w, "===> '%s'\nLexical error: not a lexeme\n", lexeme)
	return err
}
