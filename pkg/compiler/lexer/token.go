package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOL     Kind = iota // end of line, no more lexemes
	KindInvalid             // character that begins no lexeme
	KindNumber
	KindPlus      // +
	KindMinus     // -
	KindStar      // *
	KindSlash     // /
	KindCaret     // ^
	KindLParen    // (
	KindRParen    // )
	KindSemicolon // ;
	KindLT        // <
	KindLE        // <=
	KindGT        // >
	KindGE        // >=
	KindEQ        // ==
	KindNE        // !=
	KindAssign    // = (no production accepts it)
	KindBang      // ! (no production accepts it)
)

var kindNames = [...]string{
	KindEOL:       "end of line",
	KindInvalid:   "invalid",
	KindNumber:    "number",
	KindPlus:      "+",
	KindMinus:     "-",
	KindStar:      "*",
	KindSlash:     "/",
	KindCaret:     "^",
	KindLParen:    "(",
	KindRParen:    ")",
	KindSemicolon: ";",
	KindLT:        "<",
	KindLE:        "<=",
	KindGT:        ">",
	KindGE:        ">=",
	KindEQ:        "==",
	KindNE:        "!=",
	KindAssign:    "=",
	KindBang:      "!",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsComparison reports whether k is one of the relational operators.
func (k Kind) IsComparison() bool {
	return k >= KindLT && k <= KindNE
}

// Token represents a lexical unit pointing back to the source line.
// Small enough to be passed by value without allocating.
type Token struct {
	Kind   Kind
	Offset uint32
	Length uint32
}
