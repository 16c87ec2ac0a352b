package lexer_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/interp/pkg/compiler/lexer"
)

// scanAll returns kinds and texts up to and including the first KindEOL.
func scanAll(src string) ([]lexer.Kind, []string) {
	s := lexer.NewScanner([]byte(src))
	var kinds []lexer.Kind
	var texts []string
	for i := 0; i < 64; i++ {
		tok := s.Next()
		kinds = append(kinds, tok.Kind)
		texts = append(texts, string(s.Text(tok)))
		if tok.Kind == lexer.KindEOL {
			break
		}
	}
	return kinds, texts
}

func TestScannerZeroAlloc(t *testing.T) {
	src := []byte(`  (12 + 3) * 4 ^ 2 <= 99 != 1 ; `)
	s := lexer.NewScanner(src)

	allocs := testing.AllocsPerRun(10, func() {
		s.Reset(src)
		for {
			tok := s.Next()
			if tok.Kind == lexer.KindEOL || tok.Kind == lexer.KindInvalid {
				break
			}
		}
	})

	if allocs > 0 {
		t.Errorf("expected 0 allocations, got %f", allocs)
	}
}

func TestScannerLexemes(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []lexer.Kind
		texts []string
	}{
		{
			name:  "Single Character Operators",
			src:   "+-*/^();",
			kinds: []lexer.Kind{lexer.KindPlus, lexer.KindMinus, lexer.KindStar, lexer.KindSlash, lexer.KindCaret, lexer.KindLParen, lexer.KindRParen, lexer.KindSemicolon, lexer.KindEOL},
			texts: []string{"+", "-", "*", "/", "^", "(", ")", ";", ""},
		},
		{
			name:  "Comparisons",
			src:   "< <= > >= == !=",
			kinds: []lexer.Kind{lexer.KindLT, lexer.KindLE, lexer.KindGT, lexer.KindGE, lexer.KindEQ, lexer.KindNE, lexer.KindEOL},
			texts: []string{"<", "<=", ">", ">=", "==", "!=", ""},
		},
		{
			name:  "Digit Runs Are Greedy",
			src:   "123+4567;",
			kinds: []lexer.Kind{lexer.KindNumber, lexer.KindPlus, lexer.KindNumber, lexer.KindSemicolon, lexer.KindEOL},
			texts: []string{"123", "+", "4567", ";", ""},
		},
		{
			name:  "Whitespace Is Bypassed",
			src:   " \t 3 \t+\t4 ;\r\n",
			kinds: []lexer.Kind{lexer.KindNumber, lexer.KindPlus, lexer.KindNumber, lexer.KindSemicolon, lexer.KindEOL},
			texts: []string{"3", "+", "4", ";", ""},
		},
		{
			name:  "Lone Equals And Bang",
			src:   "= ! =<",
			kinds: []lexer.Kind{lexer.KindAssign, lexer.KindBang, lexer.KindAssign, lexer.KindLT, lexer.KindEOL},
			texts: []string{"=", "!", "=", "<", ""},
		},
		{
			name:  "Invalid Characters",
			src:   "3#4 a",
			kinds: []lexer.Kind{lexer.KindNumber, lexer.KindInvalid, lexer.KindNumber, lexer.KindInvalid, lexer.KindEOL},
			texts: []string{"3", "#", "4", "a", ""},
		},
		{
			name:  "Multibyte Invalid Character",
			src:   "1 € 2",
			kinds: []lexer.Kind{lexer.KindNumber, lexer.KindInvalid, lexer.KindNumber, lexer.KindEOL},
			texts: []string{"1", "€", "2", ""},
		},
		{
			name:  "NUL Ends The Line",
			src:   "1+\x002;",
			kinds: []lexer.Kind{lexer.KindNumber, lexer.KindPlus, lexer.KindEOL},
			texts: []string{"1", "+", ""},
		},
		{
			name:  "Empty Line",
			src:   "",
			kinds: []lexer.Kind{lexer.KindEOL},
			texts: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kinds, texts := scanAll(tt.src)
			if diff := cmp.Diff(tt.kinds, kinds); diff != "" {
				t.Errorf("kinds mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.texts, texts); diff != "" {
				t.Errorf("texts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScannerEOLIsSticky(t *testing.T) {
	s := lexer.NewScanner([]byte("7   "))
	assert.Equal(t, lexer.KindNumber, s.Next().Kind)
	for i := 0; i < 3; i++ {
		tok := s.Next()
		assert.Equal(t, lexer.KindEOL, tok.Kind)
		assert.Equal(t, uint32(4), tok.Offset)
	}
}

func TestScannerOffsetsSkipWhitespace(t *testing.T) {
	s := lexer.NewScanner([]byte("  12   +  3"))
	for _, want := range []uint32{2, 7, 10, 11} {
		assert.Equal(t, want, s.Next().Offset)
	}
}

func TestCheckValid(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		valid  bool
		report string
	}{
		{"Number", "42", true, ""},
		{"Comparison", "!=", true, ""},
		{"Invalid", "#", false, "===> '#'\nLexical error: not a lexeme\n"},
		{"Lone Assign", "=", false, "===> '='\nLexical error: not a lexeme\n"},
		{"Lone Bang", "!", false, "===> '!'\nLexical error: not a lexeme\n"},
		{"Multibyte", "é", false, "===> 'é'\nLexical error: not a lexeme\n"},
		{"Invalid UTF-8", "\xff", false, "===> '\\xff'\nLexical error: not a lexeme\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := lexer.NewScanner([]byte(tt.src))
			tok := s.Next()
			ok, err := s.CheckValid(&buf, tok)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.valid, lexer.IsValid(tok))
			assert.Equal(t, tt.report, buf.String())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "<=", lexer.KindLE.String())
	assert.Equal(t, "end of line", lexer.KindEOL.String())
	assert.Equal(t, "unknown", lexer.Kind(200).String())
	assert.True(t, lexer.KindNE.IsComparison())
	assert.False(t, lexer.KindAssign.IsComparison())
}

func BenchmarkScanner(b *testing.B) {
	src := []byte("(12 + 3) * 4 ^ 2 <= 99 != 1 ;")
	s := lexer.NewScanner(src)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Reset(src)
		for s.Next().Kind != lexer.KindEOL {
		}
	}
}
