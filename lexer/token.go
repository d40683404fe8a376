package lexer

import (
	"unicode/utf8"

	"github.com/kbaskett248/atlex/source"
)

// Token is a single lexeme cut from a source text. Start and End are
// byte offsets; End is the offset just past the last byte.
type Token struct {
	rule       string
	subKind    string
	text       string
	source     *source.Source
	start, end int
	line, col  int
}

func (t *Token) Rule() string {
	return t.rule
}

// SubKind returns SubKindReserved for code-rule tokens whose text equals
// one of the rule's keywords, or an empty string.
func (t *Token) SubKind() string {
	return t.subKind
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Source() *source.Source {
	return t.source
}

func (t *Token) SourceName() string {
	if t.source == nil {
		return ""
	}
	return t.source.Name()
}

func (t *Token) Start() int {
	return t.start
}

func (t *Token) End() int {
	return t.end
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}

// NewToken creates a token spanning [pos.Pos(), pos.Pos()+len(text)).
func NewToken(rule, subKind, text string, pos source.Pos) *Token {
	t := &Token{rule: rule, subKind: subKind, text: text, source: pos.Source()}
	t.start = pos.Pos()
	t.end = t.start + len(text)
	t.line, t.col = pos.Line(), pos.Col()
	return t
}

// Rule names of tokens synthesized by the engine; the dashes keep them
// outside the grammar identifier namespace.
const (
	EofRuleName   = "-end-of-file-"
	ErrorRuleName = "-error-"
)

// SubKindReserved marks a code-rule token whose text is one of the
// rule's keywords.
const SubKindReserved = "reserved"

// EofToken creates the terminal token for a source. Its span is empty
// and sits just past the last byte.
func EofToken(s *source.Source) *Token {
	t := &Token{rule: EofRuleName, source: s}
	if s != nil {
		t.start = s.Len()
		t.end = t.start
		t.line, t.col = s.LineCol(t.start)
	}
	return t
}

// ErrorToken creates a token covering exactly one rune at pos, for
// positions where no rule matches.
func ErrorToken(s *source.Source, pos int) *Token {
	_, size := utf8.DecodeRune(s.Content()[pos:])
	if size < 1 {
		size = 1
	}
	t := &Token{rule: ErrorRuleName, source: s}
	t.text = string(s.Content()[pos : pos+size])
	t.start = pos
	t.end = pos + size
	t.line, t.col = s.LineCol(pos)
	return t
}
