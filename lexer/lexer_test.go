package lexer

import (
	"testing"

	"github.com/kbaskett248/atlex/grammar"
	"github.com/kbaskett248/atlex/ruledef"
	"github.com/kbaskett248/atlex/source"
)

const matchGrammar = `
m main .
s marker -
l minus -
l not_minus ~-
l at_minus @-
l at_not_minus @~-
r name [a-z][a-z0-9]*
r number [0-9]+
c funcall @[A-Za-z][A-Za-z0-9.]* @HV @OV
m anchored .
r kw ^:[a-z]+
r ref :[a-z]+
r eol x$
`

func matchMode(t *testing.T, mode string) *grammar.Mode {
	t.Helper()
	c, e := ruledef.LoadString("match.rules", matchGrammar)
	if e != nil {
		t.Fatal("unexpected error: " + e.Error())
	}

	m := c.Mode(mode)
	if m == nil {
		t.Fatalf("mode %q missing", mode)
	}
	return m
}

func TestLongestMatch(t *testing.T) {
	mode := matchMode(t, "main")
	samples := []struct {
		src  string
		rule string
		text string
	}{
		{"-", "minus", "-"},
		{"-x", "minus", "-"},
		{"~-", "not_minus", "~-"},
		{"@-", "at_minus", "@-"},
		{"@~-", "at_not_minus", "@~-"},
		{"@~-x", "at_not_minus", "@~-"},
		{"abc12-", "name", "abc12"},
		{"007", "number", "007"},
	}

	for i, s := range samples {
		tok := Match(mode, source.New("", []byte(s.src)), 0)
		if tok == nil {
			t.Fatalf("sample #%d: no token", i)
		}
		if tok.Rule() != s.rule || tok.Text() != s.text {
			t.Fatalf("sample #%d: expecting %s %q, got %s %q", i, s.rule, s.text, tok.Rule(), tok.Text())
		}
	}
}

func TestDeclarationOrderBreaksTies(t *testing.T) {
	c, e := ruledef.LoadString("", "m main .\nr alpha [a-z]+\nr beta [a-z]+\n")
	if e != nil {
		t.Fatal("unexpected error: " + e.Error())
	}

	tok := Match(c.Mode("main"), source.New("", []byte("word")), 0)
	if tok.Rule() != "alpha" || tok.Text() != "word" {
		t.Fatalf("expecting alpha %q, got %s %q", "word", tok.Rule(), tok.Text())
	}
}

func TestCodeRuleSubKind(t *testing.T) {
	mode := matchMode(t, "main")
	samples := []struct {
		src     string
		text    string
		subKind string
	}{
		{"@HV", "@HV", SubKindReserved},
		{"@OV(x)", "@OV", SubKindReserved},
		{"@Hello", "@Hello", ""},
		{"@HV.IN", "@HV.IN", ""},
	}

	for i, s := range samples {
		tok := Match(mode, source.New("", []byte(s.src)), 0)
		if tok == nil || tok.Rule() != "funcall" {
			t.Fatalf("sample #%d: expecting funcall, got %v", i, tok)
		}
		if tok.Text() != s.text || tok.SubKind() != s.subKind {
			t.Fatalf("sample #%d: expecting %q (%q), got %q (%q)", i, s.text, s.subKind, tok.Text(), tok.SubKind())
		}
	}
}

func TestSymbolicRulesNeverMatch(t *testing.T) {
	mode := matchMode(t, "main")
	tok := Match(mode, source.New("", []byte("-")), 0)
	if tok.Rule() != "minus" {
		t.Fatalf("expecting minus, got %s", tok.Rule())
	}
}

func TestErrorTokenCoversOneRune(t *testing.T) {
	mode := matchMode(t, "main")
	samples := []struct {
		src  string
		text string
		end  int
	}{
		{"&x", "&", 1},
		{"Ωx", "Ω", 2},
	}

	for i, s := range samples {
		tok := Match(mode, source.New("", []byte(s.src)), 0)
		if tok == nil || tok.Rule() != ErrorRuleName {
			t.Fatalf("sample #%d: expecting error token, got %v", i, tok)
		}
		if tok.Text() != s.text || tok.Start() != 0 || tok.End() != s.end {
			t.Fatalf("sample #%d: expecting %q [0:%d), got %q [%d:%d)", i, s.text, s.end, tok.Text(), tok.Start(), tok.End())
		}
	}
}

func TestLineAnchoredRules(t *testing.T) {
	mode := matchMode(t, "anchored")
	src := source.New("", []byte(":foo\n:bar :baz"))
	samples := []struct {
		pos  int
		rule string
		text string
	}{
		{0, "kw", ":foo"},
		{5, "kw", ":bar"},
		{10, "ref", ":baz"},
	}

	for i, s := range samples {
		tok := Match(mode, src, s.pos)
		if tok == nil || tok.Rule() != s.rule || tok.Text() != s.text {
			t.Fatalf("sample #%d: expecting %s %q, got %v", i, s.rule, s.text, tok)
		}
	}
}

func TestLineEndAnchor(t *testing.T) {
	mode := matchMode(t, "anchored")

	tok := Match(mode, source.New("", []byte("x\ny")), 0)
	if tok == nil || tok.Rule() != "eol" || tok.Text() != "x" {
		t.Fatalf("expecting eol %q, got %v", "x", tok)
	}

	tok = Match(mode, source.New("", []byte("xy")), 0)
	if tok == nil || tok.Rule() != ErrorRuleName {
		t.Fatalf("expecting error token mid-line, got %v", tok)
	}

	tok = Match(mode, source.New("", []byte("zx")), 1)
	if tok == nil || tok.Rule() != "eol" || tok.Text() != "x" {
		t.Fatalf("expecting eol %q at end of input, got %v", "x", tok)
	}
}

func TestMatchPastEnd(t *testing.T) {
	mode := matchMode(t, "main")
	src := source.New("", []byte("abc"))
	if tok := Match(mode, src, 3); tok != nil {
		t.Fatalf("expecting nil past the end, got %v", tok)
	}
	if tok := Match(mode, src, -1); tok != nil {
		t.Fatalf("expecting nil for negative pos, got %v", tok)
	}
}

func TestEmptyMatchDiscarded(t *testing.T) {
	c, e := ruledef.LoadString("", "m main .\nr opt a*\n")
	if e != nil {
		t.Fatal("unexpected error: " + e.Error())
	}

	tok := Match(c.Mode("main"), source.New("", []byte("b")), 0)
	if tok == nil || tok.Rule() != ErrorRuleName {
		t.Fatalf("expecting error token for empty match, got %v", tok)
	}
}

func TestTokenPositions(t *testing.T) {
	mode := matchMode(t, "main")
	src := source.New("pos.at", []byte("ab\n12"))

	tok := Match(mode, src, 3)
	if tok.Rule() != "number" || tok.Start() != 3 || tok.End() != 5 {
		t.Fatalf("unexpected token %s [%d:%d)", tok.Rule(), tok.Start(), tok.End())
	}
	if tok.SourceName() != "pos.at" || tok.Line() != 2 || tok.Col() != 1 {
		t.Fatalf("unexpected position %s %d:%d", tok.SourceName(), tok.Line(), tok.Col())
	}
}
