// Package lexer defines the match engine and the token stream.
package lexer

import (
	"github.com/kbaskett248/atlex/grammar"
	"github.com/kbaskett248/atlex/source"
)

// Match finds the rule match anchored at pos among the mode's rules.
// The longest match wins; equal spans go to the rule declared first.
// Returns a token of ErrorRuleName covering one rune if no rule matches,
// or nil if pos is past the end of the source.
//
// Match is stateless: the same catalog mode may be used by any number
// of goroutines over different sources.
func Match(mode *grammar.Mode, src *source.Source, pos int) *Token {
	content := src.Content()
	if pos < 0 || pos >= len(content) {
		return nil
	}

	rest := content[pos:]
	atLineStart := pos == 0 || content[pos-1] == '\n'

	best := -1
	bestLen := 0
	for i := range mode.Rules {
		l := matchRule(&mode.Rules[i], rest, atLineStart)
		if l > bestLen {
			best, bestLen = i, l
		}
	}

	if best < 0 {
		return ErrorToken(src, pos)
	}

	r := &mode.Rules[best]
	text := string(rest[:bestLen])
	subKind := ""
	if r.Kind == grammar.CodeRule && isKeyword(r.Keywords, text) {
		subKind = SubKindReserved
	}
	return NewToken(r.Name, subKind, text, src.SourcePos(pos))
}

// matchRule returns the length of the rule's match at the start of rest,
// or 0. Symbolic rules and empty matches never count.
func matchRule(r *grammar.Rule, rest []byte, atLineStart bool) int {
	switch r.Kind {
	case grammar.LiteralRule:
		if hasPrefix(rest, r.Pattern) {
			return len(r.Pattern)
		}

	case grammar.RegexRule, grammar.CodeRule:
		if r.LineAnchored && !atLineStart {
			return 0
		}
		m := r.Re.FindIndex(rest)
		if m != nil {
			return m[1]
		}
	}

	return 0
}

func hasPrefix(b []byte, s string) bool {
	return len(b) >= len(s) && string(b[:len(s)]) == s
}

func isKeyword(keywords []string, text string) bool {
	for _, kw := range keywords {
		if kw == text {
			return true
		}
	}
	return false
}
