package atlang

import (
	"github.com/kbaskett248/atlex/lexer"
)

// Rule names the policy reacts to.
const (
	RuleKeyword   = "keyword"
	RuleHTKeyword = "ht_keyword"
	RuleMKeyword  = "mkeyword"
	RuleEqual     = "equal"
	RuleAttrEnd   = "attr_end"
	RuleValueEnd  = "value_end"
	RuleListOpen  = "list_open"
	RuleListClose = "list_close"
)

// Policy returns the reference mode-switch policy for AT sources.
//
// A keyword opens its attribute block, which runs to the end of the
// line; = inside it starts a value, also line-scoped. Braces nest
// list_member modes anywhere. Every switch is a push or pop, so a value
// ending in the magic dialect lands back in magic, not main.
func Policy() lexer.ModePolicy {
	return func(t *lexer.Token, s *lexer.Stream) {
		switch t.Rule() {
		case RuleKeyword, RuleHTKeyword, RuleMKeyword:
			if s.Mode() == ModeMain || s.Mode() == ModeMagic {
				_ = s.Push(ModeAttribute)
			}

		case RuleEqual:
			if s.Mode() == ModeAttribute {
				_ = s.Push(ModeValueAttribute)
			}

		case RuleAttrEnd:
			if s.Mode() == ModeAttribute {
				_ = s.Pop()
			}

		case RuleValueEnd:
			if s.Mode() == ModeValueAttribute {
				_ = s.Pop()
				if s.Mode() == ModeAttribute {
					_ = s.Pop()
				}
			}

		case RuleListOpen:
			_ = s.Push(ModeListMember)

		case RuleListClose:
			if s.Mode() == ModeListMember {
				_ = s.Pop()
			}
		}
	}
}
