package ruledef

import (
	"github.com/kbaskett248/atlex/grammar"
)

func resolve(pr *parseResult) (*grammar.Catalog, error) {
	rs := &resolver{
		pr:         pr,
		resolved:   map[string][]grammar.Rule{},
		inProgress: map[string]struct{}{},
	}

	modes := make([]grammar.Mode, 0, len(pr.modes))
	for _, md := range pr.modes {
		rules, e := rs.modeRules(md.name, 0)
		if e != nil {
			return nil, e
		}
		modes = append(modes, grammar.Mode{Name: md.name, Rules: rules})
	}

	drop := make([]string, 0, len(pr.strip))
	seen := map[string]struct{}{}
	for _, d := range pr.strip {
		if _, declared := pr.declared[d.name]; !declared {
			return nil, unknownRuleError(pr.srcName, d.line, d.name)
		}
		if _, dup := seen[d.name]; dup {
			continue
		}
		seen[d.name] = struct{}{}
		drop = append(drop, d.name)
	}

	return grammar.New(modes, drop), nil
}

type resolver struct {
	pr         *parseResult
	resolved   map[string][]grammar.Rule
	inProgress map[string]struct{}
	chain      []string
}

// modeRules replays a mode's directives into its effective rule list.
// Lists are memoized, so every mode is replayed at most once per load.
func (rs *resolver) modeRules(name string, atLine int) ([]grammar.Rule, error) {
	rules, done := rs.resolved[name]
	if done {
		return rules, nil
	}
	if _, busy := rs.inProgress[name]; busy {
		chain := append(append([]string{}, rs.chain...), name)
		return nil, cycleError(rs.pr.srcName, atLine, chain)
	}

	md := rs.pr.modeIndex[name]
	if md == nil {
		return nil, unknownModeError(rs.pr.srcName, atLine, name)
	}

	rs.inProgress[name] = struct{}{}
	rs.chain = append(rs.chain, name)

	list := newRuleList()
	for _, d := range md.directives {
		switch d.cmd {
		case 'i':
			included, e := rs.modeRules(d.name, d.line)
			if e != nil {
				return nil, e
			}
			for _, r := range included {
				list.put(r)
			}

		case 'd':
			list.del(d.name)

		default:
			list.put(d.rule)
		}
	}

	delete(rs.inProgress, name)
	rs.chain = rs.chain[:len(rs.chain)-1]
	rs.resolved[name] = list.rules
	return list.rules, nil
}

// ruleList keeps replay order with the replace-in-place law: a rule put
// under a name already present overwrites that entry, keeping the
// position of the first occurrence.
type ruleList struct {
	rules []grammar.Rule
	index map[string]int
}

func newRuleList() *ruleList {
	return &ruleList{index: map[string]int{}}
}

func (l *ruleList) put(r grammar.Rule) {
	i, found := l.index[r.Name]
	if found {
		l.rules[i] = r
		return
	}

	l.index[r.Name] = len(l.rules)
	l.rules = append(l.rules, r)
}

func (l *ruleList) del(name string) {
	i, found := l.index[name]
	if !found {
		return
	}

	l.rules = append(l.rules[:i], l.rules[i+1:]...)
	delete(l.index, name)
	for n, j := range l.index {
		if j > i {
			l.index[n] = j - 1
		}
	}
}
