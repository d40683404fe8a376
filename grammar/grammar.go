package grammar

import (
	"regexp"
)

type Kind int

const (
	LiteralRule Kind = iota
	RegexRule
	CodeRule
	SymbolicRule
)

var kindNames = [...]string{"literal", "regex", "code", "symbolic"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

type Rule struct {
	Name     string
	Kind     Kind
	Pattern  string
	Keywords []string

	// Re is the compiled form of Pattern for regex and code rules.
	Re *regexp.Regexp

	// LineAnchored limits the rule to positions following a line break.
	LineAnchored bool
}

type Mode struct {
	Name  string
	Rules []Rule
}

type Catalog struct {
	Modes []Mode
	Drop  []string

	modeIndex map[string]int
	dropSet   map[string]struct{}
}

// New builds an immutable catalog from resolved modes and the global
// drop list. The argument slices must not be modified afterwards.
func New(modes []Mode, drop []string) *Catalog {
	c := &Catalog{
		Modes:     modes,
		Drop:      drop,
		modeIndex: make(map[string]int, len(modes)),
		dropSet:   make(map[string]struct{}, len(drop)),
	}
	for i := range modes {
		c.modeIndex[modes[i].Name] = i
	}
	for _, name := range drop {
		c.dropSet[name] = struct{}{}
	}
	return c
}

// Mode returns the named mode or nil.
func (c *Catalog) Mode(name string) *Mode {
	i, found := c.modeIndex[name]
	if !found {
		return nil
	}
	return &c.Modes[i]
}

func (c *Catalog) ModeNames() []string {
	names := make([]string, len(c.Modes))
	for i := range c.Modes {
		names[i] = c.Modes[i].Name
	}
	return names
}

// Dropped reports whether tokens of the named rule are stripped from
// token streams.
func (c *Catalog) Dropped(name string) bool {
	_, found := c.dropSet[name]
	return found
}
