// Package atlang carries the lexical grammar of the AT report language
// and the reference mode-switch policy for it.
package atlang

import (
	_ "embed"
	"sync"

	"github.com/kbaskett248/atlex/grammar"
	"github.com/kbaskett248/atlex/lexer"
	"github.com/kbaskett248/atlex/ruledef"
	"github.com/kbaskett248/atlex/source"
)

// DescriptionName is the source name the embedded description is loaded
// under; it appears in positions of load errors and catalog dumps.
const DescriptionName = "at.rules"

// Modes of the AT grammar. ModeMain and ModeMagic are the two start
// modes; the others are entered in response to tokens.
const (
	ModeGeneral        = "general"
	ModeMain           = "main"
	ModeAttribute      = "attribute"
	ModeValueAttribute = "value_attribute"
	ModeMagic          = "magic"
	ModeListMember     = "list_member"
)

//go:embed at.rules
var description []byte

var (
	loadOnce sync.Once
	catalog  *grammar.Catalog
)

// Description returns the embedded grammar description text.
func Description() []byte {
	return description
}

// Catalog returns the catalog of the embedded AT grammar. The catalog
// is loaded once and shared; it panics only if the embedded description
// itself is broken.
func Catalog() *grammar.Catalog {
	loadOnce.Do(func() {
		c, e := ruledef.LoadBytes(DescriptionName, description)
		if e != nil {
			panic("atlang: cannot load embedded grammar: " + e.Error())
		}
		catalog = c
	})
	return catalog
}

// NewStream opens a token stream over src with the reference policy
// attached. An empty startMode selects ModeMain.
func NewStream(src *source.Source, startMode string) (*lexer.Stream, error) {
	if startMode == "" {
		startMode = ModeMain
	}
	s, e := lexer.New(Catalog(), startMode, src)
	if e != nil {
		return nil, e
	}

	s.SetPolicy(Policy())
	return s, nil
}
