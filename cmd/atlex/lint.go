package main

import (
	"fmt"

	"github.com/kbaskett248/atlex/atlang"
	"github.com/kbaskett248/atlex/config"
	"github.com/kbaskett248/atlex/grammar"
	"github.com/kbaskett248/atlex/lexer"
	"github.com/kbaskett248/atlex/source"
)

// Diagnostic is one checker finding, printed as file:line:col: message.
type Diagnostic struct {
	File    string
	Line    int
	Col     int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Col, d.Message)
}

// newStream opens a token stream, attaching the AT mode-switch policy
// when the embedded grammar is in use. Custom grammars run without a
// policy; their mode switching is up to the library consumer.
func newStream(c *grammar.Catalog, startMode string, src *source.Source) (*lexer.Stream, error) {
	s, err := lexer.New(c, startMode, src)
	if err != nil {
		return nil, err
	}
	if c == atlang.Catalog() {
		s.SetPolicy(atlang.Policy())
	}
	return s, nil
}

// lintSource tokenizes one source and collects a diagnostic per error
// token, skipping to the next line after each one when the settings say
// so and stopping at the first one otherwise.
func lintSource(c *grammar.Catalog, cfg *config.Config, startMode string, src *source.Source) ([]Diagnostic, error) {
	s, err := newStream(c, startMode, src)
	if err != nil {
		return nil, err
	}

	var diags []Diagnostic
	for t := s.Next(); t != nil; t = s.Next() {
		if t.Rule() != lexer.ErrorRuleName {
			continue
		}

		diags = append(diags, Diagnostic{
			File:    src.Name(),
			Line:    t.Line(),
			Col:     t.Col(),
			Message: fmt.Sprintf("no rule matches %q in mode %s", t.Text(), s.Mode()),
		})
		if cfg.MaxErrors > 0 && len(diags) >= cfg.MaxErrors {
			break
		}
		if !cfg.Resync {
			break
		}
		s.Resync()
	}
	return diags, nil
}
