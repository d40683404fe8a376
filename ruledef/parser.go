package ruledef

import (
	"regexp"
	"strings"

	"github.com/kbaskett248/atlex/grammar"
	"github.com/kbaskett248/atlex/source"
)

const commands = "midlrcsx"

// LoadString parses a grammar description and returns a resolved catalog on success.
// Returns nil and *atlex.Error on error.
func LoadString(name, content string) (*grammar.Catalog, error) {
	return LoadBytes(name, []byte(content))
}

// LoadBytes parses a grammar description and returns a resolved catalog on success.
// Returns nil and *atlex.Error on error.
func LoadBytes(name string, content []byte) (*grammar.Catalog, error) {
	return Load(source.New(name, source.NormalizeNewlines(content)))
}

// Load parses a grammar description and returns a resolved catalog on success.
// Returns nil and *atlex.Error on error.
func Load(s *source.Source) (*grammar.Catalog, error) {
	c := newParseContext(s.Name())
	result, e := c.parse(s.Content())
	if e != nil {
		return nil, e
	}

	return resolve(result)
}

type directive struct {
	cmd  byte
	name string
	line int
	rule grammar.Rule
}

type modeDef struct {
	name       string
	directives []directive
	kinds      map[string]grammar.Kind
}

type parseResult struct {
	srcName   string
	modes     []*modeDef
	modeIndex map[string]*modeDef
	strip     []directive
	declared  map[string]struct{}
}

type parseContext struct {
	result  *parseResult
	current *modeDef
}

func newParseContext(srcName string) *parseContext {
	return &parseContext{
		result: &parseResult{
			srcName:   srcName,
			modeIndex: map[string]*modeDef{},
			declared:  map[string]struct{}{},
		},
	}
}

func (c *parseContext) parse(content []byte) (*parseResult, error) {
	lines := strings.Split(string(content), "\n")
	for i, raw := range lines {
		line := strings.Trim(raw, " \t\r")
		if line == "" || line[0] == '#' {
			continue
		}

		e := c.parseDirective(line, i+1)
		if e != nil {
			return nil, e
		}
	}

	return c.result, nil
}

func (c *parseContext) parseDirective(line string, lineNo int) error {
	src := c.result.srcName
	cmd, rest := splitField(line)
	if len(cmd) != 1 || !strings.Contains(commands, cmd) {
		return badCommandError(src, lineNo, cmd)
	}

	name, payload := splitField(rest)
	if name == "" {
		return noNameError(src, lineNo)
	}

	d := directive{cmd: cmd[0], name: name, line: lineNo}
	switch d.cmd {
	case 'm':
		if payload != "." {
			return badPayloadError(src, lineNo, d.cmd, `"."`)
		}
		c.openMode(name)
		return nil

	case 'i', 'd', 'x':
		if payload != "." {
			return badPayloadError(src, lineNo, d.cmd, `"."`)
		}

	case 's':
		if payload != "-" {
			return badPayloadError(src, lineNo, d.cmd, `"-"`)
		}
		d.rule = grammar.Rule{Name: name, Kind: grammar.SymbolicRule}

	case 'l':
		if payload == "" {
			return noPatternError(src, lineNo, name)
		}
		d.rule = grammar.Rule{Name: name, Kind: grammar.LiteralRule, Pattern: payload}

	case 'r':
		if payload == "" {
			return noPatternError(src, lineNo, name)
		}
		re, anchored, e := compilePattern(payload)
		if e != nil {
			return regexpError(src, lineNo, payload, e)
		}
		d.rule = grammar.Rule{Name: name, Kind: grammar.RegexRule, Pattern: payload, Re: re, LineAnchored: anchored}

	case 'c':
		if payload == "" {
			return noPatternError(src, lineNo, name)
		}
		fields := strings.Fields(payload)
		re, anchored, e := compilePattern(fields[0])
		if e != nil {
			return regexpError(src, lineNo, fields[0], e)
		}
		d.rule = grammar.Rule{
			Name:         name,
			Kind:         grammar.CodeRule,
			Pattern:      fields[0],
			Keywords:     fields[1:],
			Re:           re,
			LineAnchored: anchored,
		}
	}

	if c.current == nil {
		return noModeError(src, lineNo, d.cmd)
	}

	if d.cmd == 'x' {
		c.result.strip = append(c.result.strip, d)
		return nil
	}

	if d.cmd != 'i' && d.cmd != 'd' {
		was, declared := c.current.kinds[name]
		if declared && was != d.rule.Kind {
			return conflictError(src, lineNo, name, was.String(), d.rule.Kind.String())
		}
		c.current.kinds[name] = d.rule.Kind
		c.result.declared[name] = struct{}{}
	}

	c.current.directives = append(c.current.directives, d)
	return nil
}

func (c *parseContext) openMode(name string) {
	md := c.result.modeIndex[name]
	if md == nil {
		md = &modeDef{name: name, kinds: map[string]grammar.Kind{}}
		c.result.modes = append(c.result.modes, md)
		c.result.modeIndex[name] = md
	}
	c.current = md
}

// splitField cuts the first whitespace-delimited field off a line,
// returning the field and the rest with leading blanks removed.
func splitField(line string) (field, rest string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i:], " \t")
}

// compilePattern compiles a rule pattern for anchored matching at an
// arbitrary input position. Multi-line mode keeps ^ and $ bound to real
// line breaks; a leading ^ is stripped and reported separately, since a
// sliced input cannot tell the match position is mid-line.
func compilePattern(pattern string) (re *regexp.Regexp, lineAnchored bool, e error) {
	body := pattern
	lineAnchored = strings.HasPrefix(body, "^")
	if lineAnchored {
		body = body[1:]
	}

	re, e = regexp.Compile(`(?m)\A(?:` + body + `)`)
	return re, lineAnchored, e
}
