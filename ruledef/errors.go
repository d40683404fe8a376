package ruledef

import (
	"strings"

	"github.com/kbaskett248/atlex"
)

// Error codes used by ruledef:
const (
	// StructuralError indicates a line that is not a valid directive or a directive outside any mode.
	StructuralError = atlex.RuleDefErrors + iota

	// MalformedRuleError indicates a directive with a missing or invalid payload.
	MalformedRuleError

	// ConflictingKindError indicates an identifier declared with two different kinds within one mode.
	ConflictingKindError

	// CyclicIncludeError indicates a mode that includes itself, directly or through other modes.
	CyclicIncludeError

	// UnknownModeError indicates an include of an undeclared mode.
	UnknownModeError

	// UnknownRuleError indicates a strip directive for an identifier no mode declares.
	UnknownRuleError
)

func lineError(code int, name string, line int, msg string, params ...any) *atlex.Error {
	return atlex.FormatErrorPos(linePos{name, line}, code, msg, params...)
}

type linePos struct {
	name string
	line int
}

func (p linePos) SourceName() string { return p.name }
func (p linePos) Line() int          { return p.line }
func (p linePos) Col() int           { return 1 }

func noModeError(src string, line int, cmd byte) *atlex.Error {
	return lineError(StructuralError, src, line, "%q directive outside any mode", string(cmd))
}

func badCommandError(src string, line int, cmd string) *atlex.Error {
	return lineError(StructuralError, src, line, "unknown command %q", cmd)
}

func noNameError(src string, line int) *atlex.Error {
	return lineError(MalformedRuleError, src, line, "directive is missing an identifier")
}

func badPayloadError(src string, line int, cmd byte, want string) *atlex.Error {
	return lineError(MalformedRuleError, src, line, "%q directive payload must be %s", string(cmd), want)
}

func noPatternError(src string, line int, name string) *atlex.Error {
	return lineError(MalformedRuleError, src, line, "rule %q has an empty pattern", name)
}

func regexpError(src string, line int, pattern string, e error) *atlex.Error {
	return lineError(MalformedRuleError, src, line, "incorrect RegExp /%s/ (%s)", pattern, e.Error())
}

func conflictError(src string, line int, name string, was, now string) *atlex.Error {
	return lineError(ConflictingKindError, src, line, "rule %q redeclared as %s, was %s", name, now, was)
}

func cycleError(src string, line int, chain []string) *atlex.Error {
	return lineError(CyclicIncludeError, src, line, "cyclic include: "+strings.Join(chain, " -> "))
}

func unknownModeError(src string, line int, name string) *atlex.Error {
	return lineError(UnknownModeError, src, line, "mode %q is not declared", name)
}

func unknownRuleError(src string, line int, name string) *atlex.Error {
	return lineError(UnknownRuleError, src, line, "cannot strip undeclared rule %q", name)
}
