/*
Package atlex is a mode-based lexical analysis engine for the AT report
language.

Consists of subpackages:
  - cmd/atlex: console utility dumping token streams, linting AT sources, and inspecting grammar descriptions;
  - grammar: defines the immutable rule catalog produced from a grammar description;
  - ruledef: converts a grammar description (line-oriented directive format) to a rule catalog;
  - lexer: match engine and token stream;
  - source: defines source text with line/column accounting;
  - atlang: the embedded AT grammar description and the reference mode-switch policy;
  - config: checker settings for per-project use.

Typical usage is:

1. Obtain a catalog, either the embedded AT one via atlang.Catalog or a
custom one via ruledef.Load. A catalog is immutable and may serve any
number of token streams concurrently.

2. Open a token stream for a source text, choosing a start mode; for AT
sources this is atlang.ModeMain, or atlang.ModeMagic for the alternate
dialect.

3. Pull tokens with Next, pushing and popping modes in response to
observed tokens. The engine never switches modes on its own; a reference
policy for AT lives in atlang.
*/
package atlex

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	RuleDefErrors = 1   // used by ruledef
	StreamErrors  = 101 // used by lexer token streams
)

// Error is the error type used by atlex subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
