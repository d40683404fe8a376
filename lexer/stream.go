package lexer

import (
	"github.com/kbaskett248/atlex"
	"github.com/kbaskett248/atlex/grammar"
	"github.com/kbaskett248/atlex/source"
)

// DefaultMode is the mode a stream starts in when no start mode is given.
const DefaultMode = "main"

// State describes what a stream will do on the next Next call.
type State int

const (
	// Scanning: the stream has input left and will try to match it.
	Scanning State = iota

	// AtEOF: the terminal token has been produced, Next returns nil.
	AtEOF

	// Errored: the last token was an error token; Next returns nil
	// until the caller calls Resume or Resync.
	Errored
)

// Error codes used by token streams:
const (
	// UnknownModeError indicates a mode name the catalog does not contain.
	UnknownModeError = atlex.StreamErrors + iota

	// ModeStackError indicates an attempt to pop the last mode.
	ModeStackError
)

func unknownModeError(name string) *atlex.Error {
	return atlex.FormatError(UnknownModeError, "mode %q is not in the catalog", name)
}

func modeStackError() *atlex.Error {
	return atlex.FormatError(ModeStackError, "cannot pop the last mode")
}

// ModePolicy observes each visible matched token before Next returns it
// and may push or pop stream modes in response. The engine itself never
// switches modes.
type ModePolicy func(t *Token, s *Stream)

// Stream pulls tokens off a single source under a mode stack. A stream
// must be used by one goroutine; the catalog it reads is immutable and
// may back any number of streams.
type Stream struct {
	catalog  *grammar.Catalog
	src      *source.Source
	pos      int
	modes    []*grammar.Mode
	state    State
	policy   ModePolicy
	dropHook func(t *Token)
}

// New creates a token stream over src starting in startMode, or in
// DefaultMode if startMode is empty.
func New(c *grammar.Catalog, startMode string, src *source.Source) (*Stream, error) {
	if startMode == "" {
		startMode = DefaultMode
	}
	mode := c.Mode(startMode)
	if mode == nil {
		return nil, unknownModeError(startMode)
	}

	return &Stream{catalog: c, src: src, modes: []*grammar.Mode{mode}}, nil
}

// SetPolicy installs the mode-switch policy. A nil policy leaves all
// mode switching to explicit Push and Pop calls.
func (s *Stream) SetPolicy(p ModePolicy) {
	s.policy = p
}

// OnDrop installs an observer for tokens consumed because their rule is
// in the catalog drop set. Dropped tokens are never returned by Next.
func (s *Stream) OnDrop(h func(t *Token)) {
	s.dropHook = h
}

func (s *Stream) Source() *source.Source {
	return s.src
}

// Pos returns the byte offset the next match attempt starts at.
func (s *Stream) Pos() int {
	return s.pos
}

func (s *Stream) State() State {
	return s.state
}

// Mode returns the name of the active mode.
func (s *Stream) Mode() string {
	return s.modes[len(s.modes)-1].Name
}

// Depth returns the mode stack depth.
func (s *Stream) Depth() int {
	return len(s.modes)
}

// Push makes the named mode active.
func (s *Stream) Push(name string) error {
	mode := s.catalog.Mode(name)
	if mode == nil {
		return unknownModeError(name)
	}

	s.modes = append(s.modes, mode)
	return nil
}

// Pop restores the mode that was active before the matching Push. The
// start mode cannot be popped.
func (s *Stream) Pop() error {
	if len(s.modes) <= 1 {
		return modeStackError()
	}

	s.modes[len(s.modes)-1] = nil
	s.modes = s.modes[:len(s.modes)-1]
	return nil
}

// Resume leaves the Errored state, continuing right after the error
// token's span.
func (s *Stream) Resume() {
	if s.state == Errored {
		s.state = Scanning
	}
}

// Resync skips the rest of the current line and leaves the Errored
// state. Skipping past the last line stops just short of EOF, so the
// terminal token is still produced by Next.
func (s *Stream) Resync() {
	if s.state == AtEOF {
		return
	}

	s.pos = s.src.NextLineStart(s.pos)
	s.state = Scanning
}

// Next returns the next visible token.
//
// Tokens of dropped rules are consumed silently. When no rule matches,
// Next returns a one-rune token of ErrorRuleName and the stream goes to
// Errored; the caller decides whether to Resume, Resync, or stop. At the
// end of input Next returns the EofToken exactly once and nil forever
// after.
func (s *Stream) Next() *Token {
	for {
		if s.state != Scanning {
			return nil
		}

		if s.pos >= s.src.Len() {
			s.state = AtEOF
			return EofToken(s.src)
		}

		t := Match(s.modes[len(s.modes)-1], s.src, s.pos)
		s.pos = t.End()

		if t.Rule() == ErrorRuleName {
			s.state = Errored
			return t
		}

		if s.catalog.Dropped(t.Rule()) {
			if s.dropHook != nil {
				s.dropHook(t)
			}
			continue
		}

		if s.policy != nil {
			s.policy(t, s)
		}
		return t
	}
}
