package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kbaskett248/atlex/lexer"
)

// tokenRecord is the JSON shape of one dumped token.
type tokenRecord struct {
	Rule    string `json:"rule"`
	SubKind string `json:"sub_kind,omitempty"`
	Text    string `json:"text"`
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Dropped bool   `json:"dropped,omitempty"`
}

func record(t *lexer.Token, dropped bool) tokenRecord {
	return tokenRecord{
		Rule:    t.Rule(),
		SubKind: t.SubKind(),
		Text:    t.Text(),
		Line:    t.Line(),
		Col:     t.Col(),
		Start:   t.Start(),
		End:     t.End(),
		Dropped: dropped,
	}
}

// dumpTokens writes every token of the stream to w, resyncing past
// error tokens so the whole source is covered. With includeDropped set,
// stripped tokens appear in stream order. Returns the number of error
// tokens seen.
func dumpTokens(w io.Writer, s *lexer.Stream, includeDropped, asJSON bool) (int, error) {
	var writeErr error
	emit := func(t *lexer.Token, dropped bool) {
		if writeErr != nil {
			return
		}
		if asJSON {
			data, err := json.Marshal(record(t, dropped))
			if err != nil {
				writeErr = err
				return
			}
			_, writeErr = fmt.Fprintln(w, string(data))
			return
		}

		mark := ""
		if dropped {
			mark = " (dropped)"
		}
		if t.SubKind() != "" {
			mark += " (" + t.SubKind() + ")"
		}
		_, writeErr = fmt.Fprintf(w, "%d:%d\t%s\t%q%s\n", t.Line(), t.Col(), t.Rule(), t.Text(), mark)
	}

	if includeDropped {
		s.OnDrop(func(t *lexer.Token) { emit(t, true) })
	}

	errors := 0
	for t := s.Next(); t != nil; t = s.Next() {
		emit(t, false)
		if t.Rule() == lexer.ErrorRuleName {
			errors++
			s.Resync()
		}
	}
	return errors, writeErr
}
