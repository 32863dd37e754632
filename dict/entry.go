// Package dict implements the furigana dictionary: immutable reading
// entries keyed by surface text, loadable from the JmdictFurigana line
// format or from a prebuilt binary artifact.
package dict

import (
	"errors"
	"fmt"
)

// ErrMalformedEntry reports an entry that violates the reading-part
// invariants or a line that cannot be parsed.
var ErrMalformedEntry = errors.New("malformed dictionary entry")

// ReadingPart maps a contiguous rune span of an entry's surface text to
// the kana that reads it. End is exclusive. Parts over pure-kana spans
// carry the span itself as Kana.
type ReadingPart struct {
	Start int
	End   int
	Kana  string
}

// Entry is one attested reading of a surface text. A surface text may
// have several entries (homographs); entries are immutable once loaded.
type Entry struct {
	Text          string
	Reading       string
	TextCommon    bool
	ReadingCommon bool
	Parts         []ReadingPart
}

// Validate checks the reading-part invariants: parts are contiguous,
// non-overlapping, cover the surface text exactly, and their kana
// concatenates to the full reading.
func (e *Entry) Validate() error {
	if e.Text == "" {
		return fmt.Errorf("%w: empty surface text", ErrMalformedEntry)
	}
	if len(e.Parts) == 0 {
		return fmt.Errorf("%w: %q has no reading parts", ErrMalformedEntry, e.Text)
	}
	n := len([]rune(e.Text))
	next := 0
	kana := ""
	for _, p := range e.Parts {
		if p.Start != next || p.End <= p.Start {
			return fmt.Errorf("%w: %q part span %d-%d breaks contiguity at %d",
				ErrMalformedEntry, e.Text, p.Start, p.End, next)
		}
		if p.Kana == "" {
			return fmt.Errorf("%w: %q part %d-%d has empty kana",
				ErrMalformedEntry, e.Text, p.Start, p.End)
		}
		next = p.End
		kana += p.Kana
	}
	if next != n {
		return fmt.Errorf("%w: %q parts cover %d of %d runes",
			ErrMalformedEntry, e.Text, next, n)
	}
	if kana != e.Reading {
		return fmt.Errorf("%w: %q parts read %q, want %q",
			ErrMalformedEntry, e.Text, kana, e.Reading)
	}
	return nil
}
