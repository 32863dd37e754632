package dict

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dictionary maps surface texts to their reading entries. It is built
// once, read-only afterwards, and safe for concurrent Lookup calls.
type Dictionary struct {
	entries []*Entry
	index   map[string][]*Entry
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{index: make(map[string][]*Entry)}
}

// Add validates an entry and inserts it. Entries for the same surface
// text keep their insertion order, which is the declaration order
// selectors use to break ties.
func (d *Dictionary) Add(e *Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	d.entries = append(d.entries, e)
	d.index[e.Text] = append(d.index[e.Text], e)
	return nil
}

// Lookup returns all entries for the given surface text, in declaration
// order. An unknown surface yields an empty result, not an error.
func (d *Dictionary) Lookup(surface string) []*Entry {
	return d.index[surface]
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// ReadText builds a dictionary from JmdictFurigana-format lines. Any
// malformed line is an error; use ParseLine directly for lenient
// ingestion.
func ReadText(r io.Reader) (*Dictionary, error) {
	d := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := d.Add(e); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary text: %w", err)
	}
	return d, nil
}
