package dict

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrBadArtifact reports a binary dictionary artifact that cannot be
// decoded or fails validation. Loading never degrades to an empty
// dictionary; a broken artifact is always surfaced to the caller.
var ErrBadArtifact = errors.New("bad dictionary artifact")

const artifactVersion = 1

// artifact is the on-disk shape of the prebuilt dictionary.
type artifact struct {
	Version int
	Entries []Entry
}

// WriteGob serializes the dictionary into the binary artifact format.
func WriteGob(w io.Writer, d *Dictionary) error {
	a := artifact{Version: artifactVersion, Entries: make([]Entry, 0, len(d.entries))}
	for _, e := range d.entries {
		a.Entries = append(a.Entries, *e)
	}
	if err := gob.NewEncoder(w).Encode(a); err != nil {
		return fmt.Errorf("encode dictionary: %w", err)
	}
	return nil
}

// ReadGob loads a dictionary from a binary artifact, validating every
// entry.
func ReadGob(r io.Reader) (*Dictionary, error) {
	var a artifact
	if err := gob.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArtifact, err)
	}
	if a.Version != artifactVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrBadArtifact, a.Version, artifactVersion)
	}
	if len(a.Entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrBadArtifact)
	}
	d := New()
	for i := range a.Entries {
		if err := d.Add(&a.Entries[i]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadArtifact, err)
		}
	}
	return d, nil
}

// LoadFile loads a binary artifact from disk.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return ReadGob(f)
}
