package model

import "strings"

// Token is one word unit produced by the morphological analyzer, carrying
// the analyzer's own reading estimate alongside the surface text.
// Start and End are rune offsets into the analyzed text.
type Token struct {
	Surface       string `json:"surface"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	POS           string `json:"pos,omitempty"`
	BaseForm      string `json:"base_form,omitempty"`
	Reading       string `json:"reading,omitempty"`
	Pronunciation string `json:"pronunciation,omitempty"`
}

// Segment is one unit of annotated output. A segment with an empty Reading
// is plain text; otherwise Base carries Reading as furigana. Common marks
// readings the dictionary considers widely known, so renderers can
// suppress them.
type Segment struct {
	Base    string `json:"base"`
	Reading string `json:"reading,omitempty"`
	Common  bool   `json:"common,omitempty"`
}

// Plain reports whether the segment carries no reading.
func (s Segment) Plain() bool { return s.Reading == "" }

// Document is the ordered segment sequence for one annotated input.
// Segments cover the input exactly once, in order, with no gaps or
// overlaps.
type Document struct {
	Segments []Segment `json:"segments"`
}

// Text returns the concatenated base text of all segments, which equals
// the original input the document was produced from.
func (d Document) Text() string {
	var b strings.Builder
	for _, s := range d.Segments {
		b.WriteString(s.Base)
	}
	return b.String()
}
