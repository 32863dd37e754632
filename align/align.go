// Package align maps a whole-word reading onto the kanji and kana
// sub-spans of a surface text, producing annotated segments.
package align

import (
	"errors"
	"fmt"

	"kanaruby/dict"
	"kanaruby/kana"
	"kanaruby/model"
)

// ErrCoverage reports segments that fail to reconstruct their surface
// text. This is a defect in the aligner or its input data, never a
// condition to recover from.
var ErrCoverage = errors.New("segments do not reconstruct surface text")

// Align walks a dictionary entry's reading parts in order and emits one
// segment per part: plain for pure kana/other spans, furigana for spans
// containing kanji.
func Align(surface string, entry *dict.Entry) ([]model.Segment, error) {
	runes := []rune(surface)
	common := entry.TextCommon || entry.ReadingCommon
	segs := make([]model.Segment, 0, len(entry.Parts))
	for _, p := range entry.Parts {
		if p.Start < 0 || p.End > len(runes) || p.End <= p.Start {
			return nil, fmt.Errorf("%w: %q part %d-%d out of range", ErrCoverage, surface, p.Start, p.End)
		}
		base := string(runes[p.Start:p.End])
		if kana.ContainsKanji(base) {
			segs = append(segs, model.Segment{Base: base, Reading: p.Kana, Common: common})
		} else {
			segs = append(segs, model.Segment{Base: base})
		}
	}
	return checked(surface, segs)
}

// Fallback aligns a surface text against the analyzer's pronunciation
// when no dictionary entry matched. Leading and trailing kana runs that
// read as themselves (okurigana, fused particles) are split off as plain
// segments; the kanji middle receives the remaining reading as one
// furigana segment. A surface with no kanji middle left after trimming
// becomes a single plain segment.
func Fallback(surface, reading string) ([]model.Segment, error) {
	s := []rune(surface)
	r := []rune(kana.ToHiragana(reading))

	pre := 0
	for pre < len(s) && pre < len(r) &&
		kana.ClassOf(s[pre]) != kana.ClassKanji &&
		kana.RuneToHiragana(s[pre]) == r[pre] {
		pre++
	}
	suf := 0
	for suf < len(s)-pre && suf < len(r)-pre &&
		kana.ClassOf(s[len(s)-1-suf]) != kana.ClassKanji &&
		kana.RuneToHiragana(s[len(s)-1-suf]) == r[len(r)-1-suf] {
		suf++
	}

	mid := s[pre : len(s)-suf]
	midReading := string(r[pre : len(r)-suf])
	if len(mid) == 0 || midReading == "" {
		// Entirely kana, or the analyzer's segmentation left no reading
		// for the kanji middle. Never emit an empty gloss.
		return []model.Segment{{Base: surface}}, nil
	}

	var segs []model.Segment
	if pre > 0 {
		segs = append(segs, model.Segment{Base: string(s[:pre])})
	}
	segs = append(segs, model.Segment{Base: string(mid), Reading: midReading})
	if suf > 0 {
		segs = append(segs, model.Segment{Base: string(s[len(s)-suf:])})
	}
	return checked(surface, segs)
}

// checked enforces the coverage invariant: concatenated segment bases
// must equal the surface text exactly.
func checked(surface string, segs []model.Segment) ([]model.Segment, error) {
	got := ""
	for _, seg := range segs {
		got += seg.Base
	}
	if got != surface {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrCoverage, got, surface)
	}
	return segs, nil
}
