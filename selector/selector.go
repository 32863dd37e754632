// Package selector decides which dictionary entry, if any, matches what
// the analyzer actually heard for a surface text.
package selector

import (
	"kanaruby/dict"
	"kanaruby/kana"
)

// Strategy picks the best entry for a surface+reading pair. The second
// return is false when no candidate applies and the caller should fall
// back to the analyzer's own pronunciation. Implementations are pure:
// the same inputs always yield the same output.
type Strategy interface {
	Select(surface, analyzerReading string, candidates []*dict.Entry) (*dict.Entry, bool)
}

// Exact accepts only an entry whose reading equals the analyzer's,
// comparing in hiragana since the analyzer and dictionary may use
// different kana scripts.
type Exact struct{}

func (Exact) Select(_, analyzerReading string, candidates []*dict.Entry) (*dict.Entry, bool) {
	want := kana.ToHiragana(analyzerReading)
	if want == "" {
		return nil, false
	}
	for _, e := range candidates {
		if kana.ToHiragana(e.Reading) == want {
			return e, true
		}
	}
	return nil, false
}

// Nearest accepts an exact reading match when one exists, and otherwise
// the candidate whose reading is closest to the analyzer's under rune
// edit distance, ties broken by dictionary declaration order. With no
// analyzer reading it keeps the first candidate, which is still a
// dictionary-attested reading. It never fabricates a reading.
type Nearest struct{}

func (Nearest) Select(surface, analyzerReading string, candidates []*dict.Entry) (*dict.Entry, bool) {
	if len(candidates) == 0 {
		return nil, false
	}
	if e, ok := (Exact{}).Select(surface, analyzerReading, candidates); ok {
		return e, true
	}
	if analyzerReading == "" {
		return candidates[0], true
	}
	want := kana.ToHiragana(analyzerReading)
	best := candidates[0]
	bestDist := kana.Distance(kana.ToHiragana(best.Reading), want)
	for _, e := range candidates[1:] {
		if d := kana.Distance(kana.ToHiragana(e.Reading), want); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, true
}

// Default is the strategy the annotator uses unless configured
// otherwise.
func Default() Strategy { return Nearest{} }
