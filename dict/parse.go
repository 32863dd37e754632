package dict

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLine parses one JmdictFurigana line of the form
//
//	surface|reading|start[-end]:kana;start[-end]:kana;...
//
// Span indices are inclusive rune indices into the surface text and only
// cover the kanji portions; the gaps between them are okurigana, which
// this parser fills in as reading parts glossed by the surface text
// itself, so that every entry covers its surface exactly.
func ParseLine(line string) (*Entry, error) {
	fields := strings.SplitN(line, "|", 3)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: %q: want surface|reading|spans", ErrMalformedEntry, line)
	}
	surface, reading, spans := fields[0], fields[1], fields[2]
	runes := []rune(surface)

	e := &Entry{Text: surface, Reading: reading}
	next := 0
	for _, f := range strings.Split(spans, ";") {
		if f == "" {
			continue
		}
		start, end, kana, err := parseSpan(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedEntry, line, err)
		}
		if start < next || end > len(runes) {
			return nil, fmt.Errorf("%w: %q: span %d-%d out of order", ErrMalformedEntry, line, start, end-1)
		}
		if start > next {
			// okurigana gap reads as itself
			e.Parts = append(e.Parts, ReadingPart{Start: next, End: start, Kana: string(runes[next:start])})
		}
		e.Parts = append(e.Parts, ReadingPart{Start: start, End: end, Kana: kana})
		next = end
	}
	if next < len(runes) {
		e.Parts = append(e.Parts, ReadingPart{Start: next, End: len(runes), Kana: string(runes[next:])})
	}
	return e, nil
}

// parseSpan parses "start[-end]:kana" with an inclusive end index,
// returning an exclusive end.
func parseSpan(f string) (start, end int, kana string, err error) {
	idx, kana, ok := strings.Cut(f, ":")
	if !ok || kana == "" {
		return 0, 0, "", fmt.Errorf("span %q: want index:kana", f)
	}
	lo, hi, ranged := strings.Cut(idx, "-")
	start, err = strconv.Atoi(lo)
	if err != nil || start < 0 {
		return 0, 0, "", fmt.Errorf("span %q: bad start index", f)
	}
	end = start
	if ranged {
		end, err = strconv.Atoi(hi)
		if err != nil || end < start {
			return 0, 0, "", fmt.Errorf("span %q: bad end index", f)
		}
	}
	return start, end + 1, kana, nil
}
