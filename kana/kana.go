// Package kana classifies Japanese graphemes and converts between the two
// kana scripts.
package kana

import "strings"

// Class is the grapheme class of a single rune.
type Class int

const (
	// ClassOther covers punctuation, Latin, digits and whitespace.
	ClassOther Class = iota
	// ClassKana covers hiragana and katakana, including the prolonged
	// sound mark and iteration marks.
	ClassKana
	// ClassKanji covers CJK ideographs plus the ideographic iteration
	// marks 々 and 〆.
	ClassKanji
)

// ClassOf classifies a single rune.
func ClassOf(r rune) Class {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF, // CJK unified ideographs
		r >= 0x3400 && r <= 0x4DBF, // extension A
		r >= 0xF900 && r <= 0xFAFF, // compatibility ideographs
		r == '々', r == '〆':
		return ClassKanji
	case r >= 0x3041 && r <= 0x3096, // hiragana
		r >= 0x309D && r <= 0x309E, // hiragana iteration marks
		r >= 0x30A1 && r <= 0x30FA, // katakana
		r >= 0x30FC && r <= 0x30FE: // prolonged sound mark, iteration marks
		return ClassKana
	default:
		return ClassOther
	}
}

// ContainsKanji reports whether any rune in s is a kanji grapheme.
func ContainsKanji(s string) bool {
	for _, r := range s {
		if ClassOf(r) == ClassKanji {
			return true
		}
	}
	return false
}

// ToHiragana converts katakana runes to hiragana, leaving everything else
// untouched. The prolonged sound mark ー has no hiragana counterpart and
// passes through.
func ToHiragana(s string) string {
	return strings.Map(RuneToHiragana, s)
}

// RuneToHiragana converts a single katakana rune to hiragana.
func RuneToHiragana(r rune) rune {
	switch {
	case r >= 0x30A1 && r <= 0x30F6:
		return r - 0x60
	case r == 0x30FD || r == 0x30FE: // ヽ ヾ
		return r - 0x60
	default:
		return r
	}
}

// ToKatakana converts hiragana runes to katakana, leaving everything else
// untouched. Total over the standard hiragana block, so
// ToHiragana(ToKatakana(s)) == s for hiragana input.
func ToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0x3041 && r <= 0x3096:
			return r + 0x60
		case r == 0x309D || r == 0x309E: // ゝ ゞ
			return r + 0x60
		default:
			return r
		}
	}, s)
}
