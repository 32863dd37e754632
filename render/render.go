// Package render serializes annotated documents into output formats.
// Rendering is a pure fold over the document; the same document and
// configuration always produce identical output.
package render

import (
	"errors"
	"fmt"
	"strings"

	"kanaruby/kana"
	"kanaruby/model"
)

// Format names an output format. The set is closed; anything else is a
// caller error.
type Format string

const (
	Markdown Format = "markdown"
	HTML     Format = "html"
	LaTeX    Format = "latex"
)

// ErrUnknownFormat reports a format outside the supported set. A wrong
// format is never silently substituted.
var ErrUnknownFormat = errors.New("unknown render format")

// Script selects the kana script readings are emitted in.
type Script int

const (
	Hiragana Script = iota
	Katakana
)

// Config controls rendering. GlossCommonWords keeps furigana on readings
// the dictionary marks as widely known; Script transliterates readings
// before emission.
type Config struct {
	GlossCommonWords bool
	Script           Script
}

type formatter interface {
	plain(b *strings.Builder, text string)
	ruby(b *strings.Builder, base, reading string)
}

// Render serializes doc in the given format. Furigana segments marked
// common render as plain text unless cfg.GlossCommonWords is set.
func Render(doc model.Document, f Format, cfg Config) (string, error) {
	var fm formatter
	switch f {
	case Markdown:
		fm = markdown{}
	case HTML:
		fm = html{}
	case LaTeX:
		fm = latex{}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	var b strings.Builder
	for _, seg := range doc.Segments {
		if seg.Plain() || (seg.Common && !cfg.GlossCommonWords) {
			fm.plain(&b, seg.Base)
			continue
		}
		reading := seg.Reading
		if cfg.Script == Katakana {
			reading = kana.ToKatakana(reading)
		}
		fm.ruby(&b, seg.Base, reading)
	}
	return b.String(), nil
}

// markdown emits [base]{reading} bracket notation, escaping the four
// syntactic characters of that notation.
type markdown struct{}

var markdownEsc = strings.NewReplacer("[", `\[`, "]", `\]`, "{", `\{`, "}", `\}`)

func (markdown) plain(b *strings.Builder, text string) {
	markdownEsc.WriteString(b, text)
}

func (markdown) ruby(b *strings.Builder, base, reading string) {
	b.WriteString("[")
	markdownEsc.WriteString(b, base)
	b.WriteString("]{")
	markdownEsc.WriteString(b, reading)
	b.WriteString("}")
}

// html emits <ruby> markup with <rp> parenthesis fallbacks.
type html struct{}

var htmlEsc = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func (html) plain(b *strings.Builder, text string) {
	htmlEsc.WriteString(b, text)
}

func (html) ruby(b *strings.Builder, base, reading string) {
	b.WriteString("<ruby>")
	htmlEsc.WriteString(b, base)
	b.WriteString("<rp>(</rp><rt>")
	htmlEsc.WriteString(b, reading)
	b.WriteString("</rt><rp>)</rp></ruby>")
}

// latex emits \ruby macro invocations (pxrubrica/okumacro style).
type latex struct{}

var latexEsc = strings.NewReplacer(`\`, `\textbackslash{}`, "{", `\{`, "}", `\}`)

func (latex) plain(b *strings.Builder, text string) {
	latexEsc.WriteString(b, text)
}

func (latex) ruby(b *strings.Builder, base, reading string) {
	b.WriteString(`\ruby{`)
	latexEsc.WriteString(b, base)
	b.WriteString("}{")
	latexEsc.WriteString(b, reading)
	b.WriteString("}")
}
