// Package kanaruby annotates Japanese text with furigana. An Annotator
// combines a furigana dictionary, a morphological analyzer and a
// candidate-selection strategy into a single Annotate entry point whose
// output feeds the render package.
package kanaruby

import (
	"context"
	"fmt"
	"log/slog"

	"kanaruby/align"
	"kanaruby/dict"
	"kanaruby/kana"
	"kanaruby/model"
	"kanaruby/selector"
)

// Tokenizer is the external morphological analyzer boundary. Tokens must
// partition the input exactly, in order.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]model.Token, error)
}

// Annotator turns raw text into furigana-annotated documents. It holds
// only read-only state, so one Annotator may serve concurrent Annotate
// calls.
type Annotator struct {
	dict *dict.Dictionary
	tok  Tokenizer
	sel  selector.Strategy
	log  *slog.Logger
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithSelector replaces the default candidate-selection strategy.
func WithSelector(s selector.Strategy) Option {
	return func(a *Annotator) { a.sel = s }
}

// WithLogger sets the logger used for debug tracing of selection and
// fallback decisions.
func WithLogger(l *slog.Logger) Option {
	return func(a *Annotator) { a.log = l }
}

// New builds an Annotator over a loaded dictionary and tokenizer.
func New(d *dict.Dictionary, tok Tokenizer, opts ...Option) *Annotator {
	a := &Annotator{
		dict: d,
		tok:  tok,
		sel:  selector.Default(),
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Annotate tokenizes text and assembles the annotated document. Tokens
// without kanji pass through as plain segments without a dictionary
// query. For the rest, the dictionary result is narrowed by the selector
// and aligned onto the token's surface; when no entry applies, the
// analyzer's own pronunciation glosses the kanji span. The returned
// document covers the input exactly; a coverage failure is a defect and
// aborts the document.
func (a *Annotator) Annotate(ctx context.Context, text string) (model.Document, error) {
	if text == "" {
		return model.Document{}, nil
	}
	toks, err := a.tok.Tokenize(ctx, text)
	if err != nil {
		return model.Document{}, fmt.Errorf("tokenize: %w", err)
	}

	runes := []rune(text)
	var doc model.Document
	pos := 0
	for _, t := range toks {
		if err := ctx.Err(); err != nil {
			return model.Document{}, err
		}
		// Splice back any text the analyzer skipped (e.g. whitespace).
		if t.Start > pos && t.Start <= len(runes) {
			doc.Segments = append(doc.Segments, model.Segment{Base: string(runes[pos:t.Start])})
		}
		pos = t.End

		segs, err := a.annotateToken(t)
		if err != nil {
			return model.Document{}, fmt.Errorf("annotate %q: %w", t.Surface, err)
		}
		doc.Segments = append(doc.Segments, segs...)
	}
	if pos < len(runes) {
		doc.Segments = append(doc.Segments, model.Segment{Base: string(runes[pos:])})
	}

	if got := doc.Text(); got != text {
		return model.Document{}, fmt.Errorf("%w: document %q, input %q", align.ErrCoverage, got, text)
	}
	return doc, nil
}

func (a *Annotator) annotateToken(t model.Token) ([]model.Segment, error) {
	if !kana.ContainsKanji(t.Surface) {
		return []model.Segment{{Base: t.Surface}}, nil
	}

	reading := t.Reading
	if reading == "" {
		reading = t.Pronunciation
	}
	reading = kana.ToHiragana(reading)

	candidates := a.dict.Lookup(t.Surface)
	if e, ok := a.sel.Select(t.Surface, reading, candidates); ok {
		a.log.Debug("dictionary entry selected",
			"surface", t.Surface, "reading", e.Reading, "candidates", len(candidates))
		return align.Align(t.Surface, e)
	}
	if reading == "" {
		// Absent from the dictionary and the analyzer has no estimate:
		// nothing to gloss with.
		a.log.Debug("no reading available", "surface", t.Surface)
		return []model.Segment{{Base: t.Surface}}, nil
	}
	a.log.Debug("fallback alignment", "surface", t.Surface, "reading", reading)
	return align.Fallback(t.Surface, reading)
}
