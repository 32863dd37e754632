// Package tokenize wraps the kagome morphological analyzer, which
// supplies the token partition and reading estimates the annotator
// consumes.
package tokenize

import (
	"context"
	"fmt"
	"strings"

	kagomedict "github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"kanaruby/model"
)

// SysDict selects the kagome system dictionary.
type SysDict string

const (
	IPA SysDict = "ipa"
	Uni SysDict = "uni"
)

// Tokenizer produces model.Token partitions of input text.
type Tokenizer struct {
	kg *tokenizer.Tokenizer
}

// New builds a tokenizer backed by the given system dictionary.
func New(d SysDict) (*Tokenizer, error) {
	var sys *kagomedict.Dict
	switch d {
	case IPA:
		sys = ipa.Dict()
	case Uni:
		sys = uni.Dict()
	default:
		return nil, fmt.Errorf("unknown system dictionary %q", d)
	}
	kg, err := tokenizer.New(sys, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init tokenizer: %w", err)
	}
	return &Tokenizer{kg: kg}, nil
}

// Tokenize segments text into tokens with reading estimates. Tokens
// partition the input in order; Start and End are rune offsets.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]model.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	ktoks := t.kg.Tokenize(text)
	out := make([]model.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		base, _ := kt.BaseForm()
		if base == "" {
			base = kt.Surface
		}
		reading, ok := kt.Reading()
		if !ok {
			reading = ""
		}
		pron, ok := kt.Pronunciation()
		if !ok {
			pron = ""
		}
		out = append(out, model.Token{
			Surface:       kt.Surface,
			Start:         kt.Start,
			End:           kt.End,
			POS:           strings.Join(kt.POS(), ","),
			BaseForm:      base,
			Reading:       reading,
			Pronunciation: pron,
		})
	}
	return out, nil
}
