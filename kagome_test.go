package kanaruby

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanaruby/dict"
	"kanaruby/render"
	"kanaruby/tokenize"
)

// End-to-end through the real analyzer: tokenization, dictionary
// selection, okurigana trimming and rendering together.
func TestAnnotateWithKagome(t *testing.T) {
	d, err := dict.ReadText(strings.NewReader(fixtureDict))
	require.NoError(t, err)
	tok, err := tokenize.New(tokenize.IPA)
	require.NoError(t, err)
	a := New(d, tok)

	doc, err := a.Annotate(context.Background(), genesis)
	require.NoError(t, err)
	assert.Equal(t, genesis, doc.Text())

	out, err := render.Render(doc, render.Markdown, render.Config{GlossCommonWords: true})
	require.NoError(t, err)
	assert.Equal(t, "[神]{かみ}は「[光]{ひかり}あれ」と[言]{い}われた。すると[光]{ひかり}があった。", out)
}

func TestAnnotateWithKagomeUnknownWord(t *testing.T) {
	d, err := dict.ReadText(strings.NewReader(fixtureDict))
	require.NoError(t, err)
	tok, err := tokenize.New(tokenize.IPA)
	require.NoError(t, err)
	a := New(d, tok)

	// 水位 is not in the fixture dictionary; the analyzer's reading
	// still glosses it.
	doc, err := a.Annotate(context.Background(), "水位")
	require.NoError(t, err)
	require.Len(t, doc.Segments, 1)
	assert.Equal(t, "水位", doc.Segments[0].Base)
	assert.Equal(t, "すいい", doc.Segments[0].Reading)
}
