package tokenize

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownSysDict(t *testing.T) {
	_, err := New(SysDict("mecab"))
	assert.Error(t, err)
}

func TestTokenizePartitionsInput(t *testing.T) {
	tok, err := New(IPA)
	require.NoError(t, err)

	const input = "神は光があった。"
	toks, err := tok.Tokenize(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, toks)

	var b strings.Builder
	for _, tk := range toks {
		b.WriteString(tk.Surface)
	}
	assert.Equal(t, input, b.String(), "token surfaces must partition the input")
}

func TestTokenizeReadings(t *testing.T) {
	tok, err := New(IPA)
	require.NoError(t, err)

	toks, err := tok.Tokenize(context.Background(), "神")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "神", toks[0].Surface)
	assert.Equal(t, "カミ", toks[0].Reading)
}

func TestTokenizeEmptyInput(t *testing.T) {
	tok, err := New(IPA)
	require.NoError(t, err)

	toks, err := tok.Tokenize(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestTokenizeCanceledContext(t *testing.T) {
	tok, err := New(IPA)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tok.Tokenize(ctx, "神")
	assert.ErrorIs(t, err, context.Canceled)
}
