package dict

import (
	"bytes"
	"encoding/gob"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Run("single-index spans", func(t *testing.T) {
		e, err := ParseLine("神隠し|かみかくし|0:かみ;1:かく")
		require.NoError(t, err)
		assert.Equal(t, "神隠し", e.Text)
		assert.Equal(t, "かみかくし", e.Reading)
		assert.Equal(t, []ReadingPart{
			{Start: 0, End: 1, Kana: "かみ"},
			{Start: 1, End: 2, Kana: "かく"},
			{Start: 2, End: 3, Kana: "し"}, // okurigana gap filled in
		}, e.Parts)
		assert.NoError(t, e.Validate())
	})

	t.Run("inclusive range span", func(t *testing.T) {
		e, err := ParseLine("頑張る|がんばる|0-1:がんば")
		require.NoError(t, err)
		assert.Equal(t, []ReadingPart{
			{Start: 0, End: 2, Kana: "がんば"},
			{Start: 2, End: 3, Kana: "る"},
		}, e.Parts)
		assert.NoError(t, e.Validate())
	})

	t.Run("interior okurigana", func(t *testing.T) {
		e, err := ParseLine("言い方|いいかた|0:い;2:かた")
		require.NoError(t, err)
		assert.Equal(t, []ReadingPart{
			{Start: 0, End: 1, Kana: "い"},
			{Start: 1, End: 2, Kana: "い"},
			{Start: 2, End: 3, Kana: "かた"},
		}, e.Parts)
		assert.NoError(t, e.Validate())
	})

	t.Run("malformed lines", func(t *testing.T) {
		for _, line := range []string{
			"",
			"神|かみ",
			"神|かみ|x:かみ",
			"神|かみ|0:",
			"神|かみ|1-0:かみ",
			"神隠し|かみかくし|1:かく;0:かみ", // out of order
			"神|かみ|0-5:かみ",         // span past surface end
		} {
			_, err := ParseLine(line)
			assert.ErrorIs(t, err, ErrMalformedEntry, "line %q", line)
		}
	})
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{"no parts", Entry{Text: "神", Reading: "かみ"}},
		{"gap", Entry{Text: "神隠し", Reading: "かみかくし", Parts: []ReadingPart{
			{Start: 0, End: 1, Kana: "かみ"},
			{Start: 2, End: 3, Kana: "し"},
		}}},
		{"short coverage", Entry{Text: "神隠し", Reading: "かみかくし", Parts: []ReadingPart{
			{Start: 0, End: 1, Kana: "かみかくし"},
		}}},
		{"reading mismatch", Entry{Text: "神", Reading: "かみ", Parts: []ReadingPart{
			{Start: 0, End: 1, Kana: "しん"},
		}}},
		{"zero-length part", Entry{Text: "神", Reading: "かみ", Parts: []ReadingPart{
			{Start: 0, End: 0, Kana: "かみ"},
			{Start: 0, End: 1, Kana: ""},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.entry.Validate(), ErrMalformedEntry)
		})
	}
}

func TestLookup(t *testing.T) {
	d, err := ReadText(strings.NewReader("神|かみ|0:かみ\n神|しん|0:しん\n光|ひかり|0:ひかり\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())

	entries := d.Lookup("神")
	require.Len(t, entries, 2)
	// homograph entries keep declaration order
	assert.Equal(t, "かみ", entries[0].Reading)
	assert.Equal(t, "しん", entries[1].Reading)

	assert.Empty(t, d.Lookup("水位"), "unknown surface is an empty result, not an error")
}

func TestReadTextRejectsMalformedLine(t *testing.T) {
	_, err := ReadText(strings.NewReader("神|かみ|0:かみ\nbogus\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEntry)
	assert.Contains(t, err.Error(), "line 2")
}

func TestGobRoundTrip(t *testing.T) {
	d, err := ReadText(strings.NewReader("神|かみ|0:かみ\n宮崎|みやざき|0:みや;1:ざき\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGob(&buf, d))

	got, err := ReadGob(&buf)
	require.NoError(t, err)
	assert.Equal(t, d.Len(), got.Len())

	entries := got.Lookup("宮崎")
	require.Len(t, entries, 1)
	assert.Equal(t, "みやざき", entries[0].Reading)
	assert.Equal(t, []ReadingPart{
		{Start: 0, End: 1, Kana: "みや"},
		{Start: 1, End: 2, Kana: "ざき"},
	}, entries[0].Parts)
}

func TestReadGobRejectsGarbage(t *testing.T) {
	_, err := ReadGob(bytes.NewReader([]byte("definitely not gob")))
	assert.ErrorIs(t, err, ErrBadArtifact)
}

func TestReadGobRejectsWrongVersion(t *testing.T) {
	var buf bytes.Buffer
	a := artifact{Version: artifactVersion + 1, Entries: []Entry{
		{Text: "神", Reading: "かみ", Parts: []ReadingPart{{Start: 0, End: 1, Kana: "かみ"}}},
	}}
	require.NoError(t, gob.NewEncoder(&buf).Encode(a))

	_, err := ReadGob(&buf)
	assert.ErrorIs(t, err, ErrBadArtifact)
}

func TestReadGobRejectsEmptyDictionary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(artifact{Version: artifactVersion}))

	_, err := ReadGob(&buf)
	assert.ErrorIs(t, err, ErrBadArtifact, "an empty dictionary must not load silently")
}

func TestReadGobRejectsInvalidEntry(t *testing.T) {
	var buf bytes.Buffer
	a := artifact{Version: artifactVersion, Entries: []Entry{
		{Text: "神", Reading: "かみ", Parts: []ReadingPart{{Start: 0, End: 1, Kana: "しん"}}},
	}}
	require.NoError(t, gob.NewEncoder(&buf).Encode(a))

	_, err := ReadGob(&buf)
	assert.ErrorIs(t, err, ErrBadArtifact)
}
