package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeOptions_Nil(t *testing.T) {
	opts := DecodeOptions(nil)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestDecodeOptions_MalformedJSON(t *testing.T) {
	for _, raw := range []string{"{not json", "[1,2,3", "tru"} {
		opts := DecodeOptions(raw)
		assert.Equal(t, DefaultOptions(), opts, "input %q should collapse to defaults", raw)
	}
}

func TestDecodeOptions_EmptyAndNullBlobs(t *testing.T) {
	assert.Equal(t, DefaultOptions(), DecodeOptions(""))
	assert.Equal(t, DefaultOptions(), DecodeOptions("  "))
	assert.Equal(t, DefaultOptions(), DecodeOptions("null"))
	assert.Equal(t, DefaultOptions(), DecodeOptions([]byte{}))
	assert.Equal(t, DefaultOptions(), DecodeOptions(json.RawMessage("null")))
}

func TestDecodeOptions_PartialObject(t *testing.T) {
	opts := DecodeOptions(`{"theme":"dark"}`)

	assert.Equal(t, "dark", opts.Theme)
	assert.Equal(t, DefaultColorTheme, opts.ColorTheme)
	assert.Equal(t, defaultColors(), opts.Colors)
	assert.Equal(t, DefaultFont, opts.Font)
}

func TestDecodeOptions_FullObject(t *testing.T) {
	opts := DecodeOptions(`{"theme":"modern","colorTheme":"dark","colors":["#111111","#222222"],"font":"mono"}`)

	assert.Equal(t, "modern", opts.Theme)
	assert.Equal(t, "dark", opts.ColorTheme)
	assert.Equal(t, []string{"#111111", "#222222"}, opts.Colors)
	assert.Equal(t, "mono", opts.Font)
}

func TestDecodeOptions_DoubleEncodedString(t *testing.T) {
	// Old rows stored the object re-encoded as a JSON string.
	doubled, err := json.Marshal(`{"theme":"modern","font":"mono"}`)
	assert.NoError(t, err)

	opts := DecodeOptions(doubled)

	assert.Equal(t, "modern", opts.Theme)
	assert.Equal(t, "mono", opts.Font)
	assert.Equal(t, DefaultColorTheme, opts.ColorTheme)
	assert.Equal(t, defaultColors(), opts.Colors)
}

func TestDecodeOptions_MapInput(t *testing.T) {
	opts := DecodeOptions(map[string]any{"theme": "modern", "colors": []string{"#ABCDEF"}})

	assert.Equal(t, "modern", opts.Theme)
	assert.Equal(t, []string{"#ABCDEF"}, opts.Colors)
	assert.Equal(t, DefaultFont, opts.Font)
}

func TestDecodeOptions_StructInput(t *testing.T) {
	opts := DecodeOptions(Options{Theme: "modern"})

	assert.Equal(t, "modern", opts.Theme)
	assert.Equal(t, DefaultColorTheme, opts.ColorTheme)

	var nilOpts *Options
	assert.Equal(t, DefaultOptions(), DecodeOptions(nilOpts))
}

func TestDecodeOptions_UnsupportedType(t *testing.T) {
	assert.Equal(t, DefaultOptions(), DecodeOptions(42))
}

func TestDecodeOptions_EmptyFieldsAreDefaulted(t *testing.T) {
	opts := DecodeOptions(`{"theme":"","colorTheme":"","colors":[],"font":""}`)
	assert.Equal(t, DefaultOptions(), opts)
}
