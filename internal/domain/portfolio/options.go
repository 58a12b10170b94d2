package portfolio

import (
	"bytes"
	"encoding/json"
)

// Options is the decoded theme configuration. Persisted as an opaque JSON
// blob; only these four logical fields are recognized.
type Options struct {
	Theme      string   `json:"theme"`
	ColorTheme string   `json:"colorTheme"`
	Colors     []string `json:"colors"`
	Font       string   `json:"font"`
}

const (
	DefaultTheme      = "minimal"
	DefaultColorTheme = "light"
	DefaultFont       = "inter"
)

func defaultColors() []string {
	return []string{"#FFFFFF", "#F5F5F5", "#E5E5E5", "#000000", "#3B82F6"}
}

func DefaultOptions() Options {
	return Options{
		Theme:      DefaultTheme,
		ColorTheme: DefaultColorTheme,
		Colors:     defaultColors(),
		Font:       DefaultFont,
	}
}

// DecodeOptions turns whatever the options column holds into a fully
// populated Options value. It accepts a decoded object, a JSON blob, a
// stringified JSON blob, or nothing at all, and never fails: malformed input
// collapses to the defaults, missing fields are defaulted individually.
func DecodeOptions(raw any) Options {
	switch v := raw.(type) {
	case nil:
		return DefaultOptions()
	case Options:
		return withDefaults(v)
	case *Options:
		if v == nil {
			return DefaultOptions()
		}
		return withDefaults(*v)
	case string:
		return decodeJSON([]byte(v))
	case []byte:
		return decodeJSON(v)
	case json.RawMessage:
		return decodeJSON(v)
	case map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return DefaultOptions()
		}
		return decodeJSON(b)
	default:
		return DefaultOptions()
	}
}

func decodeJSON(b []byte) Options {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return DefaultOptions()
	}

	// Historical rows were double-encoded: a JSON string whose content is
	// itself the options object.
	if b[0] == '"' {
		var inner string
		if err := json.Unmarshal(b, &inner); err != nil {
			return DefaultOptions()
		}
		return decodeJSON([]byte(inner))
	}

	var payload struct {
		Theme      *string  `json:"theme"`
		ColorTheme *string  `json:"colorTheme"`
		Colors     []string `json:"colors"`
		Font       *string  `json:"font"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return DefaultOptions()
	}

	opts := Options{Colors: payload.Colors}
	if payload.Theme != nil {
		opts.Theme = *payload.Theme
	}
	if payload.ColorTheme != nil {
		opts.ColorTheme = *payload.ColorTheme
	}
	if payload.Font != nil {
		opts.Font = *payload.Font
	}
	return withDefaults(opts)
}

func withDefaults(o Options) Options {
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.ColorTheme == "" {
		o.ColorTheme = DefaultColorTheme
	}
	if len(o.Colors) == 0 {
		o.Colors = defaultColors()
	}
	if o.Font == "" {
		o.Font = DefaultFont
	}
	return o
}
