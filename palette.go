package wikisite

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"
)

// Palette size bounds.
const (
	MinPaletteSize = 2
	MaxPaletteSize = 8
)

// Palette is an ordered list of CSS color values.
type Palette []string

// DefaultPalette returns the stock dark palette.
func DefaultPalette() Palette {
	return Palette{"#0f172a", "#38bdf8", "#f1f5f9", "#94a3b8", "#1e293b"}
}

// Validate returns an error if the palette has the wrong size or blank entries.
func (p Palette) Validate() error {
	if len(p) < MinPaletteSize || len(p) > MaxPaletteSize {
		return Errorf(EINVALID, "palette must have between %d and %d colors, got %d", MinPaletteSize, MaxPaletteSize, len(p))
	}
	for i, c := range p {
		if strings.TrimSpace(c) == "" {
			return Errorf(EINVALID, "palette color %d is empty", i+1)
		}
	}
	return nil
}

// ColorRoles assigns palette slots to semantic roles.
type ColorRoles struct {
	Background          string
	Accent              string
	Text                string
	Muted               string
	SecondaryBackground string
}

// Roles maps the first five palette slots onto semantic roles. Missing slots
// fall back to fixed swatches; the secondary background reuses slot 0.
func (p Palette) Roles() ColorRoles {
	slot := func(i int, fallback string) string {
		if i < len(p) && p[i] != "" {
			return p[i]
		}
		return fallback
	}
	bg := slot(0, "#0f172a")
	return ColorRoles{
		Background:          bg,
		Accent:              slot(1, "#38bdf8"),
		Text:                slot(2, "#f1f5f9"),
		Muted:               slot(3, "#94a3b8"),
		SecondaryBackground: slot(4, bg),
	}
}

// ParsePalette imports a palette from a .json or .css file. On any error the
// caller's palette must be left untouched. Files yielding fewer than
// MinPaletteSize colors are rejected, because a Design needs at least two;
// a single-color JSON array parses with ParsePaletteJSON but fails here.
func ParsePalette(filename string, data []byte) (Palette, error) {
	var p Palette
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		p, err = ParsePaletteJSON(data)
	case ".css":
		p, err = ParsePaletteCSS(data)
	default:
		return nil, Errorf(EINVALID, "unsupported file type %q: upload a .json or .css file", filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	if len(p) < MinPaletteSize {
		return nil, Errorf(EINVALID, "palette needs at least %d colors, found %d", MinPaletteSize, len(p))
	}
	return p, nil
}

// ParsePaletteJSON parses a JSON array of hex color strings. Any entry that is
// not a '#'-prefixed string rejects the whole file. It keeps arrays of any
// length up to eight, including one; the two-color minimum is enforced by
// ParsePalette.
func ParsePaletteJSON(data []byte) (Palette, error) {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, Errorf(EINVALID, "invalid JSON format: expected an array of hex color strings")
	}
	p := make(Palette, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok || !strings.HasPrefix(s, "#") {
			return nil, Errorf(EINVALID, "invalid JSON format: expected an array of hex color strings")
		}
		p = append(p, s)
	}
	return truncate(p), nil
}

var cssColorRe = regexp.MustCompile(`(#[0-9a-fA-F]{3,8}|rgba?\([^)]+\)|hsla?\([^)]+\))`)

// ParsePaletteCSS collects hex, rgb(a) and hsl(a) literals from a stylesheet
// in document order.
func ParsePaletteCSS(data []byte) (Palette, error) {
	matches := cssColorRe.FindAllString(string(data), -1)
	if len(matches) == 0 {
		return nil, Errorf(EINVALID, "no colors found in the CSS file")
	}
	return truncate(Palette(matches)), nil
}

func truncate(p Palette) Palette {
	if len(p) > MaxPaletteSize {
		return p[:MaxPaletteSize]
	}
	return p
}
