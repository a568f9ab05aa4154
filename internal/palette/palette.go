// Package palette holds the color model: named palettes, vibrancy floors,
// hue-driven color synthesis and blending.
package palette

import (
	"strings"

	"godforce-ca/pkg/core"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Built-in palette names.
const (
	Neon   = "neon"
	Sunset = "sunset"
	Ocean  = "ocean"
	Forest = "forest"
	Candy  = "candy"
)

// themeKeywords is checked in order; the first keyword found in a theme label
// selects its palette.
var themeKeywords = []string{Neon, Sunset, Ocean, Forest}

// Palette is a named, ordered list of colors.
type Palette struct {
	Name   string
	Colors []colorful.Color
}

// ParsePalette builds a Palette from hex strings such as "#FF00FF".
func ParsePalette(name string, hexes ...string) (Palette, error) {
	p := Palette{Name: name, Colors: make([]colorful.Color, 0, len(hexes))}
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, errors.Wrapf(err, "palette %s", name)
		}
		p.Colors = append(p.Colors, c)
	}
	if len(p.Colors) == 0 {
		return Palette{}, errors.Errorf("palette %s has no colors", name)
	}
	return p, nil
}

// Book stores palettes by name while remembering insertion order.
type Book struct {
	order    []string
	byName   map[string]Palette
	fallback string
}

// NewBook collects palettes. Unknown lookups resolve to the fallback palette,
// which defaults to the first palette when empty or missing.
func NewBook(fallback string, palettes ...Palette) *Book {
	b := &Book{byName: make(map[string]Palette, len(palettes))}
	for _, p := range palettes {
		if _, dup := b.byName[p.Name]; !dup {
			b.order = append(b.order, p.Name)
		}
		b.byName[p.Name] = p
	}
	b.fallback = fallback
	if _, ok := b.byName[fallback]; !ok && len(b.order) > 0 {
		b.fallback = b.order[0]
	}
	return b
}

// Default returns the five built-in palettes with candy as the fallback.
func Default() *Book {
	return NewBook(Candy,
		mustParse(Neon, "#FF00FF", "#00FFFF", "#FF8800", "#00FF00", "#FF0088", "#AAFF00"),
		mustParse(Sunset, "#FF9E00", "#FF5A00", "#FF0058", "#BC027F", "#7400B8", "#4B0082"),
		mustParse(Ocean, "#0077B6", "#00B4D8", "#48CAE4", "#90E0EF", "#00FFFF", "#06D6A0"),
		mustParse(Forest, "#2D6A4F", "#52B788", "#76C893", "#B5E48C", "#D9ED92", "#34A0A4"),
		mustParse(Candy, "#FF5E78", "#FF97B7", "#FFACC7", "#FF7DFF", "#B892FF", "#55C1FF"),
	)
}

func mustParse(name string, hexes ...string) Palette {
	p, err := ParsePalette(name, hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Names lists palette names in insertion order.
func (b *Book) Names() []string {
	return append([]string(nil), b.order...)
}

// Has reports whether a palette with the given name exists.
func (b *Book) Has(name string) bool {
	_, ok := b.byName[name]
	return ok
}

// Lookup returns the named palette or the fallback one.
func (b *Book) Lookup(name string) Palette {
	if p, ok := b.byName[name]; ok {
		return p
	}
	return b.byName[b.fallback]
}

// Random draws uniformly from the named palette.
func (b *Book) Random(name string, rng *core.RNG) colorful.Color {
	p := b.Lookup(name)
	if len(p.Colors) == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return p.Colors[rng.IntN(len(p.Colors))]
}

// ForTheme picks a palette name by keyword match against a free-text theme
// label. Labels with no known keyword map to candy.
func ForTheme(theme string) string {
	lower := strings.ToLower(theme)
	for _, kw := range themeKeywords {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	return Candy
}
