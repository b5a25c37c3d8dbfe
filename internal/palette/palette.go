// Package palette resolves the named colors a theme is built from.
package palette

import (
	"fmt"

	"github.com/AvengeMedia/dankgruvbox/internal/config"
)

type Palette struct {
	Bg, Bg0, Bg1, Bg2, Bg3, Bg4, Bg5, Bg6, Bg7, Bg8, Bg9 string

	Grey0, Grey1, Grey2 string

	Fg, Fg0, Fg1 string

	Red, Orange, Yellow, Green, Aqua, Blue, Purple string

	DimRed, DimOrange, DimYellow, DimGreen, DimAqua, DimBlue, DimPurple string

	Shadow string
}

// Color is one named palette entry.
type Color struct {
	Name string
	Hex  string
}

// AccentNames lists the accents in the order Accents returns them.
var AccentNames = []string{"red", "orange", "yellow", "green", "aqua", "blue", "purple"}

func (p Palette) Accents() []string {
	return []string{p.Red, p.Orange, p.Yellow, p.Green, p.Aqua, p.Blue, p.Purple}
}

func (p Palette) Dimmed() []string {
	return []string{p.DimRed, p.DimOrange, p.DimYellow, p.DimGreen, p.DimAqua, p.DimBlue, p.DimPurple}
}

// Named returns every color with its key, in a stable order.
func (p Palette) Named() []Color {
	return []Color{
		{"bg", p.Bg}, {"bg0", p.Bg0}, {"bg1", p.Bg1}, {"bg2", p.Bg2}, {"bg3", p.Bg3},
		{"bg4", p.Bg4}, {"bg5", p.Bg5}, {"bg6", p.Bg6}, {"bg7", p.Bg7}, {"bg8", p.Bg8}, {"bg9", p.Bg9},
		{"grey0", p.Grey0}, {"grey1", p.Grey1}, {"grey2", p.Grey2},
		{"fg", p.Fg}, {"fg0", p.Fg0}, {"fg1", p.Fg1},
		{"red", p.Red}, {"orange", p.Orange}, {"yellow", p.Yellow}, {"green", p.Green},
		{"aqua", p.Aqua}, {"blue", p.Blue}, {"purple", p.Purple},
		{"dimRed", p.DimRed}, {"dimOrange", p.DimOrange}, {"dimYellow", p.DimYellow}, {"dimGreen", p.DimGreen},
		{"dimAqua", p.DimAqua}, {"dimBlue", p.DimBlue}, {"dimPurple", p.DimPurple},
		{"shadow", p.Shadow},
	}
}

// Lookup maps an accent name, or the neutral names white and grey, to its color.
func (p Palette) Lookup(name string) (string, error) {
	switch name {
	case "white":
		return p.Fg, nil
	case "grey":
		return p.Grey1, nil
	}
	for i, accent := range AccentNames {
		if accent == name {
			return p.Accents()[i], nil
		}
	}
	return "", fmt.Errorf("%w: unknown palette color %q", config.ErrInvalidOption, name)
}

// Resolve builds the palette for one variant from the static tables.
// Every call returns a fresh value; the tables themselves are never handed out.
func Resolve(variant config.Variant, contrast config.Contrast, option config.PaletteOption) (Palette, error) {
	if _, err := config.ParseVariant(string(variant)); err != nil {
		return Palette{}, err
	}
	bg, ok := backgrounds[bgKey{variant, contrast}]
	if !ok {
		return Palette{}, fmt.Errorf("%w: contrast %q", config.ErrInvalidOption, string(contrast))
	}
	fg, ok := foregrounds[fgKey{variant, option}]
	if !ok {
		return Palette{}, fmt.Errorf("%w: palette %q", config.ErrInvalidOption, string(option))
	}

	return Palette{
		Bg: bg.Bg, Bg0: bg.Bg0, Bg1: bg.Bg1, Bg2: bg.Bg2, Bg3: bg.Bg3, Bg4: bg.Bg4,
		Bg5: bg.Bg5, Bg6: bg.Bg6, Bg7: bg.Bg7, Bg8: bg.Bg8, Bg9: bg.Bg9,
		Grey0: bg.Grey0, Grey1: bg.Grey1, Grey2: bg.Grey2,
		Fg: fg.Fg, Fg0: fg.Fg0, Fg1: fg.Fg1,
		Red: fg.Red, Orange: fg.Orange, Yellow: fg.Yellow, Green: fg.Green,
		Aqua: fg.Aqua, Blue: fg.Blue, Purple: fg.Purple,
		DimRed: fg.DimRed, DimOrange: fg.DimOrange, DimYellow: fg.DimYellow, DimGreen: fg.DimGreen,
		DimAqua: fg.DimAqua, DimBlue: fg.DimBlue, DimPurple: fg.DimPurple,
		Shadow: bg.Shadow,
	}, nil
}

// ForConfig resolves the palette cfg selects for variant.
func ForConfig(cfg config.Config, variant config.Variant) (Palette, error) {
	return Resolve(variant, cfg.Contrast(variant), cfg.Palette(variant))
}
