package scene

import colorful "github.com/lucasb-eyer/go-colorful"

// NodeStyle is the visual treatment of one facility category.
type NodeStyle struct {
	Fill   colorful.Color
	Radius float64
	Glyph  rune
}

// StyleTable maps every category to a style. Lookups are total: a category
// with no entry falls back to the Unknown entry.
type StyleTable map[Category]NodeStyle

// DefaultStyles returns the built-in category palette.
func DefaultStyles() StyleTable {
	return StyleTable{
		Farm:             {Fill: mustHex("#4caf50"), Radius: 10, Glyph: 'F'},
		CollectionCenter: {Fill: mustHex("#ffb300"), Radius: 12, Glyph: 'C'},
		ProcessingPlant:  {Fill: mustHex("#1e88e5"), Radius: 16, Glyph: 'P'},
		Distributor:      {Fill: mustHex("#8e24aa"), Radius: 14, Glyph: 'D'},
		Retail:           {Fill: mustHex("#e53935"), Radius: 9, Glyph: 'R'},
		Unknown:          {Fill: mustHex("#9e9e9e"), Radius: 8, Glyph: '?'},
	}
}

// Style returns the style for a category, falling back to Unknown.
func (t StyleTable) Style(c Category) NodeStyle {
	if s, ok := t[c]; ok {
		return s
	}
	return t[Unknown]
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("scene: bad built-in color " + s)
	}
	return c
}
