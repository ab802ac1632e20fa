// Package render draws scene snapshots onto a raster surface. The pipeline is
// stateless: it re-runs completely for every snapshot it is handed, in a fixed
// layer order (grid, routes, nodes, glyphs, labels, decorations) under the
// snapshot's pan/zoom transform.
package render

import "image/color"

// Config holds the fixed per-instance drawing parameters. Width and height
// are the raster surface size; resizing is not modeled.
type Config struct {
	Width  int
	Height int

	GridSpacing float64 // world units

	Background color.Color
	GridColor  color.Color

	EdgeColor      color.Color
	EdgeWidth      float64
	HighlightColor color.Color
	HighlightWidth float64

	BorderColor   color.Color
	SelectedColor color.Color
	HoverRing     color.Color

	LabelPlate  color.Color
	LabelText   color.Color
	LabelOffset float64 // world units below the node circle

	FontSize float64
}

// DefaultConfig returns the reference drawing parameters for a width×height
// surface.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:          width,
		Height:         height,
		GridSpacing:    50,
		Background:     color.RGBA{0x10, 0x14, 0x1a, 0xff},
		GridColor:      color.RGBA{0x26, 0x2c, 0x36, 0xff},
		EdgeColor:      color.RGBA{0x5c, 0x6b, 0x7a, 0xff},
		EdgeWidth:      1.5,
		HighlightColor: color.RGBA{0xff, 0xd5, 0x4f, 0xff},
		HighlightWidth: 3,
		BorderColor:    color.RGBA{0xe0, 0xe0, 0xe0, 0xff},
		SelectedColor:  color.RGBA{0xff, 0xff, 0xff, 0xff},
		HoverRing:      color.RGBA{0xff, 0xff, 0xff, 0x50},
		LabelPlate:     color.RGBA{0x1c, 0x23, 0x2e, 0xd0},
		LabelText:      color.RGBA{0xd8, 0xde, 0xe6, 0xff},
		LabelOffset:    6,
		FontSize:       12,
	}
}
