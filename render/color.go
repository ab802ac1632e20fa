package render

import colorful "github.com/lucasb-eyer/go-colorful"

// lighten shifts every channel of c up by amt (0..1), clamped to the valid
// range. Used for the bright center of the node gradient.
func lighten(c colorful.Color, amt float64) colorful.Color {
	return colorful.Color{
		R: clamp01(c.R + amt),
		G: clamp01(c.G + amt),
		B: clamp01(c.B + amt),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
