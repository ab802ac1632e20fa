// Package geo maps geographic coordinates onto the world-space rectangle the
// rest of chainviz draws in.
package geo

import (
	"math"
	"math/rand"

	"chainviz/geometry"
)

// DefaultPadding is the fixed world-space margin kept around projected nodes,
// constant regardless of zoom.
const DefaultPadding = 55.0

// Point is a geographic coordinate. Input-only; never mutated.
type Point struct {
	Lat float64
	Lng float64
}

// Projector scales a set of lat/lng positions into a padded world rectangle.
// North maps to smaller y.
//
// Degenerate inputs never produce an error. When all points share a latitude
// or longitude, that collapsed axis gets one pseudo-random in-bounds value
// shared by every point, so equal geographic coordinates still project to
// equal world coordinates. Only when both axes collapse (every point at the
// same position) does each point get its own random in-bounds placement, so
// the overlapping nodes remain individually clickable. Any non-finite result
// falls back to a random in-bounds value. The randomness source is injected
// so tests can seed it.
type Projector struct {
	width  float64
	height float64
	pad    float64
	rng    *rand.Rand
}

// New creates a projector for a width×height world rectangle. A nil source
// seeds from the default shared source.
func New(width, height, pad float64, src rand.Source) *Projector {
	if src == nil {
		src = rand.NewSource(rand.Int63())
	}
	return &Projector{
		width:  width,
		height: height,
		pad:    pad,
		rng:    rand.New(src),
	}
}

// Project maps every geographic point into [pad, width-pad] × [pad, height-pad].
// The slice is parallel to the input; an empty input yields an empty slice.
func (p *Projector) Project(points []Point) []geometry.Point {
	out := make([]geometry.Point, len(points))
	if len(points) == 0 {
		return out
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLng, maxLng := points[0].Lng, points[0].Lng
	for _, gp := range points[1:] {
		minLat = math.Min(minLat, gp.Lat)
		maxLat = math.Max(maxLat, gp.Lat)
		minLng = math.Min(minLng, gp.Lng)
		maxLng = math.Max(maxLng, gp.Lng)
	}

	spanLat := maxLat - minLat
	spanLng := maxLng - minLng
	innerW := p.width - 2*p.pad
	innerH := p.height - 2*p.pad

	// Fully coincident input: every point gets its own placement.
	if spanLat == 0 && spanLng == 0 {
		for i := range points {
			out[i] = p.randomInBounds()
		}
		return out
	}

	// A single collapsed axis still carries one shared coordinate, so one
	// substitute value keeps equal inputs projecting to equal outputs.
	var flatX, flatY float64
	if spanLng == 0 {
		flatX = p.pad + p.rng.Float64()*innerW
	}
	if spanLat == 0 {
		flatY = p.pad + p.rng.Float64()*innerH
	}

	for i, gp := range points {
		var x, y float64
		if spanLng == 0 {
			x = flatX
		} else {
			x = p.pad + (gp.Lng-minLng)/spanLng*innerW
		}
		if spanLat == 0 {
			y = flatY
		} else {
			y = p.pad + (maxLat-gp.Lat)/spanLat*innerH
		}

		pt := geometry.Point{X: x, Y: y}
		if !pt.IsFinite() {
			pt = p.randomInBounds()
		}
		out[i] = pt
	}
	return out
}

// randomInBounds returns a fallback position inside the padded rectangle.
func (p *Projector) randomInBounds() geometry.Point {
	return geometry.Point{
		X: p.pad + p.rng.Float64()*(p.width-2*p.pad),
		Y: p.pad + p.rng.Float64()*(p.height-2*p.pad),
	}
}
