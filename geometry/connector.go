package geometry

import "math"

// Arrowhead defaults, in world units so the head scales with the zoom
// transform like the rest of the edge.
const (
	ArrowLength    = 12.0
	ArrowHalfAngle = 30.0 * math.Pi / 180.0
)

// TrimSegment computes the edge-trimmed connector between two circular nodes:
// the segment runs boundary to boundary rather than center to center, so the
// line never disappears under either node.
//
// ok is false when the centers coincide — the direction is undefined and the
// caller should skip drawing the edge body for that frame.
func TrimSegment(c1 Point, r1 float64, c2 Point, r2 float64) (from, to Point, ok bool) {
	d := c2.Sub(c1)
	length := d.Length()
	if length == 0 {
		return c1, c2, false
	}
	unit := d.Scale(1 / length)
	from = c1.Add(unit.Scale(r1))
	to = c2.Sub(unit.Scale(r2))
	return from, to, true
}

// ArrowWings returns the two wing endpoints of an arrowhead whose tip sits at
// to, pointing along the from→to direction. Each wing is offset from the
// segment angle by halfAngle and has the given length.
func ArrowWings(from, to Point, length, halfAngle float64) (left, right Point) {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	left = Point{
		X: to.X - length*math.Cos(angle-halfAngle),
		Y: to.Y - length*math.Sin(angle-halfAngle),
	}
	right = Point{
		X: to.X - length*math.Cos(angle+halfAngle),
		Y: to.Y - length*math.Sin(angle+halfAngle),
	}
	return left, right
}
