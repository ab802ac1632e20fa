package geometry

// Default view transform limits. The zoom range keeps the whole network
// legible at one end and individual nodes clickable at the other.
const (
	DefaultZoomMin  = 0.3
	DefaultZoomMax  = 3.0
	DefaultZoomStep = 1.2
)

// Transform is the single affine map between world space and device space:
// uniform scale (zoom) followed by a translation (pan).
//
//	device = pan + zoom * world
//
// The render pipeline applies it once per frame before issuing draw calls;
// the interaction layer applies the exact inverse to pointer coordinates
// before hit-testing. Keeping one shared transform is what keeps the two
// sides consistent.
type Transform struct {
	Zoom float64
	Pan  Point
}

// Identity returns the neutral transform (zoom 1, no pan).
func Identity() Transform {
	return Transform{Zoom: 1}
}

// WorldToDevice maps a world-space point to device space.
func (t Transform) WorldToDevice(p Point) Point {
	return Point{
		X: t.Pan.X + t.Zoom*p.X,
		Y: t.Pan.Y + t.Zoom*p.Y,
	}
}

// DeviceToWorld maps a device-space point (pointer position, pixel) back to
// world space. Zoom is never zero for a transform built through ClampZoom.
func (t Transform) DeviceToWorld(p Point) Point {
	return Point{
		X: (p.X - t.Pan.X) / t.Zoom,
		Y: (p.Y - t.Pan.Y) / t.Zoom,
	}
}

// ClampZoom limits z to [min, max].
func ClampZoom(z, min, max float64) float64 {
	return Clamp(z, min, max)
}
