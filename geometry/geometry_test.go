package geometry

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestTransformRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		p    Point
	}{
		{"identity", Identity(), Point{10, 20}},
		{"zoomed", Transform{Zoom: 2.5, Pan: Point{0, 0}}, Point{-4, 7}},
		{"panned", Transform{Zoom: 1, Pan: Point{100, -50}}, Point{3, 3}},
		{"both", Transform{Zoom: 0.5, Pan: Point{33, 44}}, Point{123.5, -17.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.DeviceToWorld(tt.tr.WorldToDevice(tt.p))
			if !almostEqual(got.X, tt.p.X) || !almostEqual(got.Y, tt.p.Y) {
				t.Errorf("round trip changed point: got %v, want %v", got, tt.p)
			}
		})
	}
}

func TestDeviceToWorldConcrete(t *testing.T) {
	// A pointer at device (300,150) under zoom=2, pan=(100,50) must land on
	// world (100,50).
	tr := Transform{Zoom: 2, Pan: Point{100, 50}}
	w := tr.DeviceToWorld(Point{300, 150})
	if !almostEqual(w.X, 100) || !almostEqual(w.Y, 50) {
		t.Errorf("DeviceToWorld(300,150) = %v, want (100,50)", w)
	}
}

func TestClampZoom(t *testing.T) {
	tests := []struct {
		z, want float64
	}{
		{0.1, 0.3},
		{0.3, 0.3},
		{1.5, 1.5},
		{3.0, 3.0},
		{9.9, 3.0},
	}
	for _, tt := range tests {
		if got := ClampZoom(tt.z, DefaultZoomMin, DefaultZoomMax); got != tt.want {
			t.Errorf("ClampZoom(%v) = %v, want %v", tt.z, got, tt.want)
		}
	}
}

func TestTrimSegmentEndpointsOnCircles(t *testing.T) {
	c1 := Point{0, 0}
	c2 := Point{100, 0}
	from, to, ok := TrimSegment(c1, 10, c2, 15)
	if !ok {
		t.Fatal("expected ok for distinct centers")
	}
	if !almostEqual(Distance(c1, from), 10) {
		t.Errorf("from not on first circle: dist = %v", Distance(c1, from))
	}
	if !almostEqual(Distance(c2, to), 15) {
		t.Errorf("to not on second circle: dist = %v", Distance(c2, to))
	}
	// Endpoints strictly between the centers along the connecting line.
	if from.X <= c1.X || to.X >= c2.X || from.X >= to.X {
		t.Errorf("trimmed segment not between centers: from=%v to=%v", from, to)
	}
}

func TestTrimSegmentDirectionMatchesCenters(t *testing.T) {
	c1 := Point{10, 20}
	c2 := Point{-30, 85}
	from, to, ok := TrimSegment(c1, 5, c2, 8)
	if !ok {
		t.Fatal("expected ok")
	}
	want := math.Atan2(c2.Y-c1.Y, c2.X-c1.X)
	got := math.Atan2(to.Y-from.Y, to.X-from.X)
	if !almostEqual(got, want) {
		t.Errorf("segment angle %v, want center-to-center angle %v", got, want)
	}
}

func TestTrimSegmentCoincidentCenters(t *testing.T) {
	_, _, ok := TrimSegment(Point{5, 5}, 10, Point{5, 5}, 10)
	if ok {
		t.Error("expected ok=false for coincident centers")
	}
}

func TestArrowWings(t *testing.T) {
	from := Point{0, 0}
	to := Point{100, 0}
	left, right := ArrowWings(from, to, ArrowLength, ArrowHalfAngle)

	// Both wings sit behind the tip at the configured length.
	if !almostEqual(Distance(to, left), ArrowLength) {
		t.Errorf("left wing length = %v, want %v", Distance(to, left), ArrowLength)
	}
	if !almostEqual(Distance(to, right), ArrowLength) {
		t.Errorf("right wing length = %v, want %v", Distance(to, right), ArrowLength)
	}
	if left.X >= to.X || right.X >= to.X {
		t.Errorf("wings should trail the tip: left=%v right=%v", left, right)
	}
	// Symmetric about the segment.
	if !almostEqual(left.Y, -right.Y) {
		t.Errorf("wings not symmetric: left.Y=%v right.Y=%v", left.Y, right.Y)
	}
}

func TestPointHelpers(t *testing.T) {
	p := Point{3, 4}
	if !almostEqual(p.Length(), 5) {
		t.Errorf("Length = %v, want 5", p.Length())
	}
	if got := p.Add(Point{1, 1}); got != (Point{4, 5}) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(Point{1, 1}); got != (Point{2, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Scale(2); got != (Point{6, 8}) {
		t.Errorf("Scale = %v", got)
	}
	if (Point{math.NaN(), 0}).IsFinite() {
		t.Error("NaN point reported finite")
	}
	if (Point{0, math.Inf(1)}).IsFinite() {
		t.Error("Inf point reported finite")
	}
}
