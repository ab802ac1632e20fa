package editor

import (
	"math/rand"
	"testing"

	"chainviz/geo"
	"chainviz/geometry"
	"chainviz/scene"
)

// testModel returns a model with two nodes pinned to known world positions so
// hit tests are deterministic.
func testModel(t *testing.T) *scene.Model {
	t.Helper()
	m := scene.NewModel(800, 600, geo.DefaultPadding, scene.DefaultLimits(), nil, rand.NewSource(1))
	m.SetData(
		[]scene.Facility{
			{ID: "a", Name: "A", Category: scene.Farm, Position: geo.Point{Lat: 12, Lng: 77}},
			{ID: "b", Name: "B", Category: scene.Retail, Position: geo.Point{Lat: 13, Lng: 78}},
		},
		[]scene.Route{
			{ID: "r1", From: "a", To: "b", DistanceKm: 10},
		},
	)
	m.MoveNode("a", geometry.Point{X: 100, Y: 50})
	m.MoveNode("b", geometry.Point{X: 400, Y: 300})
	return m
}

func TestHitTestThroughInverseTransform(t *testing.T) {
	m := testModel(t)
	m.SetZoom(2)
	m.PanBy(100, 50)
	c := New(m, false)

	// Device (300,150) under zoom=2, pan=(100,50) is world (100,50) — node a.
	id, ok := c.NodeAt(geometry.Point{X: 300, Y: 150})
	if !ok || id != "a" {
		t.Errorf("NodeAt(300,150) = %q, %v; want a", id, ok)
	}
}

func TestClickTogglesSelection(t *testing.T) {
	m := testModel(t)
	c := New(m, false)

	p := geometry.Point{X: 100, Y: 50}
	c.PointerDown(p)
	c.PointerUp(p)
	if node, _ := c.CurrentSelection(); node != "a" {
		t.Fatalf("selected = %q, want a", node)
	}

	// Clicking the selected node again deselects it.
	c.PointerDown(p)
	c.PointerUp(p)
	if node, _ := c.CurrentSelection(); node != "" {
		t.Fatalf("second click should deselect, got %q", node)
	}

	// Clicking a different node replaces the selection.
	c.PointerDown(p)
	c.PointerUp(p)
	q := geometry.Point{X: 400, Y: 300}
	c.PointerDown(q)
	c.PointerUp(q)
	if node, _ := c.CurrentSelection(); node != "b" {
		t.Fatalf("selected = %q, want b", node)
	}
}

func TestBackgroundClickClearsSelection(t *testing.T) {
	m := testModel(t)
	c := New(m, false)

	c.SelectRoute("r1")
	if _, route := c.CurrentSelection(); route != "r1" {
		t.Fatal("route selection failed")
	}

	empty := geometry.Point{X: 700, Y: 500}
	c.PointerDown(empty)
	c.PointerUp(empty)
	node, route := c.CurrentSelection()
	if node != "" || route != "" {
		t.Errorf("background click should clear everything: node=%q route=%q", node, route)
	}
}

func TestNodeClickClearsRouteSelection(t *testing.T) {
	m := testModel(t)
	c := New(m, false)

	c.SelectRoute("r1")
	p := geometry.Point{X: 100, Y: 50}
	c.PointerDown(p)
	c.PointerUp(p)
	node, route := c.CurrentSelection()
	if node != "a" || route != "" {
		t.Errorf("node=%q route=%q; want a, empty", node, route)
	}
}

func TestHover(t *testing.T) {
	m := testModel(t)
	c := New(m, false)

	c.PointerMove(geometry.Point{X: 100, Y: 50})
	if m.View().HoveredNode != "a" {
		t.Errorf("hover = %q, want a", m.View().HoveredNode)
	}
	c.PointerMove(geometry.Point{X: 700, Y: 500})
	if m.View().HoveredNode != "" {
		t.Errorf("hover should clear off-node, got %q", m.View().HoveredNode)
	}
}

func TestDragMovesNode(t *testing.T) {
	m := testModel(t)
	c := New(m, true)

	// Grab slightly off-center; the node must keep that offset, not snap.
	c.PointerDown(geometry.Point{X: 104, Y: 52})
	if !c.Dragging() {
		t.Fatal("expected drag to start on node press")
	}
	c.PointerMove(geometry.Point{X: 204, Y: 152})
	pos, _ := m.Position("a")
	if pos.X != 200 || pos.Y != 150 {
		t.Errorf("dragged position = %v, want (200,150)", pos)
	}
	c.PointerUp(geometry.Point{X: 204, Y: 152})
	if c.Dragging() {
		t.Error("drag should end on pointer up")
	}
	// A real drag is not a click: nothing got selected.
	if node, _ := c.CurrentSelection(); node != "" {
		t.Errorf("drag selected %q", node)
	}
}

func TestDragWithinSlopIsClick(t *testing.T) {
	m := testModel(t)
	c := New(m, true)

	c.PointerDown(geometry.Point{X: 100, Y: 50})
	c.PointerMove(geometry.Point{X: 101, Y: 51})
	c.PointerUp(geometry.Point{X: 101, Y: 51})
	if node, _ := c.CurrentSelection(); node != "a" {
		t.Errorf("tiny movement should still select, got %q", node)
	}
}

func TestDragDisabledVariant(t *testing.T) {
	m := testModel(t)
	c := New(m, false)

	c.PointerDown(geometry.Point{X: 100, Y: 50})
	if c.Dragging() {
		t.Fatal("drag must not start when disabled")
	}
	c.PointerMove(geometry.Point{X: 300, Y: 200})
	pos, _ := m.Position("a")
	if pos.X != 100 || pos.Y != 50 {
		t.Errorf("node moved with drag disabled: %v", pos)
	}
}

func TestDragRecomputesAttachedEdges(t *testing.T) {
	m := testModel(t)
	c := New(m, true)

	before := m.Snapshot().Edges[0]
	c.PointerDown(geometry.Point{X: 100, Y: 50})
	c.PointerMove(geometry.Point{X: 250, Y: 90})
	after := m.Snapshot().Edges[0]
	if before.From == after.From {
		t.Error("edge start should follow the dragged node mid-drag")
	}
	c.PointerUp(geometry.Point{X: 250, Y: 90})
}
