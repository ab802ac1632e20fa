// Package editor turns raw pointer events into scene mutations: hover,
// selection toggling and (when enabled) node dragging. It owns no drawing
// surface; it maps device coordinates through the inverse view transform and
// calls into the scene model.
package editor

import (
	"chainviz/geometry"
	"chainviz/scene"
)

// clickSlop is the device-space distance a pointer may travel between down
// and up and still count as a click rather than a drag.
const clickSlop = 4.0

// Controller consumes pointer events for one visualization instance. All
// methods run synchronously on the event goroutine; there is no locking.
type Controller struct {
	model       *scene.Model
	dragEnabled bool

	pressedNode string
	pressedBg   bool
	downDevice  geometry.Point
	moved       bool

	dragging   bool
	grabOffset geometry.Point // node center minus pointer, in world units
}

// New creates a controller. dragEnabled selects the variant where
// pointer-down on a node begins a drag that moves it.
func New(model *scene.Model, dragEnabled bool) *Controller {
	return &Controller{model: model, dragEnabled: dragEnabled}
}

// NodeAt hit-tests a device-space point against the nodes, returning the
// first (input-order) node whose circle contains it.
func (c *Controller) NodeAt(device geometry.Point) (string, bool) {
	return c.model.NodeAt(c.toWorld(device))
}

// PointerMove handles pointer motion. While a drag is active it moves the
// dragged node (edge geometry follows on the next snapshot); otherwise it
// updates the hovered node.
func (c *Controller) PointerMove(device geometry.Point) {
	if (c.pressedNode != "" || c.pressedBg) &&
		geometry.Distance(device, c.downDevice) > clickSlop {
		c.moved = true
	}

	if c.dragging {
		c.model.MoveNode(c.pressedNode, c.toWorld(device).Add(c.grabOffset))
		return
	}

	id, ok := c.model.NodeAt(c.toWorld(device))
	if !ok {
		c.model.Hover("")
		return
	}
	c.model.Hover(id)
}

// PointerDown arms a click and, if dragging is enabled and a node is hit,
// begins a drag capturing the offset between pointer and node center so the
// node does not jump to the cursor.
func (c *Controller) PointerDown(device geometry.Point) {
	c.downDevice = device
	c.moved = false

	world := c.toWorld(device)
	id, ok := c.model.NodeAt(world)
	if !ok {
		c.pressedBg = true
		return
	}
	c.pressedNode = id
	if c.dragEnabled {
		if center, found := c.model.Position(id); found {
			c.dragging = true
			c.grabOffset = center.Sub(world)
		}
	}
}

// PointerUp finishes the gesture. A press that stayed within the click slop
// is a click: on a node it toggles selection, on the background it clears
// both selections. A drag that actually moved ends without selecting.
func (c *Controller) PointerUp(device geometry.Point) {
	if (c.pressedNode != "" || c.pressedBg) &&
		geometry.Distance(device, c.downDevice) > clickSlop {
		c.moved = true
	}

	switch {
	case c.pressedNode != "" && !c.moved:
		c.model.SelectNode(c.pressedNode)
	case c.pressedBg && !c.moved:
		c.model.ClearSelection()
	}

	c.pressedNode = ""
	c.pressedBg = false
	c.dragging = false
	c.moved = false
}

// SelectRoute is the side-panel path into selection: it highlights exactly
// one route and clears any node selection.
func (c *Controller) SelectRoute(id string) {
	c.model.SelectRoute(id)
}

// CurrentSelection returns the selected node and route ids (at most one of
// the two is non-empty).
func (c *Controller) CurrentSelection() (node, route string) {
	v := c.model.View()
	return v.SelectedNode, v.SelectedRoute
}

// Dragging reports whether a node drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

func (c *Controller) toWorld(device geometry.Point) geometry.Point {
	return c.model.View().Transform().DeviceToWorld(device)
}
