package scene

import (
	"math/rand"

	"chainviz/geo"
	"chainviz/geometry"
)

// Model owns all mutable scene state for one visualization instance. Every
// mutation goes through a method here and bumps the revision counter, which
// is how front ends know a redraw is due.
//
// The model is single-threaded by construction: all mutation happens
// synchronously on the goroutine that receives input events, so there is no
// internal locking.
type Model struct {
	facilities []Facility
	routes     []Route
	positions  []geometry.Point // parallel to facilities; mutated by drag
	index      map[string]int   // facility id → slice index

	view   ViewState
	limits ViewLimits
	styles StyleTable

	projector *geo.Projector
	revision  uint64

	onSelection func(ViewState)
	onHover     func(ViewState)
}

// NewModel creates an empty model for a width×height surface. A nil src lets
// the projector seed itself; tests pass a fixed seed.
func NewModel(width, height, pad float64, limits ViewLimits, styles StyleTable, src rand.Source) *Model {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Model{
		index:     make(map[string]int),
		view:      DefaultView(),
		limits:    limits,
		styles:    styles,
		projector: geo.New(width, height, pad, src),
	}
}

// SetData replaces the facility and route sets and reprojects every position
// from geography. Any dragged positions are discarded.
func (m *Model) SetData(facilities []Facility, routes []Route) {
	m.facilities = facilities
	m.routes = routes
	m.index = make(map[string]int, len(facilities))
	geoPoints := make([]geo.Point, len(facilities))
	for i, f := range facilities {
		m.index[f.ID] = i
		geoPoints[i] = f.Position
	}
	m.positions = m.projector.Project(geoPoints)
	m.revision++
}

// Revision reports how many mutations the model has seen. Front ends compare
// it against the revision of their last rendered frame.
func (m *Model) Revision() uint64 {
	return m.revision
}

// View returns the current view state.
func (m *Model) View() ViewState {
	return m.view
}

// Styles returns the category style table.
func (m *Model) Styles() StyleTable {
	return m.styles
}

// Limits returns the zoom bounds.
func (m *Model) Limits() ViewLimits {
	return m.limits
}

// Facilities returns the input facility set.
func (m *Model) Facilities() []Facility {
	return m.facilities
}

// Routes returns the input route set.
func (m *Model) Routes() []Route {
	return m.routes
}

// Position returns the current world position of a facility.
func (m *Model) Position(id string) (geometry.Point, bool) {
	i, ok := m.index[id]
	if !ok {
		return geometry.Point{}, false
	}
	return m.positions[i], true
}

// MoveNode sets a facility's world position directly. Drag edits bypass the
// projector and live only in memory; they survive until the next SetData.
func (m *Model) MoveNode(id string, p geometry.Point) {
	i, ok := m.index[id]
	if !ok || !p.IsFinite() {
		return
	}
	m.positions[i] = p
	m.revision++
}

// NodeAt returns the id of the first facility, in input order, whose circle
// contains the world-space point. First match wins even when nodes overlap;
// nearest-center is deliberately not attempted.
func (m *Model) NodeAt(world geometry.Point) (string, bool) {
	for i, f := range m.facilities {
		r := m.styles.Style(f.Category).Radius
		if geometry.Distance(m.positions[i], world) <= r {
			return f.ID, true
		}
	}
	return "", false
}

// SelectNode toggles selection of a node: selecting an already-selected node
// deselects it, selecting a different node replaces the selection. Any route
// selection is cleared either way.
func (m *Model) SelectNode(id string) {
	if m.view.SelectedNode == id {
		m.view.SelectedNode = ""
	} else {
		m.view.SelectedNode = id
	}
	m.view.SelectedRoute = ""
	m.revision++
	m.notifySelection()
}

// ClearSelection deselects both node and route (click on empty background).
func (m *Model) ClearSelection() {
	if m.view.SelectedNode == "" && m.view.SelectedRoute == "" {
		return
	}
	m.view.SelectedNode = ""
	m.view.SelectedRoute = ""
	m.revision++
	m.notifySelection()
}

// SelectRoute highlights exactly one route and clears any node selection.
// Selecting the already-selected route deselects it.
func (m *Model) SelectRoute(id string) {
	if m.view.SelectedRoute == id {
		m.view.SelectedRoute = ""
	} else {
		m.view.SelectedRoute = id
	}
	m.view.SelectedNode = ""
	m.revision++
	m.notifySelection()
}

// Hover sets the hovered node id; empty clears it.
func (m *Model) Hover(id string) {
	if m.view.HoveredNode == id {
		return
	}
	m.view.HoveredNode = id
	m.revision++
	if m.onHover != nil {
		m.onHover(m.view)
	}
}

// ZoomIn multiplies the zoom by the step factor, clamped to the limits.
func (m *Model) ZoomIn() {
	m.SetZoom(m.view.Zoom * m.limits.ZoomStep)
}

// ZoomOut divides the zoom by the step factor, clamped to the limits.
func (m *Model) ZoomOut() {
	m.SetZoom(m.view.Zoom / m.limits.ZoomStep)
}

// SetZoom sets an absolute zoom level, clamped to the limits.
func (m *Model) SetZoom(z float64) {
	z = geometry.ClampZoom(z, m.limits.ZoomMin, m.limits.ZoomMax)
	if z == m.view.Zoom {
		return
	}
	m.view.Zoom = z
	m.revision++
}

// PanBy shifts the pan offset in device units. Pan is unconstrained.
func (m *Model) PanBy(dx, dy float64) {
	m.view.Pan.X += dx
	m.view.Pan.Y += dy
	m.revision++
}

// ResetView restores zoom, pan and toggles to their defaults, keeping the
// loaded data and any dragged positions.
func (m *Model) ResetView() {
	m.view = DefaultView()
	m.revision++
	m.notifySelection()
}

// ToggleLabels flips label visibility.
func (m *Model) ToggleLabels() {
	m.view.ShowLabels = !m.view.ShowLabels
	m.revision++
}

// ToggleGrid flips grid visibility.
func (m *Model) ToggleGrid() {
	m.view.ShowGrid = !m.view.ShowGrid
	m.revision++
}

// ToggleRoutes flips route visibility.
func (m *Model) ToggleRoutes() {
	m.view.ShowRoutes = !m.view.ShowRoutes
	m.revision++
}

// OnSelectionChange registers a callback invoked synchronously whenever the
// node or route selection changes. Panels use it to show entity detail.
func (m *Model) OnSelectionChange(fn func(ViewState)) {
	m.onSelection = fn
}

// OnHoverChange registers a callback invoked synchronously on hover changes.
func (m *Model) OnHoverChange(fn func(ViewState)) {
	m.onHover = fn
}

func (m *Model) notifySelection() {
	if m.onSelection != nil {
		m.onSelection(m.view)
	}
}
