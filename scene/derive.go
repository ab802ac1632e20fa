package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"chainviz/geometry"
)

// SceneNode is the render-ready form of one facility: world position, visual
// attributes and the current interaction flags baked in.
type SceneNode struct {
	ID       string
	Center   geometry.Point
	Radius   float64
	Fill     colorful.Color
	Glyph    rune
	Category Category
	Name     string
	Selected bool
	Hovered  bool
}

// SceneEdge is the render-ready form of one route. From and To are trimmed to
// the node circle boundaries, not the centers. OK is false when the endpoint
// centers coincide; the edge body is skipped for that frame.
type SceneEdge struct {
	ID          string
	From        geometry.Point
	To          geometry.Point
	OK          bool
	Highlighted bool
	DistanceKm  float64
}

// Snapshot is everything the render pipeline needs for one frame. It is a
// pure derivation of the model: rendering the same snapshot twice draws the
// same picture.
type Snapshot struct {
	Nodes []SceneNode
	Edges []SceneEdge
	View  ViewState
}

// Snapshot derives the drawable scene from the current model state. Routes
// whose endpoints cannot both be resolved are dropped silently, so every
// SceneEdge has two resolvable endpoints. Edge geometry is recomputed on
// every call, which is what keeps edges attached to a node while it is being
// dragged.
func (m *Model) Snapshot() Snapshot {
	snap := Snapshot{
		Nodes: make([]SceneNode, len(m.facilities)),
		Edges: make([]SceneEdge, 0, len(m.routes)),
		View:  m.view,
	}

	for i, f := range m.facilities {
		style := m.styles.Style(f.Category)
		snap.Nodes[i] = SceneNode{
			ID:       f.ID,
			Center:   m.positions[i],
			Radius:   style.Radius,
			Fill:     style.Fill,
			Glyph:    style.Glyph,
			Category: f.Category,
			Name:     f.Name,
			Selected: f.ID == m.view.SelectedNode,
			Hovered:  f.ID == m.view.HoveredNode,
		}
	}

	for _, r := range m.routes {
		fi, okFrom := m.index[r.From]
		ti, okTo := m.index[r.To]
		if !okFrom || !okTo {
			continue // dangling reference
		}
		fromStyle := m.styles.Style(m.facilities[fi].Category)
		toStyle := m.styles.Style(m.facilities[ti].Category)
		from, to, ok := geometry.TrimSegment(
			m.positions[fi], fromStyle.Radius,
			m.positions[ti], toStyle.Radius,
		)
		snap.Edges = append(snap.Edges, SceneEdge{
			ID:          r.ID,
			From:        from,
			To:          to,
			OK:          ok,
			Highlighted: r.ID == m.view.SelectedRoute,
			DistanceKm:  r.DistanceKm,
		})
	}

	return snap
}
