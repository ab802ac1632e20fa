package scene

import "chainviz/geometry"

// ViewLimits bounds the view transform.
type ViewLimits struct {
	ZoomMin  float64
	ZoomMax  float64
	ZoomStep float64
}

// DefaultLimits returns the reference zoom bounds and step factor.
func DefaultLimits() ViewLimits {
	return ViewLimits{
		ZoomMin:  geometry.DefaultZoomMin,
		ZoomMax:  geometry.DefaultZoomMax,
		ZoomStep: geometry.DefaultZoomStep,
	}
}

// ViewState is the per-instance view and interaction state. Selecting a node
// clears any selected route and vice versa; the Model enforces that.
type ViewState struct {
	Zoom          float64
	Pan           geometry.Point
	ShowLabels    bool
	ShowGrid      bool
	ShowRoutes    bool
	SelectedNode  string
	SelectedRoute string
	HoveredNode   string
}

// DefaultView returns the state a fresh or explicitly reset instance starts
// with: everything visible, identity transform, nothing selected.
func DefaultView() ViewState {
	return ViewState{
		Zoom:       1,
		ShowLabels: true,
		ShowGrid:   true,
		ShowRoutes: true,
	}
}

// Transform returns the world→device transform for this view.
func (v ViewState) Transform() geometry.Transform {
	return geometry.Transform{Zoom: v.Zoom, Pan: v.Pan}
}
