// Package terminal implements the interactive character-cell viewer.
//
// The viewer owns a tcell screen and translates its events into model
// mutations. Drawing goes through a canvas.CellGrid sized to the terminal,
// which keeps the scene composition testable without a real terminal.
package terminal

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"chainviz/canvas"
	"chainviz/editor"
	"chainviz/geometry"
	"chainviz/scene"
)

// panStep is how far one arrow key press shifts the viewport, in device units.
const panStep = 30.0

var (
	gridColor      = colorful.Color{R: 0.22, G: 0.25, B: 0.30}
	edgeColor      = colorful.Color{R: 0.45, G: 0.52, B: 0.58}
	highlightColor = colorful.Color{R: 1.0, G: 0.84, B: 0.31}
	labelColor     = colorful.Color{R: 0.72, G: 0.76, B: 0.82}
	statusColor    = colorful.Color{R: 0.85, G: 0.88, B: 0.92}
	white          = colorful.Color{R: 1, G: 1, B: 1}
)

// Viewer drives a scene model from terminal input.
type Viewer struct {
	screen tcell.Screen
	model  *scene.Model
	ctrl   *editor.Controller
	log    *slog.Logger

	// Logical surface the projector targeted. Cell coordinates are this
	// surface squeezed onto the terminal grid.
	surfaceW, surfaceH float64
	gridSpacing        float64

	leftDown bool
	lastRev  uint64
	drawn    bool
}

// NewViewer wires a viewer to an initialized screen. surfaceW and surfaceH
// are the projection surface dimensions, gridSpacing the world-unit grid
// pitch. A nil logger discards.
func NewViewer(screen tcell.Screen, model *scene.Model, ctrl *editor.Controller, surfaceW, surfaceH, gridSpacing float64, log *slog.Logger) *Viewer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	model.OnSelectionChange(func(v scene.ViewState) {
		log.Debug("selection", "node", v.SelectedNode, "route", v.SelectedRoute)
	})
	model.OnHoverChange(func(v scene.ViewState) {
		log.Debug("hover", "node", v.HoveredNode)
	})
	return &Viewer{
		screen:      screen,
		model:       model,
		ctrl:        ctrl,
		log:         log,
		surfaceW:    surfaceW,
		surfaceH:    surfaceH,
		gridSpacing: gridSpacing,
	}
}

// Run polls events until the user quits. The caller is responsible for
// screen.Init and the viewer calls Fini on the way out.
func (v *Viewer) Run() error {
	defer v.screen.Fini()
	v.screen.EnableMouse()
	v.Draw()

	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if quit := v.HandleEvent(ev); quit {
			v.log.Info("viewer exit")
			return nil
		}
		if v.model.Revision() != v.lastRev || !v.drawn {
			v.Draw()
		}
	}
}

// HandleEvent applies one tcell event to the model. It reports true when the
// user asked to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.drawn = false
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
	return false
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.model.PanBy(panStep, 0)
	case tcell.KeyRight:
		v.model.PanBy(-panStep, 0)
	case tcell.KeyUp:
		v.model.PanBy(0, panStep)
	case tcell.KeyDown:
		v.model.PanBy(0, -panStep)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'h':
			v.model.PanBy(panStep, 0)
		case 'l':
			v.model.PanBy(-panStep, 0)
		case 'k':
			v.model.PanBy(0, panStep)
		case 'j':
			v.model.PanBy(0, -panStep)
		case '+', '=':
			v.model.ZoomIn()
		case '-', '_':
			v.model.ZoomOut()
		case 'L':
			v.model.ToggleLabels()
		case 'G':
			v.model.ToggleGrid()
		case 'R':
			v.model.ToggleRoutes()
		case '0':
			v.model.ResetView()
		}
	}
	return false
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	device := v.cellToDevice(x, y)

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !v.leftDown:
		v.ctrl.PointerDown(device)
	case !pressed && v.leftDown:
		v.ctrl.PointerUp(device)
	default:
		v.ctrl.PointerMove(device)
	}
	v.leftDown = pressed
}

// Draw composes the scene into a cell grid and blits it to the screen.
func (v *Viewer) Draw() {
	cols, rows := v.screen.Size()
	if cols < 2 || rows < 2 {
		return
	}
	grid := v.Compose(cols, rows-1)

	v.screen.Clear()
	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols; x++ {
			c := grid.Get(x, y)
			if c.Ch == ' ' {
				continue
			}
			v.screen.SetContent(x, y, c.Ch, nil, styleFor(c.FG))
		}
	}
	v.drawStatus(cols, rows-1)
	v.screen.Show()

	v.lastRev = v.model.Revision()
	v.drawn = true
}

// Compose renders the current snapshot into a fresh cols×rows grid.
func (v *Viewer) Compose(cols, rows int) *canvas.CellGrid {
	grid := canvas.New(cols, rows)
	if grid == nil {
		return nil
	}
	snap := v.model.Snapshot()
	tr := snap.View.Transform()

	toCell := func(p geometry.Point) (int, int) {
		d := tr.WorldToDevice(p)
		return int(d.X * float64(cols) / v.surfaceW), int(d.Y * float64(rows) / v.surfaceH)
	}

	if snap.View.ShowGrid && v.gridSpacing > 0 {
		v.composeGrid(grid, tr, toCell)
	}

	if snap.View.ShowRoutes {
		for _, e := range snap.Edges {
			if !e.OK {
				continue
			}
			x1, y1 := toCell(e.From)
			x2, y2 := toCell(e.To)
			if e.Highlighted {
				grid.DrawLine(x1, y1, x2, y2, '*', highlightColor)
				label := fmt.Sprintf("%.0f km", e.DistanceKm)
				grid.DrawText((x1+x2)/2-len(label)/2, (y1+y2)/2, label, highlightColor)
			} else {
				grid.DrawLine(x1, y1, x2, y2, '·', edgeColor)
			}
		}
	}

	for _, n := range snap.Nodes {
		x, y := toCell(n.Center)
		fill := n.Fill
		if n.Hovered && !n.Selected {
			fill = fill.BlendRgb(white, 0.5)
		}
		if n.Selected {
			grid.Set(x-1, y, '(', white)
			grid.Set(x+1, y, ')', white)
		}
		grid.Set(x, y, n.Glyph, fill)
		if snap.View.ShowLabels && n.Name != "" {
			grid.DrawText(x-len([]rune(n.Name))/2, y+1, n.Name, labelColor)
		}
	}
	return grid
}

// composeGrid draws dotted world gridlines over the visible region.
func (v *Viewer) composeGrid(grid *canvas.CellGrid, tr geometry.Transform, toCell func(geometry.Point) (int, int)) {
	topLeft := tr.DeviceToWorld(geometry.Point{})
	bottomRight := tr.DeviceToWorld(geometry.Point{X: v.surfaceW, Y: v.surfaceH})

	startX := mathFloorTo(topLeft.X, v.gridSpacing)
	for wx := startX; wx <= bottomRight.X; wx += v.gridSpacing {
		x1, y1 := toCell(geometry.Point{X: wx, Y: topLeft.Y})
		x2, y2 := toCell(geometry.Point{X: wx, Y: bottomRight.Y})
		grid.DrawLine(x1, y1, x2, y2, '·', gridColor)
	}
	startY := mathFloorTo(topLeft.Y, v.gridSpacing)
	for wy := startY; wy <= bottomRight.Y; wy += v.gridSpacing {
		x1, y1 := toCell(geometry.Point{X: topLeft.X, Y: wy})
		x2, y2 := toCell(geometry.Point{X: bottomRight.X, Y: wy})
		grid.DrawLine(x1, y1, x2, y2, '·', gridColor)
	}
}

func (v *Viewer) drawStatus(cols, row int) {
	view := v.model.View()
	status := fmt.Sprintf(" zoom %.2f | nodes %d routes %d", view.Zoom, len(v.model.Facilities()), len(v.model.Routes()))
	if name := v.selectedName(); name != "" {
		status += " | " + name
	}
	status += " | q quit  +/- zoom  arrows pan  L/G/R toggle  0 reset"

	st := styleFor(statusColor).Reverse(true)
	runes := []rune(status)
	for x := 0; x < cols; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		v.screen.SetContent(x, row, ch, nil, st)
	}
}

func (v *Viewer) selectedName() string {
	view := v.model.View()
	if view.SelectedNode != "" {
		for _, f := range v.model.Facilities() {
			if f.ID == view.SelectedNode {
				return fmt.Sprintf("selected %s (%s)", f.Name, f.Category)
			}
		}
	}
	if view.SelectedRoute != "" {
		for _, r := range v.model.Routes() {
			if r.ID == view.SelectedRoute {
				return fmt.Sprintf("route %s → %s, %.0f km", r.From, r.To, r.DistanceKm)
			}
		}
	}
	return ""
}

// cellToDevice maps a terminal cell back into device coordinates, using the
// cell center so hits land inside the cell rather than on its corner.
func (v *Viewer) cellToDevice(x, y int) geometry.Point {
	cols, rows := v.screen.Size()
	if rows > 1 {
		rows--
	}
	return geometry.Point{
		X: (float64(x) + 0.5) * v.surfaceW / float64(cols),
		Y: (float64(y) + 0.5) * v.surfaceH / float64(rows),
	}
}

func styleFor(c colorful.Color) tcell.Style {
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func mathFloorTo(v, step float64) float64 {
	n := int(v / step)
	f := float64(n) * step
	if f > v {
		f -= step
	}
	return f
}
