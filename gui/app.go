// Package gui is the windowed front end. It hosts the raster pipeline inside
// an ebiten game loop: input events mutate the model through the shared
// controller, and the scene is re-rasterized only when the model revision
// moves, so an idle window costs one texture blit per frame.
package gui

import (
	"image/color"
	"io"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"chainviz/editor"
	"chainviz/geometry"
	"chainviz/render"
	"chainviz/scene"
)

// keyPanStep is per-tick pan movement while an arrow key is held, in device
// units. At 60 ticks per second this crosses the default surface in about
// two seconds.
const keyPanStep = 6.0

// toggleKeys are handled on press, not while held.
var toggleKeys = []ebiten.Key{
	ebiten.KeyL, ebiten.KeyG, ebiten.KeyR,
	ebiten.Key0, ebiten.KeyEqual, ebiten.KeyMinus,
	ebiten.KeyQ, ebiten.KeyEscape,
}

// App implements ebiten.Game around a scene model.
type App struct {
	model *scene.Model
	ctrl  *editor.Controller
	pipe  *render.Pipeline
	log   *slog.Logger

	width, height int

	frame   *ebiten.Image
	lastRev uint64

	leftPrev   bool
	rightPrev  bool
	panX, panY int
	keyPrev    map[ebiten.Key]bool
}

// New builds the app. width and height are both the window and the render
// surface size. A nil logger discards.
func New(model *scene.Model, ctrl *editor.Controller, pipe *render.Pipeline, width, height int, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	model.OnSelectionChange(func(v scene.ViewState) {
		log.Debug("selection", "node", v.SelectedNode, "route", v.SelectedRoute)
	})
	model.OnHoverChange(func(v scene.ViewState) {
		log.Debug("hover", "node", v.HoveredNode)
	})
	return &App{
		model:   model,
		ctrl:    ctrl,
		pipe:    pipe,
		log:     log,
		width:   width,
		height:  height,
		keyPrev: make(map[ebiten.Key]bool, len(toggleKeys)),
	}
}

// Run opens the window and blocks until the user quits.
func (a *App) Run(title string) error {
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle(title)
	a.log.Info("window open", "width", a.width, "height", a.height)
	err := ebiten.RunGame(a)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Update advances one tick: pointer, wheel, then keyboard.
func (a *App) Update() error {
	mx, my := ebiten.CursorPosition()
	device := geometry.Point{X: float64(mx), Y: float64(my)}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case left && !a.leftPrev:
		a.ctrl.PointerDown(device)
	case !left && a.leftPrev:
		a.ctrl.PointerUp(device)
	default:
		a.ctrl.PointerMove(device)
	}
	a.leftPrev = left

	// Right button drags the viewport.
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if right && a.rightPrev {
		a.model.PanBy(float64(mx-a.panX), float64(my-a.panY))
	}
	a.panX, a.panY = mx, my
	a.rightPrev = right

	if _, wy := ebiten.Wheel(); wy > 0 {
		a.model.ZoomIn()
	} else if wy < 0 {
		a.model.ZoomOut()
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		a.model.PanBy(keyPanStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		a.model.PanBy(-keyPanStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		a.model.PanBy(0, keyPanStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		a.model.PanBy(0, -keyPanStep)
	}

	for _, k := range toggleKeys {
		pressed := ebiten.IsKeyPressed(k)
		if pressed && !a.keyPrev[k] {
			if quit := a.applyKey(k); quit {
				return ebiten.Termination
			}
		}
		a.keyPrev[k] = pressed
	}
	return nil
}

func (a *App) applyKey(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyL:
		a.model.ToggleLabels()
	case ebiten.KeyG:
		a.model.ToggleGrid()
	case ebiten.KeyR:
		a.model.ToggleRoutes()
	case ebiten.Key0:
		a.model.ResetView()
	case ebiten.KeyEqual:
		a.model.ZoomIn()
	case ebiten.KeyMinus:
		a.model.ZoomOut()
	case ebiten.KeyQ, ebiten.KeyEscape:
		return true
	}
	return false
}

// Draw blits the cached frame, re-rasterizing only when the model changed.
func (a *App) Draw(screen *ebiten.Image) {
	if rev := a.model.Revision(); a.frame == nil || rev != a.lastRev {
		img := a.pipe.Render(a.model.Snapshot())
		a.frame = ebiten.NewImageFromImage(img)
		a.lastRev = rev
	}
	screen.Fill(color.Black)
	screen.DrawImage(a.frame, nil)
}

// Layout fixes the logical resolution to the render surface size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
