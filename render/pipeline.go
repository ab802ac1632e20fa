package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"chainviz/geometry"
	"chainviz/scene"
)

// Pipeline renders scene snapshots to an RGBA raster. It holds only fixed
// configuration and the parsed font face; all per-frame state arrives in the
// snapshot, so rendering the same snapshot twice produces the same image.
type Pipeline struct {
	cfg  Config
	face font.Face
}

// New creates a pipeline with the bundled font.
func New(cfg Config) (*Pipeline, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: cfg.FontSize})
	return &Pipeline{cfg: cfg, face: face}, nil
}

// Render draws one frame: clear, push the pan/zoom transform, then grid,
// routes, nodes (fill, border, glyph, decoration), labels, pop. Edges always
// draw under nodes and labels always over them.
func (p *Pipeline) Render(snap scene.Snapshot) *image.RGBA {
	dc := gg.NewContext(p.cfg.Width, p.cfg.Height)
	dc.SetColor(p.cfg.Background)
	dc.Clear()
	dc.SetFontFace(p.face)

	tr := snap.View.Transform()
	dc.Push()
	dc.Translate(tr.Pan.X, tr.Pan.Y)
	dc.Scale(tr.Zoom, tr.Zoom)

	if snap.View.ShowGrid {
		p.drawGrid(dc, tr)
	}
	if snap.View.ShowRoutes {
		for _, e := range snap.Edges {
			p.drawEdge(dc, e)
		}
	}
	for _, n := range snap.Nodes {
		p.drawNode(dc, tr, n)
	}
	if snap.View.ShowLabels {
		for _, n := range snap.Nodes {
			p.drawLabel(dc, tr, n)
		}
	}

	dc.Pop()
	return dc.Image().(*image.RGBA)
}

// WritePNG renders the snapshot and encodes it as PNG.
func (p *Pipeline) WritePNG(w io.Writer, snap scene.Snapshot) error {
	if err := png.Encode(w, p.Render(snap)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// drawGrid draws fixed-spacing grid lines over the world rectangle currently
// visible on the device surface. The lines are drawn inside the transform, so
// their apparent density follows the zoom level.
func (p *Pipeline) drawGrid(dc *gg.Context, tr geometry.Transform) {
	min := tr.DeviceToWorld(geometry.Point{X: 0, Y: 0})
	max := tr.DeviceToWorld(geometry.Point{X: float64(p.cfg.Width), Y: float64(p.cfg.Height)})

	spacing := p.cfg.GridSpacing
	dc.SetColor(p.cfg.GridColor)
	dc.SetLineWidth(1)
	for x := math.Floor(min.X/spacing) * spacing; x <= max.X; x += spacing {
		dc.MoveTo(x, min.Y)
		dc.LineTo(x, max.Y)
	}
	for y := math.Floor(min.Y/spacing) * spacing; y <= max.Y; y += spacing {
		dc.MoveTo(min.X, y)
		dc.LineTo(max.X, y)
	}
	dc.Stroke()
}

func (p *Pipeline) drawEdge(dc *gg.Context, e scene.SceneEdge) {
	if !e.OK {
		return // coincident endpoints this frame; skip the body, no crash
	}
	if e.Highlighted {
		dc.SetColor(p.cfg.HighlightColor)
		dc.SetLineWidth(p.cfg.HighlightWidth)
	} else {
		dc.SetColor(p.cfg.EdgeColor)
		dc.SetLineWidth(p.cfg.EdgeWidth)
	}
	dc.MoveTo(e.From.X, e.From.Y)
	dc.LineTo(e.To.X, e.To.Y)
	dc.Stroke()

	if e.Highlighted {
		left, right := geometry.ArrowWings(e.From, e.To, geometry.ArrowLength, geometry.ArrowHalfAngle)
		dc.MoveTo(left.X, left.Y)
		dc.LineTo(e.To.X, e.To.Y)
		dc.LineTo(right.X, right.Y)
		dc.Stroke()

		mid := geometry.Point{X: (e.From.X + e.To.X) / 2, Y: (e.From.Y + e.To.Y) / 2}
		dc.SetColor(p.cfg.HighlightColor)
		dc.DrawStringAnchored(fmt.Sprintf("%.0f km", e.DistanceKm), mid.X, mid.Y-6, 0.5, 1)
	}
}

func (p *Pipeline) drawNode(dc *gg.Context, tr geometry.Transform, n scene.SceneNode) {
	// gg evaluates gradient patterns in image space, not through the context
	// matrix, so the gradient geometry needs the transform applied by hand.
	dev := tr.WorldToDevice(n.Center)
	grad := gg.NewRadialGradient(dev.X, dev.Y, 0, dev.X, dev.Y, n.Radius*tr.Zoom)
	grad.AddColorStop(0, lighten(n.Fill, 0.25))
	grad.AddColorStop(1, n.Fill)
	dc.SetFillStyle(grad)
	dc.DrawCircle(n.Center.X, n.Center.Y, n.Radius)
	dc.Fill()

	if n.Selected {
		dc.SetColor(p.cfg.SelectedColor)
		dc.SetLineWidth(2.5)
	} else {
		dc.SetColor(p.cfg.BorderColor)
		dc.SetLineWidth(1.5)
	}
	dc.DrawCircle(n.Center.X, n.Center.Y, n.Radius)
	dc.Stroke()

	dc.SetColor(p.cfg.LabelText)
	dc.DrawStringAnchored(string(n.Glyph), n.Center.X, n.Center.Y, 0.5, 0.5)

	if n.Selected {
		dc.SetDash(4, 3)
		dc.SetColor(p.cfg.SelectedColor)
		dc.SetLineWidth(1.5)
		dc.DrawCircle(n.Center.X, n.Center.Y, n.Radius+4)
		dc.Stroke()
		dc.SetDash()
	} else if n.Hovered {
		dc.SetColor(p.cfg.HoverRing)
		dc.SetLineWidth(3)
		dc.DrawCircle(n.Center.X, n.Center.Y, n.Radius+3)
		dc.Stroke()
	}
}

// drawLabel draws the name on a background plate below the node. Text glyphs
// are rasterized at screen size regardless of the matrix, so the plate is
// sized in world units from the device-space text measurement.
func (p *Pipeline) drawLabel(dc *gg.Context, tr geometry.Transform, n scene.SceneNode) {
	if n.Name == "" {
		return
	}
	w, h := dc.MeasureString(n.Name)
	plateW := (w + 10) / tr.Zoom
	plateH := (h + 6) / tr.Zoom
	top := n.Center.Y + n.Radius + p.cfg.LabelOffset

	dc.SetColor(p.cfg.LabelPlate)
	dc.DrawRoundedRectangle(n.Center.X-plateW/2, top, plateW, plateH, 3/tr.Zoom)
	dc.Fill()

	dc.SetColor(p.cfg.LabelText)
	dc.DrawStringAnchored(n.Name, n.Center.X, top+plateH/2, 0.5, 0.35)
}
