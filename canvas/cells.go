// Package canvas provides a character-cell drawing surface for the terminal
// viewer: a width×height grid of runes with per-cell foreground colors and a
// few primitives (lines, text) the scene renderer needs.
package canvas

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cell is one character cell.
type Cell struct {
	Ch rune
	FG colorful.Color
}

// CellGrid is a rune grid with per-cell colors.
//
// Coordinate system: origin (0,0) top-left, x rightward, y downward, all
// coordinates in character cells. Not safe for concurrent writes; the viewer
// draws from a single goroutine.
type CellGrid struct {
	cells  [][]Cell
	width  int
	height int
}

// New creates a cleared grid. Returns nil for non-positive dimensions.
func New(width, height int) *CellGrid {
	if width <= 0 || height <= 0 {
		return nil
	}
	g := &CellGrid{width: width, height: height}
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
		for x := range g.cells[y] {
			g.cells[y][x].Ch = ' '
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g *CellGrid) Size() (width, height int) {
	return g.width, g.height
}

// Get returns the cell at (x, y), or a blank cell when out of bounds.
func (g *CellGrid) Get(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Cell{Ch: ' '}
	}
	return g.cells[y][x]
}

// Set places a colored rune, clipping silently at the borders.
func (g *CellGrid) Set(x, y int, ch rune, fg colorful.Color) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = Cell{Ch: ch, FG: fg}
}

// Clear resets every cell to a space.
func (g *CellGrid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Cell{Ch: ' '}
		}
	}
}

// DrawLine draws a straight run of ch between two cells using Bresenham's
// algorithm, clipping at the borders.
func (g *CellGrid) DrawLine(x1, y1, x2, y2 int, ch rune, fg colorful.Color) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	xInc := 1
	if x1 > x2 {
		xInc = -1
	}
	yInc := 1
	if y1 > y2 {
		yInc = -1
	}

	x, y := x1, y1
	if dx > dy {
		err := dx / 2
		for x != x2 {
			g.Set(x, y, ch, fg)
			err -= dy
			if err < 0 {
				y += yInc
				err += dx
			}
			x += xInc
		}
	} else {
		err := dy / 2
		for y != y2 {
			g.Set(x, y, ch, fg)
			err -= dx
			if err < 0 {
				x += xInc
				err += dy
			}
			y += yInc
		}
	}
	g.Set(x2, y2, ch, fg)
}

// DrawText writes a string starting at (x, y), clipping at the right border.
func (g *CellGrid) DrawText(x, y int, text string, fg colorful.Color) {
	for i, ch := range []rune(text) {
		g.Set(x+i, y, ch, fg)
	}
}

// String returns the runes as lines, for tests and debugging.
func (g *CellGrid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y][x].Ch)
		}
		if y < g.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
