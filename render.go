package geogrid

import (
	"fmt"
	"image/color"
	"math"
)

// Surface is the minimal drawing surface the renderer needs. The raster
// (fogleman/gg) and vector (tdewolff/canvas) backends both satisfy it.
// Coordinates are in pixels with the origin at the top-left, y down.
type Surface interface {
	SetColor(c color.Color)
	FillRect(x, y, w, h float64)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64)
	// FillWedge fills a pie slice centered at cx,cy sweeping from deg1 to
	// deg2, degrees measured from +x toward +y.
	FillWedge(cx, cy, r, deg1, deg2 float64)
}

// Quarter-disc geometry per corner selector: the wedge center as unit
// offsets within the sub-cell, and the angle span that sweeps the disc
// into the cell. Corner 0 is top-left, counting clockwise.
var (
	cornerOffsets = [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	cornerAngles  = [4][2]float64{{0, 90}, {90, 180}, {180, 270}, {270, 360}}
)

// RenderCell draws one pattern cell with its top-left at ox,oy and edge
// length cellPx. Color slots resolve as colors[slot % len(colors)], so an
// 8-slot draw maps onto any palette size.
func RenderCell(s Surface, p Pattern, ox, oy, cellPx float64, colors []color.Color) {
	switch p.Mode {
	case ModeCircle:
		for _, cell := range p.Cells {
			x := ox + cell.X*cellPx
			y := oy + cell.Y*cellPx
			w := cell.W * cellPx
			h := cell.H * cellPx

			s.SetColor(colors[cell.BG%len(colors)])
			s.FillRect(x, y, w, h)

			cx := x + cornerOffsets[cell.Corner][0]*w
			cy := y + cornerOffsets[cell.Corner][1]*h
			s.SetColor(colors[cell.Arc%len(colors)])
			s.FillWedge(cx, cy, w, cornerAngles[cell.Corner][0], cornerAngles[cell.Corner][1])
		}
	default:
		for _, t := range p.Triangles {
			s.SetColor(colors[t.Color%len(colors)])
			s.FillTriangle(
				ox+t.V[0].X*cellPx, oy+t.V[0].Y*cellPx,
				ox+t.V[1].X*cellPx, oy+t.V[1].Y*cellPx,
				ox+t.V[2].X*cellPx, oy+t.V[2].Y*cellPx)
		}
	}
}

// GridOffset centers a grid span within the available canvas span.
func GridOffset(canvas, grid float64) float64 {
	return (canvas - grid) / 2
}

// RenderTiled repeats the same cell cols x rows times, with the grid block
// centered in the canvas so the margins are symmetric on each axis.
func RenderTiled(s Surface, p Pattern, cols, rows int, cellPx, canvasW, canvasH float64, colors []color.Color) {
	ox := GridOffset(canvasW, float64(cols)*cellPx)
	oy := GridOffset(canvasH, float64(rows)*cellPx)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			RenderCell(s, p, ox+float64(col)*cellPx, oy+float64(row)*cellPx, cellPx, colors)
		}
	}
}

// RenderConfig paints the whole artwork for c onto a w x h surface:
// background fill, then the tiled pattern with the cell size chosen so the
// grid fits inside the canvas.
func RenderConfig(s Surface, c *Config, w, h float64) error {
	bg, err := ParseColor(c.BG)
	if err != nil {
		return fmt.Errorf("background %q: %w", c.BG, err)
	}
	colors, err := c.Theme().RenderColors()
	if err != nil {
		return fmt.Errorf("theme %q: %w", c.ThemeID, err)
	}

	s.SetColor(bg)
	s.FillRect(0, 0, w, h)

	cols, rows := c.GridDims()
	cellPx := math.Min(w/float64(cols), h/float64(rows))
	RenderTiled(s, c.Pattern(), cols, rows, cellPx, w, h, colors)
	return nil
}
