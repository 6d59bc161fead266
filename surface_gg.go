package geogrid

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Raster is the fogleman/gg-backed raster surface.
type Raster struct {
	dc *gg.Context
}

// NewRaster returns a raster surface of w x h pixels.
func NewRaster(w, h int) *Raster {
	return &Raster{dc: gg.NewContext(w, h)}
}

// Context exposes the underlying gg context for text and image overlays.
func (r *Raster) Context() *gg.Context {
	return r.dc
}

// Image returns the rendered pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) SetColor(c color.Color) {
	r.dc.SetColor(c)
}

func (r *Raster) FillRect(x, y, w, h float64) {
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Fill()
}

func (r *Raster) FillTriangle(x1, y1, x2, y2, x3, y3 float64) {
	r.dc.MoveTo(x1, y1)
	r.dc.LineTo(x2, y2)
	r.dc.LineTo(x3, y3)
	r.dc.ClosePath()
	r.dc.Fill()
}

// FillWedge fills the pie slice from deg1 to deg2. gg shares the y-down
// screen convention, so the degrees pass through unchanged.
func (r *Raster) FillWedge(cx, cy, rad, deg1, deg2 float64) {
	r.dc.MoveTo(cx, cy)
	r.dc.DrawArc(cx, cy, rad, gg.Radians(deg1), gg.Radians(deg2))
	r.dc.ClosePath()
	r.dc.Fill()
}
