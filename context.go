package geogrid

import (
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// kappa scales a radius to the cubic Bezier control distance that best
// approximates a quarter circle.
const kappa = 0.5522847498307933

// Context is the vector drawing surface over tdewolff/canvas. It satisfies
// Surface in the renderer's y-down pixel frame (the flip into the canvas's
// y-up frame happens here) and writes SVG, PDF or rasterized PNG output.
type Context struct {
	c      *canvas.Canvas
	ctx    *canvas.Context
	height float64
}

// NewContext returns a vector surface of width x height units.
func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		height: height,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// WritePNG rasterizes the canvas to a PNG file.
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(3.2))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) Push() {
	ctx.ctx.Push()
}

// Pop restores the last pushed draw state and uses that as the current draw state. If there are no
// states on the stack, this will do nothing.
func (ctx *Context) Pop() {
	ctx.ctx.Pop()
}

// Reset empties the canvas.
func (ctx *Context) Reset() {
	ctx.c.Reset()
}

// SetColor sets the fill color for subsequent fill operations.
func (ctx *Context) SetColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

// flipY maps a y-down pixel coordinate into the canvas's y-up frame.
func (ctx *Context) flipY(y float64) float64 {
	return ctx.height - y
}

// FillRect fills an axis-aligned rectangle given by its top-left corner.
func (ctx *Context) FillRect(x, y, w, h float64) {
	ctx.ctx.DrawPath(x, ctx.flipY(y+h), canvas.Rectangle(w, h))
}

// FillTriangle fills the triangle with the given vertices.
func (ctx *Context) FillTriangle(x1, y1, x2, y2, x3, y3 float64) {
	ctx.ctx.MoveTo(x1, ctx.flipY(y1))
	ctx.ctx.LineTo(x2, ctx.flipY(y2))
	ctx.ctx.LineTo(x3, ctx.flipY(y3))
	ctx.ctx.Close()
	ctx.ctx.Fill()
}

// FillWedge fills the pie slice from deg1 to deg2 around cx,cy. The arc is
// a single cubic Bezier, which for the quarter-circle spans this renderer
// produces is accurate to a fraction of a pixel.
func (ctx *Context) FillWedge(cx, cy, r, deg1, deg2 float64) {
	a1 := deg1 * math.Pi / 180
	a2 := deg2 * math.Pi / 180

	// Wedge geometry in the y-down frame.
	p1x, p1y := cx+r*math.Cos(a1), cy+r*math.Sin(a1)
	p2x, p2y := cx+r*math.Cos(a2), cy+r*math.Sin(a2)
	c1x, c1y := p1x-kappa*r*math.Sin(a1), p1y+kappa*r*math.Cos(a1)
	c2x, c2y := p2x+kappa*r*math.Sin(a2), p2y-kappa*r*math.Cos(a2)

	ctx.ctx.MoveTo(cx, ctx.flipY(cy))
	ctx.ctx.LineTo(p1x, ctx.flipY(p1y))
	ctx.ctx.CubeTo(c1x, ctx.flipY(c1y), c2x, ctx.flipY(c2y), p2x, ctx.flipY(p2y))
	ctx.ctx.Close()
	ctx.ctx.Fill()
}
