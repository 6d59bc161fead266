package geogrid

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder captures draw calls for geometry assertions.
type recorder struct {
	color  color.Color
	rects  []record
	tris   []record
	wedges []record
}

type record struct {
	color color.Color
	args  []float64
}

func (r *recorder) SetColor(c color.Color) { r.color = c }
func (r *recorder) FillRect(x, y, w, h float64) {
	r.rects = append(r.rects, record{r.color, []float64{x, y, w, h}})
}
func (r *recorder) FillTriangle(x1, y1, x2, y2, x3, y3 float64) {
	r.tris = append(r.tris, record{r.color, []float64{x1, y1, x2, y2, x3, y3}})
}
func (r *recorder) FillWedge(cx, cy, rad, d1, d2 float64) {
	r.wedges = append(r.wedges, record{r.color, []float64{cx, cy, rad, d1, d2}})
}

var testPalette = mustColors("#111111", "#222222", "#333333", "#444444", "#555555")

func mustColors(hexes ...string) []color.Color {
	out := make([]color.Color, len(hexes))
	for i, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}

func TestRenderCellTriangleCount(t *testing.T) {
	p := Generate(ModeTriangle, 2, NewStream(1))
	rec := &recorder{}
	RenderCell(rec, p, 0, 0, 100, testPalette)
	require.Len(t, rec.tris, 8)
	require.Empty(t, rec.rects)
	require.Empty(t, rec.wedges)
}

func TestRenderCellCircleGeometry(t *testing.T) {
	p := Generate(ModeCircle, 2, NewStream(1))
	rec := &recorder{}
	RenderCell(rec, p, 10, 20, 100, testPalette)
	require.Len(t, rec.rects, 4, "one background rect per sub-cell")
	require.Len(t, rec.wedges, 4, "one wedge per sub-cell")

	for i, cell := range p.Cells {
		rect := rec.rects[i]
		require.InDelta(t, 10+cell.X*100, rect.args[0], 1e-9)
		require.InDelta(t, 20+cell.Y*100, rect.args[1], 1e-9)
		require.InDelta(t, 50, rect.args[2], 1e-9)
		require.InDelta(t, 50, rect.args[3], 1e-9)

		wedge := rec.wedges[i]
		require.InDelta(t, 50, wedge.args[2], 1e-9, "radius equals sub-cell width")
		require.Equal(t, cornerAngles[cell.Corner][0], wedge.args[3])
		require.Equal(t, cornerAngles[cell.Corner][1], wedge.args[4])

		// The wedge center sits on the selected corner of its rectangle.
		wantX := rect.args[0] + cornerOffsets[cell.Corner][0]*50
		wantY := rect.args[1] + cornerOffsets[cell.Corner][1]*50
		require.InDelta(t, wantX, wedge.args[0], 1e-9)
		require.InDelta(t, wantY, wedge.args[1], 1e-9)
	}
}

func TestRenderColorSlotModulo(t *testing.T) {
	p := Pattern{
		Mode:       ModeTriangle,
		Complexity: 1,
		Triangles: []Triangle{
			{V: [3]Point{{0, 0}, {1, 0}, {1, 1}}, Color: 7},
			{V: [3]Point{{0, 0}, {1, 1}, {0, 1}}, Color: 2},
		},
	}
	rec := &recorder{}
	RenderCell(rec, p, 0, 0, 10, testPalette)
	require.Equal(t, testPalette[7%5], rec.tris[0].color)
	require.Equal(t, testPalette[2], rec.tris[1].color)
}

func TestRenderTiledCentering(t *testing.T) {
	p := Generate(ModeTriangle, 1, NewStream(3))
	rec := &recorder{}

	// 4x2 grid of 50px cells on a 300x200 canvas: margins (300-200)/2=50
	// horizontally and (200-100)/2=50 vertically.
	RenderTiled(rec, p, 4, 2, 50, 300, 200, testPalette)
	require.Len(t, rec.tris, 2*4*2)

	first := rec.tris[0]
	require.InDelta(t, 50, first.args[0], 1e-9, "x offset")
	require.InDelta(t, 50, first.args[1], 1e-9, "y offset")

	last := rec.tris[len(rec.tris)-1]
	require.LessOrEqual(t, last.args[4], 250.0, "grid stays inside the right margin")
	require.LessOrEqual(t, last.args[5], 150.0, "grid stays inside the bottom margin")
}

func TestGridOffsetSymmetric(t *testing.T) {
	require.Equal(t, 25.0, GridOffset(250, 200))
	require.Equal(t, 0.0, GridOffset(200, 200))
	require.Equal(t, -10.0, GridOffset(180, 200), "oversized grid overflows evenly")
}

func TestRenderConfigPaintsBackgroundFirst(t *testing.T) {
	c := NewConfig()
	c.SetSeed(1)
	c.SetComplexity(2)
	require.NoError(t, c.SetTheme("ocean"))
	require.NoError(t, c.SetBG(Black))

	rec := &recorder{}
	require.NoError(t, RenderConfig(rec, c, 300, 300))

	require.NotEmpty(t, rec.rects)
	bg := rec.rects[0]
	require.Equal(t, []float64{0, 0, 300, 300}, bg.args, "full-canvas background")

	cols, rows := c.GridDims()
	require.Len(t, rec.tris, 2*2*2*cols*rows)
}
