package geogrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	for _, mode := range []Mode{ModeTriangle, ModeCircle} {
		for k := MinComplexity; k <= MaxComplexity; k++ {
			a := Generate(mode, k, NewStream(4242))
			b := Generate(mode, k, NewStream(4242))
			require.Equal(t, a, b, "mode %v complexity %d", mode, k)
		}
	}
}

func TestGenerateShapeCounts(t *testing.T) {
	for k := MinComplexity; k <= MaxComplexity; k++ {
		tri := Generate(ModeTriangle, k, NewStream(7))
		require.Len(t, tri.Triangles, 2*k*k, "complexity %d", k)
		require.Empty(t, tri.Cells)

		cir := Generate(ModeCircle, k, NewStream(7))
		require.Len(t, cir.Cells, k*k, "complexity %d", k)
		require.Empty(t, cir.Triangles)
	}
}

func TestGenerateValueRanges(t *testing.T) {
	tri := Generate(ModeTriangle, 5, NewStream(99))
	for _, tr := range tri.Triangles {
		require.GreaterOrEqual(t, tr.Color, 0)
		require.Less(t, tr.Color, 8)
		for _, v := range tr.V {
			require.GreaterOrEqual(t, v.X, 0.0)
			require.LessOrEqual(t, v.X, 1.0)
			require.GreaterOrEqual(t, v.Y, 0.0)
			require.LessOrEqual(t, v.Y, 1.0)
		}
	}

	cir := Generate(ModeCircle, 5, NewStream(99))
	for _, c := range cir.Cells {
		require.GreaterOrEqual(t, c.Corner, 0)
		require.Less(t, c.Corner, 4)
		require.GreaterOrEqual(t, c.BG, 0)
		require.Less(t, c.BG, 8)
		require.GreaterOrEqual(t, c.Arc, 0)
		require.Less(t, c.Arc, 8)
	}
}

// The generator's stream consumption order is a wire format: triangle mode
// draws flip/color/color per sub-cell, circle mode corner/color/color, both
// walking the lattice row-major. Mirror the raw stream here and check the
// first cells line up.
func TestGenerateDrawOrder(t *testing.T) {
	const seed = 31337
	const k = 3

	raw := NewStream(seed)
	tri := Generate(ModeTriangle, k, NewStream(seed))
	for cell := 0; cell < k*k; cell++ {
		flip := raw.Float64() > 0.5
		c1 := int(raw.Float64() * 8)
		c2 := int(raw.Float64() * 8)

		first := tri.Triangles[2*cell]
		second := tri.Triangles[2*cell+1]
		require.Equal(t, c1, first.Color, "cell %d", cell)
		require.Equal(t, c2, second.Color, "cell %d", cell)

		// Flip selects the diagonal: both triangles of a flipped cell
		// share the top-left vertex, unflipped cells share bottom-left.
		if flip {
			require.Equal(t, first.V[0], second.V[0], "cell %d shares TL", cell)
		} else {
			require.Equal(t, first.V[2], second.V[2], "cell %d shares BL", cell)
		}
	}

	raw.Reset()
	cir := Generate(ModeCircle, k, NewStream(seed))
	for cell := 0; cell < k*k; cell++ {
		corner := int(raw.Float64() * 4)
		bg := int(raw.Float64() * 8)
		arc := int(raw.Float64() * 8)
		require.Equal(t, corner, cir.Cells[cell].Corner, "cell %d", cell)
		require.Equal(t, bg, cir.Cells[cell].BG, "cell %d", cell)
		require.Equal(t, arc, cir.Cells[cell].Arc, "cell %d", cell)
	}
}

func TestGenerateRowMajorLayout(t *testing.T) {
	const k = 4
	p := Generate(ModeCircle, k, NewStream(5))
	i := 0
	for row := 0; row < k; row++ {
		for col := 0; col < k; col++ {
			c := p.Cells[i]
			require.InDelta(t, float64(col)/k, c.X, 1e-12)
			require.InDelta(t, float64(row)/k, c.Y, 1e-12)
			require.InDelta(t, 1.0/k, c.W, 1e-12)
			require.InDelta(t, 1.0/k, c.H, 1e-12)
			i++
		}
	}
}
