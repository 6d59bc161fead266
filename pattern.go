package geogrid

// Mode selects the tiling family a pattern is generated in.
type Mode int

const (
	ModeTriangle Mode = iota
	ModeCircle
)

func (m Mode) String() string {
	switch m {
	case ModeTriangle:
		return "triangle"
	case ModeCircle:
		return "circle"
	}
	return "unknown"
}

// ParseMode maps a mode name to its Mode value.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "triangle":
		return ModeTriangle, true
	case "circle":
		return ModeCircle, true
	}
	return 0, false
}

// Point is a coordinate normalized to the unit pattern cell.
type Point struct {
	X, Y float64
}

// Triangle is one filled triangle of a triangle-mode pattern. Color is a
// slot in [0,8) resolved modulo the palette size at render time.
type Triangle struct {
	V     [3]Point
	Color int
}

// CircleCell is one sub-cell of a circle-mode pattern: a filled rectangle
// with a quarter-disc wedge anchored in one of its corners. Corner counts
// clockwise from top-left. BG and Arc are color slots in [0,8).
type CircleCell struct {
	X, Y, W, H float64
	Corner     int
	BG, Arc    int
}

// Pattern is the immutable description of one repeatable grid cell. Exactly
// one of Triangles or Cells is populated, according to Mode. The renderer
// tiles the same cell unchanged across the whole grid.
type Pattern struct {
	Mode       Mode
	Complexity int
	Triangles  []Triangle
	Cells      []CircleCell
}

// Generate builds the repeatable cell for the given mode and complexity,
// consuming values from rnd. The sub-cell lattice is walked row-major and
// each sub-cell draws a fixed number of values in a fixed order (triangle:
// diagonal flip then two color slots; circle: corner then two color slots).
// That consumption order is part of the reproducibility contract.
//
// Complexity is trusted to be in range; the codec validates untrusted input
// before it can reach here.
func Generate(mode Mode, complexity int, rnd *Stream) Pattern {
	n := complexity // sub-cells per axis, gridRes-1
	p := Pattern{Mode: mode, Complexity: complexity}

	switch mode {
	case ModeCircle:
		p.Cells = make([]CircleCell, 0, n*n)
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				corner := rnd.IntN(4)
				bg := rnd.IntN(8)
				arc := rnd.IntN(8)
				p.Cells = append(p.Cells, CircleCell{
					X:      float64(col) / float64(n),
					Y:      float64(row) / float64(n),
					W:      1 / float64(n),
					H:      1 / float64(n),
					Corner: corner,
					BG:     bg,
					Arc:    arc,
				})
			}
		}
	default:
		p.Triangles = make([]Triangle, 0, 2*n*n)
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				flip := rnd.Bool()
				c1 := rnd.IntN(8)
				c2 := rnd.IntN(8)

				tl := Point{float64(col) / float64(n), float64(row) / float64(n)}
				tr := Point{float64(col+1) / float64(n), float64(row) / float64(n)}
				br := Point{float64(col+1) / float64(n), float64(row+1) / float64(n)}
				bl := Point{float64(col) / float64(n), float64(row+1) / float64(n)}

				if flip {
					p.Triangles = append(p.Triangles,
						Triangle{V: [3]Point{tl, tr, br}, Color: c1},
						Triangle{V: [3]Point{tl, br, bl}, Color: c2})
				} else {
					p.Triangles = append(p.Triangles,
						Triangle{V: [3]Point{tl, tr, bl}, Color: c1},
						Triangle{V: [3]Point{tr, br, bl}, Color: c2})
				}
			}
		}
	}
	return p
}
