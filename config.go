package geogrid

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// AspectMode fixes the canvas and grid proportions.
type AspectMode int

const (
	AspectSquare    AspectMode = iota // 1:1
	AspectLandscape                   // 3:2
	AspectPortrait                    // 2:3
)

func (a AspectMode) String() string {
	switch a {
	case AspectLandscape:
		return "landscape"
	case AspectPortrait:
		return "portrait"
	}
	return "square"
}

// ParseAspect maps an aspect name to its AspectMode value.
func ParseAspect(s string) (AspectMode, bool) {
	switch s {
	case "square":
		return AspectSquare, true
	case "landscape":
		return AspectLandscape, true
	case "portrait":
		return AspectPortrait, true
	}
	return 0, false
}

// SigChoice is a signature color selection: automatic, or an explicit
// member of the current palette.
type SigChoice struct {
	Auto bool
	Hex  string
}

// AutoSig is the automatic signature color selection.
func AutoSig() SigChoice { return SigChoice{Auto: true} }

// ErrUnknownTheme reports a theme id missing from the catalog.
var ErrUnknownTheme = fmt.Errorf("unknown theme")

// ErrColorNotInPalette reports a color outside the current valid set.
var ErrColorNotInPalette = fmt.Errorf("color not in palette")

const (
	MinComplexity = 1
	MaxComplexity = 5
	MinGridSize   = 2
)

// Config is the authoritative parameter set for one artwork. Mutate it
// through the setters: they keep the derived grid dimensions, the palette
// membership of the background and signature colors, and the cached pattern
// consistent with every change.
type Config struct {
	Seed       uint32
	ThemeID    string
	Complexity int
	Aspect     AspectMode
	GridSize   int
	BG         string
	Sig        SigChoice
	Mode       Mode

	gridCols int
	gridRows int
	pattern  *Pattern // nil when stale
}

// NewConfig returns a configuration with a fresh random seed and defaults.
func NewConfig() *Config {
	c := &Config{
		Seed:       RandomSeed(),
		ThemeID:    Themes[0].ID,
		Complexity: 3,
		Aspect:     AspectSquare,
		GridSize:   6,
		BG:         Black,
		Sig:        AutoSig(),
		Mode:       ModeTriangle,
	}
	c.computeGrid()
	return c
}

// Theme resolves the configured theme from the catalog.
func (c *Config) Theme() Theme {
	if i := ThemeIndex(c.ThemeID); i >= 0 {
		return Themes[i]
	}
	return Themes[0]
}

// Palette returns the valid background/signature color set for the
// configured theme.
func (c *Config) Palette() []string {
	return c.Theme().Palette()
}

// SetSeed replaces the seed and invalidates the cached pattern.
func (c *Config) SetSeed(seed uint32) {
	c.Seed = seed % MaxSeed
	c.pattern = nil
}

// SetTheme switches themes and re-validates the background and signature
// colors against the new palette, resetting them to black and auto when
// they no longer belong.
func (c *Config) SetTheme(id string) error {
	if ThemeIndex(id) < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	c.ThemeID = id
	pal := c.Palette()
	if indexOf(pal, c.BG) < 0 {
		c.BG = Black
	}
	if !c.Sig.Auto && indexOf(pal, c.Sig.Hex) < 0 {
		c.Sig = AutoSig()
	}
	return nil
}

// SetComplexity clamps k into [1,5] and invalidates the cached pattern.
func (c *Config) SetComplexity(k int) {
	c.Complexity = ClampInt(k, MinComplexity, MaxComplexity)
	c.pattern = nil
}

// SetMode switches the tiling family and invalidates the cached pattern.
func (c *Config) SetMode(m Mode) {
	c.Mode = m
	c.pattern = nil
}

// SetAspect changes the aspect mode and recomputes the grid dimensions.
func (c *Config) SetAspect(a AspectMode) {
	c.Aspect = a
	c.computeGrid()
}

// SetGridSize changes the base tile count and recomputes the grid dimensions.
func (c *Config) SetGridSize(n int) {
	if n < MinGridSize {
		n = MinGridSize
	}
	c.GridSize = n
	c.computeGrid()
}

// SetBG sets the background color, which must be in the current palette.
func (c *Config) SetBG(hex string) error {
	if indexOf(c.Palette(), hex) < 0 {
		return fmt.Errorf("%w: %q", ErrColorNotInPalette, hex)
	}
	c.BG = hex
	return nil
}

// SetSig sets the signature color choice; explicit colors must be in the
// current palette.
func (c *Config) SetSig(sig SigChoice) error {
	if !sig.Auto && indexOf(c.Palette(), sig.Hex) < 0 {
		return fmt.Errorf("%w: %q", ErrColorNotInPalette, sig.Hex)
	}
	c.Sig = sig
	return nil
}

// GridDims returns the derived tile counts: gridSize along the short axis
// and round(gridSize*1.5) along the elongated one, both at least 2.
func (c *Config) GridDims() (cols, rows int) {
	return c.gridCols, c.gridRows
}

func (c *Config) computeGrid() {
	cols, rows := c.GridSize, c.GridSize
	switch c.Aspect {
	case AspectLandscape:
		cols = int(math.Round(float64(c.GridSize) * 1.5))
	case AspectPortrait:
		rows = int(math.Round(float64(c.GridSize) * 1.5))
	}
	if cols < MinGridSize {
		cols = MinGridSize
	}
	if rows < MinGridSize {
		rows = MinGridSize
	}
	c.gridCols, c.gridRows = cols, rows
}

// Pattern returns the cell structure for the current seed, mode and
// complexity, regenerating it from a fresh stream when stale. Render and
// pattern therefore always correspond to the same parameters.
func (c *Config) Pattern() Pattern {
	if c.pattern == nil {
		p := Generate(c.Mode, c.Complexity, NewStream(c.Seed))
		c.pattern = &p
	}
	return *c.pattern
}

// EffectiveSig resolves the signature color: the explicit choice when one
// is committed, otherwise white over dark backgrounds and black over light
// ones.
func (c *Config) EffectiveSig() string {
	if !c.Sig.Auto {
		return c.Sig.Hex
	}
	bg, err := colorful.Hex(c.BG)
	if err != nil {
		return "#ffffff"
	}
	if l, _, _ := bg.Luv(); l < 0.5 {
		return "#ffffff"
	}
	return Black
}

// CanvasSize returns pixel dimensions for the aspect mode with the short
// axis equal to base.
func (c *Config) CanvasSize(base int) (w, h int) {
	switch c.Aspect {
	case AspectLandscape:
		return base * 3 / 2, base
	case AspectPortrait:
		return base, base * 3 / 2
	}
	return base, base
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
