package geogrid

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Black is always a legal background or signature color, whatever the theme.
const Black = "#000000"

// Theme is a named palette of five colors.
type Theme struct {
	ID     string
	Name   string
	Colors [5]string
}

// Themes is the static catalog. Order is load-bearing: the catalog index is
// encoded into every hash, so entries are append-only and never reordered.
var Themes = []Theme{
	{
		ID:     "mondrian",
		Name:   "Mondrian",
		Colors: [5]string{"#d40920", "#1356a2", "#f7d842", "#f2f5f1", "#222222"},
	},
	{
		ID:     "bauhaus",
		Name:   "Bauhaus",
		Colors: [5]string{"#e47a2c", "#baccc0", "#6c958f", "#40363f", "#d7a26c"},
	},
	{
		ID:     "pastel",
		Name:   "Pastel",
		Colors: [5]string{"#ffadad", "#ffd6a5", "#fdffb6", "#caffbf", "#9bf6ff"},
	},
	{
		ID:     "neon",
		Name:   "Neon",
		Colors: [5]string{"#ff2079", "#04f5ff", "#b3ff00", "#ffe700", "#7d12ff"},
	},
	{
		ID:     "earth",
		Name:   "Earth",
		Colors: [5]string{"#5f4b32", "#8a6f48", "#c2a878", "#e8d6b3", "#3e5622"},
	},
	{
		ID:     "ocean",
		Name:   "Ocean",
		Colors: [5]string{"#03045e", "#0077b6", "#00b4d8", "#90e0ef", "#caf0f8"},
	},
	{
		ID:     "sunset",
		Name:   "Sunset",
		Colors: [5]string{"#03071e", "#d00000", "#e85d04", "#faa307", "#ffba08"},
	},
	{
		ID:     "mono",
		Name:   "Mono",
		Colors: [5]string{"#111111", "#444444", "#777777", "#aaaaaa", "#dddddd"},
	},
}

// ThemeIndex returns the catalog position of id, or -1 if unknown.
func ThemeIndex(id string) int {
	for i, t := range Themes {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// ThemeAt returns the catalog entry at index i.
func ThemeAt(i int) (Theme, bool) {
	if i < 0 || i >= len(Themes) {
		return Theme{}, false
	}
	return Themes[i], true
}

// Palette returns the valid background/signature color set for the theme:
// black followed by the five theme colors, in catalog order.
func (t Theme) Palette() []string {
	p := make([]string, 0, len(t.Colors)+1)
	p = append(p, Black)
	p = append(p, t.Colors[:]...)
	return p
}

// RenderColors parses the five theme colors for drawing.
func (t Theme) RenderColors() ([]color.Color, error) {
	out := make([]color.Color, len(t.Colors))
	for i, hex := range t.Colors {
		c, err := ParseColor(hex)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// ParseColor parses a #rrggbb hex string.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, err
	}
	return c, nil
}
