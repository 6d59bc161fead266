package geogrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHash reports a share code that cannot be decoded.
var ErrInvalidHash = errors.New("invalid hash")

const (
	hashSep = "-"
	sigAuto = "a" // literal token, distinct from palette indices 0..5
)

// Hash serializes the configuration to its compact share code: base-36
// integer fields joined by "-" in the fixed order
// seed-theme-complexity-aspect-bg-sig. Grid size, mode and other viewing
// preferences are deliberately not part of the artwork's identity.
func (c *Config) Hash() string {
	bgIdx := indexOf(c.Palette(), c.BG)
	if bgIdx < 0 {
		bgIdx = 0
	}
	parts := []string{
		strconv.FormatUint(uint64(c.Seed), 36),
		strconv.FormatInt(int64(ThemeIndex(c.ThemeID)), 36),
		strconv.FormatInt(int64(c.Complexity), 36),
		strconv.FormatInt(int64(c.Aspect), 36),
		strconv.FormatInt(int64(bgIdx), 36),
	}
	if c.Sig.Auto {
		parts = append(parts, sigAuto)
	} else {
		sigIdx := indexOf(c.Palette(), c.Sig.Hex)
		if sigIdx < 0 {
			sigIdx = 0
		}
		parts = append(parts, strconv.FormatInt(int64(sigIdx), 36))
	}
	return strings.Join(parts, hashSep)
}

// ParseHash decodes a share code into a fresh configuration. Older, shorter
// codes are accepted: aspect defaults to square, background to black and
// signature to auto. Nothing is committed unless every field validates, so
// a failed decode never leaves a half-updated configuration behind.
func ParseHash(s string) (*Config, error) {
	segs := strings.Split(strings.TrimSpace(s), hashSep)
	if len(segs) < 3 {
		return nil, fmt.Errorf("%w: need at least seed-theme-complexity, got %q", ErrInvalidHash, s)
	}

	seed, err := strconv.ParseUint(segs[0], 36, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: bad seed %q", ErrInvalidHash, segs[0])
	}
	themeIdx, err := strconv.ParseInt(segs[1], 36, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: bad theme %q", ErrInvalidHash, segs[1])
	}
	complexity, err := strconv.ParseInt(segs[2], 36, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: bad complexity %q", ErrInvalidHash, segs[2])
	}
	if complexity < MinComplexity || complexity > MaxComplexity {
		return nil, fmt.Errorf("%w: complexity %d out of range", ErrInvalidHash, complexity)
	}
	theme, ok := ThemeAt(int(themeIdx))
	if !ok {
		return nil, fmt.Errorf("%w: theme index %d out of range", ErrInvalidHash, themeIdx)
	}

	aspect := AspectSquare
	if len(segs) > 3 {
		v, err := strconv.ParseInt(segs[3], 36, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad aspect %q", ErrInvalidHash, segs[3])
		}
		aspect = AspectMode(ClampInt(int(v), int(AspectSquare), int(AspectPortrait)))
	}

	// The palette depends on the decoded theme, so the theme is resolved
	// before the background and signature indices.
	pal := theme.Palette()
	bg := Black
	if len(segs) > 4 {
		v, err := strconv.ParseInt(segs[4], 36, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad background %q", ErrInvalidHash, segs[4])
		}
		bg = pal[ClampInt(int(v), 0, len(pal)-1)]
	}

	sig := AutoSig()
	if len(segs) > 5 && segs[5] != sigAuto {
		v, err := strconv.ParseInt(segs[5], 36, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad signature %q", ErrInvalidHash, segs[5])
		}
		sig = SigChoice{Hex: pal[ClampInt(int(v), 0, len(pal)-1)]}
	}

	c := &Config{
		Seed:       uint32(seed),
		ThemeID:    theme.ID,
		Complexity: int(complexity),
		Aspect:     aspect,
		GridSize:   6,
		BG:         bg,
		Sig:        sig,
		Mode:       ModeTriangle,
	}
	c.computeGrid()
	return c, nil
}
