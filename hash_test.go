package geogrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashRoundTrip(t *testing.T) {
	for ti, theme := range Themes {
		for _, aspect := range []AspectMode{AspectSquare, AspectLandscape, AspectPortrait} {
			for bgIdx := 0; bgIdx < 6; bgIdx++ {
				c := &Config{
					Seed:       uint32(ti*1000 + bgIdx),
					ThemeID:    theme.ID,
					Complexity: 1 + (bgIdx % 5),
					Aspect:     aspect,
					GridSize:   6,
					BG:         theme.Palette()[bgIdx],
					Sig:        AutoSig(),
				}
				c.computeGrid()

				got, err := ParseHash(c.Hash())
				require.NoError(t, err, "hash %s", c.Hash())
				require.Equal(t, c.Seed, got.Seed)
				require.Equal(t, c.ThemeID, got.ThemeID)
				require.Equal(t, c.Complexity, got.Complexity)
				require.Equal(t, c.Aspect, got.Aspect)
				require.Equal(t, c.BG, got.BG)
				require.Equal(t, c.Sig, got.Sig)
			}
		}
	}
}

func TestHashRoundTripExplicitSig(t *testing.T) {
	theme := Themes[2]
	for sigIdx := 0; sigIdx < 6; sigIdx++ {
		c := &Config{
			Seed:       123456789,
			ThemeID:    theme.ID,
			Complexity: 4,
			Aspect:     AspectLandscape,
			GridSize:   6,
			BG:         Black,
			Sig:        SigChoice{Hex: theme.Palette()[sigIdx]},
		}
		c.computeGrid()

		got, err := ParseHash(c.Hash())
		require.NoError(t, err)
		require.Equal(t, c.Sig, got.Sig, "sig index %d", sigIdx)
	}
}

// Legacy three-segment hashes predate aspect, background and signature.
func TestParseHashLegacy(t *testing.T) {
	c, err := ParseHash("a-0-2")
	require.NoError(t, err)
	require.Equal(t, uint32(10), c.Seed) // "a" is base-36
	require.Equal(t, Themes[0].ID, c.ThemeID)
	require.Equal(t, 2, c.Complexity)
	require.Equal(t, AspectSquare, c.Aspect)
	require.Equal(t, Black, c.BG)
	require.True(t, c.Sig.Auto)
}

func TestParseHashInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too few segments", "1-2"},
		{"theme out of range", "x-y-z"}, // y is index 34
		{"theme way out of range", "5-999-2"},
		{"complexity zero", "1-0-0"},
		{"complexity too high", "1-0-6"},
		{"seed not base36", "!!-0-2"},
		{"aspect not base36", "1-0-2-??"},
		{"background not base36", "1-0-2-0-??"},
		{"signature not base36", "1-0-2-0-0-??"},
	}
	for _, tt := range tests {
		c, err := ParseHash(tt.in)
		require.Nil(t, c, tt.name)
		require.ErrorIs(t, err, ErrInvalidHash, tt.name)
	}
}

// A failed decode must leave existing state alone; ParseHash builds a fresh
// Config, so the caller's is untouched by construction. Pin it anyway.
func TestParseHashDoesNotMutate(t *testing.T) {
	live := NewConfig()
	live.SetSeed(777)
	before := *live

	_, err := ParseHash("5-999-2")
	require.Error(t, err)
	require.Equal(t, before.Seed, live.Seed)
	require.Equal(t, before.ThemeID, live.ThemeID)
	require.Equal(t, before.Complexity, live.Complexity)
}

// Complexity "z" would be 35 in base 36: it parses fine and then fails
// range validation.
func TestParseHashValidationOrder(t *testing.T) {
	_, err := ParseHash("1-0-z")
	require.ErrorIs(t, err, ErrInvalidHash)
	require.Contains(t, err.Error(), "complexity")

	// Background clamps against the palette of the *decoded* theme, so an
	// oversized index lands on the last palette entry rather than failing.
	c, err := ParseHash("1-1-3-0-9")
	require.NoError(t, err)
	require.Equal(t, Themes[1].Colors[4], c.BG)
}

func TestHashAutoSigToken(t *testing.T) {
	c := NewConfig()
	c.Sig = AutoSig()
	hash := c.Hash()
	require.Regexp(t, `-a$`, hash)

	got, err := ParseHash(hash)
	require.NoError(t, err)
	require.True(t, got.Sig.Auto)
}
