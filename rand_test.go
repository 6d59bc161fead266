package geogrid

import "testing"

// Known LCG states for the frozen multiplier/increment pair. Regenerated
// previews depend on these exact values, so they are pinned here.
func TestStreamKnownSequence(t *testing.T) {
	tests := []struct {
		seed   uint32
		states []uint32
	}{
		{1, []uint32{1015568748, 1586005467, 2165703038, 3027450565}},
		{42, []uint32{1083814273, 378494188, 2479403867, 955863294}},
	}

	for _, tt := range tests {
		s := NewStream(tt.seed)
		for i, state := range tt.states {
			want := float64(state) / (1 << 32)
			if got := s.Float64(); got != want {
				t.Errorf("seed %d draw %d: want %v, got %v", tt.seed, i, want, got)
			}
		}
	}
}

func TestStreamIndependentInstancesMatch(t *testing.T) {
	a := NewStream(987654)
	b := NewStream(987654)
	for i := 0; i < 1000; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("draw %d diverged: %v vs %v", i, av, bv)
		}
	}
}

func TestStreamReset(t *testing.T) {
	s := NewStream(7)
	first := []float64{s.Float64(), s.Float64(), s.Float64()}
	s.Reset()
	for i, want := range first {
		if got := s.Float64(); got != want {
			t.Errorf("after reset, draw %d: want %v, got %v", i, want, got)
		}
	}
}

func TestStreamRanges(t *testing.T) {
	s := NewStream(123456789)
	for i := 0; i < 10000; i++ {
		v := s.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
	s.Reset()
	for i := 0; i < 10000; i++ {
		n := s.IntN(8)
		if n < 0 || n >= 8 {
			t.Fatalf("IntN draw %d out of [0,8): %d", i, n)
		}
	}
}

func TestRandomSeedCanonical(t *testing.T) {
	for i := 0; i < 100; i++ {
		if s := RandomSeed(); s >= MaxSeed {
			t.Fatalf("seed %d above canonical bound", s)
		}
	}
}
