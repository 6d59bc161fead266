package geogrid

import "time"

// Linear congruential generator parameters. These exact constants are a
// compatibility contract: a thumbnail regenerated from a hash must consume
// the identical value sequence as the full-size render did.
const (
	lcgMul = 1664525
	lcgInc = 1013904223
)

// MaxSeed bounds the canonical seed range.
const MaxSeed = 999999999

// Jan 1, 2020 (keeps clock-derived seeds small)
const epoch2020 = 1577836800

// Stream is a deterministic random stream over 32-bit LCG state. Two
// streams built from the same seed yield bit-identical sequences.
type Stream struct {
	state uint32
	seed  uint32
}

// NewStream returns a stream positioned at the start of the sequence for seed.
func NewStream(seed uint32) *Stream {
	return &Stream{state: seed, seed: seed}
}

// Reset rewinds the stream to its initial seed.
func (s *Stream) Reset() {
	s.state = s.seed
}

// Seed returns the seed the stream was built with.
func (s *Stream) Seed() uint32 {
	return s.seed
}

// Float64 advances the stream and returns the next value in [0, 1).
func (s *Stream) Float64() float64 {
	s.state = s.state*lcgMul + lcgInc // uint32 arithmetic wraps mod 2^32
	return float64(s.state) / (1 << 32)
}

// IntN advances the stream and returns the next value in [0, n).
func (s *Stream) IntN(n int) int {
	return int(s.Float64() * float64(n))
}

// Bool advances the stream and returns the next coin flip.
func (s *Stream) Bool() bool {
	return s.Float64() > 0.5
}

// RandomSeed derives a fresh canonical seed from the wall clock.
func RandomSeed() uint32 {
	ns := time.Now().UnixNano() - epoch2020*int64(time.Second)
	return uint32(ns % MaxSeed)
}
