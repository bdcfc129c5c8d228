// Package rng provides the deterministic pseudo-random stream used by all
// procedural generation. Streams are seeded from strings so regenerating the
// same year or team reproduces identical output, while different contexts
// diverge ("{seed}_{year}", "{seed}_{team}_{year}").
package rng

import (
	"strconv"
)

// SeedFromString hashes any string to a stable 32-bit seed (FNV-1a).
func SeedFromString(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// Stream is a mulberry32 generator. Same seed, same call order, same sequence.
type Stream struct {
	state uint32
	seq   uint64
}

// New creates a stream from a numeric seed.
func New(seed uint32) *Stream {
	return &Stream{state: seed}
}

// NewFromString creates a stream seeded from a context string.
func NewFromString(s string) *Stream {
	return New(SeedFromString(s))
}

// Float64 returns the next value in [0, 1).
func (s *Stream) Float64() float64 {
	s.state += 0x6D2B79F5
	s.seq++
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// Intn returns a value in [0, n). Returns 0 for n <= 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Float64() * float64(n))
}

// Between returns a float in [lo, hi).
func (s *Stream) Between(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// IntBetween returns an int in [lo, hi] inclusive.
func (s *Stream) IntBetween(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

// Bool returns true with probability p.
func (s *Stream) Bool(p float64) bool {
	return s.Float64() < p
}

// Pick returns a uniformly chosen element of items. Panics on empty input,
// same as an out-of-range index would.
func Pick[T any](s *Stream, items []T) T {
	return items[s.Intn(len(items))]
}

// ID derives a deterministic identifier from the stream. The original design
// mixed wall-clock time into ids, which broke generation reproducibility; here
// the id is a function of the stream position only.
func (s *Stream) ID(prefix string) string {
	n := uint64(s.Float64() * 1e9)
	return prefix + "_" + strconv.FormatUint(n, 36) + "_" + strconv.FormatUint(s.seq, 36)
}
