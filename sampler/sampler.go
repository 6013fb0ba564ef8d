// seehuhn.de/go/enigma - generative paint-by-number tessellations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package sampler provides the deterministic pseudo-random streams used by
// all randomised stages of the generator.
//
// A Stream is a mulberry32 generator.  Two streams constructed from the same
// seed produce the same sequence on every platform.  Independent streams
// for parallel work are obtained with [Derive], which mixes the run seed and
// a stream index with SplitMix64.
package sampler

import "math"

// Stream is a deterministic pseudo-random number generator.
// A Stream must not be shared between goroutines.
type Stream struct {
	state uint32
}

// New returns a stream seeded with the given value.
// Any seed is valid, including 0 and negative values.  Only the low 32 bits
// of the seed are used.
func New(seed int64) *Stream {
	return &Stream{state: uint32(seed)}
}

// Derive returns a stream for sub-stream index of the given seed.
// Streams for different indices are statistically independent of each
// other and of New(seed).
func Derive(seed int64, index int) *Stream {
	x := uint64(seed) ^ (uint64(index) + goldenGamma)
	x += goldenGamma
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return &Stream{state: uint32(x ^ x>>32)}
}

// Uint32 returns the next 32 bits of the stream.
func (s *Stream) Uint32() uint32 {
	s.state += 0x6d2b79f5
	t := s.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns a uniformly distributed value in [0, 1).
func (s *Stream) Float64() float64 {
	return float64(s.Uint32()) / (1 << 32)
}

// IntRange returns a uniformly distributed integer in [lo, hi].
// It panics if hi < lo.
func (s *Stream) IntRange(lo, hi int) int {
	if hi < lo {
		panic("sampler: empty range")
	}
	span := float64(hi) - float64(lo) + 1
	k := lo + int(math.Floor(s.Float64()*span))
	return min(k, hi)
}

// IntN returns a uniformly distributed integer in [0, n).
// It panics if n <= 0.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		panic("sampler: invalid argument to IntN")
	}
	return s.IntRange(0, n-1)
}

// Bool returns true with probability p.
func (s *Stream) Bool(p float64) bool {
	return s.Float64() < p
}

// Perm returns a pseudo-random permutation of 0, ..., n-1,
// using the Fisher-Yates shuffle.
func (s *Stream) Perm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.IntRange(0, i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// goldenGamma is the SplitMix64 increment, 2^64 divided by the golden ratio.
const goldenGamma = 0x9e3779b97f4a7c15
