// SPDX-License-Identifier: MIT

package synth

// SplitMix64 is a tiny 64-bit generator implementing math/rand/v2.Source.
// Its output is fully specified by the seed and portable across platforms
// and languages, which keeps generated fixtures reproducible outside Go.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 returns a generator whose first output depends only on seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Uint64 advances the state by the golden-ratio increment and mixes it.
func (s *SplitMix64) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}
