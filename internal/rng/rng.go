package rng

// goldenGamma is the odd increment used to decorrelate consecutive SplitMix64
// seeds (2^64 / phi, as suggested by Vigna).
const goldenGamma = 0x9E3779B97F4A7C15

// SplitMix64 applies one round of the SplitMix64 output-mixing function.
func SplitMix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// Xorshift128Plus is a two-word Xorshift+ generator.
type Xorshift128Plus struct {
	s0, s1 uint64
}

// NewXorshift128Plus seeds a generator from a single 64-bit value using two
// SplitMix64 iterations, the initialization Vigna recommends.
func NewXorshift128Plus(seed uint64) *Xorshift128Plus {
	seed += goldenGamma
	s0 := SplitMix64(seed)
	seed += goldenGamma
	s1 := SplitMix64(seed)
	return &Xorshift128Plus{s0: s0, s1: s1}
}

// Next advances the generator and returns the next 64-bit output, the sum of
// the two pre-update state words.
func (x *Xorshift128Plus) Next() uint64 {
	s0, s1 := x.s0, x.s1
	x.s0 = s1

	// The 23/18/5 shift triple is the tuning from the reference generator.
	s0 ^= s0 << 23
	s0 ^= s0 >> 18
	s0 ^= s1 ^ (s1 >> 5)

	x.s1 = s0
	return s0 + s1
}
