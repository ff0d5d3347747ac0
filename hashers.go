package hashers

// ShortInputLimit is the input length at which Sum switches from Komi32 to
// Mult32.
const ShortInputLimit = 64

// Sum returns the 32-bit hash of data under seed. Inputs shorter than
// ShortInputLimit go through Komi32, longer ones through Mult32. This is the
// intended general-purpose entry point; the algorithm-specific functions
// exist for callers that need one of them regardless of length.
func Sum(data []byte, seed uint64) uint32 {
	if len(data) < ShortInputLimit {
		return Komi32(data, seed)
	}
	return Mult32(data, seed)
}

// SumString returns the 32-bit hash of s under seed.
func SumString(s string, seed uint64) uint32 {
	return Sum([]byte(s), seed)
}
