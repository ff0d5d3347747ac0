package bucket

import "github.com/dwgero/hashers"

// Mod maps h onto one of n buckets. n must be positive.
func Mod(h uint32, n int) int {
	return int(h % uint32(n))
}

// Mask maps h onto one of n buckets where n is a power of two. Cheaper than
// Mod; the caller guarantees the power-of-two invariant.
func Mask(h uint32, n int) int {
	return int(h & uint32(n-1))
}

// Of hashes key under seed and maps it onto one of n buckets.
func Of(key []byte, seed uint64, n int) int {
	return Mod(hashers.Sum(key, seed), n)
}
