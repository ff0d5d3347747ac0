// Package rng implements the small deterministic generators that seed the
// Mult32 random table: Sebastiano Vigna's SplitMix64 output-mixing function
// and the Xorshift128+ recurrence (passes all BigCrush tests).
//
// These are not general-purpose randomness sources. Their only job is to
// expand one fixed 64-bit constant into the same table of 64-bit words on
// every platform, every run.
package rng
