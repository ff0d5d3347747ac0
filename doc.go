// Package hashers provides fast, portable 32-bit hashing for hash-table
// bucket selection, supporting tables of up to 4 billion buckets.
//
// The package implements David W. Gero's Combo32 construction: Komi32 (a
// 32-bit fork of Aleksey Vaneev's komihash) for inputs under 64 bytes and
// Mult32 (a table-keyed multiply-fold hasher) for everything else. Both pass
// all SMHasher3 tests and use no special CPU instructions; Sum dispatches to
// whichever is faster for the input length.
//
// # Quick Start
//
//	h := hashers.Sum(key, 0)                  // general-purpose entry point
//	h := hashers.Sum(key, seed)               // keyed variant, any 64-bit seed
//	hs := hashers.SumBatch(keys, seed)        // bulk table loads, sharded across CPUs
//
// The seed is an additional entropy source, not a secret: the hash is not
// cryptographically secure and must not be used where preimage resistance
// matters. Its contract is statistical quality and throughput.
//
// # Determinism
//
// Outputs are a pure function of (bytes, seed). Words are decoded
// little-endian on every platform, so values agree across architectures; see
// the internal byteorder package for the big-endian interoperability
// override.
//
// # Initialization
//
// Mult32 reads a process-wide table of pseudo-random constants, built lazily
// on first use behind a sync.Once and immutable afterwards. Call Init during
// single-threaded startup to front-load the one-time cost; concurrent first
// use is safe either way.
//
// # Streaming
//
// There is no streaming API: both algorithms are whole-buffer
// constructions whose finalization depends on the total length.
package hashers
