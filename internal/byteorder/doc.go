// Package byteorder resolves the byte-interpretation convention used when
// decoding message words, a capability descriptor fixed at process startup.
//
// # Convention vs. native order
//
// The hashers always decode words little-endian by default, regardless of the
// host's native endianness. Because decoding is explicit, the 32-bit output
// for a given byte sequence is identical on every platform: a little-endian
// and a big-endian machine agree without any build configuration.
//
// The HASHERS_BYTEORDER environment variable ("little" or "big") selects the
// opposite convention for interoperability with peers that decode words
// big-endian. It is read exactly once, at package init; the convention cannot
// change while the process runs.
//
// # Capabilities
//
// Native(), SwapRequired() and UnalignedReads() report host properties. They
// are advisory: decoding is correct on every platform, these only describe
// what the compiler can turn into a single load instruction.
package byteorder
