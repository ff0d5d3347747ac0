// Package bucket maps 32-bit hash values onto hash-table buckets and cluster
// nodes.
//
// Mod and Mask are the plain selectors for fixed-size tables. Ring is a
// weighted consistent-hash ring for node selection: keys move only when the
// node set changes, and only the keys that hashed to the affected node.
//
// All selection is keyed by hashers.Sum, so placement is stable across
// processes and platforms for a given seed.
package bucket
