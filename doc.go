// Package bloomer provides a persistable, build-once bloom filter for Go.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Design
//
// Filters in this package are built exactly once from a batch of items and are
// immutable afterwards. [Build] sizes the underlying bit array from the item
// count and a target false positive rate, populates it, and returns a
// read-only [Filter]. There is no post-construction insert path; a filter
// that needs different items is rebuilt. This matches the intended usage
// pattern: construct, persist, then query many times.
//
// Sizing uses the standard formulas for a bloom filter holding n items at
// false positive rate p:
//
//	m = ceil(-n * ln(p) / ln(2)²)   // bits
//	k = round((m / n) * ln(2))      // hash probes per item, minimum 1
//
// # Hashing
//
// Rather than computing k independent hashes per item, bloomer computes two
// seeded 64-bit xxh3 hashes h1 and h2 of the item's raw bytes and derives the
// i-th bit position as (h1 + i*h2) mod m. This is the double-hashing scheme of
// Kirsch and Mitzenmacher ("Less Hashing, Same Performance"), which preserves
// the expected false positive behavior at a fraction of the hashing cost.
//
// The two seeds are fixed constants (see hash.go). They are part of the
// persisted format contract: creation and query must hash identically, so the
// seeds never change within a format version.
//
// # Wire format
//
// [Filter.MarshalBinary] produces a versioned little-endian encoding of
// (k, m, item count) followed by the packed bit array. Bit i of the filter is
// stored at byte i/8, in bit position i%8 – bit 0 is the least significant
// bit of byte 0. The mapping is stable because serialized filters are
// persisted and queried across process boundaries.
//
// # Thread safety
//
// A built [Filter] is immutable, so any number of goroutines may call
// [Filter.Contains] and [Filter.ContainsBatch] concurrently with no locking.
// [Filter.ContainsBatch] additionally fans large batches out across
// GOMAXPROCS-bounded workers internally; per-item results always come back in
// input order.
//
// # Persistence
//
// The store subpackage persists serialized filters in SQLite addressed by an
// integer id, optionally zstd-compressed, and exposes the create/query service
// surface. The core in this package performs no I/O.
//
// # References
//
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
package bloomer
