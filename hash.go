package bloomer

import "github.com/zeebo/xxh3"

// Hash seeds for the two base hashes of the double-hashing scheme. These are
// part of the persisted format contract: a filter queried with different
// seeds than it was built with would silently return garbage, so the values
// are fixed for the life of format version 1.
const (
	seedH1 uint64 = 0x9E3779B97F4A7C15
	seedH2 uint64 = 0xC2B2AE3D27D4EB4F
)

// hashPair computes the two independent base hash values for an item.
// h2 is forced to 1 when it hashes to 0 so the probe sequence
// (h1 + i*h2) mod m never degenerates to a single position.
func hashPair(item []byte) (h1, h2 uint64) {
	h1 = xxh3.HashSeed(item, seedH1)
	h2 = xxh3.HashSeed(item, seedH2)
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

// bitPosition returns the i-th probe position for an item with base hashes
// h1 and h2, in a filter of m bits (Kirsch–Mitzenmacher double hashing).
func bitPosition(h1, h2 uint64, i uint32, m uint64) uint64 {
	return (h1 + uint64(i)*h2) % m
}
