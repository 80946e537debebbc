package bloomer

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"sync"
)

// Filter is a bloom filter built once from a batch of items and immutable
// afterwards. All query methods are safe for unsynchronized concurrent use.
type Filter struct {
	bits  *BitField
	m     uint64 // bits in the field, equal to bits.BitCount()
	k     uint32 // hash probes per item
	count uint64 // items supplied at build time
}

// Build constructs a filter from items at the target false positive rate.
// The filter is sized with OptimalParams for n = len(items), populated, and
// returned in its final read-only state.
func Build(items [][]byte, fpRate float64) (*Filter, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItemSet
	}
	if fpRate <= 0 || fpRate >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRate, fpRate)
	}

	m, k := OptimalParams(uint64(len(items)), fpRate)
	bits, err := NewBitField(m)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		h1, h2 := hashPair(item)
		for i := uint32(0); i < k; i++ {
			bits.setUnchecked(bitPosition(h1, h2, i, m))
		}
	}

	return &Filter{
		bits:  bits,
		m:     m,
		k:     k,
		count: uint64(len(items)),
	}, nil
}

// Contains reports whether item might be in the filter. A false result is
// definitive; a true result is correct for every item supplied to Build and
// a false positive at roughly the configured rate for anything else.
func (f *Filter) Contains(item []byte) bool {
	h1, h2 := hashPair(item)
	for i := uint32(0); i < f.k; i++ {
		if !f.bits.getUnchecked(bitPosition(h1, h2, i, f.m)) {
			return false
		}
	}
	return true
}

// batchParallelChunk is the per-worker slice size above which ContainsBatch
// fans out to multiple goroutines.
const batchParallelChunk = 2048

// ContainsBatch evaluates Contains for every item and returns the results in
// input order: out[i] == f.Contains(items[i]) for all i. An empty input yields
// an empty (non-nil) result.
//
// Large batches are split across up to GOMAXPROCS workers. Each item is
// independent and the filter is read-only, so no synchronization beyond the
// final join is needed.
func (f *Filter) ContainsBatch(items [][]byte) []bool {
	out := make([]bool, len(items))
	if len(items) == 0 {
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	if maxWorkers := (len(items) + batchParallelChunk - 1) / batchParallelChunk; workers > maxWorkers {
		workers = maxWorkers
	}
	if workers <= 1 {
		for i, item := range items {
			out[i] = f.Contains(item)
		}
		return out
	}

	chunk := (len(items) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(items); lo += chunk {
		hi := lo + chunk
		if hi > len(items) {
			hi = len(items)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] = f.Contains(items[i])
			}
		}(lo, hi)
	}
	wg.Wait()
	return out
}

// Add always fails with ErrUnsupportedOperation. Filters are populated only
// during Build; to change the member set, rebuild the filter.
func (f *Filter) Add(item []byte) error {
	return ErrUnsupportedOperation
}

// BitCount returns m, the size of the bit array.
func (f *Filter) BitCount() uint64 {
	return f.m
}

// K returns the number of hash probes per item.
func (f *Filter) K() uint32 {
	return f.k
}

// Count returns the number of items the filter was built from.
func (f *Filter) Count() uint64 {
	return f.count
}

// EstimatedFillRatio returns the proportion of bits that are set.
func (f *Filter) EstimatedFillRatio() float64 {
	return float64(f.bits.OnesCount()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the filter's actual false positive
// rate from its parameters and item count.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.m, f.k, f.count)
}

// Serialization constants.
const (
	// formatVersion is the current wire format version.
	formatVersion byte = 1

	// headerSize is the size of the wire format header in bytes:
	// version (1) + k (4) + m (8) + count (8).
	headerSize = 21

	// maxBitCount bounds m when deserializing untrusted data so corrupt
	// headers cannot trigger enormous allocations. 1<<43 bits is 1 TiB of
	// filter, far beyond any filter this package can usefully build.
	maxBitCount = uint64(1) << 43
)

// MarshalBinary serializes the filter. The format is:
//   - Version (1 byte)
//   - K (4 bytes, little-endian uint32)
//   - M (8 bytes, little-endian uint64): bit array size
//   - Count (8 bytes, little-endian uint64): items added at build time
//   - Bit data (ceil(m/8) bytes): the packed bit array, LSB-first
func (f *Filter) MarshalBinary() ([]byte, error) {
	bits := f.bits.Bytes()
	buf := make([]byte, headerSize+len(bits))

	buf[0] = formatVersion
	binary.LittleEndian.PutUint32(buf[1:5], f.k)
	binary.LittleEndian.PutUint64(buf[5:13], f.m)
	binary.LittleEndian.PutUint64(buf[13:21], f.count)
	copy(buf[headerSize:], bits)

	return buf, nil
}

// UnmarshalBinary reconstructs a filter serialized by MarshalBinary. The
// encoded m must agree exactly with the length of the trailing bit data;
// any mismatch, zero parameter, or unknown version is rejected.
func UnmarshalBinary(data []byte) (*Filter, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d byte header",
			ErrCorruptData, len(data), headerSize)
	}

	if version := data[0]; version != formatVersion {
		return nil, fmt.Errorf("%w: got version %d, expected %d",
			ErrUnsupportedVersion, version, formatVersion)
	}

	k := binary.LittleEndian.Uint32(data[1:5])
	m := binary.LittleEndian.Uint64(data[5:13])
	count := binary.LittleEndian.Uint64(data[13:21])

	if k == 0 {
		return nil, fmt.Errorf("%w: k cannot be zero", ErrCorruptData)
	}
	if m == 0 {
		return nil, fmt.Errorf("%w: m cannot be zero", ErrCorruptData)
	}
	if m > maxBitCount {
		return nil, fmt.Errorf("%w: m too large (%d bits)", ErrCorruptData, m)
	}

	expected := headerSize + (m+7)/8
	if uint64(len(data)) != expected {
		return nil, fmt.Errorf("%w: data length mismatch for m=%d (got %d bytes, expected %d)",
			ErrCorruptData, m, len(data), expected)
	}

	bits, err := BitFieldFromBytes(data[headerSize:], m)
	if err != nil {
		return nil, err
	}

	return &Filter{
		bits:  bits,
		m:     m,
		k:     k,
		count: count,
	}, nil
}
