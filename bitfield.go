package bloomer

import (
	"fmt"
	"math/bits"
)

// BitField is a fixed-length array of bits packed into bytes.
//
// Bit i lives at byte i/8, in bit position i%8: bit 0 is the least
// significant bit of byte 0. This LSB-first mapping is part of the persisted
// filter format and must never change.
//
// BitField is a pure value type with no internal synchronization. Concurrent
// reads are safe; writes require external coordination (Build is the only
// writer in this package).
type BitField struct {
	data     []byte
	bitCount uint64
}

// NewBitField creates a zeroed bit field with the given number of bits.
func NewBitField(bitCount uint64) (*BitField, error) {
	if bitCount == 0 {
		return nil, ErrInvalidSize
	}
	return &BitField{
		data:     make([]byte, (bitCount+7)/8),
		bitCount: bitCount,
	}, nil
}

// BitFieldFromBytes reconstructs a bit field from its packed byte form.
// data must hold at least ceil(bitCount/8) bytes; the field takes its own
// copy, so the caller keeps ownership of data.
func BitFieldFromBytes(data []byte, bitCount uint64) (*BitField, error) {
	if bitCount == 0 {
		return nil, ErrInvalidSize
	}
	need := (bitCount + 7) / 8
	if uint64(len(data)) < need {
		return nil, fmt.Errorf("%w: got %d bytes, need %d for %d bits",
			ErrCorruptData, len(data), need, bitCount)
	}
	buf := make([]byte, need)
	copy(buf, data[:need])
	return &BitField{data: buf, bitCount: bitCount}, nil
}

// BitCount returns the number of bits in the field.
func (b *BitField) BitCount() uint64 {
	return b.bitCount
}

// Set sets the bit at index to 1. Setting an already-set bit is a no-op.
func (b *BitField) Set(index uint64) error {
	if index >= b.bitCount {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, b.bitCount)
	}
	b.setUnchecked(index)
	return nil
}

// Get returns the value of the bit at index.
func (b *BitField) Get(index uint64) (bool, error) {
	if index >= b.bitCount {
		return false, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, b.bitCount)
	}
	return b.getUnchecked(index), nil
}

// setUnchecked sets a bit without bounds checking. The caller must guarantee
// index < bitCount (filter probes are always reduced mod m first).
func (b *BitField) setUnchecked(index uint64) {
	b.data[index>>3] |= 1 << (index & 7)
}

// getUnchecked reads a bit without bounds checking.
func (b *BitField) getUnchecked(index uint64) bool {
	return b.data[index>>3]&(1<<(index&7)) != 0
}

// Bytes returns a copy of the packed bit data, ceil(bitCount/8) bytes long.
// Trailing padding bits in the final byte are always zero.
func (b *BitField) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// OnesCount returns the number of set bits.
func (b *BitField) OnesCount() uint64 {
	var n uint64
	for _, by := range b.data {
		n += uint64(bits.OnesCount8(by))
	}
	return n
}
