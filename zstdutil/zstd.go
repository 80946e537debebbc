// Package zstdutil wraps zstd compression for stored filter blobs.
//
// It carries no algorithmic content of its own; everything delegates to
// github.com/klauspost/compress/zstd. The one piece of policy it owns is
// DecompressOrPassthrough, which treats undecodable input as already-plain
// bytes so that both compressed and uncompressed blobs can be loaded.
package zstdutil

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ErrDecode is returned when input is not valid zstd data.
var ErrDecode = errors.New("zstdutil: input is not valid zstd data")

// DefaultLevel is the compression level used when the caller has no opinion.
// Maps to zstd "best" compression; filter bit arrays are written once and
// read many times, so encode cost is the right thing to spend.
const DefaultLevel = 19

// Compress compresses data at the given zstd level (1-22).
func Compress(data []byte, level int) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	defer func() { _ = enc.Close() }()

	return enc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress decompresses zstd data, failing with ErrDecode on anything that
// does not carry a valid zstd frame.
func Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return out, nil
}

// DecompressOrPassthrough decompresses data if it is valid zstd, and returns
// it unchanged otherwise. Decoding failure is a documented recovery here, not
// an error: the input is treated as already-plaintext.
func DecompressOrPassthrough(data []byte) []byte {
	out, err := Decompress(data)
	if err != nil {
		return data
	}
	return out
}
