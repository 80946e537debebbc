package bloomer

import "errors"

var (
	// ErrInvalidSize is returned when a bit field is requested with zero bits.
	ErrInvalidSize = errors.New("bloomer: bit count must be greater than zero")

	// ErrIndexOutOfRange is returned when a bit index is outside the field.
	ErrIndexOutOfRange = errors.New("bloomer: bit index out of range")

	// ErrEmptyItemSet is returned when Build is called with no items; no valid
	// filter parameters can be derived from n=0.
	ErrEmptyItemSet = errors.New("bloomer: cannot build a filter from zero items")

	// ErrInvalidRate is returned when the target false positive rate is not in
	// the open interval (0, 1).
	ErrInvalidRate = errors.New("bloomer: false positive rate must be in (0, 1)")

	// ErrCorruptData is returned when serialized filter data is malformed or
	// inconsistent with its own header.
	ErrCorruptData = errors.New("bloomer: corrupt serialized filter data")

	// ErrUnsupportedVersion is returned when the serialization format version
	// is not recognized.
	ErrUnsupportedVersion = errors.New("bloomer: unsupported serialization version")

	// ErrUnsupportedOperation is returned for mutation attempts on a built
	// filter. Filters are populated only during Build.
	ErrUnsupportedOperation = errors.New("bloomer: filters are immutable once built")
)
