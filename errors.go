package banhammer

import "errors"

var (
	// ErrInvalidSize is returned when a structure is created with zero capacity.
	ErrInvalidSize = errors.New("banhammer: size must be greater than zero")
	// ErrSizeMismatch is returned when a bit set does not match the filter size.
	ErrSizeMismatch = errors.New("banhammer: bitset length doesn't match filter size")
	// ErrAllocation is returned when the storage of a bit vector can't be allocated.
	ErrAllocation = errors.New("banhammer: failed to allocate bit vector")
	// ErrUnknownHasher is returned by HasherByName for unsupported names.
	ErrUnknownHasher = errors.New("banhammer: unknown hasher")
)
