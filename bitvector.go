package banhammer

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitVector is the in-memory implementation of IBitSet.
// _length_ is the number of addressable bits
// _set_ is the bitset implementation adopted from https://github.com/bits-and-blooms/bitset
// The bitset is allocated once and never grows: writes past _length_ are dropped
// before they reach _set_, which would otherwise extend itself.
type BitVector struct {
	set    *bitset.BitSet
	length uint
}

// NewBitVector creates a zeroed BitVector of _length_ bits. bitset.New recovers
// from a failed allocation with an empty set, which is reported as ErrAllocation.
func NewBitVector(length uint) (*BitVector, error) {
	set := bitset.New(length)
	if set.Len() != length {
		return nil, fmt.Errorf("%w: %d bits", ErrAllocation, length)
	}
	return &BitVector{set, length}, nil
}

// Length returns the number of bits in the vector
func (v *BitVector) Length() uint {
	if v == nil {
		return 0
	}
	return v.length
}

// Get returns 1 if the bit at _index_ is set
func (v *BitVector) Get(index uint) (uint8, error) {
	if index >= v.Length() {
		return 0, nil
	}
	if v.set.Test(index) {
		return 1, nil
	}
	return 0, nil
}

// Set sets the bit at _index_ and reports whether it was previously unset
func (v *BitVector) Set(index uint) (bool, error) {
	if index >= v.Length() || v.set.Test(index) {
		return false, nil
	}
	v.set.Set(index)
	return true, nil
}

// Clear unsets the bit at _index_
func (v *BitVector) Clear(index uint) error {
	if index < v.Length() {
		v.set.Clear(index)
	}
	return nil
}

// BitCount returns the total number of set bits
func (v *BitVector) BitCount() (uint, error) {
	if v == nil {
		return 0, nil
	}
	return v.set.Count(), nil
}

// Equals checks if two BitVectors hold the same bits
func (v *BitVector) Equals(other *BitVector) bool {
	if v.Length() != other.Length() {
		return false
	}
	if v.Length() == 0 {
		return true
	}
	return v.set.Equal(other.set)
}

func (v *BitVector) String() string {
	return renderBits(v)
}
