/*
Package banhammer implements the data layer of a two-tier word filter: a bloom filter
used as a cheap pre-filter, confirmed by a chained hash table whose buckets are
doubly linked lists with an optional move-to-front rule.

The bloom filter is written against IBitSet, so its bits can live in memory
(BitVector, backed by https://github.com/bits-and-blooms/bitset) or in a Redis
bitmap (BitVectorRedis).
*/
package banhammer

import "fmt"

type IBitSet interface {
	// Length returns the number of addressable bits
	Length() uint

	// Get returns 1 if the bit at index is set, else 0.
	// Indexes past Length read as 0
	Get(index uint) (uint8, error)

	// Set sets the bit at index and reports whether it flipped from 0 to 1.
	// Indexes past Length are ignored
	Set(index uint) (bool, error)

	// Clear unsets the bit at index. Indexes past Length are ignored
	Clear(index uint) error

	// BitCount returns the total number of set bits
	BitCount() (uint, error)

	// String renders the bits, highest index first
	String() string
}

func renderBits(b IBitSet) string {
	n := b.Length()
	out := make([]byte, n)
	for i := uint(0); i < n; i++ {
		bit, err := b.Get(n - 1 - i)
		if err != nil {
			return fmt.Sprintf("<error: %v>", err)
		}
		out[i] = '0' + bit
	}
	return string(out)
}
