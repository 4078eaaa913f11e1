package banhammer

import (
	"fmt"
	"io"

	"github.com/kwertop/banhammer/internal/util"
)

// NumHashes is the number of salted hash functions of every BloomFilter
const NumHashes = 3

// bloomSalts keys the three hash functions of every BloomFilter
var bloomSalts = [NumHashes]Salt{
	{0x5adf08ae86d36f21, 0xa267bbd3116f3957}, // primary
	{0x419d292ea2ffd49e, 0x09601433057d5786}, // secondary
	{0x50d8bb08de3818df, 0x4deaae187c16ae1d}, // tertiary
}

// The BloomFilter data structure.
// _size_ is the number of bits in the filter
// _filter_ is the bitset backing the bloom filter. It can either be a
// BitVector (in-memory) or a BitVectorRedis (redis-backed)
// _hasher_ maps (salt, key) to a bit index before reduction modulo _size_
// _count_ is the number of bits this filter flipped from 0 to 1. It is not the
// number of inserted keys, since keys can share bits.
type BloomFilter struct {
	size   uint
	filter IBitSet
	hasher Hasher
	count  uint
}

// NewBloomFilter creates an in-memory BloomFilter of _size_ bits
func NewBloomFilter(size uint, opts ...Option) (*BloomFilter, error) {
	if size == 0 {
		return nil, ErrInvalidSize
	}
	filter, err := NewBitVector(size)
	if err != nil {
		return nil, err
	}
	return NewBloomFilterWithBitSet(size, filter, opts...)
}

// NewBloomFilterWithBitSet creates a BloomFilter over _filter_, which must be
// zeroed and exactly _size_ bits long
func NewBloomFilterWithBitSet(size uint, filter IBitSet, opts ...Option) (*BloomFilter, error) {
	if size == 0 {
		return nil, ErrInvalidSize
	}
	if filter == nil {
		return nil, fmt.Errorf("banhammer: error initializing filter as bitset is nil")
	}
	if filter.Length() != size {
		return nil, fmt.Errorf("%w: bitset %v, size %v", ErrSizeMismatch, filter.Length(), size)
	}
	o := makeOptions(opts)
	return &BloomFilter{size: size, filter: filter, hasher: o.hasher}, nil
}

// NewMemBloomFilterWithParameters creates an in-memory BloomFilter sized for
// _numItems_ keys at the false positive rate _errorRate_
func NewMemBloomFilterWithParameters(numItems uint, errorRate float64, opts ...Option) (*BloomFilter, error) {
	if errorRate <= 0 || errorRate >= 1 {
		return nil, fmt.Errorf("banhammer: error rate %v must be in (0, 1)", errorRate)
	}
	size, err := util.CalculateFilterSize(util.Max(numItems, 1), errorRate, NumHashes)
	if err != nil {
		return nil, fmt.Errorf("banhammer: %w", err)
	}
	return NewBloomFilter(util.Max(size, 1), opts...)
}

// Insert sets the three bits of _key_. Only a redis-backed filter can fail.
func (bloomFilter *BloomFilter) Insert(key string) error {
	if bloomFilter == nil || key == "" {
		return nil
	}
	for i := range bloomSalts {
		flipped, err := bloomFilter.filter.Set(bloomFilter.getIndex(i, key))
		if err != nil {
			return err
		}
		if flipped {
			bloomFilter.count++
		}
	}
	return nil
}

// Probe returns false if _key_ was never inserted. True only means the key
// may have been inserted.
func (bloomFilter *BloomFilter) Probe(key string) bool {
	ok, _ := bloomFilter.ProbeErr(key)
	return ok
}

// ProbeErr is Probe surfacing bitset read errors
func (bloomFilter *BloomFilter) ProbeErr(key string) (bool, error) {
	if bloomFilter == nil || key == "" {
		return false, nil
	}
	for i := range bloomSalts {
		bit, err := bloomFilter.filter.Get(bloomFilter.getIndex(i, key))
		if err != nil {
			return false, err
		}
		if bit == 0 {
			return false, nil
		}
	}
	return true, nil
}

// Size returns the number of bits in the filter
func (bloomFilter *BloomFilter) Size() uint {
	if bloomFilter == nil {
		return 0
	}
	return bloomFilter.size
}

// Count returns the number of bits set by inserts
func (bloomFilter *BloomFilter) Count() uint {
	if bloomFilter == nil {
		return 0
	}
	return bloomFilter.count
}

// Load returns Count/Size
func (bloomFilter *BloomFilter) Load() float64 {
	if bloomFilter.Size() == 0 {
		return 0
	}
	return float64(bloomFilter.count) / float64(bloomFilter.size)
}

// GetBitSet returns the internal bitset
func (bloomFilter *BloomFilter) GetBitSet() IBitSet {
	if bloomFilter == nil {
		return nil
	}
	return bloomFilter.filter
}

// BloomPositiveRate returns the estimated false positive rate of the filter
func (bloomFilter *BloomFilter) BloomPositiveRate() float64 {
	return util.PositiveRate(bloomFilter.Count(), bloomFilter.Size(), NumHashes)
}

func (bloomFilter *BloomFilter) String() string {
	if bloomFilter == nil {
		return ""
	}
	return bloomFilter.filter.String()
}

// Close releases the bitset when it holds external resources (redis)
func (bloomFilter *BloomFilter) Close() error {
	if bloomFilter == nil {
		return nil
	}
	if closer, ok := bloomFilter.filter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (bloomFilter *BloomFilter) getIndex(i int, key string) uint {
	return uint(bloomFilter.hasher.Sum64(bloomSalts[i], key) % uint64(bloomFilter.size))
}
