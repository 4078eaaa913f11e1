package banhammer

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-metro"
)

// Salt is the 128-bit key mixed into every hash, as two 64-bit words.
type Salt [2]uint64

// Hasher turns a salted key into a 64-bit value. Callers reduce it modulo the
// structure size, so the output must be uniform and stable across calls.
type Hasher interface {
	Sum64(salt Salt, key string) uint64
}

// HasherByName returns the hasher registered under _name_:
// "murmur" (default), "metro" or "xxhash"
func HasherByName(name string) (Hasher, error) {
	switch name {
	case "", "murmur":
		return MurmurHasher{}, nil
	case "metro":
		return MetroHasher{}, nil
	case "xxhash":
		return XXHasher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
	}
}

// MurmurHasher is MurmurHash3 x64-128 with the two salt words as the
// initial h1 and h2, folded to 64 bits.
type MurmurHasher struct{}

// MetroHasher uses metrohash64 seeded by the first salt word; the second word is
// mixed into the finaliser.
type MetroHasher struct{}

// XXHasher uses xxhash64 seeded by the first salt word; the second word is
// mixed into the finaliser.
type XXHasher struct{}

func (MurmurHasher) Sum64(salt Salt, key string) uint64 {
	h1, h2 := sum128([]byte(key), salt[0], salt[1])
	return h1 ^ h2
}

func (MetroHasher) Sum64(salt Salt, key string) uint64 {
	return fmix64(metro.Hash64([]byte(key), salt[0]) ^ salt[1])
}

func (XXHasher) Sum64(salt Salt, key string) uint64 {
	d := xxhash.NewWithSeed(salt[0])
	_, _ = d.WriteString(key)
	return fmix64(d.Sum64() ^ salt[1])
}

const (
	c1_128     = 0x87c37b91114253d5
	c2_128     = 0x4cf5ad432745937f
	block_size = 16
)

func sum128(data []byte, seed1, seed2 uint64) (uint64, uint64) {
	h1, h2 := seed1, seed2
	nblocks := len(data) / block_size

	for i := 0; i < nblocks; i++ {
		k1 := binary.LittleEndian.Uint64(data[i*block_size:])
		k2 := binary.LittleEndian.Uint64(data[i*block_size+8:])

		k1 *= c1_128
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2_128
		h1 ^= k1

		h1 = bits.RotateLeft64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		k2 *= c2_128
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1_128
		h2 ^= k2

		h2 = bits.RotateLeft64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}

	tail := data[nblocks*block_size:]
	var k1, k2 uint64
	switch len(tail) & 15 {
	case 15:
		k2 ^= uint64(tail[14]) << 48
		fallthrough
	case 14:
		k2 ^= uint64(tail[13]) << 40
		fallthrough
	case 13:
		k2 ^= uint64(tail[12]) << 32
		fallthrough
	case 12:
		k2 ^= uint64(tail[11]) << 24
		fallthrough
	case 11:
		k2 ^= uint64(tail[10]) << 16
		fallthrough
	case 10:
		k2 ^= uint64(tail[9]) << 8
		fallthrough
	case 9:
		k2 ^= uint64(tail[8])

		k2 *= c2_128
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1_128
		h2 ^= k2
		fallthrough
	case 8:
		k1 ^= uint64(tail[7]) << 56
		fallthrough
	case 7:
		k1 ^= uint64(tail[6]) << 48
		fallthrough
	case 6:
		k1 ^= uint64(tail[5]) << 40
		fallthrough
	case 5:
		k1 ^= uint64(tail[4]) << 32
		fallthrough
	case 4:
		k1 ^= uint64(tail[3]) << 24
		fallthrough
	case 3:
		k1 ^= uint64(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint64(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint64(tail[0])
		k1 *= c1_128
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2_128
		h1 ^= k1
	}

	dlen := uint64(len(data))
	h1 ^= dlen
	h2 ^= dlen

	h1 += h2
	h2 += h1

	h1 = fmix64(h1)
	h2 = fmix64(h2)

	h1 += h2
	h2 += h1

	return h1, h2
}

func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}
