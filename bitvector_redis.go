package banhammer

import (
	"context"
	"fmt"

	"github.com/kwertop/banhammer/internal/util"
	"github.com/redis/go-redis/v9"
)

// MaxRedisBits is the largest bitmap a redis string can hold (512MB)
const MaxRedisBits = 1 << 32

// BitVectorRedis is an implementation of IBitSet stored in a redis bitmap.
// _length_ is the number of addressable bits
// _key_ is the redis key of the bitmap. It is random and deleted by Close,
// so nothing outlives the owning filter.
// Bitmaps are implemented in Redis using strings; bit 0 is the most significant
// bit of the first byte. Refer https://redis.io/docs/data-types/bitmaps/
type BitVectorRedis struct {
	client *redis.Client
	length uint
	key    string
}

// NewBitVectorRedis creates a zeroed bitmap of _length_ bits on _client_
func NewBitVectorRedis(client *redis.Client, length uint) (*BitVectorRedis, error) {
	if client == nil {
		return nil, fmt.Errorf("banhammer: redis client is required")
	}
	if uint64(length) > MaxRedisBits {
		return nil, fmt.Errorf("%w: redis bitmaps hold at most %d bits, got %d", ErrInvalidSize, uint64(MaxRedisBits), length)
	}
	key := "banhammer:" + util.GenerateRandomString(16)
	zeros := make([]byte, (length+7)/8)
	if err := client.Set(context.Background(), key, string(zeros), 0).Err(); err != nil {
		return nil, fmt.Errorf("banhammer: error creating redis bitset: %w", err)
	}
	return &BitVectorRedis{client: client, length: length, key: key}, nil
}

// Key gives the key at which the bitmap is saved in redis
func (v *BitVectorRedis) Key() string {
	return v.key
}

// Length returns the number of bits in the bitmap
func (v *BitVectorRedis) Length() uint {
	if v == nil {
		return 0
	}
	return v.length
}

// Get returns 1 if the bit at _index_ is set
func (v *BitVectorRedis) Get(index uint) (uint8, error) {
	if index >= v.Length() {
		return 0, nil
	}
	val, err := v.client.GetBit(context.Background(), v.key, int64(index)).Result()
	if err != nil {
		return 0, fmt.Errorf("banhammer: error reading bit %d: %w", index, err)
	}
	return uint8(val), nil
}

// Set sets the bit at _index_. SETBIT answers with the previous value, so the
// 0 to 1 transition is reported without a separate read.
func (v *BitVectorRedis) Set(index uint) (bool, error) {
	if index >= v.Length() {
		return false, nil
	}
	prev, err := v.client.SetBit(context.Background(), v.key, int64(index), 1).Result()
	if err != nil {
		return false, fmt.Errorf("banhammer: error setting bit %d: %w", index, err)
	}
	return prev == 0, nil
}

// Clear unsets the bit at _index_
func (v *BitVectorRedis) Clear(index uint) error {
	if index >= v.Length() {
		return nil
	}
	if err := v.client.SetBit(context.Background(), v.key, int64(index), 0).Err(); err != nil {
		return fmt.Errorf("banhammer: error clearing bit %d: %w", index, err)
	}
	return nil
}

// BitCount returns the total number of set bits in the bitmap
func (v *BitVectorRedis) BitCount() (uint, error) {
	if v == nil {
		return 0, nil
	}
	bitRange := &redis.BitCount{Start: 0, End: -1}
	val, err := v.client.BitCount(context.Background(), v.key, bitRange).Result()
	if err != nil {
		return 0, fmt.Errorf("banhammer: error counting bits: %w", err)
	}
	return uint(val), nil
}

func (v *BitVectorRedis) String() string {
	if v.Length() == 0 {
		return ""
	}
	val, err := v.client.Get(context.Background(), v.key).Bytes()
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	out := make([]byte, v.length)
	for i := uint(0); i < v.length; i++ {
		index := v.length - 1 - i
		out[i] = '0'
		if pos := index / 8; pos < uint(len(val)) && val[pos]&(0x80>>(index%8)) != 0 {
			out[i] = '1'
		}
	}
	return string(out)
}

// Close deletes the bitmap from redis
func (v *BitVectorRedis) Close() error {
	if v == nil {
		return nil
	}
	if err := v.client.Del(context.Background(), v.key).Err(); err != nil {
		return fmt.Errorf("banhammer: error deleting redis bitset: %w", err)
	}
	return nil
}
