package censor

import (
	"errors"
	"fmt"

	"github.com/kwertop/banhammer"
)

const (
	DefaultTableSize  = 10000
	DefaultFilterSize = 1 << 20
	DefaultHasher     = "murmur"
)

var (
	ErrInvalidTableSize  = errors.New("censor: invalid hash table size")
	ErrInvalidFilterSize = errors.New("censor: invalid bloom filter size")
	ErrInvalidErrorRate  = errors.New("censor: error rate must be in (0, 1)")
	ErrAlreadyLoaded     = errors.New("censor: word lists already loaded")
	ErrNotLoaded         = errors.New("censor: word lists not loaded")
)

// Config selects the sizes and backends of the filter structures.
type Config struct {
	// TableSize is the number of hash table buckets.
	TableSize uint
	// FilterSize is the number of bloom filter bits. Ignored when ErrorRate is set.
	FilterSize uint
	// ErrorRate, when non-zero, sizes the bloom filter from the loaded word count.
	ErrorRate float64
	// MoveToFront enables the move-to-front rule in the hash table buckets.
	MoveToFront bool
	// Hasher names the keyed hash: murmur, metro or xxhash.
	Hasher string
	// RedisURI stores the bloom filter bits in redis when set.
	RedisURI string
}

func DefaultConfig() Config {
	return Config{
		TableSize:  DefaultTableSize,
		FilterSize: DefaultFilterSize,
		Hasher:     DefaultHasher,
	}
}

func (cfg Config) Validate() error {
	if cfg.TableSize == 0 {
		return ErrInvalidTableSize
	}
	if cfg.ErrorRate == 0 && cfg.FilterSize == 0 {
		return ErrInvalidFilterSize
	}
	if cfg.ErrorRate < 0 || cfg.ErrorRate >= 1 {
		return fmt.Errorf("%w: %v", ErrInvalidErrorRate, cfg.ErrorRate)
	}
	if _, err := banhammer.HasherByName(cfg.Hasher); err != nil {
		return err
	}
	if cfg.RedisURI != "" {
		if _, err := banhammer.ParseRedisURI(cfg.RedisURI); err != nil {
			return err
		}
	}
	return nil
}
