// Package censor loads the badspeak and newspeak word lists into a bloom filter
// and hash table and classifies query words against them.
package censor

import (
	"errors"
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/kwertop/banhammer"
	"github.com/kwertop/banhammer/internal/util"
	"github.com/kwertop/banhammer/internal/words"
	"github.com/redis/go-redis/v9"
)

// Censor answers, for each query word, whether it is clean, forbidden or has a
// replacement. The bloom filter rejects most clean words cheaply; every
// positive probe is confirmed by the hash table.
type Censor struct {
	log    logger.Logger
	cfg    Config
	hasher banhammer.Hasher

	table  *banhammer.HashTable
	filter *banhammer.BloomFilter
	redis  *redis.Client
}

func New(log logger.Logger, cfg Config) (*Censor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hasher, err := banhammer.HasherByName(cfg.Hasher)
	if err != nil {
		return nil, err
	}
	return &Censor{log: log, cfg: cfg, hasher: hasher}, nil
}

// Load reads both word lists and builds the filter structures. Every badspeak
// word is stored without a replacement, every newspeak pair with one.
func (c *Censor) Load(badspeak, newspeak io.Reader) error {
	if c.table != nil {
		return ErrAlreadyLoaded
	}
	bad, err := words.ReadList(badspeak)
	if err != nil {
		return fmt.Errorf("censor: badspeak: %w", err)
	}
	pairs, err := words.ReadPairs(newspeak)
	if err != nil {
		return fmt.Errorf("censor: newspeak: %w", err)
	}
	c.log.Infof("read %d badspeak words and %d newspeak pairs", len(bad), len(pairs))

	filterSize, err := c.filterSize(uint(len(bad) + len(pairs)))
	if err != nil {
		return err
	}
	if err := c.build(filterSize); err != nil {
		return err
	}

	for _, word := range bad {
		if err := c.filter.Insert(word); err != nil {
			return c.abort(err)
		}
		c.table.InsertKey(word)
	}
	for _, pair := range pairs {
		if err := c.filter.Insert(pair.Oldspeak); err != nil {
			return c.abort(err)
		}
		c.table.Insert(pair.Oldspeak, pair.Newspeak)
	}
	c.log.Debugf("table buckets %d/%d, filter bits %d/%d, estimated false positive rate %.6f",
		c.table.Count(), c.table.Size(), c.filter.Count(), c.filter.Size(), c.filter.BloomPositiveRate())
	return nil
}

func (c *Censor) filterSize(numItems uint) (uint, error) {
	if c.cfg.ErrorRate == 0 {
		return c.cfg.FilterSize, nil
	}
	size, err := util.CalculateFilterSize(util.Max(numItems, 1), c.cfg.ErrorRate, banhammer.NumHashes)
	if err != nil {
		return 0, fmt.Errorf("censor: %w", err)
	}
	size = util.Max(size, 1)
	c.log.Infof("sized bloom filter to %d bits for %d words at error rate %v", size, numItems, c.cfg.ErrorRate)
	return size, nil
}

// build creates the table and filter. On failure nothing stays allocated.
func (c *Censor) build(filterSize uint) error {
	table, err := banhammer.NewHashTable(c.cfg.TableSize, c.cfg.MoveToFront, banhammer.WithHasher(c.hasher))
	if err != nil {
		return fmt.Errorf("censor: failed to create hash table: %w", err)
	}

	var bits banhammer.IBitSet
	if c.cfg.RedisURI == "" {
		memBits, err := banhammer.NewBitVector(filterSize)
		if err != nil {
			table.Close()
			return fmt.Errorf("censor: failed to create bloom filter: %w", err)
		}
		bits = memBits
	} else {
		options, err := banhammer.ParseRedisURI(c.cfg.RedisURI)
		if err != nil {
			table.Close()
			return err
		}
		client := banhammer.NewRedisClient(*options)
		redisBits, err := banhammer.NewBitVectorRedis(client, filterSize)
		if err != nil {
			table.Close()
			_ = client.Close()
			return fmt.Errorf("censor: failed to create bloom filter: %w", err)
		}
		c.log.Infof("bloom filter bits stored in redis at %s", redisBits.Key())
		c.redis = client
		bits = redisBits
	}

	filter, err := banhammer.NewBloomFilterWithBitSet(filterSize, bits, banhammer.WithHasher(c.hasher))
	if err != nil {
		table.Close()
		if closer, ok := bits.(io.Closer); ok {
			_ = closer.Close()
		}
		c.closeRedis()
		return fmt.Errorf("censor: failed to create bloom filter: %w", err)
	}
	c.table, c.filter = table, filter
	return nil
}

func (c *Censor) abort(err error) error {
	return errors.Join(fmt.Errorf("censor: load failed: %w", err), c.Close())
}

// Classify checks _word_ against the filter, then the table. The replacement is
// returned for OutcomeSubstitute only.
func (c *Censor) Classify(word string) (Outcome, string, error) {
	if c.table == nil {
		return OutcomeClean, "", ErrNotLoaded
	}
	maybe, err := c.filter.ProbeErr(word)
	if err != nil || !maybe {
		return OutcomeClean, "", err
	}
	node, ok := c.table.Lookup(word)
	if !ok {
		return OutcomeClean, "", nil
	}
	if newspeak, ok := node.Value(); ok {
		return OutcomeSubstitute, newspeak, nil
	}
	return OutcomeForbidden, "", nil
}

// Scan classifies every word of _r_
func (c *Censor) Scan(r io.Reader) (*Report, error) {
	report := newReport()
	scanner := words.NewScanner(r)
	for {
		word, ok := scanner.Next()
		if !ok {
			break
		}
		outcome, newspeak, err := c.Classify(word)
		if err != nil {
			return nil, err
		}
		report.record(word, outcome, newspeak)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("censor: error reading input: %w", err)
	}
	c.log.Debugf("scan flagged %d words, verdict %s", len(report.Events), report.Verdict())
	return report, nil
}

func (c *Censor) Stats() Stats {
	return Stats{
		Seeks:             c.table.Seeks(),
		AverageSeekLength: c.table.AverageSeekLength(),
		HashTableLoad:     100 * c.table.Load(),
		BloomFilterLoad:   100 * c.filter.Load(),
	}
}

// Table exposes the loaded hash table
func (c *Censor) Table() *banhammer.HashTable {
	return c.table
}

// Filter exposes the loaded bloom filter
func (c *Censor) Filter() *banhammer.BloomFilter {
	return c.filter
}

// Close releases the structures and, for a redis-backed filter, deletes its
// key and closes the connection.
func (c *Censor) Close() error {
	c.table.Close()
	err := c.filter.Close()
	c.table, c.filter = nil, nil
	return errors.Join(err, c.closeRedis())
}

func (c *Censor) closeRedis() error {
	if c.redis == nil {
		return nil
	}
	err := c.redis.Close()
	c.redis = nil
	return err
}
