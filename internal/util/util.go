// Package util holds the sizing math and helpers shared by the banhammer structures.
package util

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

var src = rand.NewSource(time.Now().UnixNano())

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const (
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// MaxFilterSize caps computed bloom filter sizes at 8GiB of bits
const MaxFilterSize = 1 << 36

// ErrFilterTooLarge is returned when an error rate asks for more than MaxFilterSize bits.
var ErrFilterTooLarge = errors.New("util: bloom filter size exceeds maximum")

// CalculateFilterSize returns the number of bits a bloom filter with _numHashes_
// hash functions needs to hold _length_ elements at the false positive rate
// _errorRate_: m = -k*n / ln(1 - p^(1/k))
func CalculateFilterSize(length uint, errorRate float64, numHashes uint) (uint, error) {
	k := float64(numHashes)
	m := math.Ceil(-(k * float64(length)) / math.Log1p(-math.Pow(errorRate, 1/k)))
	if math.IsNaN(m) || m > MaxFilterSize {
		return 0, fmt.Errorf("%w: %v elements at error rate %v", ErrFilterTooLarge, length, errorRate)
	}
	return uint(m), nil
}

// PositiveRate estimates the false positive rate of a bloom filter of _size_ bits
// with _setBits_ bits set and _numHashes_ hash functions
func PositiveRate(setBits, size, numHashes uint) float64 {
	if size == 0 {
		return 1
	}
	return math.Pow(float64(setBits)/float64(size), float64(numHashes))
}

func Max(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}

// GenerateRandomString returns a random alphabetic string of length _n_, used for
// redis keys
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	// A src.Int63() generates 63 random bits, enough for letterIdxMax characters!
	for i, cache, remain := n-1, src.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = src.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			b[i] = letterBytes[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return string(b)
}
