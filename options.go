package cuckoofilter

import "math/rand/v2"

// Option configures a Filter at construction.
type Option func(*config)

type config struct {
	bucketCount uint
	maxKicks    uint
	hash        HashAlgorithm
	src         rand.Source
}

func defaultConfig() config {
	return config{
		bucketCount: DefaultBucketCount,
		maxKicks:    DefaultMaxKicks,
		hash:        HashSipHash,
	}
}

// WithBucketCount sets the number of buckets, rounded up to a power of two.
// Zero keeps the default.
func WithBucketCount(n uint) Option {
	return func(c *config) {
		if n > 0 {
			c.bucketCount = n
		}
	}
}

// WithMaxKicks sets how many fingerprints Insert may relocate before it
// gives up with ErrFilterFull.
func WithMaxKicks(n uint) Option {
	return func(c *config) {
		c.maxKicks = n
	}
}

// WithHash selects the hash algorithm.
func WithHash(a HashAlgorithm) Option {
	return func(c *config) {
		c.hash = a
	}
}

// WithRand sets the random source used to key the hash and to pick victims
// during relocation.
func WithRand(src rand.Source) Option {
	return func(c *config) {
		c.src = src
	}
}

// WithSeed makes the filter deterministic: two filters built with the same
// seed and options place every item identically.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = rand.NewPCG(splitmix64(&seed), splitmix64(&seed))
	}
}
