package cuckoofilter

import "math/rand/v2"

// EntriesPerBucket is the number of fingerprint slots in every bucket.
const EntriesPerBucket = 4

const (
	// DefaultBucketCount is the number of buckets requested by New.
	DefaultBucketCount = 100000
	// DefaultMaxKicks bounds the relocation loop of Insert.
	DefaultMaxKicks = 500
)

// Unsigned lists the fingerprint types. The width of a fingerprint in bytes
// is the size of the type.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// Filter is a cuckoo filter storing fingerprints of type T. A Filter is not
// safe for concurrent use.
type Filter[T Unsigned] struct {
	buckets  []bucket[T]
	hash     hasher
	rng      *rand.Rand
	size     uint
	maxKicks uint

	// reused by Insert to roll back a failed relocation chain
	trail []kick
}

type bucket[T Unsigned] [EntriesPerBucket]T

type kick struct {
	index uint64
	slot  int
}
