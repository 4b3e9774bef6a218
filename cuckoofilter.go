// Package cuckoofilter implements cuckoo filters: approximate set membership
// with deletion, no false negatives and a false-positive rate bounded by the
// fingerprint width.
package cuckoofilter

import (
	"errors"
	"math/rand/v2"
)

// ErrFilterFull is returned by Insert when no room could be made for an item
// within the relocation budget. The filter is left as it was before the call.
var ErrFilterFull = errors.New("cuckoo filter is full")

// New creates a filter with DefaultBucketCount buckets unless an option says
// otherwise.
func New[T Unsigned](opts ...Option) *Filter[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	rng := rand.New(cfg.src)
	return &Filter[T]{
		buckets:  make([]bucket[T], nextPowerOfTwo(uint64(cfg.bucketCount))),
		hash:     newHasher(cfg.hash, rng),
		rng:      rng,
		maxKicks: cfg.maxKicks,
	}
}

// NewWithBucketCount creates a filter with n buckets, rounded up to a power
// of two.
func NewWithBucketCount[T Unsigned](n uint, opts ...Option) *Filter[T] {
	return New[T](append([]Option{WithBucketCount(n)}, opts...)...)
}

// Insert adds item to the filter. Inserting the same item twice stores it
// twice; it then takes two deletes to remove it.
//
// When both candidate buckets are full, fingerprints already in the table are
// relocated to their alternate buckets, at most MaxKicks times. If that does
// not free a slot, the relocations are undone and ErrFilterFull is returned.
func (f *Filter[T]) Insert(item []byte) (bool, error) {
	hash := f.hash.Sum64(item)
	fp := fingerprintOf[T](hash)
	i1 := hash
	i2 := f.altIndex(i1, fp)
	if f.bucketAt(i1).put(fp) || f.bucketAt(i2).put(fp) {
		f.size++
		return true, nil
	}

	i := i1
	if f.rng.IntN(2) == 0 {
		i = i2
	}
	f.trail = f.trail[:0]
	for range f.maxKicks {
		slot := f.rng.IntN(EntriesPerBucket)
		f.trail = append(f.trail, kick{index: i, slot: slot})
		fp = f.bucketAt(i).swap(slot, fp)
		i = f.altIndex(i, fp)
		if f.bucketAt(i).put(fp) {
			f.size++
			return true, nil
		}
	}

	// fp is now a fingerprint of some earlier item. Walk the chain backwards
	// so every stored item stays where Lookup can find it.
	for k := len(f.trail) - 1; k >= 0; k-- {
		fp = f.bucketAt(f.trail[k].index).swap(f.trail[k].slot, fp)
	}
	return false, ErrFilterFull
}

// Lookup tells you whether item is likely part of the set. It never returns
// false for an item that was inserted and not deleted since.
func (f *Filter[T]) Lookup(item []byte) bool {
	hash := f.hash.Sum64(item)
	fp := fingerprintOf[T](hash)
	i1 := hash
	i2 := f.altIndex(i1, fp)
	return f.bucketAt(i1).get(fp) || f.bucketAt(i2).get(fp)
}

// Delete removes one copy of item and reports whether one was found.
// Deleting an item that was never inserted may remove the fingerprint of a
// different item that collides with it.
func (f *Filter[T]) Delete(item []byte) bool {
	hash := f.hash.Sum64(item)
	fp := fingerprintOf[T](hash)
	i1 := hash
	i2 := f.altIndex(i1, fp)
	if f.bucketAt(i1).remove(fp) || f.bucketAt(i2).remove(fp) {
		if f.size > 0 {
			f.size--
		}
		return true
	}
	return false
}

// InsertString is Insert for string items.
func (f *Filter[T]) InsertString(item string) (bool, error) {
	return f.Insert([]byte(item))
}

// LookupString is Lookup for string items.
func (f *Filter[T]) LookupString(item string) bool {
	return f.Lookup([]byte(item))
}

// DeleteString is Delete for string items.
func (f *Filter[T]) DeleteString(item string) bool {
	return f.Delete([]byte(item))
}

// Size returns the number of items stored, counting duplicates.
func (f *Filter[T]) Size() uint {
	return f.size
}

// Capacity returns the number of fingerprint slots. Inserts usually start to
// fail at around 95% of it.
func (f *Filter[T]) Capacity() uint {
	return uint(len(f.buckets)) * EntriesPerBucket
}

func (f *Filter[T]) BucketCount() uint {
	return uint(len(f.buckets))
}

func (f *Filter[T]) MaxKicks() uint {
	return f.maxKicks
}

// LoadFactor returns Size divided by Capacity.
func (f *Filter[T]) LoadFactor() float64 {
	return float64(f.size) / float64(f.Capacity())
}

// Reset removes every item. The hash key is kept.
func (f *Filter[T]) Reset() {
	for i := range f.buckets {
		f.buckets[i].reset()
	}
	f.size = 0
}

// bucketAt reduces i modulo the bucket count. Indices are carried unreduced
// between calls; the bucket count is a power of two, so reducing commutes
// with the XOR in altIndex.
func (f *Filter[T]) bucketAt(i uint64) *bucket[T] {
	return &f.buckets[i%uint64(len(f.buckets))]
}

// altIndex derives the other candidate bucket of fp from one of them. Applying
// it twice gives back i, which is what lets relocation move a fingerprint
// without knowing the item it came from.
func (f *Filter[T]) altIndex(i uint64, fp T) uint64 {
	var buf [4]byte
	return i ^ f.hash.Sum64(fingerprintBytes(buf[:0], fp))
}
