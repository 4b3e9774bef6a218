package cuckoofilter

// Filter8 is a cuckoo filter with one-byte fingerprints, the smallest
// footprint at a false-positive probability of about 3%.
type Filter8 Filter[uint8]

// NewFilter8 creates a Filter8 with DefaultBucketCount buckets.
func NewFilter8(opts ...Option) *Filter8 {
	return (*Filter8)(New[uint8](opts...))
}

// NewFilter8WithBucketCount creates a Filter8 with n buckets, rounded up to a
// power of two.
func NewFilter8WithBucketCount(n uint, opts ...Option) *Filter8 {
	return (*Filter8)(NewWithBucketCount[uint8](n, opts...))
}

func (f *Filter8) Insert(item []byte) (bool, error) {
	return (*Filter[uint8])(f).Insert(item)
}

func (f *Filter8) Lookup(item []byte) bool {
	return (*Filter[uint8])(f).Lookup(item)
}

func (f *Filter8) Delete(item []byte) bool {
	return (*Filter[uint8])(f).Delete(item)
}

func (f *Filter8) InsertString(item string) (bool, error) {
	return (*Filter[uint8])(f).InsertString(item)
}

func (f *Filter8) LookupString(item string) bool {
	return (*Filter[uint8])(f).LookupString(item)
}

func (f *Filter8) DeleteString(item string) bool {
	return (*Filter[uint8])(f).DeleteString(item)
}

func (f *Filter8) Size() uint {
	return (*Filter[uint8])(f).Size()
}

func (f *Filter8) Capacity() uint {
	return (*Filter[uint8])(f).Capacity()
}

func (f *Filter8) LoadFactor() float64 {
	return (*Filter[uint8])(f).LoadFactor()
}

func (f *Filter8) Reset() {
	(*Filter[uint8])(f).Reset()
}
