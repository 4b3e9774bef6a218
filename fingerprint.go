package cuckoofilter

import (
	"math"
	"unsafe"
)

// fingerprintWidth returns the number of bytes in a fingerprint of type T.
func fingerprintWidth[T Unsigned]() uint {
	return uint(unsafe.Sizeof(T(0)))
}

// fingerprintOf keeps the most significant bytes of hash. The zero value
// marks an empty slot, so a hash with all-zero high bytes gets fingerprint 1.
func fingerprintOf[T Unsigned](hash uint64) T {
	fp := T(hash >> (64 - 8*fingerprintWidth[T]()))
	if fp == 0 {
		fp = 1
	}
	return fp
}

func isEmpty[T Unsigned](fp T) bool {
	return fp == 0
}

// fingerprintBytes appends the big-endian bytes of fp to dst.
func fingerprintBytes[T Unsigned](dst []byte, fp T) []byte {
	for shift := int(8 * (fingerprintWidth[T]() - 1)); shift >= 0; shift -= 8 {
		dst = append(dst, byte(uint32(fp)>>shift))
	}
	return dst
}

// FalsePositiveRate returns the upper bound on the false-positive
// probability of a lookup in a filter with fingerprints of type T.
func FalsePositiveRate[T Unsigned]() float64 {
	return 2 * EntriesPerBucket / math.Exp2(float64(8*fingerprintWidth[T]()))
}
