package cuckoofilter

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/dchest/siphash"
	"github.com/zeebo/xxh3"
	"lukechampine.com/blake3"
)

// HashAlgorithm selects the keyed hash a Filter uses for items and
// fingerprints.
type HashAlgorithm int

const (
	// HashSipHash is SipHash-2-4 with a random 128-bit key.
	HashSipHash HashAlgorithm = iota
	// HashXXHash is xxHash64 over a random 16-byte prefix and the input.
	HashXXHash
	// HashXXH3 is XXH3-64 with a random seed.
	HashXXH3
	// HashBLAKE3 is keyed BLAKE3 truncated to 64 bits.
	HashBLAKE3
)

var hashAlgorithmNames = [...]string{
	HashSipHash: "siphash",
	HashXXHash:  "xxhash",
	HashXXH3:    "xxh3",
	HashBLAKE3:  "blake3",
}

func (a HashAlgorithm) String() string {
	if a < 0 || int(a) >= len(hashAlgorithmNames) {
		return fmt.Sprintf("HashAlgorithm(%d)", int(a))
	}
	return hashAlgorithmNames[a]
}

// ParseHashAlgorithm returns the algorithm with the given name, as printed by
// HashAlgorithm.String.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	for a, n := range hashAlgorithmNames {
		if strings.EqualFold(n, name) {
			return HashAlgorithm(a), nil
		}
	}
	return 0, fmt.Errorf("unknown hash algorithm %q", name)
}

type hasher interface {
	Sum64(b []byte) uint64
}

// newHasher keys a fresh hasher from rng. Every filter owns its own key so
// two filters never agree on bucket placement.
func newHasher(a HashAlgorithm, rng *rand.Rand) hasher {
	switch a {
	case HashXXHash:
		var h xxHasher
		binary.LittleEndian.PutUint64(h.key[:8], rng.Uint64())
		binary.LittleEndian.PutUint64(h.key[8:], rng.Uint64())
		return &h
	case HashXXH3:
		return xxh3Hasher{seed: rng.Uint64()}
	case HashBLAKE3:
		var h blake3Hasher
		for i := 0; i < len(h.key); i += 8 {
			binary.LittleEndian.PutUint64(h.key[i:], rng.Uint64())
		}
		return &h
	default:
		return sipHasher{k0: rng.Uint64(), k1: rng.Uint64()}
	}
}

type sipHasher struct {
	k0, k1 uint64
}

func (h sipHasher) Sum64(b []byte) uint64 {
	return siphash.Hash(h.k0, h.k1, b)
}

type xxHasher struct {
	key [16]byte
}

func (h *xxHasher) Sum64(b []byte) uint64 {
	d := xxhash.New()
	d.Write(h.key[:])
	d.Write(b)
	return d.Sum64()
}

type xxh3Hasher struct {
	seed uint64
}

func (h xxh3Hasher) Sum64(b []byte) uint64 {
	return xxh3.HashSeed(b, h.seed)
}

type blake3Hasher struct {
	key [32]byte
}

func (h *blake3Hasher) Sum64(b []byte) uint64 {
	d := blake3.New(8, h.key[:])
	d.Write(b)
	var sum [8]byte
	return binary.LittleEndian.Uint64(d.Sum(sum[:0]))
}

// returns random number, modifies the seed
func splitmix64(seed *uint64) uint64 {
	*seed = *seed + 0x9E3779B97F4A7C15
	z := *seed
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func nextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++
	return n
}
