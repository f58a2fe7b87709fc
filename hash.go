package probetable

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to its hash. It must return the same value for a key
// for as long as the key is stored.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns a hash function for any comparable key, seeded
// with the given seed. Hashes differ between processes.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringHashFunc hashes strings with xxhash. Unlike the default, it gives the
// same hash for a key in every process.
func StringHashFunc() HashFunc[string] {
	return xxhash.Sum64String
}

// Uint64HashFunc hashes the little-endian bytes of the key with xxhash.
func Uint64HashFunc() HashFunc[uint64] {
	return func(k uint64) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], k)

		return xxhash.Sum64(buf[:])
	}
}
