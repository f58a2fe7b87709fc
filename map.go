// Package probetable provides an open-addressing hash table with linear
// probing.
//
// The table grows by doubling before the load factor reaches 70%, and it
// never shrinks. Deletion doesn't leave tombstones behind: the entries that
// followed a removed one in its probe cluster are placed again, so every
// probe walk ends at the first empty slot.
//
// Tables are not safe for concurrent use.
package probetable

// ProbeTable maps unique keys to values.
// Insert never overwrites and Update never creates, so callers always know
// which of the two happened.
type ProbeTable[K comparable, V any] struct {
	table[K, V]
}

// Returns a new table with the given number of slots.
// A non-positive capacity selects DefaultCapacity.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *ProbeTable[K, V] {
	var pt ProbeTable[K, V]
	pt.init(capacity, opts...)

	return &pt
}

// Lookup returns the value stored for key.
func (pt *ProbeTable[K, V]) Lookup(key K) (V, bool) {
	return pt.get(key)
}

// Insert adds the key if it's not present yet, growing the table first when
// needed. Returns false and leaves the table untouched if the key exists.
func (pt *ProbeTable[K, V]) Insert(key K, value V) bool {
	return pt.put(key, value)
}

// Update replaces the value of an existing key.
// Returns false if the key is absent.
func (pt *ProbeTable[K, V]) Update(key K, value V) bool {
	return pt.set(key, value)
}

// Remove deletes the key. Returns false if it wasn't present.
func (pt *ProbeTable[K, V]) Remove(key K) bool {
	return pt.delete(key)
}
