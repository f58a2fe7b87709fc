package probetable

// ProbeSet is a set of keys backed by the same slot engine as ProbeTable.
// It stores no values.
type ProbeSet[K comparable] struct {
	table[K, struct{}]
}

// NewSet returns a new set with the given number of slots.
// A non-positive capacity selects DefaultCapacity.
func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) *ProbeSet[K] {
	var ps ProbeSet[K]
	ps.init(capacity, opts...)

	return &ps
}

// Checks whether a key is in the set.
func (ps *ProbeSet[K]) Has(key K) bool {
	_, ok := ps.find(key)
	return ok
}

// Adds a key to the set. Returns whether the key is new.
func (ps *ProbeSet[K]) Add(key K) bool {
	return ps.put(key, struct{}{})
}

// Removes a key from the set. Returns whether it was present.
func (ps *ProbeSet[K]) Remove(key K) bool {
	return ps.delete(key)
}
