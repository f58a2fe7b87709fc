package probetable

import (
	"hash/maphash"
)

// DefaultCapacity is the number of slots a table starts with when no
// positive capacity is given.
const DefaultCapacity = 32

// table is the slot engine behind ProbeTable and ProbeSet.
//
// Collisions are resolved with linear probing. There are no tombstones:
// removing an entry clears its slot and re-places the rest of the cluster
// that followed it, so an empty slot always terminates a probe walk.
type table[K comparable, V any] struct {
	slots []slot[K, V]

	capacity  uintptr
	threshold uintptr
	size      uintptr

	hashFunc HashFunc[K]

	// Reused by repair to avoid allocating on every removal.
	displaced []slot[K, V]

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	t.allocate(uintptr(capacity))

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
}

// allocate replaces the slot array with an empty one of the given capacity.
func (t *table[K, V]) allocate(capacity uintptr) {
	t.slots = make([]slot[K, V], capacity)
	t.capacity = capacity
	t.threshold = growthThreshold(capacity)
	t.size = 0
}

// Capacity returns the current number of slots.
func (t *table[K, V]) Capacity() int {
	return int(t.capacity)
}

// Size returns the number of entries stored.
func (t *table[K, V]) Size() int {
	return int(t.size)
}

// GrowthThreshold returns the size at which the next insertion doubles the
// capacity first.
func (t *table[K, V]) GrowthThreshold() int {
	return int(t.threshold)
}

// Reset drops every entry. The capacity is retained.
func (t *table[K, V]) Reset() {
	clear(t.slots)
	t.size = 0
}

func (t *table[K, V]) home(key K) uintptr {
	return uintptr(t.hashFunc(key) % uint64(t.capacity))
}

func (t *table[K, V]) next(idx uintptr) uintptr {
	idx++
	if idx == t.capacity {
		idx = 0
	}

	return idx
}

// find walks the probe sequence of key and returns the index of the slot
// holding it.
func (t *table[K, V]) find(key K) (uintptr, bool) {
	idx := t.home(key)

	for range t.capacity {
		s := &t.slots[idx]
		if !s.occupied() {
			return 0, false
		}

		if s.key == key {
			return idx, true
		}

		idx = t.next(idx)
	}

	return 0, false
}

func (t *table[K, V]) get(key K) (V, bool) {
	idx, ok := t.find(key)
	if !ok {
		return t.emptyV, false
	}

	return t.slots[idx].value, true
}

// put inserts the key if it isn't present yet.
// Returns whether the key was inserted.
func (t *table[K, V]) put(key K, value V) bool {
	if _, ok := t.find(key); ok {
		return false
	}

	// Keep the load factor below 70% after the insertion.
	for t.size+1 >= t.threshold {
		t.grow()
	}

	return t.place(key, value)
}

// place stores the entry in the first empty slot of its probe sequence,
// without checking for duplicates or growth.
// Returns false only if the walk made a full lap, which means the table is
// full and the growth threshold has been broken.
func (t *table[K, V]) place(key K, value V) bool {
	start := t.home(key)
	idx := start

	for {
		s := &t.slots[idx]
		if !s.occupied() {
			s.fill(key, value)
			t.size++

			return true
		}

		idx = t.next(idx)
		if idx == start {
			return false
		}
	}
}

// set overwrites the value of an existing key.
// Returns false if the key is absent, nothing is inserted then.
func (t *table[K, V]) set(key K, value V) bool {
	idx, ok := t.find(key)
	if !ok {
		return false
	}

	t.slots[idx].value = value

	return true
}

// grow doubles the capacity and re-places every entry into the new slots.
func (t *table[K, V]) grow() {
	old := t.slots
	t.allocate(t.capacity * 2)

	for i := range old {
		if old[i].occupied() {
			t.place(old[i].key, old[i].value)
		}
	}
}

func (t *table[K, V]) delete(key K) bool {
	idx, ok := t.find(key)
	if !ok {
		return false
	}

	t.slots[idx].clear()
	t.size--

	t.repair(idx)

	return true
}

// repair restores the probe invariant after the slot at hole was cleared.
//
// Any entry between the hole and the next empty slot may have been probed
// past the hole, so the whole run is lifted out first and then placed again
// from scratch. Entries before the hole are unaffected, and nothing after the
// next empty slot could have probed through it.
func (t *table[K, V]) repair(hole uintptr) {
	displaced := t.displaced[:0]

	// The hole itself is empty now, so the walk stops within one lap.
	for idx := t.next(hole); t.slots[idx].occupied(); idx = t.next(idx) {
		displaced = append(displaced, t.slots[idx])
		t.slots[idx].clear()
		t.size--
	}

	for i := range displaced {
		t.place(displaced[i].key, displaced[i].value)
	}

	clear(displaced)
	t.displaced = displaced[:0]
}
