package probetable

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is wrapped by every error returned from Validate.
	ErrInvariant = errors.New("probetable: invariant violated")

	// ErrTableFull means every slot is occupied. Growth keeps the table
	// below 70% load, so seeing it means the growth threshold is broken.
	ErrTableFull = errors.New("probetable: table is full")
)

// Validate walks every slot and checks the structural invariants of the
// table: the size matches the occupied slots, keys are unique, the load
// factor is below the growth threshold and every entry is reachable from its
// home slot through occupied slots only.
//
// It's meant for tests and debugging, it costs a full scan.
func (t *table[K, V]) Validate() error {
	if t.size >= t.capacity {
		return fmt.Errorf("%w: %w: size %d, capacity %d", ErrInvariant, ErrTableFull, t.size, t.capacity)
	}

	if t.size >= t.threshold {
		return fmt.Errorf("%w: size %d reached growth threshold %d", ErrInvariant, t.size, t.threshold)
	}

	var (
		occupied uintptr
		seen     = make(map[K]uintptr, t.size)
	)

	for i := range t.slots {
		s := &t.slots[i]
		if !s.occupied() {
			continue
		}

		occupied++

		if prev, ok := seen[s.key]; ok {
			return fmt.Errorf("%w: key %v stored in slots %d and %d", ErrInvariant, s.key, prev, i)
		}
		seen[s.key] = uintptr(i)

		home := t.home(s.key)
		for idx := home; idx != uintptr(i); idx = t.next(idx) {
			if !t.slots[idx].occupied() {
				return fmt.Errorf(
					"%w: key %v in slot %d unreachable, empty slot %d on its probe path from %d",
					ErrInvariant, s.key, i, idx, home,
				)
			}
		}
	}

	if occupied != t.size {
		return fmt.Errorf("%w: size %d, %d occupied slots", ErrInvariant, t.size, occupied)
	}

	return nil
}
