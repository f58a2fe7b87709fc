package probetable

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
)

// slot holds a single entry of the table. The key and value are only
// meaningful while the state is slotOccupied.
type slot[K comparable, V any] struct {
	state slotState
	key   K
	value V
}

func (s *slot[K, V]) occupied() bool {
	return s.state == slotOccupied
}

func (s *slot[K, V]) fill(key K, value V) {
	s.state = slotOccupied
	s.key = key
	s.value = value
}

// clear zeroes the key and value too, so a cleared slot doesn't keep
// pointers alive.
func (s *slot[K, V]) clear() {
	*s = slot[K, V]{}
}
