package probetable

type Stats struct {
	Size            int
	Capacity        int
	GrowthThreshold int
	LoadFactor      float32

	// Clusters is the number of maximal runs of occupied slots, counting a
	// run that wraps past the last slot once.
	Clusters       int
	LongestCluster int

	// Distance of entries from their home slot.
	MaxProbeDistance  int
	MeanProbeDistance float32
}

func (t *table[K, V]) Stats() Stats {
	stats := Stats{
		Size:            int(t.size),
		Capacity:        int(t.capacity),
		GrowthThreshold: int(t.threshold),
		LoadFactor:      float32(t.size) / float32(t.capacity),
	}

	if t.size == 0 {
		return stats
	}

	var total int
	for i := range t.slots {
		if !t.slots[i].occupied() {
			continue
		}

		d := int(t.distance(t.home(t.slots[i].key), uintptr(i)))
		stats.MaxProbeDistance = max(stats.MaxProbeDistance, d)
		total += d
	}
	stats.MeanProbeDistance = float32(total) / float32(t.size)

	// Start right after an empty slot so no cluster is split by the wrap.
	start, ok := t.firstEmpty()
	if !ok {
		stats.Clusters = 1
		stats.LongestCluster = int(t.capacity)

		return stats
	}

	run := 0
	for n, idx := uintptr(0), t.next(start); n < t.capacity; n, idx = n+1, t.next(idx) {
		if t.slots[idx].occupied() {
			run++
			continue
		}

		if run > 0 {
			stats.Clusters++
			stats.LongestCluster = max(stats.LongestCluster, run)
			run = 0
		}
	}

	return stats
}

// distance returns how many steps the probe walk takes from home to idx.
func (t *table[K, V]) distance(home, idx uintptr) uintptr {
	return (idx + t.capacity - home) % t.capacity
}

func (t *table[K, V]) firstEmpty() (uintptr, bool) {
	for i := range t.slots {
		if !t.slots[i].occupied() {
			return uintptr(i), true
		}
	}

	return 0, false
}
