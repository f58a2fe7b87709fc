package probetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Empty(t *testing.T) {
	pt := New[int, int](16)

	stats := pt.Stats()
	assert.Equal(t, Stats{
		Capacity:        16,
		GrowthThreshold: 12,
	}, stats)
}

func TestStats_Clusters(t *testing.T) {
	pt := New(8, WithHashFunc[string, int](homes(map[string]uint64{
		"A": 7, "B": 7, "C": 7, "D": 4,
	})))

	require.True(t, pt.Insert("A", 1)) // Slot 7
	require.True(t, pt.Insert("B", 2)) // Slot 0
	require.True(t, pt.Insert("C", 3)) // Slot 1
	require.True(t, pt.Insert("D", 4)) // Slot 4

	stats := pt.Stats()
	assert.Equal(t, 4, stats.Size)
	assert.Equal(t, 8, stats.Capacity)
	assert.Equal(t, 6, stats.GrowthThreshold)
	assert.InDelta(t, 0.5, stats.LoadFactor, 1e-6)

	// The run 7, 0, 1 wraps and counts once.
	assert.Equal(t, 2, stats.Clusters)
	assert.Equal(t, 3, stats.LongestCluster)

	// Distances: A 0, B 1, C 2, D 0.
	assert.Equal(t, 2, stats.MaxProbeDistance)
	assert.InDelta(t, 0.75, stats.MeanProbeDistance, 1e-6)
}

func TestStats_AfterRemove(t *testing.T) {
	pt := New(8, WithHashFunc[string, int](func(k string) uint64 {
		return 2
	}))

	for _, k := range []string{"A", "B", "C", "D"} {
		require.True(t, pt.Insert(k, 0))
	}
	require.Equal(t, 3, pt.Stats().MaxProbeDistance)

	require.True(t, pt.Remove("A"))

	stats := pt.Stats()
	assert.Equal(t, 3, stats.Size)
	assert.Equal(t, 1, stats.Clusters)
	assert.Equal(t, 3, stats.LongestCluster)
	assert.Equal(t, 2, stats.MaxProbeDistance)
}
