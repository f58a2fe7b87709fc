package probetable

import (
	"unsafe"
)

// The table grows before size reaches loadFactorNum/loadFactorDen of its
// capacity.
const (
	loadFactorNum = 7
	loadFactorDen = 10
)

// growthThreshold returns ceil(capacity * 0.7) using integer math only.
func growthThreshold(capacity uintptr) uintptr {
	return (capacity*loadFactorNum + loadFactorDen - 1) / loadFactorDen
}

// Estimates capacity (number of slots) from the given memory size in bytes.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	return int(size / unsafe.Sizeof(slot[K, V]{}))
}
