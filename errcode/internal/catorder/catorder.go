// Package catorder orders error categories for the backends. Categories sort by
// name; distinct categories that share a name sort by the order in which they
// were first compared, which stays fixed for the life of the process.
package catorder

import (
	"cmp"
	"sync"
)

var (
	mu       sync.Mutex
	ordinals = map[any]uint64{}
)

// Ordinal returns the sequence number handed to cat the first time it was
// seen. cat must be comparable.
func Ordinal(cat any) uint64 {
	mu.Lock()
	defer mu.Unlock()

	n, ok := ordinals[cat]
	if !ok {
		n = uint64(len(ordinals)) + 1
		ordinals[cat] = n
	}
	return n
}

// Compare returns 0 only when a and b are the same category. Otherwise it
// orders them by name, then by Ordinal.
func Compare(a, b any, nameA, nameB string) int {
	if a == b {
		return 0
	}
	if c := cmp.Compare(nameA, nameB); c != 0 {
		return c
	}
	return cmp.Compare(Ordinal(a), Ordinal(b))
}
