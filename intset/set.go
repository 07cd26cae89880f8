package intset

import "github.com/bits-and-blooms/bitset"

// Set is a membership set of non-negative indices.
// The zero value is not usable; construct with NewSet.
type Set struct {
	bits *bitset.BitSet
}

// NewSet returns an empty Set sized for indices in [0, capacity).
// The set grows transparently if larger indices are added.
func NewSet(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}

	return &Set{bits: bitset.New(uint(capacity))}
}

// Add inserts i. Negative indices are ignored.
func (s *Set) Add(i int) {
	if i < 0 {
		return
	}
	s.bits.Set(uint(i))
}

// Len returns the number of members.
func (s *Set) Len() int { return int(s.bits.Count()) }

// Clear removes all members, keeping the allocated capacity.
func (s *Set) Clear() { s.bits.ClearAll() }

// Each calls fn for every member in ascending order.
func (s *Set) Each(fn func(i int)) {
	var (
		i  uint
		ok bool
	)
	for i, ok = s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		fn(int(i))
	}
}

// Slice returns the members in ascending order.
func (s *Set) Slice() []int {
	out := make([]int, 0, s.Len())
	s.Each(func(i int) { out = append(out, i) })

	return out
}
