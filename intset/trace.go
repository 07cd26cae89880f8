package intset

import "github.com/bits-and-blooms/bitset"

// Trace is an ordered sequence of distinct non-negative indices.
//
// Add appends only indices not yet present (first access wins); Pop removes
// from the tail. Membership is answered by a bit set mirrored with the order
// slice, so Add never scans.
type Trace struct {
	order   []int
	members *bitset.BitSet
}

// NewTrace returns an empty Trace with room for indices in [0, capacity).
func NewTrace(capacity int) *Trace {
	if capacity < 0 {
		capacity = 0
	}

	return &Trace{
		order:   make([]int, 0, capacity),
		members: bitset.New(uint(capacity)),
	}
}

// Add appends i unless it is already present or negative.
// It reports whether i was appended.
func (t *Trace) Add(i int) bool {
	if i < 0 || t.members.Test(uint(i)) {
		return false
	}
	t.members.Set(uint(i))
	t.order = append(t.order, i)

	return true
}

// Pop removes and returns the last index. ok is false when the trace is empty.
func (t *Trace) Pop() (i int, ok bool) {
	n := len(t.order)
	if n == 0 {
		return 0, false
	}
	i = t.order[n-1]
	t.order = t.order[:n-1]
	t.members.Clear(uint(i))

	return i, true
}

// Len returns the number of indices in the trace.
func (t *Trace) Len() int { return len(t.order) }

// Each calls fn for every index in access order.
func (t *Trace) Each(fn func(i int)) {
	for _, i := range t.order {
		fn(i)
	}
}

// Slice returns a copy of the indices in access order.
func (t *Trace) Slice() []int {
	return append([]int(nil), t.order...)
}
