// Package intset provides the small index-set containers used by the search
// engine: an ordered, duplicate-free Trace that behaves as a stack, and a
// dense Set of non-negative indices backed by a bit set.
//
// What:
//
//   - Trace: records field indices in first-access order. Adding an index
//     that is already present is a no-op, so the first access wins. Indices
//     are consumed from the tail with Pop.
//   - Set: unordered membership over [0, n) with ascending iteration, used
//     for "fields changed since the last step" bookkeeping.
//
// Complexity:
//
//   - Trace.Add, Trace.Pop:  O(1) amortized.
//   - Set.Add:               O(1).
//   - Set.Each, Set.Slice:   O(n/64 + k) for k members.
//
// Neither type is safe for concurrent mutation; the explorer that owns them is
// single-threaded.
package intset
