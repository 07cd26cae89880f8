// Package explorer implements the backtracking candidate-vector search.
//
// What:
//
//	The Explorer owns one candidate vector V and one access trace A. Each step
//	hands out a candidate built from V; the caller evaluates it with an oracle
//	and feeds the oracle's trace back through Observe. The next call to
//	NextTestCase advances V:
//
//	  - pop the most recently touched slot f from A (rightmost digit first);
//	  - slots excluded from the search are skipped untouched;
//	  - a slot at the last element of its domain resets to 0 and carries;
//	  - otherwise V[f] is incremented, unless the new value would introduce an
//	    object of an isomorphism-checked class domain out of order, in which
//	    case V[f] jumps to the first element of the next class domain (or
//	    resets and carries if there is none).
//
// Why it works:
//
//   - Pruning: only slots that some evaluation actually read are ever varied;
//     the values of unread slots cannot influence the verdict.
//   - Symmetry breaking: a slot may point at instance k of a class domain only
//     if some earlier-read slot already points at instance k-1 (or k == 0), so
//     fresh objects are discovered in non-decreasing order and no two emitted
//     candidates differ by a mere relabeling of interchangeable objects.
//
// ReportCurrentAsValid adds every slot reachable from the current root to A,
// so the fields a valid candidate's predicate short-circuited past are still
// enumerated.
//
// Terminal states: A exhausted without a legal increment, or V reaching the
// optional end vector (exclusive). Both are normal outcomes, not errors.
//
// An Explorer is single-threaded. Run disjoint start/end ranges in separate
// Explorers to parallelize; they may share one StateSpace.
//
// Errors:
//
//   - ErrNilStateSpace      New called with a nil space.
//   - ErrTraceIndex         Observe given a slot outside the vector.
//   - statespace.ErrVectorLength / ErrVectorValue for malformed start/end vectors.
package explorer
