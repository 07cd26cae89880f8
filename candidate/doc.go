// Package candidate materializes candidate vectors into object graphs and
// gives predicates a tracing view over them.
//
// What:
//
//   - Candidate: one materialized vector. Objects live in an arena indexed by
//     Ref (the statespace.ObjectID of the object), so identity is a small
//     integer and sharing is distinguishable from equal-valued objects.
//   - Builder: Build(vector) allocates a fresh arena; Rebuild(vector, changed)
//     rewrites only the changed slots of the previous arena.
//   - View: read-only, tracing accessor handed to predicates. Every field read
//     appends its slot index to the view's trace, first access wins.
//   - Reachable: depth-first walk from the root listing every reachable slot.
//
// Lifetime: a Candidate returned by Rebuild is overwritten by the next call.
// Callers that keep a candidate past the next step must copy what they need
// (Vector returns a copy).
//
// Errors:
//
//   - ErrNilDereference   a field read through the Nil reference.
//   - ErrUnknownField     a field name the object's class does not declare.
//   - ErrFieldKind        a reference read as a primitive or vice versa.
//   - ErrIndexOutOfRange  an array element read at or beyond the array length.
//   - statespace.ErrVectorLength / ErrVectorValue from Build and Rebuild.
package candidate
