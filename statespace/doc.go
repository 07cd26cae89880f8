// Package statespace flattens every field reachable from a root object into
// one indexed vector space.
//
// Layout order is fixed: the root object's fields first, then, for every
// class domain in declaration order, each instance in domain order with its
// fields in class declaration order. An array instance contributes a length
// slot followed by MaxLength element slots. Each object therefore owns one
// contiguous block [First, End) of slot indices.
//
// A candidate vector V assigns every slot i a global index into
// FieldDomain(i); ValidateVector checks that shape.
//
// A StateSpace is immutable once built and safe for concurrent reads, so
// independent explorers may share one.
//
// Errors:
//
//   - ErrNilFieldDomain        a field without a domain.
//   - ErrDuplicateField        a field name repeated within one class.
//   - ErrDuplicateClassDomain  a class domain listed twice.
//   - ErrUnknownClassDomain    a field referencing a class domain absent from the layout.
//   - ErrInvalidArray          malformed array specification.
//   - ErrVectorLength          vector length differs from Len().
//   - ErrVectorValue           vector entry outside its field domain.
package statespace
