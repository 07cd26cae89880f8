// Package domain describes the legal value sets of individual fields.
//
// What:
//
//   - ClassDomain: an ordered, finite sequence of interchangeable instances of
//     one type (e.g. three Node objects). A class domain is either included in
//     isomorphism checking (object identity is irrelevant, so instances are
//     interchangeable) or excluded from it (value-like payloads whose identity
//     matters, and the one-element null domain).
//   - FieldDomain: the legal values of exactly one (class, field) pair. For a
//     reference field it is the concatenation of one or more ClassDomains; for
//     a primitive field it is a single implicit domain of integers or booleans.
//
// A position inside a FieldDomain is called a global index; a position inside
// one of its ClassDomains is called a local index.
//
// Both types are immutable after construction and safe for concurrent reads.
//
// Errors:
//
//   - ErrEmptyDomain       a domain with no elements.
//   - ErrInvalidRange      an integer range with min > max.
//   - ErrDomainTooLarge    an integer range of MaxDomainSize or more values.
//   - ErrNilClassDomain    nil ClassDomain passed to a reference domain.
//   - ErrMixedArrayDomain  array and non-array class domains mixed in one field.
package domain
