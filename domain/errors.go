package domain

import "errors"

var (
	// ErrEmptyDomain indicates a ClassDomain or FieldDomain with no elements.
	ErrEmptyDomain = errors.New("domain: domain must contain at least one element")

	// ErrInvalidRange indicates an integer range whose lower bound exceeds its upper bound.
	ErrInvalidRange = errors.New("domain: invalid integer range")

	// ErrDomainTooLarge indicates a domain with MaxDomainSize or more elements.
	ErrDomainTooLarge = errors.New("domain: domain too large")

	// ErrNilClassDomain indicates a nil ClassDomain passed to NewReferenceDomain.
	ErrNilClassDomain = errors.New("domain: class domain is nil")

	// ErrMixedArrayDomain indicates that array and non-array class domains
	// were combined in one reference field.
	ErrMixedArrayDomain = errors.New("domain: array and object class domains cannot share a field")
)
