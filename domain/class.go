package domain

import "fmt"

// ClassDomain is an ordered set of candidate instances of one type.
type ClassDomain struct {
	name  string
	size  int
	iso   bool
	null  bool
	array bool
}

// ClassOption configures a ClassDomain at construction.
type ClassOption func(*ClassDomain)

// WithoutIsomorphism marks the instances as distinguishable: the search
// enumerates every instance for every field, without symmetry breaking.
// Use it for value-like payload types.
func WithoutIsomorphism() ClassOption {
	return func(c *ClassDomain) { c.iso = false }
}

// AsArray marks the domain as holding array instances.
func AsArray() ClassOption {
	return func(c *ClassDomain) { c.array = true }
}

// NewClassDomain returns a domain of size instances of the named type.
// Instances are included in isomorphism checking unless WithoutIsomorphism is given.
func NewClassDomain(name string, size int, opts ...ClassOption) (*ClassDomain, error) {
	if size <= 0 {
		return nil, fmt.Errorf("class %q of size %d: %w", name, size, ErrEmptyDomain)
	}
	c := &ClassDomain{name: name, size: size, iso: true}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// NewNullDomain returns the one-element domain that materializes as a nil
// reference. It never takes part in isomorphism checking.
func NewNullDomain() *ClassDomain {
	return &ClassDomain{name: "null", size: 1, null: true}
}

// Name returns the type name of the instances.
func (c *ClassDomain) Name() string { return c.name }

// Size returns the number of instances.
func (c *ClassDomain) Size() int { return c.size }

// IncludedInIsomorphism reports whether instances are interchangeable.
func (c *ClassDomain) IncludedInIsomorphism() bool { return c.iso }

// IsNull reports whether this is the null domain.
func (c *ClassDomain) IsNull() bool { return c.null }

// IsArray reports whether instances are arrays.
func (c *ClassDomain) IsArray() bool { return c.array }

// String implements fmt.Stringer.
func (c *ClassDomain) String() string {
	if c.null {
		return "null"
	}

	return fmt.Sprintf("%s[%d]", c.name, c.size)
}
