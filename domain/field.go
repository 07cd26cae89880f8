package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// NoIndex is returned by FirstIndexOfNextClassDomain when the given index
// lies in the last class domain, and by lookups on out-of-range indices.
const NoIndex = -1

// Kind classifies the values of a FieldDomain.
type Kind uint8

const (
	// KindReference fields hold object references drawn from class domains.
	KindReference Kind = iota
	// KindInt fields hold integers.
	KindInt
	// KindBool fields hold booleans (0 = false, 1 = true).
	KindBool
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindReference:
		return "reference"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// FieldDomain is the legal value set of one (class, field) pair.
type FieldDomain struct {
	kind     Kind
	classes  []*ClassDomain
	offsets  []int   // offsets[k] is the global index of classes[k][0]; offsets[len(classes)] == size
	values   []int64 // primitive values by global index; nil for int ranges
	base     int64   // value at index 0 of an int range
	size     int
	array    bool
	excluded bool
}

// NewReferenceDomain concatenates class domains in the given order.
func NewReferenceDomain(classes ...*ClassDomain) (*FieldDomain, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("reference field: %w", ErrEmptyDomain)
	}
	d := &FieldDomain{
		kind:    KindReference,
		classes: append([]*ClassDomain(nil), classes...),
		offsets: make([]int, len(classes)+1),
	}
	var objects, arrays int
	for k, c := range classes {
		if c == nil {
			return nil, fmt.Errorf("reference field, position %d: %w", k, ErrNilClassDomain)
		}
		d.offsets[k] = d.size
		d.size += c.size
		switch {
		case c.null:
		case c.array:
			arrays++
		default:
			objects++
		}
	}
	d.offsets[len(classes)] = d.size
	if arrays > 0 && objects > 0 {
		return nil, ErrMixedArrayDomain
	}
	d.array = arrays > 0

	return d, nil
}

// MaxDomainSize bounds the number of elements of a FieldDomain, so every
// domain index fits an int32.
const MaxDomainSize = math.MaxInt32

// NewIntDomain returns the primitive domain {min, min+1, ..., max}.
// Values are computed from the index, not stored.
func NewIntDomain(min, max int64) (*FieldDomain, error) {
	if min > max {
		return nil, fmt.Errorf("[%d, %d]: %w", min, max, ErrInvalidRange)
	}
	width := uint64(max) - uint64(min) // max-min without signed overflow
	if width >= MaxDomainSize {
		return nil, fmt.Errorf("[%d, %d]: %w", min, max, ErrDomainTooLarge)
	}

	return &FieldDomain{kind: KindInt, base: min, size: int(width) + 1}, nil
}

// NewIntListDomain returns a primitive domain over the given values, in order.
func NewIntListDomain(values ...int64) (*FieldDomain, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("int list: %w", ErrEmptyDomain)
	}

	return &FieldDomain{kind: KindInt, values: append([]int64(nil), values...), size: len(values)}, nil
}

// NewBoolDomain returns the primitive domain {false, true}.
func NewBoolDomain() *FieldDomain {
	return &FieldDomain{kind: KindBool, values: []int64{0, 1}, size: 2}
}

// Excluded returns a copy of d that reports IsExcludedFromSearch.
// The explorer never varies such a field; it keeps its start value.
func (d *FieldDomain) Excluded() *FieldDomain {
	cp := *d
	cp.excluded = true

	return &cp
}

// Kind returns the value kind of the domain.
func (d *FieldDomain) Kind() Kind { return d.kind }

// NumberOfElements returns the number of legal values.
func (d *FieldDomain) NumberOfElements() int { return d.size }

// IsPrimitiveType reports whether the domain holds integers or booleans.
func (d *FieldDomain) IsPrimitiveType() bool { return d.kind != KindReference }

// IsArrayType reports whether the domain references array instances.
func (d *FieldDomain) IsArrayType() bool { return d.array }

// IsExcludedFromSearch reports whether the explorer must leave the field untouched.
func (d *FieldDomain) IsExcludedFromSearch() bool { return d.excluded }

// ClassDomains returns the class domains in concatenation order.
// It is empty for primitive domains.
func (d *FieldDomain) ClassDomains() []*ClassDomain {
	return append([]*ClassDomain(nil), d.classes...)
}

// classPosition returns k such that classes[k] holds global index i, or -1.
func (d *FieldDomain) classPosition(i int) int {
	if d.kind != KindReference || i < 0 || i >= d.size {
		return -1
	}
	// offsets is strictly increasing; find the last offset <= i.
	k := sort.Search(len(d.classes), func(k int) bool { return d.offsets[k+1] > i })

	return k
}

// ClassDomainFor returns the class domain holding global index i.
// It returns nil for primitive domains and out-of-range indices.
func (d *FieldDomain) ClassDomainFor(i int) *ClassDomain {
	k := d.classPosition(i)
	if k < 0 {
		return nil
	}

	return d.classes[k]
}

// ClassDomainIndexFor returns the local position of global index i inside
// its class domain. For primitive domains the global index is returned.
// Out-of-range indices yield NoIndex.
func (d *FieldDomain) ClassDomainIndexFor(i int) int {
	if i < 0 || i >= d.size {
		return NoIndex
	}
	if d.kind != KindReference {
		return i
	}

	return i - d.offsets[d.classPosition(i)]
}

// FirstIndexOfNextClassDomain returns the global index of the first element
// of the class domain following the one that holds i, or NoIndex if that
// class domain is the last one (always NoIndex for primitive domains).
func (d *FieldDomain) FirstIndexOfNextClassDomain(i int) int {
	k := d.classPosition(i)
	if k < 0 || k+1 >= len(d.classes) {
		return NoIndex
	}

	return d.offsets[k+1]
}

// Value returns the primitive value at global index i.
// ok is false for reference domains and out-of-range indices.
func (d *FieldDomain) Value(i int) (v int64, ok bool) {
	if d.kind == KindReference || i < 0 || i >= d.size {
		return 0, false
	}

	if d.values == nil {
		return d.base + int64(i), true
	}

	return d.values[i], true
}

// String implements fmt.Stringer.
func (d *FieldDomain) String() string {
	var b strings.Builder
	switch d.kind {
	case KindReference:
		parts := make([]string, len(d.classes))
		for k, c := range d.classes {
			parts[k] = c.String()
		}
		b.WriteString(strings.Join(parts, "+"))
	case KindBool:
		b.WriteString("bool")
	case KindInt:
		if d.values == nil {
			fmt.Fprintf(&b, "int[%d..%d]", d.base, d.base+int64(d.size-1))
			break
		}
		fmt.Fprintf(&b, "int%v", d.values)
	}
	if d.excluded {
		b.WriteString(" (excluded)")
	}

	return b.String()
}
