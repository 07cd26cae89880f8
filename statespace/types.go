package statespace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbound/domain"
)

var (
	// ErrNilFieldDomain indicates a FieldSpec without a domain.
	ErrNilFieldDomain = errors.New("statespace: field domain is nil")

	// ErrDuplicateField indicates a field name declared twice for one class.
	ErrDuplicateField = errors.New("statespace: duplicate field")

	// ErrDuplicateClassDomain indicates a class domain listed twice in a Layout.
	ErrDuplicateClassDomain = errors.New("statespace: duplicate class domain")

	// ErrUnknownClassDomain indicates a reference to a class domain that has no DomainSpec.
	ErrUnknownClassDomain = errors.New("statespace: class domain not part of layout")

	// ErrInvalidArray indicates an array DomainSpec with missing or inconsistent bounds.
	ErrInvalidArray = errors.New("statespace: invalid array specification")

	// ErrVectorLength indicates a candidate vector whose length differs from the slot count.
	ErrVectorLength = errors.New("statespace: vector length mismatch")

	// ErrVectorValue indicates a vector entry outside the bounds of its field domain.
	ErrVectorValue = errors.New("statespace: vector value out of domain")
)

// ObjectID identifies a materializable object. IDs are dense, starting at 0
// for the root, and stable for the lifetime of the StateSpace.
type ObjectID int

// RootID is the ObjectID of the root object.
const RootID ObjectID = 0

// NoElem marks a Slot that is a named field rather than an array element.
const NoElem = -1

// LengthField is the field name of an array's length slot.
const LengthField = "length"

// FieldSpec declares one named field and its legal values.
type FieldSpec struct {
	Name   string
	Domain *domain.FieldDomain
}

// DomainSpec declares the fields of every instance of one class domain.
// For array class domains, Length and Element replace Fields.
type DomainSpec struct {
	Class  *domain.ClassDomain
	Fields []FieldSpec

	Length    *domain.FieldDomain
	Element   *domain.FieldDomain
	MaxLength int
}

// Layout is the input to New.
type Layout struct {
	RootClass  string
	RootFields []FieldSpec
	Domains    []DomainSpec
}

// Object describes one materializable object and its slot block.
type Object struct {
	ID       ObjectID
	Class    string
	Domain   *domain.ClassDomain // nil for the root
	Instance int                 // local index inside Domain
	First    int                 // first slot index
	End      int                 // one past the last slot index
	Array    bool
}

// Slot describes one position of the candidate vector.
type Slot struct {
	Index  int
	Object ObjectID
	Field  string // LengthField for array lengths, empty for array elements
	Elem   int    // element position, or NoElem
	Domain *domain.FieldDomain
}

// String implements fmt.Stringer.
func (o Object) String() string {
	if o.Domain == nil {
		return o.Class
	}

	return fmt.Sprintf("%s#%d", o.Class, o.Instance)
}
