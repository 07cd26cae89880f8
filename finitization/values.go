package finitization

import (
	"github.com/katalvlaran/lvbound/domain"
)

// Values is the legal value set of a field. Construct with Ints, IntList,
// Bools, OrNull, Union, or use an *ObjSet directly.
type Values interface {
	fieldDomain(f *Finitization) (*domain.FieldDomain, error)
}

// ObjSet is a set of interchangeable (or, with WithoutIsomorphism,
// distinguishable) instances of one declared class or array type.
type ObjSet struct {
	owner *Finitization
	class string
	cd    *domain.ClassDomain
	array *arrayDecl
}

type arrayDecl struct {
	element   Values
	maxLength int
	minLength int
	fixed     bool
}

// Domain returns the underlying class domain.
func (s *ObjSet) Domain() *domain.ClassDomain { return s.cd }

// Class returns the class name of the instances.
func (s *ObjSet) Class() string { return s.class }

func (s *ObjSet) fieldDomain(f *Finitization) (*domain.FieldDomain, error) {
	return union{sets: []*ObjSet{s}}.fieldDomain(f)
}

type union struct {
	sets []*ObjSet
	null bool
}

// OrNull returns the values null followed by the instances of sets, in order.
func OrNull(sets ...*ObjSet) Values { return union{sets: sets, null: true} }

// Union returns the instances of sets, in order, without null.
func Union(sets ...*ObjSet) Values { return union{sets: sets} }

func (u union) fieldDomain(f *Finitization) (*domain.FieldDomain, error) {
	classes := make([]*domain.ClassDomain, 0, len(u.sets)+1)
	if u.null {
		classes = append(classes, f.null)
	}
	for _, s := range u.sets {
		if s == nil {
			return nil, domain.ErrNilClassDomain
		}
		if s.owner != f {
			return nil, ErrForeignObjSet
		}
		classes = append(classes, s.cd)
	}

	return domain.NewReferenceDomain(classes...)
}

type intRange struct{ min, max int64 }

// Ints returns the integers min..max inclusive.
func Ints(min, max int64) Values { return intRange{min, max} }

func (r intRange) fieldDomain(*Finitization) (*domain.FieldDomain, error) {
	return domain.NewIntDomain(r.min, r.max)
}

type intList []int64

// IntList returns exactly the given integers, in order.
func IntList(values ...int64) Values { return intList(values) }

func (l intList) fieldDomain(*Finitization) (*domain.FieldDomain, error) {
	return domain.NewIntListDomain(l...)
}

type bools struct{}

// Bools returns {false, true}.
func Bools() Values { return bools{} }

func (bools) fieldDomain(*Finitization) (*domain.FieldDomain, error) {
	return domain.NewBoolDomain(), nil
}
