package statespace

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvbound/domain"
)

// StateSpace is the flattened slot vector of one finitization.
type StateSpace struct {
	rootClass   string
	objects     []Object
	slots       []Slot
	fieldIndex  []map[string]int
	firstObject map[*domain.ClassDomain]ObjectID
	classes     []*domain.ClassDomain
}

// New lays out the root fields and all class domains of l into one vector.
// Every non-null class domain referenced by a field must have its own DomainSpec.
func New(l Layout) (*StateSpace, error) {
	s := &StateSpace{
		rootClass:   l.RootClass,
		firstObject: make(map[*domain.ClassDomain]ObjectID, len(l.Domains)),
	}

	// 1. Register class domains so field references can be checked.
	for _, ds := range l.Domains {
		if ds.Class == nil {
			return nil, domain.ErrNilClassDomain
		}
		if _, dup := s.firstObject[ds.Class]; dup {
			return nil, fmt.Errorf("%s: %w", ds.Class, ErrDuplicateClassDomain)
		}
		s.firstObject[ds.Class] = -1
		s.classes = append(s.classes, ds.Class)
	}

	// 2. Root object.
	if err := s.addObject(l.RootClass, nil, 0, l.RootFields); err != nil {
		return nil, err
	}

	// 3. Instances of every class domain, in declaration order.
	var (
		ds DomainSpec
		k  int
	)
	for _, ds = range l.Domains {
		s.firstObject[ds.Class] = ObjectID(len(s.objects))
		for k = 0; k < ds.Class.Size(); k++ {
			var err error
			if ds.Class.IsArray() {
				err = s.addArray(ds, k)
			} else {
				err = s.addObject(ds.Class.Name(), ds.Class, k, ds.Fields)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

func (s *StateSpace) addObject(class string, cd *domain.ClassDomain, instance int, fields []FieldSpec) error {
	obj := Object{ID: ObjectID(len(s.objects)), Class: class, Domain: cd, Instance: instance, First: len(s.slots)}
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if _, dup := index[f.Name]; dup {
			return fmt.Errorf("%s.%s: %w", class, f.Name, ErrDuplicateField)
		}
		if err := s.checkDomain(class+"."+f.Name, f.Domain); err != nil {
			return err
		}
		index[f.Name] = len(s.slots)
		s.slots = append(s.slots, Slot{Index: len(s.slots), Object: obj.ID, Field: f.Name, Elem: NoElem, Domain: f.Domain})
	}
	obj.End = len(s.slots)
	s.objects = append(s.objects, obj)
	s.fieldIndex = append(s.fieldIndex, index)

	return nil
}

func (s *StateSpace) addArray(ds DomainSpec, instance int) error {
	name := ds.Class.Name()
	if ds.MaxLength < 0 || ds.Length == nil || (ds.MaxLength > 0 && ds.Element == nil) {
		return fmt.Errorf("%s: %w", name, ErrInvalidArray)
	}
	if ds.Length.Kind() != domain.KindInt {
		return fmt.Errorf("%s: length must be an int domain: %w", name, ErrInvalidArray)
	}
	// Every admissible length must fit within MaxLength.
	var k int
	for k = 0; k < ds.Length.NumberOfElements(); k++ {
		if v, _ := ds.Length.Value(k); v < 0 || v > int64(ds.MaxLength) {
			return fmt.Errorf("%s: length %d outside [0, %d]: %w", name, v, ds.MaxLength, ErrInvalidArray)
		}
	}
	if ds.Element != nil {
		if err := s.checkDomain(name+"[]", ds.Element); err != nil {
			return err
		}
	}

	obj := Object{ID: ObjectID(len(s.objects)), Class: name, Domain: ds.Class, Instance: instance, First: len(s.slots), Array: true}
	index := map[string]int{LengthField: len(s.slots)}
	s.slots = append(s.slots, Slot{Index: len(s.slots), Object: obj.ID, Field: LengthField, Elem: NoElem, Domain: ds.Length})
	for k = 0; k < ds.MaxLength; k++ {
		s.slots = append(s.slots, Slot{Index: len(s.slots), Object: obj.ID, Elem: k, Domain: ds.Element})
	}
	obj.End = len(s.slots)
	s.objects = append(s.objects, obj)
	s.fieldIndex = append(s.fieldIndex, index)

	return nil
}

func (s *StateSpace) checkDomain(where string, d *domain.FieldDomain) error {
	if d == nil {
		return fmt.Errorf("%s: %w", where, ErrNilFieldDomain)
	}
	for _, cd := range d.ClassDomains() {
		if cd.IsNull() {
			continue
		}
		if _, ok := s.firstObject[cd]; !ok {
			return fmt.Errorf("%s references %s: %w", where, cd, ErrUnknownClassDomain)
		}
	}

	return nil
}

// Len returns the number of slots, i.e. the candidate vector length.
func (s *StateSpace) Len() int { return len(s.slots) }

// RootClass returns the class name of the root object.
func (s *StateSpace) RootClass() string { return s.rootClass }

// Root returns the ObjectID of the root object.
func (s *StateSpace) Root() ObjectID { return RootID }

// FieldDomain returns the domain of slot i, or nil if i is out of range.
func (s *StateSpace) FieldDomain(i int) *domain.FieldDomain {
	if i < 0 || i >= len(s.slots) {
		return nil
	}

	return s.slots[i].Domain
}

// Slot returns the description of slot i.
func (s *StateSpace) Slot(i int) (Slot, bool) {
	if i < 0 || i >= len(s.slots) {
		return Slot{}, false
	}

	return s.slots[i], true
}

// NumObjects returns the number of materializable objects, root included.
func (s *StateSpace) NumObjects() int { return len(s.objects) }

// Object returns the description of object id.
func (s *StateSpace) Object(id ObjectID) (Object, bool) {
	if id < 0 || int(id) >= len(s.objects) {
		return Object{}, false
	}

	return s.objects[id], true
}

// FieldsOf returns the slot block [first, end) owned by object id.
// An unknown id yields an empty block.
func (s *StateSpace) FieldsOf(id ObjectID) (first, end int) {
	o, ok := s.Object(id)
	if !ok {
		return 0, 0
	}

	return o.First, o.End
}

// FieldIndex returns the slot of the named field of object id.
func (s *StateSpace) FieldIndex(id ObjectID, field string) (int, bool) {
	if id < 0 || int(id) >= len(s.fieldIndex) {
		return 0, false
	}
	i, ok := s.fieldIndex[id][field]

	return i, ok
}

// ElemIndex returns the slot of element k of array object id.
func (s *StateSpace) ElemIndex(id ObjectID, k int) (int, bool) {
	o, ok := s.Object(id)
	if !ok || !o.Array || k < 0 || o.First+1+k >= o.End {
		return 0, false
	}

	return o.First + 1 + k, true
}

// ObjectFor returns the object materializing instance local of class domain cd.
func (s *StateSpace) ObjectFor(cd *domain.ClassDomain, local int) (ObjectID, bool) {
	first, ok := s.firstObject[cd]
	if !ok || first < 0 || local < 0 || local >= cd.Size() {
		return 0, false
	}

	return first + ObjectID(local), true
}

// ClassDomains returns the class domains of the layout in declaration order.
func (s *StateSpace) ClassDomains() []*domain.ClassDomain {
	return append([]*domain.ClassDomain(nil), s.classes...)
}

// SlotName returns a readable name such as "Node#1.left" or "int[]#0[2]".
func (s *StateSpace) SlotName(i int) string {
	sl, ok := s.Slot(i)
	if !ok {
		return fmt.Sprintf("slot(%d)", i)
	}
	o := s.objects[sl.Object]
	if sl.Elem != NoElem {
		return fmt.Sprintf("%s[%d]", o, sl.Elem)
	}

	return fmt.Sprintf("%s.%s", o, sl.Field)
}

// ValidateVector checks that v has one entry per slot and every entry lies
// within its field domain.
func (s *StateSpace) ValidateVector(v []int) error {
	if len(v) != len(s.slots) {
		return fmt.Errorf("got %d, want %d: %w", len(v), len(s.slots), ErrVectorLength)
	}
	for i, x := range v {
		if n := s.slots[i].Domain.NumberOfElements(); x < 0 || x >= n {
			return fmt.Errorf("%s = %d, domain size %d: %w", s.SlotName(i), x, n, ErrVectorValue)
		}
	}

	return nil
}

// Describe writes one line per slot: index, name and domain.
func (s *StateSpace) Describe(w io.Writer) error {
	for i := range s.slots {
		if _, err := fmt.Fprintf(w, "%4d  %-24s %s\n", i, s.SlotName(i), s.slots[i].Domain); err != nil {
			return err
		}
	}

	return nil
}
