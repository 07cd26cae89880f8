package finitization

import (
	"fmt"

	"github.com/katalvlaran/lvbound/domain"
	"github.com/katalvlaran/lvbound/statespace"
)

// Finitization collects class declarations, object sets and field bounds.
// It is not safe for concurrent use; the StateSpace it builds is.
type Finitization struct {
	root    *classDecl
	classes map[string]*classDecl
	sets    []*ObjSet
	null    *domain.ClassDomain
	err     error
}

type classDecl struct {
	name     string
	fields   []string
	values   map[string]Values
	excluded map[string]bool
}

// SetOption configures an object set created by Objects.
type SetOption func(*setConfig)

type setConfig struct {
	classOpts []domain.ClassOption
}

// WithoutIsomorphism makes the instances distinguishable, e.g. for payload
// values whose identity is observable by the predicate.
func WithoutIsomorphism() SetOption {
	return func(c *setConfig) { c.classOpts = append(c.classOpts, domain.WithoutIsomorphism()) }
}

// ArrayOption configures an array set created by Array.
type ArrayOption func(*arrayDecl)

// FixedLength pins every array of the set to maxLength; the length slot is
// excluded from the search.
func FixedLength() ArrayOption {
	return func(a *arrayDecl) { a.fixed = true }
}

// MinLength sets the smallest admissible array length (default 0).
func MinLength(n int) ArrayOption {
	return func(a *arrayDecl) { a.minLength = n }
}

// New starts a finitization whose root object has the given class and fields.
func New(rootClass string, fields ...string) *Finitization {
	f := &Finitization{
		classes: make(map[string]*classDecl),
		null:    domain.NewNullDomain(),
	}
	f.root = f.declare(rootClass, fields)

	return f
}

func (f *Finitization) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

func (f *Finitization) declare(name string, fields []string) *classDecl {
	if _, dup := f.classes[name]; dup {
		f.fail(fmt.Errorf("%s: %w", name, ErrDuplicateClass))
		return f.classes[name]
	}
	c := &classDecl{
		name:     name,
		fields:   append([]string(nil), fields...),
		values:   make(map[string]Values, len(fields)),
		excluded: make(map[string]bool),
	}
	f.classes[name] = c

	return c
}

// Class declares a non-root class and the order of its fields.
func (f *Finitization) Class(name string, fields ...string) *Finitization {
	f.declare(name, fields)

	return f
}

// Objects creates n instances of a declared class. The returned set is used
// as field values via Set, OrNull or Union.
func (f *Finitization) Objects(class string, n int, opts ...SetOption) *ObjSet {
	s := &ObjSet{owner: f, class: class}
	if _, ok := f.classes[class]; !ok {
		f.fail(fmt.Errorf("Objects(%s): %w", class, ErrUnknownClass))
	}
	var cfg setConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	cd, err := domain.NewClassDomain(class, n, cfg.classOpts...)
	if err != nil {
		f.fail(fmt.Errorf("Objects(%s): %w", class, err))
		cd = nil
	}
	s.cd = cd
	if cd != nil {
		f.sets = append(f.sets, s)
	}

	return s
}

// Array creates n array instances named name, each holding up to maxLength
// elements drawn from element.
func (f *Finitization) Array(name string, n int, element Values, maxLength int, opts ...ArrayOption) *ObjSet {
	a := &arrayDecl{element: element, maxLength: maxLength}
	for _, opt := range opts {
		opt(a)
	}
	s := &ObjSet{owner: f, class: name, array: a}
	cd, err := domain.NewClassDomain(name, n, domain.AsArray())
	if err != nil {
		f.fail(fmt.Errorf("Array(%s): %w", name, err))
		return s
	}
	s.cd = cd
	f.sets = append(f.sets, s)

	return s
}

func (f *Finitization) field(class, field string) (*classDecl, bool) {
	c, ok := f.classes[class]
	if !ok {
		f.fail(fmt.Errorf("%s.%s: %w", class, field, ErrUnknownClass))
		return nil, false
	}
	for _, name := range c.fields {
		if name == field {
			return c, true
		}
	}
	f.fail(fmt.Errorf("%s.%s: %w", class, field, ErrUnknownField))

	return nil, false
}

// Set binds the legal values of class.field.
func (f *Finitization) Set(class, field string, v Values) *Finitization {
	if c, ok := f.field(class, field); ok {
		c.values[field] = v
	}

	return f
}

// Exclude pins class.field to its start-vector value for the whole search.
func (f *Finitization) Exclude(class, field string) *Finitization {
	if c, ok := f.field(class, field); ok {
		c.excluded[field] = true
	}

	return f
}

// Err returns the first declaration error, if any.
func (f *Finitization) Err() error { return f.err }

// Build compiles the declarations into a StateSpace containing the root and
// every object set reachable from it.
func (f *Finitization) Build() (*statespace.StateSpace, error) {
	if f.err != nil {
		return nil, f.err
	}

	// 1. Resolve field domains once per class so instances share them.
	specs := make(map[string][]statespace.FieldSpec, len(f.classes))
	resolve := func(c *classDecl) ([]statespace.FieldSpec, error) {
		if fs, ok := specs[c.name]; ok {
			return fs, nil
		}
		fs := make([]statespace.FieldSpec, 0, len(c.fields))
		for _, name := range c.fields {
			v, ok := c.values[name]
			if !ok || v == nil {
				return nil, fmt.Errorf("%s.%s: %w", c.name, name, ErrUnboundField)
			}
			d, err := v.fieldDomain(f)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", c.name, name, err)
			}
			if c.excluded[name] {
				d = d.Excluded()
			}
			fs = append(fs, statespace.FieldSpec{Name: name, Domain: d})
		}
		specs[c.name] = fs

		return fs, nil
	}

	rootFields, err := resolve(f.root)
	if err != nil {
		return nil, err
	}

	// 2. Walk reachable class domains breadth-first from the root fields.
	bySet := make(map[*domain.ClassDomain]*ObjSet, len(f.sets))
	for _, s := range f.sets {
		bySet[s.cd] = s
	}
	reached := make(map[*domain.ClassDomain]statespace.DomainSpec, len(f.sets))
	queue := make([]*domain.FieldDomain, 0, len(rootFields))
	for _, fs := range rootFields {
		queue = append(queue, fs.Domain)
	}
	var d *domain.FieldDomain
	for len(queue) > 0 {
		d, queue = queue[0], queue[1:]
		for _, cd := range d.ClassDomains() {
			if cd.IsNull() {
				continue
			}
			if _, seen := reached[cd]; seen {
				continue
			}
			s := bySet[cd]
			spec, err := f.domainSpec(s, resolve)
			if err != nil {
				return nil, err
			}
			reached[cd] = spec
			for _, fs := range spec.Fields {
				queue = append(queue, fs.Domain)
			}
			if spec.Element != nil {
				queue = append(queue, spec.Element)
			}
		}
	}

	// 3. Lay out reachable sets in declaration order.
	layout := statespace.Layout{RootClass: f.root.name, RootFields: rootFields}
	for _, s := range f.sets {
		if spec, ok := reached[s.cd]; ok {
			layout.Domains = append(layout.Domains, spec)
		}
	}

	return statespace.New(layout)
}

func (f *Finitization) domainSpec(s *ObjSet, resolve func(*classDecl) ([]statespace.FieldSpec, error)) (statespace.DomainSpec, error) {
	if s.array == nil {
		fields, err := resolve(f.classes[s.class])
		if err != nil {
			return statespace.DomainSpec{}, err
		}

		return statespace.DomainSpec{Class: s.cd, Fields: fields}, nil
	}

	a := s.array
	spec := statespace.DomainSpec{Class: s.cd, MaxLength: a.maxLength}
	var err error
	if a.fixed {
		spec.Length, err = domain.NewIntListDomain(int64(a.maxLength))
		if err == nil {
			spec.Length = spec.Length.Excluded()
		}
	} else {
		spec.Length, err = domain.NewIntDomain(int64(a.minLength), int64(a.maxLength))
	}
	if err != nil {
		return spec, fmt.Errorf("%s.length: %w", s.class, err)
	}
	if a.maxLength > 0 {
		if a.element == nil {
			return spec, fmt.Errorf("%s[]: %w", s.class, ErrUnboundField)
		}
		spec.Element, err = a.element.fieldDomain(f)
		if err != nil {
			return spec, fmt.Errorf("%s[]: %w", s.class, err)
		}
	}

	return spec, nil
}
