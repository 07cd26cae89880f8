package candidate

import (
	"fmt"

	"github.com/katalvlaran/lvbound/domain"
	"github.com/katalvlaran/lvbound/intset"
	"github.com/katalvlaran/lvbound/statespace"
)

// View is the tracing accessor a predicate evaluates a candidate through.
//
// Every successful field read records the slot in the trace, in first-access
// order; a slot never read never appears. After the first failed read the
// view is poisoned: Err reports the failure and further reads return zero
// values without tracing.
type View struct {
	c     *Candidate
	trace *intset.Trace
	err   error
}

// NewView returns a View over c with an empty trace.
func NewView(c *Candidate) *View {
	return &View{c: c, trace: intset.NewTrace(c.space.Len())}
}

// Candidate returns the viewed candidate.
func (v *View) Candidate() *Candidate { return v.c }

// Trace returns the slots read so far, in first-access order.
func (v *View) Trace() []int { return v.trace.Slice() }

// Err returns the first read failure, if any.
func (v *View) Err() error { return v.err }

// Root returns the root object. Reaching the root reads no field.
func (v *View) Root() Ref { return v.c.Root() }

// NumObjects returns the arena size, for visited sets keyed by Ref.
func (v *View) NumObjects() int { return v.c.NumObjects() }

// Class returns the class name of r, or "null". Class identity is not a
// field and is not traced.
func (v *View) Class(r Ref) string { return v.c.Class(r) }

func (v *View) fail(err error) {
	if v.err == nil {
		v.err = err
	}
}

// read resolves obj.field, checks its kind and records the access.
func (v *View) read(obj Ref, field string, ref bool) (int, bool) {
	if v.err != nil {
		return 0, false
	}
	if obj == Nil {
		v.fail(fmt.Errorf("read %s: %w", field, ErrNilDereference))
		return 0, false
	}
	i, ok := v.c.space.FieldIndex(statespace.ObjectID(obj), field)
	if !ok {
		v.fail(fmt.Errorf("%s.%s: %w", v.c.Name(obj), field, ErrUnknownField))
		return 0, false
	}
	if isRef := v.c.space.FieldDomain(i).Kind() == domain.KindReference; isRef != ref {
		v.fail(fmt.Errorf("%s: %w", v.c.space.SlotName(i), ErrFieldKind))
		return 0, false
	}
	v.trace.Add(i)

	return i, true
}

// Ref reads reference field obj.field.
func (v *View) Ref(obj Ref, field string) Ref {
	i, ok := v.read(obj, field, true)
	if !ok {
		return Nil
	}

	return v.c.refs[i]
}

// Int reads primitive field obj.field.
func (v *View) Int(obj Ref, field string) int64 {
	i, ok := v.read(obj, field, false)
	if !ok {
		return 0
	}

	return v.c.ints[i]
}

// Bool reads primitive field obj.field as a boolean.
func (v *View) Bool(obj Ref, field string) bool { return v.Int(obj, field) != 0 }

// Len reads the length of array arr.
func (v *View) Len(arr Ref) int { return int(v.Int(arr, statespace.LengthField)) }

// elem resolves element k of arr. The bounds check reads the length slot,
// so it is traced before the element itself.
func (v *View) elem(arr Ref, k int, ref bool) (int, bool) {
	if v.err != nil {
		return 0, false
	}
	if arr == Nil {
		v.fail(fmt.Errorf("read [%d]: %w", k, ErrNilDereference))
		return 0, false
	}
	li, ok := v.c.space.FieldIndex(statespace.ObjectID(arr), statespace.LengthField)
	if o, _ := v.c.space.Object(statespace.ObjectID(arr)); !ok || !o.Array {
		v.fail(fmt.Errorf("%s is not an array: %w", v.c.Name(arr), ErrFieldKind))
		return 0, false
	}
	v.trace.Add(li)
	i, ok := v.c.space.ElemIndex(statespace.ObjectID(arr), k)
	if !ok || k >= v.c.Length(arr) {
		v.fail(fmt.Errorf("%s[%d]: %w", v.c.Name(arr), k, ErrIndexOutOfRange))
		return 0, false
	}
	if isRef := v.c.space.FieldDomain(i).Kind() == domain.KindReference; isRef != ref {
		v.fail(fmt.Errorf("%s: %w", v.c.space.SlotName(i), ErrFieldKind))
		return 0, false
	}
	v.trace.Add(i)

	return i, true
}

// Elem reads reference element k of array arr.
func (v *View) Elem(arr Ref, k int) Ref {
	i, ok := v.elem(arr, k, true)
	if !ok {
		return Nil
	}

	return v.c.refs[i]
}

// ElemInt reads primitive element k of array arr.
func (v *View) ElemInt(arr Ref, k int) int64 {
	i, ok := v.elem(arr, k, false)
	if !ok {
		return 0
	}

	return v.c.ints[i]
}
