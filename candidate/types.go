package candidate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvbound/domain"
	"github.com/katalvlaran/lvbound/statespace"
)

var (
	// ErrNilDereference indicates a field read through the Nil reference.
	ErrNilDereference = errors.New("candidate: nil dereference")

	// ErrUnknownField indicates a field not declared by the object's class.
	ErrUnknownField = errors.New("candidate: unknown field")

	// ErrFieldKind indicates a read whose accessor does not match the field kind.
	ErrFieldKind = errors.New("candidate: field kind mismatch")

	// ErrIndexOutOfRange indicates an array element read outside [0, length).
	ErrIndexOutOfRange = errors.New("candidate: array index out of range")
)

// Ref is an arena handle of a materialized object.
type Ref int32

// Nil is the null reference.
const Nil Ref = -1

// Candidate is one materialized candidate vector.
type Candidate struct {
	space  *statespace.StateSpace
	vector []int
	refs   []Ref   // per slot; Nil for primitives and null
	ints   []int64 // per slot primitive value
}

func newCandidate(space *statespace.StateSpace) *Candidate {
	n := space.Len()

	return &Candidate{
		space:  space,
		vector: make([]int, n),
		refs:   make([]Ref, n),
		ints:   make([]int64, n),
	}
}

// set materializes vector entry x into slot i.
func (c *Candidate) set(i, x int) {
	c.vector[i] = x
	d := c.space.FieldDomain(i)
	if d.IsPrimitiveType() {
		c.ints[i], _ = d.Value(x)
		c.refs[i] = Nil
		return
	}
	c.ints[i] = 0
	cd := d.ClassDomainFor(x)
	if cd.IsNull() {
		c.refs[i] = Nil
		return
	}
	id, _ := c.space.ObjectFor(cd, d.ClassDomainIndexFor(x))
	c.refs[i] = Ref(id)
}

// Space returns the state space the candidate was built from.
func (c *Candidate) Space() *statespace.StateSpace { return c.space }

// Vector returns a copy of the candidate vector.
func (c *Candidate) Vector() []int { return append([]int(nil), c.vector...) }

// Root returns the root object.
func (c *Candidate) Root() Ref { return Ref(statespace.RootID) }

// NumObjects returns the arena size; valid refs lie in [0, NumObjects()).
func (c *Candidate) NumObjects() int { return c.space.NumObjects() }

// Class returns the class name of r, or "null".
func (c *Candidate) Class(r Ref) string {
	o, ok := c.space.Object(statespace.ObjectID(r))
	if !ok {
		return "null"
	}

	return o.Class
}

// Name returns a readable handle such as "Node#2", or "null".
func (c *Candidate) Name(r Ref) string {
	o, ok := c.space.Object(statespace.ObjectID(r))
	if !ok {
		return "null"
	}

	return o.String()
}

// RefAt returns the reference stored in slot i without tracing.
func (c *Candidate) RefAt(i int) Ref { return c.refs[i] }

// IntAt returns the primitive value stored in slot i without tracing.
func (c *Candidate) IntAt(i int) int64 { return c.ints[i] }

// Length returns the current length of array r without tracing, or 0.
func (c *Candidate) Length(r Ref) int {
	i, ok := c.space.FieldIndex(statespace.ObjectID(r), statespace.LengthField)
	if !ok {
		return 0
	}
	o, _ := c.space.Object(statespace.ObjectID(r))
	if !o.Array {
		return 0
	}

	return int(c.ints[i])
}

// formatSlot renders the value of slot i.
func (c *Candidate) formatSlot(i int) string {
	d := c.space.FieldDomain(i)
	switch d.Kind() {
	case domain.KindReference:
		return c.Name(c.refs[i])
	case domain.KindBool:
		return strconv.FormatBool(c.ints[i] != 0)
	default:
		return strconv.FormatInt(c.ints[i], 10)
	}
}

// String renders every object reachable from the root, in walk order.
func (c *Candidate) String() string {
	var (
		out  []byte
		last = statespace.ObjectID(-1)
	)
	c.Reachable(func(i int) {
		sl, _ := c.space.Slot(i)
		if sl.Object != last {
			if last >= 0 {
				out = append(out, "} "...)
			}
			o, _ := c.space.Object(sl.Object)
			out = append(out, o.String()...)
			out = append(out, '{')
			last = sl.Object
		} else {
			out = append(out, ", "...)
		}
		if sl.Elem != statespace.NoElem {
			out = fmt.Appendf(out, "[%d]=%s", sl.Elem, c.formatSlot(i))
		} else {
			out = fmt.Appendf(out, "%s=%s", sl.Field, c.formatSlot(i))
		}
	})
	if last >= 0 {
		out = append(out, '}')
	}

	return string(out)
}
