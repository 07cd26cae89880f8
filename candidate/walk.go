package candidate

import "github.com/katalvlaran/lvbound/statespace"

// walker holds the state of one reachability walk.
type walker struct {
	c       *Candidate
	visited []bool // keyed by arena handle
	visit   func(slot int)
}

// Reachable calls visit for every slot reachable from the root. Objects are
// visited depth-first, each exactly once: all reachable slots of an object
// are reported in layout order before any object it references. For arrays
// the length slot and the elements below the current length are reachable.
func (c *Candidate) Reachable(visit func(slot int)) {
	w := &walker{c: c, visited: make([]bool, c.space.NumObjects()), visit: visit}
	w.object(c.Root())
}

// ReachableSlots returns the slots reported by Reachable, in order.
func (c *Candidate) ReachableSlots() []int {
	var out []int
	c.Reachable(func(i int) { out = append(out, i) })

	return out
}

func (w *walker) object(r Ref) {
	if r == Nil || w.visited[r] {
		return
	}
	w.visited[r] = true

	// 1. Report the object's own reachable slots.
	slots := w.slots(r)
	for _, i := range slots {
		w.visit(i)
	}

	// 2. Descend into referenced objects in field order.
	for _, i := range slots {
		w.object(w.c.refs[i])
	}
}

// slots lists the reachable slots of object r.
func (w *walker) slots(r Ref) []int {
	o, _ := w.c.space.Object(statespace.ObjectID(r))
	if !o.Array {
		out := make([]int, 0, o.End-o.First)
		for i := o.First; i < o.End; i++ {
			out = append(out, i)
		}

		return out
	}
	n := int(w.c.ints[o.First]) // length slot leads the block
	out := make([]int, 0, n+1)
	out = append(out, o.First)
	for k := 0; k < n; k++ {
		out = append(out, o.First+1+k)
	}

	return out
}
