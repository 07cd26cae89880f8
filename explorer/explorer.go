package explorer

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/lvbound/candidate"
	"github.com/katalvlaran/lvbound/domain"
	"github.com/katalvlaran/lvbound/intset"
	"github.com/katalvlaran/lvbound/statespace"
)

// Explorer walks the candidate vectors of one state space.
type Explorer struct {
	space   *statespace.StateSpace
	builder *candidate.Builder
	logger  *slog.Logger

	vector  []int         // current candidate vector V
	trace   *intset.Trace // access trace A
	changed *intset.Set   // slots written since the last build
	last    []int         // slots rewritten for the current candidate
	end     []int         // exclusive end vector, or nil

	current  *candidate.Candidate
	first    bool
	done     bool
	explored int
}

// New validates the options against space and returns an Explorer positioned
// before its start vector.
func New(space *statespace.StateSpace, opts ...Option) (*Explorer, error) {
	if space == nil {
		return nil, ErrNilStateSpace
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := space.Len()
	start := o.Start
	if start == nil {
		start = make([]int, n)
	}
	if err := space.ValidateVector(start); err != nil {
		return nil, fmt.Errorf("start vector: %w", err)
	}
	if o.End != nil {
		if err := space.ValidateVector(o.End); err != nil {
			return nil, fmt.Errorf("end vector: %w", err)
		}
	}

	return &Explorer{
		space:   space,
		builder: candidate.NewBuilder(space),
		logger:  o.Logger,
		vector:  slices.Clone(start),
		trace:   intset.NewTrace(n),
		changed: intset.NewSet(n),
		end:     o.End,
		first:   true,
	}, nil
}

// NextTestCase returns the next candidate, or ok=false once the search is
// exhausted. The first call returns the start vector without advancing.
// The returned candidate is reused by the following call.
func (e *Explorer) NextTestCase() (c *candidate.Candidate, ok bool) {
	if e.done {
		return nil, false
	}
	var err error
	if e.first {
		e.first = false
		c, err = e.builder.Build(e.vector)
	} else {
		if !e.advance() {
			e.done = true
			e.current = nil
			return nil, false
		}
		c, err = e.builder.Rebuild(e.vector, e.changed)
	}
	if err != nil {
		// Unreachable: every vector was validated or produced in-domain.
		e.logger.Error("candidate build failed", slog.Any("error", err))
		e.done = true
		return nil, false
	}
	e.last = e.changed.Slice()
	e.changed.Clear()
	e.current = c
	e.explored++

	return c, true
}

// Observe merges an oracle trace into the access trace, first access wins.
// Slots already present keep their position.
func (e *Explorer) Observe(trace []int) error {
	n := e.space.Len()
	for _, i := range trace {
		if i < 0 || i >= n {
			return fmt.Errorf("slot %d of %d: %w", i, n, ErrTraceIndex)
		}
	}
	for _, i := range trace {
		e.trace.Add(i)
	}

	return nil
}

// ReportCurrentAsValid marks every slot reachable from the current
// candidate's root as touched, so the next advance varies the complete
// reachable structure rather than only what the predicate examined.
func (e *Explorer) ReportCurrentAsValid() {
	if e.current == nil {
		return
	}
	e.current.Reachable(func(i int) { e.trace.Add(i) })
}

// advance moves V to the next vector. It reports false when the trace is
// exhausted or the end vector is reached.
func (e *Explorer) advance() bool {
	for {
		// 1. Pop the most recently touched slot.
		f, ok := e.trace.Pop()
		if !ok {
			e.logger.Debug("trace exhausted")
			return false
		}
		d := e.space.FieldDomain(f)
		cur := e.vector[f]

		// 2. Excluded slots are driven structurally; never vary them.
		if d.IsExcludedFromSearch() {
			continue
		}

		// 3. Last element: reset and carry.
		if cur == d.NumberOfElements()-1 {
			e.set(f, 0)
			continue
		}

		// 4. Increment, or skip past an out-of-order instance.
		next := cur + 1
		if !e.incrementLegal(f, d, cur) {
			next = d.FirstIndexOfNextClassDomain(cur)
			if next == domain.NoIndex {
				e.set(f, 0)
				continue
			}
		}
		e.set(f, next)
		e.logger.Debug("advance",
			slog.String("slot", e.space.SlotName(f)),
			slog.Int("from", cur),
			slog.Int("to", next),
		)
		break
	}

	if e.end != nil && slices.Equal(e.vector, e.end) {
		e.logger.Debug("end vector reached")
		return false
	}

	return true
}

// incrementLegal decides whether V[f]+1 keeps instances of cur's class
// domain in discovery order. Primitive domains and class domains excluded
// from isomorphism checking are always incrementable.
func (e *Explorer) incrementLegal(f int, d *domain.FieldDomain, cur int) bool {
	if d.IsPrimitiveType() {
		return true
	}
	cd := d.ClassDomainFor(cur)
	if cd == nil || !cd.IncludedInIsomorphism() {
		return true
	}

	return d.ClassDomainIndexFor(cur)+1 <= e.maxSeen(cd)+1
}

// maxSeen returns the highest local index of cd referenced by a slot still
// in the trace, or -1. It is computed per class domain across all fields.
func (e *Explorer) maxSeen(cd *domain.ClassDomain) int {
	best := -1
	e.trace.Each(func(i int) {
		d := e.space.FieldDomain(i)
		if d.IsPrimitiveType() {
			return
		}
		v := e.vector[i]
		if d.ClassDomainFor(v) != cd {
			return
		}
		if local := d.ClassDomainIndexFor(v); local > best {
			best = local
		}
	})

	return best
}

func (e *Explorer) set(f, x int) {
	e.vector[f] = x
	e.changed.Add(f)
}

// Vector returns a copy of the current candidate vector.
func (e *Explorer) Vector() []int { return slices.Clone(e.vector) }

// Trace returns a copy of the access trace, in first-access order.
func (e *Explorer) Trace() []int { return e.trace.Slice() }

// Changed returns the slots rewritten by the advance that produced the
// current candidate, ascending. It is empty for the start vector.
func (e *Explorer) Changed() []int { return slices.Clone(e.last) }

// Explored returns the number of candidates handed out so far.
func (e *Explorer) Explored() int { return e.explored }

// Space returns the explored state space.
func (e *Explorer) Space() *statespace.StateSpace { return e.space }
