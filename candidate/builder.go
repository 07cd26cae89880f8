package candidate

import (
	"fmt"

	"github.com/katalvlaran/lvbound/intset"
	"github.com/katalvlaran/lvbound/statespace"
)

// Builder materializes candidate vectors of one state space.
// It is owned by a single explorer and not safe for concurrent use.
type Builder struct {
	space *statespace.StateSpace
	cur   *Candidate
}

// NewBuilder returns a Builder for space.
func NewBuilder(space *statespace.StateSpace) *Builder {
	return &Builder{space: space}
}

// Build validates vector and materializes it into a fresh arena.
// Identical vectors yield structurally identical candidates.
func (b *Builder) Build(vector []int) (*Candidate, error) {
	if err := b.space.ValidateVector(vector); err != nil {
		return nil, err
	}
	c := newCandidate(b.space)
	for i, x := range vector {
		c.set(i, x)
	}
	b.cur = c

	return c, nil
}

// Rebuild updates the previous candidate in place, rewriting only the slots
// listed in changed. Without a previous candidate it falls back to Build.
// The result is identical to Build(vector) provided every slot that differs
// from the previous vector is listed in changed.
func (b *Builder) Rebuild(vector []int, changed *intset.Set) (*Candidate, error) {
	if b.cur == nil || changed == nil {
		return b.Build(vector)
	}
	if len(vector) != b.space.Len() {
		return nil, fmt.Errorf("got %d, want %d: %w", len(vector), b.space.Len(), statespace.ErrVectorLength)
	}
	var err error
	changed.Each(func(i int) {
		if err != nil {
			return
		}
		if i >= len(vector) {
			err = fmt.Errorf("changed slot %d: %w", i, statespace.ErrVectorLength)
			return
		}
		if n := b.space.FieldDomain(i).NumberOfElements(); vector[i] < 0 || vector[i] >= n {
			err = fmt.Errorf("%s = %d: %w", b.space.SlotName(i), vector[i], statespace.ErrVectorValue)
			return
		}
		b.cur.set(i, vector[i])
	})
	if err != nil {
		return nil, err
	}

	return b.cur, nil
}
