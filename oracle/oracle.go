// Package oracle defines the predicate-oracle contract consumed by the
// explorer, and a tracing adapter for predicates written in Go.
//
// An Oracle evaluates one candidate and reports whether it satisfies the
// structural invariant, together with the access trace: exactly the slots the
// evaluation dereferenced before returning, in first-access order, honoring
// short-circuit evaluation. A slot never read must never appear.
//
// Predicate + Traced satisfy the contract by construction: the predicate can
// only reach candidate data through a candidate.View, which records each read.
//
// Errors:
//
//   - ErrNilCandidate  Evaluate called with a nil candidate.
//   - ErrPredicate     the predicate performed an illegal read (wraps the
//     candidate.View failure).
package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbound/candidate"
)

var (
	// ErrNilCandidate indicates Evaluate was called without a candidate.
	ErrNilCandidate = errors.New("oracle: candidate is nil")

	// ErrPredicate indicates the predicate failed while reading the candidate.
	ErrPredicate = errors.New("oracle: predicate failed")
)

// Verdict is the outcome of one evaluation.
type Verdict struct {
	// Valid reports whether the candidate satisfies the invariant.
	Valid bool

	// Trace lists the slots read, in first-access order, without duplicates.
	Trace []int
}

// Oracle evaluates candidates. Implementations must not retain the candidate
// after Evaluate returns.
type Oracle interface {
	Evaluate(ctx context.Context, c *candidate.Candidate) (Verdict, error)
}

// Func adapts a plain function to Oracle.
type Func func(ctx context.Context, c *candidate.Candidate) (Verdict, error)

// Evaluate implements Oracle.
func (f Func) Evaluate(ctx context.Context, c *candidate.Candidate) (Verdict, error) {
	return f(ctx, c)
}

// Predicate is a structural invariant expressed over a tracing view.
type Predicate func(v *candidate.View) bool

// Traced wraps p into an Oracle whose trace is collected by the view.
func Traced(p Predicate) Oracle {
	return Func(func(ctx context.Context, c *candidate.Candidate) (Verdict, error) {
		if c == nil {
			return Verdict{}, ErrNilCandidate
		}
		if err := ctx.Err(); err != nil {
			return Verdict{}, err
		}
		v := candidate.NewView(c)
		ok := p(v)
		if err := v.Err(); err != nil {
			return Verdict{Trace: v.Trace()}, fmt.Errorf("%w: %w", ErrPredicate, err)
		}

		return Verdict{Valid: ok, Trace: v.Trace()}, nil
	})
}
