package generate

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvbound/oracle"
	"github.com/katalvlaran/lvbound/statespace"
)

// Range is a half-open slice [Start, End) of the search order. A nil Start is
// the first vector; a nil End runs to exhaustion.
type Range struct {
	Start []int
	End   []int
}

// OracleFactory returns a fresh oracle for one range. Oracles are not shared
// between concurrently running ranges.
type OracleFactory func() (oracle.Oracle, error)

// RunRanges explores every range with its own explorer and oracle and returns
// the summed Stats, with the Stats of each range in Stats.Ranges. Ranges run
// concurrently, at most Options.Workers at once; the first failure cancels the
// others. MaxCandidates applies to each range separately. Start, End and
// checkpoint options are ignored; each range supplies its own bounds. Pass
// the result to Remaining to resume a budgeted call.
func RunRanges(ctx context.Context, space *statespace.StateSpace, factory OracleFactory, ranges []Range, opts ...Option) (Stats, error) {
	if len(ranges) == 0 {
		return Stats{}, ErrNoRanges
	}
	if factory == nil {
		return Stats{}, ErrNilOracle
	}
	opt := DefaultOptions()
	for _, fn := range opts {
		fn(&opt)
	}
	opt.CheckpointEvery, opt.Checkpoint = 0, nil

	per := make([]Stats, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	if opt.Workers > 0 {
		g.SetLimit(opt.Workers)
	}
	for i, r := range ranges {
		g.Go(func() error {
			o, err := factory()
			if err != nil {
				return fmt.Errorf("range %d: %w", i, err)
			}
			ropt := opt
			ropt.Start, ropt.End = r.Start, r.End
			ropt.Logger = opt.Logger.With(slog.Int("range", i))
			st, err := run(gctx, space, o, ropt)
			per[i] = st
			if err != nil {
				return fmt.Errorf("range %d: %w", i, err)
			}

			return nil
		})
	}
	err := g.Wait()

	total := Stats{Exhausted: true, Ranges: per}
	for _, st := range per {
		total.add(st)
	}

	return total, err
}

// Remaining returns the unfinished part of ranges after a RunRanges call that
// produced st: every range the budget stopped, restarted at its Next vector.
// Ranges that failed or were cancelled before reporting a Next are returned
// unchanged.
func Remaining(ranges []Range, st Stats) []Range {
	var out []Range
	for i, r := range ranges {
		if i >= len(st.Ranges) {
			out = append(out, r)
			continue
		}
		rs := st.Ranges[i]
		switch {
		case rs.Exhausted:
		case rs.Next != nil:
			out = append(out, Range{Start: rs.Next, End: r.End})
		default:
			out = append(out, r)
		}
	}

	return out
}

// SplitRanges partitions the search of space into at most k ranges by the
// value of slot 0. Cuts are placed only at values the search reaches from
// an empty trace: primitive values, and for reference slots the null value
// and the first instance of each class domain (any instance of a domain
// excluded from isomorphism checking). A single unbounded range is returned
// when slot 0 admits no cut.
func SplitRanges(space *statespace.StateSpace, k int) []Range {
	if k <= 1 || space.Len() == 0 {
		return []Range{{}}
	}
	d := space.FieldDomain(0)
	if d.IsExcludedFromSearch() {
		return []Range{{}}
	}

	values := []int{0}
	for x := 1; x < d.NumberOfElements(); x++ {
		if d.IsPrimitiveType() {
			values = append(values, x)
			continue
		}
		cd := d.ClassDomainFor(x)
		if !cd.IncludedInIsomorphism() || d.ClassDomainIndexFor(x) == 0 {
			values = append(values, x)
		}
	}
	if k > len(values) {
		k = len(values)
	}

	at := func(x int) []int {
		v := make([]int, space.Len())
		v[0] = x
		return v
	}
	out := make([]Range, k)
	for i := range k {
		if i > 0 {
			out[i].Start = at(values[i*len(values)/k])
		}
		if i < k-1 {
			out[i].End = at(values[(i+1)*len(values)/k])
		}
	}

	return out
}
