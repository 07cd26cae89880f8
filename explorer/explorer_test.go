package explorer_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbound/candidate"
	"github.com/katalvlaran/lvbound/explorer"
	"github.com/katalvlaran/lvbound/finitization"
	"github.com/katalvlaran/lvbound/oracle"
	"github.com/katalvlaran/lvbound/statespace"
	"github.com/katalvlaran/lvbound/structures"
)

// runResult collects the outcome of one explorer run.
type runResult struct {
	explored int
	valid    int
	vectors  [][]int
}

// drive runs ex to exhaustion against o. onValid, if non-nil, sees each valid
// candidate before the explorer advances past it.
func drive(t *testing.T, ex *explorer.Explorer, o oracle.Oracle, report bool, onValid func(*candidate.Candidate)) runResult {
	t.Helper()
	var r runResult
	for {
		c, ok := ex.NextTestCase()
		if !ok {
			break
		}
		r.explored++
		r.vectors = append(r.vectors, c.Vector())
		verdict, err := o.Evaluate(context.Background(), c)
		require.NoError(t, err)
		require.NoError(t, ex.Observe(verdict.Trace))
		if !verdict.Valid {
			continue
		}
		r.valid++
		if onValid != nil {
			onValid(c)
		}
		if report {
			ex.ReportCurrentAsValid()
		}
	}
	assert.Equal(t, r.explored, ex.Explored())

	return r
}

// record builds a root-only space with int fields named by names, each in [0, n).
func record(t *testing.T, n int, names ...string) *statespace.StateSpace {
	t.Helper()
	f := finitization.New("Rec", names...)
	for _, name := range names {
		f.Set("Rec", name, finitization.Ints(0, int64(n-1)))
	}
	s, err := f.Build()
	require.NoError(t, err)

	return s
}

func newExplorer(t *testing.T, s *statespace.StateSpace, opts ...explorer.Option) *explorer.Explorer {
	t.Helper()
	ex, err := explorer.New(s, opts...)
	require.NoError(t, err)

	return ex
}

func TestNew_ConfigurationErrors(t *testing.T) {
	_, err := explorer.New(nil)
	assert.ErrorIs(t, err, explorer.ErrNilStateSpace)

	s := record(t, 3, "a", "b")
	_, err = explorer.New(s, explorer.WithStartVector([]int{0}))
	assert.ErrorIs(t, err, statespace.ErrVectorLength)
	_, err = explorer.New(s, explorer.WithEndVector([]int{0, 3}))
	assert.ErrorIs(t, err, statespace.ErrVectorValue)
}

func TestNextTestCase_StartVectorFirst(t *testing.T) {
	s := record(t, 3, "a", "b")
	ex := newExplorer(t, s, explorer.WithStartVector([]int{1, 2}))

	c, ok := ex.NextTestCase()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, c.Vector())
	assert.Empty(t, ex.Changed())

	// Nothing was observed, so the trace is empty and the search ends.
	_, ok = ex.NextTestCase()
	assert.False(t, ok)
	_, ok = ex.NextTestCase()
	assert.False(t, ok, "exhaustion is sticky")
}

func TestObserve_RejectsOutOfRange(t *testing.T) {
	ex := newExplorer(t, record(t, 2, "a"))
	_, _ = ex.NextTestCase()
	assert.ErrorIs(t, ex.Observe([]int{0, 1}), explorer.ErrTraceIndex)
	assert.Empty(t, ex.Trace(), "a rejected trace is not partially merged")

	require.NoError(t, ex.Observe([]int{0, 0}))
	assert.Equal(t, []int{0}, ex.Trace())
}

func TestAdvance_RightmostDigitFirst(t *testing.T) {
	s := record(t, 2, "a", "b")
	all := oracle.Traced(func(v *candidate.View) bool {
		return v.Int(v.Root(), "a")+v.Int(v.Root(), "b") >= 0
	})
	r := drive(t, newExplorer(t, s), all, false, nil)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, r.vectors)
}

func TestAdvance_PrunesUnreadFields(t *testing.T) {
	s := record(t, 4, "a", "b")
	onlyA := oracle.Traced(func(v *candidate.View) bool { return v.Int(v.Root(), "a") == 9 })

	ex := newExplorer(t, s, explorer.WithStartVector([]int{0, 3}))
	r := drive(t, ex, onlyA, true, nil)
	assert.Equal(t, 4, r.explored)
	for _, vec := range r.vectors {
		assert.Equal(t, 3, vec[1], "b never appeared in a trace and must keep its start value")
	}
}

func TestReportCurrentAsValid_ScansShortCircuitedFields(t *testing.T) {
	s := record(t, 4, "a", "b")
	p := oracle.Traced(func(v *candidate.View) bool {
		return v.Int(v.Root(), "a") != 0 || v.Int(v.Root(), "b") == 2
	})

	with := drive(t, newExplorer(t, s), p, true, nil)
	assert.Equal(t, 16, with.explored)
	assert.Equal(t, 13, with.valid)

	without := drive(t, newExplorer(t, s), p, false, nil)
	assert.Equal(t, 7, without.explored)
	assert.Equal(t, 4, without.valid)
}

func TestExcludedField_KeepsStartValue(t *testing.T) {
	f := finitization.New("Rec", "a", "b")
	f.Set("Rec", "a", finitization.Ints(0, 3))
	f.Set("Rec", "b", finitization.Ints(0, 3))
	f.Exclude("Rec", "b")
	s, err := f.Build()
	require.NoError(t, err)

	both := oracle.Traced(func(v *candidate.View) bool {
		return v.Int(v.Root(), "a") <= v.Int(v.Root(), "b")
	})
	r := drive(t, newExplorer(t, s, explorer.WithStartVector([]int{0, 2})), both, true, nil)
	assert.Equal(t, 4, r.explored)
	assert.Equal(t, 3, r.valid)
	for _, vec := range r.vectors {
		assert.Equal(t, 2, vec[1])
	}
}

func TestEndVector_SplitsRanges(t *testing.T) {
	s := record(t, 3, "a", "b", "c")
	even := oracle.Traced(func(v *candidate.View) bool {
		sum := v.Int(v.Root(), "a") + v.Int(v.Root(), "b") + v.Int(v.Root(), "c")
		return sum%2 == 0
	})
	split := []int{1, 0, 0}

	full := drive(t, newExplorer(t, s), even, true, nil)
	low := drive(t, newExplorer(t, s, explorer.WithEndVector(split)), even, true, nil)
	high := drive(t, newExplorer(t, s, explorer.WithStartVector(split)), even, true, nil)

	assert.Equal(t, 27, full.explored)
	assert.Equal(t, 14, full.valid)
	assert.Equal(t, 9, low.explored)
	assert.Equal(t, 5, low.valid)
	assert.Equal(t, 18, high.explored)
	assert.Equal(t, 9, high.valid)
	assert.NotContains(t, low.vectors, split, "the end vector is exclusive")
	assert.Equal(t, full.vectors, append(low.vectors, high.vectors...))
}

// shape renders a tree ignoring node identity, so isomorphic trees coincide.
func shape(c *candidate.Candidate, r candidate.Ref) string {
	if r == candidate.Nil {
		return "."
	}
	s := c.Space()
	li, _ := s.FieldIndex(statespace.ObjectID(r), "left")
	ri, _ := s.FieldIndex(statespace.ObjectID(r), "right")

	return "(" + shape(c, c.RefAt(li)) + shape(c, c.RefAt(ri)) + ")"
}

func TestBinaryTree_CatalanAndNoIsomorphs(t *testing.T) {
	catalan := []int{1, 1, 2, 5, 14}
	for n := 0; n < len(catalan); n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			s, err := structures.BinaryTreeSpace(n)
			require.NoError(t, err)
			shapes := make(map[string]bool)
			r := drive(t, newExplorer(t, s), oracle.Traced(structures.BinaryTreeRepOK), true,
				func(c *candidate.Candidate) {
					sh := shape(c, c.RefAt(0))
					assert.False(t, shapes[sh], "isomorphic duplicate %s", sh)
					shapes[sh] = true
				})
			assert.Equal(t, catalan[n], r.valid)
		})
	}
}

// TestBinaryTree_Completeness compares the explorer against brute-force
// enumeration of every vector: each valid structure must be isomorphic to
// exactly one emitted candidate.
func TestBinaryTree_Completeness(t *testing.T) {
	const n = 3
	s, err := structures.BinaryTreeSpace(n)
	require.NoError(t, err)
	o := oracle.Traced(structures.BinaryTreeRepOK)

	emitted := make(map[string]int)
	drive(t, newExplorer(t, s), o, true, func(c *candidate.Candidate) {
		emitted[shape(c, c.RefAt(0))]++
	})

	all := make(map[string]bool)
	b := candidate.NewBuilder(s)
	vec := make([]int, s.Len())
	for {
		c, err := b.Build(vec)
		require.NoError(t, err)
		verdict, err := o.Evaluate(context.Background(), c)
		require.NoError(t, err)
		if verdict.Valid {
			all[shape(c, c.RefAt(0))] = true
		}
		if !nextOdometer(s, vec) {
			break
		}
	}

	assert.Len(t, emitted, len(all))
	for sh := range all {
		assert.Equal(t, 1, emitted[sh], "structure %s", sh)
	}
}

// nextOdometer steps vec through every in-domain vector; false when done.
func nextOdometer(s *statespace.StateSpace, vec []int) bool {
	for i := len(vec) - 1; i >= 0; i-- {
		vec[i]++
		if vec[i] < s.FieldDomain(i).NumberOfElements() {
			return true
		}
		vec[i] = 0
	}

	return false
}

func TestLinkedList_OneCandidatePerOrdering(t *testing.T) {
	const k = 3
	s, err := structures.LinkedListSpace(k)
	require.NoError(t, err)

	orders := make(map[string]bool)
	r := drive(t, newExplorer(t, s), oracle.Traced(structures.LinkedListRepOK), true,
		func(c *candidate.Candidate) {
			var seq string
			for node := c.RefAt(0); node != candidate.Nil; {
				ei, _ := s.FieldIndex(statespace.ObjectID(node), "elem")
				ni, _ := s.FieldIndex(statespace.ObjectID(node), "next")
				seq += c.Name(c.RefAt(ei)) + " "
				node = c.RefAt(ni)
			}
			assert.False(t, orders[seq], "duplicate ordering %s", seq)
			orders[seq] = true
		})
	assert.Equal(t, 6, r.valid)
	assert.Len(t, orders, 6)
}

func TestDeterminismAndMonotonicProgress(t *testing.T) {
	s, err := structures.BinaryTreeSpace(3)
	require.NoError(t, err)
	o := oracle.Traced(structures.BinaryTreeRepOK)

	first := drive(t, newExplorer(t, s), o, true, nil)
	second := drive(t, newExplorer(t, s), o, true, nil)
	assert.Equal(t, 63, first.explored)
	assert.Equal(t, first, second)

	seen := make(map[string]bool, len(first.vectors))
	for _, vec := range first.vectors {
		key := fmt.Sprint(vec)
		assert.False(t, seen[key], "vector %s revisited", key)
		seen[key] = true
	}
}

func TestIsomorphism_NeverSkipsAheadOfDiscoveryOrder(t *testing.T) {
	s, err := structures.BinaryTreeSpace(2)
	require.NoError(t, err)
	r := drive(t, newExplorer(t, s), oracle.Traced(structures.BinaryTreeRepOK), true, nil)

	// root is the first slot read, so it may only ever hold null or Node#0.
	for _, vec := range r.vectors {
		assert.LessOrEqual(t, vec[0], 1, "root jumped to Node#1 in %v", vec)
	}
}

func TestIsomorphism_SkipsToNextClassDomain(t *testing.T) {
	f := finitization.New("Pair", "x", "y")
	f.Class("A")
	f.Class("B")
	as := f.Objects("A", 2)
	bs := f.Objects("B", 2)
	f.Set("Pair", "x", finitization.OrNull(as, bs))
	f.Set("Pair", "y", finitization.OrNull(as, bs))
	s, err := f.Build()
	require.NoError(t, err)

	both := oracle.Traced(func(v *candidate.View) bool {
		v.Ref(v.Root(), "x")
		v.Ref(v.Root(), "y")
		return true
	})
	r := drive(t, newExplorer(t, s), both, true, nil)

	// x=null: y in {null, A#0, B#0}; x=A#0: y adds A#1; x=B#0: y adds B#1.
	// Domain indices are null=0, A#0=1, A#1=2, B#0=3, B#1=4.
	assert.Equal(t, 11, r.explored)
	assert.Equal(t, 11, r.valid)
	assert.Contains(t, r.vectors, []int{0, 3}, "A#0 -> B#0 jump lost")
	assert.Contains(t, r.vectors, []int{1, 3}, "A#1 -> B#0 jump lost")
	for _, vec := range r.vectors {
		assert.NotEqual(t, 2, vec[0], "x pointed at A#1 in %v", vec)
		assert.NotEqual(t, 4, vec[0], "x pointed at B#1 in %v", vec)
	}
}

func TestChanged_ReportsRewrittenSlots(t *testing.T) {
	s := record(t, 2, "a", "b")
	ex := newExplorer(t, s)
	_, _ = ex.NextTestCase()
	require.NoError(t, ex.Observe([]int{0, 1}))

	_, _ = ex.NextTestCase() // b: 0 -> 1
	assert.Equal(t, []int{1}, ex.Changed())
	require.NoError(t, ex.Observe([]int{0, 1}))

	_, _ = ex.NextTestCase() // b carries, a: 0 -> 1
	assert.Equal(t, []int{0, 1}, ex.Changed())
	assert.Equal(t, []int{1, 0}, ex.Vector())
}
