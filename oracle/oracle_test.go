package oracle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbound/candidate"
	"github.com/katalvlaran/lvbound/finitization"
	"github.com/katalvlaran/lvbound/oracle"
)

func pairCandidate(t *testing.T, a, b int) *candidate.Candidate {
	t.Helper()
	f := finitization.New("Pair", "a", "b")
	f.Set("Pair", "a", finitization.Ints(0, 3))
	f.Set("Pair", "b", finitization.Ints(0, 3))
	s, err := f.Build()
	require.NoError(t, err)
	c, err := candidate.NewBuilder(s).Build([]int{a, b})
	require.NoError(t, err)

	return c
}

// shortCircuit reads b only when a is non-zero.
func shortCircuit(v *candidate.View) bool {
	return v.Int(v.Root(), "a") != 0 && v.Int(v.Root(), "b") == 2
}

func TestTraced_RespectsShortCircuit(t *testing.T) {
	o := oracle.Traced(shortCircuit)

	got, err := o.Evaluate(context.Background(), pairCandidate(t, 0, 2))
	require.NoError(t, err)
	assert.False(t, got.Valid)
	assert.Equal(t, []int{0}, got.Trace, "b was never read")

	got, err = o.Evaluate(context.Background(), pairCandidate(t, 1, 2))
	require.NoError(t, err)
	assert.True(t, got.Valid)
	assert.Equal(t, []int{0, 1}, got.Trace)
}

func TestTraced_Errors(t *testing.T) {
	o := oracle.Traced(func(v *candidate.View) bool { return v.Bool(v.Root(), "c") })
	_, err := o.Evaluate(context.Background(), pairCandidate(t, 0, 0))
	assert.ErrorIs(t, err, oracle.ErrPredicate)
	assert.ErrorIs(t, err, candidate.ErrUnknownField)

	_, err = o.Evaluate(context.Background(), nil)
	assert.ErrorIs(t, err, oracle.ErrNilCandidate)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = oracle.Traced(shortCircuit).Evaluate(ctx, pairCandidate(t, 0, 0))
	assert.ErrorIs(t, err, context.Canceled)
}
