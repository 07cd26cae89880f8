package intset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvbound/intset"
)

func TestTrace_FirstAccessWins(t *testing.T) {
	tr := intset.NewTrace(4)
	assert.True(t, tr.Add(3))
	assert.True(t, tr.Add(1))
	assert.False(t, tr.Add(3), "duplicate must be ignored")
	assert.True(t, tr.Add(7), "trace grows past its initial capacity")
	assert.False(t, tr.Add(-1))

	if diff := cmp.Diff([]int{3, 1, 7}, tr.Slice()); diff != "" {
		t.Fatalf("trace order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, tr.Len())
}

func TestTrace_PopFromTail(t *testing.T) {
	tr := intset.NewTrace(0)
	tr.Add(0)
	tr.Add(5)

	i, ok := tr.Pop()
	assert.True(t, ok)
	assert.Equal(t, 5, i)

	// A popped index can be re-added and lands at the tail again.
	assert.True(t, tr.Add(5))
	assert.Equal(t, []int{0, 5}, tr.Slice())

	_, _ = tr.Pop()
	_, _ = tr.Pop()
	_, ok = tr.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, tr.Len())
	assert.True(t, tr.Add(0), "an emptied trace accepts earlier indices again")
}

func TestSet_Membership(t *testing.T) {
	s := intset.NewSet(8)
	s.Add(6)
	s.Add(2)
	s.Add(2)
	s.Add(130)
	s.Add(-4)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{2, 6, 130}, s.Slice(), "negative indices are ignored")

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Slice())
}
