package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbound/domain"
)

func TestNewClassDomain_Validation(t *testing.T) {
	_, err := domain.NewClassDomain("Node", 0)
	assert.ErrorIs(t, err, domain.ErrEmptyDomain)

	c, err := domain.NewClassDomain("Node", 3)
	require.NoError(t, err)
	assert.Equal(t, "Node", c.Name())
	assert.Equal(t, 3, c.Size())
	assert.True(t, c.IncludedInIsomorphism())
	assert.False(t, c.IsArray())

	v, err := domain.NewClassDomain("Elem", 2, domain.WithoutIsomorphism())
	require.NoError(t, err)
	assert.False(t, v.IncludedInIsomorphism())

	null := domain.NewNullDomain()
	assert.True(t, null.IsNull())
	assert.False(t, null.IncludedInIsomorphism())
	assert.Equal(t, 1, null.Size())
}

func TestNewIntDomain_Bounds(t *testing.T) {
	cases := []struct {
		name     string
		min, max int64
		err      error
		size     int
		first    int64
		last     int64
	}{
		{name: "single", min: 7, max: 7, size: 1, first: 7, last: 7},
		{name: "top of int64", min: math.MaxInt64 - 1, max: math.MaxInt64, size: 2, first: math.MaxInt64 - 1, last: math.MaxInt64},
		{name: "bottom of int64", min: math.MinInt64, max: math.MinInt64 + 2, size: 3, first: math.MinInt64, last: math.MinInt64 + 2},
		{name: "largest allowed", min: 0, max: domain.MaxDomainSize - 1, size: domain.MaxDomainSize, first: 0, last: domain.MaxDomainSize - 1},
		{name: "one past largest", min: 0, max: domain.MaxDomainSize, err: domain.ErrDomainTooLarge},
		{name: "half of int64", min: math.MinInt64, max: 0, err: domain.ErrDomainTooLarge},
		{name: "whole int64", min: math.MinInt64, max: math.MaxInt64, err: domain.ErrDomainTooLarge},
		{name: "reversed", min: math.MaxInt64, max: math.MinInt64, err: domain.ErrInvalidRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := domain.NewIntDomain(tc.min, tc.max)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.size, d.NumberOfElements())
			v, ok := d.Value(0)
			assert.True(t, ok)
			assert.Equal(t, tc.first, v)
			v, ok = d.Value(tc.size - 1)
			assert.True(t, ok)
			assert.Equal(t, tc.last, v)
			_, ok = d.Value(tc.size)
			assert.False(t, ok)
		})
	}
}

func TestIntDomain_String(t *testing.T) {
	d, err := domain.NewIntDomain(-1, 2)
	require.NoError(t, err)
	assert.Equal(t, "int[-1..2]", d.String())

	l, err := domain.NewIntListDomain(3, 5)
	require.NoError(t, err)
	assert.Equal(t, "int[3 5]", l.String())
}

func TestReferenceDomain_Lookups(t *testing.T) {
	null := domain.NewNullDomain()
	nodes, _ := domain.NewClassDomain("Node", 3)
	elems, _ := domain.NewClassDomain("Elem", 2, domain.WithoutIsomorphism())

	d, err := domain.NewReferenceDomain(null, nodes, elems)
	require.NoError(t, err)
	assert.Equal(t, 6, d.NumberOfElements())
	assert.False(t, d.IsPrimitiveType())
	assert.False(t, d.IsArrayType())

	cases := []struct {
		global    int
		class     *domain.ClassDomain
		local     int
		nextFirst int
	}{
		{0, null, 0, 1},
		{1, nodes, 0, 4},
		{3, nodes, 2, 4},
		{4, elems, 0, domain.NoIndex},
		{5, elems, 1, domain.NoIndex},
	}
	for _, tc := range cases {
		assert.Same(t, tc.class, d.ClassDomainFor(tc.global), "global %d", tc.global)
		assert.Equal(t, tc.local, d.ClassDomainIndexFor(tc.global), "global %d", tc.global)
		assert.Equal(t, tc.nextFirst, d.FirstIndexOfNextClassDomain(tc.global), "global %d", tc.global)
	}

	assert.Nil(t, d.ClassDomainFor(6))
	assert.Equal(t, domain.NoIndex, d.ClassDomainIndexFor(-1))
	_, ok := d.Value(1)
	assert.False(t, ok)
}

func TestReferenceDomain_Errors(t *testing.T) {
	_, err := domain.NewReferenceDomain()
	assert.ErrorIs(t, err, domain.ErrEmptyDomain)

	_, err = domain.NewReferenceDomain(nil)
	assert.ErrorIs(t, err, domain.ErrNilClassDomain)

	nodes, _ := domain.NewClassDomain("Node", 1)
	arrs, _ := domain.NewClassDomain("int[]", 1, domain.AsArray())
	_, err = domain.NewReferenceDomain(nodes, arrs)
	assert.ErrorIs(t, err, domain.ErrMixedArrayDomain)

	d, err := domain.NewReferenceDomain(domain.NewNullDomain(), arrs)
	require.NoError(t, err)
	assert.True(t, d.IsArrayType())
}

func TestPrimitiveDomains(t *testing.T) {
	_, err := domain.NewIntDomain(3, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	_, err = domain.NewIntListDomain()
	assert.ErrorIs(t, err, domain.ErrEmptyDomain)

	d, err := domain.NewIntDomain(-1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, d.NumberOfElements())
	assert.True(t, d.IsPrimitiveType())
	assert.Nil(t, d.ClassDomainFor(0))
	assert.Equal(t, 2, d.ClassDomainIndexFor(2))
	assert.Equal(t, domain.NoIndex, d.FirstIndexOfNextClassDomain(0))
	v, ok := d.Value(0)
	assert.True(t, ok)
	assert.Equal(t, int64(-1), v)

	l, err := domain.NewIntListDomain(10, 20)
	require.NoError(t, err)
	v, _ = l.Value(1)
	assert.Equal(t, int64(20), v)

	b := domain.NewBoolDomain()
	assert.Equal(t, domain.KindBool, b.Kind())
	assert.Equal(t, 2, b.NumberOfElements())

	ex := d.Excluded()
	assert.True(t, ex.IsExcludedFromSearch())
	assert.False(t, d.IsExcludedFromSearch(), "Excluded must not mutate the receiver")
}
