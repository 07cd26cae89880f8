package statespace_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbound/domain"
	"github.com/katalvlaran/lvbound/statespace"
)

// treeLayout returns a binary-tree layout: Root{root,size}, Node{left,right} x n.
func treeLayout(t *testing.T, n int) (statespace.Layout, *domain.ClassDomain) {
	t.Helper()
	nodes, err := domain.NewClassDomain("Node", n)
	require.NoError(t, err)
	ref, err := domain.NewReferenceDomain(domain.NewNullDomain(), nodes)
	require.NoError(t, err)
	size, err := domain.NewIntDomain(int64(n), int64(n))
	require.NoError(t, err)

	return statespace.Layout{
		RootClass:  "BinaryTree",
		RootFields: []statespace.FieldSpec{{Name: "root", Domain: ref}, {Name: "size", Domain: size}},
		Domains: []statespace.DomainSpec{{
			Class:  nodes,
			Fields: []statespace.FieldSpec{{Name: "left", Domain: ref}, {Name: "right", Domain: ref}},
		}},
	}, nodes
}

func TestNew_TreeLayout(t *testing.T) {
	l, nodes := treeLayout(t, 3)
	s, err := statespace.New(l)
	require.NoError(t, err)

	assert.Equal(t, 8, s.Len())
	assert.Equal(t, 4, s.NumObjects())
	assert.Equal(t, "BinaryTree", s.RootClass())

	first, end := s.FieldsOf(s.Root())
	assert.Equal(t, 0, first)
	assert.Equal(t, 2, end)

	id, ok := s.ObjectFor(nodes, 1)
	require.True(t, ok)
	first, end = s.FieldsOf(id)
	assert.Equal(t, 4, first)
	assert.Equal(t, 6, end)

	i, ok := s.FieldIndex(id, "right")
	require.True(t, ok)
	assert.Equal(t, 5, i)
	assert.Equal(t, "Node#1.right", s.SlotName(i))

	_, ok = s.ObjectFor(nodes, 3)
	assert.False(t, ok)
	_, ok = s.FieldIndex(id, "missing")
	assert.False(t, ok)
	assert.Nil(t, s.FieldDomain(8))
}

func TestNew_ArrayLayout(t *testing.T) {
	arrs, err := domain.NewClassDomain("int[]", 1, domain.AsArray())
	require.NoError(t, err)
	ref, _ := domain.NewReferenceDomain(arrs)
	length, _ := domain.NewIntDomain(0, 2)
	elem, _ := domain.NewIntDomain(0, 4)

	s, err := statespace.New(statespace.Layout{
		RootClass:  "Heap",
		RootFields: []statespace.FieldSpec{{Name: "array", Domain: ref}},
		Domains:    []statespace.DomainSpec{{Class: arrs, Length: length, Element: elem, MaxLength: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	id, _ := s.ObjectFor(arrs, 0)
	li, ok := s.FieldIndex(id, statespace.LengthField)
	require.True(t, ok)
	assert.Equal(t, 1, li)
	ei, ok := s.ElemIndex(id, 1)
	require.True(t, ok)
	assert.Equal(t, 3, ei)
	assert.Equal(t, "int[]#0[1]", s.SlotName(ei))
	_, ok = s.ElemIndex(id, 2)
	assert.False(t, ok)

	_, err = statespace.New(statespace.Layout{
		RootClass: "Heap",
		Domains:   []statespace.DomainSpec{{Class: arrs, Length: length, Element: elem, MaxLength: 1}},
	})
	assert.ErrorIs(t, err, statespace.ErrInvalidArray, "length 2 exceeds MaxLength 1")
}

func TestNew_ConfigurationErrors(t *testing.T) {
	l, nodes := treeLayout(t, 2)

	dup := l
	dup.Domains = append(dup.Domains, dup.Domains[0])
	_, err := statespace.New(dup)
	assert.ErrorIs(t, err, statespace.ErrDuplicateClassDomain)

	missing := l
	missing.Domains = nil
	_, err = statespace.New(missing)
	assert.ErrorIs(t, err, statespace.ErrUnknownClassDomain)

	nilField := l
	nilField.RootFields = []statespace.FieldSpec{{Name: "root"}}
	_, err = statespace.New(nilField)
	assert.ErrorIs(t, err, statespace.ErrNilFieldDomain)

	ref, _ := domain.NewReferenceDomain(nodes)
	twice := l
	twice.RootFields = []statespace.FieldSpec{{Name: "root", Domain: ref}, {Name: "root", Domain: ref}}
	_, err = statespace.New(twice)
	assert.ErrorIs(t, err, statespace.ErrDuplicateField)
}

func TestValidateVector(t *testing.T) {
	l, _ := treeLayout(t, 1)
	s, err := statespace.New(l)
	require.NoError(t, err)

	assert.NoError(t, s.ValidateVector([]int{1, 0, 0, 1}))
	assert.ErrorIs(t, s.ValidateVector([]int{0, 0}), statespace.ErrVectorLength)
	assert.ErrorIs(t, s.ValidateVector([]int{2, 0, 0, 0}), statespace.ErrVectorValue)
	assert.ErrorIs(t, s.ValidateVector([]int{0, -1, 0, 0}), statespace.ErrVectorValue)

	var buf bytes.Buffer
	require.NoError(t, s.Describe(&buf))
	assert.Contains(t, buf.String(), "Node#0.left")
	assert.Contains(t, buf.String(), "null+Node[1]")
}
