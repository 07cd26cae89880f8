package structures

import (
	"github.com/katalvlaran/lvbound/candidate"
	"github.com/katalvlaran/lvbound/finitization"
	"github.com/katalvlaran/lvbound/statespace"
)

// LinkedListSpace bounds singly linked lists to n interchangeable nodes
// carrying n distinguishable elements. Element identity is observable, so
// the Elem set is excluded from isomorphism checking.
func LinkedListSpace(n int) (*statespace.StateSpace, error) {
	f := finitization.New("List", "header", "size")
	f.Class("Node", "next", "elem")
	f.Class("Elem")
	f.Set("List", "size", finitization.Ints(int64(n), int64(n)))
	if n <= 0 {
		f.Set("List", "header", finitization.OrNull())
		return f.Build()
	}
	nodes := f.Objects("Node", n)
	elems := f.Objects("Elem", n, finitization.WithoutIsomorphism())
	f.Set("List", "header", finitization.OrNull(nodes))
	f.Set("Node", "next", finitization.OrNull(nodes))
	f.Set("Node", "elem", elems)

	return f.Build()
}

// LinkedListRepOK accepts acyclic lists of exactly size nodes whose elements
// are pairwise distinct.
func LinkedListRepOK(v *candidate.View) bool {
	node := v.Ref(v.Root(), "header")
	if node == candidate.Nil {
		return v.Int(v.Root(), "size") == 0
	}
	visited := make([]bool, v.NumObjects())
	seen := make([]bool, v.NumObjects())
	count := 0
	for node != candidate.Nil {
		if visited[node] {
			return false
		}
		visited[node] = true
		count++
		elem := v.Ref(node, "elem")
		if seen[elem] {
			return false
		}
		seen[elem] = true
		node = v.Ref(node, "next")
	}

	return int64(count) == v.Int(v.Root(), "size")
}
