package structures

import (
	"github.com/katalvlaran/lvbound/candidate"
	"github.com/katalvlaran/lvbound/finitization"
	"github.com/katalvlaran/lvbound/statespace"
)

// SortedListSpace bounds singly linked lists to n nodes holding values in [0, n).
func SortedListSpace(n int) (*statespace.StateSpace, error) {
	f := finitization.New("SortedList", "header", "size")
	f.Class("Node", "next", "value")
	f.Set("SortedList", "size", finitization.Ints(int64(n), int64(n)))
	if n <= 0 {
		f.Set("SortedList", "header", finitization.OrNull())
		return f.Build()
	}
	nodes := f.Objects("Node", n)
	f.Set("SortedList", "header", finitization.OrNull(nodes))
	f.Set("Node", "next", finitization.OrNull(nodes))
	f.Set("Node", "value", finitization.Ints(0, int64(n-1)))

	return f.Build()
}

// SortedListRepOK accepts acyclic lists of exactly size nodes whose values
// never decrease from header to tail.
func SortedListRepOK(v *candidate.View) bool {
	node := v.Ref(v.Root(), "header")
	if node == candidate.Nil {
		return v.Int(v.Root(), "size") == 0
	}
	visited := make([]bool, v.NumObjects())
	count := 0
	var prev int64
	for node != candidate.Nil {
		if visited[node] {
			return false
		}
		visited[node] = true
		value := v.Int(node, "value")
		if count > 0 && value < prev {
			return false
		}
		prev = value
		count++
		node = v.Ref(node, "next")
	}

	return int64(count) == v.Int(v.Root(), "size")
}
