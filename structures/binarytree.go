package structures

import (
	"github.com/katalvlaran/lvbound/candidate"
	"github.com/katalvlaran/lvbound/finitization"
	"github.com/katalvlaran/lvbound/statespace"
)

// BinaryTreeSpace bounds binary trees to exactly n interchangeable nodes.
func BinaryTreeSpace(n int) (*statespace.StateSpace, error) {
	return treeFinitization("BinaryTree", n, false).Build()
}

// treeFinitization declares Root{root,size} and Node{left,right[,key]}.
func treeFinitization(rootClass string, n int, keyed bool) *finitization.Finitization {
	fields := []string{"left", "right"}
	if keyed {
		fields = append(fields, "key")
	}
	f := finitization.New(rootClass, "root", "size")
	f.Class("Node", fields...)
	f.Set(rootClass, "size", finitization.Ints(int64(n), int64(n)))
	if n <= 0 {
		f.Set(rootClass, "root", finitization.OrNull())
		return f
	}
	nodes := f.Objects("Node", n)
	f.Set(rootClass, "root", finitization.OrNull(nodes))
	f.Set("Node", "left", finitization.OrNull(nodes))
	f.Set("Node", "right", finitization.OrNull(nodes))
	if keyed {
		f.Set("Node", "key", finitization.Ints(0, int64(n-1)))
	}

	return f
}

// BinaryTreeRepOK accepts acyclic, unshared trees whose node count equals size.
// Nodes are visited breadth-first, left before right.
func BinaryTreeRepOK(v *candidate.View) bool {
	root := v.Ref(v.Root(), "root")
	if root == candidate.Nil {
		return v.Int(v.Root(), "size") == 0
	}
	visited := make([]bool, v.NumObjects())
	visited[root] = true
	work := []candidate.Ref{root}
	count := 1

	var node, child candidate.Ref
	for len(work) > 0 {
		node, work = work[0], work[1:]
		for _, field := range [...]string{"left", "right"} {
			child = v.Ref(node, field)
			if child == candidate.Nil {
				continue
			}
			if visited[child] {
				return false // shared or cyclic
			}
			visited[child] = true
			count++
			work = append(work, child)
		}
	}

	return int64(count) == v.Int(v.Root(), "size")
}
