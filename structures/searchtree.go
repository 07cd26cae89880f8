package structures

import (
	"github.com/katalvlaran/lvbound/candidate"
	"github.com/katalvlaran/lvbound/statespace"
)

// SearchTreeSpace bounds binary search trees to n nodes with keys in [0, n).
func SearchTreeSpace(n int) (*statespace.StateSpace, error) {
	return treeFinitization("SearchTree", n, true).Build()
}

// SearchTreeRepOK checks the tree shape like BinaryTreeRepOK, then strict
// key ordering: every key lies strictly between the bounds its ancestors impose.
func SearchTreeRepOK(v *candidate.View) bool {
	if !BinaryTreeRepOK(v) {
		return false
	}

	return ordered(v, v.Ref(v.Root(), "root"), nil, nil)
}

func ordered(v *candidate.View, node candidate.Ref, lo, hi *int64) bool {
	if node == candidate.Nil {
		return true
	}
	key := v.Int(node, "key")
	if (lo != nil && key <= *lo) || (hi != nil && key >= *hi) {
		return false
	}

	return ordered(v, v.Ref(node, "left"), lo, &key) && ordered(v, v.Ref(node, "right"), &key, hi)
}
