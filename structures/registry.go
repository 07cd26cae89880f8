package structures

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvbound/oracle"
	"github.com/katalvlaran/lvbound/statespace"
)

// ErrUnknownStructure indicates a name absent from the registry.
var ErrUnknownStructure = errors.New("structures: unknown structure")

// Structure pairs a finitization with its invariant.
type Structure struct {
	Name        string
	Description string
	Space       func(n int) (*statespace.StateSpace, error)
	Predicate   oracle.Predicate
}

var registry = map[string]Structure{
	"binarytree": {
		Name:        "binarytree",
		Description: "binary trees with exactly n nodes",
		Space:       BinaryTreeSpace,
		Predicate:   BinaryTreeRepOK,
	},
	"searchtree": {
		Name:        "searchtree",
		Description: "binary search trees with n nodes and keys in [0,n)",
		Space:       SearchTreeSpace,
		Predicate:   SearchTreeRepOK,
	},
	"linkedlist": {
		Name:        "linkedlist",
		Description: "acyclic singly linked lists of n distinct elements",
		Space:       LinkedListSpace,
		Predicate:   LinkedListRepOK,
	},
	"sortedlist": {
		Name:        "sortedlist",
		Description: "acyclic singly linked lists of n non-decreasing values in [0,n)",
		Space:       SortedListSpace,
		Predicate:   SortedListRepOK,
	},
	"heaparray": {
		Name:        "heaparray",
		Description: "array-backed max-heaps of capacity n with values in [0,n)",
		Space:       HeapArraySpace,
		Predicate:   HeapArrayRepOK,
	},
}

// Lookup returns the structure registered under name.
func Lookup(name string) (Structure, error) {
	s, ok := registry[name]
	if !ok {
		return Structure{}, fmt.Errorf("%q: %w", name, ErrUnknownStructure)
	}

	return s, nil
}

// All returns every registered structure ordered by name.
func All() []Structure {
	out := make([]Structure, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
