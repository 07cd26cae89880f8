// Package finitization declares the bounds that make a structural search
// space finite, and compiles them into a statespace.StateSpace.
//
// A finitization names a root class and, for every class reachable from it,
// the ordered list of fields and the legal values of each field:
//
//	f := finitization.New("BinaryTree", "root", "size")
//	f.Class("Node", "left", "right")
//	nodes := f.Objects("Node", 3)
//	f.Set("BinaryTree", "root", finitization.OrNull(nodes))
//	f.Set("BinaryTree", "size", finitization.Ints(3, 3))
//	f.Set("Node", "left", finitization.OrNull(nodes))
//	f.Set("Node", "right", finitization.OrNull(nodes))
//	space, err := f.Build()
//
// Declaration methods never fail immediately; the first error is recorded and
// returned by Build (and Err), so declarations read as one block.
//
// Only class domains reachable from the root through field values are laid
// out; unreachable object sets are dropped from the vector.
//
// Errors:
//
//   - ErrUnknownClass     a class used before it was declared.
//   - ErrDuplicateClass   a class declared twice.
//   - ErrUnknownField     Set/Exclude on a field the class does not declare.
//   - ErrUnboundField     a reachable field without values.
//   - ErrForeignObjSet    an ObjSet created by a different Finitization.
//   - domain.* / statespace.* errors from the compiled layout.
package finitization
