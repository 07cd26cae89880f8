package finitization

import "errors"

var (
	// ErrUnknownClass indicates a reference to an undeclared class.
	ErrUnknownClass = errors.New("finitization: unknown class")

	// ErrDuplicateClass indicates a class declared more than once.
	ErrDuplicateClass = errors.New("finitization: class declared twice")

	// ErrUnknownField indicates a field the class does not declare.
	ErrUnknownField = errors.New("finitization: unknown field")

	// ErrUnboundField indicates a reachable field without a value set.
	ErrUnboundField = errors.New("finitization: field has no values")

	// ErrForeignObjSet indicates an ObjSet that belongs to another Finitization.
	ErrForeignObjSet = errors.New("finitization: object set belongs to another finitization")
)
