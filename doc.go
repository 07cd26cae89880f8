// Package lvbound generates every structurally valid instance of a data
// structure up to a bound, without isomorphic duplicates.
//
// What is lvbound?
//
//	Given a finitization (how many objects of each class exist and which
//	values each field may take) and a predicate (the structure's invariant),
//	lvbound searches the implicit space of field assignments. The predicate
//	is evaluated through a tracing view; fields it never reads are never
//	varied, and interchangeable objects are only introduced in discovery
//	order, so each valid structure is produced exactly once up to renaming.
//
// Packages:
//
//	intset/        ordered access trace and bit sets
//	domain/        ClassDomain and FieldDomain
//	statespace/    the flattened slot vector of one finitization
//	finitization/  declaring classes, object sets and field bounds
//	candidate/     materializing vectors into object graphs; tracing view
//	oracle/        the predicate contract and its tracing adapter
//	explorer/      the backtracking search
//	generate/      run loop, listeners, metrics, ranges, checkpoints
//	structures/    ready-made finitizations and invariants
//	config/        YAML run configuration
//	logging/       slog construction
//	cmd/lvbound/   command-line interface
//
// Quick start:
//
//	space, _ := structures.BinaryTreeSpace(4)
//	st, _ := generate.Run(ctx, space, oracle.Traced(structures.BinaryTreeRepOK))
//	// st.Valid == 14
package lvbound
