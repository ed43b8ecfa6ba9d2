package ddl

import "errors"

var (
	// ErrUnsupported is returned by operations the dialect has no DDL for,
	// such as altering a type in place.
	ErrUnsupported = errors.New("operation not supported")

	// ErrMissingName is returned when a constraint operation requires a
	// name and none was given.
	ErrMissingName = errors.New("constraint name required")

	// ErrIrreversible is returned by Inverse for operations whose undo
	// cannot be constructed from the forward operation alone.
	ErrIrreversible = errors.New("operation is not reversible")
)
