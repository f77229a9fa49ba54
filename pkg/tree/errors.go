package tree

import "errors"

var (
	// ErrInvalidDocument is returned when a tree document cannot be parsed or
	// its root is neither a sequence of mappings nor a single mapping.
	ErrInvalidDocument = errors.New("invalid tree document")

	// ErrDecode is returned when flattened records cannot be decoded into the target type.
	ErrDecode = errors.New("failed to decode tree records")
)
