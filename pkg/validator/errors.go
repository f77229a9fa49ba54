package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationError and ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownKind is returned by the CLI when no validator is registered under a name.
	ErrUnknownKind = errors.New("unknown validator kind")
)
