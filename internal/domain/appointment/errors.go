package appointment

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	// ErrUnknownFailure replaces any store or mapping failure that is not
	// caused by user input. It never carries the underlying cause.
	ErrUnknownFailure = errors.New("an unknown error occurred. Please reach out to support if the issue persists")
)
