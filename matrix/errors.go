package matrix

import "errors"

// Sentinel errors returned by this package. Always compare with errors.Is.
var (
	// ErrNonPositiveSize is returned when a matrix of size <= 0 is requested.
	ErrNonPositiveSize = errors.New("matrix: size must be positive")
	// ErrIndexOutOfRange is returned by Get/Set when an index falls outside [0, size).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
)
