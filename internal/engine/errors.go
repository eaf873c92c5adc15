package engine

import "errors"

var (
	// ErrInvalidParameter indicates a missing, malformed or out-of-range algorithm parameter.
	ErrInvalidParameter = errors.New("engine: invalid parameter")
	// ErrUnknownAlgorithm indicates an algorithm name with no registered implementation.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")
)
