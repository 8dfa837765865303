package property

import "errors"

var (
	// ErrInvalidArgument is returned for missing sources, empty property
	// lists, empty names and nil payloads.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotADerivation is returned for func payloads of an unsupported shape.
	ErrNotADerivation = errors.New("function is not a recognizable derivation")
)
