package extend

import (
	"errors"

	"property-extender/internal/shape"
	"property-extender/property"
)

var (
	// ErrInvalidArgument is returned before any work is done for a missing
	// source or an empty property list.
	ErrInvalidArgument = property.ErrInvalidArgument
	// ErrFieldMismatch is returned by Extended.Struct when a value does not
	// fit the field type fixed by an earlier extension with the same names.
	ErrFieldMismatch = shape.ErrFieldMismatch
	// ErrTypeMismatch is returned by Value when a property holds a value of
	// another type.
	ErrTypeMismatch = errors.New("property value has an unexpected type")
)
