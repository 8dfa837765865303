package property

import (
	"fmt"
	"reflect"

	"property-extender/internal/common"
)

// Property is an immutable named payload. The zero value is not a valid
// property; use New, MustNew or Expr.
type Property struct {
	name    string
	value   any
	deriver Deriver
	typ     reflect.Type
	in      reflect.Type
}

// New creates a property. It fails with ErrInvalidArgument when name is
// empty or value is nil, and when value is a func of an unsupported shape.
func New(name string, value any) (Property, error) {
	if name == "" {
		return Property{}, fmt.Errorf("%w: the name is required", ErrInvalidArgument)
	}

	if common.IsNil(value) {
		return Property{}, fmt.Errorf("%w: property %q: the value is required", ErrInvalidArgument, name)
	}

	p := Property{name: name, value: value}

	if d, ok := value.(Deriver); ok {
		p.deriver = d
		p.typ = anyType

		return p, nil
	}

	if reflect.TypeOf(value).Kind() == reflect.Func {
		fd, err := parseDerivation(value)
		if err != nil {
			return Property{}, fmt.Errorf("%w: property %q: %w", ErrInvalidArgument, name, err)
		}

		p.deriver = fd
		p.typ = fd.out
		p.in = fd.in

		return p, nil
	}

	p.typ = reflect.TypeOf(value)

	return p, nil
}

// MustNew is like New but panics on error.
func MustNew(name string, value any) Property {
	p, err := New(name, value)
	if err != nil {
		panic(err)
	}

	return p
}

// Name returns the property name.
func (p Property) Name() string { return p.name }

// Value returns the raw payload as given to New.
func (p Property) Value() any { return p.value }

// IsDerived returns true if the payload is computed from the source.
func (p Property) IsDerived() bool { return p.deriver != nil }

// IsZero returns true for the zero Property.
func (p Property) IsZero() bool { return p.name == "" }

// Type returns the declared value type: the dynamic type of a plain value,
// the result type of a func derivation, and the empty interface type for
// other derivations.
func (p Property) Type() reflect.Type { return p.typ }

// Accepts reports whether the property can be resolved against a source of
// type t. Plain values and untyped derivations accept anything; a func
// derivation accepts its parameter type and pointers to it.
func (p Property) Accepts(t reflect.Type) bool {
	if p.in == nil {
		return true
	}

	return t.AssignableTo(p.in) || (t.Kind() == reflect.Pointer && t.Elem().AssignableTo(p.in))
}

// Resolve returns the property value for source. Derivations are invoked on
// every call; their errors are returned unchanged.
func (p Property) Resolve(source any) (any, error) {
	if p.deriver == nil {
		return p.value, nil
	}

	return p.deriver.Derive(source)
}

var anyType = reflect.TypeFor[any]()
