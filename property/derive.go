package property

import (
	"fmt"
	"reflect"
)

// Deriver computes a property value from the source it is attached to.
type Deriver interface {
	Derive(source any) (any, error)
}

// DeriverFunc adapts a function into a Deriver.
type DeriverFunc func(source any) (any, error)

// Derive calls the underlying function.
func (fn DeriverFunc) Derive(source any) (any, error) {
	return fn(source)
}

// funcDeriver calls a typed derivation function through reflection.
type funcDeriver struct {
	fn     reflect.Value
	in     reflect.Type
	out    reflect.Type
	hasErr bool
}

var errorType = reflect.TypeFor[error]()

// parseDerivation inspects fn and returns a deriver if it is a valid
// derivation function.
//
// Supports:
//   - func(src S) V
//   - func(src S) (V, error)
func parseDerivation(fn any) (*funcDeriver, error) {
	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()

	if fnType.NumIn() != 1 || fnType.IsVariadic() {
		return nil, ErrNotADerivation
	}

	d := &funcDeriver{
		fn: fnVal,
		in: fnType.In(0),
	}

	switch fnType.NumOut() {
	case 1:
		d.out = fnType.Out(0)
	case 2:
		if !fnType.Out(1).Implements(errorType) {
			return nil, ErrNotADerivation
		}

		d.out = fnType.Out(0)
		d.hasErr = true
	default:
		return nil, ErrNotADerivation
	}

	return d, nil
}

func (d *funcDeriver) Derive(source any) (any, error) {
	arg, err := d.argument(source)
	if err != nil {
		return nil, err
	}

	out := d.fn.Call([]reflect.Value{arg})
	if d.hasErr && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}

	return out[0].Interface(), nil
}

// argument adapts the source to the parameter type, dereferencing a pointer
// source when the function takes the pointee.
func (d *funcDeriver) argument(source any) (reflect.Value, error) {
	sv := reflect.ValueOf(source)
	if !sv.IsValid() {
		return reflect.Zero(d.in), nil
	}

	if sv.Type().AssignableTo(d.in) {
		return sv, nil
	}

	if sv.Kind() == reflect.Pointer && !sv.IsNil() && sv.Type().Elem().AssignableTo(d.in) {
		return sv.Elem(), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: derivation takes %s, source is %s", ErrInvalidArgument, d.in, sv.Type())
}
