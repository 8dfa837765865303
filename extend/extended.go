package extend

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/goccy/go-json"

	"property-extender/internal/identity"
	"property-extender/internal/resolve"
	"property-extender/internal/shape"
)

// Extended is a source value with extra properties layered on top.
// It is immutable and safe for concurrent reads.
type Extended[T any] struct {
	source   T
	resolver *resolve.Resolver
	shape    *shape.Shape
}

// Source returns the original source value.
func (e *Extended[T]) Source() T {
	return e.source
}

// Get returns the value of a property: the extra of that name if any,
// otherwise the source's own. Unknown names give nil without error.
// Derivations run on every call and their errors are returned unchanged.
func (e *Extended[T]) Get(name string) (any, error) {
	value, _, err := e.resolver.Resolve(name)
	return value, err
}

// Has returns true if name is an extra or a source property.
func (e *Extended[T]) Has(name string) bool {
	return e.resolver.Has(name)
}

// Names returns the source property names followed by the extra names the
// source does not expose.
func (e *Extended[T]) Names() []string {
	return e.resolver.Names()
}

// Set accepts a write and ignores it.
func (e *Extended[T]) Set(string, any) {}

// Type returns the synthesized struct type of the extension.
func (e *Extended[T]) Type() reflect.Type {
	return e.shape.Type
}

// Struct returns a pointer to a new value of Type with every property read
// into its field. The value is a snapshot: changing it affects nothing.
func (e *Extended[T]) Struct() (any, error) {
	return e.shape.Build(e.resolver.Resolve)
}

// Equal reports whether the source equals other.
func (e *Extended[T]) Equal(other any) bool {
	return identity.Equal(e.source, other)
}

// Hash returns the hash of the source.
func (e *Extended[T]) Hash() uint64 {
	return identity.Hash(e.source)
}

// MarshalJSON encodes the synthesized struct.
func (e *Extended[T]) MarshalJSON() ([]byte, error) {
	v, err := e.Struct()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalYAML returns the synthesized struct for yaml.v3 to encode.
func (e *Extended[T]) MarshalYAML() (any, error) {
	return e.Struct()
}

// String returns a short description of the extension.
func (e *Extended[T]) String() string {
	return fmt.Sprintf("extend.Extended[%s]%v", e.resolver.Source().Type(), e.Names())
}

// Value reads a property as a V. A nil or unknown property gives the zero
// V. A value of another type fails with ErrTypeMismatch.
func Value[V any, T any](e *Extended[T], name string) (V, error) {
	var zero V

	raw, err := e.Get(name)
	if err != nil || raw == nil {
		return zero, err
	}

	v, ok := raw.(V)
	if !ok {
		return zero, fmt.Errorf("%w: property %q is %T, not %s", ErrTypeMismatch, name, raw, reflect.TypeFor[V]())
	}

	return v, nil
}
