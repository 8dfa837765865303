// Package shape synthesizes the struct type of an extended value.
//
// A shape has one field per source property, in table order, and one field
// per extra the source does not expose, in set order. Fields carry the
// property name in their json and yaml tags. Fields backed by an extra are
// typed any and tagged extend:"extra", so the set of extra names is part of
// the struct type itself.
//
// Shapes are cached for the life of the process, keyed by the source type,
// the accessor surface and the set of extra names. Extra values play no part
// in the type: two extensions of same-typed sources with the same extra names
// share one reflect.Type, whatever values they carry.
package shape

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"property-extender/internal/accessor"
	"property-extender/internal/naming"
	"property-extender/options"
	"property-extender/property"
)

// ErrFieldMismatch is returned when a resolved value cannot be stored in
// its synthesized field.
var ErrFieldMismatch = errors.New("value does not fit the synthesized field")

// Field describes one synthesized struct field.
type Field struct {
	// Property is the property name, e.g. "middleName".
	Property string
	// GoName is the struct field name, e.g. "MiddleName".
	GoName string
	Type   reflect.Type
	// Extra is true for fields backed by an extra property.
	Extra bool
	// Override is true for extras that shadow a source property.
	Override bool
}

// Shape is a synthesized struct type and the properties behind its fields.
type Shape struct {
	Type   reflect.Type
	fields []Field
}

// Fields returns the fields in struct order.
func (s *Shape) Fields() []Field {
	return slices.Clone(s.fields)
}

// ResolveFunc reads one property by name.
type ResolveFunc func(name string) (value any, ok bool, err error)

// Build returns a pointer to a new value of the shape's type with every
// field read through resolve. Unknown and nil values leave the zero value.
func (s *Shape) Build(resolve ResolveFunc) (any, error) {
	ptr := reflect.New(s.Type)
	v := ptr.Elem()

	for i, f := range s.fields {
		value, ok, err := resolve(f.Property)
		if err != nil {
			return nil, err
		}

		if !ok || value == nil {
			continue
		}

		src := reflect.ValueOf(value)
		if !assign(v.Field(i), src) {
			return nil, fmt.Errorf("%w: property %q: %s into %s", ErrFieldMismatch, f.Property, src.Type(), f.Type)
		}
	}

	return ptr.Interface(), nil
}

type shapeKey struct {
	source  reflect.Type
	surface options.SurfaceEnum
	names   string
}

var shapes sync.Map // map[shapeKey]*Shape

// For returns the shape of a source table extended by extras.
func For(table *accessor.Table, extras *property.Set) *Shape {
	key := shapeKey{
		source:  table.Type,
		surface: table.Surface,
		names:   nameKey(extras),
	}

	if cached, ok := shapes.Load(key); ok {
		return cached.(*Shape)
	}

	actual, _ := shapes.LoadOrStore(key, synthesize(table, extras))

	return actual.(*Shape)
}

func synthesize(table *accessor.Table, extras *property.Set) *Shape {
	s := &Shape{}
	taken := make(map[string]bool)

	for _, a := range table.Accessors() {
		f := Field{
			Property: a.Name,
			GoName:   uniqueGoName(a.Name, taken),
			Type:     a.Type,
		}

		if extras.Has(a.Name) {
			f.Type = anyType
			f.Extra = true
			f.Override = true
		}

		s.fields = append(s.fields, f)
	}

	for _, name := range extras.Names() {
		if table.Has(name) {
			continue
		}

		s.fields = append(s.fields, Field{
			Property: name,
			GoName:   uniqueGoName(name, taken),
			Type:     anyType,
			Extra:    true,
		})
	}

	structFields := make([]reflect.StructField, len(s.fields))
	for i, f := range s.fields {
		tag := fmt.Sprintf("json:%q yaml:%q", f.Property, f.Property)
		if f.Extra {
			tag += ` extend:"extra"`
		}

		structFields[i] = reflect.StructField{
			Name: f.GoName,
			Type: f.Type,
			Tag:  reflect.StructTag(tag),
		}
	}

	s.Type = reflect.StructOf(structFields)

	return s
}

var anyType = reflect.TypeFor[any]()

// nameKey is the order-independent identity of an extra name set.
func nameKey(extras *property.Set) string {
	names := extras.Names()
	slices.Sort(names)

	return strings.Join(names, "\x00")
}

func uniqueGoName(property string, taken map[string]bool) string {
	base := naming.GoName(property)
	name := base

	for i := 2; taken[name]; i++ {
		name = base + strconv.Itoa(i)
	}

	taken[name] = true

	return name
}

// assign stores src into dst when its type allows it. Values are never
// converted.
func assign(dst, src reflect.Value) bool {
	if !src.Type().AssignableTo(dst.Type()) {
		return false
	}

	dst.Set(src)

	return true
}
