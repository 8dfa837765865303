// Package accessor builds the readable surface of a Go type: the table of
// property names a source exposes and how to read each of them.
//
// Tables are built once per (type, surface) pair and cached for the life of
// the process.
package accessor

import (
	"reflect"
	"strings"
	"sync"

	"property-extender/internal/naming"
	"property-extender/options"
)

// Accessor reads one named property from a source value.
type Accessor struct {
	// Name is the property name, e.g. "name".
	Name string
	// GoName is the struct field or method name, e.g. "Name" or "GetName".
	GoName string
	Kind   Kind
	// Type is the value type. The error result of a method is not included.
	Type reflect.Type

	index  []int
	hasErr bool
}

// Read returns the accessor's value on source.
// ok is false when the value cannot be reached: a nil pointer on the way to
// the field, or a nil pointer receiver. A method's error result is returned
// as is.
func (a *Accessor) Read(source reflect.Value) (value reflect.Value, ok bool, err error) {
	if a.Kind == KindField {
		v := source
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false, nil
			}

			v = v.Elem()
		}

		f, ferr := v.FieldByIndexErr(a.index)
		if ferr != nil || !f.CanInterface() {
			return reflect.Value{}, false, nil
		}

		return f, true, nil
	}

	if source.Kind() == reflect.Pointer && source.IsNil() {
		return reflect.Value{}, false, nil
	}

	m := source.MethodByName(a.GoName)
	if !m.IsValid() {
		return reflect.Value{}, false, nil
	}

	out := m.Call(nil)
	if a.hasErr && !out[1].IsNil() {
		return reflect.Value{}, false, out[1].Interface().(error)
	}

	return out[0], true, nil
}

// Table is the ordered accessor surface of one type.
type Table struct {
	Type    reflect.Type
	Surface options.SurfaceEnum

	accessors []*Accessor
	byName    map[string]*Accessor
}

// Lookup returns the accessor for a property name.
func (t *Table) Lookup(name string) (*Accessor, bool) {
	a, ok := t.byName[name]
	return a, ok
}

// Has returns true if the table exposes the property name.
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Len returns the number of exposed properties.
func (t *Table) Len() int {
	return len(t.accessors)
}

// Names returns the property names in table order: fields in declaration
// order, then methods in lexicographic order.
func (t *Table) Names() []string {
	names := make([]string, len(t.accessors))
	for i, a := range t.accessors {
		names[i] = a.Name
	}

	return names
}

// Accessors returns the accessors in table order.
func (t *Table) Accessors() []*Accessor {
	return append([]*Accessor(nil), t.accessors...)
}

type tableKey struct {
	t       reflect.Type
	surface options.SurfaceEnum
}

var tables sync.Map // map[tableKey]*Table

// For returns the accessor table of t for the given surface.
func For(t reflect.Type, surface options.SurfaceEnum) *Table {
	key := tableKey{t: t, surface: surface}
	if cached, ok := tables.Load(key); ok {
		return cached.(*Table)
	}

	actual, _ := tables.LoadOrStore(key, build(t, surface))

	return actual.(*Table)
}

func build(t reflect.Type, surface options.SurfaceEnum) *Table {
	tbl := &Table{
		Type:    t,
		Surface: surface,
		byName:  make(map[string]*Accessor),
	}

	if surface.Has(options.SurfaceFields) {
		addFields(tbl, t, surface.Has(options.SurfaceJSONTags))
	}

	if surface.Has(options.SurfaceGetters) {
		addGetters(tbl, t)
	}

	if surface.Has(options.SurfaceMethods) {
		addMethods(tbl, t)
	}

	return tbl
}

func addFields(tbl *Table, t reflect.Type, useJSON bool) {
	st := t
	for st.Kind() == reflect.Pointer {
		st = st.Elem()
	}

	if st.Kind() != reflect.Struct {
		return
	}

	for _, f := range reflect.VisibleFields(st) {
		if !f.IsExported() || (f.Anonymous && isStruct(f.Type)) {
			continue
		}

		name := naming.PropertyName(f.Name)
		if useJSON {
			tag, hidden := jsonTagName(f)
			if hidden {
				continue
			}

			if tag != "" {
				name = tag
			}
		}

		if tbl.Has(name) {
			continue
		}

		tbl.add(&Accessor{
			Name:   name,
			GoName: f.Name,
			Kind:   KindField,
			Type:   f.Type,
			index:  f.Index,
		})
	}
}

// addGetters adds GetX() and IsX() methods. A getter replaces a field of the
// same property name in place.
func addGetters(tbl *Table, t reflect.Type) {
	for i := range t.NumMethod() {
		m := t.Method(i)

		rest, prefix, ok := naming.TrimAccessorPrefix(m.Name)
		if !ok {
			continue
		}

		valueType, hasErr, ok := readerSignature(m.Type)
		if !ok || (prefix == naming.IsPrefix && valueType.Kind() != reflect.Bool) {
			continue
		}

		a := &Accessor{
			Name:   naming.PropertyName(rest),
			GoName: m.Name,
			Kind:   KindGetter,
			Type:   valueType,
			hasErr: hasErr,
		}

		existing, exists := tbl.byName[a.Name]
		switch {
		case !exists:
			tbl.add(a)
		case existing.Kind == KindField:
			tbl.replace(existing, a)
		}
	}
}

func addMethods(tbl *Table, t reflect.Type) {
	for i := range t.NumMethod() {
		m := t.Method(i)
		if excludedMethods[m.Name] {
			continue
		}

		if _, _, isGetter := naming.TrimAccessorPrefix(m.Name); isGetter && tbl.Surface.Has(options.SurfaceGetters) {
			continue
		}

		valueType, hasErr, ok := readerSignature(m.Type)
		if !ok {
			continue
		}

		name := naming.PropertyName(m.Name)
		if tbl.Has(name) {
			continue
		}

		tbl.add(&Accessor{
			Name:   name,
			GoName: m.Name,
			Kind:   KindMethod,
			Type:   valueType,
			hasErr: hasErr,
		})
	}
}

func (t *Table) add(a *Accessor) {
	t.accessors = append(t.accessors, a)
	t.byName[a.Name] = a
}

func (t *Table) replace(old, a *Accessor) {
	for i := range t.accessors {
		if t.accessors[i] == old {
			t.accessors[i] = a
		}
	}

	t.byName[a.Name] = a
}

// excludedMethods are protocol methods that never describe a property.
var excludedMethods = map[string]bool{
	"String":        true,
	"GoString":      true,
	"Error":         true,
	"Hash":          true,
	"MarshalJSON":   true,
	"MarshalText":   true,
	"MarshalYAML":   true,
	"MarshalBinary": true,
}

// readerSignature checks a method type (receiver included) for the shapes
//   - func() V
//   - func() (V, error)
//
// A lone error result is an action, not a value, and is rejected.
func readerSignature(mt reflect.Type) (valueType reflect.Type, hasErr, ok bool) {
	if mt.NumIn() != 1 {
		return nil, false, false
	}

	switch mt.NumOut() {
	case 1:
		if isError(mt.Out(0)) {
			return nil, false, false
		}

		return mt.Out(0), false, true
	case 2:
		if !isError(mt.Out(1)) {
			return nil, false, false
		}

		return mt.Out(0), true, true
	default:
		return nil, false, false
	}
}

var errorType = reflect.TypeFor[error]()

func isError(t reflect.Type) bool {
	return t != nil && t.Implements(errorType)
}

func isStruct(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}

// jsonTagName returns the name part of a field's json tag.
func jsonTagName(f reflect.StructField) (name string, hidden bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", true
	}

	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}

	return tag, false
}
