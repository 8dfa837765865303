// Package resolve implements the read policy shared by extended values and
// map views.
//
// A property name is resolved in this order:
//  1. extras: a plain value is returned as is, a derivation is invoked with
//     the original source;
//  2. the source's own accessor of that name;
//  3. nothing: the read succeeds with a nil value.
//
// Writes and identity operations never reach the resolver.
package resolve

import (
	"reflect"

	"property-extender/internal/accessor"
	"property-extender/property"
)

// Resolver answers property reads for one (source, extras) pair.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	source reflect.Value
	extras *property.Set
	table  *accessor.Table
	names  []string
}

// New creates a Resolver. The merged name list is computed once: source
// names in table order, then extras the source does not expose, in set
// order.
func New(source reflect.Value, extras *property.Set, table *accessor.Table) *Resolver {
	names := table.Names()
	for _, name := range extras.Names() {
		if !table.Has(name) {
			names = append(names, name)
		}
	}

	return &Resolver{
		source: source,
		extras: extras,
		table:  table,
		names:  names,
	}
}

// Resolve returns the value of a property. ok is false when neither the
// extras nor the source know the name, or when the source value cannot be
// reached. Derivation and getter errors are returned unchanged.
func (r *Resolver) Resolve(name string) (value any, ok bool, err error) {
	if p, found := r.extras.Lookup(name); found {
		value, err = p.Resolve(r.source.Interface())
		if err != nil {
			return nil, false, err
		}

		return value, true, nil
	}

	a, found := r.table.Lookup(name)
	if !found {
		return nil, false, nil
	}

	v, ok, err := a.Read(r.source)
	if err != nil || !ok {
		return nil, false, err
	}

	return v.Interface(), true, nil
}

// Has returns true if name is an extra or a source property.
func (r *Resolver) Has(name string) bool {
	return r.extras.Has(name) || r.table.Has(name)
}

// Names returns the merged property names.
func (r *Resolver) Names() []string {
	return append([]string(nil), r.names...)
}

// Source returns the original source value.
func (r *Resolver) Source() reflect.Value {
	return r.source
}

// Extras returns the extra property set.
func (r *Resolver) Extras() *property.Set {
	return r.extras
}

// Table returns the accessor table of the source.
func (r *Resolver) Table() *accessor.Table {
	return r.table
}
