package view

import (
	"fmt"
	"reflect"

	"property-extender/internal/accessor"
	"property-extender/internal/common"
	"property-extender/internal/resolve"
	"property-extender/options"
	"property-extender/property"
)

// ErrInvalidArgument is returned for a missing source.
var ErrInvalidArgument = property.ErrInvalidArgument

// Map returns a view of source merged with props. props may be empty.
func Map[T any](source T, props ...property.Property) (*View, error) {
	set, err := property.NewSet(props...)
	if err != nil {
		return nil, err
	}

	return New(source, set, options.SurfaceDefault)
}

// MapFrom returns a view of source merged with a name to payload map.
func MapFrom[T any](source T, props map[string]any) (*View, error) {
	set, err := property.FromMap(props)
	if err != nil {
		return nil, err
	}

	return New(source, set, options.SurfaceDefault)
}

// MapAll returns one view per source, in order.
func MapAll[T any](sources []T, props ...property.Property) ([]*View, error) {
	set, err := property.NewSet(props...)
	if err != nil {
		return nil, err
	}

	return NewAll(sources, set, options.SurfaceDefault)
}

// MapAllFrom is MapAll for a name to payload map.
func MapAllFrom[T any](sources []T, props map[string]any) ([]*View, error) {
	set, err := property.FromMap(props)
	if err != nil {
		return nil, err
	}

	return NewAll(sources, set, options.SurfaceDefault)
}

// NewAll returns one view per source, in order. Nothing is returned unless
// every source is valid.
func NewAll[T any](sources []T, set *property.Set, surface options.SurfaceEnum) ([]*View, error) {
	if sources == nil {
		return nil, fmt.Errorf("%w: the sources are required", ErrInvalidArgument)
	}

	for i, source := range sources {
		if err := validate(source, set); err != nil {
			return nil, fmt.Errorf("sources[%d]: %w", i, err)
		}
	}

	views := make([]*View, 0, len(sources))
	for _, source := range sources {
		views = append(views, newView(source, set, surface))
	}

	return views, nil
}

// New returns a view of source merged with set on the given surface.
// A nil set is treated as empty.
func New[T any](source T, set *property.Set, surface options.SurfaceEnum) (*View, error) {
	if err := validate(source, set); err != nil {
		return nil, err
	}

	return newView(source, set, surface), nil
}

func validate(source any, set *property.Set) error {
	if common.IsNil(source) {
		return fmt.Errorf("%w: the source object is required", ErrInvalidArgument)
	}

	st := reflect.TypeOf(source)
	for _, p := range set.Properties() {
		if !p.Accepts(st) {
			return fmt.Errorf("%w: property %q cannot be derived from %s", ErrInvalidArgument, p.Name(), st)
		}
	}

	return nil
}

func newView(source any, set *property.Set, surface options.SurfaceEnum) *View {
	if set == nil {
		set, _ = property.NewSet()
	}

	sv := reflect.ValueOf(source)

	return &View{resolver: resolve.New(sv, set, accessor.For(sv.Type(), surface))}
}

// View is a read-only map of property names to values.
// It is safe for concurrent reads.
type View struct {
	resolver *resolve.Resolver
}

// Get returns the value for key, or nil for an unknown key.
func (v *View) Get(key string) (any, error) {
	value, _, err := v.resolver.Resolve(key)
	return value, err
}

// Lookup returns the value for key and whether the key resolved to a value.
func (v *View) Lookup(key string) (value any, ok bool, err error) {
	return v.resolver.Resolve(key)
}

// Contains returns true if key is one of the view's keys.
func (v *View) Contains(key string) bool {
	return v.resolver.Has(key)
}

// Keys returns the keys in view order.
func (v *View) Keys() []string {
	return v.resolver.Names()
}

// Len returns the number of keys.
func (v *View) Len() int {
	return len(v.resolver.Names())
}

// Put accepts a write and ignores it.
func (v *View) Put(string, any) {}

// Delete accepts a removal and ignores it.
func (v *View) Delete(string) {}

// Range calls fn for each key and value in view order until fn returns
// false. The first read error stops the iteration and is returned.
func (v *View) Range(fn func(key string, value any) bool) error {
	for _, key := range v.resolver.Names() {
		value, _, err := v.resolver.Resolve(key)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}

		if !fn(key, value) {
			return nil
		}
	}

	return nil
}

// ToMap returns a snapshot of the view as a plain map.
func (v *View) ToMap() (map[string]any, error) {
	m := make(map[string]any, v.Len())

	err := v.Range(func(key string, value any) bool {
		m[key] = value
		return true
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}
