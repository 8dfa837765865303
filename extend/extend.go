package extend

import (
	"fmt"
	"reflect"

	"property-extender/internal/accessor"
	"property-extender/internal/common"
	"property-extender/internal/resolve"
	"property-extender/internal/shape"
	"property-extender/options"
	"property-extender/property"
)

// Extend extends source with props using the default surface.
func Extend[T any](source T, props ...property.Property) (*Extended[T], error) {
	set, err := property.Normalize(props...)
	if err != nil {
		return nil, err
	}

	return ExtendSet(source, set, options.SurfaceDefault)
}

// ExtendFrom extends source with a name to payload map.
func ExtendFrom[T any](source T, props map[string]any) (*Extended[T], error) {
	if len(props) == 0 {
		return nil, fmt.Errorf("%w: the properties are required", ErrInvalidArgument)
	}

	set, err := property.FromMap(props)
	if err != nil {
		return nil, err
	}

	return ExtendSet(source, set, options.SurfaceDefault)
}

// ExtendAll extends each source with the same props. The result has one
// element per source, in order. Nothing is returned unless every source is
// valid.
func ExtendAll[T any](sources []T, props ...property.Property) ([]*Extended[T], error) {
	set, err := property.Normalize(props...)
	if err != nil {
		return nil, err
	}

	return ExtendAllSet(sources, set, options.SurfaceDefault)
}

// ExtendAllFrom is ExtendAll for a name to payload map.
func ExtendAllFrom[T any](sources []T, props map[string]any) ([]*Extended[T], error) {
	if len(props) == 0 {
		return nil, fmt.Errorf("%w: the properties are required", ErrInvalidArgument)
	}

	set, err := property.FromMap(props)
	if err != nil {
		return nil, err
	}

	return ExtendAllSet(sources, set, options.SurfaceDefault)
}

// ExtendAllSet extends each source with set.
func ExtendAllSet[T any](sources []T, set *property.Set, surface options.SurfaceEnum) ([]*Extended[T], error) {
	if sources == nil {
		return nil, fmt.Errorf("%w: the sources are required", ErrInvalidArgument)
	}

	if set.IsEmpty() {
		return nil, fmt.Errorf("%w: the properties are required", ErrInvalidArgument)
	}

	for i, source := range sources {
		if err := validate(source, set); err != nil {
			return nil, fmt.Errorf("sources[%d]: %w", i, err)
		}
	}

	result := make([]*Extended[T], 0, len(sources))
	for _, source := range sources {
		result = append(result, newExtended(source, set, surface))
	}

	return result, nil
}

// ExtendSet extends source with set on the given surface.
func ExtendSet[T any](source T, set *property.Set, surface options.SurfaceEnum) (*Extended[T], error) {
	if err := validate(source, set); err != nil {
		return nil, err
	}

	return newExtended(source, set, surface), nil
}

func validate(source any, set *property.Set) error {
	if common.IsNil(source) {
		return fmt.Errorf("%w: the source object is required", ErrInvalidArgument)
	}

	if set.IsEmpty() {
		return fmt.Errorf("%w: the properties are required", ErrInvalidArgument)
	}

	st := reflect.TypeOf(source)
	for _, p := range set.Properties() {
		if !p.Accepts(st) {
			return fmt.Errorf("%w: property %q cannot be derived from %s", ErrInvalidArgument, p.Name(), st)
		}
	}

	return nil
}

func newExtended[T any](source T, set *property.Set, surface options.SurfaceEnum) *Extended[T] {
	sv := reflect.ValueOf(source)
	table := accessor.For(sv.Type(), surface)

	return &Extended[T]{
		source:   source,
		resolver: resolve.New(sv, set, table),
		shape:    shape.For(table, set),
	}
}
