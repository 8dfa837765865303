package property

import (
	"fmt"
	"maps"
	"slices"

	"property-extender/internal/common"
)

// Set is an ordered, immutable table of properties keyed by name.
type Set struct {
	names []string
	props map[string]Property
}

// NewSet normalizes props into a Set. A later property overwrites an
// earlier one of the same name and keeps its position. An empty list gives
// an empty set.
func NewSet(props ...Property) (*Set, error) {
	s := &Set{props: make(map[string]Property, len(props))}

	for i, p := range props {
		if p.IsZero() {
			return nil, fmt.Errorf("%w: property #%d is not defined", ErrInvalidArgument, i)
		}

		if _, exists := s.props[p.name]; !exists {
			s.names = append(s.names, p.name)
		}

		s.props[p.name] = p
	}

	return s, nil
}

// Normalize is like NewSet but requires at least one property.
func Normalize(props ...Property) (*Set, error) {
	if common.IsEmpty(props) {
		return nil, fmt.Errorf("%w: the properties are required", ErrInvalidArgument)
	}

	return NewSet(props...)
}

// FromMap builds a Set from a name to payload map. Names are taken in
// sorted order.
func FromMap(m map[string]any) (*Set, error) {
	props := make([]Property, 0, len(m))

	for _, name := range slices.Sorted(maps.Keys(m)) {
		p, err := New(name, m[name])
		if err != nil {
			return nil, err
		}

		props = append(props, p)
	}

	return NewSet(props...)
}

// Len returns the number of properties.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.names)
}

// IsEmpty returns true if the set has no properties.
func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Names returns the property names in set order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}

	return slices.Clone(s.names)
}

// Lookup returns the property with the given name.
func (s *Set) Lookup(name string) (Property, bool) {
	if s == nil {
		return Property{}, false
	}

	p, ok := s.props[name]

	return p, ok
}

// Has returns true if the set defines name.
func (s *Set) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Properties returns the properties in set order.
func (s *Set) Properties() []Property {
	props := make([]Property, 0, s.Len())
	for _, name := range s.Names() {
		props = append(props, s.props[name])
	}

	return props
}
