package property

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a YAML property file.
type File struct {
	Version    string       `yaml:"version"`
	Properties []Definition `yaml:"properties"`
}

// Definition is a single property entry of a File.
type Definition struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value,omitempty"`
	Expr  string `yaml:"expr,omitempty"`
}

// LoadFile loads and parses a YAML property file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read property file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property YAML: %w", err)
	}

	if f.Version == "" {
		f.Version = "1"
	}

	return &f, nil
}

// Set builds the property set of the file. Every invalid entry is reported.
func (f *File) Set() (*Set, error) {
	var errs []error

	props := make([]Property, 0, len(f.Properties))

	for i, def := range f.Properties {
		p, err := def.Property()
		if err != nil {
			errs = append(errs, fmt.Errorf("properties[%d]: %w", i, err))
			continue
		}

		props = append(props, p)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return NewSet(props...)
}

// Property converts the definition into a Property.
func (d Definition) Property() (Property, error) {
	switch {
	case d.Expr != "" && d.Value != nil:
		return Property{}, fmt.Errorf("%w: property %q: value and expr are mutually exclusive", ErrInvalidArgument, d.Name)
	case d.Expr != "":
		return Expr(d.Name, d.Expr)
	default:
		return New(d.Name, d.Value)
	}
}
