package schema

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownClass is wrapped by UnknownClassError.
var ErrUnknownClass = errors.New("unknown object class")

// UnknownClassError is returned when no schema is registered for a class.
type UnknownClassError struct {
	Class string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownClass, e.Class)
}

// Unwrap returns ErrUnknownClass.
func (e *UnknownClassError) Unwrap() error {
	return ErrUnknownClass
}

// Registry maps class names to compiled schemas. It is filled once at startup
// and must not be modified while parses are running.
type Registry struct {
	schemas map[string]*ObjectSchema
	order   []string
}

// NewRegistry creates a registry holding the given schemas.
func NewRegistry(schemas ...*ObjectSchema) (*Registry, error) {
	r := &Registry{schemas: make(map[string]*ObjectSchema, len(schemas))}
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds a schema. Registering a class twice is an error.
func (r *Registry) Register(s *ObjectSchema) error {
	if s == nil {
		return errors.New("register nil schema")
	}

	if _, ok := r.schemas[s.class]; ok {
		return fmt.Errorf("class %q already registered", s.class)
	}

	r.schemas[s.class] = s
	r.order = append(r.order, s.class)

	return nil
}

// Lookup returns the schema for a class. The class is matched
// case-insensitively.
func (r *Registry) Lookup(class string) (*ObjectSchema, bool) {
	s, ok := r.schemas[strings.ToLower(strings.TrimSpace(class))]
	return s, ok
}

// Resolve is Lookup returning an *UnknownClassError on a miss.
func (r *Registry) Resolve(class string) (*ObjectSchema, error) {
	s, ok := r.Lookup(class)
	if !ok {
		return nil, &UnknownClassError{Class: class}
	}

	return s, nil
}

// Classes returns the registered class names in registration order.
func (r *Registry) Classes() []string {
	return slices.Clone(r.order)
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	return len(r.order)
}
