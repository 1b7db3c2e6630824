package schema

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"rpslkit/internal/match"
)

var (
	// ErrNoFields is returned when compiling an empty declaration list.
	ErrNoFields = errors.New("schema has no fields")
	// ErrDuplicateField is returned when a field name is declared twice.
	ErrDuplicateField = errors.New("duplicate field")
	// ErrInvalidFieldName is returned for names outside [a-z0-9_-].
	ErrInvalidFieldName = errors.New("invalid field name")
)

// AttributeNamePattern matches a well-formed attribute name.
var AttributeNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ObjectSchema is the compiled, read-only description of one object class.
type ObjectSchema struct {
	class    string
	fields   map[string]FieldSpec
	allowed  []string
	required []string
	multiple []string
	pk       []string
	lookup   []string

	allowedSet  map[string]struct{}
	multipleSet map[string]struct{}

	hook Hook
}

// Option configures Compile.
type Option func(*ObjectSchema)

// WithHook attaches the class-specific validation hook.
func WithHook(h Hook) Option {
	return func(s *ObjectSchema) {
		if h != nil {
			s.hook = h
		}
	}
}

// Compile derives the per-class metadata from an ordered field declaration
// list. The first field names the class.
func Compile(fields []FieldSpec, opts ...Option) (*ObjectSchema, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	s := &ObjectSchema{
		class:       fields[0].Name,
		fields:      make(map[string]FieldSpec, len(fields)),
		allowedSet:  make(map[string]struct{}, len(fields)),
		multipleSet: make(map[string]struct{}),
		hook:        NopHook{},
	}

	for _, f := range fields {
		if !AttributeNamePattern.MatchString(f.Name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldName, f.Name)
		}

		if _, dup := s.fields[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q in class %s", ErrDuplicateField, f.Name, s.class)
		}

		s.fields[f.Name] = f
		s.allowed = append(s.allowed, f.Name)
		s.allowedSet[f.Name] = struct{}{}

		if !f.Optional {
			s.required = append(s.required, f.Name)
		}

		if f.Multiple {
			s.multiple = append(s.multiple, f.Name)
			s.multipleSet[f.Name] = struct{}{}
		}

		if f.PrimaryKey {
			s.pk = append(s.pk, f.Name)
		}

		if f.LookupKey {
			s.lookup = append(s.lookup, f.Name)
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// MustCompile is like Compile but panics on error. Intended for package-level
// schema declarations.
func MustCompile(fields []FieldSpec, opts ...Option) *ObjectSchema {
	s, err := Compile(fields, opts...)
	if err != nil {
		panic(fmt.Sprintf("schema: %v", err))
	}

	return s
}

// Class returns the class name, i.e. the first declared field.
func (s *ObjectSchema) Class() string { return s.class }

// Field returns the declaration of the named attribute.
func (s *ObjectSchema) Field(name string) (FieldSpec, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// PKFields returns the primary key fields in declaration order.
func (s *ObjectSchema) PKFields() []string { return slices.Clone(s.pk) }

// LookupFields returns the lookup key fields in declaration order.
func (s *ObjectSchema) LookupFields() []string { return slices.Clone(s.lookup) }

// AttrsAllowed returns every declared attribute in declaration order.
func (s *ObjectSchema) AttrsAllowed() []string { return slices.Clone(s.allowed) }

// AttrsRequired returns the mandatory attributes in declaration order.
func (s *ObjectSchema) AttrsRequired() []string { return slices.Clone(s.required) }

// AttrsMultiple returns the attributes allowed more than once.
func (s *ObjectSchema) AttrsMultiple() []string { return slices.Clone(s.multiple) }

// IsAllowed reports whether name is a declared attribute.
func (s *ObjectSchema) IsAllowed(name string) bool {
	_, ok := s.allowedSet[name]
	return ok
}

// IsMultiple reports whether name may occur more than once.
func (s *ObjectSchema) IsMultiple(name string) bool {
	_, ok := s.multipleSet[name]
	return ok
}

// Suggest returns the allowed attribute closest to a name the class does
// not allow, if one is close enough to be a likely typo.
func (s *ObjectSchema) Suggest(name string) (string, bool) {
	return match.Closest(name, s.allowed)
}

// Hook returns the class-specific hook, NopHook when none was attached.
func (s *ObjectSchema) Hook() Hook { return s.hook }
