package schemafile

import (
	"errors"
	"fmt"
	"slices"

	"rpslkit/internal/fields"
	"rpslkit/internal/objects"
	"rpslkit/internal/schema"
)

// Build compiles every class of f, resolving field types through catalog.
// All problems are reported together.
func Build(f *File, catalog *fields.Catalog) ([]*schema.ObjectSchema, error) {
	var (
		errs    []error
		schemas []*schema.ObjectSchema
	)

	for i := range f.Classes {
		s, err := buildClass(&f.Classes[i], catalog)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		schemas = append(schemas, s)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return schemas, nil
}

// BuildRegistry compiles the classes of all files into one registry. A class
// declared in more than one file is an error.
func BuildRegistry(catalog *fields.Catalog, files ...*File) (*schema.Registry, error) {
	reg, _ := schema.NewRegistry()

	for _, f := range files {
		schemas, err := Build(f, catalog)
		if err != nil {
			return nil, err
		}

		for _, s := range schemas {
			if err := reg.Register(s); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

func buildClass(c *ClassDecl, catalog *fields.Catalog) (*schema.ObjectSchema, error) {
	if len(c.Fields) == 0 {
		return nil, fmt.Errorf("class %q: %w", c.Class, schema.ErrNoFields)
	}

	if c.Fields[0].Name != c.Class {
		return nil, fmt.Errorf("class %q: first field is %q, expected the class name", c.Class, c.Fields[0].Name)
	}

	hook, ok := objects.Lookup(c.Hook)
	if !ok {
		return nil, fmt.Errorf("class %q: unknown hook %q", c.Class, c.Hook)
	}

	specs := make([]schema.FieldSpec, 0, len(c.Fields))

	for _, fd := range c.Fields {
		spec, err := buildField(fd, catalog)
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", c.Class, err)
		}

		specs = append(specs, spec)
	}

	s, err := schema.Compile(specs, schema.WithHook(hook))
	if err != nil {
		return nil, fmt.Errorf("class %q: %w", c.Class, err)
	}

	return s, nil
}

func buildField(fd FieldDecl, catalog *fields.Catalog) (schema.FieldSpec, error) {
	for _, flag := range fd.Flags {
		if !slices.Contains(knownFlags, flag) {
			return schema.FieldSpec{}, fmt.Errorf("field %q: unknown flag %q", fd.Name, flag)
		}
	}

	cleaner := catalog.Get(fd.Type)
	if cleaner == nil {
		return schema.FieldSpec{}, fmt.Errorf("field %q: unknown type %q", fd.Name, fd.Type)
	}

	if fd.List {
		cleaner = fields.List(cleaner)
	}

	return schema.FieldSpec{
		Name:       fd.Name,
		PrimaryKey: fd.Flags.Contains(FlagPrimaryKey),
		LookupKey:  fd.Flags.Contains(FlagLookupKey),
		Optional:   fd.Flags.Contains(FlagOptional),
		Multiple:   fd.Flags.Contains(FlagMultiple),
		Cleaner:    cleaner,
	}, nil
}
