package schemafile

import (
	_ "embed"
	"sync"

	"rpslkit/internal/fields"
	"rpslkit/internal/schema"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin returns a freshly parsed copy of the built-in declarations.
func Builtin() (*File, error) {
	return Parse(builtinYAML)
}

var defaultRegistry = sync.OnceValues(func() (*schema.Registry, error) {
	f, err := Builtin()
	if err != nil {
		return nil, err
	}

	return BuildRegistry(fields.DefaultCatalog(), f)
})

// Default returns the process-wide registry of built-in classes. It is
// compiled on first use and shared read-only afterwards.
func Default() (*schema.Registry, error) {
	return defaultRegistry()
}
