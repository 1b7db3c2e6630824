package rpsl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rpslkit/internal/diagnostic"
	"rpslkit/internal/schema"
)

var upperCleaner = schema.CleanerFunc(func(value string, _ *diagnostic.Messages) (string, bool) {
	return strings.ToUpper(value), true
})

var rejectBad = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	if strings.Contains(value, "bad") {
		msgs.Errorf("Invalid value: %s", value)
		return "", false
	}

	return value, true
})

// testSchema declares a (required, primary key), b (optional, multiple)
// and c (optional, upper-cased when cleaned).
func testSchema(t *testing.T, opts ...schema.Option) *schema.ObjectSchema {
	t.Helper()

	s, err := schema.Compile([]schema.FieldSpec{
		{Name: "a", PrimaryKey: true, Cleaner: rejectBad},
		{Name: "b", Optional: true, Multiple: true, Cleaner: rejectBad},
		{Name: "c", Optional: true, Cleaner: upperCleaner},
	}, opts...)
	require.NoError(t, err)

	return s
}

func kinds(ds []diagnostic.Diagnostic) []diagnostic.Kind {
	out := make([]diagnostic.Kind, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Kind)
	}

	return out
}
