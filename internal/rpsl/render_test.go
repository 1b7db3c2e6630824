package rpsl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	text := "a: x\n" +
		"b:\n" +
		"b: one\n" +
		"+two\n" +
		"\tthree\n" +
		" four\n" +
		"very-long-attribute-name: value\n"

	obj := Parse(text, testSchema(t), false)

	want := "a:              x\n" +
		"b:\n" +
		"b:              one\n" +
		"+               two\n" +
		"\t               three\n" +
		"                four\n" +
		"very-long-attribute-name:value\n"
	assert.Equal(t, want, obj.Render())
}

func TestRender_EmptyFirstLineKeepsPadding(t *testing.T) {
	obj := Parse("a: x\nb:\n+ continued\n", testSchema(t), false)

	assert.Equal(t, "a:              x\nb:              \n+               continued\n", obj.Render())
}

func TestRender_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"single lines", "a: x\nb: y\nc: Z\n"},
		{"all markers", "a: x\nb: 1\n+2\n 3\n\t4\n"},
		{"empty continuation", "a: x\nb: 1\n+\n+ 2\n"},
		{"empty values", "a:\nb:\nb:\n"},
		{"comments kept", "a: x # comment\nb: 1 # one\n+ 2 # two\n"},
		{"unknown attributes", "a: x\nzz-top: la grange\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Parse(tt.text, testSchema(t), true)
			rendered := first.Render()
			second := Parse(rendered, testSchema(t), true)

			if diff := cmp.Diff(first.Lines(), second.Lines(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("re-parse mismatch (-first +second):\n%s", diff)
			}

			assert.Equal(t, rendered, second.Render(), "rendering is not idempotent")
		})
	}
}

func TestRender_CanonicalTextIsStable(t *testing.T) {
	canonical := "a:              x\n" +
		"b:              1\n" +
		"+               2\n" +
		"\t               3\n"

	obj := Parse(canonical, testSchema(t), true)

	assert.Equal(t, canonical, obj.Render())
}
