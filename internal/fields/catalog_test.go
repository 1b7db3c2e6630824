package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpslkit/internal/diagnostic"
	"rpslkit/internal/schema"
)

func TestCatalog(t *testing.T) {
	c := NewCatalog()
	assert.False(t, c.Has("custom"))
	assert.Nil(t, c.Get("custom"))

	shout := schema.CleanerFunc(func(value string, _ *diagnostic.Messages) (string, bool) {
		return value + "!", true
	})
	c.Add("custom", shout)

	require.True(t, c.Has("custom"))

	var msgs diagnostic.Messages
	got, ok := c.Get("custom").Clean("x", &msgs)

	assert.True(t, ok)
	assert.Equal(t, "x!", got)
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []string{
		"as-block",
		"as-number",
		"as-set-name",
		"dns-name",
		"email",
		"filter-set-name",
		"ipv4-prefix",
		"ipv4-range",
		"ipv6-prefix",
		"ipv6-range",
		"key-cert-name",
		"name",
		"peering-set-name",
		"route-set-name",
		"rtr-set-name",
		"source",
		"text",
	}, c.Names())

	var msgs diagnostic.Messages
	got, ok := c.Get("route-set-name").Clean("AS1:RS-X", &msgs)

	assert.True(t, ok)
	assert.Equal(t, "AS1:RS-X", got)
}
