package fields

import (
	"slices"

	"rpslkit/internal/schema"
)

// Catalog resolves cleaners by the type names used in schema files.
type Catalog struct {
	cleaners map[string]schema.Cleaner
}

// NewCatalog creates a new empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		cleaners: make(map[string]schema.Cleaner),
	}
}

// DefaultCatalog returns a catalog holding every cleaner of this package.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Add("text", Text)
	c.Add("name", Name)
	c.Add("source", Source)
	c.Add("email", Email)
	c.Add("dns-name", DNSName)
	c.Add("key-cert-name", KeyCertName)
	c.Add("as-number", ASNumber)
	c.Add("as-block", ASBlock)
	c.Add("ipv4-prefix", IPv4Prefix)
	c.Add("ipv6-prefix", IPv6Prefix)
	c.Add("ipv4-range", IPv4Range)
	c.Add("ipv6-range", IPv6Range)
	c.Add("as-set-name", SetName("AS-"))
	c.Add("route-set-name", SetName("RS-"))
	c.Add("rtr-set-name", SetName("RTRS-"))
	c.Add("filter-set-name", SetName("FLTR-"))
	c.Add("peering-set-name", SetName("PRNG-"))

	return c
}

// Add adds a cleaner under name, replacing any previous one.
func (c *Catalog) Add(name string, cleaner schema.Cleaner) {
	c.cleaners[name] = cleaner
}

// Get returns the cleaner registered under name, or nil if not found.
func (c *Catalog) Get(name string) schema.Cleaner {
	return c.cleaners[name]
}

// Has returns true if a cleaner with the given name exists.
func (c *Catalog) Has(name string) bool {
	_, exists := c.cleaners[name]
	return exists
}

// Names returns all cleaner names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.cleaners))
	for name := range c.cleaners {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
