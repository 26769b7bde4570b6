// Package catalog defines the fixed set of guides the server exposes.
// The catalog is built once at startup and is read-only afterwards.
package catalog

import "fmt"

// Descriptor identifies one guide in the catalog.
type Descriptor struct {
	// Name is the tool name and dispatch key. Unique within the catalog.
	Name string
	// Title is a human-readable label shown in client UIs.
	Title string
	// Description tells a calling agent when to invoke this guide.
	Description string
	// Path is the content reference resolved by the active source.
	// The catalog passes it through without interpreting it.
	Path string
}

// Catalog is an immutable, ordered collection of descriptors.
type Catalog struct {
	entries []Descriptor
	byName  map[string]Descriptor
}

// New builds a catalog from the given descriptors. It fails on an empty or
// duplicate name so a broken catalog is rejected before any tool is
// registered with a transport.
func New(entries []Descriptor) (*Catalog, error) {
	byName := make(map[string]Descriptor, len(entries))
	for _, d := range entries {
		if d.Name == "" {
			return nil, fmt.Errorf("guide with path %q has empty name", d.Path)
		}
		if _, exists := byName[d.Name]; exists {
			return nil, fmt.Errorf("duplicate guide name %q", d.Name)
		}
		byName[d.Name] = d
	}
	c := &Catalog{
		entries: make([]Descriptor, len(entries)),
		byName:  byName,
	}
	copy(c.entries, entries)
	return c, nil
}

// All returns the descriptors in declaration order.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get looks up a descriptor by name.
func (c *Catalog) Get(name string) (Descriptor, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Names returns all guide names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, d := range c.entries {
		names[i] = d.Name
	}
	return names
}

// Len reports the number of guides.
func (c *Catalog) Len() int {
	return len(c.entries)
}
