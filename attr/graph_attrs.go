// SPDX-License-Identifier: MIT

package attr

import (
	"fmt"
	"slices"
)

// GraphAttrs holds the graph-level attributes: name to a single value.
type GraphAttrs struct {
	names  []string
	values map[string]any
}

// NewGraphAttrs returns an empty set.
func NewGraphAttrs() *GraphAttrs {
	return &GraphAttrs{values: make(map[string]any)}
}

// Len returns the number of attributes.
func (g *GraphAttrs) Len() int { return len(g.names) }

// Names returns the attribute names in insertion order.
func (g *GraphAttrs) Names() []string { return slices.Clone(g.names) }

// Has reports whether name is defined.
func (g *GraphAttrs) Has(name string) bool {
	_, ok := g.values[name]
	return ok
}

// Get returns the value of name.
func (g *GraphAttrs) Get(name string) (any, error) {
	v, ok := g.values[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNoSuchAttribute)
	}
	return v, nil
}

// Type returns the type tag of the value stored under name.
func (g *GraphAttrs) Type(name string) (Type, bool) {
	v, ok := g.values[name]
	if !ok {
		return Unspecified, false
	}
	return TypeOf(v), true
}

// Set defines or overwrites name.
func (g *GraphAttrs) Set(name string, v any) {
	if _, ok := g.values[name]; !ok {
		g.names = append(g.names, name)
	}
	g.values[name] = v
}

// Delete removes name.
func (g *GraphAttrs) Delete(name string) error {
	if _, ok := g.values[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNoSuchAttribute)
	}
	delete(g.values, name)
	g.names = slices.DeleteFunc(g.names, func(n string) bool { return n == name })
	return nil
}

// Clone returns a copy. Values themselves are shared.
func (g *GraphAttrs) Clone() *GraphAttrs {
	c := &GraphAttrs{names: slices.Clone(g.names), values: make(map[string]any, len(g.values))}
	for k, v := range g.values {
		c.values[k] = v
	}
	return c
}
