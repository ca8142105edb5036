// SPDX-License-Identifier: MIT

package attr

import (
	"fmt"
	"slices"
)

// Map holds the vertex or edge attributes of one graph: attribute name to
// a fixed-length ValueList. Every list has the map's common length, and
// names keep their insertion order.
type Map struct {
	length int
	names  []string
	lists  map[string]*ValueList
}

// NewMap returns an empty map whose common length is n.
func NewMap(n int) *Map {
	return &Map{length: n, lists: make(map[string]*ValueList)}
}

// Len returns the common length.
func (m *Map) Len() int { return m.length }

// Names returns the attribute names in insertion order.
func (m *Map) Names() []string { return slices.Clone(m.names) }

// Has reports whether name is defined.
func (m *Map) Has(name string) bool {
	_, ok := m.lists[name]
	return ok
}

// Get returns the live, fixed-length list stored under name. Element
// assignments through the returned list are visible in the map.
func (m *Map) Get(name string) (*ValueList, error) {
	l, ok := m.lists[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNoSuchAttribute)
	}
	return l, nil
}

// Type returns the type tag of the attribute name.
func (m *Map) Type(name string) (Type, bool) {
	l, ok := m.lists[name]
	if !ok {
		return Unspecified, false
	}
	return l.typ, true
}

// Set defines or overwrites name. An atomic value is broadcast to every
// position; a sequence (or *ValueList) must have exactly Len() elements.
func (m *Map) Set(name string, values any) error {
	var l *ValueList
	if elems, ok := iterate(values); ok {
		if len(elems) != m.length {
			return fmt.Errorf("%q: %d values for %d entities: %w", name, len(elems), m.length, ErrLengthMismatch)
		}
		var err error
		if l, err = NewValueList(values, Unspecified); err != nil {
			return err
		}
	} else {
		l = Filled(m.length, values)
	}
	m.put(name, l)
	return nil
}

// Replace installs a copy of list under name.
func (m *Map) Replace(name string, list *ValueList) error {
	if list.Len() != m.length {
		return fmt.Errorf("%q: list of length %d for %d entities: %w", name, list.Len(), m.length, ErrLengthMismatch)
	}
	m.put(name, list.Clone())
	return nil
}

func (m *Map) put(name string, l *ValueList) {
	l.fixed = true
	if _, ok := m.lists[name]; !ok {
		m.names = append(m.names, name)
	}
	m.lists[name] = l
}

// Delete removes name.
func (m *Map) Delete(name string) error {
	if _, ok := m.lists[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNoSuchAttribute)
	}
	delete(m.lists, name)
	m.names = slices.DeleteFunc(m.names, func(n string) bool { return n == name })
	return nil
}

// Extend appends k default-filled positions to every list and advances the
// common length.
func (m *Map) Extend(k int) {
	if k <= 0 {
		return
	}
	for _, l := range m.lists {
		l.grow(k)
	}
	m.length += k
}

// Permute rebuilds every list so that new[i] = old[idx[i]]. The common
// length becomes len(idx), which may be smaller than Len().
func (m *Map) Permute(idx []int) error {
	for _, i := range idx {
		if i < 0 || i >= m.length {
			return fmt.Errorf("permutation entry %d of %d: %w", i, m.length, ErrIndexOutOfRange)
		}
	}
	for name, l := range m.lists {
		p := l.take(idx)
		p.fixed = true
		m.lists[name] = p
	}
	m.length = len(idx)
	return nil
}

// Combine returns a new map with one entity per group, each attribute merged
// with the combination spec selects for it. Attributes whose combination is
// Ignore or Default are dropped.
//
// Errors:
//   - the first error of Combine, prefixed with the attribute name.
//
// Complexity:
//   - Time O(a*n), a = number of attributes, n = total group size.
func (m *Map) Combine(groups [][]int, spec *Spec, env Env) (*Map, error) {
	out := NewMap(len(groups))
	for _, name := range m.names {
		c := spec.For(name)
		if c.Policy == Ignore || c.Policy == Default {
			continue
		}
		merged, err := Combine(m.lists[name], groups, c, env)
		if err != nil {
			return nil, fmt.Errorf("combining %q: %w", name, err)
		}
		out.put(name, merged)
	}
	return out, nil
}

// Clone returns a deep copy.
func (m *Map) Clone() *Map {
	c := &Map{length: m.length, names: slices.Clone(m.names), lists: make(map[string]*ValueList, len(m.lists))}
	for name, l := range m.lists {
		c.lists[name] = l.clone()
	}
	return c
}

// Assign writes values to positions [start, start+len(values)). A missing
// name is defined first, filled with the default of the first value's type.
func (m *Map) Assign(name string, start int, values any) error {
	elems, ok := iterate(values)
	if !ok {
		return fmt.Errorf("%q: %T is not a sequence: %w", name, values, ErrWrongType)
	}
	if start < 0 || start+len(elems) > m.length {
		return fmt.Errorf("%q: positions [%d, %d) of %d: %w", name, start, start+len(elems), m.length, ErrIndexOutOfRange)
	}
	l, ok := m.lists[name]
	if !ok {
		t := Unspecified
		if len(elems) > 0 {
			t = TypeOf(elems[0])
		}
		l = Filled(m.length, t.Default())
		m.put(name, l)
	}
	for j, v := range elems {
		l.store(start+j, v)
	}
	return nil
}
