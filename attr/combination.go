// SPDX-License-Identifier: MIT

package attr

import (
	"fmt"
	"slices"
	"strings"
)

// Policy is an attribute combination policy. The zero value is Default;
// the native enumeration values are assigned at the binding boundary.
type Policy int

const (
	Default Policy = iota
	Ignore
	Function
	Sum
	Prod
	Min
	Max
	Random
	First
	Last
	Mean
	Median
	Concat
)

var policyNames = [...]string{
	Default:  "default",
	Ignore:   "ignore",
	Function: "function",
	Sum:      "sum",
	Prod:     "prod",
	Min:      "min",
	Max:      "max",
	Random:   "random",
	First:    "first",
	Last:     "last",
	Mean:     "mean",
	Median:   "median",
	Concat:   "concat",
}

func (p Policy) String() string {
	if p >= 0 && int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy resolves a policy name, case-insensitively. "product" and
// "concatenate" are accepted as aliases.
func ParsePolicy(name string) (Policy, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "product":
		return Prod, nil
	case "concatenate":
		return Concat, nil
	default:
		if i := slices.Index(policyNames[:], n); i >= 0 {
			return Policy(i), nil
		}
	}
	return Default, fmt.Errorf("%q: %w", name, ErrUnknownPolicy)
}

// Func merges the values of one group into a single value.
type Func func(group *ValueList) (any, error)

// Combination is the rule applied to one attribute. Fn is used only with
// the Function policy.
type Combination struct {
	Policy Policy
	Fn     Func
}

// Use returns the combination for a built-in policy.
func Use(p Policy) Combination { return Combination{Policy: p} }

// With returns a Function combination calling fn.
func With(fn Func) Combination { return Combination{Policy: Function, Fn: fn} }

// Entry is one name/combination pair of a Spec. The empty name is the
// catch-all.
type Entry struct {
	Name string
	Combination
}

// Spec maps attribute names to combinations. The entry under the empty name
// applies to every attribute without its own entry.
type Spec struct {
	entries []Entry
}

// NewSpec returns a spec applying def to every attribute.
func NewSpec(def Combination) *Spec {
	return (&Spec{}).Set("", def)
}

// Set adds or replaces the combination of name and returns s.
func (s *Spec) Set(name string, c Combination) *Spec {
	for i := range s.entries {
		if s.entries[i].Name == name {
			s.entries[i].Combination = c
			return s
		}
	}
	s.entries = append(s.entries, Entry{Name: name, Combination: c})
	return s
}

// For returns the combination for name: its own entry, the catch-all, or
// Default. A nil spec yields Default.
func (s *Spec) For(name string) Combination {
	if s == nil {
		return Combination{}
	}
	var fallback Combination
	for _, e := range s.entries {
		switch e.Name {
		case name:
			return e.Combination
		case "":
			fallback = e.Combination
		}
	}
	return fallback
}

// Entries returns the entries in insertion order.
func (s *Spec) Entries() []Entry {
	if s == nil {
		return nil
	}
	return slices.Clone(s.entries)
}

// Validate checks that every Function entry carries a function.
func (s *Spec) Validate() error {
	for _, e := range s.Entries() {
		if e.Policy == Function && e.Fn == nil {
			return fmt.Errorf("attribute %q: %w", e.Name, ErrNoFunction)
		}
		if e.Policy < Default || e.Policy > Concat {
			return fmt.Errorf("attribute %q: %s: %w", e.Name, e.Policy, ErrUnknownPolicy)
		}
	}
	return nil
}
