// SPDX-License-Identifier: MIT

package attr

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
)

// Env carries what combination policies need from their environment.
type Env struct {
	// Rand backs the Random policy.
	Rand *rand.Rand
}

// Combine merges list into one value per group. groups[j] lists the source
// positions merged into output position j. Ignore and Default return a nil
// list: the attribute is dropped.
//
// Empty groups yield the type default for First, Last and Random, 0 for Sum,
// 1 for Prod and NaN for Min, Max, Mean and Median.
//
// Implementation:
//   - Stage 1: reject group members outside [0, list.Len()).
//   - Stage 2: dispatch on the policy; numeric policies read every value
//     through Real, Concat requires a string list.
//
// Errors:
//   - ErrIndexOutOfRange for a bad group member.
//   - ErrNoRandomSource for Random without env.Rand.
//   - ErrNoFunction for Function without Fn; errors returned by Fn are wrapped.
//
// Complexity:
//   - Time O(n log n) for Median, O(n) otherwise, n = total group size.
func Combine(list *ValueList, groups [][]int, c Combination, env Env) (*ValueList, error) {
	for _, g := range groups {
		for _, i := range g {
			if i < 0 || i >= list.length {
				return nil, fmt.Errorf("group member %d of %d: %w", i, list.length, ErrIndexOutOfRange)
			}
		}
	}

	switch c.Policy {
	case Default, Ignore:
		return nil, nil
	case First:
		return pick(list, groups, func(g []int) int { return g[0] }), nil
	case Last:
		return pick(list, groups, func(g []int) int { return g[len(g)-1] }), nil
	case Random:
		if env.Rand == nil {
			return nil, ErrNoRandomSource
		}
		return pick(list, groups, func(g []int) int { return g[env.Rand.IntN(len(g))] }), nil
	case Sum:
		return reduce(list, groups, 0, func(acc, x float64) float64 { return acc + x })
	case Prod:
		return reduce(list, groups, 1, func(acc, x float64) float64 { return acc * x })
	case Min:
		return numeric(list, groups, func(xs []float64) float64 { return slices.Min(xs) })
	case Max:
		return numeric(list, groups, func(xs []float64) float64 { return slices.Max(xs) })
	case Mean:
		return numeric(list, groups, mean)
	case Median:
		return numeric(list, groups, median)
	case Concat:
		return concat(list, groups)
	case Function:
		return apply(list, groups, c.Fn)
	}
	return nil, fmt.Errorf("%s: %w", c.Policy, ErrUnknownPolicy)
}

func pick(list *ValueList, groups [][]int, choose func([]int) int) *ValueList {
	out := &ValueList{typ: list.typ}
	out.grow(len(groups))
	for j, g := range groups {
		if len(g) > 0 {
			out.store(j, list.at(choose(g)))
		}
	}
	return out
}

func floats(list *ValueList) ([]float64, error) {
	xs, ok := list.Floats()
	if !ok {
		return nil, fmt.Errorf("%s list: %w", list.typ, ErrWrongType)
	}
	return xs, nil
}

func reduce(list *ValueList, groups [][]int, unit float64, op func(acc, x float64) float64) (*ValueList, error) {
	xs, err := floats(list)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(groups))
	for j, g := range groups {
		acc := unit
		for _, i := range g {
			acc = op(acc, xs[i])
		}
		out[j] = acc
	}
	return NewValueList(out, Numeric)
}

func numeric(list *ValueList, groups [][]int, f func([]float64) float64) (*ValueList, error) {
	xs, err := floats(list)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(groups))
	buf := make([]float64, 0)
	for j, g := range groups {
		if len(g) == 0 {
			out[j] = math.NaN()
			continue
		}
		buf = buf[:0]
		for _, i := range g {
			buf = append(buf, xs[i])
		}
		out[j] = f(buf)
	}
	return NewValueList(out, Numeric)
}

func mean(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}

// median sorts xs in place.
func median(xs []float64) float64 {
	slices.Sort(xs)
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}

func concat(list *ValueList, groups [][]int) (*ValueList, error) {
	strs, ok := list.Strings()
	if !ok {
		return nil, fmt.Errorf("concat of a %s list: %w", list.typ, ErrWrongType)
	}
	out := make([]string, len(groups))
	var b strings.Builder
	for j, g := range groups {
		b.Reset()
		for _, i := range g {
			b.WriteString(strs[i])
		}
		out[j] = b.String()
	}
	return NewValueList(out, String)
}

func apply(list *ValueList, groups [][]int, fn Func) (*ValueList, error) {
	if fn == nil {
		return nil, ErrNoFunction
	}
	out := make([]any, len(groups))
	for j, g := range groups {
		v, err := fn(list.take(g))
		if err != nil {
			return nil, err
		}
		out[j] = v
	}
	return NewValueList(out, Unspecified)
}
