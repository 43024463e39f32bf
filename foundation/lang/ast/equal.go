// File: equal.go
// Title: Structural Equality
// Description: Structural comparison of expression trees.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Compare floats bitwise so NaN equals itself

package ast

import "math"

// Equal reports whether a and b are structurally identical trees. Singles
// compare by bit pattern: NaN equals NaN, 0.0 differs from -0.0.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Call:
		y, ok := b.(Call)
		return ok && Equal(x.Fn, y.Fn) && Equal(x.Arg, y.Arg)
	case Lambda:
		y, ok := b.(Lambda)
		return ok && x.Param == y.Param && Equal(x.Body, y.Body)
	case Integer:
		y, ok := b.(Integer)
		return ok && x.Value == y.Value
	case Single:
		y, ok := b.(Single)
		return ok && math.Float32bits(x.Value) == math.Float32bits(y.Value)
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x.Value == y.Value
	case String:
		y, ok := b.(String)
		return ok && x.Value == y.Value
	case Def:
		y, ok := b.(Def)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)
	case Enum:
		y, ok := b.(Enum)
		if !ok || x.Name != y.Name || len(x.Variants) != len(y.Variants) || len(x.Arities) != len(y.Arities) {
			return false
		}
		for i := range x.Variants {
			if x.Variants[i] != y.Variants[i] {
				return false
			}
		}
		for i := range x.Arities {
			if x.Arities[i] != y.Arities[i] {
				return false
			}
		}
		return true
	case Unit:
		_, ok := b.(Unit)
		return ok
	default:
		return false
	}
}

// EqualAll compares two form sequences element by element
func EqualAll(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
