// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package guard recognizes boolean conditions that prove a container variant.
//
// The recognized grammar is closed: a discriminant method call on a resolvable
// receiver, a logical negation of a recognized condition, and a short-circuit
// conjunction with at least one recognized operand. Any other boolean
// expression is simply not a guard.
package guard

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/outcome/internal/outcome"
	"fillmore-labs.com/outcome/internal/refs"
)

// Kind discriminates the shapes of a recognized guard condition.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Direct is a discriminant method call ("x.IsOk()").
	Direct Kind = iota // direct

	// Negated is a logical negation of a recognized condition ("!x.IsErr()").
	Negated // negated

	// Conjunction is a short-circuit AND with recognized operands.
	Conjunction // conjunction
)

// Condition is a recognized guard over container references.
type Condition struct {
	// Kind selects which of the fields below are meaningful.
	Kind Kind

	// Ref and Affirms describe a Direct check: the container reference and
	// the variant the check affirms when the condition is true.
	Ref     refs.Ref
	Family  outcome.Family
	Affirms outcome.Discriminant

	// Operands holds the recognized children of a Negated (one) or
	// Conjunction (one or two) condition.
	Operands []*Condition
}

// Parse classifies a boolean expression against the guard grammar. A failed
// parse means the expression is not a recognized guard, not that it is
// erroneous.
func Parse(info *types.Info, expr ast.Expr) (*Condition, bool) {
	switch e := ast.Unparen(expr).(type) {
	case *ast.UnaryExpr:
		if e.Op != token.NOT {
			return nil, false
		}

		inner, ok := Parse(info, e.X)
		if !ok {
			return nil, false
		}

		return &Condition{Kind: Negated, Operands: []*Condition{inner}}, true

	case *ast.BinaryExpr:
		if e.Op != token.LAND {
			return nil, false
		}

		// Either operand suffices: && evaluates left to right with
		// short circuit, so code reachable only when the whole chain is
		// true is constrained by every recognized operand. This does not
		// re-examine the other operand for side effects that could
		// invalidate the check, matching the original analysis.
		var operands []*Condition

		if left, ok := Parse(info, e.X); ok {
			operands = append(operands, left)
		}

		if right, ok := Parse(info, e.Y); ok {
			operands = append(operands, right)
		}

		if len(operands) == 0 {
			return nil, false
		}

		return &Condition{Kind: Conjunction, Operands: operands}, true

	case *ast.CallExpr:
		recv, family, affirms, ok := outcome.DiscriminantCall(info, e)
		if !ok {
			return nil, false
		}

		ref, ok := refs.For(info, recv)
		if !ok {
			return nil, false // unresolved receiver, conservatively not a guard
		}

		return &Condition{Kind: Direct, Ref: ref, Family: family, Affirms: affirms}, true

	default:
		return nil, false
	}
}

// Proves reports whether the condition being true proves the given variant
// for the given reference. Negation flips a direct check: for a two-variant
// exhaustive family, "not empty" proves "valued".
func (c *Condition) Proves(ref refs.Ref, d outcome.Discriminant) bool {
	switch c.Kind {
	case Direct:
		return c.Affirms == d && c.Ref.Equal(ref)

	case Negated:
		return c.Operands[0].refutes(ref, d)

	case Conjunction:
		for _, operand := range c.Operands {
			if operand.Proves(ref, d) {
				return true
			}
		}

		return false

	default:
		return false
	}
}

// refutes reports whether the condition being false proves the given variant.
// A false direct check proves the opposite variant. A false conjunction is a
// disjunction of negated operands, so it proves the variant only when every
// operand was recognized and refutes to it; "!(flag && r.IsOk())" can be true
// with r still holding a value and must not prove anything.
func (c *Condition) refutes(ref refs.Ref, d outcome.Discriminant) bool {
	switch c.Kind {
	case Direct:
		return c.Affirms == d.Opposite() && c.Ref.Equal(ref)

	case Negated:
		return c.Operands[0].Proves(ref, d)

	case Conjunction:
		if len(c.Operands) < 2 {
			return false // an operand was not recognized
		}

		for _, operand := range c.Operands {
			if !operand.refutes(ref, d) {
				return false
			}
		}

		return true

	default:
		return false
	}
}

// Guards is the composed recognizer: it reports whether cond is a recognized
// guard whose truth proves the variant d for ref.
func Guards(info *types.Info, cond ast.Expr, ref refs.Ref, d outcome.Discriminant) bool {
	c, ok := Parse(info, cond)

	return ok && c.Proves(ref, d)
}

// Refutes reports whether cond is a recognized guard whose falsehood proves
// the variant d for ref. This covers the code reached when a condition did
// not hold: an else branch, or the statements after a guard-and-bail exit.
func Refutes(info *types.Info, cond ast.Expr, ref refs.Ref, d outcome.Discriminant) bool {
	c, ok := Parse(info, cond)

	return ok && c.refutes(ref, d)
}
