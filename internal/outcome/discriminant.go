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

package outcome

import (
	"go/ast"
	"go/types"
)

// Discriminant names one of the two mutually exclusive, exhaustive variants
// of a container family: the valued variant (Ok/Some) or the empty variant
// (Err/None).
type Discriminant uint8

//go:generate go tool stringer -type Discriminant -linecomment
const (
	// NoDiscriminant marks a method that does not test a variant.
	NoDiscriminant Discriminant = iota // none

	// Valued affirms the success/present variant (Ok, Some).
	Valued // valued

	// Empty affirms the failure/absent variant (Err, None).
	Empty // empty
)

// Opposite returns the other variant of the same family. Because a family
// has exactly two exhaustive variants, refuting one affirms the other.
func (d Discriminant) Opposite() Discriminant {
	switch d {
	case Valued:
		return Empty

	case Empty:
		return Valued

	default:
		return NoDiscriminant
	}
}

// discriminants maps the boolean discriminant methods of each family.
var discriminants = map[methodKey]Discriminant{
	{ResultFamily, "IsOk"}:  Valued,
	{ResultFamily, "IsErr"}: Empty,

	{OptionFamily, "IsSome"}: Valued,
	{OptionFamily, "IsNone"}: Empty,
}

// variantKey identifies one variant of a container family.
type variantKey struct {
	family Family
	d      Discriminant
}

// checkNames maps a family and variant to the discriminant method asserting it.
var checkNames = map[variantKey]string{
	{ResultFamily, Valued}: "IsOk",
	{ResultFamily, Empty}:  "IsErr",

	{OptionFamily, Valued}: "IsSome",
	{OptionFamily, Empty}:  "IsNone",
}

// CheckName returns the name of the discriminant method asserting d for the
// given family, for use in diagnostic messages.
func CheckName(family Family, d Discriminant) string {
	return checkNames[variantKey{family, d}]
}

// DiscriminantCall recognizes a discriminant method call such as "x.IsOk()".
// It reports the syntactic receiver, the container family and the variant
// the call affirms when true.
func DiscriminantCall(info *types.Info, call *ast.CallExpr) (recv ast.Expr, family Family, affirms Discriminant, ok bool) {
	recv, family, name, _, ok := methodCall(info, call)
	if !ok {
		return nil, NoFamily, NoDiscriminant, false
	}

	affirms, ok = discriminants[methodKey{family, name}]
	if !ok {
		return nil, NoFamily, NoDiscriminant, false
	}

	return recv, family, affirms, true
}

// Access describes a variant accessor call, a read that is only defined when
// the container holds the matching variant.
type Access struct {
	// Recv is the syntactic receiver expression of the accessor call.
	Recv ast.Expr

	// Family is the container family of the receiver.
	Family Family

	// Name is the accessor method name.
	Name string

	// Requires is the variant under which the access is defined.
	Requires Discriminant

	// Elem is the declared element type of the container, or nil when it
	// cannot be resolved.
	Elem types.Type
}

// accessors maps the variant accessor methods of each family to the variant
// they require.
var accessors = map[methodKey]Discriminant{
	{ResultFamily, "MustValue"}: Valued,
	{ResultFamily, "MustErr"}:   Empty,

	{OptionFamily, "MustValue"}: Valued,
}

// AccessorCall recognizes a variant accessor call such as "x.MustValue()".
func AccessorCall(info *types.Info, call *ast.CallExpr) (Access, bool) {
	recv, family, name, elem, ok := methodCall(info, call)
	if !ok {
		return Access{}, false
	}

	requires, ok := accessors[methodKey{family, name}]
	if !ok {
		return Access{}, false
	}

	return Access{Recv: recv, Family: family, Name: name, Requires: requires, Elem: elem}, true
}
