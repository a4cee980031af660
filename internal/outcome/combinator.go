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

// Role classifies how an operation of the container contract treats the
// container it operates on.
type Role uint8

//go:generate go tool stringer -type Role -linecomment
const (
	// NoRole marks an operation outside the recognized contract.
	NoRole Role = iota // none

	// Observer reads the discriminant or a variant value, discharging the
	// obligation to inspect the container.
	Observer // observer

	// Terminal fully discharges the container, supplying both variants to
	// separate callbacks.
	Terminal // terminal

	// Transform produces a new container whose consumption obligation
	// replaces its operand's.
	Transform // transform

	// Constructor produces a fresh container.
	Constructor // constructor
)

// methodRoles classifies the method surface of each family.
var methodRoles = map[methodKey]Role{
	{ResultFamily, "IsOk"}:      Observer,
	{ResultFamily, "IsErr"}:     Observer,
	{ResultFamily, "MustValue"}: Observer,
	{ResultFamily, "MustErr"}:   Observer,
	{ResultFamily, "Value"}:     Observer,
	{ResultFamily, "Err"}:       Observer,
	{ResultFamily, "Match"}:     Terminal,
	{ResultFamily, "Filter"}:    Transform,
	{ResultFamily, "OrElse"}:    Transform,

	{OptionFamily, "IsSome"}:    Observer,
	{OptionFamily, "IsNone"}:    Observer,
	{OptionFamily, "MustValue"}: Observer,
	{OptionFamily, "Value"}:     Observer,
	{OptionFamily, "Match"}:     Terminal,
	{OptionFamily, "Filter"}:    Transform,
	{OptionFamily, "OrElse"}:    Transform,
}

// funcKey identifies a package-level function of a container package.
type funcKey struct {
	path string
	name string
}

// funcRoles classifies the package-level functions of the container
// packages. Map, AndThen and Combine are package-level because Go methods
// cannot introduce type parameters.
var funcRoles = map[funcKey]Role{
	{resultPath, "Ok"}:      Constructor,
	{resultPath, "Err"}:     Constructor,
	{resultPath, "Of"}:      Constructor,
	{resultPath, "Map"}:     Transform,
	{resultPath, "AndThen"}: Transform,
	{resultPath, "Combine"}: Transform,

	{optionPath, "Some"}:    Constructor,
	{optionPath, "None"}:    Constructor,
	{optionPath, "Of"}:      Constructor,
	{optionPath, "Map"}:     Transform,
	{optionPath, "AndThen"}: Transform,
}

// CallRole classifies a call expression against the container contract:
// a method call on a container receiver, or a call to one of the container
// packages' functions. Calls outside the contract report NoRole.
func CallRole(info *types.Info, call *ast.CallExpr) Role {
	if _, family, name, _, ok := methodCall(info, call); ok {
		return methodRoles[methodKey{family, name}]
	}

	fun, ok := calleeFunc(info, call)
	if !ok || fun.Pkg() == nil {
		return NoRole
	}

	return funcRoles[funcKey{fun.Pkg().Path(), fun.Name()}]
}

// TerminalCall recognizes a terminal combinator call and reports its
// syntactic receiver. Code inside its callback arguments handles both
// variants exhaustively, so accesses there are covered by the combinator.
func TerminalCall(info *types.Info, call *ast.CallExpr) (recv ast.Expr, ok bool) {
	recv, family, name, _, ok := methodCall(info, call)
	if !ok || methodRoles[methodKey{family, name}] != Terminal {
		return nil, false
	}

	return recv, true
}

// CreationSite reports whether the call produces a fresh container that
// carries a consumption obligation. Transform combinator calls forward their
// operand's obligation instead of creating a new one, so an unconsumed
// transform chain is reported once, at the original creation.
func CreationSite(info *types.Info, call *ast.CallExpr) (Family, types.Type, bool) {
	tv, ok := info.Types[call]
	if !ok {
		return NoFamily, nil, false
	}

	family, elem := FamilyOf(tv.Type)
	if family == NoFamily {
		return NoFamily, nil, false
	}

	if CallRole(info, call) == Transform {
		return NoFamily, nil, false
	}

	return family, elem, true
}

// LiteralSite reports whether the composite literal constructs a container.
// A literal always carries a consumption obligation.
func LiteralSite(info *types.Info, lit *ast.CompositeLit) (Family, types.Type, bool) {
	tv, ok := info.Types[lit]
	if !ok {
		return NoFamily, nil, false
	}

	family, elem := FamilyOf(tv.Type)
	if family == NoFamily {
		return NoFamily, nil, false
	}

	return family, elem, true
}
