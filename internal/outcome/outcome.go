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

// Package outcome encodes the container contract the analyzer checks
// against: the recognized container families, their discriminant and
// accessor methods, and the combinator roles. The vocabulary is a closed
// set of tables resolved through type information, so the recognizers
// dispatch on enumeration values instead of comparing strings ad hoc.
package outcome

import (
	"go/ast"
	"go/types"
)

// Package paths of the recognized container packages.
const (
	resultPath = "fillmore-labs.com/outcome/result"
	optionPath = "fillmore-labs.com/outcome/option"
)

// Family identifies a recognized two-variant container family.
type Family uint8

//go:generate go tool stringer -type Family -linecomment
const (
	// NoFamily marks a type that is not a recognized container.
	NoFamily Family = iota // none

	// ResultFamily is the success/failure container [fillmore-labs.com/outcome/result.Result].
	ResultFamily // Result

	// OptionFamily is the present/absent container [fillmore-labs.com/outcome/option.Option].
	OptionFamily // Option
)

// FamilyOf reports the container family of t and its element type.
// The element type is nil for an uninstantiated generic type.
func FamilyOf(t types.Type) (Family, types.Type) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return NoFamily, nil
	}

	obj := named.Obj()

	pkg := obj.Pkg()
	if pkg == nil {
		return NoFamily, nil
	}

	var family Family

	switch {
	case pkg.Path() == resultPath && obj.Name() == "Result":
		family = ResultFamily

	case pkg.Path() == optionPath && obj.Name() == "Option":
		family = OptionFamily

	default:
		return NoFamily, nil
	}

	var elem types.Type
	if args := named.TypeArgs(); args.Len() > 0 {
		elem = args.At(0)
	}

	return family, elem
}

// methodKey identifies a method of a container family.
type methodKey struct {
	family Family
	name   string
}

// methodCall unwraps a call expression to a method call on a container
// receiver. The reported receiver expression is the syntactic receiver,
// which callers resolve through the reference resolver.
func methodCall(info *types.Info, call *ast.CallExpr) (recv ast.Expr, family Family, name string, elem types.Type, ok bool) {
	sel, ok := unwrapFun(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil, NoFamily, "", nil, false
	}

	selection := info.Selections[sel]
	if selection == nil || selection.Kind() != types.MethodVal {
		return nil, NoFamily, "", nil, false
	}

	family, elem = FamilyOf(selection.Recv())
	if family == NoFamily {
		return nil, NoFamily, "", nil, false
	}

	return sel.X, family, sel.Sel.Name, elem, true
}

// unwrapFun iteratively unwraps a callee expression to the underlying
// function reference.
func unwrapFun(ex ast.Expr) ast.Expr {
unwrap:
	switch e := ex.(type) {
	case *ast.IndexExpr: // Generic instantiation with a type parameter ("Err[int]").
		ex = e.X
		goto unwrap

	case *ast.IndexListExpr: // Generic instantiation with multiple type parameters.
		ex = e.X
		goto unwrap

	case *ast.ParenExpr: // Parenthesized expression ("(result.Ok)").
		ex = e.X
		goto unwrap

	default:
		return ex
	}
}

// calleeFunc resolves the callee of a call expression to its function object.
func calleeFunc(info *types.Info, call *ast.CallExpr) (*types.Func, bool) {
	var id *ast.Ident

	switch e := unwrapFun(call.Fun).(type) {
	case *ast.Ident:
		id = e

	case *ast.SelectorExpr:
		id = e.Sel

	default:
		return nil, false
	}

	fun, ok := info.Uses[id].(*types.Func)

	return fun, ok
}
