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

// Package refs resolves container-valued expressions to their underlying
// bindings so two syntactically different expressions can be compared for
// identity. Resolution is symbol-based, never textual: "r" and "r" in
// different scopes are distinct, while differently written expressions
// binding to the same variable chain are equivalent.
package refs

import (
	"go/ast"
	"go/types"
)

// Ref identifies a container value by the chain of bindings an expression
// resolves to: a plain variable is a single-element chain, a field selection
// appends the field's object to its receiver's chain. A Ref is immutable
// once captured; it is only compared.
type Ref struct {
	path []types.Object
}

// For resolves expr to a [Ref]. Expressions outside the recognized grammar
// (anything but parenthesized identifier/selector chains over variables and
// fields) fail to resolve; callers must treat that as "not equivalent".
func For(info *types.Info, expr ast.Expr) (Ref, bool) {
	path, ok := resolve(info, ast.Unparen(expr), nil)
	if !ok {
		return Ref{}, false
	}

	return Ref{path: path}, true
}

// resolve appends the binding chain of expr to path.
func resolve(info *types.Info, expr ast.Expr, path []types.Object) ([]types.Object, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		obj := info.ObjectOf(e)
		if _, ok := obj.(*types.Var); !ok {
			return nil, false
		}

		return append(path, obj), true

	case *ast.SelectorExpr:
		obj := info.ObjectOf(e.Sel)
		if _, ok := obj.(*types.Var); !ok {
			return nil, false // method value or unresolved selector
		}

		// A qualified identifier ("pkg.Var") is a single binding, not a
		// field selection.
		if x, ok := ast.Unparen(e.X).(*ast.Ident); ok {
			if _, isPkg := info.ObjectOf(x).(*types.PkgName); isPkg {
				return append(path, obj), true
			}
		}

		path, ok := resolve(info, ast.Unparen(e.X), path)
		if !ok {
			return nil, false
		}

		return append(path, obj), true

	default:
		// Calls, indexing and dereferences are not tracked: aliasing through
		// collections or indirection is out of scope.
		return nil, false
	}
}

// Valid reports whether the Ref resolved to at least one binding.
func (r Ref) Valid() bool { return len(r.path) > 0 }

// Equal reports whether both references resolve to the identical binding
// chain. An invalid Ref is never equivalent to anything, including itself.
func (r Ref) Equal(o Ref) bool {
	if !r.Valid() || len(r.path) != len(o.path) {
		return false
	}

	for i, obj := range r.path {
		if o.path[i] != obj {
			return false
		}
	}

	return true
}
