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

// Package exit determines whether a statement sequence unconditionally
// transfers control out of the enclosing block, via return, loop branch,
// panic or a call to a known non-returning function.
package exit

import (
	"go/ast"
	"go/token"
	"go/types"
)

// DefaultMaxDepth bounds the structural recursion of the exit scan.
const DefaultMaxDepth = 64

// Always reports whether executing stmts always leaves the enclosing
// block. It is satisfied by any single exiting statement in the list.
func Always(info *types.Info, stmts []ast.Stmt, depth int) bool {
	for _, stmt := range stmts {
		if Stmt(info, stmt, depth) {
			return true
		}
	}

	return false
}

// Stmt reports whether stmt unconditionally exits the enclosing block.
// Once depth is exhausted the answer is false, keeping the scan
// conservative on pathologically nested code.
func Stmt(info *types.Info, stmt ast.Stmt, depth int) bool {
	if depth <= 0 {
		return false
	}

	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		return true

	case *ast.BranchStmt:
		// goto and fallthrough stay within reach of the guarded code.
		return s.Tok == token.BREAK || s.Tok == token.CONTINUE

	case *ast.ExprStmt:
		call, ok := s.X.(*ast.CallExpr)

		return ok && CantReturn(info, call)

	case *ast.BlockStmt:
		return Always(info, s.List, depth-1)

	case *ast.IfStmt:
		return s.Else != nil &&
			Stmt(info, s.Body, depth-1) &&
			Stmt(info, s.Else, depth-1)

	default:
		return false
	}
}
