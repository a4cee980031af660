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

package access

import (
	"go/ast"

	"fillmore-labs.com/outcome/internal/exit"
	"fillmore-labs.com/outcome/internal/guard"
	"fillmore-labs.com/outcome/internal/outcome"
	"fillmore-labs.com/outcome/internal/refs"
)

// exitsOtherwise scans the statements preceding the access in the same list
// for the early-exit idiom: a conditional whose falsehood proves the required
// variant and whose body unconditionally leaves the block. Code after such a
// statement only runs when the condition did not hold.
func (c *Checker) exitsOtherwise(stmts []ast.Stmt, ref refs.Ref, want outcome.Discriminant) bool {
	info := c.pass.TypesInfo

	for _, stmt := range stmts {
		ifStmt, ok := stmt.(*ast.IfStmt)
		if !ok {
			continue
		}

		if !guard.Refutes(info, ifStmt.Cond, ref, want) {
			continue
		}

		if !exit.Stmt(info, ifStmt.Body, c.maxDepth) {
			continue
		}

		// An else branch that falls through would rejoin after the
		// conditional with nothing proven.
		if ifStmt.Else == nil || exit.Stmt(info, ifStmt.Else, c.maxDepth) {
			return true
		}
	}

	return false
}
