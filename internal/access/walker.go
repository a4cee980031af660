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
	"context"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/outcome/internal/guard"
	"fillmore-labs.com/outcome/internal/outcome"
	"fillmore-labs.com/outcome/internal/refs"
)

// walk climbs from the accessor call towards the enclosing function,
// checking at each branching construct whether its condition proves the
// required variant for ref. The walk never crosses a function boundary;
// the only exception is a function literal passed directly to a terminal
// match, which acts as a match arm rather than a closure.
func (c *Checker) walk(ctx context.Context, cur inspector.Cursor, ref refs.Ref, want outcome.Discriminant) (bool, error) {
	info := c.pass.TypesInfo

	for cu := cur; ; {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		kind, idx := cu.ParentEdge()
		if kind == edge.Invalid {
			return false, nil
		}

		parent := cu.Parent()

		switch kind {
		case edge.IfStmt_Body:
			ifStmt := parent.Node().(*ast.IfStmt)
			if guard.Guards(info, ifStmt.Cond, ref, want) {
				return true, nil
			}

		case edge.IfStmt_Else:
			// The else branch is reached exactly when the condition is
			// false.
			ifStmt := parent.Node().(*ast.IfStmt)
			if guard.Refutes(info, ifStmt.Cond, ref, want) {
				return true, nil
			}

		case edge.ForStmt_Body:
			forStmt := parent.Node().(*ast.ForStmt)
			if forStmt.Cond != nil && guard.Guards(info, forStmt.Cond, ref, want) {
				return true, nil
			}

		case edge.CaseClause_Body:
			clause := parent.Node().(*ast.CaseClause)
			if provenByCase(info, parent, clause, ref, want) {
				return true, nil
			}

			if c.exitsOtherwise(clause.Body[:idx], ref, want) {
				return true, nil
			}

		case edge.BlockStmt_List:
			block := parent.Node().(*ast.BlockStmt)
			if c.exitsOtherwise(block.List[:idx], ref, want) {
				return true, nil
			}

		case edge.FuncLit_Body:
			return matchArm(info, parent, ref, want), nil

		case edge.FuncDecl_Body, edge.File_Decls:
			return false, nil
		}

		cu = parent
	}
}

// provenByCase reports whether a case clause of a tagless switch proves the
// required variant. The clause body runs when any of its expressions is
// true, so every expression must prove the variant.
func provenByCase(info *types.Info, clauseCur inspector.Cursor, clause *ast.CaseClause, ref refs.Ref, want outcome.Discriminant) bool {
	if len(clause.List) == 0 { // default clause
		return false
	}

	// CaseClause -> BlockStmt -> SwitchStmt; type switches don't apply.
	sw, ok := clauseCur.Parent().Parent().Node().(*ast.SwitchStmt)
	if !ok || sw.Tag != nil {
		return false
	}

	for _, cond := range clause.List {
		if !guard.Guards(info, cond, ref, want) {
			return false
		}
	}

	return true
}

// matchArm reports whether the function literal at litCur is an arm of a
// terminal match over ref that proves the required variant: the first
// callback runs on the valued variant, the second on the empty one.
func matchArm(info *types.Info, litCur inspector.Cursor, ref refs.Ref, want outcome.Discriminant) bool {
	kind, argIdx := litCur.ParentEdge()
	if kind != edge.CallExpr_Args {
		return false
	}

	call := litCur.Parent().Node().(*ast.CallExpr)

	recv, ok := outcome.TerminalCall(info, call)
	if !ok {
		return false
	}

	recvRef, ok := refs.For(info, recv)
	if !ok || !recvRef.Equal(ref) {
		return false
	}

	var proves outcome.Discriminant
	switch argIdx {
	case 0:
		proves = outcome.Valued
	case 1:
		proves = outcome.Empty
	default:
		return false
	}

	return proves == want
}
