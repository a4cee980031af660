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

// Package consume classifies how the value of a container creation site is
// used. A fresh container is unconsumed when its value is silently dropped;
// every other use, including an explicit blank assignment, discharges it.
// Pure transforms forward the obligation to their own result, so a chain is
// classified by its final link.
package consume

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/outcome/internal/outcome"
)

// Classification is the verdict over a creation site's use.
type Classification uint8

const (
	// Unconsumed means the container value is dropped without inspection.
	Unconsumed Classification = iota

	// Consumed means the value is used, stored or explicitly discarded.
	Consumed
)

// Classify determines whether the container produced at cur is consumed.
// cur must be the cursor of the creating expression, a call or a composite
// literal.
func Classify(info *types.Info, cur inspector.Cursor) Classification {
	kind, _ := cur.ParentEdge()

	switch kind {
	case edge.ExprStmt_X, edge.DeferStmt_Call, edge.GoStmt_Call:
		// The statement drops the value on the floor.
		return Unconsumed

	case edge.ParenExpr_X:
		return Classify(info, cur.Parent())

	case edge.CallExpr_Args:
		// Argument of a pure transform: the obligation moves to the
		// transform's result.
		call := cur.Parent().Node().(*ast.CallExpr)
		if outcome.CallRole(info, call) == outcome.Transform {
			return Classify(info, cur.Parent())
		}

		return Consumed

	case edge.SelectorExpr_X:
		return classifyReceiver(info, cur.Parent())

	default:
		// Assignments, declarations, returns, composite literals and any
		// use we do not model count as consumption. The check trades
		// recall for zero false positives.
		return Consumed
	}
}

// classifyReceiver handles a creation used as a method call receiver.
// Transform methods forward the obligation, everything else inspects the
// container.
func classifyReceiver(info *types.Info, selCur inspector.Cursor) Classification {
	kind, _ := selCur.ParentEdge()
	if kind != edge.CallExpr_Fun {
		return Consumed
	}

	callCur := selCur.Parent()
	call := callCur.Node().(*ast.CallExpr)

	if outcome.CallRole(info, call) == outcome.Transform {
		return Classify(info, callCur)
	}

	return Consumed
}
