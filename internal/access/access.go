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

// Package access decides whether a variant accessor call is proven safe by
// its context: an enclosing branch whose condition guards the required
// variant, a pattern-match arm, or a preceding early exit that rules the
// opposite variant out. Anything unproven is unsafe, never the other way
// round.
package access

import (
	"context"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/outcome/internal/outcome"
	"fillmore-labs.com/outcome/internal/refs"
)

// Checker proves accessor calls safe within a single pass.
type Checker struct {
	pass     *analysis.Pass
	maxDepth int
}

// New creates a [Checker] for the given pass. maxDepth bounds the early-exit
// scan on nested statements.
func New(p *analysis.Pass, maxDepth int) *Checker {
	return &Checker{pass: p, maxDepth: maxDepth}
}

// Safe reports whether the accessor call at cur is proven to operate on the
// variant it requires. cur must be the cursor of the accessor's [ast.CallExpr].
func (c *Checker) Safe(ctx context.Context, cur inspector.Cursor, acc outcome.Access) (bool, error) {
	ref, ok := refs.For(c.pass.TypesInfo, acc.Recv)
	if !ok {
		// A receiver we cannot resolve can never match a guard.
		return false, nil
	}

	return c.walk(ctx, cur, ref, acc.Requires)
}
