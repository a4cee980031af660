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

// Package run drives the outcomecheck analyzer pipeline over a pass.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/outcome/internal/access"
	"fillmore-labs.com/outcome/internal/astutil"
	"fillmore-labs.com/outcome/internal/config"
	"fillmore-labs.com/outcome/internal/consume"
	"fillmore-labs.com/outcome/internal/outcome"
	"fillmore-labs.com/outcome/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the outcomecheck analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("outcomecheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "OutcomeCheck")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	checker := access.New(p, r.MaxDepth)

	// Remember the current file over all functions declared in it
	var currentFile astutil.CurrentFile

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile = astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			// Skip functions with nolint comment
			if fun.Doc != nil && astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]) {
				continue
			}

			body := c.ChildAt(edge.FuncDecl_Body, -1)

			r.checkFunction(ctx, p, checker, currentFile, body)
		}
	}

	return nil, nil
}

// checkFunction visits every call expression and composite literal in a
// function body and applies the enabled checks.
func (r *Options) checkFunction(ctx context.Context, p *analysis.Pass, checker *access.Checker, cf astutil.CurrentFile, body inspector.Cursor) {
	defer trace.StartRegion(ctx, "CheckFunction").End()

	for c := range body.Preorder((*ast.CallExpr)(nil), (*ast.CompositeLit)(nil)) {
		switch c.Node().(type) {
		case *ast.CallExpr:
			r.checkCall(ctx, p, checker, cf, c)

		case *ast.CompositeLit:
			r.checkLit(p, cf, c)
		}
	}
}

// checkCall applies the access and consumption checks to a single call. A
// panic while analyzing one call skips that call instead of aborting the
// host process.
func (r *Options) checkCall(ctx context.Context, p *analysis.Pass, checker *access.Checker, cf astutil.CurrentFile, c inspector.Cursor) {
	call := c.Node().(*ast.CallExpr)

	defer func() {
		if e := recover(); e != nil {
			astutil.InternalError(p, call, "Skipped call: %v", e)
		}
	}()

	if r.Checks.Enabled(config.AccessCheck) {
		if acc, ok := outcome.AccessorCall(p.TypesInfo, call); ok {
			safe, err := checker.Safe(ctx, c, acc)
			if err != nil {
				return
			}

			if !safe {
				report.UnprovenAccess(p, cf, call, acc)
			}

			return
		}
	}

	if r.Checks.Enabled(config.ConsumptionCheck) {
		if family, elem, ok := outcome.CreationSite(p.TypesInfo, call); ok {
			if consume.Classify(p.TypesInfo, c) == consume.Unconsumed {
				report.DiscardedContainer(p, cf, call, family, elem)
			}
		}
	}
}

// checkLit applies the consumption check to a composite literal of a
// container type.
func (r *Options) checkLit(p *analysis.Pass, cf astutil.CurrentFile, c inspector.Cursor) {
	lit := c.Node().(*ast.CompositeLit)

	defer func() {
		if e := recover(); e != nil {
			astutil.InternalError(p, lit, "Skipped literal: %v", e)
		}
	}()

	if !r.Checks.Enabled(config.ConsumptionCheck) {
		return
	}

	if family, elem, ok := outcome.LiteralSite(p.TypesInfo, lit); ok {
		if consume.Classify(p.TypesInfo, c) == consume.Unconsumed {
			report.DiscardedContainer(p, cf, lit, family, elem)
		}
	}
}
