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

// Package report emits the analyzer's diagnostics. Every message carries a
// stable short code ("oc:acc", "oc:dis") so embedding toolchains can
// configure severities per check.
package report

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/outcome/internal/astutil"
	"fillmore-labs.com/outcome/internal/outcome"
)

// UnprovenAccess reports a variant accessor call that no guard, match arm or
// early exit covers.
func UnprovenAccess(p *analysis.Pass, cf astutil.CurrentFile, call *ast.CallExpr, acc outcome.Access) {
	if cf.NoLintComment(call.Pos()) {
		return
	}

	check := outcome.CheckName(acc.Family, acc.Requires)

	p.Report(analysis.Diagnostic{
		Pos:      call.Pos(),
		End:      call.End(),
		Category: "acc",
		Message: fmt.Sprintf("Call to '%s' on %s must be covered by an '%s' check (oc:acc)",
			acc.Name, containerName(p, acc.Family, acc.Elem), check),
	})
}

// DiscardedContainer reports a creation site, a constructor call or a
// composite literal, whose container value is never consumed.
func DiscardedContainer(p *analysis.Pass, cf astutil.CurrentFile, site ast.Expr, family outcome.Family, elem types.Type) {
	if cf.NoLintComment(site.Pos()) {
		return
	}

	p.Report(analysis.Diagnostic{
		Pos:      site.Pos(),
		End:      site.End(),
		Category: "dis",
		Message:  fmt.Sprintf("%s value is never consumed (oc:dis)", containerName(p, family, elem)),
	})
}

// containerName renders the container type for a message, qualified
// relative to the analyzed package ("Result[pkg.User]").
func containerName(p *analysis.Pass, family outcome.Family, elem types.Type) string {
	if elem == nil {
		return family.String()
	}

	return family.String() + "[" + types.TypeString(elem, types.RelativeTo(p.Pkg)) + "]"
}
