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

package analyzer

import (
	"flag"

	"fillmore-labs.com/outcome/internal/config"
	"fillmore-labs.com/outcome/internal/run"
)

// registerFlags binds the analyzer options to command line flag values.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	flags.Var(boolValue[config.Checks, *config.Checks]{flags: &r.Checks, value: config.AccessCheck},
		"access", "check that variant accessor calls are guarded")
	flags.Var(boolValue[config.Checks, *config.Checks]{flags: &r.Checks, value: config.ConsumptionCheck},
		"consumption", "check that created containers are consumed")
	flags.Var(boolValue[config.Behavior, *config.Behavior]{flags: &r.Behavior, value: config.IncludeGenerated},
		"generated", "check generated files")

	flags.IntVar(&r.MaxDepth, "max-depth", r.MaxDepth,
		"maximum statement nesting considered by the early-exit scan")

	flags.Func("config", "load settings from a YAML `file`", func(path string) error {
		s, err := config.LoadSettings(path)
		if err != nil {
			return err
		}

		r.MaxDepth = s.Apply(&r.Checks, &r.Behavior, r.MaxDepth)

		return nil
	})
}
