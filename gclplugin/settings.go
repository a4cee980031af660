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

package gclplugin

import outcomecheck "fillmore-labs.com/outcome/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Access enables checks of variant accessor calls.
	Access *bool `json:"access,omitzero"`
	// Consumption enables checks for discarded container values.
	Consumption *bool `json:"consumption,omitzero"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
	// MaxDepth bounds the statement nesting considered by the early-exit scan.
	MaxDepth *int `json:"max-depth,omitzero"`
}

// Options converts [Settings] into a list of [outcomecheck.Option] for the
// outcomecheck analyzer. It processes settings and applies them only when
// explicitly set (non-nil).
func (s Settings) Options() []outcomecheck.Option {
	var opts []outcomecheck.Option

	opts = appendOption(opts, s.Access, outcomecheck.WithAccess)
	opts = appendOption(opts, s.Consumption, outcomecheck.WithConsumption)
	opts = appendOption(opts, s.Generated, outcomecheck.WithGenerated)
	opts = appendOption(opts, s.MaxDepth, outcomecheck.WithMaxDepth)

	return opts
}

// appendOption appends a non-nil setting to an [outcomecheck.Option] list.
func appendOption[T any](opts []outcomecheck.Option, value *T, constructor func(T) outcomecheck.Option) []outcomecheck.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
