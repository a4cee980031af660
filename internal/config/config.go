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

// Package config holds the flag enumerations and settings shared by the
// outcomecheck analyzer surfaces (functional options, command-line flags,
// golangci-lint settings and the standalone YAML settings file).
package config

// Checks selects which outcomecheck analyses run.
type Checks uint8

const (
	// AccessCheck verifies that variant accessor calls are covered by a
	// matching discriminant check.
	AccessCheck Checks = 1 << iota

	// ConsumptionCheck verifies that freshly created containers are consumed.
	ConsumptionCheck
)

// DefaultChecks returns the checks enabled by default - all of them.
func DefaultChecks() Checks { return AccessCheck | ConsumptionCheck }

// Set enables or disables the given check.
func (c *Checks) Set(flag Checks, value bool) { *c = Checks(set(uint8(*c), uint8(flag), value)) }

// Enabled reports whether the given check is enabled.
func (c Checks) Enabled(flag Checks) bool { return uint8(c)&uint8(flag) != 0 }

// Behavior holds behavioral toggles independent of check selection.
type Behavior uint8

const (
	// IncludeGenerated enables analysis of generated files.
	IncludeGenerated Behavior = 1 << iota
)

// DefaultBehavior returns the default behavior - generated files are skipped.
func DefaultBehavior() Behavior { return 0 }

// Set enables or disables the given behavior.
func (b *Behavior) Set(flag Behavior, value bool) { *b = Behavior(set(uint8(*b), uint8(flag), value)) }

// Enabled reports whether the given behavior is enabled.
func (b Behavior) Enabled(flag Behavior) bool { return uint8(b)&uint8(flag) != 0 }

func set(bits, flag uint8, value bool) uint8 {
	if value {
		return bits | flag
	}

	return bits &^ flag
}
