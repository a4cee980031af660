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

package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings mirrors the analyzer's command-line flags for standalone runs.
// All fields are optional; unset fields leave the corresponding option at its
// current value.
type Settings struct {
	// Access enables the variant accessor check.
	Access *bool `yaml:"access"`
	// Consumption enables the discarded container check.
	Consumption *bool `yaml:"consumption"`
	// Generated enables diagnostics in generated files.
	Generated *bool `yaml:"generated"`
	// MaxDepth bounds the recursion of the unconditional-exit scan.
	MaxDepth *int `yaml:"max-depth"`
}

// LoadSettings reads and decodes a YAML settings file. Unknown keys are
// rejected so a typo does not silently disable a check.
func LoadSettings(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := DecodeSettings(data, &s); err != nil {
		return s, fmt.Errorf("settings file %q: %w", path, err)
	}

	return s, nil
}

// DecodeSettings decodes YAML settings data into s.
func DecodeSettings(data []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(s); err != nil {
		return fmt.Errorf("decoding settings: %w", err)
	}

	return nil
}

// Apply merges the settings into the given flag sets, leaving unset fields
// untouched. MaxDepth is returned unchanged when the settings do not set it.
func (s Settings) Apply(checks *Checks, behavior *Behavior, maxDepth int) int {
	applyFlag(checks, AccessCheck, s.Access)
	applyFlag(checks, ConsumptionCheck, s.Consumption)
	applyFlag(behavior, IncludeGenerated, s.Generated)

	if s.MaxDepth != nil {
		maxDepth = *s.MaxDepth
	}

	return maxDepth
}

type flagSet[T any] interface {
	Set(flag T, value bool)
}

func applyFlag[T any](flags flagSet[T], flag T, value *bool) {
	if value == nil {
		return
	}

	flags.Set(flag, *value)
}
