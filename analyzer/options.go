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
	"log/slog"

	"fillmore-labs.com/outcome/internal/config"
	"fillmore-labs.com/outcome/internal/run"
)

// Option configures specific behavior of a [New] outcomecheck analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithAccess is an [Option] to configure whether unguarded variant access
// checks are enabled.
func WithAccess(access bool) Option { return accessOption{access: access} }

type accessOption struct{ access bool }

func (o accessOption) apply(r *run.Options) {
	r.Checks.Set(config.AccessCheck, o.access)
}

func (o accessOption) LogAttr() slog.Attr {
	return slog.Bool("access", o.access)
}

// WithConsumption is an [Option] to configure whether discarded container
// checks are enabled.
func WithConsumption(consumption bool) Option {
	return consumptionOption{consumption: consumption}
}

type consumptionOption struct{ consumption bool }

func (o consumptionOption) apply(r *run.Options) {
	r.Checks.Set(config.ConsumptionCheck, o.consumption)
}

func (o consumptionOption) LogAttr() slog.Attr {
	return slog.Bool("consumption", o.consumption)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMaxDepth is an [Option] to configure the recursion bound of the
// early-exit scan.
func WithMaxDepth(maxDepth int) Option { return maxDepthOption{maxDepth: maxDepth} }

type maxDepthOption struct{ maxDepth int }

func (o maxDepthOption) apply(r *run.Options) {
	r.MaxDepth = o.maxDepth
}

func (o maxDepthOption) LogAttr() slog.Attr {
	return slog.Int("maxDepth", o.maxDepth)
}
