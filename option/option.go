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

// Package option provides a two-variant outcome container holding either a
// present value or nothing.
//
// An [Option] is always in exactly one of its two variants, observable
// through the [Option.IsSome] and [Option.IsNone] discriminants. The variant
// accessor [Option.MustValue] is only defined for the present variant and
// panics otherwise; the outcomecheck analyzer verifies statically that calls
// to it are preceded by a matching discriminant check.
package option

import "fmt"

// Option holds either a present value of type T or nothing.
// The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of adapts a conventional (T, bool) pair such as a map lookup.
func Of[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.present }

// MustValue returns the present value. It panics when o is empty; guard
// calls with [Option.IsSome] or [Option.IsNone].
func (o Option[T]) MustValue() T {
	if !o.present {
		panic(fmt.Sprintf("option: MustValue on empty Option[%T]", o.value))
	}

	return o.value
}

// Value returns the contained value and whether o holds it.
func (o Option[T]) Value() (T, bool) { return o.value, o.present }

// Match dispatches on the variant of o, calling exactly one of the two
// callbacks. It fully discharges the container.
func (o Option[T]) Match(some func(T), none func()) {
	if !o.present {
		none()

		return
	}

	some(o.value)
}

// Filter returns o unchanged when it holds a value accepted by pred and None
// otherwise.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}

	return None[T]()
}

// OrElse returns o when it holds a value and fallback otherwise.
func (o Option[T]) OrElse(fallback Option[T]) Option[T] {
	if o.present {
		return o
	}

	return fallback
}

// Map transforms the present value of o with f, passing None through.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}

	return Some(f(o.value))
}

// AndThen chains o into f when it holds a value, passing None through.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}

	return f(o.value)
}
