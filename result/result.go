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

// Package result provides a two-variant outcome container holding either a
// success value or a failure error.
//
// A [Result] is always in exactly one of its two variants, observable through
// the [Result.IsOk] and [Result.IsErr] discriminants. The variant accessors
// [Result.MustValue] and [Result.MustErr] are only defined for the matching
// variant and panic otherwise; the outcomecheck analyzer verifies statically
// that calls to them are preceded by a matching discriminant check.
package result

import "fmt"

// Result holds either a success value of type T or a failure error.
// The zero value is Ok with the zero value of T.
type Result[T any] struct {
	value  T
	err    error
	failed bool
}

// Ok returns a successful Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err returns a failed Result holding err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err, failed: true}
}

// Of adapts a conventional (T, error) pair: a non-nil error yields the
// failure variant, otherwise the success variant.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}

	return Ok(value)
}

// IsOk reports whether r holds the success variant.
func (r Result[T]) IsOk() bool { return !r.failed }

// IsErr reports whether r holds the failure variant.
func (r Result[T]) IsErr() bool { return r.failed }

// MustValue returns the success value. It panics when r is the failure
// variant; guard calls with [Result.IsOk] or [Result.IsErr].
func (r Result[T]) MustValue() T {
	if r.failed {
		panic(fmt.Sprintf("result: MustValue on failed Result[%T]: %v", r.value, r.err))
	}

	return r.value
}

// MustErr returns the failure error. It panics when r is the success variant.
func (r Result[T]) MustErr() error {
	if !r.failed {
		panic(fmt.Sprintf("result: MustErr on successful Result[%T]", r.value))
	}

	return r.err
}

// Value returns the success value and whether r holds it.
func (r Result[T]) Value() (T, bool) { return r.value, !r.failed }

// Err returns the failure error and whether r holds it.
func (r Result[T]) Err() (error, bool) { return r.err, r.failed }

// Match dispatches on the variant of r, calling exactly one of the two
// callbacks. It fully discharges the container.
func (r Result[T]) Match(ok func(T), err func(error)) {
	if r.failed {
		err(r.err)

		return
	}

	ok(r.value)
}

// Filter returns r unchanged when it is successful and pred accepts its
// value; a successful value rejected by pred is replaced by the failure
// variant holding err. Failed results pass through.
func (r Result[T]) Filter(pred func(T) bool, err error) Result[T] {
	if r.failed || pred(r.value) {
		return r
	}

	return Err[T](err)
}

// OrElse returns r when it is successful and fallback otherwise.
func (r Result[T]) OrElse(fallback Result[T]) Result[T] {
	if r.failed {
		return fallback
	}

	return r
}

// Map transforms the success value of r with f, passing failures through.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.failed {
		return Err[U](r.err)
	}

	return Ok(f(r.value))
}

// AndThen chains r into f when it is successful, passing failures through.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.failed {
		return Err[U](r.err)
	}

	return f(r.value)
}
