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

package consume

import (
	"errors"

	"fillmore-labs.com/outcome/result"
)

var errFailed = errors.New("failed")

func produce(ok bool) result.Result[int] {
	if ok {
		return result.Ok(42)
	}

	return result.Err[int](errFailed)
}

func dropped(ok bool) {
	produce(ok) // want "Result\\[int\\] value is never consumed \\(oc:dis\\)"
}

func droppedConstructor() {
	result.Ok(1) // want "value is never consumed"
}

func assigned(ok bool) int {
	r := produce(ok)
	if r.IsErr() {
		return 0
	}

	return r.MustValue()
}

func blankAssigned(ok bool) {
	_ = produce(ok) // explicitly discarded
}

func returned(ok bool) result.Result[int] {
	return produce(ok)
}

func passedOn(ok bool) {
	sink(produce(ok))
}

func sink(result.Result[int]) {}

func deferred(ok bool) {
	defer produce(ok) // want "value is never consumed"
}

func inGoroutine(ok bool) {
	go produce(ok) // want "value is never consumed"
}

func observed(ok bool) bool {
	return produce(ok).IsOk()
}

func transformedDropped(ok bool) {
	produce(ok).Filter(func(v int) bool { return v > 0 }, errFailed) // want "value is never consumed"
}

func transformChainDropped(ok bool) {
	result.Map(
		produce(ok), // want "value is never consumed"
		func(v int) string { return "" },
	)
}

func transformConsumed(ok bool) result.Result[int] {
	return produce(ok).OrElse(result.Ok(0))
}

func terminalConsumed(ok bool) {
	produce(ok).Match(
		func(int) {},
		func(error) {},
	)
}

func combined(a, b bool) {
	result.Combine(produce(a), produce(b)) // want "value is never consumed" "value is never consumed"
}

func parenthesized(ok bool) {
	(produce(ok)) // want "value is never consumed"
}

func literalDropped() {
	(result.Result[int]{}).Filter(func(v int) bool { return v > 0 }, errFailed) // want "Result\\[int\\] value is never consumed \\(oc:dis\\)"
}

func literalObserved() bool {
	return (result.Result[int]{}).IsOk()
}

func literalAssigned() {
	_ = result.Result[int]{}
}
