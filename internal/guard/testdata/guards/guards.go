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

package guards

import (
	"errors"

	"fillmore-labs.com/outcome/option"
	"fillmore-labs.com/outcome/result"
)

func conditions(r result.Result[int], o option.Option[string], flag bool) int {
	if r.IsOk() { // want "direct Result valued"
		return 1
	}

	if r.IsErr() { // want "direct Result empty"
		return 2
	}

	if o.IsSome() { // want "direct Option valued"
		return 3
	}

	if o.IsNone() { // want "direct Option empty"
		return 4
	}

	if !r.IsOk() { // want "negated"
		return 5
	}

	if !!r.IsOk() { // want "negated"
		return 6
	}

	if flag && r.IsOk() { // want "conjunction"
		return 7
	}

	if r.IsOk() && flag { // want "conjunction"
		return 8
	}

	if r.IsOk() && o.IsSome() { // want "conjunction"
		return 9
	}

	if (r.IsOk()) { // want "direct Result valued"
		return 10
	}

	return 0
}

func notGuards(r result.Result[int], rs []result.Result[int], flag bool) int {
	if flag { // plain boolean
		return 1
	}

	if flag || r.IsOk() { // disjunction is not recognized
		return 2
	}

	if r.Value(); flag { // init statement, plain condition
		return 3
	}

	v, ok := r.Value()
	if ok && v > 0 { // comma-ok, not a discriminant
		return v
	}

	if rs[0].IsOk() { // index expressions are not resolvable references
		return 4
	}

	if next(r).IsOk() { // call receivers are not resolvable references
		return 5
	}

	return 0
}

func next(r result.Result[int]) result.Result[int] {
	return r.OrElse(result.Err[int](errors.New("empty")))
}
