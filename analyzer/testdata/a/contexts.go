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

package a

import "fillmore-labs.com/outcome/result"

func conjunctionLeft(ok bool, flag bool) int {
	r := load(ok)
	if r.IsOk() && flag {
		return r.MustValue() // OK
	}

	return 0
}

func conjunctionRight(ok bool, flag bool) int {
	r := load(ok)
	if flag && r.IsOk() {
		return r.MustValue() // OK
	}

	return 0
}

func conjunctionChain(ok bool, flag bool) int {
	r := load(ok)
	if flag && r.IsOk() && len("x") > 0 {
		return r.MustValue() // OK
	}

	return 0
}

func disjunction(ok bool, flag bool) int {
	r := load(ok)
	if flag || r.IsOk() {
		return r.MustValue() // want "covered by an 'IsOk' check"
	}

	return 0
}

func conjunctionElse(ok bool, flag bool) error {
	r := load(ok)

	if r.IsOk() && flag {
		_ = r.MustValue() // OK
	} else {
		// Reached when flag is false, even with r holding a value.
		return r.MustErr() // want "covered by an 'IsErr' check"
	}

	return nil
}

func conjunctionBail(ok bool, flag bool) error {
	r := load(ok)

	if r.IsOk() && flag {
		return nil
	}

	return r.MustErr() // want "covered by an 'IsErr' check"
}

func negatedConjunction(ok bool, flag bool) error {
	r := load(ok)

	// True whenever flag is false, so nothing is known about r.
	if !(flag && r.IsOk()) {
		return r.MustErr() // want "covered by an 'IsErr' check"
	}

	return nil
}

func negatedConjunctionElse(ok bool, flag bool) int {
	r := load(ok)

	if !(flag && r.IsOk()) {
		return 0
	}

	// Here the conjunction itself held.
	return r.MustValue() // OK
}

func taglessSwitch(ok bool) int {
	r := load(ok)

	switch {
	case r.IsOk():
		return r.MustValue() // OK

	default:
		return 0
	}
}

func taglessSwitchDefault(ok bool) int {
	r := load(ok)

	switch {
	case r.IsErr():
		return 0

	default:
		return r.MustValue() // want "covered by an 'IsOk' check"
	}
}

func taggedSwitch(ok bool, n int) int {
	r := load(ok)

	switch n {
	case 0:
		return r.MustValue() // want "covered by an 'IsOk' check"

	default:
		return 0
	}
}

func forCondition(ok bool) int {
	r := load(ok)
	sum := 0

	for r.IsOk() {
		sum += r.MustValue() // OK
		r = load(false)
	}

	return sum
}

func matchArms(ok bool) {
	r := load(ok)

	r.Match(
		func(int) {
			_ = r.MustValue() // OK
		},
		func(error) {
			_ = r.MustErr() // OK
		},
	)
}

func matchArmWrongVariant(ok bool) {
	r := load(ok)

	r.Match(
		func(int) {
			_ = r.MustErr() // want "covered by an 'IsErr' check"
		},
		func(error) {},
	)
}

func closureBoundary(ok bool) func() int {
	r := load(ok)
	if r.IsOk() {
		return func() int {
			return r.MustValue() // want "covered by an 'IsOk' check"
		}
	}

	return nil
}

func guardOtherFunction(ok bool) int {
	r := load(ok)
	check := func() bool { return r.IsOk() }

	if check() {
		return r.MustValue() // want "covered by an 'IsOk' check"
	}

	return 0
}

func fieldReceiver(ok bool) int {
	var box struct {
		res result.Result[int]
	}

	box.res = load(ok)
	if box.res.IsOk() {
		return box.res.MustValue() // OK
	}

	return 0
}

func fieldReceiverMismatch(ok bool) int {
	var a, b struct {
		res result.Result[int]
	}

	a.res = load(ok)
	b.res = load(!ok)

	if a.res.IsOk() {
		return b.res.MustValue() // want "covered by an 'IsOk' check"
	}

	return 0
}
