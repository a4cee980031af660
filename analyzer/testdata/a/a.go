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

import (
	"errors"

	"fillmore-labs.com/outcome/result"
)

var errNotFound = errors.New("not found")

func load(ok bool) result.Result[int] {
	if ok {
		return result.Ok(1)
	}

	return result.Err[int](errNotFound)
}

func unguarded(ok bool) int {
	r := load(ok)

	return r.MustValue() // want "Call to 'MustValue' on Result\\[int\\] must be covered by an 'IsOk' check \\(oc:acc\\)"
}

func guarded(ok bool) int {
	r := load(ok)
	if r.IsOk() {
		return r.MustValue() // OK
	}

	return 0
}

func guardedErr(ok bool) error {
	r := load(ok)
	if r.IsErr() {
		return r.MustErr() // OK
	}

	return nil
}

func wrongGuard(ok bool) error {
	r := load(ok)
	if r.IsOk() {
		return r.MustErr() // want "covered by an 'IsErr' check"
	}

	return nil
}

func negatedGuard(ok bool) int {
	r := load(ok)
	if !r.IsErr() {
		return r.MustValue() // OK
	}

	return 0
}

func elseBranch(ok bool) int {
	r := load(ok)
	if r.IsErr() {
		return 0
	} else {
		return r.MustValue() // OK
	}
}

func elseBranchNegated(ok bool) error {
	r := load(ok)
	if !r.IsErr() {
		return nil
	} else {
		return r.MustErr() // OK
	}
}

func thenOfNegation(ok bool) int {
	r := load(ok)
	if !r.IsOk() {
		return r.MustValue() // want "covered by an 'IsOk' check"
	}

	return 0
}

func otherConditional(ok bool) int {
	r := load(ok)
	if len("x") > 0 {
		return r.MustValue() // want "covered by an 'IsOk' check"
	}

	return 0
}

func differentReceiver(ok bool) int {
	r := load(ok)
	s := load(!ok)
	if s.IsOk() {
		return r.MustValue() // want "covered by an 'IsOk' check"
	}

	return 0
}

func nestedBranch(ok bool, flag bool) int {
	r := load(ok)
	if r.IsOk() {
		if flag {
			return r.MustValue() // OK
		}
	}

	return 0
}

func suppressed(ok bool) int {
	r := load(ok)

	return r.MustValue() //nolint:outcomecheck // checked elsewhere
}
