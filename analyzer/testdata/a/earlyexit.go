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
	"log"
	"os"
)

func exitReturn(ok bool) int {
	r := load(ok)
	if r.IsErr() {
		return 0
	}

	return r.MustValue() // OK
}

func exitPanic(ok bool) int {
	r := load(ok)
	if r.IsErr() {
		panic("load failed")
	}

	return r.MustValue() // OK
}

func exitFatal(ok bool) int {
	r := load(ok)
	if r.IsErr() {
		log.Fatal("load failed")
	}

	return r.MustValue() // OK
}

func exitOS(ok bool) int {
	r := load(ok)
	if r.IsErr() {
		os.Exit(1)
	}

	return r.MustValue() // OK
}

func logOnly(ok bool) int {
	r := load(ok)
	if r.IsErr() {
		log.Print("load failed")
	}

	return r.MustValue() // want "covered by an 'IsOk' check"
}

func exitElseFallsThrough(ok bool) int {
	r := load(ok)
	if r.IsErr() {
		return 0
	} else {
		log.Print("loaded")
	}

	return r.MustValue() // want "covered by an 'IsOk' check"
}

func exitNegated(ok bool) int {
	r := load(ok)
	if !r.IsOk() {
		return 0
	}

	return r.MustValue() // OK
}

func exitWrongVariant(ok bool) error {
	r := load(ok)
	if r.IsErr() {
		return errNotFound
	}

	return r.MustErr() // want "covered by an 'IsErr' check"
}

func exitInLoop(vals []bool) int {
	sum := 0

	for _, v := range vals {
		r := load(v)
		if r.IsErr() {
			continue
		}

		sum += r.MustValue() // OK
	}

	return sum
}

func exitThenNested(ok bool, flag bool) int {
	r := load(ok)
	if r.IsErr() {
		return 0
	}

	if flag {
		return r.MustValue() // OK
	}

	return 0
}

func exitAfterAccess(ok bool) int {
	r := load(ok)

	v := r.MustValue() // want "covered by an 'IsOk' check"

	if r.IsErr() {
		return 0
	}

	return v
}
