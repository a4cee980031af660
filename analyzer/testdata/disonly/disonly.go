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

package disonly

import (
	"errors"

	"fillmore-labs.com/outcome/result"
)

var errFailed = errors.New("failed")

func produce(ok bool) result.Result[int] {
	if ok {
		return result.Ok(1)
	}

	return result.Err[int](errFailed)
}

func unguarded(ok bool) int {
	r := produce(ok)

	return r.MustValue() // access check disabled
}

func discarded(ok bool) {
	produce(ok) // want "value is never consumed"
}
