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

package result

import "errors"

// Combine aggregates multiple results into one. Every input is inspected, so
// no failure is lost to short-circuiting: when all inputs are successful the
// combined result holds their values in order, otherwise it holds the errors
// of all failed inputs joined with [errors.Join].
func Combine[T any](rs ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))

	var errs []error

	for _, r := range rs {
		if r.failed {
			errs = append(errs, r.err)

			continue
		}

		values = append(values, r.value)
	}

	if len(errs) > 0 {
		return Err[[]T](errors.Join(errs...))
	}

	return Ok(values)
}
