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

// Package analyzer implements the outcomecheck static analysis pass.
//
// # Overview
//
// OutcomeCheck verifies the safe use of the two-variant containers
// [fillmore-labs.com/outcome/result.Result] and
// [fillmore-labs.com/outcome/option.Option]: variant accessors such as
// MustValue must be covered by a discriminant check, and freshly created
// containers must not be silently dropped.
//
// # Example
//
// Flagged:
//
//	r := load(id)
//	return r.MustValue() // may panic when r failed
//
// Accepted:
//
//	r := load(id)
//	if r.IsErr() {
//	    return defaultUser
//	}
//	return r.MustValue() // proven: the failure case exited above
//
// # Recognized Guards
//
// The analyzer understands:
//
//   - direct discriminant checks ("r.IsOk()") guarding if, tagless switch
//     and for-condition bodies
//   - negated checks ("!r.IsErr()") and else branches
//   - short-circuit && chains containing a recognized check
//   - early exits ("if r.IsErr() { return }") preceding the access
//   - callbacks passed to the terminal Match combinator
package analyzer
