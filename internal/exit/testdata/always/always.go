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

package always

import (
	"log"
	"os"
)

func earlyReturn(ok bool) int {
	if !ok { // want "Always exits"
		return 0
	}

	return 1
}

func loopBreak(items []int) {
	for _, item := range items {
		if item < 0 { // want "Always exits"
			break
		}

		_ = item
	}
}

func loopContinue(items []int) {
	for _, item := range items {
		if item < 0 { // want "Always exits"
			continue
		}

		_ = item
	}
}

func exitPanic(ok bool) {
	if !ok { // want "Always exits"
		panic("not ok")
	}
}

func exitFatal(ok bool) {
	if !ok { // want "Always exits"
		log.Fatal("not ok")
	}
}

func exitOS(ok bool) {
	if !ok { // want "Always exits"
		os.Exit(1)
	}
}

func nestedBlock(ok bool) {
	if !ok { // want "Always exits"
		{
			return
		}
	}
}

func bothBranches(n int) {
	if n < 0 { // want "Always exits"
		if n < -10 { // want "Always exits"
			panic("far out of range")
		} else {
			panic("out of range")
		}
	}
}

func logOnly(ok bool) {
	if !ok { // logging does not leave the block
		log.Print("not ok")
	}
}

func oneBranch(n int) {
	if n < 0 {
		if n < -10 { // want "Always exits"
			return
		}

		log.Print("negative")
	}
}

func gotoStmt(ok bool) {
	if !ok { // goto stays within reach of the guarded code
		goto done
	}

	log.Print("ok")

done:
}

func emptyBody(ok bool) {
	if !ok { // nothing happens
	}
}
