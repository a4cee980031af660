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

package cantreturn

import (
	"log"
	"os"
	"runtime"
	"syscall"
	"testing"
)

// The bail-out calls of a guard-and-bail block: each one must be recognized
// as never returning, otherwise code after the guard is treated as reachable
// on the failure path.

func bailPanic(err error) {
	panic(err) // want "Can't return"
}

func bailLog(err error) {
	log.Fatalf("no value: %v", err) // want "Can't return"
}

func bailLogger(err error) {
	audit := log.New(os.Stderr, "audit ", log.LstdFlags)

	audit.Panicln("no value:", err) // want "Can't return"
}

func bailProcess() {
	os.Exit(2)      // want "Can't return"
	syscall.Exit(2) // want "Can't return"
}

func bailGoroutine() {
	runtime.Goexit() // want "Can't return"
}

func bailTest(t *testing.T, err error) {
	t.Fatalf("no value: %v", err) // want "Can't return"
	t.SkipNow()                   // want "Can't return"
}

func logAndFallThrough(err error) {
	log.Printf("no value: %v", err) // OK
}

func indirectBail() {
	bail := log.Fatal

	bail("no value") // OK: function values are not tracked
}

func shadowedPanic() {
	panic := log.Print

	panic("no value") // OK: the shadowed builtin resolves to the variable
}
