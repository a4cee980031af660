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

package exit

import (
	"go/types"
	"strings"
)

// FuncName identifies a function or method by package path, receiver type
// name and function name, for lookup in the no-return table.
type FuncName struct {
	Path     string
	Receiver string
	Name     string
}

// FuncNameOf derives the [FuncName] of a function object, unwrapping alias
// and pointer receivers to the underlying named type.
func FuncNameOf(fun *types.Func) FuncName {
	name := FuncName{Name: fun.Name()}

	if pkg := fun.Pkg(); pkg != nil {
		name.Path = pkg.Path()
	}

	if recv := fun.Signature().Recv(); recv != nil {
		name.Receiver = receiverName(recv.Type())
	}

	return name
}

// receiverName resolves the name of a receiver type.
func receiverName(t types.Type) string {
	switch t := types.Unalias(t).(type) {
	case *types.Pointer:
		return receiverName(t.Elem())

	case *types.Named:
		return t.Obj().Name()

	case *types.Interface:
		return "interface"

	default:
		return "<invalid>"
	}
}

// String formats the name for debugging output.
func (n FuncName) String() string {
	var sb strings.Builder

	if n.Receiver != "" {
		sb.WriteByte('(')

		if n.Path != "" && n.Receiver != "interface" && n.Receiver != "<invalid>" {
			sb.WriteString(n.Path)
			sb.WriteByte('.')
		}

		sb.WriteString(n.Receiver)
		sb.WriteString(").")
	} else if n.Path != "" {
		sb.WriteString(n.Path)
		sb.WriteByte('.')
	}

	sb.WriteString(n.Name)

	return sb.String()
}
