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

// Package usage classifies every occurrence of a shared-ownership handle parameter in a function body.
//
// Each occurrence becomes a [Use] of a fixed [Kind]. Kinds fall into three classes: read-only uses
// need no ownership, ownership-extending uses let the handle outlive the call, and ambiguous syntax
// is treated like an extending use.
package usage

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"fillmore-labs.com/sharedparam/internal/astutil"
	"fillmore-labs.com/sharedparam/internal/handle"
)

// Binding is a function parameter declared as a handle by value.
type Binding struct {
	// Var is the parameter variable, nil for unnamed and blank parameters.
	Var *types.Var

	// Field is the field declaring the parameter.
	Field *ast.Field

	// Ident is the parameter name in the declaration, nil for unnamed parameters.
	Ident *ast.Ident

	// Position is the zero-based position in the parameter list.
	Position int

	// Pointee is the type the handle refers to.
	Pointee types.Type
}

// Named reports whether the parameter can be referenced in the body.
func (b Binding) Named() bool {
	return b.Ident != nil && b.Ident.Name != "_"
}

// Name returns the parameter name, empty for unnamed parameters.
func (b Binding) Name() string {
	if b.Ident == nil {
		return ""
	}

	return b.Ident.Name
}

// Label renders the parameter for messages: its quoted name, or its one-based position
// when it can't be referenced.
func (b Binding) Label() string {
	if !b.Named() {
		return "#" + strconv.Itoa(b.Position+1)
	}

	return "'" + b.Ident.Name + "'"
}

// Pos returns the position diagnostics for the parameter are reported at.
func (b Binding) Pos() token.Pos {
	if !b.Named() {
		return b.Field.Type.Pos()
	}

	return b.Ident.Pos()
}

// Bindings lists the parameters of ftype that are handles passed by value.
// Unnamed and blank parameters are included, they can't have uses.
// Pointers to handles are never bound.
func Bindings(info *types.Info, handles handle.Recognizer, ftype *ast.FuncType) []Binding {
	var bindings []Binding

	for param := range astutil.AllParams(ftype.Params) {
		b := Binding{Field: param.Field, Ident: param.Name, Position: param.Position}

		var typ types.Type

		switch {
		case b.Named():
			v, ok := info.Defs[param.Name].(*types.Var)
			if !ok {
				continue
			}

			b.Var, typ = v, v.Type()

		default:
			if _, variadic := param.Field.Type.(*ast.Ellipsis); variadic {
				continue
			}

			typ = info.TypeOf(param.Field.Type)
		}

		if typ == nil {
			continue
		}

		pointee, ok := handles.Pointee(typ)
		if !ok {
			continue
		}

		b.Pointee = pointee
		bindings = append(bindings, b)
	}

	return bindings
}
