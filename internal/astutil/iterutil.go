// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/ast"
	"iter"
)

// Param is a single parameter of a function signature.
type Param struct {
	// Field is the field declaring the parameter, possibly together with others.
	Field *ast.Field

	// Name is the parameter name, nil for unnamed parameters.
	Name *ast.Ident

	// Position is the zero-based position of the parameter in the signature.
	Position int
}

// AllParams yields all parameters of a parameter list, including unnamed and blank ones.
func AllParams(params *ast.FieldList) iter.Seq[Param] {
	if params == nil {
		return func(func(Param) bool) {}
	}

	return func(yield func(Param) bool) {
		position := 0

		for _, field := range params.List {
			if len(field.Names) == 0 {
				if !yield(Param{Field: field, Position: position}) {
					return
				}

				position++

				continue
			}

			for _, id := range field.Names {
				if !yield(Param{Field: field, Name: id, Position: position}) {
					return
				}

				position++
			}
		}
	}
}
