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

package usage

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// pointer classifies the use of e, an expression yielding a pointer to the pointee.
func (c Classifier) pointer(e inspector.Cursor, pointee types.Type, use *Use) {
	e = outerParen(e)

	switch kind, idx := e.ParentEdge(); kind {
	case edge.SelectorExpr_X:
		use.Kind = KindAccess
		use.MutatesPointee = c.selected(e.Parent())

	case edge.StarExpr_X:
		c.value(e.Parent(), pointee, use)

	case edge.IndexExpr_X, edge.SliceExpr_X, edge.RangeStmt_X:
		use.Kind = KindAccess
		use.MutatesPointee = kind == edge.SliceExpr_X || c.mutated(e)

	case edge.CallExpr_Args:
		use.Kind = KindPointee
		use.MutatesPointee = true
		c.annotate(e.Parent().Node().(*ast.CallExpr), idx, types.NewPointer(pointee), use)

	case edge.BinaryExpr_X, edge.BinaryExpr_Y:
		if isComparison(e.Parent().Node()) {
			use.Kind = KindCompare
		}

	case edge.AssignStmt_Rhs,
		edge.ValueSpec_Values,
		edge.ReturnStmt_Results,
		edge.CompositeLit_Elts,
		edge.KeyValueExpr_Value,
		edge.SendStmt_Value:
		use.Kind = KindPointee // pointer alias
		use.MutatesPointee = true
	}
}

// value classifies the use of e, an expression yielding the pointee itself.
func (c Classifier) value(e inspector.Cursor, pointee types.Type, use *Use) {
	e = outerParen(e)

	if kind, idx := e.ParentEdge(); kind == edge.CallExpr_Args {
		use.Kind = KindPointee
		c.annotate(e.Parent().Node().(*ast.CallExpr), idx, pointee, use)

		return
	}

	use.Kind = KindDeref
	use.MutatesPointee = c.mutated(e)
}

// selected reports whether the selector expression sel, selecting from the pointee, may modify it.
func (c Classifier) selected(sel inspector.Cursor) bool {
	s, ok := c.Info.Selections[sel.Node().(*ast.SelectorExpr)]
	if !ok {
		return false
	}

	if s.Kind() == types.FieldVal {
		return c.mutated(sel)
	}

	return pointerReceiver(s.Obj())
}

// mutated reports whether e, denoting a location inside the pointee, is written, addressed
// or has a pointer method called on it.
func (c Classifier) mutated(e inspector.Cursor) bool {
	for {
		e = outerParen(e)

		switch kind, _ := e.ParentEdge(); kind {
		case edge.SelectorExpr_X:
			s, ok := c.Info.Selections[e.Parent().Node().(*ast.SelectorExpr)]
			if !ok {
				return false
			}

			if s.Kind() != types.FieldVal {
				return pointerReceiver(s.Obj())
			}

			e = e.Parent()

		case edge.IndexExpr_X:
			e = e.Parent()

		case edge.AssignStmt_Lhs, edge.IncDecStmt_X, edge.RangeStmt_Key, edge.RangeStmt_Value, edge.SliceExpr_X:
			return true

		case edge.UnaryExpr_X:
			return addressed(e)

		default:
			return false
		}
	}
}

func pointerReceiver(obj types.Object) bool {
	sig, ok := obj.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}

	_, ptr := sig.Recv().Type().(*types.Pointer)

	return ptr
}
