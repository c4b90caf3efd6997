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
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/sharedparam/internal/handle"
	"fillmore-labs.com/sharedparam/internal/resolve"
)

// Classifier classifies the uses of handle parameters. It holds only shared, read-only state.
type Classifier struct {
	// Info is the type information of the analyzed package.
	Info *types.Info

	// Handles recognizes handle types and their methods.
	Handles handle.Recognizer

	// Resolver annotates values passed to callees.
	Resolver *resolve.Resolver
}

// Classify walks body once in source order and returns the uses of every binding,
// indexed like bindings.
func (c Classifier) Classify(ctx context.Context, body inspector.Cursor, bindings []Binding) [][]Use {
	defer trace.StartRegion(ctx, "Classify").End()

	uses := make([][]Use, len(bindings))
	if len(bindings) == 0 {
		return uses
	}

	index := make(map[*types.Var]int, len(bindings))
	for i, b := range bindings {
		if b.Var != nil {
			index[b.Var] = i
		}
	}

	for id := range body.Preorder((*ast.Ident)(nil)) {
		v, ok := c.Info.Uses[id.Node().(*ast.Ident)].(*types.Var)
		if !ok {
			continue
		}

		i, ok := index[v]
		if !ok {
			continue
		}

		uses[i] = append(uses[i], c.classify(id, body, bindings[i]))
	}

	return uses
}

// classify determines the kind of a single occurrence from its syntactic context.
func (c Classifier) classify(id, body inspector.Cursor, b Binding) Use {
	use := Use{Node: id.Node().(*ast.Ident)}

	if captured(id, body) {
		use.Kind = KindCapture
		use.anchor(id)

		return use
	}

	e := outerParen(id)
	use.anchor(e)

	switch kind, idx := e.ParentEdge(); kind {
	case edge.SelectorExpr_X:
		c.selection(e.Parent(), b, &use)

	case edge.CallExpr_Args:
		c.argument(e.Parent(), idx, b.Var.Type(), &use)

	case edge.ReturnStmt_Results:
		use.Kind = KindReturn

	case edge.AssignStmt_Lhs:
		use.Kind = KindMutate // reassignment

	case edge.AssignStmt_Rhs:
		if blankTarget(e.Parent().Node().(*ast.AssignStmt), idx) {
			use.Kind, use.Rewrite = KindAccess, RewriteKeep

			break
		}

		use.Kind = KindStore

	case edge.ValueSpec_Values,
		edge.CompositeLit_Elts,
		edge.KeyValueExpr_Key,
		edge.KeyValueExpr_Value,
		edge.SendStmt_Value,
		edge.IndexExpr_Index:
		use.Kind = KindStore

	case edge.BinaryExpr_X, edge.BinaryExpr_Y:
		if isComparison(e.Parent().Node()) {
			use.Kind = KindCompare
		}

	case edge.SwitchStmt_Tag, edge.CaseClause_List:
		use.Kind = KindCompare

	case edge.UnaryExpr_X:
		if addressed(e) {
			use.Kind = KindAddress
		}
	}

	return use
}

// selection classifies a selector expression on the handle.
func (c Classifier) selection(sel inspector.Cursor, b Binding, use *Use) {
	s, ok := c.Info.Selections[sel.Node().(*ast.SelectorExpr)]
	if !ok {
		return // unknown
	}

	use.anchor(sel)

	if s.Kind() == types.FieldVal {
		f := outerParen(sel)

		switch kind, _ := f.ParentEdge(); kind {
		case edge.AssignStmt_Lhs, edge.IncDecStmt_X:
			use.Kind = KindMutate

		default:
			use.Kind = KindAccess
			if addressed(f) {
				use.Kind = KindMutate
			}
		}

		return
	}

	fn, ok := s.Obj().(*types.Func)
	if !ok || s.Kind() != types.MethodVal {
		return
	}

	call, ok := calledWith(sel)
	if !ok {
		use.Kind = KindMethodValue

		return
	}

	use.anchor(call)

	switch c.Handles.Method(fn, b.Pointee) {
	case handle.MethodRelease:
		switch kind, _ := call.ParentEdge(); kind {
		case edge.ExprStmt_X, edge.DeferStmt_Call:
			use.Kind, use.Rewrite = KindRelease, RewriteDelete
			use.anchor(call.Parent())
		}

	case handle.MethodRetain:
		use.Kind = KindRetain

	case handle.MethodMutator:
		use.Kind = KindMutate

	case handle.MethodAccessor:
		if c.Handles.Conventional(fn) {
			use.Rewrite = RewriteIdent
		}

		c.pointer(call, b.Pointee, use)

	case handle.MethodLoader:
		if c.Handles.Conventional(fn) {
			use.Rewrite = RewriteDeref
			if needsParen(call) {
				use.Rewrite = RewriteDerefParen
			}
		}

		c.value(call, b.Pointee, use)

	case handle.MethodOther:
		use.Kind = KindAccess

	default:
		use.Kind = KindUnknown
	}
}

// argument classifies the handle passed as argument i of call.
func (c Classifier) argument(call inspector.Cursor, i int, arg types.Type, use *Use) {
	n := call.Node().(*ast.CallExpr)

	switch tv := c.Info.Types[n.Fun]; {
	case tv.IsType():
		use.Kind = KindStore // conversion

	case tv.IsBuiltin():
		use.Kind = KindPass
		if id, ok := ast.Unparen(n.Fun).(*ast.Ident); ok && id.Name == "append" {
			use.Kind = KindStore
		}

	default:
		use.Kind = KindPass
		c.annotate(n, i, arg, use)
	}
}

// annotate records the callee of call and the conversion of arg to its parameter i.
func (c Classifier) annotate(call *ast.CallExpr, i int, arg types.Type, use *Use) {
	use.Callee = typeutil.Callee(c.Info, call)

	if param := c.param(call, i); param != nil {
		use.Conversion = c.Resolver.Conversion(arg, param)
	}
}

// param returns the type of the parameter receiving argument i of call.
func (c Classifier) param(call *ast.CallExpr, i int) types.Type {
	tv, ok := c.Info.Types[call.Fun]
	if !ok || !tv.IsValue() {
		return nil // conversion or builtin
	}

	sig, ok := tv.Type.Underlying().(*types.Signature)
	if !ok {
		return nil
	}

	params := sig.Params()
	n := params.Len()

	if sig.Variadic() && i >= n-1 {
		t := params.At(n - 1).Type()
		if call.Ellipsis.IsValid() {
			return t
		}

		if s, ok := t.Underlying().(*types.Slice); ok {
			return s.Elem()
		}

		return t
	}

	if i < n {
		return params.At(i).Type()
	}

	return nil
}

// captured reports whether id is referenced from a function literal nested in body
// that is not invoked in place.
func captured(id, body inspector.Cursor) bool {
	start := body.Node().Pos()

	for lit := range id.Enclosing((*ast.FuncLit)(nil)) {
		if lit.Node().Pos() < start {
			return false // the analyzed function or one enclosing it
		}

		if !invokedInPlace(lit) {
			return true
		}
	}

	return false
}

// invokedInPlace reports whether the function literal is called immediately, synchronously or deferred.
func invokedInPlace(lit inspector.Cursor) bool {
	call, ok := calledWith(lit)
	if !ok {
		return false
	}

	kind, _ := call.ParentEdge()

	return kind != edge.GoStmt_Call
}

// calledWith returns the call expression calling fun.
func calledWith(fun inspector.Cursor) (inspector.Cursor, bool) {
	fun = outerParen(fun)
	if kind, _ := fun.ParentEdge(); kind != edge.CallExpr_Fun {
		return inspector.Cursor{}, false
	}

	return fun.Parent(), true
}

// outerParen returns the outermost parenthesized expression around e.
func outerParen(e inspector.Cursor) inspector.Cursor {
	for {
		if kind, _ := e.ParentEdge(); kind != edge.ParenExpr_X {
			return e
		}

		e = e.Parent()
	}
}

// needsParen reports whether a dereference replacing e must be parenthesized.
func needsParen(e inspector.Cursor) bool {
	switch kind, _ := e.ParentEdge(); kind {
	case edge.SelectorExpr_X,
		edge.IndexExpr_X,
		edge.IndexListExpr_X,
		edge.SliceExpr_X,
		edge.CallExpr_Fun,
		edge.TypeAssertExpr_X:
		return true

	default:
		return false
	}
}

// addressed reports whether the address of e is taken.
func addressed(e inspector.Cursor) bool {
	if kind, _ := e.ParentEdge(); kind != edge.UnaryExpr_X {
		return false
	}

	u, ok := e.Parent().Node().(*ast.UnaryExpr)

	return ok && u.Op == token.AND
}

func blankTarget(assign *ast.AssignStmt, i int) bool {
	if len(assign.Lhs) != len(assign.Rhs) {
		return false
	}

	id, ok := assign.Lhs[i].(*ast.Ident)

	return ok && id.Name == "_"
}

func isComparison(n ast.Node) bool {
	b, ok := n.(*ast.BinaryExpr)

	return ok && (b.Op == token.EQL || b.Op == token.NEQ)
}
