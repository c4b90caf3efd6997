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

package report

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/sharedparam/internal/astutil"
	"fillmore-labs.com/sharedparam/internal/config"
	"fillmore-labs.com/sharedparam/internal/usage"
)

// edits creates the text edits changing p to a pointer to its pointee.
//
// Only function declarations are rewritten, and only when the parameter is the single named parameter of its field,
// the handle type is written as an index expression and every use is rewritable.
func (e Emitter) edits(fn ast.Node, p Parameter) ([]analysis.TextEdit, bool) {
	if !e.Behavior.Enabled(config.SuggestFixes) || e.File.Generated() || !p.Summary.Rewritable() {
		return nil, false
	}

	if _, ok := fn.(*ast.FuncDecl); !ok || !p.Named() || len(p.Field.Names) != 1 {
		return nil, false
	}

	index, ok := ast.Unparen(p.Field.Type).(*ast.IndexExpr)
	if !ok {
		return nil, false
	}

	name := p.Name()

	edits := make([]analysis.TextEdit, 0, 1+len(p.Uses))
	edits = append(edits, analysis.TextEdit{
		Pos:     p.Field.Type.Pos(),
		End:     p.Field.Type.End(),
		NewText: []byte("*" + types.ExprString(index.Index)),
	})

	for _, use := range p.Uses {
		var text string

		switch use.Rewrite {
		case usage.RewriteIdent:
			text = name

		case usage.RewriteDeref:
			text = "*" + name

		case usage.RewriteDerefParen:
			text = "(*" + name + ")"

		case usage.RewriteDelete:
			edits = append(edits, e.deletion(use.At))

			continue

		case usage.RewriteKeep:
			continue

		default:
			return nil, false
		}

		edits = append(edits, analysis.TextEdit{Pos: use.Expr.Pos(), End: use.Expr.End(), NewText: []byte(text)})
	}

	return edits, true
}

// deletion removes a statement, including its line when nothing else is on it.
func (e Emitter) deletion(at astutil.NodeIndex) analysis.TextEdit {
	c := at.Cursor(e.Inspector)
	pos, end := c.Node().Pos(), c.Node().End()

	if e.ownsLines(c) {
		if next := e.File.NextLineStart(end); next.IsValid() {
			return analysis.TextEdit{Pos: e.File.LineStart(pos), End: next}
		}
	}

	return analysis.TextEdit{Pos: pos, End: end}
}

// ownsLines reports whether no other statement or brace shares a line with the statement at c.
func (e Emitter) ownsLines(c inspector.Cursor) bool {
	stmt := c.Node()

	before, after := token.NoPos, token.NoPos

	if prev, ok := c.PrevSibling(); ok {
		before = prev.Node().End()
	} else if block, ok := c.Parent().Node().(*ast.BlockStmt); ok {
		before = block.Lbrace
	}

	if next, ok := c.NextSibling(); ok {
		after = next.Node().Pos()
	} else if block, ok := c.Parent().Node().(*ast.BlockStmt); ok {
		after = block.Rbrace
	}

	if before.IsValid() && e.File.Line(before) >= e.File.Line(stmt.Pos()) {
		return false
	}

	return !after.IsValid() || e.File.Line(after) > e.File.Line(stmt.End())
}
