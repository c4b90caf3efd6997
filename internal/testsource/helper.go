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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the sharedparam analyzer by handling common
// boilerplate code for parsing and type-checking Go source fragments.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Prelude declares a shared-ownership handle type, a small type hierarchy
// and a few callees for fragments passed to [Parse].
const Prelude = `
type Shared[T any] struct{ ptr *T }

func (s Shared[T]) Get() *T          { return s.ptr }
func (s Shared[T]) Load() T          { return *s.ptr }
func (s Shared[T]) Clone() Shared[T] { return s }
func (s Shared[T]) Release()         {}
func (s Shared[T]) Valid() bool      { return s.ptr != nil }
func (s *Shared[T]) Reset()          { s.ptr = nil }
func (s *Shared[T]) Swap(o *Shared[T]) { s.ptr, o.ptr = o.ptr, s.ptr }
func (s Shared[T]) Zero() (z T) { return z }
func (s Shared[T]) CopyTo(o *Shared[T]) { *o = s }
func (s Shared[T]) Boxed() any { return s }

type Base struct{ Value int }

func (b *Base) Set(v int) { b.Value = v }
func (b Base) Read() int  { return b.Value }

type Derived struct{ Base }

type Shape interface{ Read() int }

func keep(Shared[Base])        {}
func keepAll(...Shared[Base])  {}
func keepAny(any)              {}
func pass[H any](H)            {}
func read(*Base)               {}
func readValue(Base)           {}
func show(Shape)               {}

var (
	global Shared[Base]
	sink   chan Shared[Base]
)
`

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is automatically wrapped in a function body `func _(p Shared[Base]) { ... }`
// following the [Prelude] within a package `test`. This allows testing statement-level code
// fragments against a handle parameter without manually constructing the surrounding scaffolding.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - inspector.Cursor: A cursor positioned at the wrapper function declaration.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, fn, body inspector.Cursor) {
	tb.Helper()

	fset, f = ParseFile(tb, Prelude+"\nfunc _(p Shared[Base]) {\n"+src+"\n}\n")

	fn, body = lastFuncDecl(f)
	if fn.Inspector() == nil {
		tb.Fatal("Can't find function")
	}

	return fset, f, fn, body
}

// ParseFile parses top-level declarations into an AST.
// The provided source `src` is prefixed with the package clause of package `test`.
func ParseFile(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()
	srcFile := wrapSource(src)

	f, err := parser.ParseFile(fset, filename, srcFile, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info.
// Use this helper when testing analyzer components that require type information
// (e.g. for method lookup, type identity, or selections).
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Instances:  make(map[*ast.Ident]types.Instance),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

func wrapSource(src string) *bytes.Buffer {
	const header = "package " + testpkg + "\n"

	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error

	return &srcFile
}

func lastFuncDecl(f *ast.File) (fn, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn, body = c, c.ChildAt(edge.FuncDecl_Body, -1)
	}

	return fn, body
}
