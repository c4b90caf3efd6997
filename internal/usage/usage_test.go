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

package usage_test

import (
	"fmt"
	"go/ast"
	"slices"
	"testing"

	"fillmore-labs.com/sharedparam/internal/config"
	"fillmore-labs.com/sharedparam/internal/handle"
	"fillmore-labs.com/sharedparam/internal/resolve"
	"fillmore-labs.com/sharedparam/internal/testsource"
	. "fillmore-labs.com/sharedparam/internal/usage"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		src      string
		kinds    []Kind
		mutates  bool
		rewrites bool
	}{
		// keep-sorted start
		{"address", `_ = &p`, []Kind{KindAddress}, false, false},
		{"any", `keepAny(p)`, []Kind{KindPass}, false, false},
		{"append", `s := append([]Shared[Base]{}, p); _ = s`, []Kind{KindStore}, false, false},
		{"blank", `_ = p`, []Kind{KindAccess}, false, true},
		{"boxed", `_ = p.Boxed()`, []Kind{KindUnknown}, false, false},
		{"capture", `f := func() { _ = p.Get() }; f()`, []Kind{KindCapture}, false, false},
		{"compare", `_ = p == global`, []Kind{KindCompare}, false, false},
		{"composite", `_ = []Shared[Base]{p}`, []Kind{KindStore}, false, false},
		{"conversion", `_ = any(p)`, []Kind{KindStore}, false, false},
		{"copy to", `p.CopyTo(&global)`, []Kind{KindUnknown}, false, false},
		{"deferred release", `defer p.Release()`, []Kind{KindRelease}, false, true},
		{"define", `q := p; _ = q`, []Kind{KindStore}, false, false},
		{"deref", `b := *p.Get(); _ = b`, []Kind{KindDeref}, false, true},
		{"deref write", `*p.Get() = Base{}`, []Kind{KindDeref}, true, true},
		{"field address", `_ = &p.Get().Value`, []Kind{KindAccess}, true, true},
		{"field read", `_ = p.Get().Value`, []Kind{KindAccess}, false, true},
		{"field write", `p.Get().Value = 1`, []Kind{KindAccess}, true, true},
		{"generic", `pass(p)`, []Kind{KindPass}, false, false},
		{"goroutine", `go func() { _ = p.Get().Value }()`, []Kind{KindCapture}, false, false},
		{"increment", `p.Get().Value++`, []Kind{KindAccess}, true, true},
		{"interface argument", `show(p.Get())`, []Kind{KindPointee}, true, true},
		{"invoked literal", `func() { _ = p.Get().Value }()`, []Kind{KindAccess}, false, true},
		{"loader", `_ = p.Load().Value`, []Kind{KindDeref}, false, true},
		{"loader argument", `readValue(p.Load())`, []Kind{KindPointee}, false, true},
		{"map key", `m := map[Shared[Base]]int{}; _ = m[p]`, []Kind{KindStore}, false, false},
		{"method value", `f := p.Get; _ = f`, []Kind{KindMethodValue}, false, false},
		{"mixed", `_ = p.Get().Value; keep(p)`, []Kind{KindAccess, KindPass}, false, false},
		{"mutator", `p.Reset()`, []Kind{KindMutate}, false, false},
		{"other method", `_ = p.Valid()`, []Kind{KindAccess}, false, false},
		{"pass", `keep(p)`, []Kind{KindPass}, false, false},
		{"pointer argument", `read(p.Get())`, []Kind{KindPointee}, true, true},
		{"pointer method", `p.Get().Set(1)`, []Kind{KindAccess}, true, true},
		{"reassign", `p = global`, []Kind{KindMutate}, false, false},
		{"release", `p.Release()`, []Kind{KindRelease}, false, true},
		{"release goroutine", `go p.Release()`, []Kind{KindUnknown}, false, false},
		{"retain", `q := p.Clone(); _ = q`, []Kind{KindRetain}, false, false},
		{"send", `sink <- p`, []Kind{KindStore}, false, false},
		{"store", `global = p`, []Kind{KindStore}, false, false},
		{"swap", `p.Swap(&global)`, []Kind{KindMutate}, false, false},
		{"unconventional loader", `_ = p.Zero().Value`, []Kind{KindDeref}, false, false},
		{"unused", ``, nil, false, true},
		{"value method", `_ = p.Get().Read()`, []Kind{KindAccess}, false, true},
		{"variadic", `keepAll(p)`, []Kind{KindPass}, false, false},
		// keep-sorted end
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uses := classify(t, tt.src)

			if got, want := len(uses), len(tt.kinds); got != want {
				t.Fatalf("Got %d uses, want %d: %v", got, want, uses)
			}

			mutates, rewrites := false, true

			for i, use := range uses {
				if got, want := use.Kind, tt.kinds[i]; got != want {
					t.Errorf("Got use %d kind %s, want %s", i, got, want)
				}

				mutates = mutates || use.MutatesPointee
				rewrites = rewrites && use.Rewrite.Rewritable()
			}

			if mutates != tt.mutates {
				t.Errorf("Got MutatesPointee = %v, want %v", mutates, tt.mutates)
			}

			if rewrites != tt.rewrites {
				t.Errorf("Got rewritable = %v, want %v", rewrites, tt.rewrites)
			}
		})
	}
}

func TestClassifyConversion(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want resolve.Conversion
	}{
		{"handle", `keep(p)`, resolve.Identity},
		{"any", `keepAny(p)`, resolve.Implicit},
		{"pointer", `read(p.Get())`, resolve.Identity},
		{"interface", `show(p.Get())`, resolve.Implicit},
		{"value", `readValue(*p.Get())`, resolve.Identity},
		{"builtin", `println(p.Get())`, resolve.None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uses := classify(t, tt.src)
			if len(uses) != 1 {
				t.Fatalf("Got %d uses, want 1", len(uses))
			}

			if got := uses[0].Conversion; got != tt.want {
				t.Errorf("Got Conversion = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyRewrite(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want Rewrite
	}{
		{"accessor", `_ = p.Get().Value`, RewriteIdent},
		{"loader", `b := p.Load(); _ = b`, RewriteDeref},
		{"loader selector", `_ = p.Load().Value`, RewriteDerefParen},
		{"release", `p.Release()`, RewriteDelete},
		{"blank", `_ = p`, RewriteKeep},
		{"store", `global = p`, RewriteNone},
		{"unconventional loader", `b := p.Zero(); _ = b`, RewriteNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uses := classify(t, tt.src)
			if len(uses) != 1 {
				t.Fatalf("Got %d uses, want 1", len(uses))
			}

			if got := uses[0].Rewrite; got != tt.want {
				t.Errorf("Got Rewrite = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKindClass(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		kind Kind
		want Class
	}{
		{KindAccess, ReadOnly},
		{KindDeref, ReadOnly},
		{KindPointee, ReadOnly},
		{KindCompare, ReadOnly},
		{KindRelease, ReadOnly},
		{KindStore, Extending},
		{KindReturn, Extending},
		{KindPass, Extending},
		{KindCapture, Extending},
		{KindMutate, Extending},
		{KindRetain, Extending},
		{KindAddress, Ambiguous},
		{KindMethodValue, Ambiguous},
		{KindUnknown, Ambiguous},
	}

	for _, tt := range tests {
		if got := tt.kind.Class(); got != tt.want {
			t.Errorf("Got %s.Class() = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestBindings(t *testing.T) {
	t.Parallel()

	const src = testsource.Prelude + `
func f(a Shared[Base], b *Shared[Base], _ Shared[Base], c int, d, e Shared[Derived], g ...Shared[Base]) {}

func u(int, Shared[Base], ...Shared[Base]) {}
`

	fset, f := testsource.ParseFile(t, src)
	_, info := testsource.Check(t, fset, f)

	handles := handle.New(config.DefaultHandles())

	tests := [...]struct {
		fn   string
		want []string // label@position pointee
	}{
		{"f", []string{"'a'@0 test.Base", "#3@2 test.Base", "'d'@4 test.Derived", "'e'@5 test.Derived"}},
		{"u", []string{"#2@1 test.Base"}},
	}

	for _, tt := range tests {
		var ftype *ast.FuncType

		for _, decl := range f.Decls {
			if fd, ok := decl.(*ast.FuncDecl); ok && fd.Name.Name == tt.fn {
				ftype = fd.Type
			}
		}

		if ftype == nil {
			t.Fatalf("Function %s not found", tt.fn)
		}

		var got []string
		for _, b := range Bindings(info, handles, ftype) {
			got = append(got, fmt.Sprintf("%s@%d %s", b.Label(), b.Position, b.Pointee))

			if b.Named() != (b.Var != nil) {
				t.Errorf("Got binding %s with Named() = %v and Var %v", b.Label(), b.Named(), b.Var)
			}
		}

		if !slices.Equal(got, tt.want) {
			t.Errorf("Got bindings of %s %v, want %v", tt.fn, got, tt.want)
		}
	}
}

func classify(tb testing.TB, src string) []Use {
	tb.Helper()

	fset, f, fn, body := testsource.Parse(tb, src)
	pkg, info := testsource.Check(tb, fset, f)

	handles := handle.New(config.DefaultHandles())

	bindings := Bindings(info, handles, fn.Node().(*ast.FuncDecl).Type)
	if len(bindings) != 1 {
		tb.Fatalf("Got %d bindings, want 1", len(bindings))
	}

	c := Classifier{Info: info, Handles: handles, Resolver: resolve.New(pkg)}

	return c.Classify(tb.Context(), body, bindings)[0]
}
