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

// Package resolve decides whether a value of one type may be substituted where another type is expected.
//
// The answer is a data query over an explicit edge table built once per package:
//
//  1. Identical types convert.
//  2. A struct converts to every type it embeds, directly or through a chain of embedded fields.
//  3. A named type converts implicitly to every interface its value or pointer method set implements.
//
// Everything else does not convert. Queries never fail and the table is never mutated after construction.
package resolve

import (
	"go/types"
	"slices"
)

// Conversion is the rule that makes one type usable as another.
type Conversion uint8

//go:generate go tool stringer -type Conversion -linecomment
const (
	// None indicates there is no conversion path.
	None Conversion = iota // none

	// Identity indicates identical types.
	Identity // identity

	// Embedding indicates a derived-to-base conversion through embedded fields.
	Embedding // embedding

	// Implicit indicates an implicit conversion to an interface.
	Implicit // implicit
)

// Resolver answers convertibility queries. It is safe for concurrent use.
type Resolver struct {
	// bases maps a named type to the named types it embeds directly.
	bases map[*types.TypeName][]*types.TypeName

	// candidates maps a named type to the interfaces it implements.
	candidates map[*types.TypeName][]candidate
}

// candidate is an entry in the conversion-candidate table.
type candidate struct {
	iface *types.TypeName

	// pointer indicates only the pointer method set implements iface.
	pointer bool
}

// New builds a [Resolver] from the types declared in pkg and its direct imports.
func New(pkg *types.Package) *Resolver {
	r := &Resolver{
		bases:      make(map[*types.TypeName][]*types.TypeName),
		candidates: make(map[*types.TypeName][]candidate),
	}

	if pkg == nil {
		return r
	}

	var named, ifaces []*types.TypeName

	for _, p := range append([]*types.Package{pkg}, pkg.Imports()...) {
		scope := p.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || tn.IsAlias() {
				continue
			}

			n, ok := tn.Type().(*types.Named)
			if !ok || n.TypeParams().Len() > 0 {
				continue
			}

			switch u := n.Underlying().(type) {
			case *types.Interface:
				ifaces = append(ifaces, tn)

			case *types.Struct:
				r.addEmbedded(tn, u)
				named = append(named, tn)

			default:
				named = append(named, tn)
			}
		}
	}

	for _, tn := range named {
		t, ptr := tn.Type(), types.NewPointer(tn.Type())
		for _, iface := range ifaces {
			i, _ := iface.Type().Underlying().(*types.Interface)
			if !i.IsMethodSet() {
				continue // constraint interface
			}

			switch {
			case types.Implements(t, i):
				r.candidates[tn] = append(r.candidates[tn], candidate{iface: iface})

			case types.Implements(ptr, i):
				r.candidates[tn] = append(r.candidates[tn], candidate{iface: iface, pointer: true})
			}
		}
	}

	return r
}

// addEmbedded records the embedding edges of a struct type.
func (r *Resolver) addEmbedded(tn *types.TypeName, s *types.Struct) {
	for i := range s.NumFields() {
		f := s.Field(i)
		if !f.Embedded() {
			continue
		}

		if base := typeName(f.Type()); base != nil {
			r.bases[tn] = append(r.bases[tn], base)
		}
	}
}

// IsConvertible reports whether a value of type from can be used where type to is expected.
func (r *Resolver) IsConvertible(from, to types.Type) bool {
	return r.Conversion(from, to) != None
}

// Conversion returns the first rule that makes from usable as to.
func (r *Resolver) Conversion(from, to types.Type) Conversion {
	if from == nil || to == nil {
		return None
	}

	if types.Identical(from, to) {
		return Identity
	}

	from, to = types.Unalias(from), types.Unalias(to)

	// Compare pointer types by their elements.
	if fp, ok := from.(*types.Pointer); ok {
		if tp, ok := to.(*types.Pointer); ok {
			if c := r.Conversion(fp.Elem(), tp.Elem()); c != Implicit {
				return c
			}

			return None
		}
	}

	if !isPointer(from) && !isPointer(to) && r.embeds(typeName(from), typeName(to)) {
		return Embedding
	}

	if r.implements(from, to) {
		return Implicit
	}

	return None
}

// embeds reports whether derived embeds base, possibly indirectly.
func (r *Resolver) embeds(derived, base *types.TypeName) bool {
	if derived == nil || base == nil {
		return false
	}

	seen := map[*types.TypeName]struct{}{derived: {}}
	queue := []*types.TypeName{derived}

	for len(queue) > 0 {
		tn := queue[0]
		queue = queue[1:]

		for _, b := range r.bases[tn] {
			if b == base {
				return true
			}

			if _, ok := seen[b]; ok {
				continue
			}

			seen[b] = struct{}{}
			queue = append(queue, b)
		}
	}

	return false
}

// implements consults the conversion-candidate table, falling back to assignability for unnamed interfaces.
func (r *Resolver) implements(from, to types.Type) bool {
	if !types.IsInterface(to) || isPointer(to) {
		return false
	}

	if _, named := to.(*types.Named); !named {
		return types.AssignableTo(from, to)
	}

	tn, iface := typeName(from), typeName(to)
	if tn == nil {
		return false
	}

	pointer := isPointer(from)

	return slices.ContainsFunc(r.candidates[tn], func(c candidate) bool {
		return c.iface == iface && (pointer || !c.pointer)
	})
}

func isPointer(t types.Type) bool {
	_, ok := t.(*types.Pointer)

	return ok
}

// typeName returns the declaring type name of a (possibly pointer to) named type.
func typeName(t types.Type) *types.TypeName {
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	if n, ok := t.(*types.Named); ok {
		return n.Origin().Obj()
	}

	return nil
}
