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
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/sharedparam/internal/astutil"
	"fillmore-labs.com/sharedparam/internal/resolve"
)

// Kind is the syntactic role of a single occurrence of a handle parameter.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindUnknown is any syntax not covered by another kind.
	KindUnknown Kind = iota // unknown

	// KindAccess reads through the handle: a pointee field or method, or a read-only handle method.
	KindAccess // access

	// KindDeref loads a copy of the pointee.
	KindDeref // deref

	// KindPointee passes the pointee, or a pointer to it, to a callee.
	KindPointee // pointee

	// KindCompare compares the handle with another value.
	KindCompare // compare

	// KindRelease gives up the reference owned by the parameter in a statement of its own.
	KindRelease // release

	// KindStore copies the handle into a variable, container, channel or conversion.
	KindStore // store

	// KindReturn returns the handle.
	KindReturn // return

	// KindPass passes the handle by value to a callee.
	KindPass // pass

	// KindCapture references the handle from a function literal that may outlive the call.
	KindCapture // capture

	// KindMutate changes the sharing relationship of the handle itself.
	KindMutate // mutate

	// KindRetain creates an additional owned reference.
	KindRetain // retain

	// KindAddress takes the address of the handle.
	KindAddress // address

	// KindMethodValue binds a handle method without calling it.
	KindMethodValue // method value
)

// Class is the ownership class of a [Kind].
type Class uint8

const (
	// ReadOnly uses need no ownership of the pointee.
	ReadOnly Class = iota

	// Extending uses let shared ownership outlive the call.
	Extending

	// Ambiguous uses can't be classified and are treated as [Extending].
	Ambiguous
)

func (c Class) String() string {
	switch c {
	case ReadOnly:
		return "read-only"

	case Extending:
		return "ownership-extending"

	case Ambiguous:
		return "ambiguous"

	default:
		return "invalid"
	}
}

// Class returns the ownership class of k.
func (k Kind) Class() Class {
	switch k {
	case KindAccess, KindDeref, KindPointee, KindCompare, KindRelease:
		return ReadOnly

	case KindStore, KindReturn, KindPass, KindCapture, KindMutate, KindRetain:
		return Extending

	default:
		return Ambiguous
	}
}

// Rewrite describes how a use changes when the parameter becomes a pointer to the pointee.
type Rewrite uint8

const (
	// RewriteNone marks a use that can't be rewritten mechanically.
	RewriteNone Rewrite = iota

	// RewriteKeep marks a use that stays valid unchanged.
	RewriteKeep

	// RewriteIdent replaces the use with the parameter.
	RewriteIdent

	// RewriteDeref replaces the use with a dereference of the parameter.
	RewriteDeref

	// RewriteDerefParen replaces the use with a parenthesized dereference of the parameter.
	RewriteDerefParen

	// RewriteDelete removes the statement.
	RewriteDelete
)

// Rewritable reports whether the use survives the signature change.
func (r Rewrite) Rewritable() bool {
	return r != RewriteNone
}

// Use is a single classified occurrence of a handle parameter.
type Use struct {
	// Kind is the syntactic role of the occurrence.
	Kind Kind

	// Node is the referencing identifier.
	Node *ast.Ident

	// Expr is the expression or statement the classification is anchored at, the target of Rewrite.
	Expr ast.Node

	// At is the inspector index of Expr.
	At astutil.NodeIndex

	// Rewrite describes the mechanical rewrite of Expr.
	Rewrite Rewrite

	// MutatesPointee is set when the use may modify the pointee.
	MutatesPointee bool

	// Conversion is the conversion from the passed value to the parameter of Callee.
	Conversion resolve.Conversion

	// Callee is the called function, if known.
	Callee types.Object
}

// Pos returns the position of the referencing identifier.
func (u Use) Pos() token.Pos {
	return u.Node.Pos()
}

// anchor sets the expression or statement the use is attributed to.
func (u *Use) anchor(c inspector.Cursor) {
	u.Expr, u.At = c.Node(), astutil.NodeIndexOf(c)
}

// Class returns the ownership class of the use.
func (u Use) Class() Class {
	return u.Kind.Class()
}
