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

package handle

import "go/types"

// Method describes what a method does to a handle and its pointee.
type Method uint8

//go:generate go tool stringer -type Method -trimprefix Method
const (
	// MethodOther is a method without arguments whose results can't hold the handle.
	MethodOther Method = iota

	// MethodAccessor returns a pointer to the pointee.
	MethodAccessor

	// MethodLoader returns a copy of the pointee.
	MethodLoader

	// MethodRetain creates an additional owned reference.
	MethodRetain

	// MethodRelease gives up the owned reference.
	MethodRelease

	// MethodMutator changes the sharing relationship of the handle itself.
	MethodMutator

	// MethodUnknown may let the handle escape through its arguments or results.
	MethodUnknown
)

// Method classifies a method fn called on a handle with the given pointee.
//
// Accessors and loaders are recognized by shape. With a pointer receiver, the name has to be
// configured as well, since such a method could also modify the handle.
func (r Recognizer) Method(fn *types.Func, pointee types.Type) Method {
	name := fn.Name()

	switch {
	case contains(r.release, name):
		return MethodRelease

	case contains(r.retain, name):
		return MethodRetain

	case contains(r.mutate, name):
		return MethodMutator
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return MethodUnknown
	}

	pointer := false
	if recv := sig.Recv(); recv != nil {
		_, pointer = types.Unalias(recv.Type()).(*types.Pointer)
	}

	if m := shape(sig, pointee); m != MethodOther && (!pointer || r.Conventional(fn)) {
		return m
	}

	if pointer {
		return MethodMutator
	}

	results := sig.Results()
	for i := range results.Len() {
		if r.IsHandle(results.At(i).Type()) {
			return MethodRetain
		}
	}

	if sig.Params().Len() > 0 {
		return MethodUnknown
	}

	for i := range results.Len() {
		if r.mayHold(results.At(i).Type(), nil) {
			return MethodUnknown
		}
	}

	return MethodOther
}

// Conventional reports whether fn is named like an accessor or loader, so its calls may be rewritten.
func (r Recognizer) Conventional(fn *types.Func) bool {
	return contains(r.access, fn.Name()) || contains(r.load, fn.Name())
}

// shape recognizes accessors and loaders by their signature.
func shape(sig *types.Signature, pointee types.Type) Method {
	results := sig.Results()
	if results.Len() != 1 || sig.Params().Len() != 0 {
		return MethodOther
	}

	switch res := results.At(0).Type(); {
	case types.Identical(res, pointee):
		return MethodLoader

	case isPointerTo(res, pointee):
		return MethodAccessor

	default:
		return MethodOther
	}
}

func isPointerTo(t, elem types.Type) bool {
	ptr, ok := types.Unalias(t).(*types.Pointer)

	return ok && types.Identical(ptr.Elem(), elem)
}

// mayHold reports whether a value of type t could contain a copy of a handle.
// Interfaces, type parameters and functions are assumed to.
func (r Recognizer) mayHold(t types.Type, seen map[*types.Named]struct{}) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		return false

	case *types.Named:
		if r.IsHandle(t) {
			return true
		}

		if _, ok := seen[t]; ok {
			return false
		}

		if seen == nil {
			seen = make(map[*types.Named]struct{})
		}

		seen[t] = struct{}{}

		return r.mayHold(t.Underlying(), seen)

	case *types.Pointer:
		return r.mayHold(t.Elem(), seen)

	case *types.Slice:
		return r.mayHold(t.Elem(), seen)

	case *types.Array:
		return r.mayHold(t.Elem(), seen)

	case *types.Chan:
		return r.mayHold(t.Elem(), seen)

	case *types.Map:
		return r.mayHold(t.Key(), seen) || r.mayHold(t.Elem(), seen)

	case *types.Struct:
		for i := range t.NumFields() {
			if r.mayHold(t.Field(i).Type(), seen) {
				return true
			}
		}

		return false

	default:
		return true
	}
}
