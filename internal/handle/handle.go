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

// Package handle recognizes shared-ownership handle types and classifies their methods.
//
// A handle is a generic named type with exactly one type argument, the pointee.
// It is either listed by qualified name in the configuration, or detected by its
// method set: it must have a retain method returning the same generic type and
// a release method.
package handle

import (
	"go/types"

	"fillmore-labs.com/sharedparam/internal/config"
)

// Recognizer identifies handle types. It holds no mutable state and is safe for concurrent use.
type Recognizer struct {
	types   map[qualifiedName]struct{}
	retain  map[string]struct{}
	release map[string]struct{}
	mutate  map[string]struct{}
	access  map[string]struct{}
	load    map[string]struct{}
	detect  bool
}

type qualifiedName struct{ path, name string }

// New creates a [Recognizer] from a handle configuration.
func New(h config.Handles) Recognizer {
	r := Recognizer{
		types:   make(map[qualifiedName]struct{}, len(h.Types)),
		retain:  set(h.Retain),
		release: set(h.Release),
		mutate:  set(h.Mutate),
		access:  set(h.Access),
		load:    set(h.Load),
		detect:  !h.NoDetect,
	}

	for _, q := range h.Types {
		if path, name, ok := config.SplitQualified(q); ok {
			r.types[qualifiedName{path, name}] = struct{}{}
		}
	}

	return r
}

func set(names []string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}

	return s
}

// Pointee returns the pointee type when t is a handle type.
func (r Recognizer) Pointee(t types.Type) (types.Type, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}

	args := named.TypeArgs()
	if args.Len() != 1 {
		return nil, false
	}

	origin := named.Origin()

	if obj := origin.Obj(); obj.Pkg() != nil {
		if _, ok := r.types[qualifiedName{obj.Pkg().Path(), obj.Name()}]; ok {
			return args.At(0), true
		}
	}

	if !r.detect || !r.detected(named) {
		return nil, false
	}

	return args.At(0), true
}

// IsHandle reports whether t is a handle type.
func (r Recognizer) IsHandle(t types.Type) bool {
	_, ok := r.Pointee(t)

	return ok
}

// detected checks the method set of named for a retain and a release method.
func (r Recognizer) detected(named *types.Named) bool {
	var retain, release bool

	origin := named.Origin()

	for i := range named.NumMethods() {
		fn := named.Method(i)

		switch name := fn.Name(); {
		case contains(r.release, name):
			release = true

		case contains(r.retain, name):
			sig, ok := fn.Type().(*types.Signature)
			if !ok || sig.Results().Len() != 1 {
				continue
			}

			if res, ok := types.Unalias(sig.Results().At(0).Type()).(*types.Named); ok && res.Origin() == origin {
				retain = true
			}
		}
	}

	return retain && release
}

func contains(s map[string]struct{}, name string) bool {
	_, ok := s[name]

	return ok
}
