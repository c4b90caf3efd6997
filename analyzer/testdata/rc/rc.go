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

// Package rc provides a reference-counted shared-ownership handle.
package rc

import "sync/atomic"

// Shared is a reference-counted handle to a value of type T.
type Shared[T any] struct{ ref *ref[T] }

type ref[T any] struct {
	value T
	count atomic.Int64
}

// New returns a handle owning a new reference to value.
func New[T any](value T) Shared[T] {
	r := &ref[T]{value: value}
	r.count.Store(1)

	return Shared[T]{r}
}

// Get returns a pointer to the shared value.
func (s Shared[T]) Get() *T { return &s.ref.value }

// Load returns a copy of the shared value.
func (s Shared[T]) Load() T { return s.ref.value }

// Clone returns an additional owned reference.
func (s Shared[T]) Clone() Shared[T] {
	s.ref.count.Add(1)

	return s
}

// Release gives up the owned reference.
func (s Shared[T]) Release() { s.ref.count.Add(-1) }

// Valid reports whether s refers to a value.
func (s Shared[T]) Valid() bool { return s.ref != nil }

// Reset releases the reference and clears s.
func (s *Shared[T]) Reset() {
	s.Release()
	s.ref = nil
}

// Swap exchanges the references of s and o.
func (s *Shared[T]) Swap(o *Shared[T]) { s.ref, o.ref = o.ref, s.ref }

// Snapshot returns a copy of the shared value.
func (s Shared[T]) Snapshot() T { return s.ref.value }

// CopyTo stores an additional reference in dst.
func (s Shared[T]) CopyTo(dst *Shared[T]) { *dst = s.Clone() }

// Boxed returns the handle as an interface value.
func (s Shared[T]) Boxed() any { return s }
