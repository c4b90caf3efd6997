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

package a

import "test/rc"

type Base struct{ Value int }

func (b *Base) Set(v int) { b.Value = v }

func (b Base) Read() int { return b.Value }

type Derived struct{ Base }

var global rc.Shared[Base]

func function(p rc.Shared[Base]) { // want `Parameter 'p' incurs an unnecessary reference count increment and decrement per call, accept a read-only \*Base instead \(sp:ro\)`
	a := 5
	a += p.Get().Value
	_ = a
}

func function2(a int, b float64, p rc.Shared[Base]) { // want `Parameter 'p' is unused but incurs an unnecessary reference count increment and decrement per call, accept a read-only \*Base instead \(sp:unused\)`
}

func forward(p rc.Shared[Base]) {
	function(p)
}

func store(p rc.Shared[Base]) {
	global = p
}

func returned(p rc.Shared[Base]) rc.Shared[Base] {
	return p
}

func cached(cache map[string]rc.Shared[Base], key string, p rc.Shared[Base]) {
	cache[key] = p
}

func contaminated(p rc.Shared[Base]) int {
	v := p.Get().Value
	global = p

	return v
}

func mutating(p rc.Shared[Base]) { // want `accept \*Base instead \(sp:mut\)`
	p.Get().Set(1)
}

func deferred(p rc.Shared[Base]) int { // want `accept a read-only \*Base instead \(sp:ro\)`
	defer p.Release()
	return p.Load().Value + p.Get().Read()
}

func derived(p rc.Shared[Derived]) int { // want `accept a read-only \*Derived instead \(sp:ro\)`
	return p.Get().Value
}

func suppressed(p rc.Shared[Base]) int { //nolint:sharedparam
	return p.Get().Value
}

func byReference(p *rc.Shared[Base]) int {
	return p.Get().Value
}

func retained(p rc.Shared[Base]) rc.Shared[Base] {
	return p.Clone()
}

func spawned(p rc.Shared[Base]) {
	go func() {
		_ = p.Get().Value
	}()
}

func reset(p rc.Shared[Base]) {
	p.Reset()
}

func valid(p rc.Shared[Base]) bool { // want `Parameter 'p' incurs .* \(sp:ro\)`
	return p.Valid()
}

func pair(p, q rc.Shared[Base]) int { // want `Parameter 'p' .* \(sp:ro\)` `Parameter 'q' .* \(sp:ro\)`
	return p.Get().Value + q.Get().Value
}

func generic[T any](p rc.Shared[T]) T { // want `accept a read-only \*T instead \(sp:ro\)`
	return p.Load()
}

func upcast(p rc.Shared[Derived]) int { // want `accept \*Derived instead \(sp:mut\)`
	return readBase(&p.Get().Base)
}

func readBase(b *Base) int { return b.Value }

var callback = func(p rc.Shared[Base]) int { // want `Parameter 'p' .* \(sp:ro\)`
	return p.Get().Value
}

type Holder struct{ item rc.Shared[Base] }

func (h *Holder) Put(p rc.Shared[Base]) {
	h.item = p
}

func (h Holder) Sum(p rc.Shared[Base]) int { // want `accept a read-only \*Base instead \(sp:ro\)`
	return h.item.Get().Value + p.Get().Value
}

func closure(p rc.Shared[Base]) int { // want `\(sp:ro\)`
	sum := func() int { return p.Get().Value }()
	return sum
}

func snapshot(p rc.Shared[Base]) int { // want `Parameter 'p' .* \(sp:ro\)`
	return p.Snapshot().Value
}

func copyOut(p rc.Shared[Base], dst *rc.Shared[Base]) {
	p.CopyTo(dst)
}

func boxed(p rc.Shared[Base]) any {
	return p.Boxed()
}

func unnamed(rc.Shared[Base]) {} // want `Parameter #1 is unused .* \(sp:unused\)`

func blank(n int, _ rc.Shared[Base]) int { // want `Parameter #2 is unused .* \(sp:unused\)`
	return n
}
