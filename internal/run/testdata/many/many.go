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

package many

// Ref is a reference-counted handle.
type Ref[T any] struct{ ptr *T }

func (r Ref[T]) Get() *T       { return r.ptr }
func (r Ref[T]) Load() T       { return *r.ptr }
func (r Ref[T]) Clone() Ref[T] { return r }
func (r Ref[T]) Release()      {}

type Item struct{ N int }

var kept []Ref[Item]

func read0(p Ref[Item]) int { // want `Parameter 'p' .* accept a read-only \*Item instead \(sp:ro\)`
	return p.Get().N + 0
}

func write1(p Ref[Item]) { // want `Parameter 'p' .* accept \*Item instead \(sp:mut\)`
	p.Get().N = 1
}

func unused2(n int, p Ref[Item]) int { // want `Parameter 'p' is unused .* \(sp:unused\)`
	return n * 2
}

func keep3(p Ref[Item]) int {
	kept = append(kept, p)
	return 3
}

func pair4(p, q Ref[Item]) int { // want `Parameter 'p' .* \(sp:ro\)` `Parameter 'q' .* \(sp:ro\)`
	return p.Load().N + q.Get().N + 4
}

var literal5 = func(p Ref[Item]) int { // want `Parameter 'p' .* \(sp:ro\)`
	return p.Get().N * 5
}

func read6(p Ref[Item]) int { // want `Parameter 'p' .* accept a read-only \*Item instead \(sp:ro\)`
	return p.Get().N + 6
}

func write7(p Ref[Item]) { // want `Parameter 'p' .* accept \*Item instead \(sp:mut\)`
	p.Get().N = 7
}

func unused8(n int, p Ref[Item]) int { // want `Parameter 'p' is unused .* \(sp:unused\)`
	return n * 8
}

func keep9(p Ref[Item]) int {
	kept = append(kept, p)
	return 9
}

func pair10(p, q Ref[Item]) int { // want `Parameter 'p' .* \(sp:ro\)` `Parameter 'q' .* \(sp:ro\)`
	return p.Load().N + q.Get().N + 10
}

var literal11 = func(p Ref[Item]) int { // want `Parameter 'p' .* \(sp:ro\)`
	return p.Get().N * 11
}

func read12(p Ref[Item]) int { // want `Parameter 'p' .* accept a read-only \*Item instead \(sp:ro\)`
	return p.Get().N + 12
}

func write13(p Ref[Item]) { // want `Parameter 'p' .* accept \*Item instead \(sp:mut\)`
	p.Get().N = 13
}

func unused14(n int, p Ref[Item]) int { // want `Parameter 'p' is unused .* \(sp:unused\)`
	return n * 14
}

func keep15(p Ref[Item]) int {
	kept = append(kept, p)
	return 15
}

func pair16(p, q Ref[Item]) int { // want `Parameter 'p' .* \(sp:ro\)` `Parameter 'q' .* \(sp:ro\)`
	return p.Load().N + q.Get().N + 16
}

var literal17 = func(p Ref[Item]) int { // want `Parameter 'p' .* \(sp:ro\)`
	return p.Get().N * 17
}

func read18(p Ref[Item]) int { // want `Parameter 'p' .* accept a read-only \*Item instead \(sp:ro\)`
	return p.Get().N + 18
}

func write19(p Ref[Item]) { // want `Parameter 'p' .* accept \*Item instead \(sp:mut\)`
	p.Get().N = 19
}

func unused20(n int, p Ref[Item]) int { // want `Parameter 'p' is unused .* \(sp:unused\)`
	return n * 20
}

func keep21(p Ref[Item]) int {
	kept = append(kept, p)
	return 21
}

func pair22(p, q Ref[Item]) int { // want `Parameter 'p' .* \(sp:ro\)` `Parameter 'q' .* \(sp:ro\)`
	return p.Load().N + q.Get().N + 22
}

var literal23 = func(p Ref[Item]) int { // want `Parameter 'p' .* \(sp:ro\)`
	return p.Get().N * 23
}

func read24(p Ref[Item]) int { // want `Parameter 'p' .* accept a read-only \*Item instead \(sp:ro\)`
	return p.Get().N + 24
}

func write25(p Ref[Item]) { // want `Parameter 'p' .* accept \*Item instead \(sp:mut\)`
	p.Get().N = 25
}

func unused26(n int, p Ref[Item]) int { // want `Parameter 'p' is unused .* \(sp:unused\)`
	return n * 26
}

func keep27(p Ref[Item]) int {
	kept = append(kept, p)
	return 27
}

func pair28(p, q Ref[Item]) int { // want `Parameter 'p' .* \(sp:ro\)` `Parameter 'q' .* \(sp:ro\)`
	return p.Load().N + q.Get().N + 28
}

var literal29 = func(p Ref[Item]) int { // want `Parameter 'p' .* \(sp:ro\)`
	return p.Get().N * 29
}
