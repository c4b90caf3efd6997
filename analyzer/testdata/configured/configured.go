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


package configured

import "test/rc"

// Arc is a handle without a retain method, recognized only by configuration.
type Arc[T any] struct{ ptr *T }

func (a Arc[T]) Deref() *T { return a.ptr }

func (a Arc[T]) Unref() {}

type Node struct{ Next *Node }

func walk(a Arc[Node]) bool { // want `Parameter 'a' incurs .*, accept a read-only \*Node instead \(sp:ro\)`
	defer a.Unref()
	return a.Deref().Next != nil
}

func link(a Arc[Node], n *Node) { // want `accept \*Node instead \(sp:mut\)`
	a.Deref().Next = n
}

var kept Arc[Node]

func keep(a Arc[Node]) {
	kept = a
}

// Detection is disabled, so rc.Shared is not a handle here.
func undetected(p rc.Shared[Node]) bool {
	return p.Get().Next != nil
}
