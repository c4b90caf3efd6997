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


package explain

import "test/rc"

type Item struct{ Name string }

var items []rc.Shared[Item]

func stored(p rc.Shared[Item]) { // want `Parameter 'p' requires shared ownership: the handle is stored \(sp:req\)`
	items = append(items, p)
}

func returned(p rc.Shared[Item]) rc.Shared[Item] { // want `requires shared ownership: the handle is returned \(sp:req\)`
	return p
}

func forwarded(p rc.Shared[Item]) { // want `requires shared ownership: the handle is passed to stored \(sp:req\)`
	stored(p)
}

func captured(p rc.Shared[Item]) func() string { // want `requires shared ownership: the handle is captured by a function literal \(sp:req\)`
	return func() string { return p.Get().Name }
}

func retained(p rc.Shared[Item]) rc.Shared[Item] { // want `requires shared ownership: an additional reference is retained \(sp:req\)`
	return p.Clone()
}

func reset(p rc.Shared[Item]) { // want `requires shared ownership: the handle is modified \(sp:req\)`
	p.Reset()
}

func addressed(p rc.Shared[Item]) *rc.Shared[Item] { // want `requires shared ownership: the address of the handle is taken \(sp:req\)`
	return &p
}

func bound(p rc.Shared[Item]) func() *Item { // want `requires shared ownership: a method value binds the handle \(sp:req\)`
	return p.Get
}

func firstWins(p rc.Shared[Item]) string { // want `requires shared ownership: the handle is stored \(sp:req\)`
	name := p.Get().Name
	items = append(items, p)
	stored(p)

	return name
}

func readOnly(p rc.Shared[Item]) string { // want `accept a read-only \*Item instead \(sp:ro\)`
	return p.Get().Name
}

func leaked(p rc.Shared[Item]) any { // want `requires shared ownership: unsupported use of the handle \(sp:req\)`
	return p.Boxed()
}
