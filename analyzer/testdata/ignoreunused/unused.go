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


package ignoreunused

import "test/rc"

type Counter struct{ N int }

func unused(p rc.Shared[Counter]) {
}

func blank(_ rc.Shared[Counter]) {
}

func unnamed(rc.Shared[Counter]) {
}

func increment(p rc.Shared[Counter]) { // want `Parameter 'p' incurs .*, accept \*Counter instead \(sp:mut\)`
	p.Get().N++
}

func read(p rc.Shared[Counter]) int { // want `accept \*Counter instead \(sp:mut\)`
	return p.Get().N
}

func released(p rc.Shared[Counter]) { // want `accept \*Counter instead \(sp:mut\)`
	p.Release()
}
