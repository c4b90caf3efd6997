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

package report

import (
	"cmp"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// Sink receives diagnostics.
type Sink interface {
	Report(d analysis.Diagnostic)
}

// SinkFunc adapts a function like [analysis.Pass.Report] to a [Sink].
type SinkFunc func(analysis.Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d analysis.Diagnostic) {
	f(d)
}

// Buffer collects the diagnostics of a single unit. It is not safe for concurrent use.
type Buffer []analysis.Diagnostic

// Report appends d to the buffer.
func (b *Buffer) Report(d analysis.Diagnostic) {
	*b = append(*b, d)
}

// Sort orders diagnostics by position, then by message.
func Sort(diagnostics []analysis.Diagnostic) {
	slices.SortStableFunc(diagnostics, func(a, b analysis.Diagnostic) int {
		if c := cmp.Compare(a.Pos, b.Pos); c != 0 {
			return c
		}

		if c := cmp.Compare(a.End, b.End); c != 0 {
			return c
		}

		return cmp.Compare(a.Message, b.Message)
	})
}
