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

// Package verdict folds the classified uses of a handle parameter into a single verdict.
//
// The fold is a join over a small lattice: a [Summary] of a set of uses is the join of the
// summaries of its elements. The join is commutative and associative with the zero [Summary]
// as identity, so partial results may be combined in any order.
package verdict

import "fillmore-labs.com/sharedparam/internal/usage"

// Verdict is the outcome of the escape analysis for one parameter.
type Verdict uint8

//go:generate go tool stringer -type Verdict -linecomment
const (
	// OwnershipUnnecessary means the parameter could be a plain pointer to the pointee.
	OwnershipUnnecessary Verdict = iota // ownership unnecessary

	// OwnershipRequired means some use needs the parameter to own a reference.
	OwnershipRequired // ownership required
)

// Summary aggregates the uses of a parameter.
type Summary struct {
	// Class is the highest ownership class of all uses.
	Class usage.Class

	// Uses is the number of uses.
	Uses int

	// MutatesPointee is set when any use may modify the pointee.
	MutatesPointee bool

	// Manual is set when any use can't be rewritten mechanically.
	Manual bool

	// Offending is the first use, in source order, that is not read-only.
	Offending *usage.Use
}

// Of returns the summary of a single use.
func Of(use usage.Use) Summary {
	s := Summary{
		Class:          use.Class(),
		Uses:           1,
		MutatesPointee: use.MutatesPointee,
		Manual:         !use.Rewrite.Rewritable(),
	}

	if s.Class != usage.ReadOnly {
		s.Offending = &use
	}

	return s
}

// Join combines two summaries.
func (s Summary) Join(o Summary) Summary {
	return Summary{
		Class:          max(s.Class, o.Class),
		Uses:           s.Uses + o.Uses,
		MutatesPointee: s.MutatesPointee || o.MutatesPointee,
		Manual:         s.Manual || o.Manual,
		Offending:      first(s.Offending, o.Offending),
	}
}

func first(a, b *usage.Use) *usage.Use {
	switch {
	case a == nil:
		return b

	case b == nil:
		return a

	case b.Pos() < a.Pos():
		return b

	default:
		return a
	}
}

// Fold summarizes a sequence of uses.
func Fold(uses []usage.Use) Summary {
	var s Summary
	for _, use := range uses {
		s = s.Join(Of(use))
	}

	return s
}

// Verdict returns [OwnershipRequired] when any use is ownership-extending or ambiguous.
// No uses at all yield [OwnershipUnnecessary].
func (s Summary) Verdict() Verdict {
	if s.Class != usage.ReadOnly {
		return OwnershipRequired
	}

	return OwnershipUnnecessary
}

// Unused reports whether the parameter has no uses.
func (s Summary) Unused() bool {
	return s.Uses == 0
}

// Rewritable reports whether every use survives the change to a plain pointer.
func (s Summary) Rewritable() bool {
	return !s.Manual
}
