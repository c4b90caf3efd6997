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

// Package report turns parameter verdicts into diagnostics.
//
// Every analyzed parameter ends in one of two terminal states: a diagnostic is reported, or the
// parameter is suppressed. Parameters that need shared ownership are suppressed unless explain mode
// is on; parameters with a //nolint:sharedparam comment on their line are always suppressed.
package report

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/sharedparam/internal/astutil"
	"fillmore-labs.com/sharedparam/internal/config"
	"fillmore-labs.com/sharedparam/internal/usage"
	"fillmore-labs.com/sharedparam/internal/verdict"
)

// State is the terminal state of an analyzed parameter.
type State uint8

const (
	// Suppressed parameters produce no diagnostic.
	Suppressed State = iota

	// Reported parameters produce exactly one diagnostic.
	Reported
)

// Parameter is a classified and verdicted handle parameter.
type Parameter struct {
	usage.Binding

	// Uses are the classified uses in source order.
	Uses []usage.Use

	// Summary is the fold of Uses.
	Summary verdict.Summary
}

// Emitter creates diagnostics for the parameters of one file.
type Emitter struct {
	// File is the file containing the parameters.
	File astutil.CurrentFile

	// Inspector resolves node indices of uses.
	Inspector *inspector.Inspector

	// Qualifier renders types in messages.
	Qualifier types.Qualifier

	// Behavior selects the reported forms.
	Behavior config.Behavior
}

// Emit reports the diagnostic for p declared by fn, if any, and returns the terminal state of p.
func (e Emitter) Emit(sink Sink, fn ast.Node, p Parameter) State {
	if e.File.NoLintComment(p.Pos()) {
		return Suppressed
	}

	switch {
	case p.Summary.Verdict() == verdict.OwnershipRequired:
		if !e.Behavior.Enabled(config.Explain) {
			return Suppressed
		}

		sink.Report(e.explain(p))

		return Reported

	case p.Summary.Unused() && e.Behavior.Enabled(config.IgnoreUnused):
		return Suppressed
	}

	diagnostic := analysis.Diagnostic{
		Pos:     p.Pos(),
		End:     p.Field.Type.End(),
		Message: e.message(p),
	}

	if edits, ok := e.edits(fn, p); ok {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
			Message:   fmt.Sprintf("Accept %s for %s (call sites are not updated)", e.pointer(p), p.Label()),
			TextEdits: edits,
		}}
	}

	sink.Report(diagnostic)

	return Reported
}

// message renders the diagnostic text for an unnecessary handle parameter.
func (e Emitter) message(p Parameter) string {
	const cost = "incurs an unnecessary reference count increment and decrement per call"

	form, code := "", "mut"
	if e.Behavior.Enabled(config.ConstSuggestion) && !p.Summary.MutatesPointee {
		form, code = "a read-only ", "ro"
	}

	if p.Summary.Unused() {
		return fmt.Sprintf("Parameter %s is unused but %s, accept %s%s instead (sp:unused)", p.Label(), cost, form, e.pointer(p))
	}

	return fmt.Sprintf("Parameter %s %s, accept %s%s instead (sp:%s)", p.Label(), cost, form, e.pointer(p), code)
}

// explain renders the diagnostic for a parameter that needs shared ownership.
func (e Emitter) explain(p Parameter) analysis.Diagnostic {
	diagnostic := analysis.Diagnostic{
		Pos: p.Pos(),
		End: p.Field.Type.End(),
	}

	offending := p.Summary.Offending
	if offending == nil {
		diagnostic.Message = fmt.Sprintf("Parameter %s requires shared ownership (sp:req)", p.Label())

		return diagnostic
	}

	diagnostic.Message = fmt.Sprintf("Parameter %s requires shared ownership: %s (sp:req)", p.Label(), reason(*offending))
	diagnostic.Related = []analysis.RelatedInformation{{
		Pos:     offending.Pos(),
		End:     offending.Expr.End(),
		Message: fmt.Sprintf("Ownership-extending use (%s)", offending.Kind),
	}}

	return diagnostic
}

// reason describes why a use needs shared ownership.
func reason(use usage.Use) string {
	switch use.Kind {
	case usage.KindStore:
		return "the handle is stored"

	case usage.KindReturn:
		return "the handle is returned"

	case usage.KindPass:
		if use.Callee != nil {
			return fmt.Sprintf("the handle is passed to %s", use.Callee.Name())
		}

		return "the handle is passed by value"

	case usage.KindCapture:
		return "the handle is captured by a function literal"

	case usage.KindMutate:
		return "the handle is modified"

	case usage.KindRetain:
		return "an additional reference is retained"

	case usage.KindAddress:
		return "the address of the handle is taken"

	case usage.KindMethodValue:
		return "a method value binds the handle"

	default:
		return "unsupported use of the handle"
	}
}

// pointer renders the suggested parameter type.
func (e Emitter) pointer(p Parameter) string {
	return types.TypeString(types.NewPointer(p.Pointee), e.Qualifier)
}
