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

// Package run drives the sharedparam analysis of a package.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/sharedparam/internal/astutil"
	"fillmore-labs.com/sharedparam/internal/config"
	"fillmore-labs.com/sharedparam/internal/handle"
	"fillmore-labs.com/sharedparam/internal/report"
	"fillmore-labs.com/sharedparam/internal/resolve"
	"fillmore-labs.com/sharedparam/internal/usage"
	"fillmore-labs.com/sharedparam/internal/verdict"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// unit is a function with at least one handle parameter passed by value.
type unit struct {
	file     astutil.CurrentFile
	fn       inspector.Cursor
	body     inspector.Cursor
	bindings []usage.Binding
}

// Run executes the sharedparam analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("sharedparam: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx, task := trace.NewTask(context.Background(), "SharedParam")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	handles := handle.New(r.Handles)

	units := r.collect(p, in, handles)
	if len(units) == 0 {
		return nil, nil
	}

	// Shared by all workers, read-only from here on
	classifier := usage.Classifier{
		Info:     p.TypesInfo,
		Handles:  handles,
		Resolver: resolve.New(p.Pkg),
	}
	qualifier := types.RelativeTo(p.Pkg)

	// Each worker owns its buffer, no locking needed
	buffers := make([]report.Buffer, len(units))

	var g errgroup.Group
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(units)))

	for i, u := range units {
		g.Go(func() error {
			emitter := report.Emitter{
				File:      u.file,
				Inspector: in,
				Qualifier: qualifier,
				Behavior:  r.Behavior,
			}

			buffers[i] = analyze(ctx, classifier, emitter, u)

			return nil
		})
	}

	_ = g.Wait() // workers don't fail

	diagnostics := slices.Concat(buffers...)
	report.Sort(diagnostics)

	sink := report.SinkFunc(p.Report)
	for _, d := range diagnostics {
		sink.Report(d)
	}

	return nil, nil
}

// collect finds all functions and function literals with handle parameters,
// skipping generated files and everything marked with a nolint comment.
func (r *Options) collect(p *analysis.Pass, in *inspector.Inspector, handles handle.Recognizer) []unit {
	var units []unit

	nodes := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.FuncLit)(nil),
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p.Report, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if noLint(file.Doc) {
			continue
		}

		f.Inspect(nodes, func(c inspector.Cursor) bool {
			var (
				ftype    *ast.FuncType
				bodyEdge edge.Kind
			)

			switch n := c.Node().(type) {
			case *ast.FuncDecl:
				// Skip functions with nolint comment
				if n.Body == nil || noLint(n.Doc) {
					return false
				}

				ftype, bodyEdge = n.Type, edge.FuncDecl_Body

			case *ast.FuncLit:
				ftype, bodyEdge = n.Type, edge.FuncLit_Body

			default:
				astutil.InternalError(p.Report, n, "Unexpected node type: %T", n)

				return false
			}

			if bindings := usage.Bindings(p.TypesInfo, handles, ftype); len(bindings) > 0 {
				units = append(units, unit{
					file:     currentFile,
					fn:       c,
					body:     c.ChildAt(bodyEdge, -1),
					bindings: bindings,
				})
			}

			return true
		})
	}

	return units
}

// analyze classifies, folds and reports the handle parameters of a single unit.
func analyze(ctx context.Context, classifier usage.Classifier, emitter report.Emitter, u unit) report.Buffer {
	uses := classifier.Classify(ctx, u.body, u.bindings)

	defer trace.StartRegion(ctx, "Report").End()

	var buffer report.Buffer

	fn := u.fn.Node()
	for i, b := range u.bindings {
		emitter.Emit(&buffer, fn, report.Parameter{
			Binding: b,
			Uses:    uses[i],
			Summary: verdict.Fold(uses[i]),
		})
	}

	return buffer
}

// noLint reports whether the last line of a doc comment is a nolint directive.
func noLint(doc *ast.CommentGroup) bool {
	return doc != nil && astutil.CommentHasNoLint(doc.List[len(doc.List)-1])
}
