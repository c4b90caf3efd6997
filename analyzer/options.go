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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/sharedparam/internal/config"
	"fillmore-labs.com/sharedparam/internal/run"
)

// Option configures specific behavior of a [New] sharedparam analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return behaviorOption{"generated", config.IncludeGenerated, generated} }

// WithIgnoreUnused is an [Option] to suppress diagnostics for handle parameters that are never used.
func WithIgnoreUnused(ignore bool) Option { return behaviorOption{"ignore-unused", config.IgnoreUnused, ignore} }

// WithConst is an [Option] to suggest a read-only pointee when no use modifies it.
func WithConst(suggestConst bool) Option { return behaviorOption{"const", config.ConstSuggestion, suggestConst} }

// WithExplain is an [Option] to report why handle parameters need shared ownership.
func WithExplain(explain bool) Option { return behaviorOption{"explain", config.Explain, explain} }

// WithFix is an [Option] to configure suggested fixes.
func WithFix(fix bool) Option { return behaviorOption{"fix", config.SuggestFixes, fix} }

type behaviorOption struct {
	name  string
	flag  config.Config
	value bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Behavior.Set(o.flag, o.value)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.value)
}

// WithHandleTypes is an [Option] to add handle types by qualified name, like "example.com/rc.Shared".
func WithHandleTypes(types ...string) Option { return handleTypesOption{types: types} }

type handleTypesOption struct{ types []string }

func (o handleTypesOption) apply(r *run.Options) {
	r.Handles.Types = append(r.Handles.Types, o.types...)
}

func (o handleTypesOption) LogAttr() slog.Attr {
	return slog.Any("handles", o.types)
}

// WithRetainMethods is an [Option] to replace the names of methods creating an additional reference.
func WithRetainMethods(names ...string) Option { return methodsOption{"retain", names} }

// WithReleaseMethods is an [Option] to replace the names of methods giving up a reference.
func WithReleaseMethods(names ...string) Option { return methodsOption{"release", names} }

// WithMutateMethods is an [Option] to replace the names of methods changing the sharing relationship.
func WithMutateMethods(names ...string) Option { return methodsOption{"mutate", names} }

// WithAccessMethods is an [Option] to replace the names of methods returning a pointer to the pointee.
func WithAccessMethods(names ...string) Option { return methodsOption{"access", names} }

// WithLoadMethods is an [Option] to replace the names of methods returning a copy of the pointee.
func WithLoadMethods(names ...string) Option { return methodsOption{"load", names} }

type methodsOption struct {
	kind  string
	names []string
}

func (o methodsOption) apply(r *run.Options) {
	switch o.kind {
	case "retain":
		r.Handles.Retain = o.names

	case "release":
		r.Handles.Release = o.names

	case "mutate":
		r.Handles.Mutate = o.names

	case "access":
		r.Handles.Access = o.names

	case "load":
		r.Handles.Load = o.names
	}
}

func (o methodsOption) LogAttr() slog.Attr {
	return slog.Any(o.kind, o.names)
}

// WithDetect is an [Option] to configure recognition of handle types by their method set.
func WithDetect(detect bool) Option { return detectOption{detect: detect} }

type detectOption struct{ detect bool }

func (o detectOption) apply(r *run.Options) {
	r.Handles.NoDetect = !o.detect
}

func (o detectOption) LogAttr() slog.Attr {
	return slog.Bool("detect", o.detect)
}

// WithHandles is an [Option] merging a complete handle configuration, as read by [config.LoadHandles].
func WithHandles(h config.Handles) Option { return handlesOption{handles: h} }

type handlesOption struct{ handles config.Handles }

func (o handlesOption) apply(r *run.Options) {
	r.Handles = r.Handles.Merge(o.handles)
}

func (o handlesOption) LogAttr() slog.Attr {
	return slog.Group("config",
		slog.Any("handles", o.handles.Types),
		slog.Any("retain", o.handles.Retain),
		slog.Any("release", o.handles.Release),
		slog.Any("mutate", o.handles.Mutate),
		slog.Any("access", o.handles.Access),
		slog.Any("load", o.handles.Load),
		slog.Bool("no-detect", o.handles.NoDetect),
	)
}
