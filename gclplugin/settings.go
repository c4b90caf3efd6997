// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
package gclplugin

import (
	sharedparam "fillmore-labs.com/sharedparam/analyzer"
	"fillmore-labs.com/sharedparam/internal/config"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// IgnoreUnused suppresses diagnostics for unused handle parameters.
	IgnoreUnused *bool `json:"ignore-unused,omitzero"`
	// Const suggests a read-only pointee when no use modifies it.
	Const *bool `json:"const,omitzero"`
	// Explain reports why handle parameters need shared ownership.
	Explain *bool `json:"explain,omitzero"`
	// Fix enables suggested fixes.
	Fix *bool `json:"fix,omitzero"`
	// Handles lists qualified names of additional handle types.
	Handles []string `json:"handles,omitzero"`
	// Retain replaces the names of methods creating an additional reference.
	Retain []string `json:"retain,omitzero"`
	// Release replaces the names of methods giving up a reference.
	Release []string `json:"release,omitzero"`
	// Mutate replaces the names of methods changing the sharing relationship.
	Mutate []string `json:"mutate,omitzero"`
	// Access replaces the names of methods returning a pointer to the pointee.
	Access []string `json:"access,omitzero"`
	// Load replaces the names of methods returning a copy of the pointee.
	Load []string `json:"load,omitzero"`
	// Detect enables recognition of handle types by their method set.
	Detect *bool `json:"detect,omitzero"`
	// Config is the path of a YAML handle configuration file.
	Config *string `json:"config,omitzero"`
}

// Options converts [Settings] into a list of [sharedparam.Option] for the sharedparam analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
// The handle configuration file is read and validated here, so errors surface when the linter is built.
func (s Settings) Options() ([]sharedparam.Option, error) {
	var opts []sharedparam.Option

	if s.Config != nil {
		h, err := config.LoadHandles(*s.Config)
		if err != nil {
			return nil, err
		}

		opts = append(opts, sharedparam.WithHandles(h))
	}

	opts = appendOption(opts, s.IgnoreUnused, sharedparam.WithIgnoreUnused)
	opts = appendOption(opts, s.Const, sharedparam.WithConst)
	opts = appendOption(opts, s.Explain, sharedparam.WithExplain)
	opts = appendOption(opts, s.Fix, sharedparam.WithFix)
	opts = appendList(opts, s.Handles, sharedparam.WithHandleTypes)
	opts = appendList(opts, s.Retain, sharedparam.WithRetainMethods)
	opts = appendList(opts, s.Release, sharedparam.WithReleaseMethods)
	opts = appendList(opts, s.Mutate, sharedparam.WithMutateMethods)
	opts = appendList(opts, s.Access, sharedparam.WithAccessMethods)
	opts = appendList(opts, s.Load, sharedparam.WithLoadMethods)
	opts = appendOption(opts, s.Detect, sharedparam.WithDetect)

	return opts, nil
}

// appendOption appends a non-nil setting to a [sharedparam.Option] list.
func appendOption[T any](opts []sharedparam.Option, value *T, constructor func(T) sharedparam.Option) []sharedparam.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

func appendList(opts []sharedparam.Option, values []string, constructor func(...string) sharedparam.Option) []sharedparam.Option {
	if len(values) == 0 {
		return opts
	}

	return append(opts, constructor(values...))
}
