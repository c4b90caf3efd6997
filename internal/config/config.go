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

package config

// Config is a single behavioral option of the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// IgnoreUnused suppresses diagnostics for handle parameters that are never referenced.
	IgnoreUnused

	// ConstSuggestion lets suggestions default to a read-only pointee when no use mutates it.
	ConstSuggestion

	// Explain reports the reason for handle parameters that do require shared ownership.
	Explain

	// SuggestFixes attaches mechanical signature and body rewrites to diagnostics.
	SuggestFixes
)

// Behavior is a set of enabled [Config] options. The zero value has every option disabled.
type Behavior struct{ enabled Config }

// NewBehavior returns a [Behavior] with exactly the given options enabled.
func NewBehavior(options ...Config) Behavior {
	var b Behavior
	for _, o := range options {
		b.enabled |= o
	}

	return b
}

// DefaultBehavior returns the default [Behavior].
func DefaultBehavior() Behavior {
	return NewBehavior(ConstSuggestion, SuggestFixes)
}

// Set enables or disables option.
func (b *Behavior) Set(option Config, enabled bool) {
	if enabled {
		b.enabled |= option
	} else {
		b.enabled &^= option
	}
}

// Enabled reports whether option is enabled.
func (b Behavior) Enabled(option Config) bool {
	return b.enabled&option != 0
}

// With returns a copy of b with option set to enabled.
func (b Behavior) With(option Config, enabled bool) Behavior {
	b.Set(option, enabled)

	return b
}
