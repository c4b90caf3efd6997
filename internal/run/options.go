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

package run

import (
	"log/slog"

	"fillmore-labs.com/sharedparam/internal/config"
)

// Options represent configuration options for the sharedparam analyzer.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Handles configures handle type recognition.
	Handles config.Handles
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
		Handles:  config.DefaultHandles(),
	}
}

// LogValue implements [slog.LogValuer].
func (r *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("generated", r.Behavior.Enabled(config.IncludeGenerated)),
		slog.Bool("ignore-unused", r.Behavior.Enabled(config.IgnoreUnused)),
		slog.Bool("const", r.Behavior.Enabled(config.ConstSuggestion)),
		slog.Bool("explain", r.Behavior.Enabled(config.Explain)),
		slog.Bool("fix", r.Behavior.Enabled(config.SuggestFixes)),
		slog.Any("handles", r.Handles.Types),
		slog.Any("retain", r.Handles.Retain),
		slog.Any("release", r.Handles.Release),
		slog.Any("mutate", r.Handles.Mutate),
		slog.Any("access", r.Handles.Access),
		slog.Any("load", r.Handles.Load),
		slog.Bool("no-detect", r.Handles.NoDetect),
	)
}
