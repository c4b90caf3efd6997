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
	"flag"

	"fillmore-labs.com/sharedparam/internal/config"
	"fillmore-labs.com/sharedparam/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	behavior := &r.Behavior
	flags.Var(newBehaviorValue(behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newBehaviorValue(behavior, config.IgnoreUnused), "ignore-unused", "don't report unused handle parameters")
	flags.Var(newBehaviorValue(behavior, config.ConstSuggestion), "const", "suggest a read-only pointee when no use modifies it")
	flags.Var(newBehaviorValue(behavior, config.Explain), "explain", "report why handle parameters need shared ownership")
	flags.Var(newBehaviorValue(behavior, config.SuggestFixes), "fix", "suggest fixes")

	handles := &r.Handles
	flags.Var((*listValue)(&handles.Types), "handles", "comma-separated qualified names of additional handle types")
	flags.Var((*listValue)(&handles.Retain), "retain", "comma-separated names of methods creating an additional reference")
	flags.Var((*listValue)(&handles.Release), "release", "comma-separated names of methods giving up a reference")
	flags.Var((*listValue)(&handles.Mutate), "mutate", "comma-separated names of methods changing the sharing relationship")
	flags.Var((*listValue)(&handles.Access), "access", "comma-separated names of methods returning a pointer to the pointee")
	flags.Var((*listValue)(&handles.Load), "load", "comma-separated names of methods returning a copy of the pointee")
	flags.BoolVar(&handles.NoDetect, "no-detect", handles.NoDetect, "only recognize configured handle types")
	flags.Var((*configValue)(handles), "config", "YAML `file` with handle configuration")
}
