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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"
)

// LinterName is the name used in nolint directives.
const LinterName = "sharedparam"

var nolintDirective = regexp.MustCompile(`^//\s*nolint:([\w,-]+)`)

// NoLintComment reports whether a nolint directive naming sharedparam follows pos on the same line.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	line := c.Line(pos)

	for _, group := range c.file.Comments {
		switch {
		case group.End() <= pos:
			continue

		case c.Line(group.Pos()) != line:
			return false
		}

		return CommentHasNoLint(group.List[0])
	}

	return false
}

// CommentHasNoLint reports whether comment is a nolint directive naming sharedparam or all linters.
func CommentHasNoLint(comment *ast.Comment) bool {
	m := nolintDirective.FindStringSubmatch(comment.Text)
	if m == nil {
		return false
	}

	for name := range strings.SplitSeq(m[1], ",") {
		switch strings.ToLower(name) {
		case LinterName, "all":
			return true
		}
	}

	return false
}
