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
)

// CurrentFile is the file being analyzed, with its token file for line arithmetic.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile looks up the token file of file in fset. The result is invalid when there is none.
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	if handle := fset.File(file.FileStart); handle != nil {
		return CurrentFile{file: file, handle: handle, generated: ast.IsGenerated(file)}
	}

	return CurrentFile{}
}

// Valid reports whether the file has position information.
func (c CurrentFile) Valid() bool { return c.handle != nil }

// Generated reports whether the file carries a "Code generated ... DO NOT EDIT." comment.
func (c CurrentFile) Generated() bool { return c.generated }

// Line returns the line number of a position.
func (c CurrentFile) Line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// LineStart returns the position of the first character on the line of pos.
func (c CurrentFile) LineStart(pos token.Pos) token.Pos {
	return c.handle.LineStart(c.Line(pos))
}

// NextLineStart returns the position of the first character on the line after pos,
// or [token.NoPos] when pos is on the last line.
func (c CurrentFile) NextLineStart(pos token.Pos) token.Pos {
	line := c.Line(pos)
	if line >= c.handle.LineCount() {
		return token.NoPos
	}

	return c.handle.LineStart(line + 1)
}
