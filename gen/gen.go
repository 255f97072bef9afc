// MIT License

// Copyright (c) 2025 The usfm Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package gen holds helpers shared by the output generators.
package gen // import "scripta.cc/usfm/gen"

import (
	"fmt"
	"strings"

	"scripta.cc/usfm/ast"
)

// Flatten returns the plain text of a character-content sequence, with all
// style spans erased.
func Flatten(contents []ast.CharacterContents) string {
	var sb strings.Builder
	flatten(&sb, contents)
	return sb.String()
}

func flatten(sb *strings.Builder, contents []ast.CharacterContents) {
	for _, c := range contents {
		switch t := c.(type) {
		case ast.Line:
			sb.WriteString(string(t))
		case *ast.Character:
			flatten(sb, t.Contents)
		}
	}
}

// FormatReference renders a note reference the way it appeared in the
// source, e.g. "1:1".
func FormatReference(r ast.NoteReference) string {
	return fmt.Sprintf("%d%c%d", r.Chapter, r.Separator, r.Verse)
}

// CallerGlyph returns the text a renderer should show for a note caller.
// auto substitutes for the '+' caller; the '-' caller renders as nothing.
func CallerGlyph(c ast.Caller, auto string) string {
	switch c.Kind {
	case ast.Auto:
		return auto
	case ast.None:
		return ""
	default:
		return string(c.Glyph)
	}
}
