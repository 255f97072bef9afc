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

// Package parser turns USFM source into an *ast.Book.
//
// Parsing runs in two stages: the grammar package recognises the input and
// produces a rule tree, and this package lowers that tree into the typed
// document model, mapping every marker tag through a closed enumeration
// table. Marker strings become enum variants, numeric suffixes become small
// integers, attribute blocks become key/value pairs, note callers are
// classified, and references decompose into chapter, separator, and verse.
//
// Parse fails only on input the grammar rejects; the error is then a
// *grammar.SyntaxError with the failure position and the productions that
// could have continued the match. The enumeration tables cover exactly the
// tags the grammar admits, so a lookup miss is a bug in this module and
// panics rather than surfacing as an error.
package parser // import "scripta.cc/usfm/parser"

import (
	"scripta.cc/usfm/ast"
	"scripta.cc/usfm/grammar"
)

// Parse parses a complete USFM book from src. The returned tree owns all of
// its strings; src may be discarded or reused afterwards.
func Parse(src string) (*ast.Book, error) {
	tree, err := grammar.Parse(src)
	if err != nil {
		return nil, err
	}
	return lowerBook(tree), nil
}

// MustParse is like Parse but panics if the source cannot be parsed.
func MustParse(src string) *ast.Book {
	b, err := Parse(src)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return b
}
