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

package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scripta.cc/usfm/gen/text"
	"scripta.cc/usfm/parser"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	src := "\\id GEN Test\n" +
		"\\c 1\n" +
		"\\p \\v 1 In the beginning, God\\f + \\fr 1:1 \\ft a note\\f* created.\n" +
		"\\q2 a poetry line\n"
	book := parser.MustParse(src)

	want := "Genesis\n" +
		"-------\n" +
		"\n" +
		"\nChapter 1\n\n" +
		"1. In the beginning, God [1:1 - a note] created.\n" +
		"    a poetry line\n"
	assert.Equal(t, want, text.Format(book))
}

func TestFormatFlattensStyle(t *testing.T) {
	t.Parallel()

	book := parser.MustParse("\\id GEN x\n\\p \\v 1 the \\w word\\+nd LORD\\+nd*\\w* stands\n")
	out := text.Format(book)
	require.Contains(t, out, "1. the wordLORD stands")
}
