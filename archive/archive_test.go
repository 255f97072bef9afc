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

package archive_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"scripta.cc/usfm/archive"
	"scripta.cc/usfm/parser"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	src := "\\id GEN Test\n" +
		"\\ide UTF-8\n" +
		"\\usfm 3.0\n" +
		"\\mt1 Genesis\n" +
		"\\c 1\n" +
		"\\p \\v 1 In the beginning, God\\f + \\fr 1:1 \\ft a note\\f* created.\n" +
		"\\q2 a poetry line\n" +
		"\\p \\v 2 He \\w spoke|lemma=\"speak\"\\w* and \\x - \\xo 1:2 \\xt See also\\x* it was.\n" +
		"\\b\n"
	book := parser.MustParse(src)

	var buf bytes.Buffer
	require.NoError(t, archive.Encode(&buf, book))
	got, err := archive.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, book, got)
}

func TestDecodeGarbage(t *testing.T) {
	t.Parallel()

	_, err := archive.Decode(bytes.NewReader([]byte("not an archive")))
	require.Error(t, err)
}
