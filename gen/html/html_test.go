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

package html_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scripta.cc/usfm/gen/html"
	"scripta.cc/usfm/parser"
)

func TestOutput(t *testing.T) {
	t.Parallel()

	src := "\\id GEN Test\n" +
		"\\mt1 Genesis\n" +
		"\\c 1\n" +
		"\\p \\v 1 God said <go> &amp; it was.\n" +
		"\\q1 a line\n" +
		"\\b\n"
	book := parser.MustParse(src)

	out, err := html.Gen(book).Output()
	require.NoError(t, err)
	got := string(out)

	want := "<h1 class=\"book\">Genesis</h1>\n" +
		"<h1>Genesis</h1>\n" +
		"<h2 class=\"chapter\">1</h2>\n" +
		"<p><sup class=\"verse\">1</sup>God said &lt;go&gt; &amp;amp; it was.</p>\n" +
		"<p class=\"poetry level-1\">a line</p>\n" +
		"<br>\n"
	assert.Equal(t, want, got)
}

func TestCharacterTags(t *testing.T) {
	t.Parallel()

	book := parser.MustParse("\\id GEN x\n\\p \\bd strong\\bd* and \\nd LORD\\nd*\n")
	out, err := html.Gen(book).Output()
	require.NoError(t, err)
	got := string(out)
	assert.Contains(t, got, "<b>strong</b>")
	assert.Contains(t, got, `<span class="divine-name">LORD</span>`)
}

func TestNotes(t *testing.T) {
	t.Parallel()

	book := parser.MustParse("\\id GEN x\n\\p \\v 1 text\\f + \\fr 1:1 \\ft a note\\f* more\n")
	out, err := html.Gen(book).Output()
	require.NoError(t, err)
	got := string(out)
	assert.Contains(t, got, `<sup class="footnote" title="1:1 a note">*</sup>`)

	// A suppressed caller renders nothing.
	book = parser.MustParse("\\id GEN x\n\\p \\v 1 text\\f - \\ft hidden\\f* more\n")
	out, err = html.Gen(book).Output()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "hidden")
}

func TestRunWritesToStdout(t *testing.T) {
	t.Parallel()

	book := parser.MustParse("\\id GEN x\n\\p \\v 1 word\n")
	var buf bytes.Buffer
	g := html.Gen(book)
	g.Stdout = &buf
	require.NoError(t, g.Run())
	assert.True(t, strings.Contains(buf.String(), "word"))
}
