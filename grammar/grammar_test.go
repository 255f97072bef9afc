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

// Tests for the recogniser's rule trees and diagnostics.
package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scripta.cc/usfm/grammar"
)

// shape flattens a node into "rule" or "rule(text)" or "rule[children]"
// for compact tree assertions.
func shape(n *grammar.Node) string {
	s := n.Rule.String()
	if len(n.Children) == 0 {
		if n.Text != "" {
			return s + "(" + n.Text + ")"
		}
		return s
	}
	s += "["
	for i, c := range n.Children {
		if i > 0 {
			s += " "
		}
		s += shape(c)
	}
	return s + "]"
}

func TestRuleTrees(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   string
		want string
	}{
		"id and chapter": {
			"\\id GEN Test\n\\c 1\n",
			"book[id[code(GEN) text(Test)] chapter(1)]",
		},
		"paragraph with verse": {
			"\\id GEN T\n\\p \\v 1 Hello.\n",
			"book[id[code(GEN) text(T)] paragraph[tag(p) verse(1) line(Hello.)]]",
		},
		"numbered poetry": {
			"\\id GEN T\n\\q2 line\n",
			"book[id[code(GEN) text(T)] poetry[tag(q) level(2) line(line)]]",
		},
		"character with attributes": {
			"\\id GEN T\n\\p \\w go|lemma=\"walk\"\\w*\n",
			"book[id[code(GEN) text(T)] paragraph[tag(p) character[tag(w) line(go) attribute[key(lemma) value(walk)]]]]",
		},
		"footnote": {
			"\\id GEN T\n\\p \\f + \\fr 1:2 \\ft note\\f*\n",
			"book[id[code(GEN) text(T)] paragraph[tag(p) footnote[tag(f) caller(+) reference[number(1) separator(:) number(2)] note-element[tag(ft) line(note)]]]]",
		},
		"blank lines between items": {
			"\\id GEN T\n\n\\c 1\n\n\n\\c 2\n",
			"book[id[code(GEN) text(T)] chapter(1) chapter(2)]",
		},
		"byte order mark": {
			"\ufeff\\id GEN T\n",
			"book[id[code(GEN) text(T)]]",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tree, err := grammar.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, shape(tree))
		})
	}
}

func TestLineCoalescing(t *testing.T) {
	t.Parallel()

	// Text spanning physical lines is one line node with the interior
	// newline kept; the line ending before the next marker is shed.
	tree, err := grammar.Parse("\\id GEN T\n\\p first\nsecond\n\\c 2\n")
	require.NoError(t, err)
	para := tree.Children[1]
	require.Equal(t, grammar.Para, para.Rule)
	require.Len(t, para.Children, 2)
	assert.Equal(t, "first\nsecond", para.Children[1].Text)
}

func TestSyntaxErrorPositions(t *testing.T) {
	t.Parallel()

	_, err := grammar.Parse("\\id GEN Test\n\\bogus one\n")
	require.Error(t, err)
	serr, ok := err.(*grammar.SyntaxError)
	require.True(t, ok)
	assert.Equal(t, 13, serr.Offset)
	assert.Equal(t, 2, serr.Line)
	assert.Equal(t, 1, serr.Column)
	assert.NotEmpty(t, serr.Expected)
	assert.Contains(t, err.Error(), "2:1")
}

func TestErrorColumnCountsRunes(t *testing.T) {
	t.Parallel()

	// Multi-byte text before the failure must not skew the column.
	_, err := grammar.Parse("\\id GEN T\n\\p na\u00efve\\w*\n")
	require.Error(t, err)
	serr := err.(*grammar.SyntaxError)
	assert.Equal(t, 2, serr.Line)
	assert.Equal(t, 9, serr.Column)
}
