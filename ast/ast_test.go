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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scripta.cc/usfm/ast"
)

func sampleBook() *ast.Book {
	return &ast.Book{Contents: []ast.BookContents{
		ast.ID{Code: ast.Genesis, Text: "Test"},
		ast.Chapter(1),
		&ast.Paragraph{
			Style: ast.ParagraphStyle{Kind: ast.ParaNormal},
			Contents: []ast.ParagraphContents{
				ast.Verse(1),
				ast.Line("In the beginning, God"),
				&ast.Footnote{
					Style:  ast.StyleFootnote,
					Caller: ast.Caller{Kind: ast.Auto},
					Elements: []ast.FootnoteElement{
						ast.NoteReference{Chapter: 1, Separator: ':', Verse: 1},
						&ast.FootnoteText{
							Style:    ast.FnText,
							Contents: []ast.CharacterContents{ast.Line("a note")},
						},
					},
				},
				&ast.Character{
					Type: ast.CharWord,
					Contents: []ast.CharacterContents{
						ast.Line("hello"),
						&ast.Character{Type: ast.CharDeity, Contents: []ast.CharacterContents{ast.Line("LORD")}},
					},
					Attributes: []ast.Attribute{{Name: "lemma", Value: "hello"}},
				},
			},
		},
	}}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	orig := sampleBook()
	clone := orig.Clone()
	require.True(t, orig.Equal(clone))

	// Mutate every level of the clone and check the original is untouched.
	para := clone.Contents[2].(*ast.Paragraph)
	para.Contents[1] = ast.Line("changed")
	ch := para.Contents[3].(*ast.Character)
	ch.Attributes[0].Value = "changed"
	inner := ch.Contents[1].(*ast.Character)
	inner.Contents[0] = ast.Line("changed")
	note := para.Contents[2].(*ast.Footnote)
	note.Elements[1].(*ast.FootnoteText).Contents[0] = ast.Line("changed")

	require.True(t, orig.Equal(sampleBook()))
	require.False(t, orig.Equal(clone))
}

func TestCloneNil(t *testing.T) {
	t.Parallel()

	var b *ast.Book
	assert.Nil(t, b.Clone())
}

func TestBookNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Genesis", ast.Genesis.String())
	assert.Equal(t, "1 Samuel", ast.OneSamuel.String())
	assert.Equal(t, "Song of Songs", ast.SongOfSongs.String())
	assert.Equal(t, "Extra G", ast.ExtraG.String())
	assert.Equal(t, "Unknown", ast.BookIdentifier(-1).String())
}
