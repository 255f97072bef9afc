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

package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"scripta.cc/usfm/ast"
	"scripta.cc/usfm/grammar"
)

// The lowering walks the rule tree depth first and emits the typed document
// model. It is total over trees the grammar can produce; a dispatch miss or
// a failed integer decode means the grammar and this file have diverged,
// and panics.

func lowerBook(n *grammar.Node) *ast.Book {
	book := &ast.Book{Contents: make([]ast.BookContents, 0, len(n.Children))}
	for _, c := range n.Children {
		book.Contents = append(book.Contents, lowerBookContents(c))
	}
	return book
}

func lowerBookContents(n *grammar.Node) ast.BookContents {
	switch n.Rule {
	case grammar.ID:
		return ast.ID{
			Code: lookup(bookIdentifiers, "book identifier", n.Children[0].Text),
			Text: n.Children[1].Text,
		}
	case grammar.Version:
		return ast.Version(n.Text)
	case grammar.Encoding:
		return ast.Encoding(lookup(bookEncodings, "book encoding", n.Text))
	case grammar.Status:
		return ast.Status(integer16(n.Text))
	case grammar.Chapter:
		return ast.Chapter(integer16(n.Text))
	case grammar.AltChapter:
		return ast.AltChapter(integer16(n.Text))
	case grammar.Para:
		style, rest := paragraphStyle(n.Children)
		return &ast.Paragraph{Style: style, Contents: lowerParagraphContents(rest)}
	case grammar.Poetry:
		style, rest := poetryStyle(n.Children)
		return &ast.Poetry{Style: style, Contents: lowerParagraphContents(rest)}
	case grammar.Element:
		ty, rest := elementType(n.Children)
		return &ast.Element{Type: ty, Contents: lowerElementContents(rest)}
	case grammar.Empty:
		return ast.Empty(lookup(emptyTypes, "empty type", n.Children[0].Text))
	}
	panic(fmt.Sprintf("usfm: unexpected %v node at book level", n.Rule))
}

// paragraphStyle reads the tag and optional level off the front of a
// container's children and returns the remaining body nodes.
func paragraphStyle(children []*grammar.Node) (ast.ParagraphStyle, []*grammar.Node) {
	tag := children[0].Text
	if len(children) > 1 && children[1].Rule == grammar.Level {
		kind := lookup(numberedParagraphStyles, "numbered paragraph style", tag)
		return ast.ParagraphStyle{Kind: kind, Level: integer8(children[1].Text)}, children[2:]
	}
	return ast.ParagraphStyle{Kind: lookup(paragraphStyles, "paragraph style", tag)}, children[1:]
}

func poetryStyle(children []*grammar.Node) (ast.PoetryStyle, []*grammar.Node) {
	tag := children[0].Text
	if len(children) > 1 && children[1].Rule == grammar.Level {
		kind := lookup(numberedPoetryStyles, "numbered poetry style", tag)
		return ast.PoetryStyle{Kind: kind, Level: integer8(children[1].Text)}, children[2:]
	}
	return ast.PoetryStyle{Kind: lookup(poetryStyles, "poetry style", tag)}, children[1:]
}

func elementType(children []*grammar.Node) (ast.ElementType, []*grammar.Node) {
	tag := children[0].Text
	if len(children) > 1 && children[1].Rule == grammar.Level {
		kind := lookup(numberedElementTypes, "numbered element type", tag)
		return ast.ElementType{Kind: kind, Level: integer8(children[1].Text)}, children[2:]
	}
	return ast.ElementType{Kind: lookup(elementTypes, "element type", tag)}, children[1:]
}

func lowerParagraphContents(nodes []*grammar.Node) []ast.ParagraphContents {
	var out []ast.ParagraphContents
	for _, n := range nodes {
		switch n.Rule {
		case grammar.Verse:
			out = append(out, ast.Verse(integer16(n.Text)))
		case grammar.Line:
			out = append(out, ast.Line(n.Text))
		case grammar.Char:
			out = append(out, lowerCharacter(n))
		case grammar.Footnote:
			out = append(out, lowerFootnote(n))
		case grammar.CrossRef:
			out = append(out, lowerCrossRef(n))
		default:
			panic(fmt.Sprintf("usfm: unexpected %v node in paragraph", n.Rule))
		}
	}
	return out
}

func lowerElementContents(nodes []*grammar.Node) []ast.ElementContents {
	var out []ast.ElementContents
	for _, n := range nodes {
		switch n.Rule {
		case grammar.Line:
			out = append(out, ast.Line(n.Text))
		case grammar.Char:
			out = append(out, lowerCharacter(n))
		case grammar.Footnote:
			out = append(out, lowerFootnote(n))
		case grammar.CrossRef:
			out = append(out, lowerCrossRef(n))
		default:
			panic(fmt.Sprintf("usfm: unexpected %v node in element", n.Rule))
		}
	}
	return out
}

func lowerCharacterContents(nodes []*grammar.Node) []ast.CharacterContents {
	var out []ast.CharacterContents
	for _, n := range nodes {
		switch n.Rule {
		case grammar.Line:
			out = append(out, ast.Line(n.Text))
		case grammar.Char:
			out = append(out, lowerCharacter(n))
		default:
			panic(fmt.Sprintf("usfm: unexpected %v node in character span", n.Rule))
		}
	}
	return out
}

// lowerCharacter partitions a span's children: attribute nodes feed the
// attribute list, everything else is content.
func lowerCharacter(n *grammar.Node) *ast.Character {
	ch := &ast.Character{
		Type: lookup(characterTypes, "character type", n.Children[0].Text),
	}
	var contents []*grammar.Node
	for _, c := range n.Children[1:] {
		switch c.Rule {
		case grammar.Attrib:
			ch.Attributes = append(ch.Attributes, ast.Attribute{
				Name:  c.Children[0].Text,
				Value: c.Children[1].Text,
			})
		case grammar.Value:
			// A lone |value block is the implicit-lemma shorthand.
			ch.Attributes = append(ch.Attributes, ast.Attribute{Name: "lemma", Value: c.Text})
		default:
			contents = append(contents, c)
		}
	}
	ch.Contents = lowerCharacterContents(contents)
	return ch
}

func lowerFootnote(n *grammar.Node) *ast.Footnote {
	f := &ast.Footnote{
		Style:  lookup(footnoteStyles, "footnote style", n.Children[0].Text),
		Caller: lowerCaller(n.Children[1].Text),
	}
	for _, c := range n.Children[2:] {
		switch c.Rule {
		case grammar.Reference:
			f.Elements = append(f.Elements, lowerReference(c))
		case grammar.NoteElem:
			f.Elements = append(f.Elements, &ast.FootnoteText{
				Style:    lookup(footnoteElementStyles, "footnote element style", c.Children[0].Text),
				Contents: lowerCharacterContents(c.Children[1:]),
			})
		default:
			panic(fmt.Sprintf("usfm: unexpected %v node in footnote", c.Rule))
		}
	}
	return f
}

func lowerCrossRef(n *grammar.Node) *ast.CrossRef {
	x := &ast.CrossRef{
		Style:  lookup(crossRefStyles, "cross-reference style", n.Children[0].Text),
		Caller: lowerCaller(n.Children[1].Text),
	}
	for _, c := range n.Children[2:] {
		switch c.Rule {
		case grammar.Reference:
			x.Elements = append(x.Elements, lowerReference(c))
		case grammar.NoteElem:
			x.Elements = append(x.Elements, &ast.CrossRefText{
				Style:    lookup(crossRefElementStyles, "cross-reference element style", c.Children[0].Text),
				Contents: lowerCharacterContents(c.Children[1:]),
			})
		default:
			panic(fmt.Sprintf("usfm: unexpected %v node in cross-reference", c.Rule))
		}
	}
	return x
}

func lowerReference(n *grammar.Node) ast.NoteReference {
	sep, _ := utf8.DecodeRuneInString(n.Children[1].Text)
	return ast.NoteReference{
		Chapter:   integer16(n.Children[0].Text),
		Separator: sep,
		Verse:     integer16(n.Children[2].Text),
	}
}

func lowerCaller(s string) ast.Caller {
	switch s {
	case "+":
		return ast.Caller{Kind: ast.Auto}
	case "-":
		return ast.Caller{Kind: ast.None}
	}
	r, _ := utf8.DecodeRuneInString(s)
	return ast.Caller{Kind: ast.Literal, Glyph: r}
}

func integer16(s string) uint16 {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		panic(fmt.Sprintf("usfm: bad 16-bit integer span %q: %v", s, err))
	}
	return uint16(v)
}

func integer8(s string) uint8 {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		panic(fmt.Sprintf("usfm: bad 8-bit integer span %q: %v", s, err))
	}
	return uint8(v)
}
