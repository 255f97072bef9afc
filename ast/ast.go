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

// Package ast declares the structures used to represent USFM syntax trees.
//
// A parsed book is an owned tree rooted at Book. Contents slices hold
// tagged-union members expressed as small marker interfaces; every marker
// family is a closed enumeration declared in this package. The tree carries
// no back-pointers and no ties to the source text: all strings are fresh
// copies.
package ast // import "scripta.cc/usfm/ast"

// A Book is an ordered sequence of top-level items. The first item of any
// tree produced by the parser is an ID.
type Book struct {
	Contents []BookContents
}

// All top-level items implement the BookContents interface.
//go:generate sumgen BookContents = ID | Version | Encoding | Status | Chapter | AltChapter | *Paragraph | *Poetry | *Element | Empty
type BookContents interface {
	bookContents()
}

// All paragraph and poetry children implement the ParagraphContents interface.
//go:generate sumgen ParagraphContents = Verse | Line | *Character | *Footnote | *CrossRef
type ParagraphContents interface {
	paragraphContents()
}

// All element children implement the ElementContents interface. Elements
// carry no verse markers.
//go:generate sumgen ElementContents = Line | *Character | *Footnote | *CrossRef
type ElementContents interface {
	elementContents()
}

// All character-span children implement the CharacterContents interface.
// Inline style cannot contain notes.
//go:generate sumgen CharacterContents = Line | *Character
type CharacterContents interface {
	characterContents()
}

// All footnote body items implement the FootnoteElement interface.
//go:generate sumgen FootnoteElement = NoteReference | *FootnoteText
type FootnoteElement interface {
	footnoteElement()
}

// All cross-reference body items implement the CrossRefElement interface.
//go:generate sumgen CrossRefElement = NoteReference | *CrossRefText
type CrossRefElement interface {
	crossRefElement()
}

// An ID identifies the book, from the \id marker. Text is the free
// remainder of the identification line.
type ID struct {
	Code BookIdentifier
	Text string
}

// A Version records the USFM version string from the \usfm marker,
// e.g. "3.0".
type Version string

// An Encoding records the character encoding named by the \ide marker.
type Encoding BookEncoding

// A Status records the \sts status number.
type Status uint16

// A Chapter starts a new chapter, from the \c marker.
type Chapter uint16

// An AltChapter records an alternate chapter number, from the \ca marker.
type AltChapter uint16

// An Empty is a contentless layout marker such as \b or \pb.
type Empty EmptyType

// A Paragraph is a prose container with a paragraph style.
type Paragraph struct {
	Style    ParagraphStyle
	Contents []ParagraphContents
}

// A Poetry is a verse-text container with a poetry style.
type Poetry struct {
	Style    PoetryStyle
	Contents []ParagraphContents
}

// An Element is a title, heading, or other non-scripture container.
type Element struct {
	Type     ElementType
	Contents []ElementContents
}

// A Verse marks the start of a verse, from the \v marker.
type Verse uint16

// A Line is a maximal run of text. Adjacent runs are coalesced during
// parsing, so a Line never neighbours another Line and is never empty.
type Line string

// A Character is an inline style span opened by \tag and closed by \tag*.
// Child characters appear in Contents via the \+tag nested form.
type Character struct {
	Type       CharacterType
	Contents   []CharacterContents
	Attributes []Attribute
}

// An Attribute is one key/value entry from a character span's |-block.
type Attribute struct {
	Name  string
	Value string
}

// A Footnote is a note introduced by \f or \fe.
type Footnote struct {
	Style    FootnoteStyle
	Caller   Caller
	Elements []FootnoteElement
}

// A CrossRef is a cross-reference note introduced by \x.
type CrossRef struct {
	Style    CrossRefStyle
	Caller   Caller
	Elements []CrossRefElement
}

// A NoteReference is a chapter/verse origin inside a note's body,
// e.g. the "1:1" of "\fr 1:1".
type NoteReference struct {
	Chapter   uint16
	Separator rune
	Verse     uint16
}

// A FootnoteText is a styled run of character contents inside a footnote.
type FootnoteText struct {
	Style    FootnoteElementStyle
	Contents []CharacterContents
}

// A CrossRefText is a styled run of character contents inside a
// cross-reference.
type CrossRefText struct {
	Style    CrossRefElementStyle
	Contents []CharacterContents
}

func (ID) bookContents()         {}
func (Version) bookContents()    {}
func (Encoding) bookContents()   {}
func (Status) bookContents()     {}
func (Chapter) bookContents()    {}
func (AltChapter) bookContents() {}
func (*Paragraph) bookContents() {}
func (*Poetry) bookContents()    {}
func (*Element) bookContents()   {}
func (Empty) bookContents()      {}

func (Verse) paragraphContents()      {}
func (Line) paragraphContents()       {}
func (*Character) paragraphContents() {}
func (*Footnote) paragraphContents()  {}
func (*CrossRef) paragraphContents()  {}

func (Line) elementContents()       {}
func (*Character) elementContents() {}
func (*Footnote) elementContents()  {}
func (*CrossRef) elementContents()  {}

func (Line) characterContents()       {}
func (*Character) characterContents() {}

func (NoteReference) footnoteElement() {}
func (*FootnoteText) footnoteElement() {}

func (NoteReference) crossRefElement() {}
func (*CrossRefText) crossRefElement() {}
