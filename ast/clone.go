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

package ast

import "reflect"

// Clone returns a deep copy of the book. The copy shares no mutable state
// with the original.
func (b *Book) Clone() *Book {
	if b == nil {
		return nil
	}
	c := &Book{}
	if b.Contents != nil {
		c.Contents = make([]BookContents, len(b.Contents))
		for i, item := range b.Contents {
			c.Contents[i] = cloneBookContents(item)
		}
	}
	return c
}

// Equal reports structural equality of two books.
func (b *Book) Equal(o *Book) bool {
	return reflect.DeepEqual(b, o)
}

func cloneBookContents(c BookContents) BookContents {
	switch t := c.(type) {
	case *Paragraph:
		return &Paragraph{Style: t.Style, Contents: cloneParagraphContents(t.Contents)}
	case *Poetry:
		return &Poetry{Style: t.Style, Contents: cloneParagraphContents(t.Contents)}
	case *Element:
		return &Element{Type: t.Type, Contents: cloneElementContents(t.Contents)}
	default:
		// ID, Version, Encoding, Status, Chapter, AltChapter, Empty are
		// plain values.
		return c
	}
}

func cloneParagraphContents(cs []ParagraphContents) []ParagraphContents {
	if cs == nil {
		return nil
	}
	out := make([]ParagraphContents, len(cs))
	for i, c := range cs {
		switch t := c.(type) {
		case *Character:
			out[i] = t.clone()
		case *Footnote:
			out[i] = t.clone()
		case *CrossRef:
			out[i] = t.clone()
		default:
			out[i] = c
		}
	}
	return out
}

func cloneElementContents(cs []ElementContents) []ElementContents {
	if cs == nil {
		return nil
	}
	out := make([]ElementContents, len(cs))
	for i, c := range cs {
		switch t := c.(type) {
		case *Character:
			out[i] = t.clone()
		case *Footnote:
			out[i] = t.clone()
		case *CrossRef:
			out[i] = t.clone()
		default:
			out[i] = c
		}
	}
	return out
}

func cloneCharacterContents(cs []CharacterContents) []CharacterContents {
	if cs == nil {
		return nil
	}
	out := make([]CharacterContents, len(cs))
	for i, c := range cs {
		if t, ok := c.(*Character); ok {
			out[i] = t.clone()
		} else {
			out[i] = c
		}
	}
	return out
}

func (c *Character) clone() *Character {
	n := &Character{Type: c.Type, Contents: cloneCharacterContents(c.Contents)}
	if c.Attributes != nil {
		n.Attributes = make([]Attribute, len(c.Attributes))
		copy(n.Attributes, c.Attributes)
	}
	return n
}

func (f *Footnote) clone() *Footnote {
	n := &Footnote{Style: f.Style, Caller: f.Caller}
	if f.Elements != nil {
		n.Elements = make([]FootnoteElement, len(f.Elements))
		for i, e := range f.Elements {
			if t, ok := e.(*FootnoteText); ok {
				n.Elements[i] = &FootnoteText{Style: t.Style, Contents: cloneCharacterContents(t.Contents)}
			} else {
				n.Elements[i] = e
			}
		}
	}
	return n
}

func (x *CrossRef) clone() *CrossRef {
	n := &CrossRef{Style: x.Style, Caller: x.Caller}
	if x.Elements != nil {
		n.Elements = make([]CrossRefElement, len(x.Elements))
		for i, e := range x.Elements {
			if t, ok := e.(*CrossRefText); ok {
				n.Elements[i] = &CrossRefText{Style: t.Style, Contents: cloneCharacterContents(t.Contents)}
			} else {
				n.Elements[i] = e
			}
		}
	}
	return n
}
