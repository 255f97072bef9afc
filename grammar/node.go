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

package grammar

// A Rule identifies the grammar production that matched a Node.
type Rule int

const (
	// Root.
	Book Rule = iota

	// Header productions.
	ID
	Code
	Text
	Version
	Encoding
	Status
	Chapter
	AltChapter

	// Containers.
	Para
	Poetry
	Element
	Empty

	// Container and body tokens.
	Tag
	Level
	Verse
	Line

	// Character spans and attributes.
	Char
	Attrib
	Key
	Value

	// Notes.
	Footnote
	CrossRef
	Caller
	Reference
	Number
	Separator
	NoteElem
)

var ruleNames = [...]string{
	Book:       "book",
	ID:         "id",
	Code:       "code",
	Text:       "text",
	Version:    "usfm",
	Encoding:   "encoding",
	Status:     "status",
	Chapter:    "chapter",
	AltChapter: "alt-chapter",
	Para:       "paragraph",
	Poetry:     "poetry",
	Element:    "element",
	Empty:      "empty",
	Tag:        "tag",
	Level:      "level",
	Verse:      "verse",
	Line:       "line",
	Char:       "character",
	Attrib:     "attribute",
	Key:        "key",
	Value:      "value",
	Footnote:   "footnote",
	CrossRef:   "cross-reference",
	Caller:     "caller",
	Reference:  "reference",
	Number:     "number",
	Separator:  "separator",
	NoteElem:   "note-element",
}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return "unknown"
	}
	return ruleNames[r]
}

// A Node is one match in the rule tree. Pos and End are byte offsets into
// the parsed input. Text is the payload of a leaf: the matched text for
// code, text, line, key, value, caller, number, and separator nodes, and
// the marker's argument (tag name, level digits, integer, encoding, or
// version string) for marker-headed leaves, whose Pos..End spans the whole
// marker. Line text may exclude the trailing line ending that the match
// consumed.
type Node struct {
	Rule     Rule
	Pos, End int
	Text     string
	Children []*Node
}
