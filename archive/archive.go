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

// Package archive provides an order-preserving binary encoding of parsed
// books. Decode(Encode(b)) reproduces b exactly for every book the parser
// can return.
package archive // import "scripta.cc/usfm/archive"

import (
	"encoding/gob"
	"fmt"
	"io"

	"scripta.cc/usfm/ast"
)

func init() {
	gob.Register(ast.ID{})
	gob.Register(ast.Version(""))
	gob.Register(ast.Encoding(0))
	gob.Register(ast.Status(0))
	gob.Register(ast.Chapter(0))
	gob.Register(ast.AltChapter(0))
	gob.Register(&ast.Paragraph{})
	gob.Register(&ast.Poetry{})
	gob.Register(&ast.Element{})
	gob.Register(ast.Empty(0))
	gob.Register(ast.Verse(0))
	gob.Register(ast.Line(""))
	gob.Register(&ast.Character{})
	gob.Register(&ast.Footnote{})
	gob.Register(&ast.CrossRef{})
	gob.Register(ast.NoteReference{})
	gob.Register(&ast.FootnoteText{})
	gob.Register(&ast.CrossRefText{})
}

// Encode writes the book to w in the archive encoding.
func Encode(w io.Writer, book *ast.Book) error {
	if err := gob.NewEncoder(w).Encode(book); err != nil {
		return fmt.Errorf("archive: encode: %w", err)
	}
	return nil
}

// Decode reads one archived book from r.
func Decode(r io.Reader) (*ast.Book, error) {
	var book ast.Book
	if err := gob.NewDecoder(r).Decode(&book); err != nil {
		return nil, fmt.Errorf("archive: decode: %w", err)
	}
	return &book, nil
}
