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

// Package text renders a parsed book as reader-oriented plain text.
//
// The output carries the book title with an underline, "Chapter N"
// headings, verse numbers in "N." form, and notes inlined in brackets as
// "[ref - text]". Inline style spans are flattened to their text.
package text // import "scripta.cc/usfm/gen/text"

import (
	"fmt"
	"strings"

	"scripta.cc/usfm/ast"
	"scripta.cc/usfm/gen"
)

// Format renders the book as plain text.
func Format(book *ast.Book) string {
	var sb strings.Builder
	for _, item := range book.Contents {
		switch t := item.(type) {
		case ast.ID:
			title := t.Code.String()
			sb.WriteString(title + "\n")
			sb.WriteString(strings.Repeat("-", len(title)) + "\n\n")
		case ast.Chapter:
			fmt.Fprintf(&sb, "\nChapter %d\n\n", t)
		case *ast.Paragraph:
			writeContents(&sb, t.Contents)
			sb.WriteString("\n")
		case *ast.Poetry:
			indent := int(t.Style.Level)
			if indent == 0 {
				indent = 1
			}
			sb.WriteString(strings.Repeat("  ", indent))
			writeContents(&sb, t.Contents)
			sb.WriteString("\n")
		case *ast.Element:
			var line strings.Builder
			for _, c := range t.Contents {
				writeInline(&line, c.(ast.ParagraphContents))
			}
			if line.Len() > 0 {
				sb.WriteString(line.String() + "\n")
			}
		case ast.Empty:
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func writeContents(sb *strings.Builder, contents []ast.ParagraphContents) {
	for _, c := range contents {
		writeInline(sb, c)
	}
}

func writeInline(sb *strings.Builder, c ast.ParagraphContents) {
	switch t := c.(type) {
	case ast.Verse:
		fmt.Fprintf(sb, "%d. ", t)
	case ast.Line:
		sb.WriteString(string(t))
	case *ast.Character:
		sb.WriteString(gen.Flatten([]ast.CharacterContents{t}))
	case *ast.Footnote:
		writeNote(sb, footnoteBody(t))
	case *ast.CrossRef:
		writeNote(sb, crossRefBody(t))
	}
}

func footnoteBody(f *ast.Footnote) []string {
	var parts []string
	for _, e := range f.Elements {
		switch el := e.(type) {
		case ast.NoteReference:
			parts = append(parts, gen.FormatReference(el))
		case *ast.FootnoteText:
			parts = append(parts, gen.Flatten(el.Contents))
		}
	}
	return parts
}

func crossRefBody(x *ast.CrossRef) []string {
	var parts []string
	for _, e := range x.Elements {
		switch el := e.(type) {
		case ast.NoteReference:
			parts = append(parts, gen.FormatReference(el))
		case *ast.CrossRefText:
			parts = append(parts, gen.Flatten(el.Contents))
		}
	}
	return parts
}

func writeNote(sb *strings.Builder, parts []string) {
	if len(parts) == 0 {
		return
	}
	if len(parts) > 1 {
		fmt.Fprintf(sb, " [%s - %s]", parts[0], strings.Join(parts[1:], " "))
		return
	}
	fmt.Fprintf(sb, " [%s]", parts[0])
}
