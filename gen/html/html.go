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

// Package html converts a parsed book into HTML output.
// Text is automatically escaped.
//
// AST nodes correspond to the following HTML tags:
//
//	ID                          <h1 class="book"></h1>
//	Chapter                     <h2 class="chapter"></h2>
//	Paragraph                   <p></p>
//	Poetry                      <p class="poetry level-N"></p>
//	Element (major title)       <h1></h1>
//	Element (section)           <h3></h3>
//	Element (speaker)           <p class="speaker"></p>
//	Element (descriptive)       <p class="descriptive"></p>
//	Element (other)             <div></div>
//	Verse                       <sup class="verse"></sup>
//	Character (bold)            <b></b>
//	Character (italic)          <i></i>
//	Character (bold italic)     <b><i></i></b>
//	Character (emphasis)        <em></em>
//	Character (superscript)     <sup></sup>
//	Character (divine name)     <span class="divine-name"></span>
//	Character (words of Jesus)  <span class="words-of-jesus"></span>
//	Character (other)           <span></span>
//	Footnote / CrossRef         <sup class="footnote"/"crossref" title="..."></sup>
//	Empty (blank)               <br>
//	Empty (page break)          <hr>
//
// N in the poetry class is the marker's level, or 1 for unnumbered poetry
// styles. A note whose caller is '-' produces no output. Version,
// Encoding, Status, and AltChapter entries are metadata and produce no
// output.
package html // import "scripta.cc/usfm/gen/html"

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"scripta.cc/usfm/ast"
	"scripta.cc/usfm/gen"
)

type stickyCountWriter struct {
	n   int64
	err error
	w   io.Writer
}

func (c *stickyCountWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.err = err
	c.n += int64(n)
	return
}

// Generator represents a non-reusable HTML output generator for an
// *ast.Book.
type Generator struct {
	// Stdout specifies the generator's output. HTML is written there by
	// Run. When nil, output is discarded.
	Stdout io.Writer

	book *ast.Book
}

// Gen returns the Generator struct to convert the given book into HTML
// output.
func Gen(book *ast.Book) *Generator {
	return &Generator{book: book}
}

// Run generates the output, returning the first write error encountered.
func (g *Generator) Run() error {
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	return g.gen()
}

// Output runs the generator and returns its output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var stdout bytes.Buffer
	g.Stdout = &stdout
	err := g.Run()
	return stdout.Bytes(), err
}

func (g *Generator) gen() error {
	cw := &stickyCountWriter{0, nil, g.Stdout}
	for _, item := range g.book.Contents {
		switch t := item.(type) {
		case ast.ID:
			fmt.Fprintf(cw, "<h1 class=\"book\">%s</h1>\n", html.EscapeString(t.Code.String()))
		case ast.Chapter:
			fmt.Fprintf(cw, "<h2 class=\"chapter\">%d</h2>\n", t)
		case *ast.Paragraph:
			cw.Write([]byte("<p>"))
			g.paraContents(t.Contents, cw)
			cw.Write([]byte("</p>\n"))
		case *ast.Poetry:
			level := t.Style.Level
			if level == 0 {
				level = 1
			}
			fmt.Fprintf(cw, "<p class=\"poetry level-%d\">", level)
			g.paraContents(t.Contents, cw)
			cw.Write([]byte("</p>\n"))
		case *ast.Element:
			g.element(t, cw)
		case ast.Empty:
			if ast.EmptyType(t) == ast.PageBreak {
				cw.Write([]byte("<hr>\n"))
			} else {
				cw.Write([]byte("<br>\n"))
			}
		}
	}
	return cw.err
}

func (g *Generator) element(e *ast.Element, w io.Writer) {
	var open, close string
	switch e.Type.Kind {
	case ast.ElemMajorTitle:
		open, close = "<h1>", "</h1>\n"
	case ast.ElemMajorSection, ast.ElemSection:
		open, close = "<h3>", "</h3>\n"
	case ast.ElemSpeaker:
		open, close = `<p class="speaker">`, "</p>\n"
	case ast.ElemDescriptive:
		open, close = `<p class="descriptive">`, "</p>\n"
	default:
		open, close = "<div>", "</div>\n"
	}
	w.Write([]byte(open))
	for _, c := range e.Contents {
		g.inline(c.(ast.ParagraphContents), w)
	}
	w.Write([]byte(close))
}

func (g *Generator) paraContents(contents []ast.ParagraphContents, w io.Writer) {
	for _, c := range contents {
		g.inline(c, w)
	}
}

func (g *Generator) inline(c ast.ParagraphContents, w io.Writer) {
	switch t := c.(type) {
	case ast.Verse:
		fmt.Fprintf(w, "<sup class=\"verse\">%d</sup>", t)
	case ast.Line:
		w.Write([]byte(html.EscapeString(string(t))))
	case *ast.Character:
		g.character(t, w)
	case *ast.Footnote:
		var body []string
		for _, e := range t.Elements {
			switch el := e.(type) {
			case ast.NoteReference:
				body = append(body, gen.FormatReference(el))
			case *ast.FootnoteText:
				body = append(body, gen.Flatten(el.Contents))
			}
		}
		g.note("footnote", t.Caller, body, w)
	case *ast.CrossRef:
		var body []string
		for _, e := range t.Elements {
			switch el := e.(type) {
			case ast.NoteReference:
				body = append(body, gen.FormatReference(el))
			case *ast.CrossRefText:
				body = append(body, gen.Flatten(el.Contents))
			}
		}
		g.note("crossref", t.Caller, body, w)
	}
}

func (g *Generator) note(class string, caller ast.Caller, body []string, w io.Writer) {
	glyph := gen.CallerGlyph(caller, "*")
	if glyph == "" {
		return
	}
	fmt.Fprintf(w, "<sup class=\"%s\" title=\"%s\">%s</sup>",
		class, html.EscapeString(strings.Join(body, " ")), html.EscapeString(glyph))
}

func (g *Generator) character(c *ast.Character, w io.Writer) {
	var open, close string
	switch c.Type {
	case ast.CharBold:
		open, close = "<b>", "</b>"
	case ast.CharItalic:
		open, close = "<i>", "</i>"
	case ast.CharBoldItalic:
		open, close = "<b><i>", "</i></b>"
	case ast.CharEmphasis:
		open, close = "<em>", "</em>"
	case ast.CharSuperscript:
		open, close = "<sup>", "</sup>"
	case ast.CharDeity:
		open, close = `<span class="divine-name">`, "</span>"
	case ast.CharJesus:
		open, close = `<span class="words-of-jesus">`, "</span>"
	default:
		open, close = "<span>", "</span>"
	}
	w.Write([]byte(open))
	for _, cc := range c.Contents {
		switch t := cc.(type) {
		case ast.Line:
			w.Write([]byte(html.EscapeString(string(t))))
		case *ast.Character:
			g.character(t, w)
		}
	}
	w.Write([]byte(close))
}
