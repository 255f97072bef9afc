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

// Package grammar implements the USFM recogniser. It matches a source
// string against a PEG-style grammar and produces a tree of rule-tagged
// spans into the input, or a *SyntaxError when the input does not belong
// to the language.
//
// The recogniser adheres to the following grammar for USFM source:
//
//	book       = id book_item* EOI .
//	book_item  = usfm | ide | sts | c | ca | p | pn | q | qn | e | en | em .
//	id         = "\id " ws code ws rest_of_line .
//	usfm       = "\usfm" ws rest_of_line .
//	ide        = "\ide" ws ( "CP-1252" | "CP-1251" | "UTF-8" | "UTF-16" ) .
//	sts        = "\sts" ws integer .
//	c          = "\c" ws integer .
//	ca         = "\ca" ws integer .
//	p          = "\" p_tag gap para_body .
//	pn         = "\" pn_tag integer gap para_body .
//	q          = "\" q_tag gap para_body .
//	qn         = "\" qn_tag integer gap para_body .
//	e          = "\" e_tag gap elem_body .
//	en         = "\" en_tag integer gap elem_body .
//	em         = "\" em_tag gap .
//	para_body  = ( verse | line | character | footnote | crossref )* .
//	elem_body  = ( line | character | footnote | crossref )* .
//	verse      = "\v" ws integer gap .
//	line       = one or more characters not beginning a marker; sheds one
//	             trailing line ending .
//	character  = "\" k_tag gap char_body attribs? "\" k_tag "*" .
//	nested     = "\+" k_tag gap char_body attribs? "\+" k_tag "*" .
//	char_body  = ( line | nested )* .
//	attribs    = "|" ( attrib ( "," attrib )* | bare_value ) .
//	attrib     = name "=" '"' value '"' .
//	footnote   = "\" f_tag ws caller gap ( reference | note_elem )* close? .
//	crossref   = "\" x_tag ws caller gap ( reference | note_elem )* close? .
//	reference  = "\fr"/"\xo" ws integer sep integer gap .
//	note_elem  = "\" note_tag gap char_body ( "\" note_tag "*" )? .
//	caller     = one or more characters other than whitespace and "\" .
//	ws         = ( " " | "\t" )* .
//	gap        = ws [ line_ending ] .
//
// Marker opens swallow the whitespace run (and at most one line ending)
// that follows them; close tokens swallow nothing, so text after a closing
// marker keeps its leading spaces. An unclosed note or note element ends at
// the first marker that cannot continue it.
package grammar // import "scripta.cc/usfm/grammar"

import (
	"strings"
	"unicode/utf8"
)

// Parse matches src against the USFM grammar and returns the rule tree.
// The error, when non-nil, is a *SyntaxError.
func Parse(src string) (*Node, error) {
	p := &parser{src: src, failPos: -1}
	book, ok := p.book()
	if !ok {
		return nil, p.syntaxError()
	}
	return book, nil
}

func set(tags ...string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}

var (
	paraTags      = set("p", "m", "po", "pr", "cls", "pmo", "pm", "pmc", "pmr", "mi", "nb", "pc", "lit")
	paraNumTags   = set("pi", "ph")
	poetryTags    = set("qr", "qc", "qa", "qd")
	poetryNumTags = set("q", "qm")
	elemTags      = set("rem", "h", "ip", "ipi", "im", "imi", "ipq", "imq", "ipr", "ib",
		"iot", "iex", "ie", "cl", "cp", "cd", "mr", "sr", "r", "d", "sp")
	elemNumTags = set("toc", "toca", "imt", "is", "iq", "ili", "io", "imte",
		"mt", "mte", "ms", "s", "sd")
	emptyTags = set("b", "pb")
	charTags  = set("ior", "iqt", "rq", "vp", "qs", "qac", "add", "bk", "dc", "k",
		"nd", "ord", "pn", "png", "addpn", "qt", "sig", "sls", "tl", "wj",
		"em", "bd", "it", "bdit", "no", "sc", "sup", "ndx", "rb", "pro",
		"w", "wg", "wh", "wa", "jmp")
	footnoteTags     = set("f", "fe")
	footnoteElemTags = set("fq", "fqa", "fk", "fl", "fw", "fp", "ft", "fdc", "fm")
	crossRefTags     = set("x")
	crossRefElemTags = set("xk", "xq", "xt", "xta", "xop", "xot", "xnt", "xdc", "rq")

	encodingTags = []string{"CP-1252", "CP-1251", "UTF-8", "UTF-16"}

	bookCodes = set("GEN", "EXO", "LEV", "NUM", "DEU", "JOS", "JDG", "RUT", "1SA", "2SA",
		"1KI", "2KI", "1CH", "2CH", "EZR", "NEH", "EST", "JOB", "PSA", "PRO", "ECC",
		"SNG", "ISA", "JER", "LAM", "EZK", "DAN", "HOS", "JOL", "AMO", "OBA", "JON",
		"MIC", "NAM", "HAB", "ZEP", "HAG", "ZEC", "MAL", "MAT", "MRK", "LUK", "JHN",
		"ACT", "ROM", "1CO", "2CO", "GAL", "EPH", "PHP", "COL", "1TH", "2TH", "1TI",
		"2TI", "TIT", "PHM", "HEB", "JAS", "1PE", "2PE", "1JN", "2JN", "3JN", "JUD",
		"REV", "TOB", "JDT", "ESG", "WIS", "SIR", "BAR", "LJE", "S3Y", "SUS", "BEL",
		"1MA", "2MA", "3MA", "4MA", "1ES", "2ES", "MAN", "PS2", "ODA", "PSS", "EZA",
		"5EZ", "6EZ", "DAG", "PS3", "2BA", "LBA", "JUB", "ENO", "1MQ", "2MQ", "3MQ",
		"REP", "4BA", "LAO", "FRT", "BAK", "OTH", "INT", "CNC", "GLO", "TDX", "NDX",
		"XXA", "XXB", "XXC", "XXD", "XXE", "XXF", "XXG")
)

type parser struct {
	src      string
	pos      int
	failPos  int
	expected []string
}

// fail records what would have continued the match at the cursor and
// returns false. Only the deepest failure position is retained.
func (p *parser) fail(what string) bool {
	if p.pos > p.failPos {
		p.failPos = p.pos
		p.expected = p.expected[:0]
	}
	if p.pos == p.failPos {
		for _, e := range p.expected {
			if e == what {
				return false
			}
		}
		p.expected = append(p.expected, what)
	}
	return false
}

func (p *parser) syntaxError() *SyntaxError {
	off := p.failPos
	if off < 0 {
		off = 0
	}
	line := 1 + strings.Count(p.src[:off], "\n")
	start := strings.LastIndexByte(p.src[:off], '\n') + 1
	exp := p.expected
	if len(exp) == 0 {
		exp = []string{"valid USFM"}
	}
	return &SyntaxError{
		Offset:   off,
		Line:     line,
		Column:   1 + utf8.RuneCountInString(p.src[start:off]),
		Expected: exp,
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) at(c byte) bool { return p.pos < len(p.src) && p.src[p.pos] == c }

func (p *parser) lit(s string) bool {
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

// ws consumes spaces and tabs.
func (p *parser) ws() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// lineEnding consumes a single "\n" or "\r\n".
func (p *parser) lineEnding() bool {
	if p.at('\n') {
		p.pos++
		return true
	}
	if p.at('\r') && p.pos+1 < len(p.src) && p.src[p.pos+1] == '\n' {
		p.pos += 2
		return true
	}
	return false
}

// gap consumes the whitespace attached to a marker open: spaces, tabs, and
// at most one line ending.
func (p *parser) gap() {
	p.ws()
	p.lineEnding()
}

// blank consumes any run of whitespace between book items.
func (p *parser) blank() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) digits() (string, bool) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return "", false
	}
	return p.src[start:p.pos], true
}

// A marker is one backslash token inspected ahead of the cursor.
type marker struct {
	nested bool   // leading '+'
	tag    string // lowercase letters
	level  string // digit suffix, possibly empty
	close  bool   // trailing '*'
	width  int    // bytes from the backslash through the star
}

// peekMarker inspects the marker token at the cursor without consuming it.
func (p *parser) peekMarker() (marker, bool) {
	if !p.at('\\') {
		return marker{}, false
	}
	i := p.pos + 1
	var m marker
	if i < len(p.src) && p.src[i] == '+' {
		m.nested = true
		i++
	}
	ts := i
	for i < len(p.src) && p.src[i] >= 'a' && p.src[i] <= 'z' {
		i++
	}
	if i == ts {
		return marker{}, false
	}
	m.tag = p.src[ts:i]
	ls := i
	for i < len(p.src) && p.src[i] >= '0' && p.src[i] <= '9' {
		i++
	}
	m.level = p.src[ls:i]
	if i < len(p.src) && p.src[i] == '*' {
		m.close = true
		i++
	}
	m.width = i - p.pos
	return m, true
}

func (p *parser) consume(m marker) { p.pos += m.width }

func (m marker) token() string {
	s := "\\"
	if m.nested {
		s += "+"
	}
	s += m.tag + m.level
	if m.close {
		s += "*"
	}
	return s
}

// book = id book_item* EOI .
func (p *parser) book() (*Node, bool) {
	n := &Node{Rule: Book, Pos: p.pos}
	p.lit("\uFEFF")
	p.blank()
	id, ok := p.id()
	if !ok {
		return nil, false
	}
	n.Children = append(n.Children, id)
	for {
		p.blank()
		if p.eof() {
			break
		}
		item, ok := p.bookItem()
		if !ok {
			return nil, false
		}
		n.Children = append(n.Children, item)
	}
	n.End = p.pos
	return n, true
}

func isCodeByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// id = "\id" ws code ws rest_of_line .
func (p *parser) id() (*Node, bool) {
	start := p.pos
	if !p.lit("\\id ") {
		return nil, p.fail(`\id`)
	}
	p.ws()
	cs := p.pos
	for p.pos < len(p.src) && isCodeByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos-cs != 3 || !bookCodes[p.src[cs:p.pos]] {
		p.pos = cs
		return nil, p.fail("book code")
	}
	code := &Node{Rule: Code, Pos: cs, End: p.pos, Text: p.src[cs:p.pos]}
	p.ws()
	ts := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '\n' && p.src[p.pos] != '\r' {
		p.pos++
	}
	text := &Node{Rule: Text, Pos: ts, End: p.pos, Text: p.src[ts:p.pos]}
	p.lineEnding()
	return &Node{Rule: ID, Pos: start, End: p.pos, Children: []*Node{code, text}}, true
}

func (p *parser) bookItem() (*Node, bool) {
	m, ok := p.peekMarker()
	if !ok || m.nested || m.close {
		return nil, p.fail("marker")
	}
	if m.level == "" {
		switch m.tag {
		case "usfm":
			return p.headerLine(m, Version)
		case "ide":
			return p.ide(m)
		case "sts":
			return p.headerInt(m, Status)
		case "c":
			return p.headerInt(m, Chapter)
		case "ca":
			return p.headerInt(m, AltChapter)
		}
		switch {
		case paraTags[m.tag]:
			return p.container(m, Para, true)
		case poetryTags[m.tag]:
			return p.container(m, Poetry, true)
		case elemTags[m.tag]:
			return p.container(m, Element, false)
		case emptyTags[m.tag]:
			return p.empty(m)
		}
	} else {
		switch {
		case paraNumTags[m.tag]:
			return p.container(m, Para, true)
		case poetryNumTags[m.tag]:
			return p.container(m, Poetry, true)
		case elemNumTags[m.tag]:
			return p.container(m, Element, false)
		}
	}
	return nil, p.fail("book item marker")
}

// headerLine covers the rest-of-line headers: \usfm.
func (p *parser) headerLine(m marker, rule Rule) (*Node, bool) {
	start := p.pos
	p.consume(m)
	p.ws()
	ts := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '\n' && p.src[p.pos] != '\r' {
		p.pos++
	}
	text := p.src[ts:p.pos]
	p.lineEnding()
	return &Node{Rule: rule, Pos: start, End: p.pos, Text: text}, true
}

// ide = "\ide" ws encoding_tag .
func (p *parser) ide(m marker) (*Node, bool) {
	start := p.pos
	p.consume(m)
	p.ws()
	for _, enc := range encodingTags {
		es := p.pos
		if p.lit(enc) {
			p.gap()
			return &Node{Rule: Encoding, Pos: start, End: p.pos, Text: p.src[es : es+len(enc)]}, true
		}
	}
	return nil, p.fail("encoding name")
}

func (p *parser) headerInt(m marker, rule Rule) (*Node, bool) {
	start := p.pos
	p.consume(m)
	p.ws()
	d, ok := p.digits()
	if !ok {
		return nil, p.fail("integer")
	}
	n := &Node{Rule: rule, Pos: start, End: p.pos, Text: d}
	p.gap()
	return n, true
}

// empty = "\" em_tag gap .
func (p *parser) empty(m marker) (*Node, bool) {
	start := p.pos
	p.consume(m)
	tag := &Node{Rule: Tag, Pos: start, End: start + m.width, Text: m.tag}
	p.gap()
	return &Node{Rule: Empty, Pos: start, End: p.pos, Children: []*Node{tag}}, true
}

func (p *parser) container(m marker, rule Rule, allowVerse bool) (*Node, bool) {
	start := p.pos
	p.consume(m)
	children := []*Node{{Rule: Tag, Pos: start, End: p.pos, Text: m.tag}}
	if m.level != "" {
		children = append(children, &Node{Rule: Level, Pos: start, End: p.pos, Text: m.level})
	}
	p.gap()
	body, ok := p.body(allowVerse)
	if !ok {
		return nil, false
	}
	children = append(children, body...)
	return &Node{Rule: rule, Pos: start, End: p.pos, Children: children}, true
}

// body matches para_body or elem_body depending on allowVerse. It stops,
// without consuming, at any marker that does not open a body item.
func (p *parser) body(allowVerse bool) ([]*Node, bool) {
	var items []*Node
	for {
		if p.eof() {
			return items, true
		}
		if !p.at('\\') {
			if ln := p.line("\\"); ln != nil {
				items = append(items, ln)
			}
			continue
		}
		m, ok := p.peekMarker()
		if !ok || m.nested || m.close || m.level != "" {
			return items, true
		}
		switch {
		case allowVerse && m.tag == "v":
			v, ok := p.verse(m)
			if !ok {
				return nil, false
			}
			items = append(items, v)
		case charTags[m.tag]:
			c, ok := p.character(false)
			if !ok {
				return nil, false
			}
			items = append(items, c)
		case footnoteTags[m.tag]:
			f, ok := p.note(m, Footnote)
			if !ok {
				return nil, false
			}
			items = append(items, f)
		case crossRefTags[m.tag]:
			x, ok := p.note(m, CrossRef)
			if !ok {
				return nil, false
			}
			items = append(items, x)
		default:
			return items, true
		}
	}
}

// line matches text up to the next stop byte or end of input, then sheds
// one trailing line ending. It returns nil, with the raw span consumed,
// when nothing remains after the trim.
func (p *parser) line(stops string) *Node {
	start := p.pos
	i := p.pos
	for i < len(p.src) && strings.IndexByte(stops, p.src[i]) < 0 {
		i++
	}
	end := i
	if end > start && p.src[end-1] == '\n' {
		end--
		if end > start && p.src[end-1] == '\r' {
			end--
		}
	}
	p.pos = i
	if end == start {
		return nil
	}
	return &Node{Rule: Line, Pos: start, End: end, Text: p.src[start:end]}
}

// verse = "\v" ws integer gap .
func (p *parser) verse(m marker) (*Node, bool) {
	start := p.pos
	p.consume(m)
	p.ws()
	d, ok := p.digits()
	if !ok {
		return nil, p.fail("integer")
	}
	n := &Node{Rule: Verse, Pos: start, End: p.pos, Text: d}
	p.gap()
	return n, true
}

// character matches an inline span. The nested flag selects the \+ form,
// which is the only form admitted inside another span.
func (p *parser) character(nested bool) (*Node, bool) {
	start := p.pos
	m, _ := p.peekMarker()
	p.consume(m)
	children := []*Node{{Rule: Tag, Pos: start, End: p.pos, Text: m.tag}}
	p.gap()
	body, ok := p.charBody("\\|")
	if !ok {
		return nil, false
	}
	children = append(children, body...)
	if p.at('|') {
		attrs, ok := p.attribs()
		if !ok {
			return nil, false
		}
		children = append(children, attrs...)
	}
	cl, ok := p.peekMarker()
	if !ok || !cl.close || cl.nested != nested || cl.tag != m.tag || cl.level != "" {
		want := marker{nested: nested, tag: m.tag, close: true}
		return nil, p.fail(want.token())
	}
	p.consume(cl)
	return &Node{Rule: Char, Pos: start, End: p.pos, Children: children}, true
}

// charBody matches lines and \+ nested spans until a stop byte or a marker
// that is not a nested open.
func (p *parser) charBody(stops string) ([]*Node, bool) {
	var items []*Node
	for {
		if p.eof() {
			return items, true
		}
		if p.at('\\') {
			m, ok := p.peekMarker()
			if ok && m.nested && !m.close && m.level == "" && charTags[m.tag] {
				c, ok := p.character(true)
				if !ok {
					return nil, false
				}
				items = append(items, c)
				continue
			}
			return items, true
		}
		if strings.IndexByte(stops, p.src[p.pos]) >= 0 {
			return items, true
		}
		if ln := p.line(stops); ln != nil {
			items = append(items, ln)
		}
	}
}

func isNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '-' || c == '_' || c == ':'
}

// attribs matches the |-block of a character span. The name="value" list
// is attempted first; on any mismatch the block is a single bare value.
func (p *parser) attribs() ([]*Node, bool) {
	p.pos++ // '|'
	save := p.pos
	if nodes, ok := p.attribList(); ok {
		return nodes, true
	}
	p.pos = save
	vs := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '\\' {
		p.pos++
	}
	return []*Node{{Rule: Value, Pos: vs, End: p.pos, Text: p.src[vs:p.pos]}}, true
}

func (p *parser) attribList() ([]*Node, bool) {
	var nodes []*Node
	for {
		p.ws()
		as := p.pos
		ks := p.pos
		for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
			p.pos++
		}
		if p.pos == ks {
			return nil, false
		}
		key := &Node{Rule: Key, Pos: ks, End: p.pos, Text: p.src[ks:p.pos]}
		p.ws()
		if !p.lit("=") {
			return nil, false
		}
		p.ws()
		if !p.lit(`"`) {
			return nil, false
		}
		vs := p.pos
		for p.pos < len(p.src) && p.src[p.pos] != '"' && p.src[p.pos] != '\\' && p.src[p.pos] != '\n' {
			p.pos++
		}
		if !p.at('"') {
			return nil, false
		}
		val := &Node{Rule: Value, Pos: vs, End: p.pos, Text: p.src[vs:p.pos]}
		p.pos++
		nodes = append(nodes, &Node{Rule: Attrib, Pos: as, End: p.pos, Children: []*Node{key, val}})
		p.ws()
		if p.at(',') {
			p.pos++
			continue
		}
		return nodes, p.at('\\')
	}
}

func isCallerByte(c byte) bool {
	return c != ' ' && c != '\t' && c != '\n' && c != '\r' && c != '\\'
}

// note matches a footnote or cross-reference. An unclosed note ends at the
// first marker that is not a reference, a note element of its family, or
// its own closer.
func (p *parser) note(m marker, rule Rule) (*Node, bool) {
	start := p.pos
	p.consume(m)
	children := []*Node{{Rule: Tag, Pos: start, End: p.pos, Text: m.tag}}
	p.ws()
	cs := p.pos
	for p.pos < len(p.src) && isCallerByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == cs {
		return nil, p.fail("note caller")
	}
	children = append(children, &Node{Rule: Caller, Pos: cs, End: p.pos, Text: p.src[cs:p.pos]})
	p.gap()

	refTag, elemSet := "fr", footnoteElemTags
	if rule == CrossRef {
		refTag, elemSet = "xo", crossRefElemTags
	}
	for {
		p.blank()
		if p.eof() {
			break
		}
		if !p.at('\\') {
			return nil, p.fail("note element")
		}
		m2, ok := p.peekMarker()
		if !ok {
			return nil, p.fail("marker")
		}
		if m2.close && !m2.nested && m2.tag == m.tag && m2.level == "" {
			p.consume(m2)
			break
		}
		if m2.nested || m2.close || m2.level != "" {
			break
		}
		if m2.tag == refTag {
			r, ok := p.reference(m2)
			if !ok {
				return nil, false
			}
			children = append(children, r)
			continue
		}
		if elemSet[m2.tag] {
			e, ok := p.noteElem(m2)
			if !ok {
				return nil, false
			}
			children = append(children, e)
			continue
		}
		break
	}
	return &Node{Rule: rule, Pos: start, End: p.pos, Children: children}, true
}

// reference = "\fr"/"\xo" ws integer sep integer gap .
func (p *parser) reference(m marker) (*Node, bool) {
	start := p.pos
	p.consume(m)
	p.ws()
	ds := p.pos
	d1, ok := p.digits()
	if !ok {
		return nil, p.fail("integer")
	}
	first := &Node{Rule: Number, Pos: ds, End: p.pos, Text: d1}
	if p.eof() {
		return nil, p.fail("reference separator")
	}
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	if (r >= '0' && r <= '9') || r == '\\' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return nil, p.fail("reference separator")
	}
	sep := &Node{Rule: Separator, Pos: p.pos, End: p.pos + size, Text: string(r)}
	p.pos += size
	ds = p.pos
	d2, ok := p.digits()
	if !ok {
		return nil, p.fail("integer")
	}
	second := &Node{Rule: Number, Pos: ds, End: p.pos, Text: d2}
	n := &Node{Rule: Reference, Pos: start, End: p.pos, Children: []*Node{first, sep, second}}
	p.gap()
	return n, true
}

// noteElem matches a note element in closed or open form. The open form
// ends, without consuming, at any marker that is not a \+ nested span.
func (p *parser) noteElem(m marker) (*Node, bool) {
	start := p.pos
	p.consume(m)
	children := []*Node{{Rule: Tag, Pos: start, End: p.pos, Text: m.tag}}
	p.gap()
	body, ok := p.charBody("\\")
	if !ok {
		return nil, false
	}
	children = append(children, body...)
	if cl, ok := p.peekMarker(); ok && cl.close && !cl.nested && cl.tag == m.tag && cl.level == "" {
		p.consume(cl)
	}
	return &Node{Rule: NoteElem, Pos: start, End: p.pos, Children: children}, true
}
