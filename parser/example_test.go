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

package parser_test

import (
	"fmt"

	"scripta.cc/usfm/ast"
	"scripta.cc/usfm/parser"
)

func ExampleParse() {
	book, err := parser.Parse("\\id GEN The First Book\n\\c 1\n\\p \\v 1 In the beginning\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	id := book.Contents[0].(ast.ID)
	fmt.Println(id.Code, "-", id.Text)
	para := book.Contents[2].(*ast.Paragraph)
	fmt.Println(para.Contents[1])
	// Output:
	// Genesis - The First Book
	// In the beginning
}

func ExampleParse_syntaxError() {
	_, err := parser.Parse("\\id GEN x\n\\q no level\n")
	fmt.Println(err)
	// Output:
	// 2:1: expected book item marker
}
