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

// This CLI utility runs a command listed below to render a parsed USFM
// book.
//
// Usage:
//   usfm [command]
//
// Available Commands:
//   completion  Generate the autocompletion script for the specified shell
//   dump        Print the parsed syntax tree
//   help        Help about any command
//   html        HTML output for a USFM book
//   text        Plain-text output for a USFM book
//
// Use "usfm [command] --help" for more information about a command.
package main

import (
	"fmt"
	"io"
	"os"

	"charm.land/log/v2"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"scripta.cc/usfm/ast"
	"scripta.cc/usfm/gen/html"
	"scripta.cc/usfm/gen/text"
	"scripta.cc/usfm/parser"
)

var logger = log.New(os.Stderr)

// parseInput reads the whole input file (or stdin when no argument is
// given) and parses it.
func parseInput(args []string) (*ast.Book, error) {
	src := os.Stdin
	name := "stdin"
	if len(args) != 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
		name = args[0]
	}
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	logger.Debug("read input", "file", name, "bytes", len(buf))
	book, err := parser.Parse(string(buf))
	if err != nil {
		return nil, fmt.Errorf("%s:%w", name, err)
	}
	return book, nil
}

func openOutput(outputfile string) (io.WriteCloser, error) {
	if len(outputfile) == 0 {
		return os.Stdout, nil
	}
	return os.Create(outputfile)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "usfm generator",
		Short: "output generation for USFM books",
		Long: `This CLI utility parses a USFM book and runs a command listed
below to render it.`,
	}

	var outputfile string
	var verbose bool
	rootCmd.PersistentFlags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parser diagnostics")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	}

	htmlCmd := &cobra.Command{
		Use:   "html [input] [-o output]",
		Short: "HTML output for a USFM book",
		Long: `This command parses a USFM book and converts it to HTML.
Text is automatically escaped. Notes become inline annotations.

If no input file is specified, input is read from standard input.
Similarly, if no output argument is specified, output is written to
standard output.`,
		Args: cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := parseInput(args)
			if err != nil {
				return err
			}
			out, err := openOutput(outputfile)
			if err != nil {
				return err
			}
			defer out.Close()
			g := html.Gen(book)
			g.Stdout = out
			return g.Run()
		},
	}

	textCmd := &cobra.Command{
		Use:   "text [input] [-o output]",
		Short: "Plain-text output for a USFM book",
		Args: cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := parseInput(args)
			if err != nil {
				return err
			}
			out, err := openOutput(outputfile)
			if err != nil {
				return err
			}
			defer out.Close()
			_, err = io.WriteString(out, text.Format(book))
			return err
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [input] [-o output]",
		Short: "Print the parsed syntax tree",
		Args: cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := parseInput(args)
			if err != nil {
				return err
			}
			out, err := openOutput(outputfile)
			if err != nil {
				return err
			}
			defer out.Close()
			_, err = io.WriteString(out, litter.Sdump(book)+"\n")
			return err
		},
	}

	rootCmd.AddCommand(htmlCmd, textCmd, dumpCmd)
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("usfm", "err", err)
	}
}
