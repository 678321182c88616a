/*
Command wxcssfmt compiles a CSS source file through the style pipeline
(package sheet) and reports its structure and any recoverable
warnings, grounded in the low-ceremony stdlib-flag CLIs of the pack
(toakleaf-less.go's cmd/lessc-go, withastro-compiler's main.go):
positional input/output files, "-" for stdin, flags for everything
else, a plain-text report written to stdout or a file.

Usage

	wxcssfmt [options] <input.css|-> [output]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/wxcss/diag"
	"github.com/npillmayer/wxcss/sheet"
)

func main() {
	var (
		basePath string
		warnExit bool
		silent   bool
	)

	flag.StringVar(&basePath, "base", "", "import base path for resolving relative @import targets (default: input file's own path)")
	flag.BoolVar(&warnExit, "warn-exit", false, "exit with status 1 if any warning was reported")
	flag.BoolVar(&silent, "silent", false, "suppress the informational summary, report warnings only")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "wxcssfmt: no input file specified")
		printUsage()
		os.Exit(1)
	}
	inputPath := args[0]
	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	}

	var source []byte
	var err error
	if inputPath == "-" {
		source, err = io.ReadAll(os.Stdin)
	} else {
		source, err = os.ReadFile(inputPath)
		if basePath == "" {
			basePath = inputPath
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "wxcssfmt: reading %s: %v\n", inputPath, err)
		os.Exit(1)
	}

	r := diag.NewReporter()
	compiled := sheet.Build(string(source), basePath, r)

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wxcssfmt: creating %s: %v\n", outputPath, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	if !silent {
		fmt.Fprintf(w, "%s: %d rule(s), %d import(s), %d keyframes block(s), %d font-face(s)\n",
			filepath.Base(inputPath), len(compiled.Rules), len(compiled.Imports),
			len(compiled.Keyframes), len(compiled.FontFaces))
	}
	for _, warning := range r.Warnings() {
		fmt.Fprintln(w, warning.String())
	}

	if warnExit && r.HasWarnings() {
		w.Flush()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `wxcssfmt - compile and report on a CSS stylesheet

Usage: wxcssfmt [options] <input.css|-> [report.txt]

Input:
  <input.css>   compile a CSS file
  -             read CSS from stdin

Options:
  -base=PATH       import base path for relative @import resolution
  -warn-exit       exit 1 if any warning was reported
  -silent          omit the rule/import/keyframes/font-face summary line
`)
}
