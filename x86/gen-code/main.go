// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Command gen-code generates the Code enumeration
// from the instruction form table.
//
// Each form in the table has a unique code, which
// is the first field of its line. The codes are
// numbered in table order, starting at one.
package main

import (
	"bufio"
	"bytes"
	"embed"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var program = filepath.Base(os.Args[0])

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	log.SetPrefix(program + ": ")
}

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.New("").ParseFS(templatesFS, "templates/*.tmpl"))

func main() {
	var forms, out string
	flag.StringVar(&forms, "forms", filepath.Join("x86tab", "forms.txt"), "Path to the instruction form table.")
	flag.StringVar(&out, "out", "code.go", "Path where the generated Go file is written.")
	flag.Parse()

	err := GenerateCodes(forms, out)
	if err != nil {
		log.Fatal(err)
	}
}

// GenerateCodes reads the form table at
// formsPath and writes the Code enumeration
// to outPath.
func GenerateCodes(formsPath, outPath string) error {
	f, err := os.Open(formsPath)
	if err != nil {
		return err
	}

	defer f.Close()

	codes, err := ReadCodes(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %v", formsPath, err)
	}

	var data struct {
		Command string
		Codes   []string
	}

	data.Command = program
	data.Codes = codes

	var b bytes.Buffer
	err = templates.ExecuteTemplate(&b, "code.go.tmpl", data)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %v", outPath, err)
	}

	fail := false
	formatted, err := format.Source(b.Bytes())
	if err != nil {
		fail = true
		log.Println(err)
		formatted = b.Bytes()
	}

	err = os.WriteFile(outPath, formatted, 0644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %v", outPath, err)
	}

	if fail {
		os.Exit(1)
	}

	return nil
}

// ReadCodes returns the code of each form
// in the table, in order.
func ReadCodes(r io.Reader) ([]string, error) {
	var codes []string
	seen := make(map[string]int)
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		code, _, ok := strings.Cut(text, "|")
		if !ok {
			return nil, fmt.Errorf("line %d: missing fields", line)
		}

		code = strings.TrimSpace(code)
		x, err := parser.ParseExpr(code)
		if _, ok := x.(*ast.Ident); err != nil || !ok {
			return nil, fmt.Errorf("line %d: code %q is not a valid identifier", line, code)
		}

		if prev, ok := seen[code]; ok {
			return nil, fmt.Errorf("line %d: code %s already used on line %d", line, code, prev)
		}

		seen[code] = line
		codes = append(codes, code)
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	return codes, nil
}
