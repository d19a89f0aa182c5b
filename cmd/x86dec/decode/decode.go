// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package decode decodes machine code given on
// the command line.
package decode

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"firefly-os.dev/x86dec/decoder"
	"firefly-os.dev/x86dec/internal/config"
	"firefly-os.dev/x86dec/x86"
)

var program = filepath.Base(os.Args[0])

// Main decodes machine code given in
// hexadecimal.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("decode", flag.ExitOnError)

	var help, dump bool
	var configPath string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.StringVar(&configPath, "config", "", "Read defaults from the given configuration `file`.")
	flags.String("mode", "64", "The CPU mode (16, 32, or 64).")
	flags.Uint64("ip", 0, "The instruction pointer of the first byte.")
	flags.String("format", config.FormatText, "The output format (text, json, or yaml).")
	flags.BoolVar(&dump, "dump", false, "Print the full instruction and prefix state after each instruction.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] HEX...\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	if flags.NArg() == 0 {
		flags.Usage()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	err = cfg.Override(flags)
	if err != nil {
		return err
	}

	data, err := ParseHex(flags.Args()...)
	if err != nil {
		return err
	}

	opts := Options{
		Mode:   cfg.Mode,
		IP:     cfg.IP,
		Format: cfg.Format,
		Dump:   dump,
	}

	return Decode(w, data, opts)
}

// ParseHex joins hexadecimal strings into one
// buffer. Whitespace is ignored.
func ParseHex(s ...string) ([]byte, error) {
	text := strings.Join(strings.Fields(strings.Join(s, " ")), "")
	if text == "" {
		return nil, errors.New("no machine code")
	}

	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid machine code: %w", err)
	}

	return data, nil
}

// Options control the output of Decode.
type Options struct {
	Mode   x86.Mode
	IP     uint64
	Format string
	Dump   bool // Text output only.
}

// Record is the result of decoding the machine
// code at one offset.
type Record struct {
	IP          uint64               `json:"ip" yaml:"ip"`
	Bytes       string               `json:"bytes" yaml:"bytes"`
	Instruction *decoder.Instruction `json:"instruction,omitempty" yaml:"instruction,omitempty"`
	Error       string               `json:"error,omitempty" yaml:"error,omitempty"`
}

var dumper = spew.ConfigState{
	Indent:                  "\t",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	ContinueOnMethod:        true,
}

// Decode decodes every instruction in data and
// writes the results to w. After an invalid
// instruction, decoding resumes at the next
// byte.
func Decode(w io.Writer, data []byte, opts Options) error {
	if len(data) == 0 {
		return errors.New("no machine code")
	}

	var records []Record
	d := decoder.New(opts.Mode, data, opts.IP)
	for d.CanDecode() {
		pos := d.Position()
		rec := Record{IP: d.IP()}
		inst, err := d.Decode()
		if err != nil {
			rec.Bytes = hex.EncodeToString(data[pos : pos+1])
			rec.Error = err.Error()
			d.SetPosition(pos + 1)
		} else {
			rec.Bytes = hex.EncodeToString(inst.Bytes(data, opts.IP))
			rec.Instruction = &inst
		}

		if opts.Format != config.FormatText {
			records = append(records, rec)
			continue
		}

		writeText(w, opts.Mode, &rec)
		if opts.Dump {
			if rec.Instruction != nil {
				dumper.Fdump(w, rec.Instruction)
			}

			dumper.Fdump(w, d.Prefixes())
		}
	}

	switch opts.Format {
	case config.FormatText:
		return nil
	case config.FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "\t")
		return e.Encode(records)
	case config.FormatYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(records); err != nil {
			return err
		}

		return e.Close()
	}

	return config.ValidateFormat(opts.Format)
}

// writeText prints the IP, machine code, and
// instruction, with the IP padded to the mode's
// width.
func writeText(w io.Writer, mode x86.Mode, rec *Record) {
	text := "(bad)"
	if rec.Instruction != nil {
		text = rec.Instruction.String()
	}

	fmt.Fprintf(w, "%0*x  %-30s  %s\n", int(mode.Int)/4, rec.IP, rec.Bytes, text)
}
