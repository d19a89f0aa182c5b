// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package compare checks the decoder against the
// disassembler in golang.org/x/arch/x86/x86asm.
//
// Only instruction lengths and validity are
// compared, as the two packages describe
// instructions differently. x86asm does not
// support VEX, EVEX, or XOP, so instructions
// using them are counted but not compared.
package compare

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/arch/x86/x86asm"

	"firefly-os.dev/x86dec/cmd/x86dec/decode"
	"firefly-os.dev/x86dec/decoder"
	"firefly-os.dev/x86dec/internal/config"
	"firefly-os.dev/x86dec/x86"
)

var program = filepath.Base(os.Args[0])

// Main compares instruction lengths with
// x86asm.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("compare", flag.ExitOnError)

	var help bool
	var configPath string
	var maxDiffs int
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.StringVar(&configPath, "config", "", "Read defaults from the given configuration `file`.")
	flags.String("mode", "64", "The CPU mode (16, 32, or 64).")
	flags.Uint64("ip", 0, "The instruction pointer of the first byte.")
	flags.IntVar(&maxDiffs, "max-diffs", 20, "Stop after this many disagreements (0 means no limit).")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] FILE|HEX\n\n", program, flags.Name())
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

	var data []byte
	if flags.NArg() == 1 {
		data, err = os.ReadFile(flags.Arg(0))
	}

	if flags.NArg() > 1 || errors.Is(err, os.ErrNotExist) {
		data, err = decode.ParseHex(flags.Args()...)
	}

	if err != nil {
		return err
	}

	if len(data) == 0 {
		return errors.New("no machine code")
	}

	opts := Options{
		Mode:     cfg.Mode,
		IP:       cfg.IP,
		MaxDiffs: maxDiffs,
	}

	res := Compare(data, opts, X86asmLength)
	res.Write(w, opts.Mode)
	if len(res.Diffs) > 0 {
		return fmt.Errorf("found %d disagreements with x86asm", len(res.Diffs))
	}

	return nil
}

// LengthFunc returns the length of the first
// instruction in data.
type LengthFunc func(data []byte, mode x86.Mode) (int, error)

// X86asmLength decodes the first instruction in
// data with x86asm.
func X86asmLength(data []byte, mode x86.Mode) (int, error) {
	inst, err := x86asm.Decode(data, int(mode.Int))
	if err != nil {
		return 0, err
	}

	return inst.Len, nil
}

// Options control a comparison.
type Options struct {
	Mode     x86.Mode
	IP       uint64
	MaxDiffs int // Zero means no limit.
}

// Diff describes an instruction on which the
// decoders disagree. A length of zero means
// that decoder rejected the instruction.
type Diff struct {
	IP        uint64
	Bytes     []byte
	Code      x86.Code // INVALID if the instruction was rejected.
	Length    int
	Err       error
	RefLength int
	RefErr    error
}

// Result is the outcome of a comparison.
type Result struct {
	Instructions int // Offsets examined.
	Agreed       int
	Unsupported  int // Extended encodings, which the reference cannot decode.
	Diffs        []Diff
	Truncated    bool // Stopped after MaxDiffs disagreements.
}

// Compare decodes data with both the decoder and
// ref, advancing by the decoder's length where it
// succeeds, the reference's length where only it
// succeeds, and one byte otherwise.
func Compare(data []byte, opts Options, ref LengthFunc) *Result {
	res := new(Result)
	d := decoder.New(opts.Mode, data, opts.IP)
	for d.CanDecode() {
		if opts.MaxDiffs > 0 && len(res.Diffs) >= opts.MaxDiffs {
			res.Truncated = true
			break
		}

		res.Instructions++
		pos := d.Position()
		ip := d.IP()
		inst, err := d.Decode()
		refLength, refErr := ref(data[pos:], opts.Mode)

		next := pos + 1
		switch {
		case err == nil:
			next = pos + inst.ByteLength
		case refErr == nil && refLength > 0:
			next = pos + refLength
		}

		switch {
		case err != nil && refErr != nil:
			res.Agreed++
		case err == nil && refErr == nil && inst.ByteLength == refLength:
			res.Agreed++
		case err == nil && refErr != nil && inst.Encoding != x86.EncodingLegacy:
			res.Unsupported++
		default:
			diff := Diff{
				IP:        ip,
				Code:      inst.Code,
				Length:    inst.ByteLength,
				Err:       err,
				RefLength: refLength,
				RefErr:    refErr,
			}

			end := pos + max(inst.ByteLength, refLength, 1)
			diff.Bytes = data[pos:min(end, len(data))]
			res.Diffs = append(res.Diffs, diff)
		}

		d.SetPosition(next)
	}

	return res
}

// Write prints each disagreement, followed by a
// summary.
func (r *Result) Write(w io.Writer, mode x86.Mode) {
	describe := func(code x86.Code, length int, err error) string {
		if err != nil {
			return "error: " + err.Error()
		}

		if code != x86.INVALID {
			return fmt.Sprintf("%d bytes (%s)", length, code)
		}

		return fmt.Sprintf("%d bytes", length)
	}

	for _, diff := range r.Diffs {
		fmt.Fprintf(w, "%0*x  %-30s  decoder: %s; x86asm: %s\n", int(mode.Int)/4, diff.IP, hex.EncodeToString(diff.Bytes),
			describe(diff.Code, diff.Length, diff.Err), describe(x86.INVALID, diff.RefLength, diff.RefErr))
	}

	fmt.Fprintf(w, "%d instructions: %d agree, %d disagree, %d unsupported by x86asm\n", r.Instructions, r.Agreed, len(r.Diffs), r.Unsupported)
	if r.Truncated {
		fmt.Fprintln(w, "stopped early after too many disagreements")
	}
}
