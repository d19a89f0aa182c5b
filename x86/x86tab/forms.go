// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package x86tab contains the table of x86 instruction
// forms used by the decoder.
//
// The table is stored as text in forms.txt, which is
// parsed once when the package is initialised. Each
// line describes one form: its code, the encoding
// that selects it, its operands, and the metadata the
// decoder needs to materialise a decoded instruction.
// The forms are immutable after initialisation, so
// they can be shared freely between goroutines.
package x86tab

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"

	"firefly-os.dev/x86dec/x86"
)

//go:embed forms.txt
var formsTxt string

// Requirement describes whether an encoding
// bit must be set, must be clear, or may
// take either value.
type Requirement uint8

const (
	Any Requirement = iota
	Set
	Clear
)

func (r Requirement) String() string {
	switch r {
	case Any:
		return "any"
	case Set:
		return "set"
	case Clear:
		return "clear"
	default:
		return fmt.Sprintf("Requirement(%d)", uint8(r))
	}
}

func (r Requirement) allows(b bool) bool {
	switch r {
	case Set:
		return b
	case Clear:
		return !b
	default:
		return true
	}
}

// ModeSet is a set of CPU modes.
type ModeSet uint8

const (
	Mode16 ModeSet = 1 << iota
	Mode32
	Mode64
)

// ModeSetOf returns the set containing
// only mode.
func ModeSetOf(mode x86.Mode) ModeSet {
	switch mode {
	case x86.Mode16:
		return Mode16
	case x86.Mode32:
		return Mode32
	case x86.Mode64:
		return Mode64
	}

	return 0
}

// Has returns whether mode is in the set.
func (s ModeSet) Has(mode x86.Mode) bool {
	return s&ModeSetOf(mode) != 0
}

func (s ModeSet) String() string {
	var parts []string
	for _, mode := range x86.Modes {
		if s.Has(mode) {
			parts = append(parts, mode.String)
		}
	}

	return strings.Join(parts, ",")
}

// Flags are boolean properties of a
// form.
type Flags uint16

const (
	FlagOpMask    Flags = 1 << iota // Accepts an opmask register.
	FlagZeroing                     // Accepts zeroing-masking.
	FlagBroadcast                   // Accepts EVEX.b on a memory operand.
	FlagRounding                    // Accepts embedded rounding.
	FlagSAE                         // Accepts suppress-all-exceptions.
	FlagWIG32                       // W is ignored outside 64-bit mode.
	FlagDefault64                   // The operand size defaults to 64 bits in 64-bit mode.
	FlagForce64                     // The operand size is always 64 bits in 64-bit mode.
	FlagNoK0                        // Requires an opmask register other than k0.
	FlagRegisterOnly                // Only the register form of ModR/M is accepted.
	FlagMemoryOnly                  // Only the memory form of ModR/M is accepted.
	FlagModIgnored                  // ModR/M.mod is treated as 11.
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagOpMask, "k1"},
	{FlagZeroing, "z"},
	{FlagBroadcast, "b"},
	{FlagRounding, "er"},
	{FlagSAE, "sae"},
	{FlagWIG32, "wig32"},
	{FlagDefault64, "d64"},
	{FlagForce64, "f64"},
	{FlagNoK0, "no-k0"},
	{FlagRegisterOnly, "reg-only"},
	{FlagMemoryOnly, "mem-only"},
	{FlagModIgnored, "mod-ignored"},
}

func (f Flags) String() string {
	var parts []string
	for _, flag := range flagNames {
		if f&flag.flag != 0 {
			parts = append(parts, flag.name)
		}
	}

	return strings.Join(parts, ",")
}

// Form describes a single instruction form.
type Form struct {
	Code     x86.Code
	Syntax   string // The encoding, as written in the table.
	Encoding x86.EncodingKind
	Map      x86.OpcodeMap
	Opcode   byte
	ModRM    bool // A ModR/M byte follows the opcode.
	Operands []Operand

	Memory    x86.MemorySize // The size of any memory operand.
	Broadcast x86.MemorySize // The size of a broadcast memory operand.

	// Tuple determines the disp8*N scaling
	// of EVEX forms. TupleVectorBits is the
	// vector length it applies to, and
	// TupleElementSize the element size of
	// the scalar tuples, where known.
	Tuple            x86.TupleType
	TupleVectorBits  int
	TupleElementSize int

	Modes ModeSet
	Flags Flags

	// Encoding constraints. Zero values
	// leave the corresponding field
	// unconstrained.
	OperandSize int                 // 16, 32, or 64.
	AddressSize int                 // 16 or 32.
	Prefix      x86.MandatoryPrefix // The mandatory prefix, or pp.
	NoPrefix    bool                // A legacy form that forbids a mandatory prefix.
	REX         Requirement         // Any REX prefix.
	REXB        Requirement         // REX.B.
	W           Requirement         // VEX/XOP/EVEX.W.
	VectorBits  int                 // 128, 256, or 512.
	Reg         int                 // ModR/M.reg, or -1.
	FixedModRM  int                 // The whole ModR/M byte, or -1.

	registerForm bool // ModR/M.reg is fixed and mod is 11, as in "E8+i".
}

// Has returns whether the form has all of
// the given flags.
func (f *Form) Has(flags Flags) bool {
	return f.Flags&flags == flags
}

// VVVV returns whether one of the form's
// operands is encoded in vvvv.
func (f *Form) VVVV() bool {
	for i := range f.Operands {
		if f.Operands[i].Encoding == EncodingVVVV {
			return true
		}
	}

	return false
}

// VSIB returns the form's VSIB memory
// operand, or nil.
func (f *Form) VSIB() *Operand {
	for i := range f.Operands {
		if f.Operands[i].Encoding == EncodingVSIB {
			return &f.Operands[i]
		}
	}

	return nil
}

func (f *Form) String() string {
	var b strings.Builder
	b.WriteString(f.Code.String())
	b.WriteString(" (")
	b.WriteString(f.Syntax)
	b.WriteByte(')')

	return b.String()
}

// ParseForms parses a form table.
func ParseForms(r io.Reader) ([]*Form, error) {
	var forms []*Form
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		form, err := parseForm(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}

		forms = append(forms, form)
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	return forms, nil
}

func parseForm(text string) (*Form, error) {
	fields := strings.Split(text, "|")
	if len(fields) != 8 {
		return nil, fmt.Errorf("found %d fields, want 8", len(fields))
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	code, ok := x86.CodesByName[fields[0]]
	if !ok {
		return nil, fmt.Errorf("unknown code %q", fields[0])
	}

	form := &Form{
		Code:       code,
		Syntax:     fields[1],
		Reg:        -1,
		FixedModRM: -1,
	}

	err := form.parseEncoding(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %v", code, err)
	}

	if fields[2] != "-" {
		imms := 0
		for _, name := range strings.Split(fields[2], ",") {
			op, err := parseOperand(name)
			if err != nil {
				return nil, fmt.Errorf("%s: %v", code, err)
			}

			if op.Encoding == EncodingImm {
				if op.Kind == x86.OpImmediate8 && imms > 0 {
					op.Kind = x86.OpImmediate8_2nd
				}

				imms++
			}

			form.Operands = append(form.Operands, op)
		}

		if len(form.Operands) > 4 {
			return nil, fmt.Errorf("%s: too many operands", code)
		}
	}

	form.Memory, err = parseMemorySize(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%s: %v", code, err)
	}

	form.Broadcast, err = parseMemorySize(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%s: %v", code, err)
	}

	err = form.parseTuple(fields[5])
	if err != nil {
		return nil, fmt.Errorf("%s: %v", code, err)
	}

	for _, mode := range strings.Split(fields[6], ",") {
		m, err := x86.ParseMode(mode)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", code, err)
		}

		form.Modes |= ModeSetOf(m)
	}

	if fields[7] != "-" {
	flags:
		for _, name := range strings.Split(fields[7], ",") {
			for _, flag := range flagNames {
				if flag.name == name {
					form.Flags |= flag.flag
					continue flags
				}
			}

			return nil, fmt.Errorf("%s: unknown flag %q", code, name)
		}
	}

	form.deriveFlags()

	return form, nil
}

// deriveFlags sets the flags that follow
// from the form's operands.
func (f *Form) deriveFlags() {
	for _, op := range f.Operands {
		switch {
		case op.RegisterOnly:
			f.Flags |= FlagRegisterOnly
		case op.MemoryOnly:
			f.Flags |= FlagMemoryOnly
		}

		if op.Type == x86.TypeControl || op.Type == x86.TypeDebug {
			f.Flags |= FlagModIgnored
		}

		if op.Encoding == EncodingVSIB && f.Encoding == x86.EncodingEVEX {
			f.Flags |= FlagNoK0
		}
	}

	if f.Has(FlagModIgnored) {
		f.Flags &^= FlagRegisterOnly
	}
}

func parseMemorySize(s string) (x86.MemorySize, error) {
	if s == "-" {
		return x86.Unknown, nil
	}

	ms, ok := x86.MemorySizesByName[s]
	if !ok {
		return 0, fmt.Errorf("unknown memory size %q", s)
	}

	return ms, nil
}

func (f *Form) parseTuple(s string) error {
	if s == "-" {
		return nil
	}

	name, size, hasSize := strings.Cut(s, ":")
	tuple, ok := x86.TupleTypes[name]
	if !ok {
		return fmt.Errorf("unknown tuple type %q", name)
	}

	f.Tuple = tuple
	if !hasSize || size == "X" {
		return nil
	}

	n, err := strconv.Atoi(size)
	if err != nil {
		return fmt.Errorf("invalid tuple type %q: %v", s, err)
	}

	switch tuple {
	case x86.Tuple1Scalar, x86.Tuple1Fixed:
		f.TupleElementSize = n
	default:
		f.TupleVectorBits = n
	}

	return nil
}

func (f *Form) parseEncoding(s string) error {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return fmt.Errorf("missing encoding")
	}

	kind, _, _ := strings.Cut(tokens[0], ".")
	switch kind {
	case "VEX", "EVEX", "XOP":
		return f.parseExtended(tokens)
	default:
		return f.parseLegacy(tokens)
	}
}

// parseLegacy parses the encoding of a
// form that uses only legacy and REX
// prefixes, such as "o16 REX.B 50" or
// "NP 0FE8 /r".
func (f *Form) parseLegacy(tokens []string) error {
	f.Encoding = x86.EncodingLegacy
prefixes:
	for len(tokens) > 0 {
		token := tokens[0]
		switch token {
		case "a16":
			f.AddressSize = 16
		case "a32":
			f.AddressSize = 32
		case "o16":
			f.OperandSize = 16
		case "o32":
			f.OperandSize = 32
		case "o64":
			f.OperandSize = 64
		case "NP":
			f.NoPrefix = true
		case "66":
			f.Prefix = x86.Mandatory66
		case "F3":
			f.Prefix = x86.MandatoryF3
		case "F2":
			f.Prefix = x86.MandatoryF2
		case "REX":
			f.REX = Set
		case "noREX":
			f.REX = Clear
		case "REX.B":
			f.REXB = Set
		case "noREX.B":
			f.REXB = Clear
		default:
			break prefixes
		}

		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		return fmt.Errorf("missing opcode")
	}

	op := tokens[0]
	switch {
	case strings.HasPrefix(op, "0F38") && len(op) == 6:
		f.Map, op = x86.Map0F38, op[4:]
	case strings.HasPrefix(op, "0F3A") && len(op) == 6:
		f.Map, op = x86.Map0F3A, op[4:]
	case strings.HasPrefix(op, "0F") && len(op) == 4:
		f.Map, op = x86.Map0F, op[2:]
	default:
		f.Map = x86.MapPrimary
	}

	err := f.parseOpcode(op)
	if err != nil {
		return err
	}

	return f.parseModRM(tokens[1:])
}

// parseExtended parses the encoding of a
// VEX, XOP, or EVEX form, such as
// "EVEX.NDS.128.66.0F.WIG E8 /r".
func (f *Form) parseExtended(tokens []string) error {
	header := strings.Split(tokens[0], ".")
	switch header[0] {
	case "VEX":
		f.Encoding = x86.EncodingVEX
	case "EVEX":
		f.Encoding = x86.EncodingEVEX
	case "XOP":
		f.Encoding = x86.EncodingXOP
	}

	hasMap := false
	for _, field := range header[1:] {
		switch field {
		case "NDS", "NDD", "DDS":
			// Informative only.
		case "128", "L0", "LZ":
			f.VectorBits = 128
		case "256", "L1":
			f.VectorBits = 256
		case "512":
			f.VectorBits = 512
		case "LIG":
			f.VectorBits = 0
		case "66":
			f.Prefix = x86.Mandatory66
		case "F3":
			f.Prefix = x86.MandatoryF3
		case "F2":
			f.Prefix = x86.MandatoryF2
		case "0F":
			f.Map, hasMap = x86.Map0F, true
		case "0F38":
			f.Map, hasMap = x86.Map0F38, true
		case "0F3A":
			f.Map, hasMap = x86.Map0F3A, true
		case "X8":
			f.Map, hasMap = x86.MapXOP8, true
		case "X9":
			f.Map, hasMap = x86.MapXOP9, true
		case "XA":
			f.Map, hasMap = x86.MapXOPA, true
		case "W0":
			f.W = Clear
		case "W1":
			f.W = Set
		case "WIG":
			f.W = Any
		default:
			return fmt.Errorf("invalid %s field %q", header[0], field)
		}
	}

	if !hasMap {
		return fmt.Errorf("missing opcode map in %q", tokens[0])
	}

	if len(tokens) < 2 {
		return fmt.Errorf("missing opcode")
	}

	err := f.parseOpcode(tokens[1])
	if err != nil {
		return err
	}

	return f.parseModRM(tokens[2:])
}

func (f *Form) parseOpcode(s string) error {
	if len(s) != 2 {
		return fmt.Errorf("invalid opcode %q", s)
	}

	b, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return fmt.Errorf("invalid opcode %q", s)
	}

	f.Opcode = byte(b)

	return nil
}

// parseModRM parses the optional ModR/M
// description that follows the opcode.
// This is "/r", a fixed reg field such as
// "/3", a whole ModR/M byte, or a register
// form with a fixed reg field such as "C0+i".
func (f *Form) parseModRM(tokens []string) error {
	switch len(tokens) {
	case 0:
		return nil
	case 1:
	default:
		return fmt.Errorf("unexpected %q after ModR/M", tokens[1])
	}

	f.ModRM = true
	token := tokens[0]
	switch {
	case token == "/r":
		return nil
	case len(token) == 2 && token[0] == '/' && '0' <= token[1] && token[1] <= '7':
		f.Reg = int(token[1] - '0')
		return nil
	}

	byteText, plusI := strings.CutSuffix(token, "+i")
	b, err := strconv.ParseUint(byteText, 16, 8)
	if err != nil || len(byteText) != 2 {
		return fmt.Errorf("invalid ModR/M %q", token)
	}

	modrm := x86.ModRM(b)
	if plusI {
		if !modrm.IsRegister() || modrm.RM() != 0 {
			return fmt.Errorf("invalid ModR/M %q: register forms must start at rm 0", token)
		}

		f.Reg = int(modrm.Reg())
		f.Flags |= FlagRegisterOnly
		f.registerForm = true
		return nil
	}

	f.FixedModRM = int(b)

	return nil
}
