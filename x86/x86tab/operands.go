// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86tab

import (
	"fmt"
	"strings"

	"firefly-os.dev/x86dec/x86"
)

// OperandEncoding describes where an operand's
// value comes from in the machine code.
type OperandEncoding uint8

const (
	_ OperandEncoding = iota
	EncodingReg       // ModR/M.reg.
	EncodingRM        // ModR/M.rm, as a register or memory.
	EncodingVVVV      // VEX/XOP/EVEX.vvvv.
	EncodingIs4       // Bits 7:4 of an 8-bit immediate.
	EncodingFixed     // An implicit register.
	EncodingOne       // The constant 1.
	EncodingImm       // An immediate value.
	EncodingRel       // A relative branch displacement.
	EncodingFar       // A far pointer (offset, then selector).
	EncodingMoffs     // An absolute memory offset.
	EncodingStringSrc // seg:[rSI].
	EncodingStringDst // es:[rDI].
	EncodingMaskDst   // seg:[rDI], as used by maskmovq.
	EncodingVSIB      // Memory with a vector index register.
)

func (e OperandEncoding) String() string {
	switch e {
	case EncodingReg:
		return "ModRM:reg"
	case EncodingRM:
		return "ModRM:r/m"
	case EncodingVVVV:
		return "VEX.vvvv"
	case EncodingIs4:
		return "imm8[7:4]"
	case EncodingFixed:
		return "implicit"
	case EncodingOne:
		return "1"
	case EncodingImm:
		return "imm"
	case EncodingRel:
		return "rel"
	case EncodingFar:
		return "ptr"
	case EncodingMoffs:
		return "moffs"
	case EncodingStringSrc:
		return "rSI"
	case EncodingStringDst:
		return "rDI"
	case EncodingMaskDst:
		return "seg:rDI"
	case EncodingVSIB:
		return "vsib"
	default:
		return fmt.Sprintf("OperandEncoding(%d)", uint8(e))
	}
}

// Operand describes one operand of an
// instruction form.
type Operand struct {
	Name     string
	Encoding OperandEncoding

	// Type is the register family for
	// register operands, and the index
	// register family for VSIB.
	Type x86.RegisterType

	// Bits is the width of a general
	// purpose register, or the width of
	// an immediate, branch displacement,
	// memory offset, or string element.
	Bits int

	Register x86.Register // For EncodingFixed.
	Kind     x86.OpKind   // For immediates and branches.

	// RegisterOnly and MemoryOnly restrict
	// the r/m operands that accept only one
	// of the two ModR/M forms.
	RegisterOnly bool
	MemoryOnly   bool
}

// Size returns the number of bytes the
// operand occupies in the instruction
// stream after any ModR/M, SIB, and
// displacement.
func (op *Operand) Size() int {
	switch op.Encoding {
	case EncodingImm, EncodingRel:
		return op.Bits / 8
	case EncodingFar:
		return op.Bits/8 + 2
	case EncodingIs4:
		return 1
	}

	return 0
}

// IsMemory returns whether the operand
// always refers to memory.
func (op *Operand) IsMemory() bool {
	switch op.Encoding {
	case EncodingMoffs, EncodingStringSrc, EncodingStringDst, EncodingMaskDst, EncodingVSIB:
		return true
	case EncodingRM:
		return op.MemoryOnly
	}

	return false
}

func (op *Operand) String() string { return op.Name }

// operands maps each operand token in the
// form table to its description. It is
// built before the form table is parsed.
var operands = newOperands()

func newOperands() map[string]Operand {
	operands := make(map[string]Operand)
	add := func(op Operand) {
		if _, ok := operands[op.Name]; ok {
			panic("duplicate operand " + op.Name)
		}

		operands[op.Name] = op
	}
	reg := func(name string, enc OperandEncoding, typ x86.RegisterType, bits int) Operand {
		return Operand{Name: name, Encoding: enc, Type: typ, Bits: bits}
	}
	value := func(name string, enc OperandEncoding, bits int, kind x86.OpKind) Operand {
		return Operand{Name: name, Encoding: enc, Bits: bits, Kind: kind}
	}
	registerOnly := func(op Operand) Operand {
		op.RegisterOnly = true
		return op
	}
	memoryOnly := func(op Operand) Operand {
		op.MemoryOnly = true
		return op
	}

	gpr := x86.TypeGeneralPurpose

	// ModR/M.reg.
	add(reg("Gb", EncodingReg, gpr, 8))
	add(reg("Gw", EncodingReg, gpr, 16))
	add(reg("Gd", EncodingReg, gpr, 32))
	add(reg("Gq", EncodingReg, gpr, 64))
	add(reg("Sw", EncodingReg, x86.TypeSegment, 16))
	add(reg("Cd", EncodingReg, x86.TypeControl, 32))
	add(reg("Cq", EncodingReg, x86.TypeControl, 64))
	add(reg("Dd", EncodingReg, x86.TypeDebug, 32))
	add(reg("Dq", EncodingReg, x86.TypeDebug, 64))
	add(reg("P", EncodingReg, x86.TypeMMX, 64))
	add(reg("VX", EncodingReg, x86.TypeXMM, 128))
	add(reg("VY", EncodingReg, x86.TypeYMM, 256))
	add(reg("VZ", EncodingReg, x86.TypeZMM, 512))
	add(reg("VK", EncodingReg, x86.TypeOpmask, 64))

	// ModR/M.rm, register or memory.
	add(reg("Eb", EncodingRM, gpr, 8))
	add(reg("Ew", EncodingRM, gpr, 16))
	add(reg("Ed", EncodingRM, gpr, 32))
	add(reg("Eq", EncodingRM, gpr, 64))
	add(reg("Q", EncodingRM, x86.TypeMMX, 64))
	add(reg("WX", EncodingRM, x86.TypeXMM, 128))
	add(reg("WY", EncodingRM, x86.TypeYMM, 256))
	add(reg("WZ", EncodingRM, x86.TypeZMM, 512))
	add(reg("WK", EncodingRM, x86.TypeOpmask, 64))
	add(reg("RdMb", EncodingRM, gpr, 32))
	add(reg("RqMb", EncodingRM, gpr, 64))
	add(reg("RdMw", EncodingRM, gpr, 32))
	add(reg("RqMw", EncodingRM, gpr, 64))

	// ModR/M.rm, register only.
	add(registerOnly(reg("Rw", EncodingRM, gpr, 16)))
	add(registerOnly(reg("Rd", EncodingRM, gpr, 32)))
	add(registerOnly(reg("Rq", EncodingRM, gpr, 64)))
	add(registerOnly(reg("N", EncodingRM, x86.TypeMMX, 64)))
	add(registerOnly(reg("RX", EncodingRM, x86.TypeXMM, 128)))
	add(registerOnly(reg("RY", EncodingRM, x86.TypeYMM, 256)))
	add(registerOnly(reg("RZ", EncodingRM, x86.TypeZMM, 512)))
	add(registerOnly(reg("RK", EncodingRM, x86.TypeOpmask, 64)))
	add(registerOnly(reg("STi", EncodingRM, x86.TypeX87, 80)))

	// ModR/M.rm, memory only.
	for _, name := range strings.Fields(`
		M Mb Mw Md Mq Mo Mp Ms Mw2 Md2
		Mf32 Mf64 Mf80 Mfbcd Mfi16 Mfi32 Mfi64
		M14 M28 M98 M108 MK Eww Edw Eqw`) {
		add(memoryOnly(reg(name, EncodingRM, 0, 0)))
	}

	// vvvv.
	add(reg("HX", EncodingVVVV, x86.TypeXMM, 128))
	add(reg("HY", EncodingVVVV, x86.TypeYMM, 256))
	add(reg("HZ", EncodingVVVV, x86.TypeZMM, 512))
	add(reg("HK", EncodingVVVV, x86.TypeOpmask, 64))
	add(reg("Hd", EncodingVVVV, gpr, 32))
	add(reg("Hq", EncodingVVVV, gpr, 64))

	// imm8[7:4].
	add(reg("Is4X", EncodingIs4, x86.TypeXMM, 128))
	add(reg("Is4Y", EncodingIs4, x86.TypeYMM, 256))

	// VSIB memory. Bits is the size of
	// each index element.
	add(memoryOnly(reg("VM32X", EncodingVSIB, x86.TypeXMM, 32)))
	add(memoryOnly(reg("VM32Y", EncodingVSIB, x86.TypeYMM, 32)))
	add(memoryOnly(reg("VM32Z", EncodingVSIB, x86.TypeZMM, 32)))
	add(memoryOnly(reg("VM64X", EncodingVSIB, x86.TypeXMM, 64)))
	add(memoryOnly(reg("VM64Y", EncodingVSIB, x86.TypeYMM, 64)))
	add(memoryOnly(reg("VM64Z", EncodingVSIB, x86.TypeZMM, 64)))

	// Immediates.
	add(value("1", EncodingOne, 8, x86.OpImmediate8))
	add(value("Ib", EncodingImm, 8, x86.OpImmediate8))
	add(value("Ib16", EncodingImm, 8, x86.OpImmediate8to16))
	add(value("Ib32", EncodingImm, 8, x86.OpImmediate8to32))
	add(value("Ib64", EncodingImm, 8, x86.OpImmediate8to64))
	add(value("Iw", EncodingImm, 16, x86.OpImmediate16))
	add(value("Id", EncodingImm, 32, x86.OpImmediate32))
	add(value("Id64", EncodingImm, 32, x86.OpImmediate32to64))
	add(value("Iq", EncodingImm, 64, x86.OpImmediate64))

	// Branches.
	add(value("Jb16", EncodingRel, 8, x86.OpNearBranch16))
	add(value("Jb32", EncodingRel, 8, x86.OpNearBranch32))
	add(value("Jb64", EncodingRel, 8, x86.OpNearBranch64))
	add(value("Jw16", EncodingRel, 16, x86.OpNearBranch16))
	add(value("Jd32", EncodingRel, 32, x86.OpNearBranch32))
	add(value("Jd64", EncodingRel, 32, x86.OpNearBranch64))
	add(value("Aww", EncodingFar, 16, x86.OpFarBranch16))
	add(value("Adw", EncodingFar, 32, x86.OpFarBranch32))

	// Memory offsets and string operands.
	for _, size := range []struct {
		suffix string
		bits   int
	}{
		{"b", 8},
		{"w", 16},
		{"d", 32},
		{"q", 64},
	} {
		add(value("O"+size.suffix, EncodingMoffs, size.bits, x86.OpMemory))
		add(value("X"+size.suffix, EncodingStringSrc, size.bits, x86.OpMemorySegSI))
		add(value("Y"+size.suffix, EncodingStringDst, size.bits, x86.OpMemoryESDI))
	}
	add(value("rDI", EncodingMaskDst, 0, x86.OpMemorySegDI))

	return operands
}

// parseOperand returns the description of
// an operand token. Tokens that are not in
// the vocabulary must name a register, and
// describe an implicit register operand.
func parseOperand(token string) (Operand, error) {
	if op, ok := operands[token]; ok {
		return op, nil
	}

	name := strings.ToLower(token)
	if name == "st" {
		name = "st0"
	}

	reg, ok := x86.RegistersByName[name]
	if !ok {
		return Operand{}, fmt.Errorf("unknown operand %q", token)
	}

	return Operand{Name: token, Encoding: EncodingFixed, Type: reg.Type(), Bits: reg.Bits(), Register: reg}, nil
}
