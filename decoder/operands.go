// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"fmt"

	"firefly-os.dev/x86dec/x86"
	"firefly-os.dev/x86dec/x86/x86tab"
)

// readOperands resolves each operand of the
// form, reading any immediates in order.
// The ModR/M memory operand must already
// have been read.
func (d *Decoder) readOperands(inst *Instruction, form *x86tab.Form, modrm x86.ModRM, memory bool) error {
	inst.OpCount = len(form.Operands)
	for i := range form.Operands {
		op := &form.Operands[i]
		out := &inst.Ops[i]
		var err error
		switch op.Encoding {
		case x86tab.EncodingReg:
			out.Kind = x86.OpRegister
			out.Register, err = d.regRegister(op, modrm)
		case x86tab.EncodingRM:
			if memory {
				out.Kind = x86.OpMemory
				break
			}

			out.Kind = x86.OpRegister
			out.Register, err = d.rmRegister(op, modrm)
		case x86tab.EncodingVVVV:
			out.Kind = x86.OpRegister
			out.Register, err = d.vvvvRegister(op)
		case x86tab.EncodingIs4:
			var imm uint64
			imm, err = d.readImmediate(inst, 1)
			if err == nil {
				out.Kind = x86.OpRegister
				out.Register, err = d.is4Register(op, byte(imm))
			}
		case x86tab.EncodingFixed:
			out.Kind = x86.OpRegister
			out.Register = op.Register
		case x86tab.EncodingOne:
			out.Kind = x86.OpImmediate8
			out.Immediate = 1
		case x86tab.EncodingImm:
			out.Kind = op.Kind
			out.Immediate, err = d.readImmediate(inst, op.Bits/8)
			out.Immediate = extendImmediate(op.Kind, out.Immediate)
		case x86tab.EncodingRel:
			// The target is resolved once the
			// length is known.
			out.Kind = op.Kind
			out.Immediate, err = d.readImmediate(inst, op.Bits/8)
			out.Immediate = signExtend(out.Immediate, op.Bits)
		case x86tab.EncodingFar:
			out.Kind = op.Kind
			out.Immediate, err = d.readImmediate(inst, op.Bits/8)
			if err == nil {
				var selector uint64
				selector, err = d.readImmediate(inst, 2)
				inst.FarBranchSelector = uint16(selector)
			}
		case x86tab.EncodingMoffs:
			err = d.readMoffs(inst, out)
		case x86tab.EncodingStringSrc:
			out.Kind = stringKind(op.Kind, d.p.AddressSize(d.mode))
			d.setMemorySegment(inst, false)
		case x86tab.EncodingStringDst:
			out.Kind = stringKind(op.Kind, d.p.AddressSize(d.mode))
			if inst.MemorySegment == x86.None {
				inst.MemorySegment = x86.ES
			}
		case x86tab.EncodingMaskDst:
			out.Kind = stringKind(op.Kind, d.p.AddressSize(d.mode))
			d.setMemorySegment(inst, false)
		case x86tab.EncodingVSIB:
			out.Kind = x86.OpMemory
			err = d.checkVSIB(inst, inst.Ops[:i])
		default:
			err = fmt.Errorf("%s: unexpected operand encoding %s", form.Code, op.Encoding)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// readImmediate reads an immediate of the
// given size, recording its location.
func (d *Decoder) readImmediate(inst *Instruction, size int) (uint64, error) {
	offsets := &inst.Offsets
	if offsets.ImmediateSize == 0 {
		offsets.ImmediateOffset = d.cur.n
		offsets.ImmediateSize = size
	} else {
		offsets.ImmediateOffset2 = d.cur.n
		offsets.ImmediateSize2 = size
	}

	return d.cur.readUint(size)
}

// extendImmediate sign extends immediates
// to the operand size.
func extendImmediate(kind x86.OpKind, v uint64) uint64 {
	switch kind {
	case x86.OpImmediate8to16:
		return truncate(signExtend(v, 8), 16)
	case x86.OpImmediate8to32:
		return truncate(signExtend(v, 8), 32)
	case x86.OpImmediate8to64:
		return signExtend(v, 8)
	case x86.OpImmediate32to64:
		return signExtend(v, 32)
	}

	return v
}

// readMoffs reads an absolute memory offset,
// whose size is the address size.
func (d *Decoder) readMoffs(inst *Instruction, out *Operand) error {
	size := d.p.AddressSize(d.mode)
	out.Kind = x86.OpMemory
	if size == 64 {
		out.Kind = x86.OpMemory64
	}

	inst.Offsets.DisplacementOffset = d.cur.n
	inst.Offsets.DisplacementSize = size / 8
	disp, err := d.cur.readUint(size / 8)
	if err != nil {
		return err
	}

	inst.MemoryDisplacement = disp
	inst.MemoryDisplSize = size / 8
	inst.MemoryIndexScale = 1
	d.setMemorySegment(inst, false)

	return nil
}

// stringKind returns the operand kind for a
// string operand with the given address size.
func stringKind(kind x86.OpKind, addressSize int) x86.OpKind {
	shift := x86.OpKind(0)
	switch addressSize {
	case 32:
		shift = 1
	case 64:
		shift = 2
	}

	// Each family is ordered 16, 32, 64.
	return kind + shift
}

// checkVSIB rejects a VSIB index register
// that is also one of the preceding register
// operands.
func (d *Decoder) checkVSIB(inst *Instruction, prev []Operand) error {
	for _, op := range prev {
		if op.Kind == x86.OpRegister && op.Register.Type().IsVector() && op.Register.Number() == inst.MemoryIndex.Number() {
			return fmt.Errorf("%w: VSIB index %s is also an operand", ErrInvalidModRMOrSIB, inst.MemoryIndex)
		}
	}

	return nil
}
