// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package decoder decodes x86 machine code into
// structured instructions.
//
// A Decoder walks a byte buffer one instruction
// at a time. Each instruction is matched against
// the form table in package x86tab, which picks
// its code and describes how each operand is
// encoded. The decoder then reads the SIB byte,
// displacement, and immediates, and resolves the
// operands into registers, memory references,
// immediates, and branch targets.
//
// Decoding never modifies the input and does not
// allocate beyond the returned Instruction.
package decoder

import (
	"errors"
	"fmt"

	"firefly-os.dev/x86dec/x86"
	"firefly-os.dev/x86dec/x86/x86tab"
)

// Decoder decodes a sequence of instructions
// from a byte buffer.
type Decoder struct {
	mode   x86.Mode
	data   []byte
	ip     uint64 // IP of data[0].
	offset int

	// Per-instruction state.
	cur      cursor
	p        x86.PrefixState
	relative bool // The memory operand is RIP- or EIP-relative.
}

// New returns a decoder for the machine code
// in data, in the given mode. ip is the
// instruction pointer of the first byte.
//
// New panics if the mode is not one of
// x86.Mode16, x86.Mode32, or x86.Mode64, or
// if data is empty.
func New(mode x86.Mode, data []byte, ip uint64) *Decoder {
	switch mode {
	case x86.Mode16, x86.Mode32, x86.Mode64:
	default:
		panic(fmt.Sprintf("decoder: invalid mode %d", mode.Int))
	}

	if len(data) == 0 {
		panic("decoder: no data to decode")
	}

	return &Decoder{mode: mode, data: data, ip: ip}
}

// Decode decodes the first instruction in
// data.
func Decode(mode x86.Mode, data []byte) (Instruction, error) {
	return New(mode, data, 0).Decode()
}

// Mode returns the decoder's mode.
func (d *Decoder) Mode() x86.Mode { return d.mode }

// Position returns the offset into the data
// of the next instruction.
func (d *Decoder) Position() int { return d.offset }

// IP returns the instruction pointer of the
// next instruction.
func (d *Decoder) IP() uint64 { return d.ip + uint64(d.offset) }

// CanDecode returns whether any data remains.
func (d *Decoder) CanDecode() bool { return d.offset < len(d.data) }

// Prefixes returns the prefix state of the
// most recently decoded instruction.
func (d *Decoder) Prefixes() x86.PrefixState { return d.p }

// SetPosition moves the decoder to the given
// offset into the data. It panics if the
// offset is out of range.
func (d *Decoder) SetPosition(offset int) {
	if offset < 0 || offset > len(d.data) {
		panic(fmt.Sprintf("decoder: position %d out of range [0, %d]", offset, len(d.data)))
	}

	d.offset = offset
}

// Decode decodes the next instruction and
// advances past it.
//
// On failure, Decode returns a *DecodeError
// and does not advance. The caller can then
// skip one or more bytes with SetPosition.
func (d *Decoder) Decode() (Instruction, error) {
	var inst Instruction
	if err := d.decode(&inst); err != nil {
		return Instruction{}, &DecodeError{Err: err, Offset: d.cur.n}
	}

	d.offset += inst.ByteLength

	return inst, nil
}

func (d *Decoder) decode(inst *Instruction) error {
	d.p.Reset()
	d.relative = false
	d.cur.reset(d.data[d.offset:])

	inst.Mode = d.mode
	inst.IP = d.IP()

	opcode, err := d.readOpcode()
	if err != nil {
		return err
	}

	var modrm x86.ModRM
	if x86tab.HasModRM(d.p.Encoding, d.p.Map, opcode) {
		b, err := d.cur.readByte()
		if err != nil {
			return err
		}

		modrm = x86.ModRM(b)
	}

	form, err := x86tab.Lookup(&d.p, d.mode, opcode, modrm)
	if err != nil {
		if errors.Is(err, x86tab.ErrReserved) {
			return fmt.Errorf("%w: %w", ErrInvalidModRMOrSIB, err)
		}

		return fmt.Errorf("%w: %w", ErrUnrecognizedOpcode, err)
	}

	memory := form.ModRM && !modrm.IsRegister() && !form.Has(x86tab.FlagModIgnored)
	if err := d.check(form, memory); err != nil {
		return err
	}

	if memory {
		if err := d.readMemory(inst, form, modrm); err != nil {
			return err
		}
	}

	if err := d.readOperands(inst, form, modrm, memory); err != nil {
		return err
	}

	d.finish(inst, form, memory)

	return nil
}

// readOpcode reads the prefixes and the
// opcode, leaving the encoding and opcode
// map in the prefix state.
func (d *Decoder) readOpcode() (byte, error) {
	b, err := d.readPrefixes()
	if err != nil {
		return 0, err
	}

	d.p.Encoding = x86.EncodingLegacy
	d.p.Map = x86.MapPrimary
	switch b {
	case 0xc4, 0xc5:
		if d.isExtended() {
			if err := d.readVEX(b); err != nil {
				return 0, err
			}

			return d.cur.readByte()
		}
	case 0x62:
		if d.isExtended() {
			if err := d.readEVEX(); err != nil {
				return 0, err
			}

			return d.cur.readByte()
		}
	case 0x8f:
		if d.isXOP() {
			if err := d.readXOP(); err != nil {
				return 0, err
			}

			return d.cur.readByte()
		}
	case 0x0f:
		b, err = d.cur.readByte()
		if err != nil {
			return 0, err
		}

		switch b {
		case 0x38:
			d.p.Map = x86.Map0F38
			return d.cur.readByte()
		case 0x3a:
			d.p.Map = x86.Map0F3A
			return d.cur.readByte()
		default:
			d.p.Map = x86.Map0F
			return b, nil
		}
	}

	return b, nil
}

// check applies the constraints on vvvv and
// the EVEX fields that depend on the form.
func (d *Decoder) check(form *x86tab.Form, memory bool) error {
	p := &d.p
	if p.Encoding != x86.EncodingLegacy && !form.VVVV() {
		vvvv := p.VVVV
		if form.VSIB() != nil {
			// V' extends the index instead.
			vvvv &= 0b1111
		}

		if vvvv != 0 {
			return fmt.Errorf("%w: %s does not use vvvv", ErrInvalidPrefixCombination, form.Code)
		}
	}

	if p.Encoding != x86.EncodingEVEX {
		return nil
	}

	if p.Broadcast {
		switch {
		case memory && form.Broadcast == x86.Unknown:
			return fmt.Errorf("%w: %s does not support broadcast", ErrInvalidPrefixCombination, form.Code)
		case !memory && !form.Has(x86tab.FlagRounding) && !form.Has(x86tab.FlagSAE):
			return fmt.Errorf("%w: %s does not support rounding control or SAE", ErrInvalidPrefixCombination, form.Code)
		}
	}

	if p.OpMask != 0 && !form.Has(x86tab.FlagOpMask) {
		return fmt.Errorf("%w: %s does not support an opmask", ErrInvalidPrefixCombination, form.Code)
	}

	if p.OpMask == 0 && form.Has(x86tab.FlagNoK0) {
		return fmt.Errorf("%w: %s requires an opmask", ErrInvalidPrefixCombination, form.Code)
	}

	if p.Zeroing {
		if !form.Has(x86tab.FlagZeroing) {
			return fmt.Errorf("%w: %s does not support zeroing-masking", ErrInvalidPrefixCombination, form.Code)
		}

		if memory && len(form.Operands) > 0 && form.Operands[0].Encoding == x86tab.EncodingRM {
			return fmt.Errorf("%w: zeroing-masking with a memory destination", ErrInvalidPrefixCombination)
		}
	}

	return nil
}

// finish fills in the fields that depend on
// the instruction length.
func (d *Decoder) finish(inst *Instruction, form *x86tab.Form, memory bool) {
	p := &d.p
	inst.Code = form.Code
	inst.Encoding = p.Encoding
	inst.ByteLength = d.cur.n
	inst.NextIP = inst.IP + uint64(inst.ByteLength)
	switch d.mode {
	case x86.Mode16:
		inst.NextIP = truncate(inst.NextIP, 16)
	case x86.Mode32:
		inst.NextIP = truncate(inst.NextIP, 32)
	}

	for i := range inst.Operands() {
		op := &inst.Ops[i]
		switch op.Kind {
		case x86.OpNearBranch16:
			op.Immediate = truncate(inst.NextIP+op.Immediate, 16)
		case x86.OpNearBranch32:
			op.Immediate = truncate(inst.NextIP+op.Immediate, 32)
		case x86.OpNearBranch64:
			op.Immediate = inst.NextIP + op.Immediate
		}
	}

	if d.relative {
		inst.MemoryDisplacement = inst.NextIP + signExtend(inst.MemoryDisplacement, 32)
		if inst.MemoryBase == x86.EIP {
			inst.MemoryDisplacement = truncate(inst.MemoryDisplacement, 32)
		}
	}

	inst.HasPrefixLock = p.Lock
	inst.HasPrefixRepe = p.Repe
	inst.HasPrefixRepne = p.Repne
	inst.PrefixSegment = p.Segment
	if p.Encoding == x86.EncodingLegacy && (form.Prefix == x86.MandatoryF2 || form.Prefix == x86.MandatoryF3) {
		inst.HasPrefixRepe = false
		inst.HasPrefixRepne = false
	}

	if inst.HasMemory() {
		inst.MemorySize = form.Memory
	}

	if p.Encoding != x86.EncodingEVEX {
		return
	}

	if p.OpMask != 0 {
		inst.OpMask = x86.K0 + x86.Register(p.OpMask)
	}

	inst.ZeroingMasking = p.Zeroing
	switch {
	case !p.Broadcast:
	case memory:
		inst.IsBroadcast = true
		inst.MemorySize = form.Broadcast
	case form.Has(x86tab.FlagRounding):
		inst.RoundingControl = x86.RoundToNearest + x86.RoundingControl(p.LL)
		inst.SuppressAllExceptions = true
	default:
		inst.SuppressAllExceptions = true
	}
}

// signExtend sign extends the low bits of v.
func signExtend(v uint64, bits int) uint64 {
	shift := 64 - bits

	return uint64(int64(v<<shift) >> shift)
}
