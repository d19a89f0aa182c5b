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

// memory16 lists the base and index
// registers for each r/m value with
// 16-bit addressing.
var memory16 = [8][2]x86.Register{
	{x86.BX, x86.SI},
	{x86.BX, x86.DI},
	{x86.BP, x86.SI},
	{x86.BP, x86.DI},
	{x86.SI, x86.None},
	{x86.DI, x86.None},
	{x86.BP, x86.None},
	{x86.BX, x86.None},
}

// readMemory decodes the SIB byte and
// displacement of a memory operand,
// filling in the instruction's memory
// fields.
func (d *Decoder) readMemory(inst *Instruction, form *x86tab.Form, modrm x86.ModRM) error {
	vsib := form.VSIB()
	size := d.p.AddressSize(d.mode)
	inst.MemoryIndexScale = 1
	if size == 16 {
		if vsib != nil {
			return fmt.Errorf("%w: VSIB with 16-bit addressing", ErrInvalidModRMOrSIB)
		}

		return d.readMemory16(inst, form, modrm)
	}

	return d.readMemory32(inst, form, modrm, size, vsib)
}

func (d *Decoder) readMemory16(inst *Instruction, form *x86tab.Form, modrm x86.ModRM) error {
	rm := modrm.RM()
	base, index := memory16[rm][0], memory16[rm][1]
	dispSize := 0
	switch modrm.Mod() {
	case 0b00:
		if rm == 6 {
			base = x86.None
			dispSize = 2
		}
	case 0b01:
		dispSize = 1
	case 0b10:
		dispSize = 2
	}

	inst.MemoryBase = base
	inst.MemoryIndex = index
	if err := d.readDisplacement(inst, form, dispSize, 16); err != nil {
		return err
	}

	d.setMemorySegment(inst, base == x86.BP)

	return nil
}

func (d *Decoder) readMemory32(inst *Instruction, form *x86tab.Form, modrm x86.ModRM, size int, vsib *x86tab.Operand) error {
	p := &d.p
	rm := int(modrm.RM())
	mod := modrm.Mod()
	dispSize := 0
	switch mod {
	case 0b01:
		dispSize = 1
	case 0b10:
		dispSize = 4
	}

	base := x86.None
	if rm == 4 {
		b, err := d.cur.readByte()
		if err != nil {
			return err
		}

		sib := x86.SIB(b)
		index := int(sib.Index())
		if p.X {
			index += 8
		}

		switch {
		case vsib != nil:
			if p.VPrime {
				index += 16
			}

			inst.MemoryIndex = x86.RegisterOf(vsib.Type, index)
		case index != 4:
			inst.MemoryIndex = x86.GPR(size, index)
		}

		if inst.MemoryIndex != x86.None {
			inst.MemoryIndexScale = 1 << sib.Scale()
		}

		if sib.Base() == 5 && mod == 0b00 {
			dispSize = 4
		} else {
			num := int(sib.Base())
			if p.B {
				num += 8
			}

			base = x86.GPR(size, num)
		}
	} else {
		if vsib != nil {
			return fmt.Errorf("%w: VSIB without a SIB byte", ErrInvalidModRMOrSIB)
		}

		if rm == 5 && mod == 0b00 {
			dispSize = 4
			if d.mode == x86.Mode64 {
				base = x86.RIP
				if size == 32 {
					base = x86.EIP
				}
			}
		} else {
			if p.B {
				rm += 8
			}

			base = x86.GPR(size, rm)
		}
	}

	inst.MemoryBase = base
	if err := d.readDisplacement(inst, form, dispSize, size); err != nil {
		return err
	}

	switch base {
	case x86.RIP, x86.EIP:
		// Resolved once the length is known.
		d.relative = true
		d.setMemorySegment(inst, false)
	case x86.ESP, x86.EBP, x86.RSP, x86.RBP:
		d.setMemorySegment(inst, true)
	default:
		d.setMemorySegment(inst, false)
	}

	return nil
}

// readDisplacement reads a displacement of
// the given size, sign extends it, and
// truncates it to the address size. An
// 8-bit EVEX displacement is scaled by the
// instruction's tuple type.
func (d *Decoder) readDisplacement(inst *Instruction, form *x86tab.Form, size, addressSize int) error {
	if size == 0 {
		return nil
	}

	inst.Offsets.DisplacementOffset = d.cur.n
	inst.Offsets.DisplacementSize = size
	disp, err := d.cur.readInt(size)
	if err != nil {
		return err
	}

	if size == 1 && d.p.Encoding == x86.EncodingEVEX {
		vectorBits := form.TupleVectorBits
		if vectorBits == 0 {
			vectorBits = d.p.VectorBits()
		}

		disp *= form.Tuple.Disp8N(vectorBits, form.TupleElementSize, d.p.W, d.p.Broadcast)
	}

	inst.MemoryDisplSize = size
	inst.MemoryDisplacement = truncate(uint64(disp), addressSize)

	return nil
}

// setMemorySegment records the segment of
// a memory operand, which is the override
// if there is one.
func (d *Decoder) setMemorySegment(inst *Instruction, stack bool) {
	switch {
	case d.p.Segment != x86.None:
		inst.MemorySegment = d.p.Segment
	case stack:
		inst.MemorySegment = x86.SS
	default:
		inst.MemorySegment = x86.DS
	}
}

// truncate returns the low bits of v.
func truncate(v uint64, bits int) uint64 {
	if bits >= 64 {
		return v
	}

	return v & (1<<bits - 1)
}
