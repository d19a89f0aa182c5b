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

// regRegister returns the register selected
// by ModR/M.reg and its extension bits.
func (d *Decoder) regRegister(op *x86tab.Operand, modrm x86.ModRM) (x86.Register, error) {
	p := &d.p
	num := int(modrm.Reg())
	switch op.Type {
	case x86.TypeGeneralPurpose, x86.TypeControl, x86.TypeDebug:
		if p.R {
			num += 8
		}
	case x86.TypeOpmask:
		if p.R || p.RPrime {
			return x86.None, fmt.Errorf("%w: opmask register %d in ModR/M.reg", ErrInvalidModRMOrSIB, num+8)
		}
	case x86.TypeXMM, x86.TypeYMM, x86.TypeZMM:
		if p.R {
			num += 8
		}

		if p.RPrime {
			num += 16
		}
	}

	return d.register(op, num)
}

// rmRegister returns the register selected
// by ModR/M.rm and its extension bits.
func (d *Decoder) rmRegister(op *x86tab.Operand, modrm x86.ModRM) (x86.Register, error) {
	p := &d.p
	num := int(modrm.RM())
	switch op.Type {
	case x86.TypeGeneralPurpose:
		if p.B {
			num += 8
		}
	case x86.TypeXMM, x86.TypeYMM, x86.TypeZMM:
		if p.B {
			num += 8
		}

		if p.XRegister {
			num += 16
		}
	}

	return d.register(op, num)
}

// vvvvRegister returns the register selected
// by the vvvv field.
func (d *Decoder) vvvvRegister(op *x86tab.Operand) (x86.Register, error) {
	num := int(d.p.VVVV)
	if op.Type == x86.TypeOpmask && num > 7 {
		return x86.None, fmt.Errorf("%w: opmask register %d in vvvv", ErrInvalidPrefixCombination, num)
	}

	return d.register(op, num)
}

// is4Register returns the register selected
// by bits 7:4 of an immediate.
func (d *Decoder) is4Register(op *x86tab.Operand, imm byte) (x86.Register, error) {
	num := int(imm >> 4)
	if d.mode != x86.Mode64 {
		num &= 7
	}

	return d.register(op, num)
}

// register returns the register with the
// given number in the operand's family.
func (d *Decoder) register(op *x86tab.Operand, num int) (x86.Register, error) {
	switch op.Type {
	case x86.TypeGeneralPurpose:
		if op.Bits == 8 {
			return x86.GPR8(num, d.p.HasREX), nil
		}

		return x86.GPR(op.Bits, num), nil
	case x86.TypeMMX, x86.TypeX87:
		num &= 7
	}

	reg := x86.RegisterOf(op.Type, num)
	if reg == x86.None {
		return x86.None, fmt.Errorf("%w: no %s register %d", ErrInvalidModRMOrSIB, op.Type, num)
	}

	return reg, nil
}
