// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"bytes"
	"testing"

	"firefly-os.dev/x86dec/x86"
)

func TestDecodeMachineCode(t *testing.T) {
	tests := []struct {
		Name  string
		Mode  x86.Mode
		Code  func(c *x86.MachineCode)
		Bytes []byte
		Want  string
	}{
		{
			Name: "REX.B with operand size override",
			Mode: x86.Mode64,
			Code: func(c *x86.MachineCode) {
				c.AddPrefix(x86.PrefixOperandSize)
				c.REX.SetOn()
				c.REX.SetB(true)
				c.SetOpcode(0x89)
				c.SetModRM(0b11, 1, 0)
			},
			Bytes: []byte{0x66, 0x41, 0x89, 0xc8},
			Want:  "Mov_Ew_Gw r8w, cx",
		},
		{
			Name: "REX.W with REX.R",
			Mode: x86.Mode64,
			Code: func(c *x86.MachineCode) {
				c.REX.SetOn()
				c.REX.SetW(true)
				c.REX.SetR(true)
				c.SetOpcode(0x89)
				c.SetModRM(0b11, 0, 0)
			},
			Bytes: []byte{0x4c, 0x89, 0xc0},
			Want:  "Mov_Eq_Gq rax, r8",
		},
		{
			Name: "REX.X extends the index",
			Mode: x86.Mode64,
			Code: func(c *x86.MachineCode) {
				c.REX.SetOn()
				c.REX.SetW(true)
				c.REX.SetX(true)
				c.SetOpcode(0x8b)
				c.SetModRM(0b00, 0, 0b100)
				c.SIB.SetScale(3)
				c.SIB.SetIndex(1)
				c.SIB.SetBase(0)
				c.UseSIB = true
			},
			Bytes: []byte{0x4a, 0x8b, 0x04, 0xc8},
			Want:  "Mov_Gq_Eq rax, UInt64 ds:[rax+r9*8]",
		},
		{
			Name: "SIB",
			Mode: x86.Mode32,
			Code: func(c *x86.MachineCode) {
				c.SetOpcode(0x8b)
				c.SetModRM(0b01, 0, 0b100)
				c.SIB.SetScale(2)
				c.SIB.SetIndex(1)
				c.SIB.SetBase(5)
				c.UseSIB = true
				c.SetDisplacement8(-16)
			},
			Bytes: []byte{0x8b, 0x44, 0x8d, 0xf0},
			Want:  "Mov_Gd_Ed eax, UInt32 ss:[ebp+ecx*4-0x10]",
		},
		{
			Name: "two-byte VEX",
			Mode: x86.Mode64,
			Code: func(c *x86.MachineCode) {
				c.VEX.Default()
				c.VEX.SetM_MMMM(1)
				c.SetOpcode(0x77)
			},
			Bytes: []byte{0xc5, 0xf8, 0x77},
			Want:  "VEX_Vzeroupper",
		},
		{
			Name: "XOP with register in immediate",
			Mode: x86.Mode64,
			Code: func(c *x86.MachineCode) {
				c.VEX.Default()
				c.VEX.SetM_MMMM(8)
				c.VEX.SetVVVV(^byte(3))
				c.XOP = true
				c.SetOpcode(0xa2)
				c.SetModRM(0b11, 1, 2)
				c.SetImmediate(0x40)
			},
			Bytes: []byte{0x8f, 0xe8, 0x60, 0xa2, 0xca, 0x40},
			Want:  "XOP_Vpcmov_VX_HX_WX_Is4X xmm1, xmm3, xmm2, xmm4",
		},
		{
			Name: "EVEX masking",
			Mode: x86.Mode64,
			Code: func(c *x86.MachineCode) {
				c.EVEX.Default()
				c.EVEX.SetMM(1)
				c.EVEX.SetPP(1)
				c.EVEX.SetVVVV(^byte(6))
				c.EVEX.SetAAA(3)
				c.EVEX.SetZ(true)
				c.SetOpcode(0xe8)
				c.SetModRM(0b01, 2, 0)
				c.SetDisplacement8(1)
			},
			Bytes: []byte{0x62, 0xf1, 0x4d, 0x8b, 0xe8, 0x50, 0x01},
			Want:  "EVEX_Vpsubsb_VX_k1z_HX_WX xmm2{k3}{z}, xmm6, Packed128_Int8 ds:[rax+0x10]",
		},
		{
			Name: "EVEX 512-bit with V'",
			Mode: x86.Mode64,
			Code: func(c *x86.MachineCode) {
				c.EVEX.Default()
				c.EVEX.SetMM(1)
				c.EVEX.SetPP(1)
				c.EVEX.SetVVVV(^byte(6))
				c.EVEX.SetVp(false)
				c.EVEX.SetLp(true)
				c.SetOpcode(0xe8)
				c.SetModRM(0b11, 2, 1)
			},
			Bytes: []byte{0x62, 0xf1, 0x4d, 0x40, 0xe8, 0xd1},
			Want:  "EVEX_Vpsubsb_VZ_k1z_HZ_WZ zmm2, zmm22, zmm1",
		},
		{
			Name: "EVEX broadcast",
			Mode: x86.Mode64,
			Code: func(c *x86.MachineCode) {
				c.EVEX.Default()
				c.EVEX.SetMM(1)
				c.EVEX.SetVVVV(^byte(2))
				c.EVEX.SetL(true)
				c.EVEX.SetBr(true)
				c.SetOpcode(0x58)
				c.SetModRM(0b01, 1, 0)
				c.SetDisplacement8(1)
			},
			Bytes: []byte{0x62, 0xf1, 0x6c, 0x38, 0x58, 0x48, 0x01},
			Want:  "EVEX_Vaddps_VY_k1z_HY_WY_b ymm1, ymm2, Broadcast256_Float32 ds:[rax+0x4]",
		},
		{
			Name: "EVEX suppress all exceptions",
			Mode: x86.Mode64,
			Code: func(c *x86.MachineCode) {
				c.EVEX.Default()
				c.EVEX.SetMM(1)
				c.EVEX.SetBr(true)
				c.SetOpcode(0x2e)
				c.SetModRM(0b11, 0, 1)
			},
			Bytes: []byte{0x62, 0xf1, 0x7c, 0x18, 0x2e, 0xc1},
			Want:  "EVEX_Vucomiss_VX_WX_sae xmm0, xmm1, {sae}",
		},
		{
			Name: "VEX vvvv high bit in 32-bit mode",
			Mode: x86.Mode32,
			Code: func(c *x86.MachineCode) {
				c.VEX.Default()
				c.VEX.SetM_MMMM(1)
				c.VEX.SetPP(1)
				c.VEX.SetVVVV(0b0111)
				c.VEX.SetW(true)
				c.VEX.SetL(true)
				c.SetOpcode(0x6f)
				c.SetModRM(0b11, 0, 1)
			},
			Bytes: []byte{0xc4, 0xe1, 0xbd, 0x6f, 0xc1},
			Want:  "VEX_Vmovdqa_VY_WY ymm0, ymm1",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var c x86.MachineCode
			test.Code(&c)
			code := c.Bytes()
			if !bytes.Equal(code, test.Bytes) {
				t.Fatalf("MachineCode.Bytes(): got %x, want %x", code, test.Bytes)
			}

			inst, err := Decode(test.Mode, code)
			if err != nil {
				t.Fatalf("Decode(%x): got unexpected error: %v", code, err)
			}

			if inst.ByteLength != len(code) {
				t.Errorf("Decode(%x): got length %d, want %d", code, inst.ByteLength, len(code))
			}

			if got := inst.String(); got != test.Want {
				t.Fatalf("Decode(%x): got %q, want %q", code, got, test.Want)
			}

			if inst.ZeroingMasking && inst.OpMask == x86.None {
				t.Errorf("Decode(%x): zeroing-masking without an opmask", code)
			}

			if inst.SuppressAllExceptions && inst.HasMemory() {
				t.Errorf("Decode(%x): SAE with a memory operand", code)
			}

			if inst.RoundingControl != x86.RoundNone && !inst.SuppressAllExceptions {
				t.Errorf("Decode(%x): rounding control without SAE", code)
			}
		})
	}
}
