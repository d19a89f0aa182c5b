// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86tab

import (
	"errors"
	"testing"

	"firefly-os.dev/x86dec/x86"
)

func TestLookup(t *testing.T) {
	legacy := func(m x86.OpcodeMap) x86.PrefixState {
		return x86.PrefixState{Encoding: x86.EncodingLegacy, Map: m}
	}
	withREX := func(p x86.PrefixState, rex x86.REX) x86.PrefixState {
		p.HasREX = true
		p.REX = rex
		p.W, p.R, p.X, p.B = rex.W(), rex.R(), rex.X(), rex.B()
		return p
	}
	with66 := func(p x86.PrefixState) x86.PrefixState {
		p.OperandSizeOverride = true
		p.Mandatory = x86.Mandatory66
		return p
	}
	withF3 := func(p x86.PrefixState) x86.PrefixState {
		p.Repe = true
		p.Mandatory = x86.MandatoryF3
		return p
	}
	extended := func(enc x86.EncodingKind, m x86.OpcodeMap, pp x86.MandatoryPrefix, l uint8, w bool) x86.PrefixState {
		return x86.PrefixState{Encoding: enc, Map: m, Mandatory: pp, L: l, W: w}
	}

	tests := []struct {
		Name   string
		Mode   x86.Mode
		Prefix x86.PrefixState
		Opcode byte
		ModRM  x86.ModRM
		Want   x86.Code
		Err    error
	}{
		{
			Name:   "inc 16",
			Mode:   x86.Mode16,
			Prefix: legacy(x86.MapPrimary),
			Opcode: 0x40,
			Want:   x86.Inc_AX,
		},
		{
			Name:   "inc 32",
			Mode:   x86.Mode32,
			Prefix: legacy(x86.MapPrimary),
			Opcode: 0x40,
			Want:   x86.Inc_EAX,
		},
		{
			Name:   "inc 16 with operand size override",
			Mode:   x86.Mode16,
			Prefix: with66(legacy(x86.MapPrimary)),
			Opcode: 0x40,
			Want:   x86.Inc_EAX,
		},
		{
			Name:   "push default 64",
			Mode:   x86.Mode64,
			Prefix: legacy(x86.MapPrimary),
			Opcode: 0x50,
			Want:   x86.Push_RAX,
		},
		{
			Name:   "push 16 in 64-bit mode",
			Mode:   x86.Mode64,
			Prefix: with66(legacy(x86.MapPrimary)),
			Opcode: 0x50,
			Want:   x86.Push_AX,
		},
		{
			Name:   "push extended register",
			Mode:   x86.Mode64,
			Prefix: withREX(legacy(x86.MapPrimary), 0x41),
			Opcode: 0x50,
			Want:   x86.Push_R8,
		},
		{
			Name:   "push 32 in 32-bit mode",
			Mode:   x86.Mode32,
			Prefix: legacy(x86.MapPrimary),
			Opcode: 0x50,
			Want:   x86.Push_EAX,
		},
		{
			Name:   "nop",
			Mode:   x86.Mode64,
			Prefix: legacy(x86.MapPrimary),
			Opcode: 0x90,
			Want:   x86.Nopd,
		},
		{
			Name:   "pause",
			Mode:   x86.Mode64,
			Prefix: withF3(legacy(x86.MapPrimary)),
			Opcode: 0x90,
			Want:   x86.Pause,
		},
		{
			Name:   "xchg r8d",
			Mode:   x86.Mode64,
			Prefix: withREX(legacy(x86.MapPrimary), 0x41),
			Opcode: 0x90,
			Want:   x86.Xchg_R8D_EAX,
		},
		{
			Name:   "MMX",
			Mode:   x86.Mode16,
			Prefix: legacy(x86.Map0F),
			Opcode: 0xe8,
			ModRM:  0x08,
			Want:   x86.Psubsb_P_Q,
		},
		{
			Name:   "SSE2",
			Mode:   x86.Mode32,
			Prefix: with66(legacy(x86.Map0F)),
			Opcode: 0xe8,
			ModRM:  0xc1,
			Want:   x86.Psubsb_VX_WX,
		},
		{
			Name:   "fixed ModR/M",
			Mode:   x86.Mode32,
			Prefix: legacy(x86.Map0F),
			Opcode: 0x01,
			ModRM:  0xd0,
			Want:   x86.Xgetbv,
		},
		{
			Name:   "register form",
			Mode:   x86.Mode64,
			Prefix: legacy(x86.Map0F),
			Opcode: 0xae,
			ModRM:  0xe8,
			Want:   x86.Lfence,
		},
		{
			Name:   "memory form",
			Mode:   x86.Mode64,
			Prefix: legacy(x86.Map0F),
			Opcode: 0xae,
			ModRM:  0x28,
			Want:   x86.Xrstor_M,
		},
		{
			Name:   "control register",
			Mode:   x86.Mode64,
			Prefix: legacy(x86.Map0F),
			Opcode: 0x20,
			ModRM:  0x18,
			Want:   x86.Mov_Rq_Cq,
		},
		{
			Name:   "unused opcode",
			Mode:   x86.Mode64,
			Prefix: legacy(x86.Map0F),
			Opcode: 0x04,
			Err:    ErrNoForm,
		},
		{
			Name:   "reserved register form",
			Mode:   x86.Mode64,
			Prefix: legacy(x86.Map0F),
			Opcode: 0x01,
			ModRM:  0xcc,
			Err:    ErrReserved,
		},
		{
			Name:   "VEX",
			Mode:   x86.Mode64,
			Prefix: extended(x86.EncodingVEX, x86.Map0F3A, x86.Mandatory66, 1, false),
			Opcode: 0x18,
			ModRM:  0xd3,
			Want:   x86.VEX_Vinsertf128_ymm_ymm_xmmm128_imm8,
		},
		{
			Name:   "VEX wrong length",
			Mode:   x86.Mode64,
			Prefix: extended(x86.EncodingVEX, x86.Map0F3A, x86.Mandatory66, 0, false),
			Opcode: 0x18,
			ModRM:  0xd3,
			Err:    ErrNoForm,
		},
		{
			Name:   "VEX W ignored outside 64-bit mode",
			Mode:   x86.Mode32,
			Prefix: extended(x86.EncodingVEX, x86.Map0F38, x86.MandatoryNone, 0, true),
			Opcode: 0xf2,
			ModRM:  0xc1,
			Want:   x86.VEX_Andn_Gd_Hd_Ed,
		},
		{
			Name:   "VEX W in 64-bit mode",
			Mode:   x86.Mode64,
			Prefix: extended(x86.EncodingVEX, x86.Map0F38, x86.MandatoryNone, 0, true),
			Opcode: 0xf2,
			ModRM:  0xc1,
			Want:   x86.VEX_Andn_Gq_Hq_Eq,
		},
		{
			Name:   "EVEX 128",
			Mode:   x86.Mode64,
			Prefix: extended(x86.EncodingEVEX, x86.Map0F, x86.Mandatory66, 0, false),
			Opcode: 0xe8,
			ModRM:  0x50,
			Want:   x86.EVEX_Vpsubsb_VX_k1z_HX_WX,
		},
		{
			Name:   "EVEX 512",
			Mode:   x86.Mode64,
			Prefix: extended(x86.EncodingEVEX, x86.Map0F, x86.Mandatory66, 2, true),
			Opcode: 0xe8,
			ModRM:  0x50,
			Want:   x86.EVEX_Vpsubsb_VZ_k1z_HZ_WZ,
		},
		{
			Name: "EVEX rounding",
			Mode: x86.Mode64,
			Prefix: func() x86.PrefixState {
				p := extended(x86.EncodingEVEX, x86.Map0F, x86.MandatoryNone, 1, false)
				p.Broadcast = true
				return p
			}(),
			Opcode: 0x58,
			ModRM:  0xc1,
			Want:   x86.EVEX_Vaddps_VZ_k1z_HZ_WZ_er_b,
		},
		{
			Name: "EVEX broadcast",
			Mode: x86.Mode64,
			Prefix: func() x86.PrefixState {
				p := extended(x86.EncodingEVEX, x86.Map0F, x86.MandatoryNone, 1, false)
				p.Broadcast = true
				return p
			}(),
			Opcode: 0x58,
			ModRM:  0x01,
			Want:   x86.EVEX_Vaddps_VY_k1z_HY_WY_b,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := Lookup(&test.Prefix, test.Mode, test.Opcode, test.ModRM)
			if test.Err != nil {
				if !errors.Is(err, test.Err) {
					t.Fatalf("Lookup(%02x): got error %v, want %v", test.Opcode, err, test.Err)
				}

				var lookup *LookupError
				if !errors.As(err, &lookup) {
					t.Fatalf("Lookup(%02x): got error %T, want %T", test.Opcode, err, lookup)
				}

				return
			}

			if err != nil {
				t.Fatalf("Lookup(%02x): got unexpected error: %v", test.Opcode, err)
			}

			if got.Code != test.Want {
				t.Fatalf("Lookup(%02x): got %v, want %v", test.Opcode, got.Code, test.Want)
			}
		})
	}
}

func TestHasModRM(t *testing.T) {
	tests := []struct {
		Encoding x86.EncodingKind
		Map      x86.OpcodeMap
		Opcode   byte
		Want     bool
	}{
		{x86.EncodingLegacy, x86.MapPrimary, 0x00, true},
		{x86.EncodingLegacy, x86.MapPrimary, 0x04, false},
		{x86.EncodingLegacy, x86.MapPrimary, 0x40, false},
		{x86.EncodingLegacy, x86.MapPrimary, 0xd9, true},
		{x86.EncodingLegacy, x86.Map0F, 0x01, true},
		{x86.EncodingLegacy, x86.Map0F, 0x0b, false},
		{x86.EncodingLegacy, x86.Map0F, 0xe8, true},
		{x86.EncodingVEX, x86.Map0F, 0x77, false},
		{x86.EncodingVEX, x86.Map0F3A, 0x18, true},
		{x86.EncodingEVEX, x86.Map0F, 0xe8, true},
		{x86.EncodingXOP, x86.MapXOP8, 0xa2, true},
	}

	for _, test := range tests {
		got := HasModRM(test.Encoding, test.Map, test.Opcode)
		if got != test.Want {
			t.Errorf("HasModRM(%s, %s, %02x): got %v, want %v", test.Encoding, test.Map, test.Opcode, got, test.Want)
		}
	}
}
