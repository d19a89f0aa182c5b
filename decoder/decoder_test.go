// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"firefly-os.dev/x86dec/x86"
)

func hexBytes(t *testing.T, code string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.Join(strings.Fields(code), ""))
	if err != nil {
		t.Fatalf("invalid hex %q: %v", code, err)
	}

	return b
}

func reg(r x86.Register) Operand {
	return Operand{Kind: x86.OpRegister, Register: r}
}

var mem = Operand{Kind: x86.OpMemory}

func TestDecode(t *testing.T) {
	tests := []struct {
		Name string
		Mode x86.Mode
		IP   uint64
		Code string
		Want Instruction
	}{
		{
			Name: "inc 16",
			Mode: x86.Mode16,
			Code: "40",
			Want: Instruction{
				Code:       x86.Inc_AX,
				Mode:       x86.Mode16,
				NextIP:     1,
				ByteLength: 1,
				OpCount:    1,
				Ops:        [4]Operand{reg(x86.AX)},
			},
		},
		{
			Name: "MMX 16-bit memory",
			Mode: x86.Mode16,
			Code: "0F E8 08",
			Want: Instruction{
				Code:             x86.Psubsb_P_Q,
				Mode:             x86.Mode16,
				NextIP:           3,
				ByteLength:       3,
				OpCount:          2,
				Ops:              [4]Operand{reg(x86.MM1), mem},
				MemorySegment:    x86.DS,
				MemoryBase:       x86.BX,
				MemoryIndex:      x86.SI,
				MemoryIndexScale: 1,
				MemorySize:       x86.Packed64_Int8,
			},
		},
		{
			Name: "16-bit stack segment",
			Mode: x86.Mode16,
			Code: "8B 46 FE",
			Want: Instruction{
				Code:               x86.Mov_Gw_Ew,
				Mode:               x86.Mode16,
				NextIP:             3,
				ByteLength:         3,
				OpCount:            2,
				Ops:                [4]Operand{reg(x86.AX), mem},
				MemorySegment:      x86.SS,
				MemoryBase:         x86.BP,
				MemoryIndexScale:   1,
				MemoryDisplacement: 0xfffe,
				MemoryDisplSize:    1,
				MemorySize:         x86.UInt16,
				Offsets:            ConstantOffsets{DisplacementOffset: 2, DisplacementSize: 1},
			},
		},
		{
			Name: "EVEX compressed displacement",
			Mode: x86.Mode64,
			Code: "62 F1 4D 0B E8 50 01",
			Want: Instruction{
				Code:               x86.EVEX_Vpsubsb_VX_k1z_HX_WX,
				Mode:               x86.Mode64,
				Encoding:           x86.EncodingEVEX,
				NextIP:             7,
				ByteLength:         7,
				OpCount:            3,
				Ops:                [4]Operand{reg(x86.XMM2), reg(x86.XMM6), mem},
				MemorySegment:      x86.DS,
				MemoryBase:         x86.RAX,
				MemoryIndexScale:   1,
				MemoryDisplacement: 16,
				MemoryDisplSize:    1,
				MemorySize:         x86.Packed128_Int8,
				OpMask:             x86.K3,
				Offsets:            ConstantOffsets{DisplacementOffset: 6, DisplacementSize: 1},
			},
		},
		{
			Name: "EVEX extended registers",
			Mode: x86.Mode64,
			Code: "62 E1 4D 0B E8 50 01",
			Want: Instruction{
				Code:               x86.EVEX_Vpsubsb_VX_k1z_HX_WX,
				Mode:               x86.Mode64,
				Encoding:           x86.EncodingEVEX,
				NextIP:             7,
				ByteLength:         7,
				OpCount:            3,
				Ops:                [4]Operand{reg(x86.XMM18), reg(x86.XMM6), mem},
				MemorySegment:      x86.DS,
				MemoryBase:         x86.RAX,
				MemoryIndexScale:   1,
				MemoryDisplacement: 16,
				MemoryDisplSize:    1,
				MemorySize:         x86.Packed128_Int8,
				OpMask:             x86.K3,
				Offsets:            ConstantOffsets{DisplacementOffset: 6, DisplacementSize: 1},
			},
		},
		{
			Name: "VEX with immediate",
			Mode: x86.Mode64,
			Code: "C4 E3 4D 18 D3 A5",
			Want: Instruction{
				Code:       x86.VEX_Vinsertf128_ymm_ymm_xmmm128_imm8,
				Mode:       x86.Mode64,
				Encoding:   x86.EncodingVEX,
				NextIP:     6,
				ByteLength: 6,
				OpCount:    4,
				Ops: [4]Operand{
					reg(x86.YMM2),
					reg(x86.YMM6),
					reg(x86.XMM3),
					{Kind: x86.OpImmediate8, Immediate: 0xa5},
				},
				Offsets: ConstantOffsets{ImmediateOffset: 5, ImmediateSize: 1},
			},
		},
		{
			Name: "VEX outside 64-bit mode",
			Mode: x86.Mode32,
			Code: "C5 F8 77",
			Want: Instruction{
				Code:       x86.VEX_Vzeroupper,
				Mode:       x86.Mode32,
				Encoding:   x86.EncodingVEX,
				NextIP:     3,
				ByteLength: 3,
			},
		},
		{
			Name: "LES outside 64-bit mode",
			Mode: x86.Mode32,
			Code: "C4 00",
			Want: Instruction{
				Code:             x86.Les_Gd_Mp,
				Mode:             x86.Mode32,
				NextIP:           2,
				ByteLength:       2,
				OpCount:          2,
				Ops:              [4]Operand{reg(x86.EAX), mem},
				MemorySegment:    x86.DS,
				MemoryBase:       x86.EAX,
				MemoryIndexScale: 1,
				MemorySize:       x86.SegPtr32,
			},
		},
		{
			Name: "RIP-relative",
			Mode: x86.Mode64,
			IP:   0x1000,
			Code: "48 8B 05 10 00 00 00",
			Want: Instruction{
				Code:               x86.Mov_Gq_Eq,
				Mode:               x86.Mode64,
				IP:                 0x1000,
				NextIP:             0x1007,
				ByteLength:         7,
				OpCount:            2,
				Ops:                [4]Operand{reg(x86.RAX), mem},
				MemorySegment:      x86.DS,
				MemoryBase:         x86.RIP,
				MemoryIndexScale:   1,
				MemoryDisplacement: 0x1017,
				MemoryDisplSize:    4,
				MemorySize:         x86.UInt64,
				Offsets:            ConstantOffsets{DisplacementOffset: 3, DisplacementSize: 4},
			},
		},
		{
			Name: "SIB with index",
			Mode: x86.Mode64,
			Code: "8B 44 8D F0",
			Want: Instruction{
				Code:               x86.Mov_Gd_Ed,
				Mode:               x86.Mode64,
				NextIP:             4,
				ByteLength:         4,
				OpCount:            2,
				Ops:                [4]Operand{reg(x86.EAX), mem},
				MemorySegment:      x86.SS,
				MemoryBase:         x86.RBP,
				MemoryIndex:        x86.RCX,
				MemoryIndexScale:   4,
				MemoryDisplacement: 0xffff_ffff_ffff_fff0,
				MemoryDisplSize:    1,
				MemorySize:         x86.UInt32,
				Offsets:            ConstantOffsets{DisplacementOffset: 3, DisplacementSize: 1},
			},
		},
		{
			Name: "near call",
			Mode: x86.Mode32,
			IP:   0x1000,
			Code: "E8 FB FF FF FF",
			Want: Instruction{
				Code:       x86.Call_Jd32,
				Mode:       x86.Mode32,
				IP:         0x1000,
				NextIP:     0x1005,
				ByteLength: 5,
				OpCount:    1,
				Ops:        [4]Operand{{Kind: x86.OpNearBranch32, Immediate: 0x1000}},
				Offsets:    ConstantOffsets{ImmediateOffset: 1, ImmediateSize: 4},
			},
		},
		{
			Name: "short jump",
			Mode: x86.Mode64,
			IP:   0x40_0000,
			Code: "EB FE",
			Want: Instruction{
				Code:       x86.Jmp_Jb64,
				Mode:       x86.Mode64,
				IP:         0x40_0000,
				NextIP:     0x40_0002,
				ByteLength: 2,
				OpCount:    1,
				Ops:        [4]Operand{{Kind: x86.OpNearBranch64, Immediate: 0x40_0000}},
				Offsets:    ConstantOffsets{ImmediateOffset: 1, ImmediateSize: 1},
			},
		},
		{
			Name: "far jump",
			Mode: x86.Mode16,
			Code: "EA 34 12 00 F0",
			Want: Instruction{
				Code:              x86.Jmp_Aww,
				Mode:              x86.Mode16,
				NextIP:            5,
				ByteLength:        5,
				OpCount:           1,
				Ops:               [4]Operand{{Kind: x86.OpFarBranch16, Immediate: 0x1234}},
				FarBranchSelector: 0xf000,
				Offsets: ConstantOffsets{
					ImmediateOffset:  1,
					ImmediateSize:    2,
					ImmediateOffset2: 3,
					ImmediateSize2:   2,
				},
			},
		},
		{
			Name: "sign-extended immediate",
			Mode: x86.Mode64,
			Code: "48 83 C0 FF",
			Want: Instruction{
				Code:       x86.Add_Eq_Ib64,
				Mode:       x86.Mode64,
				NextIP:     4,
				ByteLength: 4,
				OpCount:    2,
				Ops: [4]Operand{
					reg(x86.RAX),
					{Kind: x86.OpImmediate8to64, Immediate: 0xffff_ffff_ffff_ffff},
				},
				Offsets: ConstantOffsets{ImmediateOffset: 3, ImmediateSize: 1},
			},
		},
		{
			Name: "64-bit immediate",
			Mode: x86.Mode64,
			Code: "49 B8 88 77 66 55 44 33 22 11",
			Want: Instruction{
				Code:       x86.Mov_R8_Iq,
				Mode:       x86.Mode64,
				NextIP:     10,
				ByteLength: 10,
				OpCount:    2,
				Ops: [4]Operand{
					reg(x86.R8),
					{Kind: x86.OpImmediate64, Immediate: 0x1122_3344_5566_7788},
				},
				Offsets: ConstantOffsets{ImmediateOffset: 2, ImmediateSize: 8},
			},
		},
		{
			Name: "memory offset",
			Mode: x86.Mode32,
			Code: "64 A1 78 56 34 12",
			Want: Instruction{
				Code:               x86.Mov_EAX_Od,
				Mode:               x86.Mode32,
				NextIP:             6,
				ByteLength:         6,
				OpCount:            2,
				Ops:                [4]Operand{reg(x86.EAX), mem},
				MemorySegment:      x86.FS,
				MemoryIndexScale:   1,
				MemoryDisplacement: 0x1234_5678,
				MemoryDisplSize:    4,
				MemorySize:         x86.UInt32,
				PrefixSegment:      x86.FS,
				Offsets:            ConstantOffsets{DisplacementOffset: 2, DisplacementSize: 4},
			},
		},
		{
			Name: "64-bit memory offset",
			Mode: x86.Mode64,
			Code: "48 A1 88 77 66 55 44 33 22 11",
			Want: Instruction{
				Code:               x86.Mov_RAX_Oq,
				Mode:               x86.Mode64,
				NextIP:             10,
				ByteLength:         10,
				OpCount:            2,
				Ops:                [4]Operand{reg(x86.RAX), {Kind: x86.OpMemory64}},
				MemorySegment:      x86.DS,
				MemoryIndexScale:   1,
				MemoryDisplacement: 0x1122_3344_5566_7788,
				MemoryDisplSize:    8,
				MemorySize:         x86.UInt64,
				Offsets:            ConstantOffsets{DisplacementOffset: 2, DisplacementSize: 8},
			},
		},
		{
			Name: "string operands",
			Mode: x86.Mode64,
			Code: "F3 A4",
			Want: Instruction{
				Code:       x86.Movsb_Yb_Xb,
				Mode:       x86.Mode64,
				NextIP:     2,
				ByteLength: 2,
				OpCount:    2,
				Ops: [4]Operand{
					{Kind: x86.OpMemoryESRDI},
					{Kind: x86.OpMemorySegRSI},
				},
				MemorySegment: x86.DS,
				MemorySize:    x86.UInt8,
				HasPrefixRepe: true,
			},
		},
		{
			Name: "string operands with 16-bit addressing",
			Mode: x86.Mode32,
			Code: "67 26 A4",
			Want: Instruction{
				Code:       x86.Movsb_Yb_Xb,
				Mode:       x86.Mode32,
				NextIP:     3,
				ByteLength: 3,
				OpCount:    2,
				Ops: [4]Operand{
					{Kind: x86.OpMemoryESDI},
					{Kind: x86.OpMemorySegSI},
				},
				MemorySegment: x86.ES,
				MemorySize:    x86.UInt8,
				PrefixSegment: x86.ES,
			},
		},
		{
			Name: "mandatory prefix",
			Mode: x86.Mode64,
			Code: "F3 90",
			Want: Instruction{
				Code:       x86.Pause,
				Mode:       x86.Mode64,
				NextIP:     2,
				ByteLength: 2,
			},
		},
		{
			Name: "lock",
			Mode: x86.Mode32,
			Code: "F0 01 08",
			Want: Instruction{
				Code:             x86.Add_Ed_Gd,
				Mode:             x86.Mode32,
				NextIP:           3,
				ByteLength:       3,
				OpCount:          2,
				Ops:              [4]Operand{mem, reg(x86.ECX)},
				MemorySegment:    x86.DS,
				MemoryBase:       x86.EAX,
				MemoryIndexScale: 1,
				MemorySize:       x86.UInt32,
				HasPrefixLock:    true,
			},
		},
		{
			Name: "gather",
			Mode: x86.Mode64,
			Code: "C4 E2 69 90 04 8D 00 00 00 00",
			Want: Instruction{
				Code:             x86.VEX_Vpgatherdd_VX_VM32X_HX,
				Mode:             x86.Mode64,
				Encoding:         x86.EncodingVEX,
				NextIP:           10,
				ByteLength:       10,
				OpCount:          3,
				Ops:              [4]Operand{reg(x86.XMM0), mem, reg(x86.XMM2)},
				MemorySegment:    x86.DS,
				MemoryIndex:      x86.XMM1,
				MemoryIndexScale: 4,
				MemoryDisplSize:  4,
				MemorySize:       x86.Int32,
				Offsets:          ConstantOffsets{DisplacementOffset: 6, DisplacementSize: 4},
			},
		},
		{
			Name: "EVEX rounding control",
			Mode: x86.Mode64,
			Code: "62 F1 7C 38 58 C1",
			Want: Instruction{
				Code:                  x86.EVEX_Vaddps_VZ_k1z_HZ_WZ_er_b,
				Mode:                  x86.Mode64,
				Encoding:              x86.EncodingEVEX,
				NextIP:                6,
				ByteLength:            6,
				OpCount:               3,
				Ops:                   [4]Operand{reg(x86.ZMM0), reg(x86.ZMM0), reg(x86.ZMM1)},
				RoundingControl:       x86.RoundDown,
				SuppressAllExceptions: true,
			},
		},
		{
			Name: "EVEX broadcast",
			Mode: x86.Mode64,
			Code: "62 F1 7C 58 58 40 01",
			Want: Instruction{
				Code:               x86.EVEX_Vaddps_VZ_k1z_HZ_WZ_er_b,
				Mode:               x86.Mode64,
				Encoding:           x86.EncodingEVEX,
				NextIP:             7,
				ByteLength:         7,
				OpCount:            3,
				Ops:                [4]Operand{reg(x86.ZMM0), reg(x86.ZMM0), mem},
				MemorySegment:      x86.DS,
				MemoryBase:         x86.RAX,
				MemoryIndexScale:   1,
				MemoryDisplacement: 4,
				MemoryDisplSize:    1,
				MemorySize:         x86.Broadcast512_Float32,
				IsBroadcast:        true,
				Offsets:            ConstantOffsets{DisplacementOffset: 6, DisplacementSize: 1},
			},
		},
		{
			Name: "EVEX suppress all exceptions",
			Mode: x86.Mode64,
			Code: "62 F1 7C 18 2E C1",
			Want: Instruction{
				Code:                  x86.EVEX_Vucomiss_VX_WX_sae,
				Mode:                  x86.Mode64,
				Encoding:              x86.EncodingEVEX,
				NextIP:                6,
				ByteLength:            6,
				OpCount:               2,
				Ops:                   [4]Operand{reg(x86.XMM0), reg(x86.XMM1)},
				SuppressAllExceptions: true,
			},
		},
		{
			Name: "VEX vvvv high bit outside 64-bit mode",
			Mode: x86.Mode32,
			Code: "C4 E1 38 77",
			Want: Instruction{
				Code:       x86.VEX_Vzeroupper,
				Mode:       x86.Mode32,
				Encoding:   x86.EncodingVEX,
				NextIP:     4,
				ByteLength: 4,
			},
		},
		{
			Name: "VEX register operands with vvvv high bit in 32-bit mode",
			Mode: x86.Mode32,
			Code: "C4 E1 39 6F C1",
			Want: Instruction{
				Code:       x86.VEX_Vmovdqa_VX_WX,
				Mode:       x86.Mode32,
				Encoding:   x86.EncodingVEX,
				NextIP:     5,
				ByteLength: 5,
				OpCount:    2,
				Ops:        [4]Operand{reg(x86.XMM0), reg(x86.XMM1)},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			code := hexBytes(t, test.Code)
			got, err := New(test.Mode, code, test.IP).Decode()
			if err != nil {
				t.Fatalf("Decode(%q): got unexpected error: %v", test.Code, err)
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("Decode(%q): (-want, +got)\n%s", test.Code, diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		Name   string
		Mode   x86.Mode
		Code   string
		Want   error
		Offset int
	}{
		{
			Name:   "REX without opcode",
			Mode:   x86.Mode64,
			Code:   "40",
			Want:   ErrTruncatedInstruction,
			Offset: 1,
		},
		{
			Name:   "truncated displacement",
			Mode:   x86.Mode64,
			Code:   "62 F1 4D 0B E8 50",
			Want:   ErrTruncatedInstruction,
			Offset: 6,
		},
		{
			Name:   "too long",
			Mode:   x86.Mode64,
			Code:   strings.Repeat("66", 15) + "90",
			Want:   ErrInvalidInstructionLength,
			Offset: 15,
		},
		{
			Name:   "too long with more data",
			Mode:   x86.Mode32,
			Code:   strings.Repeat("2E", 14) + "B8 00 00 00 00",
			Want:   ErrInvalidInstructionLength,
			Offset: 15,
		},
		{
			Name:   "unused opcode",
			Mode:   x86.Mode64,
			Code:   "0F 04",
			Want:   ErrUnrecognizedOpcode,
			Offset: 2,
		},
		{
			Name:   "invalid in 64-bit mode",
			Mode:   x86.Mode64,
			Code:   "27",
			Want:   ErrUnrecognizedOpcode,
			Offset: 1,
		},
		{
			Name:   "reserved segment register",
			Mode:   x86.Mode64,
			Code:   "8E F0",
			Want:   ErrInvalidModRMOrSIB,
			Offset: 2,
		},
		{
			Name:   "reserved register form",
			Mode:   x86.Mode64,
			Code:   "0F 01 CC",
			Want:   ErrInvalidModRMOrSIB,
			Offset: 3,
		},
		{
			Name:   "register operand to memory-only form",
			Mode:   x86.Mode32,
			Code:   "8D C0",
			Want:   ErrInvalidModRMOrSIB,
			Offset: 2,
		},
		{
			Name:   "REX before VEX",
			Mode:   x86.Mode64,
			Code:   "48 C5 F8 77",
			Want:   ErrInvalidPrefixCombination,
			Offset: 2,
		},
		{
			Name:   "operand size before VEX",
			Mode:   x86.Mode64,
			Code:   "66 C5 F8 77",
			Want:   ErrInvalidPrefixCombination,
			Offset: 2,
		},
		{
			Name:   "EVEX reserved bits",
			Mode:   x86.Mode64,
			Code:   "62 F5 4D 0B E8 50 01",
			Want:   ErrInvalidPrefixCombination,
			Offset: 4,
		},
		{
			Name:   "EVEX fixed bit",
			Mode:   x86.Mode64,
			Code:   "62 F1 49 0B E8 50 01",
			Want:   ErrInvalidPrefixCombination,
			Offset: 4,
		},
		{
			Name:   "EVEX zeroing without opmask",
			Mode:   x86.Mode64,
			Code:   "62 F1 4D 88 E8 50 01",
			Want:   ErrInvalidPrefixCombination,
			Offset: 4,
		},
		{
			Name:   "EVEX broadcast without support",
			Mode:   x86.Mode64,
			Code:   "62 F1 4D 1B E8 50 01",
			Want:   ErrInvalidPrefixCombination,
			Offset: 6,
		},
		{
			Name:   "unused vvvv",
			Mode:   x86.Mode64,
			Code:   "C5 F0 77",
			Want:   ErrInvalidPrefixCombination,
			Offset: 3,
		},
		{
			Name:   "unused vvvv high bit in 64-bit mode",
			Mode:   x86.Mode64,
			Code:   "C4 E1 38 77",
			Want:   ErrInvalidPrefixCombination,
			Offset: 4,
		},
		{
			Name:   "VSIB index matches destination",
			Mode:   x86.Mode64,
			Code:   "C4 E2 69 90 04 85 00 00 00 00",
			Want:   ErrInvalidModRMOrSIB,
			Offset: 10,
		},
		{
			Name:   "VSIB without SIB",
			Mode:   x86.Mode64,
			Code:   "C4 E2 69 90 00",
			Want:   ErrInvalidModRMOrSIB,
			Offset: 5,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			code := hexBytes(t, test.Code)
			got, err := Decode(test.Mode, code)
			if err == nil {
				t.Fatalf("Decode(%q): got %s, want error %v", test.Code, &got, test.Want)
			}

			if !errors.Is(err, test.Want) {
				t.Fatalf("Decode(%q): got error %v, want %v", test.Code, err, test.Want)
			}

			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("Decode(%q): got error %T, want %T", test.Code, err, decodeErr)
			}

			if decodeErr.Offset != test.Offset {
				t.Fatalf("Decode(%q): got error at offset %d, want %d", test.Code, decodeErr.Offset, test.Offset)
			}

			if got.Code != x86.INVALID {
				t.Fatalf("Decode(%q): got code %s with an error", test.Code, got.Code)
			}
		})
	}
}

func TestTruncatedUnwrapsEOF(t *testing.T) {
	_, err := Decode(x86.Mode64, []byte{0x0f})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Decode(0f): got error %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestModeSensitivity(t *testing.T) {
	code := []byte{0x40, 0x90}
	tests := []struct {
		Mode   x86.Mode
		Code   x86.Code
		Length int
	}{
		{x86.Mode16, x86.Inc_AX, 1},
		{x86.Mode32, x86.Inc_EAX, 1},
		{x86.Mode64, x86.Nopd, 2},
	}

	for _, test := range tests {
		got, err := Decode(test.Mode, code)
		if err != nil {
			t.Errorf("Decode(%s, % x): got unexpected error: %v", test.Mode.String, code, err)
			continue
		}

		if got.Code != test.Code || got.ByteLength != test.Length {
			t.Errorf("Decode(%s, % x): got %s (%d bytes), want %s (%d bytes)", test.Mode.String, code, got.Code, got.ByteLength, test.Code, test.Length)
		}
	}
}

func TestPrefixes(t *testing.T) {
	tests := []struct {
		Name    string
		Mode    x86.Mode
		Code    string
		Want    x86.Code
		Segment x86.Register
		Repe    bool
		Repne   bool
		Op0     x86.Register
	}{
		{
			Name:    "last segment wins",
			Mode:    x86.Mode32,
			Code:    "64 26 8B 00",
			Want:    x86.Mov_Gd_Ed,
			Segment: x86.ES,
			Op0:     x86.EAX,
		},
		{
			Name:    "FS and GS stick in 64-bit mode",
			Mode:    x86.Mode64,
			Code:    "64 26 8B 00",
			Want:    x86.Mov_Gd_Ed,
			Segment: x86.FS,
			Op0:     x86.EAX,
		},
		{
			Name:    "FS after ES in 64-bit mode",
			Mode:    x86.Mode64,
			Code:    "26 64 8B 00",
			Want:    x86.Mov_Gd_Ed,
			Segment: x86.FS,
			Op0:     x86.EAX,
		},
		{
			Name: "last repeat prefix wins",
			Mode: x86.Mode64,
			Code: "F2 F3 A4",
			Want: x86.Movsb_Yb_Xb,
			Repe: true,
		},
		{
			Name:  "repne",
			Mode:  x86.Mode64,
			Code:  "F3 F2 A4",
			Want:  x86.Movsb_Yb_Xb,
			Repne: true,
		},
		{
			Name: "legacy prefix cancels REX",
			Mode: x86.Mode64,
			Code: "41 66 90",
			Want: x86.Nopw,
		},
		{
			Name: "REX before opcode",
			Mode: x86.Mode64,
			Code: "66 41 90",
			Want: x86.Xchg_R8W_AX,
			Op0:  x86.R8W,
		},
		{
			Name: "last REX wins",
			Mode: x86.Mode64,
			Code: "41 48 90",
			Want: x86.Nopq,
		},
		{
			Name: "high byte register",
			Mode: x86.Mode64,
			Code: "88 E0",
			Want: x86.Mov_Eb_Gb,
			Op0:  x86.AL,
		},
		{
			Name: "mandatory prefix clears repeat",
			Mode: x86.Mode64,
			Code: "F3 0F B8 C0",
			Want: x86.Popcnt_Gd_Ed,
			Op0:  x86.EAX,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			code := hexBytes(t, test.Code)
			got, err := Decode(test.Mode, code)
			if err != nil {
				t.Fatalf("Decode(%q): got unexpected error: %v", test.Code, err)
			}

			if got.Code != test.Want {
				t.Fatalf("Decode(%q): got %s, want %s", test.Code, got.Code, test.Want)
			}

			if got.ByteLength != len(code) {
				t.Errorf("Decode(%q): got length %d, want %d", test.Code, got.ByteLength, len(code))
			}

			if got.PrefixSegment != test.Segment {
				t.Errorf("Decode(%q): got segment %s, want %s", test.Code, got.PrefixSegment, test.Segment)
			}

			if got.HasPrefixRepe != test.Repe || got.HasPrefixRepne != test.Repne {
				t.Errorf("Decode(%q): got repe %v repne %v, want repe %v repne %v", test.Code, got.HasPrefixRepe, got.HasPrefixRepne, test.Repe, test.Repne)
			}

			if test.Op0 != x86.None && got.Op(0).Register != test.Op0 {
				t.Errorf("Decode(%q): got operand 0 %s, want %s", test.Code, got.Op(0).Register, test.Op0)
			}
		})
	}
}

func TestREXSelectsByteRegisters(t *testing.T) {
	got, err := Decode(x86.Mode64, []byte{0x40, 0x88, 0xe0})
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	if got.Op(1).Register != x86.SPL {
		t.Fatalf("40 88 e0: got %s, want %s", got.Op(1).Register, x86.SPL)
	}

	got, err = Decode(x86.Mode64, []byte{0x88, 0xe0})
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	if got.Op(1).Register != x86.AH {
		t.Fatalf("88 e0: got %s, want %s", got.Op(1).Register, x86.AH)
	}
}

func TestRepeatedPrefixes(t *testing.T) {
	once, err := Decode(x86.Mode32, []byte{0x66, 0x01, 0xc8})
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	for n := 2; n <= 8; n++ {
		code := append(bytes.Repeat([]byte{0x66}, n), 0x01, 0xc8)
		got, err := Decode(x86.Mode32, code)
		if err != nil {
			t.Fatalf("Decode(% x): got unexpected error: %v", code, err)
		}

		if got.Code != once.Code || got.ByteLength != once.ByteLength+n-1 {
			t.Fatalf("Decode(% x): got %s (%d bytes), want %s (%d bytes)", code, got.Code, got.ByteLength, once.Code, once.ByteLength+n-1)
		}

		if diff := cmp.Diff(once.Operands(), got.Operands()); diff != "" {
			t.Fatalf("Decode(% x): (-want, +got)\n%s", code, diff)
		}
	}
}

func TestDecoderStream(t *testing.T) {
	code := hexBytes(t, `
		55
		48 89 E5
		48 83 EC 10
		C7 45 FC 00 00 00 00
		27
		04 C9
		C3`)

	want := []x86.Code{
		x86.Push_RBP,
		x86.Mov_Eq_Gq,
		x86.Sub_Eq_Ib64,
		x86.Mov_Ed_Id,
		x86.INVALID,
		x86.Add_AL_Ib,
		x86.Retnq,
	}

	const ip = 0x1000
	d := New(x86.Mode64, code, ip)
	var got []x86.Code
	for d.CanDecode() {
		pos := d.Position()
		inst, err := d.Decode()
		if err != nil {
			if d.Position() != pos {
				t.Fatalf("Decode at %d: moved to %d after error", pos, d.Position())
			}

			got = append(got, x86.INVALID)
			d.SetPosition(pos + 1)
			continue
		}

		if inst.IP != ip+uint64(pos) {
			t.Errorf("Decode at %d: got IP %#x, want %#x", pos, inst.IP, ip+uint64(pos))
		}

		if d.Position() != pos+inst.ByteLength || d.IP() != inst.NextIP {
			t.Errorf("Decode at %d: got position %d, IP %#x after %s", pos, d.Position(), d.IP(), inst.Code)
		}

		if b := inst.Bytes(code, ip); !bytes.Equal(b, code[pos:pos+inst.ByteLength]) {
			t.Errorf("Decode at %d: got bytes % x", pos, b)
		}

		got = append(got, inst.Code)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Decode(): (-want, +got)\n%s", diff)
	}
}

func TestDecodeDeterministic(t *testing.T) {
	code := hexBytes(t, "62 F1 4D 0B E8 50 01")
	first, err := Decode(x86.Mode64, code)
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	d := New(x86.Mode64, code, 0)
	for i := 0; i < 3; i++ {
		d.SetPosition(0)
		got, err := d.Decode()
		if err != nil {
			t.Fatalf("got unexpected error: %v", err)
		}

		if diff := cmp.Diff(first, got); diff != "" {
			t.Fatalf("Decode(): (-want, +got)\n%s", diff)
		}
	}
}

func TestContractViolations(t *testing.T) {
	panics := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: did not panic", name)
			}
		}()

		fn()
	}

	panics("New(empty)", func() { New(x86.Mode64, nil, 0) })
	panics("New(mode 8)", func() { New(x86.Mode{Int: 8, String: "8"}, []byte{0x90}, 0) })
	panics("SetPosition(-1)", func() { New(x86.Mode64, []byte{0x90}, 0).SetPosition(-1) })
	panics("SetPosition(2)", func() { New(x86.Mode64, []byte{0x90}, 0).SetPosition(2) })
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		Mode x86.Mode
		Code string
		Want string
	}{
		{x86.Mode16, "40", "Inc_AX ax"},
		{x86.Mode64, "62 F1 4D 0B E8 50 01", "EVEX_Vpsubsb_VX_k1z_HX_WX xmm2{k3}, xmm6, Packed128_Int8 ds:[rax+0x10]"},
		{x86.Mode64, "8B 44 8D F0", "Mov_Gd_Ed eax, UInt32 ss:[rbp+rcx*4-0x10]"},
		{x86.Mode64, "62 F1 7C 38 58 C1", "EVEX_Vaddps_VZ_k1z_HZ_WZ_er_b zmm0, zmm0, zmm1, {rd-sae}"},
		{x86.Mode16, "EA 34 12 00 F0", "Jmp_Aww 0xf000:0x1234"},
		{x86.Mode64, "F3 A4", "Movsb_Yb_Xb es:[rdi], ds:[rsi]"},
	}

	for _, test := range tests {
		inst, err := Decode(test.Mode, hexBytes(t, test.Code))
		if err != nil {
			t.Errorf("Decode(%q): got unexpected error: %v", test.Code, err)
			continue
		}

		if got := inst.String(); got != test.Want {
			t.Errorf("Decode(%q).String(): got %q, want %q", test.Code, got, test.Want)
		}
	}
}
