// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86tab

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"firefly-os.dev/x86dec/x86"
)

func TestParseForm(t *testing.T) {
	all := Mode16 | Mode32 | Mode64
	tests := []struct {
		Name string
		Line string
		Want *Form
	}{
		{
			Name: "MMX",
			Line: "Psubsb_P_Q | NP 0FE8 /r | P,Q | Packed64_Int8 | - | - | 16,32,64 | -",
			Want: &Form{
				Code:       x86.Psubsb_P_Q,
				Syntax:     "NP 0FE8 /r",
				Encoding:   x86.EncodingLegacy,
				Map:        x86.Map0F,
				Opcode:     0xe8,
				ModRM:      true,
				Operands:   []Operand{operands["P"], operands["Q"]},
				Memory:     x86.Packed64_Int8,
				Modes:      all,
				NoPrefix:   true,
				Reg:        -1,
				FixedModRM: -1,
			},
		},
		{
			Name: "EVEX",
			Line: "EVEX_Vpsubsb_VX_k1z_HX_WX | EVEX.NDS.128.66.0F.WIG E8 /r | VX,HX,WX | Packed128_Int8 | - | Full Mem:128 | 16,32,64 | k1,z",
			Want: &Form{
				Code:            x86.EVEX_Vpsubsb_VX_k1z_HX_WX,
				Syntax:          "EVEX.NDS.128.66.0F.WIG E8 /r",
				Encoding:        x86.EncodingEVEX,
				Map:             x86.Map0F,
				Opcode:          0xe8,
				ModRM:           true,
				Operands:        []Operand{operands["VX"], operands["HX"], operands["WX"]},
				Memory:          x86.Packed128_Int8,
				Tuple:           x86.TupleFullMem,
				TupleVectorBits: 128,
				Modes:           all,
				Flags:           FlagOpMask | FlagZeroing,
				Prefix:          x86.Mandatory66,
				VectorBits:      128,
				Reg:             -1,
				FixedModRM:      -1,
			},
		},
		{
			Name: "scalar tuple",
			Line: "EVEX_Vpgatherdd_VX_k1_VM32X | EVEX.128.66.0F38.W0 90 /r | VX,VM32X | Int32 | - | Tuple1 Scalar | 16,32,64 | k1",
			Want: &Form{
				Code:       x86.EVEX_Vpgatherdd_VX_k1_VM32X,
				Syntax:     "EVEX.128.66.0F38.W0 90 /r",
				Encoding:   x86.EncodingEVEX,
				Map:        x86.Map0F38,
				Opcode:     0x90,
				ModRM:      true,
				Operands:   []Operand{operands["VX"], operands["VM32X"]},
				Memory:     x86.Int32,
				Tuple:      x86.Tuple1Scalar,
				Modes:      all,
				Flags:      FlagOpMask | FlagNoK0 | FlagMemoryOnly,
				Prefix:     x86.Mandatory66,
				W:          Clear,
				VectorBits: 128,
				Reg:        -1,
				FixedModRM: -1,
			},
		},
		{
			Name: "implicit register",
			Line: "Push_R8 | REX.B 50 | R8 | - | - | - | 64 | d64",
			Want: &Form{
				Code:     x86.Push_R8,
				Syntax:   "REX.B 50",
				Encoding: x86.EncodingLegacy,
				Map:      x86.MapPrimary,
				Opcode:   0x50,
				Operands: []Operand{
					{Name: "R8", Encoding: EncodingFixed, Type: x86.TypeGeneralPurpose, Bits: 64, Register: x86.R8},
				},
				Modes:      Mode64,
				Flags:      FlagDefault64,
				REXB:       Set,
				Reg:        -1,
				FixedModRM: -1,
			},
		},
		{
			Name: "second immediate",
			Line: "Enterw_Iw_Ib | o16 C8 | Iw,Ib | - | - | - | 16,32,64 | -",
			Want: &Form{
				Code:     x86.Enterw_Iw_Ib,
				Syntax:   "o16 C8",
				Encoding: x86.EncodingLegacy,
				Opcode:   0xc8,
				Operands: []Operand{
					operands["Iw"],
					{Name: "Ib", Encoding: EncodingImm, Bits: 8, Kind: x86.OpImmediate8_2nd},
				},
				Modes:       all,
				OperandSize: 16,
				Reg:         -1,
				FixedModRM:  -1,
			},
		},
		{
			Name: "register form",
			Line: "Lfence | 0FAE E8+i | - | - | - | - | 16,32,64 | -",
			Want: &Form{
				Code:       x86.Lfence,
				Syntax:     "0FAE E8+i",
				Encoding:   x86.EncodingLegacy,
				Map:        x86.Map0F,
				Opcode:     0xae,
				ModRM:      true,
				Modes:      all,
				Flags:      FlagRegisterOnly,
				Reg:        5,
				FixedModRM: -1,
			},
		},
		{
			Name: "fixed ModR/M",
			Line: "Xgetbv | 0F01 D0 | - | - | - | - | 16,32,64 | -",
			Want: &Form{
				Code:       x86.Xgetbv,
				Syntax:     "0F01 D0",
				Encoding:   x86.EncodingLegacy,
				Map:        x86.Map0F,
				Opcode:     0x01,
				ModRM:      true,
				Modes:      all,
				Reg:        -1,
				FixedModRM: 0xd0,
			},
		},
		{
			Name: "control register",
			Line: "Mov_Rq_Cq | 0F20 /r | Rq,Cq | - | - | - | 64 | -",
			Want: &Form{
				Code:       x86.Mov_Rq_Cq,
				Syntax:     "0F20 /r",
				Encoding:   x86.EncodingLegacy,
				Map:        x86.Map0F,
				Opcode:     0x20,
				ModRM:      true,
				Operands:   []Operand{operands["Rq"], operands["Cq"]},
				Modes:      Mode64,
				Flags:      FlagModIgnored,
				Reg:        -1,
				FixedModRM: -1,
			},
		},
		{
			Name: "XOP",
			Line: "XOP_Vpcmov_VX_HX_WX_Is4X | XOP.128.X8.W0 A2 /r | VX,HX,WX,Is4X | UInt128 | - | - | 16,32,64 | -",
			Want: &Form{
				Code:       x86.XOP_Vpcmov_VX_HX_WX_Is4X,
				Syntax:     "XOP.128.X8.W0 A2 /r",
				Encoding:   x86.EncodingXOP,
				Map:        x86.MapXOP8,
				Opcode:     0xa2,
				ModRM:      true,
				Operands:   []Operand{operands["VX"], operands["HX"], operands["WX"], operands["Is4X"]},
				Memory:     x86.UInt128,
				Modes:      all,
				W:          Clear,
				VectorBits: 128,
				Reg:        -1,
				FixedModRM: -1,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := parseForm(test.Line)
			if err != nil {
				t.Fatalf("parseForm(%q): got unexpected error: %v", test.Line, err)
			}

			if diff := cmp.Diff(test.Want, got, cmpopts.IgnoreUnexported(Form{})); diff != "" {
				t.Fatalf("parseForm(%q): (-want, +got)\n%s", test.Line, diff)
			}
		})
	}
}

func TestParseFormErrors(t *testing.T) {
	tests := []struct {
		Name string
		Line string
		Want string
	}{
		{
			Name: "missing fields",
			Line: "Nopd | o32 90 | -",
			Want: "found 3 fields",
		},
		{
			Name: "unknown code",
			Line: "Frobnicate | 90 | - | - | - | - | 16,32,64 | -",
			Want: "unknown code",
		},
		{
			Name: "unknown operand",
			Line: "Nopd | o32 90 | Zq | - | - | - | 16,32,64 | -",
			Want: "unknown operand",
		},
		{
			Name: "bad opcode",
			Line: "Nopd | o32 9G | - | - | - | - | 16,32,64 | -",
			Want: "invalid opcode",
		},
		{
			Name: "bad ModR/M",
			Line: "Lfence | 0FAE E9+i | - | - | - | - | 16,32,64 | -",
			Want: "invalid ModR/M",
		},
		{
			Name: "missing map",
			Line: "VEX_Vzeroupper | VEX.128.WIG 77 | - | - | - | - | 16,32,64 | -",
			Want: "missing opcode map",
		},
		{
			Name: "unknown memory size",
			Line: "Nopd | o32 90 | - | Packed12_Int3 | - | - | 16,32,64 | -",
			Want: "unknown memory size",
		},
		{
			Name: "bad mode",
			Line: "Nopd | o32 90 | - | - | - | - | 8 | -",
			Want: "invalid mode",
		},
		{
			Name: "unknown flag",
			Line: "Nopd | o32 90 | - | - | - | - | 16,32,64 | fast",
			Want: "unknown flag",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := parseForm(test.Line)
			if err == nil {
				t.Fatalf("parseForm(%q): unexpected success", test.Line)
			}

			if !strings.Contains(err.Error(), test.Want) {
				t.Fatalf("parseForm(%q): got error %q, want %q", test.Line, err, test.Want)
			}
		})
	}
}

func TestFormTable(t *testing.T) {
	if got, want := len(Forms()), x86.NumCodes-1; got != want {
		t.Fatalf("got %d forms, want %d", got, want)
	}

	for _, form := range Forms() {
		if got := ByCode(form.Code); got != form {
			t.Errorf("ByCode(%s): got %v, want %v", form.Code, got, form)
		}

		if form.Modes == 0 {
			t.Errorf("%s: no modes", form)
		}

		if form.Encoding != x86.EncodingLegacy && form.NoPrefix {
			t.Errorf("%s: NP on an extended encoding", form)
		}

		if form.Has(FlagRegisterOnly|FlagMemoryOnly) && !form.Has(FlagModIgnored) {
			t.Errorf("%s: both register-only and memory-only", form)
		}

		if form.Broadcast != x86.Unknown {
			if !form.Broadcast.IsBroadcast() {
				t.Errorf("%s: broadcast size %s is not a broadcast", form, form.Broadcast)
			}

			if !form.Has(FlagBroadcast) {
				t.Errorf("%s: broadcast size without the b flag", form)
			}
		}

		regs := 0
		for _, op := range form.Operands {
			if op.Encoding == EncodingRM || op.Encoding == EncodingReg || op.Encoding == EncodingVSIB {
				regs++
			}
		}

		if regs > 0 && !form.ModRM {
			t.Errorf("%s: ModR/M operands without a ModR/M byte", form)
		}
	}

	if ByCode(x86.INVALID) != nil {
		t.Errorf("ByCode(INVALID): got %v, want nil", ByCode(x86.INVALID))
	}
}

func TestModeSet(t *testing.T) {
	tests := []struct {
		Set  ModeSet
		Mode x86.Mode
		Want bool
	}{
		{Mode16 | Mode32, x86.Mode16, true},
		{Mode16 | Mode32, x86.Mode32, true},
		{Mode16 | Mode32, x86.Mode64, false},
		{Mode64, x86.Mode64, true},
		{Mode64, x86.Mode16, false},
	}

	for _, test := range tests {
		if got := test.Set.Has(test.Mode); got != test.Want {
			t.Errorf("%s.Has(%s): got %v, want %v", test.Set, test.Mode.String, got, test.Want)
		}
	}

	if got, want := (Mode16 | Mode64).String(), "16,64"; got != want {
		t.Errorf("ModeSet.String(): got %q, want %q", got, want)
	}
}
