// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		In   string
		Want Mode
		Err  string
	}{
		{In: "16", Want: Mode16},
		{In: "32", Want: Mode32},
		{In: " 64 ", Want: Mode64},
		{In: "8", Err: "must be 16, 32, or 64"},
		{In: "sixty-four", Err: "invalid mode"},
	}

	for _, test := range tests {
		got, err := ParseMode(test.In)
		if test.Err != "" {
			if err == nil || !strings.Contains(err.Error(), test.Err) {
				t.Errorf("ParseMode(%q): got error %v, want %q", test.In, err, test.Err)
			}

			continue
		}

		if err != nil {
			t.Errorf("ParseMode(%q): got unexpected error: %v", test.In, err)
			continue
		}

		if got != test.Want {
			t.Errorf("ParseMode(%q): got %v, want %v", test.In, got, test.Want)
		}
	}

	var m Mode
	if err := m.UnmarshalText([]byte("32")); err != nil || m != Mode32 {
		t.Errorf("UnmarshalText(32): got %v, %v, want %v", m, err, Mode32)
	}

	text, err := Mode16.MarshalText()
	if err != nil || string(text) != "16" {
		t.Errorf("MarshalText(): got %q, %v, want \"16\"", text, err)
	}
}

func TestRegisters(t *testing.T) {
	tests := []struct {
		Name   string
		Got    Register
		Want   Register
		String string
		Type   RegisterType
		Bits   int
		Number int
	}{
		{"AL", GPR8(0, false), AL, "al", TypeGeneralPurpose, 8, 0},
		{"AH", GPR8(4, false), AH, "ah", TypeGeneralPurpose, 8, 4},
		{"SPL", GPR8(4, true), SPL, "spl", TypeGeneralPurpose, 8, 4},
		{"R9L", GPR8(9, true), R9L, "r9l", TypeGeneralPurpose, 8, 9},
		{"DI", GPR(16, 7), DI, "di", TypeGeneralPurpose, 16, 7},
		{"R10W", GPR(16, 10), R10W, "r10w", TypeGeneralPurpose, 16, 10},
		{"EBP", GPR(32, 5), EBP, "ebp", TypeGeneralPurpose, 32, 5},
		{"R15", GPR(64, 15), R15, "r15", TypeGeneralPurpose, 64, 15},
		{"DS", RegisterOf(TypeSegment, 3), DS, "ds", TypeSegment, 16, 3},
		{"ST3", RegisterOf(TypeX87, 3), ST3, "st3", TypeX87, 80, 3},
		{"MM7", RegisterOf(TypeMMX, 7), MM7, "mm7", TypeMMX, 64, 7},
		{"CR8", RegisterOf(TypeControl, 8), CR8, "cr8", TypeControl, 64, 8},
		{"XMM18", RegisterOf(TypeXMM, 18), XMM18, "xmm18", TypeXMM, 128, 18},
		{"YMM31", RegisterOf(TypeYMM, 31), YMM31, "ymm31", TypeYMM, 256, 31},
		{"ZMM0", RegisterOf(TypeZMM, 0), ZMM0, "zmm0", TypeZMM, 512, 0},
		{"K7", RegisterOf(TypeOpmask, 7), K7, "k7", TypeOpmask, 64, 7},
		{"RIP", RIP, RIP, "rip", TypeInstructionPointer, 64, 0},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if test.Got != test.Want {
				t.Fatalf("got %v, want %v", test.Got, test.Want)
			}

			r := test.Got
			if got := r.String(); got != test.String {
				t.Errorf("String(): got %q, want %q", got, test.String)
			}

			if got := r.Type(); got != test.Type {
				t.Errorf("Type(): got %v, want %v", got, test.Type)
			}

			if got := r.Bits(); got != test.Bits {
				t.Errorf("Bits(): got %d, want %d", got, test.Bits)
			}

			if got := r.Number(); got != test.Number {
				t.Errorf("Number(): got %d, want %d", got, test.Number)
			}

			if got := RegistersByName[test.String]; got != r {
				t.Errorf("RegistersByName[%q]: got %v, want %v", test.String, got, r)
			}

			var parsed Register
			if err := parsed.UnmarshalText([]byte(test.String)); err != nil || parsed != r {
				t.Errorf("UnmarshalText(%q): got %v, %v, want %v", test.String, parsed, err, r)
			}
		})
	}

	if got := RegisterOf(TypeOpmask, 8); got != None {
		t.Errorf("RegisterOf(opmask, 8): got %v, want none", got)
	}

	if got := RegisterOf(TypeSegment, 6); got != None {
		t.Errorf("RegisterOf(segment, 6): got %v, want none", got)
	}
}

func TestDisp8N(t *testing.T) {
	tests := []struct {
		Name        string
		Tuple       TupleType
		VectorBits  int
		ElementSize int
		W           bool
		Broadcast   bool
		Want        int64
	}{
		{"full 512", TupleFull, 512, 0, false, false, 64},
		{"full broadcast 32", TupleFull, 512, 0, false, true, 4},
		{"full broadcast 64", TupleFull, 256, 0, true, true, 8},
		{"half", TupleHalf, 256, 0, false, false, 16},
		{"half broadcast", TupleHalf, 512, 0, false, true, 4},
		{"full mem", TupleFullMem, 128, 0, false, false, 16},
		{"scalar W0", Tuple1Scalar, 128, 0, false, false, 4},
		{"scalar W1", Tuple1Scalar, 128, 0, true, false, 8},
		{"scalar byte", Tuple1Scalar, 128, 1, false, false, 1},
		{"tuple2", Tuple2, 512, 0, true, false, 16},
		{"tuple4", Tuple4, 512, 0, false, false, 16},
		{"tuple8", Tuple8, 512, 0, false, false, 32},
		{"quarter mem", TupleQuarterMem, 512, 0, false, false, 16},
		{"eighth mem", TupleEighthMem, 256, 0, false, false, 4},
		{"mem128", TupleMem128, 512, 0, false, false, 16},
		{"movddup 128", TupleMOVDDUP, 128, 0, false, false, 8},
		{"movddup 512", TupleMOVDDUP, 512, 0, false, false, 64},
		{"none", TupleNone, 512, 0, false, false, 1},
	}

	for _, test := range tests {
		got := test.Tuple.Disp8N(test.VectorBits, test.ElementSize, test.W, test.Broadcast)
		if got != test.Want {
			t.Errorf("%s: %s.Disp8N(%d, %d, %v, %v): got %d, want %d", test.Name, test.Tuple,
				test.VectorBits, test.ElementSize, test.W, test.Broadcast, got, test.Want)
		}
	}
}

func TestPrefixStateSizes(t *testing.T) {
	tests := []struct {
		Name    string
		Mode    Mode
		State   PrefixState
		D64     bool
		F64     bool
		Operand int
		Address int
	}{
		{"16-bit", Mode16, PrefixState{}, false, false, 16, 16},
		{"16-bit with overrides", Mode16, PrefixState{OperandSizeOverride: true, AddressSizeOverride: true}, false, false, 32, 32},
		{"32-bit", Mode32, PrefixState{}, false, false, 32, 32},
		{"32-bit with overrides", Mode32, PrefixState{OperandSizeOverride: true, AddressSizeOverride: true}, false, false, 16, 16},
		{"64-bit", Mode64, PrefixState{}, false, false, 32, 64},
		{"64-bit REX.W", Mode64, PrefixState{W: true, OperandSizeOverride: true}, false, false, 64, 64},
		{"64-bit 66", Mode64, PrefixState{OperandSizeOverride: true, AddressSizeOverride: true}, false, false, 16, 32},
		{"64-bit default 64", Mode64, PrefixState{}, true, false, 64, 64},
		{"64-bit default 64 with 66", Mode64, PrefixState{OperandSizeOverride: true}, true, false, 16, 64},
		{"64-bit forced 64", Mode64, PrefixState{OperandSizeOverride: true}, false, true, 64, 64},
		{"32-bit ignores d64", Mode32, PrefixState{}, true, true, 32, 32},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if got := test.State.OperandSize(test.Mode, test.D64, test.F64); got != test.Operand {
				t.Errorf("OperandSize(): got %d, want %d", got, test.Operand)
			}

			if got := test.State.AddressSize(test.Mode); got != test.Address {
				t.Errorf("AddressSize(): got %d, want %d", got, test.Address)
			}
		})
	}
}

func TestVEXFrom2Byte(t *testing.T) {
	// c5 f8: R=1 vvvv=1111 L=0 pp=00.
	v := VEXFrom2Byte(0xf8)
	if !v.R() || !v.X() || !v.B() {
		t.Errorf("VEXFrom2Byte(f8): got R=%v X=%v B=%v, want all set", v.R(), v.X(), v.B())
	}

	if got := v.M_MMMM(); got != 1 {
		t.Errorf("VEXFrom2Byte(f8): got map %d, want 1", got)
	}

	if v.W() || v.L() || v.PP() != 0 || v.VVVV() != 0b1111 {
		t.Errorf("VEXFrom2Byte(f8): got W=%v L=%v pp=%d vvvv=%04b", v.W(), v.L(), v.PP(), v.VVVV())
	}

	// c5 65: R=0 vvvv=1100 L=1 pp=01.
	v = VEXFrom2Byte(0x65)
	if v.R() || !v.L() || v.PP() != 1 || v.VVVV() != 0b1100 {
		t.Errorf("VEXFrom2Byte(65): got R=%v L=%v pp=%d vvvv=%04b", v.R(), v.L(), v.PP(), v.VVVV())
	}
}

func TestMemorySize(t *testing.T) {
	tests := []struct {
		Size        MemorySize
		Bytes       int
		ElementSize int
		Element     MemorySize
		Broadcast   bool
		Packed      bool
	}{
		{UInt32, 4, 4, UInt32, false, false},
		{Packed128_Float32, 16, 4, Float32, false, true},
		{Broadcast512_Float32, 4, 4, Float32, true, false},
		{Unknown, 0, 0, Unknown, false, false},
	}

	for _, test := range tests {
		ms := test.Size
		if got := ms.Size(); got != test.Bytes {
			t.Errorf("%s.Size(): got %d, want %d", ms, got, test.Bytes)
		}

		if got := ms.ElementSize(); got != test.ElementSize {
			t.Errorf("%s.ElementSize(): got %d, want %d", ms, got, test.ElementSize)
		}

		if got := ms.ElementType(); got != test.Element {
			t.Errorf("%s.ElementType(): got %s, want %s", ms, got, test.Element)
		}

		if got := ms.IsBroadcast(); got != test.Broadcast {
			t.Errorf("%s.IsBroadcast(): got %v, want %v", ms, got, test.Broadcast)
		}

		if got := ms.IsPacked(); got != test.Packed {
			t.Errorf("%s.IsPacked(): got %v, want %v", ms, got, test.Packed)
		}

		if got := MemorySizesByName[ms.String()]; got != ms {
			t.Errorf("MemorySizesByName[%q]: got %s, want %s", ms, got, ms)
		}
	}
}

func TestPrefixHelpers(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := false
		switch b {
		case 0xf0, 0xf2, 0xf3, 0x2e, 0x36, 0x3e, 0x26, 0x64, 0x65, 0x66, 0x67:
			want = true
		}

		if got := IsLegacyPrefix(byte(b)); got != want {
			t.Errorf("IsLegacyPrefix(%#02x): got %v, want %v", b, got, want)
		}
	}

	sizes := []struct {
		Mode    Mode
		Operand uint8
		Address uint8
	}{
		{Mode16, 16, 16},
		{Mode32, 32, 32},
		{Mode64, 32, 64},
	}

	for _, test := range sizes {
		if got := test.Mode.DefaultOperandSize(); got != test.Operand {
			t.Errorf("%s.DefaultOperandSize(): got %d, want %d", test.Mode.String, got, test.Operand)
		}

		if got := test.Mode.DefaultAddressSize(); got != test.Address {
			t.Errorf("%s.DefaultAddressSize(): got %d, want %d", test.Mode.String, got, test.Address)
		}
	}

	var rex REX
	rex.SetOn()
	rex.SetW(true)
	rex.SetR(true)
	if got, want := rex.String(), "0100WR00"; got != want {
		t.Errorf("REX.String(): got %q, want %q", got, want)
	}

	var vex VEX
	vex.Default()
	if got, want := vex.String(), "{R: 1, X: 1, B: 1, m-mmmm: 00000, W: 0, vvvv: 1111, L: 0, pp: 00}"; got != want {
		t.Errorf("VEX.String(): got %q, want %q", got, want)
	}

	var evex EVEX
	evex.Default()
	evex.SetLp(true)
	if got, want := evex.LL(), byte(0b10); got != want {
		t.Errorf("EVEX.LL(): got %02b, want %02b", got, want)
	}

	want := "{R: 1, X: 1, B: 1, R': 1, mm: 00 // W: 0, vvvv: 1111, pp: 00 // z: 0, L': 1, L: 0, b: 0, V': 1, aaa: 000}"
	if got := evex.String(); got != want {
		t.Errorf("EVEX.String(): got %q, want %q", got, want)
	}
}
