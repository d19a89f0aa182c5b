// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"testing"

	"golang.org/x/arch/x86/x86asm"

	"firefly-os.dev/x86dec/x86"
)

// TestLengthsMatchX86asm checks that the
// instruction lengths agree with the Go
// disassembler for legacy instructions.
func TestLengthsMatchX86asm(t *testing.T) {
	tests := []struct {
		Mode x86.Mode
		Code string
	}{
		{x86.Mode32, "90"},
		{x86.Mode32, "55"},
		{x86.Mode32, "89 E5"},
		{x86.Mode32, "8B 44 24 04"},
		{x86.Mode32, "8B 84 24 00 01 00 00"},
		{x86.Mode32, "8B 05 78 56 34 12"},
		{x86.Mode32, "66 8B 46 FE"},
		{x86.Mode32, "67 8B 46 FE"},
		{x86.Mode32, "C7 45 FC 01 00 00 00"},
		{x86.Mode32, "66 C7 45 FC 01 00"},
		{x86.Mode32, "83 C4 10"},
		{x86.Mode32, "E8 00 00 00 00"},
		{x86.Mode32, "66 E8 00 00"},
		{x86.Mode32, "EA 78 56 34 12 08 00"},
		{x86.Mode32, "A1 78 56 34 12"},
		{x86.Mode32, "67 A1 34 12"},
		{x86.Mode32, "F3 A5"},
		{x86.Mode32, "F0 0F B1 0A"},
		{x86.Mode32, "0F 84 00 01 00 00"},
		{x86.Mode32, "C8 10 00 01"},
		{x86.Mode32, "D9 05 00 00 00 00"},
		{x86.Mode32, "DE C1"},
		{x86.Mode32, "0F 01 D0"},
		{x86.Mode32, "66 0F EF C1"},
		{x86.Mode32, "F2 0F 10 44 24 08"},
		{x86.Mode64, "48 89 E5"},
		{x86.Mode64, "48 8B 05 10 00 00 00"},
		{x86.Mode64, "48 B8 88 77 66 55 44 33 22 11"},
		{x86.Mode64, "48 A1 88 77 66 55 44 33 22 11"},
		{x86.Mode64, "41 5C"},
		{x86.Mode64, "4C 8D 04 8D 00 00 00 00"},
		{x86.Mode64, "48 83 EC 08"},
		{x86.Mode64, "48 69 C0 00 01 00 00"},
		{x86.Mode64, "66 0F 1F 44 00 00"},
		{x86.Mode64, "0F 1F 84 00 00 00 00 00"},
		{x86.Mode64, "64 48 8B 04 25 28 00 00 00"},
		{x86.Mode64, "0F 05"},
		{x86.Mode64, "E9 00 00 00 00"},
		{x86.Mode64, "FF 15 00 00 00 00"},
		{x86.Mode64, "F3 48 AB"},
		{x86.Mode64, "0F 20 D8"},
		{x86.Mode64, "F3 0F B8 C1"},
		{x86.Mode64, "66 0F 3A 0F C1 08"},
		{x86.Mode64, "66 0F 38 00 C1"},
	}

	for _, test := range tests {
		code := hexBytes(t, test.Code)
		want, err := x86asm.Decode(code, int(test.Mode.Int))
		if err != nil {
			t.Errorf("x86asm.Decode(%q): got unexpected error: %v", test.Code, err)
			continue
		}

		got, err := Decode(test.Mode, code)
		if err != nil {
			t.Errorf("Decode(%q): got unexpected error: %v", test.Code, err)
			continue
		}

		if got.ByteLength != want.Len {
			t.Errorf("Decode(%q): got %s with length %d, x86asm found %v with length %d", test.Code, &got, got.ByteLength, want, want.Len)
		}

		if want.Len != len(code) {
			t.Errorf("x86asm.Decode(%q): got length %d, want %d", test.Code, want.Len, len(code))
		}
	}
}
