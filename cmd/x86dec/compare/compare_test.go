// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package compare

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"rsc.io/diff"

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

var errRef = errors.New("reference failure")

// lengths returns a reference that reports the
// given lengths, in order. A negative length is
// reported as an error.
func lengths(n ...int) LengthFunc {
	return func(data []byte, mode x86.Mode) (int, error) {
		next := n[0]
		n = n[1:]
		if next < 0 {
			return 0, errRef
		}

		return next, nil
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		Name string
		Code string
		Ref  LengthFunc
		Max  int
		Want *Result
	}{
		{
			Name: "agreement",
			Code: "55 48 89 E5 C3",
			Ref:  lengths(1, 3, 1),
			Want: &Result{Instructions: 3, Agreed: 3},
		},
		{
			Name: "both reject",
			Code: "27 C3",
			Ref:  lengths(-1, 1),
			Want: &Result{Instructions: 2, Agreed: 2},
		},
		{
			Name: "length mismatch",
			Code: "48 89 E5 C3",
			Ref:  lengths(2, 1),
			Want: &Result{
				Instructions: 2,
				Agreed:       1,
				Diffs: []Diff{
					{
						IP:        0x1000,
						Bytes:     []byte{0x48, 0x89, 0xe5},
						Code:      x86.Mov_Eq_Gq,
						Length:    3,
						RefLength: 2,
					},
				},
			},
		},
		{
			Name: "only reference accepts",
			Code: "27 C3",
			Ref:  lengths(1, 1),
			Want: &Result{
				Instructions: 2,
				Agreed:       1,
				Diffs: []Diff{
					{
						IP:        0x1000,
						Bytes:     []byte{0x27},
						Err:       errRef,
						RefLength: 1,
					},
				},
			},
		},
		{
			Name: "extended encoding",
			Code: "C5 F8 77 C3",
			Ref:  lengths(-1, 1),
			Want: &Result{Instructions: 2, Agreed: 1, Unsupported: 1},
		},
		{
			Name: "limit",
			Code: "90 90 90",
			Ref:  lengths(2, 2, 2),
			Max:  1,
			Want: &Result{
				Instructions: 1,
				Diffs: []Diff{
					{
						IP:        0x1000,
						Bytes:     []byte{0x90, 0x90},
						Code:      x86.Nopd,
						Length:    1,
						RefLength: 2,
					},
				},
				Truncated: true,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			opts := Options{Mode: x86.Mode64, IP: 0x1000, MaxDiffs: test.Max}
			got := Compare(hexBytes(t, test.Code), opts, test.Ref)

			// Only check whether the decoder failed.
			for i := range got.Diffs {
				if got.Diffs[i].Err != nil {
					got.Diffs[i].Err = errRef
				}
			}

			if diff := cmp.Diff(test.Want, got, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Compare(): (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestCompareX86asm(t *testing.T) {
	tests := []struct {
		Name string
		Mode x86.Mode
		Code string
	}{
		{
			Name: "function prologue",
			Mode: x86.Mode64,
			Code: "55 48 89 E5 48 83 EC 10 C7 45 FC 00 00 00 00 8B 45 FC C9 C3",
		},
		{
			Name: "protected mode",
			Mode: x86.Mode32,
			Code: "8B 44 8D F0 E8 00 00 00 00 A1 78 56 34 12 F3 A4",
		},
		{
			Name: "real mode",
			Mode: x86.Mode16,
			Code: "FA 31 C0 8E D8 BE 00 7C AC CD 10 EB FB",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			opts := Options{Mode: test.Mode}
			got := Compare(hexBytes(t, test.Code), opts, X86asmLength)
			if len(got.Diffs) != 0 {
				var buf bytes.Buffer
				got.Write(&buf, test.Mode)
				t.Fatalf("Compare(): found disagreements:\n%s", buf.String())
			}
		})
	}
}

func TestWrite(t *testing.T) {
	res := &Result{
		Instructions: 4,
		Agreed:       2,
		Unsupported:  1,
		Diffs: []Diff{
			{
				IP:        0x7c00,
				Bytes:     []byte{0x0f, 0x04},
				Err:       errors.New("unrecognized opcode"),
				RefLength: 2,
			},
		},
	}

	var buf bytes.Buffer
	res.Write(&buf, x86.Mode16)
	want := "7c00  0f04                            decoder: error: unrecognized opcode; x86asm: 2 bytes\n" +
		"4 instructions: 2 agree, 1 disagree, 1 unsupported by x86asm\n"
	if got := buf.String(); got != want {
		t.Fatalf("Write(): output mismatch:\n%s", diff.Format(got, want))
	}
}
