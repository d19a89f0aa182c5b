// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decode

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
	"rsc.io/diff"

	"firefly-os.dev/x86dec/internal/config"
	"firefly-os.dev/x86dec/x86"
)

func TestDecodeGolden(t *testing.T) {
	tests := []struct {
		Name string
		Mode x86.Mode
		IP   uint64
		Hex  []string
		Want string
	}{
		{
			Name: "stack frame",
			Mode: x86.Mode64,
			IP:   0x1000,
			Hex:  []string{"55", "48 89 E5", "8B45FC 27", "EB FE C3"},
			Want: "stack64.golden",
		},
		{
			Name: "boot sector",
			Mode: x86.Mode16,
			IP:   0x7c00,
			Hex:  []string{"FA 31C0 8ED8 BE007C AC CD10 EBFB"},
			Want: "boot16.golden",
		},
	}

	var buf bytes.Buffer
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			buf.Reset()
			data, err := ParseHex(test.Hex...)
			if err != nil {
				t.Fatalf("ParseHex(%q): got unexpected error: %v", test.Hex, err)
			}

			opts := Options{Mode: test.Mode, IP: test.IP, Format: config.FormatText}
			err = Decode(&buf, data, opts)
			if err != nil {
				t.Fatalf("Decode(): got unexpected error: %v", err)
			}

			wantName := filepath.Join("testdata", test.Want)
			want, err := os.ReadFile(wantName)
			if err != nil {
				t.Fatalf("failed to read %q: %v", wantName, err)
			}

			got := buf.Bytes()
			if !bytes.Equal(got, want) {
				t.Fatalf("Decode(): output mismatch:\n%s", diff.Format(string(got), string(want)))
			}
		})
	}
}

func TestDecodeStructured(t *testing.T) {
	data, err := ParseHex("55 27 C3")
	if err != nil {
		t.Fatal(err)
	}

	type record struct {
		IP          uint64         `json:"ip" yaml:"ip"`
		Bytes       string         `json:"bytes" yaml:"bytes"`
		Instruction map[string]any `json:"instruction" yaml:"instruction"`
		Error       string         `json:"error" yaml:"error"`
	}

	unmarshal := map[string]func([]byte, any) error{
		config.FormatJSON: json.Unmarshal,
		config.FormatYAML: yaml.Unmarshal,
	}

	for format, fun := range unmarshal {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			opts := Options{Mode: x86.Mode64, IP: 0x400000, Format: format}
			err := Decode(&buf, data, opts)
			if err != nil {
				t.Fatalf("Decode(): got unexpected error: %v", err)
			}

			var got []record
			err = fun(buf.Bytes(), &got)
			if err != nil {
				t.Fatalf("failed to parse %s output: %v\n%s", format, err, buf.Bytes())
			}

			if len(got) != 3 {
				t.Fatalf("got %d records, want 3", len(got))
			}

			wantCodes := []string{"Push_RBP", "", "Retnq"}
			for i, rec := range got {
				if want := uint64(0x400000 + i); rec.IP != want {
					t.Errorf("record %d: got IP %#x, want %#x", i, rec.IP, want)
				}

				if wantCodes[i] == "" {
					if rec.Instruction != nil {
						t.Errorf("record %d: got instruction %v, want none", i, rec.Instruction)
					}

					if !strings.Contains(rec.Error, "unrecognized opcode") {
						t.Errorf("record %d: got error %q, want unrecognized opcode", i, rec.Error)
					}

					continue
				}

				if got := rec.Instruction["code"]; got != wantCodes[i] {
					t.Errorf("record %d: got code %v, want %s", i, got, wantCodes[i])
				}

				if got := rec.Instruction["mode"]; got != "64" {
					t.Errorf("record %d: got mode %v (%T), want \"64\"", i, got, got)
				}
			}

			if got := got[0].Bytes; got != "55" {
				t.Errorf("got bytes %q, want %q", got, "55")
			}
		})
	}
}

func TestDecodeDump(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Mode: x86.Mode64, Format: config.FormatText, Dump: true}
	err := Decode(&buf, []byte{0xf3, 0x90}, opts)
	if err != nil {
		t.Fatalf("Decode(): got unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"Pause",
		"decoder.Instruction",
		"(x86.PrefixState)",
		"Repe: (bool) true",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dump is missing %q:\n%s", want, got)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		Name string
		In   []string
		Want []byte
		Err  string
	}{
		{
			Name: "single",
			In:   []string{"90"},
			Want: []byte{0x90},
		},
		{
			Name: "spaced",
			In:   []string{"48 89\te5\n"},
			Want: []byte{0x48, 0x89, 0xe5},
		},
		{
			Name: "split byte",
			In:   []string{"4", "8"},
			Want: []byte{0x48},
		},
		{
			Name: "empty",
			In:   []string{" "},
			Err:  "no machine code",
		},
		{
			Name: "odd",
			In:   []string{"489"},
			Err:  "invalid machine code",
		},
		{
			Name: "not hex",
			In:   []string{"zz"},
			Err:  "invalid machine code",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := ParseHex(test.In...)
			if test.Err != "" {
				if err == nil || !strings.Contains(err.Error(), test.Err) {
					t.Fatalf("ParseHex(%q): got error %v, want %q", test.In, err, test.Err)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseHex(%q): got unexpected error: %v", test.In, err)
			}

			if !bytes.Equal(got, test.Want) {
				t.Fatalf("ParseHex(%q): got %x, want %x", test.In, got, test.Want)
			}
		})
	}
}
