// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"firefly-os.dev/x86dec/x86"
)

func TestParse(t *testing.T) {
	tests := []struct {
		Name string
		Text string
		Want *Config
	}{
		{
			Name: "empty",
			Text: "",
			Want: Default(),
		},
		{
			Name: "full",
			Text: `
				mode = 32
				ip = 0x7c00
				format = "yaml"
				workers = 2
				max-errors = 10
				resync = "stop"
			`,
			Want: &Config{
				Mode:      x86.Mode32,
				ModeBits:  32,
				IP:        0x7c00,
				Format:    FormatYAML,
				Workers:   2,
				MaxErrors: 10,
				Resync:    ResyncStop,
			},
		},
		{
			Name: "partial",
			Text: `mode = 16`,
			Want: &Config{
				Mode:     x86.Mode16,
				ModeBits: 16,
				Format:   FormatText,
				Workers:  runtime.GOMAXPROCS(0),
				Resync:   ResyncSkip,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(test.Text))
			if err != nil {
				t.Fatalf("got unexpected error: %v", err)
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("Parse(): (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		Name string
		Text string
		Want string
	}{
		{
			Name: "bad mode",
			Text: `mode = 8`,
			Want: "invalid mode 8",
		},
		{
			Name: "bad format",
			Text: `format = "xml"`,
			Want: `invalid format "xml"`,
		},
		{
			Name: "no workers",
			Text: `workers = 0`,
			Want: "invalid worker count",
		},
		{
			Name: "negative error limit",
			Text: `max-errors = -1`,
			Want: "invalid error limit",
		},
		{
			Name: "bad resync",
			Text: `resync = "retry"`,
			Want: "invalid resync policy",
		},
		{
			Name: "unknown field",
			Text: "mode = 64\ncolour = true",
			Want: "unknown fields: colour",
		},
		{
			Name: "syntax",
			Text: `mode = `,
			Want: "",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(test.Text))
			if err == nil {
				t.Fatalf("Parse(%q): unexpected success", test.Text)
			}

			if !strings.Contains(err.Error(), test.Want) {
				t.Fatalf("Parse(%q): got error %q, want %q", test.Text, err, test.Want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, DefaultName)
	err := os.WriteFile(name, []byte("mode = 32\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(name)
	if err != nil {
		t.Fatalf("Load(%q): got unexpected error: %v", name, err)
	}

	if cfg.Mode != x86.Mode32 {
		t.Fatalf("Load(%q): got mode %s, want %s", name, cfg.Mode.String, x86.Mode32.String)
	}

	missing := filepath.Join(dir, "missing.toml")
	_, err = Load(missing)
	if !os.IsNotExist(err) {
		t.Fatalf("Load(%q): got error %v, want a not exist error", missing, err)
	}
}

func TestParseJobs(t *testing.T) {
	cfg := Default()
	cfg.IP = 0x1000
	ip := func(v uint64) *uint64 { return &v }

	const text = `
		[[region]]
		name = "boot"
		file = "boot.bin"
		length = 0x200
		mode = 16
		ip = 0x7c00

		[[region]]
		file = "/abs/kernel.bin"
		offset = 0x40
	`

	got, err := ParseJobs(strings.NewReader(text), "/jobs", cfg)
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	want := &Jobs{
		Regions: []*Region{
			{
				Name:     "boot",
				File:     filepath.Join("/jobs", "boot.bin"),
				Length:   0x200,
				Mode:     x86.Mode16,
				ModeBits: 16,
				IP:       ip(0x7c00),
			},
			{
				Name:     "kernel.bin@0x40",
				File:     "/abs/kernel.bin",
				Offset:   0x40,
				Mode:     x86.Mode64,
				ModeBits: 64,
				IP:       ip(0x1040),
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseJobs(): (-want, +got)\n%s", diff)
	}
}

func TestParseJobsErrors(t *testing.T) {
	tests := []struct {
		Name string
		Text string
		Want string
	}{
		{
			Name: "no regions",
			Text: "",
			Want: "no regions",
		},
		{
			Name: "no file",
			Text: "[[region]]\nname = \"a\"",
			Want: "region 1: no file",
		},
		{
			Name: "duplicate name",
			Text: "[[region]]\nname = \"a\"\nfile = \"x\"\n[[region]]\nname = \"a\"\nfile = \"y\"",
			Want: `region 2: name "a" already used by region 1`,
		},
		{
			Name: "negative offset",
			Text: "[[region]]\nfile = \"x\"\noffset = -1",
			Want: "invalid range",
		},
		{
			Name: "bad mode",
			Text: "[[region]]\nfile = \"x\"\nmode = 48",
			Want: "invalid mode 48",
		},
		{
			Name: "unknown field",
			Text: "[[region]]\nfile = \"x\"\nsize = 4",
			Want: "unknown fields: region.size",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := ParseJobs(strings.NewReader(test.Text), ".", Default())
			if err == nil {
				t.Fatalf("ParseJobs(%q): unexpected success", test.Text)
			}

			if !strings.Contains(err.Error(), test.Want) {
				t.Fatalf("ParseJobs(%q): got error %q, want %q", test.Text, err, test.Want)
			}
		})
	}
}

func TestRegionRead(t *testing.T) {
	name := filepath.Join(t.TempDir(), "code.bin")
	err := os.WriteFile(name, []byte{0x55, 0x48, 0x89, 0xe5, 0xc3}, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		Name   string
		Region Region
		Want   []byte
		Err    string
	}{
		{
			Name:   "whole file",
			Region: Region{Name: "all", File: name},
			Want:   []byte{0x55, 0x48, 0x89, 0xe5, 0xc3},
		},
		{
			Name:   "middle",
			Region: Region{Name: "mid", File: name, Offset: 1, Length: 3},
			Want:   []byte{0x48, 0x89, 0xe5},
		},
		{
			Name:   "tail",
			Region: Region{Name: "tail", File: name, Offset: 4},
			Want:   []byte{0xc3},
		},
		{
			Name:   "too long",
			Region: Region{Name: "long", File: name, Offset: 2, Length: 4},
			Err:    "exceeds",
		},
		{
			Name:   "past end",
			Region: Region{Name: "end", File: name, Offset: 5},
			Err:    "exceeds",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := test.Region.Read()
			if test.Err != "" {
				if err == nil || !strings.Contains(err.Error(), test.Err) {
					t.Fatalf("Read(): got error %v, want %q", err, test.Err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Read(): got unexpected error: %v", err)
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("Read(): (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestOverride(t *testing.T) {
	tests := []struct {
		Name string
		Args []string
		Want *Config
		Err  string
	}{
		{
			Name: "none",
			Args: nil,
			Want: Default(),
		},
		{
			Name: "mode and ip",
			Args: []string{"-mode", "16", "-ip", "0x7c00"},
			Want: func() *Config {
				c := Default()
				c.Mode = x86.Mode16
				c.ModeBits = 16
				c.IP = 0x7c00
				return c
			}(),
		},
		{
			Name: "scan settings",
			Args: []string{"-workers", "3", "-max-errors", "5", "-resync", "stop", "-format", "json"},
			Want: func() *Config {
				c := Default()
				c.Workers = 3
				c.MaxErrors = 5
				c.Resync = ResyncStop
				c.Format = FormatJSON
				return c
			}(),
		},
		{
			Name: "bad mode",
			Args: []string{"-mode", "8"},
			Err:  "invalid -mode",
		},
		{
			Name: "bad format",
			Args: []string{"-format", "xml"},
			Err:  "invalid format",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			flags := flag.NewFlagSet("test", flag.ContinueOnError)
			flags.SetOutput(io.Discard)
			flags.String("mode", "", "")
			flags.Uint64("ip", 0, "")
			flags.String("format", "", "")
			flags.Int("workers", 0, "")
			flags.Int("max-errors", 0, "")
			flags.String("resync", "", "")
			if err := flags.Parse(test.Args); err != nil {
				t.Fatal(err)
			}

			got := Default()
			err := got.Override(flags)
			if test.Err != "" {
				if err == nil || !strings.Contains(err.Error(), test.Err) {
					t.Fatalf("Override(%q): got error %v, want %q", test.Args, err, test.Err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Override(%q): got unexpected error: %v", test.Args, err)
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("Override(%q): (-want, +got)\n%s", test.Args, diff)
			}
		})
	}
}
