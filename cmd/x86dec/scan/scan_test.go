// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package scan

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"rsc.io/diff"

	"firefly-os.dev/x86dec/internal/config"
	"firefly-os.dev/x86dec/x86"
)

// writeJob writes each binary to a file in a
// temporary directory, along with a job file
// listing them, and returns the parsed jobs.
func writeJob(t *testing.T, cfg *config.Config, job string, files map[string]string) []*config.Region {
	t.Helper()
	dir := t.TempDir()
	for name, code := range files {
		data, err := hex.DecodeString(strings.Join(strings.Fields(code), ""))
		if err != nil {
			t.Fatalf("invalid hex for %s: %v", name, err)
		}

		err = os.WriteFile(filepath.Join(dir, name), data, 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}

	jobName := filepath.Join(dir, "jobs.toml")
	err := os.WriteFile(jobName, []byte(job), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	jobs, err := config.LoadJobs(jobName, cfg)
	if err != nil {
		t.Fatalf("LoadJobs(): got unexpected error: %v", err)
	}

	return jobs.Regions
}

const job = `
[[region]]
name = "frame"
file = "frame.bin"

[[region]]
name = "boot"
file = "boot.bin"
mode = 16
ip = 0x7c00
`

var files = map[string]string{
	"frame.bin": "55 48 89 E5 27 C3",
	"boot.bin":  "FA 31 C0 FA",
}

func TestScan(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 2
	regions := writeJob(t, cfg, job, files)

	got, err := Scan(context.Background(), cfg, regions, false)
	if err != nil {
		t.Fatalf("Scan(): got unexpected error: %v", err)
	}

	want := []*Stats{
		{
			Region:       "frame",
			Mode:         x86.Mode64,
			Bytes:        6,
			Instructions: 3,
			Invalid:      1,
			Codes: map[x86.Code]int{
				x86.Push_RBP:  1,
				x86.Mov_Eq_Gq: 1,
				x86.Retnq:     1,
			},
		},
		{
			Region:       "boot",
			Mode:         x86.Mode16,
			Bytes:        4,
			Instructions: 3,
			Codes: map[x86.Code]int{
				x86.Cli:       2,
				x86.Xor_Ew_Gw: 1,
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Scan(): (-want, +got)\n%s", diff)
	}

	var buf bytes.Buffer
	err = Write(&buf, config.FormatText, got)
	if err != nil {
		t.Fatalf("Write(): got unexpected error: %v", err)
	}

	wantText := "frame: 64-bit, 6 bytes, 3 instructions, 1 invalid bytes\n" +
		"\tMov_Eq_Gq  1\n" +
		"\tPush_RBP   1\n" +
		"\tRetnq      1\n" +
		"boot: 16-bit, 4 bytes, 3 instructions, 0 invalid bytes\n" +
		"\tCli        2\n" +
		"\tXor_Ew_Gw  1\n"
	if gotText := buf.String(); gotText != wantText {
		t.Fatalf("Write(): output mismatch:\n%s", diff.Format(gotText, wantText))
	}
}

func TestScanStop(t *testing.T) {
	cfg := config.Default()
	cfg.Resync = config.ResyncStop
	regions := writeJob(t, cfg, job, files)

	got, err := Scan(context.Background(), cfg, regions[:1], false)
	if err != nil {
		t.Fatalf("Scan(): got unexpected error: %v", err)
	}

	want := []*Stats{
		{
			Region:       "frame",
			Mode:         x86.Mode64,
			Bytes:        6,
			Instructions: 2,
			Invalid:      1,
			Undecoded:    1,
			Codes: map[x86.Code]int{
				x86.Push_RBP:  1,
				x86.Mov_Eq_Gq: 1,
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Scan(): (-want, +got)\n%s", diff)
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		Name  string
		Job   string
		Files map[string]string
		Want  string
	}{
		{
			Name:  "too many errors",
			Job:   "[[region]]\nname = \"junk\"\nfile = \"junk.bin\"\n",
			Files: map[string]string{"junk.bin": "27 27 27"},
			Want:  `region "junk": more than 2 decode errors`,
		},
		{
			Name:  "missing file",
			Job:   "[[region]]\nfile = \"missing.bin\"\n",
			Files: nil,
			Want:  "missing.bin",
		},
		{
			Name:  "region past the end",
			Job:   "[[region]]\nname = \"long\"\nfile = \"short.bin\"\nlength = 16\n",
			Files: map[string]string{"short.bin": "90"},
			Want:  "exceeds",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			cfg := config.Default()
			cfg.MaxErrors = 2
			regions := writeJob(t, cfg, test.Job, test.Files)
			_, err := Scan(context.Background(), cfg, regions, false)
			if err == nil {
				t.Fatalf("Scan(): unexpected success")
			}

			if !strings.Contains(err.Error(), test.Want) {
				t.Fatalf("Scan(): got error %q, want %q", err, test.Want)
			}
		})
	}
}

func TestScanCancelled(t *testing.T) {
	cfg := config.Default()
	regions := writeJob(t, cfg, job, files)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, cfg, regions, false)
	if err != context.Canceled {
		t.Fatalf("Scan(): got error %v, want %v", err, context.Canceled)
	}
}

func TestWriteJSON(t *testing.T) {
	stats := []*Stats{
		{
			Region:       "frame",
			Mode:         x86.Mode64,
			Bytes:        1,
			Instructions: 1,
			Codes:        map[x86.Code]int{x86.Retnq: 1},
		},
	}

	var buf bytes.Buffer
	err := Write(&buf, config.FormatJSON, stats)
	if err != nil {
		t.Fatalf("Write(): got unexpected error: %v", err)
	}

	var got []map[string]any
	err = json.Unmarshal(buf.Bytes(), &got)
	if err != nil {
		t.Fatalf("failed to parse output: %v\n%s", err, buf.Bytes())
	}

	want := []map[string]any{
		{
			"region":       "frame",
			"mode":         "64",
			"bytes":        1.0,
			"instructions": 1.0,
			"invalid":      0.0,
			"codes":        map[string]any{"Retnq": 1.0},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Write(): (-want, +got)\n%s", diff)
	}
}
