// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package scan decodes regions of binary files
// concurrently and reports statistics on the
// instructions found.
package scan

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"firefly-os.dev/x86dec/decoder"
	"firefly-os.dev/x86dec/internal/config"
	"firefly-os.dev/x86dec/x86"
)

var program = filepath.Base(os.Args[0])

// Main decodes the regions listed in a job file.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("scan", flag.ExitOnError)

	var help, verbose bool
	var configPath string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&verbose, "v", false, "Log each decode error.")
	flags.StringVar(&configPath, "config", "", "Read defaults from the given configuration `file`.")
	flags.Int("workers", 0, "The number of regions to decode at once (default: the configured value or GOMAXPROCS).")
	flags.Int("max-errors", 0, "Fail a region after this many decode errors (0 means no limit).")
	flags.String("resync", string(config.ResyncSkip), "What to do after a decode error (skip or stop).")
	flags.String("format", config.FormatText, "The output format (text, json, or yaml).")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] JOBFILE\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	if flags.NArg() != 1 {
		flags.Usage()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	err = cfg.Override(flags)
	if err != nil {
		return err
	}

	jobs, err := config.LoadJobs(flags.Arg(0), cfg)
	if err != nil {
		return err
	}

	stats, err := Scan(ctx, cfg, jobs.Regions, verbose)
	if err != nil {
		return err
	}

	return Write(w, cfg.Format, stats)
}

// Stats summarises the instructions in a
// region.
type Stats struct {
	Region       string   `json:"region" yaml:"region"`
	Mode         x86.Mode `json:"mode" yaml:"mode"`
	Bytes        int      `json:"bytes" yaml:"bytes"`
	Instructions int      `json:"instructions" yaml:"instructions"`

	// Invalid counts the bytes skipped after
	// decode errors. Undecoded counts the bytes
	// left when decoding stopped early.
	Invalid   int `json:"invalid" yaml:"invalid"`
	Undecoded int `json:"undecoded,omitempty" yaml:"undecoded,omitempty"`

	Codes map[x86.Code]int `json:"codes" yaml:"codes"`
}

// Scan decodes each region, using up to
// cfg.Workers goroutines. The statistics are
// returned in the same order as the regions.
func Scan(ctx context.Context, cfg *config.Config, regions []*config.Region, verbose bool) ([]*Stats, error) {
	stats := make([]*Stats, len(regions))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, region := range regions {
		i, region := i, region
		g.Go(func() error {
			data, err := region.Read()
			if err != nil {
				return err
			}

			stats[i], err = scanRegion(ctx, cfg, region, data, verbose)

			return err
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func scanRegion(ctx context.Context, cfg *config.Config, region *config.Region, data []byte, verbose bool) (*Stats, error) {
	s := &Stats{
		Region: region.Name,
		Mode:   region.Mode,
		Bytes:  len(data),
		Codes:  make(map[x86.Code]int),
	}

	d := decoder.New(region.Mode, data, *region.IP)
	for n := 0; d.CanDecode(); n++ {
		if n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		pos := d.Position()
		ip := d.IP()
		inst, err := d.Decode()
		if err == nil {
			s.Instructions++
			s.Codes[inst.Code]++
			continue
		}

		s.Invalid++
		if cfg.MaxErrors > 0 && s.Invalid > cfg.MaxErrors {
			return nil, fmt.Errorf("region %q: more than %d decode errors", region.Name, cfg.MaxErrors)
		}

		if cfg.Resync == config.ResyncStop {
			s.Undecoded = len(data) - pos - 1
			if verbose {
				log.Printf("%s: %#x: %v; stopping", region.Name, ip, err)
			}

			break
		}

		if verbose {
			log.Printf("%s: %#x: %v; resuming at %#x", region.Name, ip, err, ip+1)
		}

		d.SetPosition(pos + 1)
	}

	return s, nil
}

// Write prints the statistics in the given
// format.
func Write(w io.Writer, format string, stats []*Stats) error {
	switch format {
	case config.FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "\t")
		return e.Encode(stats)
	case config.FormatYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(stats); err != nil {
			return err
		}

		return e.Close()
	case config.FormatText:
	default:
		return config.ValidateFormat(format)
	}

	for _, s := range stats {
		fmt.Fprintf(w, "%s: %d-bit, %d bytes, %d instructions, %d invalid bytes", s.Region, s.Mode.Int, s.Bytes, s.Instructions, s.Invalid)
		if s.Undecoded > 0 {
			fmt.Fprintf(w, ", %d bytes not decoded", s.Undecoded)
		}

		fmt.Fprintln(w)

		codes := make([]x86.Code, 0, len(s.Codes))
		width := 0
		for code := range s.Codes {
			codes = append(codes, code)
			width = max(width, len(code.String()))
		}

		sort.Slice(codes, func(i, j int) bool {
			a, b := codes[i], codes[j]
			if s.Codes[a] != s.Codes[b] {
				return s.Codes[a] > s.Codes[b]
			}

			return a.String() < b.String()
		})

		for _, code := range codes {
			fmt.Fprintf(w, "\t%-*s  %d\n", width, code, s.Codes[code])
		}
	}

	return nil
}
