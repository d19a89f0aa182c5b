// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package config loads the x86dec configuration
// and scan job files.
//
// Both files are TOML. The configuration file,
// conventionally named x86dec.toml, sets the
// defaults used by every subcommand:
//
//	mode = 64
//	ip = 0x401000
//	format = "text"
//	workers = 4
//	max-errors = 100
//	resync = "skip"
//
// A job file lists the regions to be decoded by
// the scan subcommand:
//
//	[[region]]
//	name = "text"
//	file = "kernel.bin"
//	offset = 0x1000
//	length = 0x2000
//	mode = 64
//	ip = 0xffffffff80001000
//
// File paths in a job file are relative to the
// directory containing it.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"firefly-os.dev/x86dec/x86"
)

// DefaultName is the name of the configuration
// file looked for in the working directory.
const DefaultName = "x86dec.toml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Resync determines what happens when an
// instruction fails to decode.
type Resync string

const (
	// ResyncSkip skips one byte and continues
	// decoding.
	ResyncSkip Resync = "skip"

	// ResyncStop stops decoding the region.
	ResyncStop Resync = "stop"
)

// Config contains the defaults for each
// subcommand.
type Config struct {
	Mode      x86.Mode `toml:"-"`
	ModeBits  int      `toml:"mode"`
	IP        uint64   `toml:"ip"`
	Format    string   `toml:"format"`
	Workers   int      `toml:"workers"`
	MaxErrors int      `toml:"max-errors"` // Zero means no limit.
	Resync    Resync   `toml:"resync"`
}

// Default returns the configuration used when
// no configuration file exists.
func Default() *Config {
	return &Config{
		Mode:     x86.Mode64,
		ModeBits: 64,
		Format:   FormatText,
		Workers:  runtime.GOMAXPROCS(0),
		Resync:   ResyncSkip,
	}
}

// Load reads the configuration file at path.
// If path is empty, Load looks for DefaultName
// in the working directory, returning the
// default configuration if it does not exist.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg, err := Load(DefaultName)
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return cfg, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse reads a configuration from r. Missing
// fields take their default values.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}

	if err := undecoded(md); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration and sets
// Mode from ModeBits.
func (c *Config) Validate() error {
	mode, err := parseMode(c.ModeBits)
	if err != nil {
		return err
	}

	c.Mode = mode

	if err := ValidateFormat(c.Format); err != nil {
		return err
	}

	if c.Workers < 1 {
		return fmt.Errorf("invalid worker count %d: must be at least 1", c.Workers)
	}

	if c.MaxErrors < 0 {
		return fmt.Errorf("invalid error limit %d", c.MaxErrors)
	}

	switch c.Resync {
	case ResyncSkip, ResyncStop:
	default:
		return fmt.Errorf("invalid resync policy %q: must be %q or %q", c.Resync, ResyncSkip, ResyncStop)
	}

	return nil
}

// Override replaces configuration values with
// those of any of the flags "mode", "ip",
// "format", "workers", "max-errors", and
// "resync" that were set on the command line.
func (c *Config) Override(flags *flag.FlagSet) error {
	var err error
	flags.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}

		value := f.Value.String()
		switch f.Name {
		case "mode":
			var mode x86.Mode
			mode, err = x86.ParseMode(value)
			c.ModeBits = int(mode.Int)
		case "ip":
			c.IP, err = strconv.ParseUint(value, 0, 64)
		case "format":
			c.Format = value
		case "workers":
			c.Workers, err = strconv.Atoi(value)
		case "max-errors":
			c.MaxErrors, err = strconv.Atoi(value)
		case "resync":
			c.Resync = Resync(value)
		}

		if err != nil {
			err = fmt.Errorf("invalid -%s: %w", f.Name, err)
		}
	})

	if err != nil {
		return err
	}

	return c.Validate()
}

// ValidateFormat checks that format is one of
// the supported output formats.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}

	return fmt.Errorf("invalid format %q: must be one of %s", format, strings.Join(Formats, ", "))
}

func parseMode(bits int) (x86.Mode, error) {
	for _, mode := range x86.Modes {
		if int(mode.Int) == bits {
			return mode, nil
		}
	}

	return x86.Mode{}, fmt.Errorf("invalid mode %d: must be 16, 32, or 64", bits)
}

func undecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}

	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = key.String()
	}

	sort.Strings(names)

	return fmt.Errorf("unknown fields: %s", strings.Join(names, ", "))
}

// Region is a range of a file to be decoded.
type Region struct {
	Name     string   `toml:"name"`
	File     string   `toml:"file"`
	Offset   int64    `toml:"offset"`
	Length   int64    `toml:"length"` // Zero means up to the end of the file.
	Mode     x86.Mode `toml:"-"`
	ModeBits int      `toml:"mode"` // Zero means the configured mode.
	IP       *uint64  `toml:"ip"`   // Nil means the configured IP plus Offset.
}

// Jobs is the contents of a scan job file.
type Jobs struct {
	Regions []*Region `toml:"region"`
}

// LoadJobs reads the job file at path, filling
// in unset fields of each region from cfg.
func LoadJobs(path string, cfg *Config) (*Jobs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	jobs, err := ParseJobs(f, filepath.Dir(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return jobs, nil
}

// ParseJobs reads a job file from r. Relative
// file paths are resolved against dir.
func ParseJobs(r io.Reader, dir string, cfg *Config) (*Jobs, error) {
	var jobs Jobs
	md, err := toml.NewDecoder(r).Decode(&jobs)
	if err != nil {
		return nil, err
	}

	if err := undecoded(md); err != nil {
		return nil, err
	}

	if len(jobs.Regions) == 0 {
		return nil, errors.New("no regions")
	}

	names := make(map[string]int)
	for i, region := range jobs.Regions {
		if region.File == "" {
			return nil, fmt.Errorf("region %d: no file", i+1)
		}

		if !filepath.IsAbs(region.File) {
			region.File = filepath.Join(dir, region.File)
		}

		if region.Name == "" {
			region.Name = fmt.Sprintf("%s@%#x", filepath.Base(region.File), region.Offset)
		}

		if prev, ok := names[region.Name]; ok {
			return nil, fmt.Errorf("region %d: name %q already used by region %d", i+1, region.Name, prev)
		}

		names[region.Name] = i + 1

		if region.Offset < 0 || region.Length < 0 {
			return nil, fmt.Errorf("region %q: invalid range %d+%d", region.Name, region.Offset, region.Length)
		}

		if region.ModeBits == 0 {
			region.Mode = cfg.Mode
			region.ModeBits = int(cfg.Mode.Int)
		} else {
			region.Mode, err = parseMode(region.ModeBits)
			if err != nil {
				return nil, fmt.Errorf("region %q: %w", region.Name, err)
			}
		}

		if region.IP == nil {
			ip := cfg.IP + uint64(region.Offset)
			region.IP = &ip
		}
	}

	return &jobs, nil
}

// Read returns the bytes of the region.
func (r *Region) Read() ([]byte, error) {
	f, err := os.Open(r.File)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	length := r.Length
	if length == 0 {
		length = info.Size() - r.Offset
	}

	if r.Offset+length > info.Size() || length <= 0 {
		return nil, fmt.Errorf("region %q: range %#x+%#x exceeds %s (%d bytes)", r.Name, r.Offset, length, r.File, info.Size())
	}

	data := make([]byte, length)
	_, err = f.ReadAt(data, r.Offset)
	if err != nil {
		return nil, fmt.Errorf("region %q: failed to read %s: %w", r.Name, r.File, err)
	}

	return data, nil
}
