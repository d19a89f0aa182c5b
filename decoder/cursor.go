// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"encoding/binary"

	"golang.org/x/crypto/cryptobyte"

	"firefly-os.dev/x86dec/x86"
)

// cursor reads the bytes of a single
// instruction, enforcing the maximum
// instruction length.
type cursor struct {
	s cryptobyte.String
	n int // Bytes consumed so far.
}

func (c *cursor) reset(b []byte) {
	c.s = cryptobyte.String(b)
	c.n = 0
}

// peek returns the next byte without
// consuming it. It reports false if there
// is no next byte or it would exceed the
// maximum instruction length.
func (c *cursor) peek() (byte, bool) {
	if c.n >= x86.MaxInstructionLength || len(c.s) == 0 {
		return 0, false
	}

	return c.s[0], true
}

func (c *cursor) readByte() (byte, error) {
	if c.n >= x86.MaxInstructionLength {
		return 0, ErrInvalidInstructionLength
	}

	var b uint8
	if !c.s.ReadUint8(&b) {
		return 0, ErrTruncatedInstruction
	}

	c.n++

	return b, nil
}

// readUint reads a little-endian unsigned
// integer of 1, 2, 4, or 8 bytes.
func (c *cursor) readUint(size int) (uint64, error) {
	var buf [8]byte
	for i := 0; i < size; i++ {
		b, err := c.readByte()
		if err != nil {
			return 0, err
		}

		buf[i] = b
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}

// readInt reads a little-endian signed
// integer of 1, 2, 4, or 8 bytes and sign
// extends it.
func (c *cursor) readInt(size int) (int64, error) {
	v, err := c.readUint(size)
	if err != nil {
		return 0, err
	}

	shift := 64 - 8*size

	return int64(v<<shift) >> shift, nil
}
