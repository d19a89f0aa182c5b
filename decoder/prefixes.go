// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"fmt"

	"firefly-os.dev/x86dec/x86"
)

// readPrefixes consumes the legacy and REX
// prefixes, returning the first byte that
// is neither.
func (d *Decoder) readPrefixes() (byte, error) {
	p := &d.p
	for {
		b, err := d.cur.readByte()
		if err != nil {
			return 0, err
		}

		if !x86.IsLegacyPrefix(b) {
			if d.mode == x86.Mode64 && x86.IsREX(b) {
				rex := x86.REX(b)
				p.HasREX = true
				p.REX = rex
				p.W, p.R, p.X, p.B = rex.W(), rex.R(), rex.X(), rex.B()
				continue
			}

			return b, nil
		}

		prefix := x86.Prefix(b)
		switch prefix {
		case x86.PrefixOperandSize:
			p.OperandSizeOverride = true
			if p.Mandatory == x86.MandatoryNone {
				p.Mandatory = x86.Mandatory66
			}
		case x86.PrefixAddressSize:
			p.AddressSizeOverride = true
		case x86.PrefixES, x86.PrefixCS, x86.PrefixSS, x86.PrefixDS:
			// In 64-bit mode, these are ignored
			// once FS or GS has been selected.
			if d.mode != x86.Mode64 || (p.Segment != x86.FS && p.Segment != x86.GS) {
				p.Segment = prefix.Segment()
			}
		case x86.PrefixFS, x86.PrefixGS:
			p.Segment = prefix.Segment()
		case x86.PrefixLock:
			p.Lock = true
		case x86.PrefixRepeatNot:
			p.Repne = true
			p.Repe = false
			p.Mandatory = x86.MandatoryF2
		case x86.PrefixRepeat:
			p.Repe = true
			p.Repne = false
			p.Mandatory = x86.MandatoryF3
		}

		// A REX prefix only counts if it
		// immediately precedes the opcode.
		p.HasREX = false
		p.REX = 0
		p.W, p.R, p.X, p.B = false, false, false, false
	}
}

// isExtended reports whether the byte
// that follows an ambiguous prefix byte
// (C4, C5, or 62) outside 64-bit mode
// selects a VEX or EVEX prefix rather than
// LES, LDS, or BOUND. Those take a memory
// operand, so a register ModR/M byte marks
// the extended prefix.
func (d *Decoder) isExtended() bool {
	if d.mode == x86.Mode64 {
		return true
	}

	next, ok := d.cur.peek()

	return ok && next>>6 == 0b11
}

// isXOP reports whether an 8F byte starts
// an XOP prefix. POP Ev uses ModR/M.reg 0,
// so XOP uses map numbers of 8 and above.
func (d *Decoder) isXOP() bool {
	next, ok := d.cur.peek()

	return ok && next&0x1f >= 8
}

// checkExtended rejects the legacy prefixes
// that may not precede a VEX, XOP, or EVEX
// prefix.
func (d *Decoder) checkExtended(name string) error {
	if d.p.HasREX {
		return fmt.Errorf("%w: REX before %s", ErrInvalidPrefixCombination, name)
	}

	if d.p.Mandatory != x86.MandatoryNone {
		return fmt.Errorf("%w: %s prefix before %s", ErrInvalidPrefixCombination, d.p.Mandatory, name)
	}

	return nil
}

// readVEX decodes the remainder of a 2-byte
// (C5) or 3-byte (C4) VEX prefix.
func (d *Decoder) readVEX(first byte) error {
	if err := d.checkExtended("VEX"); err != nil {
		return err
	}

	var v x86.VEX
	b, err := d.cur.readByte()
	if err != nil {
		return err
	}

	if first == 0xc5 {
		v = x86.VEXFrom2Byte(b)
	} else {
		v[0] = b
		v[1], err = d.cur.readByte()
		if err != nil {
			return err
		}
	}

	p := &d.p
	p.Encoding = x86.EncodingVEX
	switch v.M_MMMM() {
	case 1:
		p.Map = x86.Map0F
	case 2:
		p.Map = x86.Map0F38
	case 3:
		p.Map = x86.Map0F3A
	default:
		return fmt.Errorf("%w: VEX opcode map %d", ErrInvalidPrefixCombination, v.M_MMMM())
	}

	d.setVEXFields(v)

	return nil
}

// readXOP decodes the remainder of an XOP
// prefix, which shares the layout of the
// 3-byte VEX prefix.
func (d *Decoder) readXOP() error {
	if err := d.checkExtended("XOP"); err != nil {
		return err
	}

	var v x86.VEX
	var err error
	if v[0], err = d.cur.readByte(); err != nil {
		return err
	}

	if v[1], err = d.cur.readByte(); err != nil {
		return err
	}

	p := &d.p
	p.Encoding = x86.EncodingXOP
	switch v.M_MMMM() {
	case 8:
		p.Map = x86.MapXOP8
	case 9:
		p.Map = x86.MapXOP9
	case 10:
		p.Map = x86.MapXOPA
	default:
		return fmt.Errorf("%w: XOP opcode map %d", ErrInvalidPrefixCombination, v.M_MMMM())
	}

	d.setVEXFields(v)

	return nil
}

func (d *Decoder) setVEXFields(v x86.VEX) {
	p := &d.p
	if d.mode == x86.Mode64 {
		p.R = !v.R()
		p.X = !v.X()
		p.B = !v.B()
	}

	p.W = v.W()
	p.VVVV = ^v.VVVV() & 0b1111
	if d.mode != x86.Mode64 {
		p.VVVV &= 0b111
	}
	p.L = b2u(v.L())
	p.Mandatory = x86.MandatoryPrefix(v.PP())
}

// readEVEX decodes the remainder of an
// EVEX prefix.
func (d *Decoder) readEVEX() error {
	if err := d.checkExtended("EVEX"); err != nil {
		return err
	}

	var e x86.EVEX
	for i := range e {
		b, err := d.cur.readByte()
		if err != nil {
			return err
		}

		e[i] = b
	}

	if e.Reserved() != 0 {
		return fmt.Errorf("%w: EVEX reserved bits %#x", ErrInvalidPrefixCombination, e.Reserved())
	}

	if !e.On() {
		return fmt.Errorf("%w: EVEX fixed bit is clear", ErrInvalidPrefixCombination)
	}

	p := &d.p
	p.Encoding = x86.EncodingEVEX
	switch e.MM() {
	case 1:
		p.Map = x86.Map0F
	case 2:
		p.Map = x86.Map0F38
	case 3:
		p.Map = x86.Map0F3A
	default:
		return fmt.Errorf("%w: EVEX opcode map %d", ErrInvalidPrefixCombination, e.MM())
	}

	p.VVVV = ^e.VVVV() & 0b1111
	if d.mode == x86.Mode64 {
		p.R = !e.R()
		p.X = !e.X()
		p.B = !e.B()
		p.RPrime = !e.Rp()
		p.XRegister = !e.X()
		p.VPrime = !e.Vp()
		if p.VPrime {
			p.VVVV += 16
		}
	} else {
		p.VVVV &= 0b111
	}

	p.W = e.W()
	p.Mandatory = x86.MandatoryPrefix(e.PP())
	p.OpMask = e.AAA()
	p.Zeroing = e.Z()
	p.Broadcast = e.Br()
	p.LL = e.LL()
	p.L = e.LL()

	if p.Zeroing && p.OpMask == 0 {
		return fmt.Errorf("%w: EVEX.z without an opmask", ErrInvalidPrefixCombination)
	}

	return nil
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}

	return 0
}
