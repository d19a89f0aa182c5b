// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package x86 contains the vocabulary shared by the
// x86 decoder and its opcode tables: CPU modes,
// registers, instruction codes, memory sizes, and
// helpers for the packed prefix, ModR/M, and SIB
// bytes.
package x86

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Mode represents an x86
// CPU mode, as a number
// of bits.
type Mode struct {
	Int    uint8
	String string
}

var (
	Mode16 = Mode{16, "16"}
	Mode32 = Mode{32, "32"}
	Mode64 = Mode{64, "64"}
	Modes  = []Mode{Mode16, Mode32, Mode64}
)

// ParseMode returns the mode with the
// given number of bits, which may be
// written as "16", "32", or "64".
func ParseMode(s string) (Mode, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Mode{}, fmt.Errorf("invalid mode %q", s)
	}

	for _, mode := range Modes {
		if int(mode.Int) == n {
			return mode, nil
		}
	}

	return Mode{}, fmt.Errorf("invalid mode %q: must be 16, 32, or 64", s)
}

// MarshalText returns the mode as its
// number of bits.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String), nil
}

// UnmarshalText parses a mode from its
// number of bits.
func (m *Mode) UnmarshalText(text []byte) error {
	got, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*m = got

	return nil
}

// DefaultOperandSize returns the operand size
// in bits used when no prefix overrides it.
func (m Mode) DefaultOperandSize() uint8 {
	if m.Int == 16 {
		return 16
	}

	return 32
}

// DefaultAddressSize returns the address size
// in bits used when no prefix overrides it.
func (m Mode) DefaultAddressSize() uint8 {
	return m.Int
}

// MaxInstructionLength is the maximum number
// of bytes in a single x86 instruction.
const MaxInstructionLength = 15

// MachineCode provides helper functionality
// for assembling machine code sequences from
// their component fields. It is mostly used
// to construct decoder inputs with specific
// bit patterns.
type MachineCode struct {
	Prefixes        [14]Prefix // Any legacy prefix bytes. Unused prefixes are zero.
	REX             REX        // Any REX prefix.
	VEX             VEX        // Any VEX prefix.
	XOP             bool       // Whether VEX is emitted as an XOP prefix.
	EVEX            EVEX       // Any EVEX prefix.
	Opcode          [3]byte    // The opcode bytes.
	OpcodeLen       int        // The number of bytes of opcode.
	ModRM           ModRM      // Any ModR/M byte.
	UseModRM        bool       // Encode the ModR/M byte, even if zero.
	SIB             SIB        // Any Scale/Index/Base byte.
	UseSIB          bool       // Encode the SIB byte, even if zero.
	Displacement    [4]byte    // Any memory address displacement.
	DisplacementLen int        // The number of bytes of address displacement.
	Immediate       [8]byte    // Any immediate integer literals.
	ImmediateLen    int        // The number of immediate bytes to use.
}

// AddPrefix appends a legacy prefix byte.
func (c *MachineCode) AddPrefix(prefix Prefix) {
	for i, p := range c.Prefixes {
		if p == 0 {
			c.Prefixes[i] = prefix
			return
		}
	}
}

// SetOpcode sets the opcode bytes.
func (c *MachineCode) SetOpcode(opcode ...byte) {
	c.OpcodeLen = copy(c.Opcode[:], opcode)
}

// SetModRM sets the ModR/M byte from its
// fields.
func (c *MachineCode) SetModRM(mod, reg, rm byte) {
	c.ModRM.SetMod(mod)
	c.ModRM.SetReg(reg)
	c.ModRM.SetRM(rm)
	c.UseModRM = true
}

// SetDisplacement8 sets a single-byte
// displacement.
func (c *MachineCode) SetDisplacement8(disp int8) {
	c.Displacement[0] = byte(disp)
	c.DisplacementLen = 1
}

// SetImmediate sets the immediate bytes.
func (c *MachineCode) SetImmediate(imm ...byte) {
	c.ImmediateLen = copy(c.Immediate[:], imm)
}

// Bytes returns the encoded machine code.
func (c *MachineCode) Bytes() []byte {
	var b bytes.Buffer
	c.EncodeTo(&b)
	return b.Bytes()
}

// EncodeTo appends the machine code to
// b.
func (c *MachineCode) EncodeTo(b *bytes.Buffer) {
	for _, p := range c.Prefixes {
		if p == 0 {
			break
		}

		b.WriteByte(byte(p))
	}
	if c.REX != 0 {
		b.WriteByte(byte(c.REX))
	}
	switch {
	case c.VEX.On() && c.XOP:
		_, p0, p1 := c.VEX.Encode3Byte()
		b.Write([]byte{0x8f, p0, p1})
	case c.VEX.On() && c.VEX.Can2Byte():
		b.Write(c.VEX.Encode2Byte())
	case c.VEX.On():
		prefix, p0, p1 := c.VEX.Encode3Byte()
		b.Write([]byte{prefix, p0, p1})
	}
	if c.EVEX.On() {
		prefix, p0, p1, p2 := c.EVEX.Encode()
		b.Write([]byte{prefix, p0, p1, p2})
	}
	b.Write(c.Opcode[:c.OpcodeLen])
	if c.UseModRM {
		b.WriteByte(byte(c.ModRM))
	}
	if c.UseSIB {
		b.WriteByte(byte(c.SIB))
	}
	b.Write(c.Displacement[:c.DisplacementLen])
	b.Write(c.Immediate[:c.ImmediateLen])
}

// TupleType contains an EVEX instruction
// tuple kind, as defined in Intel x86,
// Volume 2A, Section 2.7.5. It determines
// the scaling factor N applied to an 8-bit
// displacement.
type TupleType uint8

const (
	TupleNone TupleType = iota
	TupleFull
	TupleHalf
	TupleFullMem
	Tuple1Scalar
	Tuple1Fixed
	Tuple2
	Tuple4
	Tuple8
	TupleHalfMem
	TupleQuarterMem
	TupleEighthMem
	TupleMem128
	TupleMOVDDUP
)

var TupleTypes = map[string]TupleType{
	"":              TupleNone,
	"None":          TupleNone,
	"Full":          TupleFull,
	"Half":          TupleHalf,
	"Full Mem":      TupleFullMem,
	"Tuple1 Scalar": Tuple1Scalar,
	"Tuple1 Fixed":  Tuple1Fixed,
	"Tuple2":        Tuple2,
	"Tuple4":        Tuple4,
	"Tuple8":        Tuple8,
	"Half Mem":      TupleHalfMem,
	"Quarter Mem":   TupleQuarterMem,
	"Eighth Mem":    TupleEighthMem,
	"Mem128":        TupleMem128,
	"MOVDDUP":       TupleMOVDDUP,
}

func (t TupleType) String() string {
	switch t {
	case TupleNone:
		return "None"
	case TupleFull:
		return "Full"
	case TupleHalf:
		return "Half"
	case TupleFullMem:
		return "Full Mem"
	case Tuple1Scalar:
		return "Tuple1 Scalar"
	case Tuple1Fixed:
		return "Tuple1 Fixed"
	case Tuple2:
		return "Tuple2"
	case Tuple4:
		return "Tuple4"
	case Tuple8:
		return "Tuple8"
	case TupleHalfMem:
		return "Half Mem"
	case TupleQuarterMem:
		return "Quarter Mem"
	case TupleEighthMem:
		return "Eighth Mem"
	case TupleMem128:
		return "Mem128"
	case TupleMOVDDUP:
		return "MOVDDUP"
	default:
		return fmt.Sprintf("TupleType(%d)", t)
	}
}

// Disp8N returns the value N by which an
// EVEX-encoded 8-bit displacement is
// multiplied, as described in Intel x86
// manuals, Volume 2A, Section 2.7.5.
//
// vectorBits is the vector length in bits
// (128, 256, or 512), w is EVEX.W, and
// broadcast is EVEX.b on a memory operand.
// elementSize overrides the W-derived
// element size for the scalar tuples when
// it is non-zero.
func (t TupleType) Disp8N(vectorBits, elementSize int, w, broadcast bool) int64 {
	inputSize := int64(4)
	if w {
		inputSize = 8
	}

	vectorSize := int64(vectorBits / 8)
	switch t {
	case TupleFull:
		if broadcast {
			return inputSize
		}

		return vectorSize
	case TupleHalf:
		if broadcast {
			return 4
		}

		return vectorSize / 2
	case TupleFullMem:
		return vectorSize
	case Tuple1Scalar, Tuple1Fixed:
		if elementSize != 0 {
			return int64(elementSize)
		}

		return inputSize
	case Tuple2:
		return inputSize * 2
	case Tuple4:
		return inputSize * 4
	case Tuple8:
		return 32
	case TupleHalfMem:
		return vectorSize / 2
	case TupleQuarterMem:
		return vectorSize / 4
	case TupleEighthMem:
		return vectorSize / 8
	case TupleMem128:
		return 16
	case TupleMOVDDUP:
		if vectorBits == 128 {
			return 8
		}

		return vectorSize
	default:
		return 1
	}
}

// Prefix represents a legacy x86 prefix.
type Prefix byte

const (
	PrefixLock        Prefix = 0xf0
	PrefixRepeatNot   Prefix = 0xf2
	PrefixRepeat      Prefix = 0xf3
	PrefixCS          Prefix = 0x2e
	PrefixSS          Prefix = 0x36
	PrefixDS          Prefix = 0x3e
	PrefixES          Prefix = 0x26
	PrefixFS          Prefix = 0x64
	PrefixGS          Prefix = 0x65
	PrefixOperandSize Prefix = 0x66
	PrefixAddressSize Prefix = 0x67
)

// IsLegacyPrefix returns whether b is
// one of the eleven legacy prefix bytes.
func IsLegacyPrefix(b byte) bool {
	switch Prefix(b) {
	case PrefixLock, PrefixRepeatNot, PrefixRepeat,
		PrefixCS, PrefixSS, PrefixDS, PrefixES, PrefixFS, PrefixGS,
		PrefixOperandSize, PrefixAddressSize:
		return true
	}

	return false
}

// Segment returns the segment register
// selected by a segment override prefix,
// or None.
func (p Prefix) Segment() Register {
	switch p {
	case PrefixES:
		return ES
	case PrefixCS:
		return CS
	case PrefixSS:
		return SS
	case PrefixDS:
		return DS
	case PrefixFS:
		return FS
	case PrefixGS:
		return GS
	default:
		return None
	}
}

func (p Prefix) String() string {
	switch p {
	case PrefixLock:
		return "lock"
	case PrefixRepeatNot:
		return "repnz/repne"
	case PrefixRepeat:
		return "rep/repe/repz"
	case PrefixCS:
		return "cs"
	case PrefixSS:
		return "ss"
	case PrefixDS:
		return "ds"
	case PrefixES:
		return "es"
	case PrefixFS:
		return "fs"
	case PrefixGS:
		return "gs"
	case PrefixOperandSize:
		return "data16/data32"
	case PrefixAddressSize:
		return "addr16/addr32"
	default:
		return fmt.Sprintf("Prefix(%#02x)", byte(p))
	}
}

// b2i is a helper function to convert
// a boolean to an integer. The result
// is one if `b` is true and 0 otherwise.
func b2i(b bool) byte {
	if b {
		return 1
	}

	return 0
}

// VEX provides helper functionality
// for reading and writing a VEX
// prefix.
//
// We always store VEX prefixes in
// the 3-byte form. The 2-byte form
// is expanded on decode. XOP prefixes
// share the 3-byte layout, with the
// 0x8f lead byte and map selectors
// 8 to 10.
type VEX [2]byte

// Intel x86 manuals, Volume 2A,
// Section 2.3.5, Table 2-9.
//
// 3-byte form:
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 1  1  0  0   0  1  0  0 | // 0xc4 prefix.
// 	| R  X  B  m   m  m  m  m | // P0.
// 	| W  v  v  v   v  L  p  p | // P1.
//
// 2-byte form:
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 1  1  0  0   0  1  0  1 | // 0xc5 prefix.
// 	| R  v  v  v   v  L  p  p | // P0.

// VEXFrom2Byte expands the payload byte
// of a 2-byte VEX prefix into the 3-byte
// form, with X and B clear, W zero, and
// the 0F opcode map.
func VEXFrom2Byte(p0 byte) VEX {
	var v VEX
	v[0] = p0&0b1000_0000 | 0b0110_0001
	v[1] = p0 & 0b0111_1111
	return v
}

// P0.
func (v VEX) R() bool      { return ((v[0] >> 7) & 1) == 1 }
func (v VEX) X() bool      { return ((v[0] >> 6) & 1) == 1 }
func (v VEX) B() bool      { return ((v[0] >> 5) & 1) == 1 }
func (v VEX) M_MMMM() byte { return v[0] & 0b1_1111 }

// P1.
func (v VEX) W() bool    { return ((v[1] >> 7) & 1) == 1 }
func (v VEX) VVVV() byte { return (v[1] >> 3) & 0b1111 }
func (v VEX) L() bool    { return ((v[1] >> 2) & 1) == 1 }
func (v VEX) PP() byte   { return v[1] & 0b11 }

// P0.
func (v *VEX) SetR(b bool)      { v[0] = v[0]&0b0111_1111 | (b2i(b) << 7) }
func (v *VEX) SetX(b bool)      { v[0] = v[0]&0b1011_1111 | (b2i(b) << 6) }
func (v *VEX) SetB(b bool)      { v[0] = v[0]&0b1101_1111 | (b2i(b) << 5) }
func (v *VEX) SetM_MMMM(b byte) { v[0] = v[0]&0b1110_0000 | (b & 0b1_1111) }

// P1.
func (v *VEX) SetW(b bool)    { v[1] = v[1]&0b0111_1111 | (b2i(b) << 7) }
func (v *VEX) SetVVVV(b byte) { v[1] = v[1]&0b1000_0111 | ((b & 0b1111) << 3) }
func (v *VEX) SetL(b bool)    { v[1] = v[1]&0b1111_1011 | (b2i(b) << 2) }
func (v *VEX) SetPP(b byte)   { v[1] = v[1]&0b1111_1100 | (b & 0b11) }

func (v VEX) On() bool {
	return v.M_MMMM() != 0 // This is a reserved value so it shouldn't occur legitimately.
}

// Default resets the VEX prefix to its
// default state, which includes vvvv
// being set to 0b1111.
//
// If no m_mmmm field is set, the prefix
// will not count as active, according to
// VEX.On.
func (v *VEX) Default() {
	// These fields are inverted, so they
	// default to set.
	v.SetR(true)
	v.SetX(true)
	v.SetB(true)
	v.SetVVVV(0b1111)
}

// Can2Byte returns whether the prefix
// can be expressed in the 2-byte form.
func (v VEX) Can2Byte() bool {
	return v.X() && v.B() && !v.W() && v.M_MMMM() == 0b0_0001
}

func (v VEX) Encode2Byte() []byte {
	// We're working on a copy, so we
	// can reuse P1's W bit for R.
	v.SetW(v.R())
	return []byte{0xc5, v[1]}
}

func (v VEX) Encode3Byte() (b1, b2, b3 byte) {
	return 0xc4, v[0], v[1]
}

func (v VEX) String() string {
	return fmt.Sprintf("{R: %b, X: %b, B: %b, m-mmmm: %05b, W: %b, vvvv: %04b, L: %b, pp: %02b}",
		b2i(v.R()), b2i(v.X()), b2i(v.B()), v.M_MMMM(),
		b2i(v.W()), v.VVVV(), b2i(v.L()), v.PP())
}

// EVEX provides helper functionality
// for reading and writing an EVEX
// prefix.
type EVEX [3]byte

// Intel x86 manuals, Volume 2A,
// Section 2.7.1, Table 2-30.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  1  0   0  0  1  0 | // 0x62 prefix.
// 	| R  X  B  R'  0  0  m  m | // P0.
// 	| W  v  v  v   v  1  p  p | // P1.
// 	| z  L' L  b   V' a  a  a | // P2.

// P0.
func (p EVEX) R() bool  { return ((p[0] >> 7) & 1) == 1 }
func (p EVEX) X() bool  { return ((p[0] >> 6) & 1) == 1 }
func (p EVEX) B() bool  { return ((p[0] >> 5) & 1) == 1 }
func (p EVEX) Rp() bool { return ((p[0] >> 4) & 1) == 1 }
func (p EVEX) MM() byte { return p[0] & 0b11 }

// Reserved returns the P0 bits that must
// be zero.
func (p EVEX) Reserved() byte { return p[0] & 0b1100 }

// P1.
func (p EVEX) W() bool    { return ((p[1] >> 7) & 1) == 1 }
func (p EVEX) VVVV() byte { return (p[1] >> 3) & 0b1111 }
func (p EVEX) PP() byte   { return p[1] & 0b11 }

// P2.
func (p EVEX) Z() bool   { return ((p[2] >> 7) & 1) == 1 }
func (p EVEX) Lp() bool  { return ((p[2] >> 6) & 1) == 1 }
func (p EVEX) L() bool   { return ((p[2] >> 5) & 1) == 1 }
func (p EVEX) Br() bool  { return ((p[2] >> 4) & 1) == 1 }
func (p EVEX) Vp() bool  { return ((p[2] >> 3) & 1) == 1 }
func (p EVEX) AAA() byte { return p[2] & 0b111 }

// LL returns the two-bit vector length
// (or rounding control) field.
func (p EVEX) LL() byte { return b2i(p.Lp())<<1 | b2i(p.L()) }

// P0.
func (p *EVEX) SetR(b bool)  { p[0] = p[0]&0b0111_1111 | (b2i(b) << 7) }
func (p *EVEX) SetX(b bool)  { p[0] = p[0]&0b1011_1111 | (b2i(b) << 6) }
func (p *EVEX) SetB(b bool)  { p[0] = p[0]&0b1101_1111 | (b2i(b) << 5) }
func (p *EVEX) SetRp(b bool) { p[0] = p[0]&0b1110_1111 | (b2i(b) << 4) }
func (p *EVEX) SetMM(b byte) { p[0] = p[0]&0b1111_1100 | (b & 0b11) }

// P1.
func (p *EVEX) SetW(b bool)    { p[1] = p[1]&0b0111_1111 | (b2i(b) << 7) }
func (p *EVEX) SetVVVV(b byte) { p[1] = p[1]&0b1000_0111 | ((b & 0b1111) << 3) }
func (p *EVEX) SetPP(b byte)   { p[1] = p[1]&0b1111_1100 | (b & 0b11) }

// P2.
func (p *EVEX) SetZ(b bool)   { p[2] = p[2]&0b0111_1111 | (b2i(b) << 7) }
func (p *EVEX) SetLp(b bool)  { p[2] = p[2]&0b1011_1111 | (b2i(b) << 6) }
func (p *EVEX) SetL(b bool)   { p[2] = p[2]&0b1101_1111 | (b2i(b) << 5) }
func (p *EVEX) SetBr(b bool)  { p[2] = p[2]&0b1110_1111 | (b2i(b) << 4) }
func (p *EVEX) SetVp(b bool)  { p[2] = p[2]&0b1111_0111 | (b2i(b) << 3) }
func (p *EVEX) SetAAA(b byte) { p[2] = p[2]&0b1111_1000 | (b & 0b111) }

func (p EVEX) On() bool      { return ((p[1] >> 2) & 1) == 1 }
func (p *EVEX) SetOn(b bool) { p[1] = p[1]&0b1111_1011 | (b2i(b) << 2) }

// Default resets the EVEX prefix to its
// default state, which includes vvvv
// being set to 0b1111.
func (p *EVEX) Default() {
	// These fields are inverted, so they
	// default to set.
	p.SetR(true)
	p.SetX(true)
	p.SetB(true)
	p.SetRp(true)
	p.SetVVVV(0b1111)
	p.SetVp(true)
	p.SetOn(true)
}

func (p EVEX) Encode() (prefix, p0, p1, p2 byte) {
	return 0x62, p[0], p[1], p[2]
}

func (p EVEX) String() string {
	return fmt.Sprintf("{R: %b, X: %b, B: %b, R': %b, mm: %02b // W: %b, vvvv: %04b, pp: %02b // z: %b, L': %b, L: %b, b: %b, V': %b, aaa: %03b}",
		b2i(p.R()), b2i(p.X()), b2i(p.B()), b2i(p.Rp()), p.MM(),
		b2i(p.W()), p.VVVV(), p.PP(),
		b2i(p.Z()), b2i(p.Lp()), b2i(p.L()), b2i(p.Br()), b2i(p.Vp()), p.AAA())
}

// REX provides helper functionality
// for reading and writing a REX
// prefix byte.
type REX byte

// Intel x86 manuals, Volume 2A,
// Section 2.2.1.2, Table 2-4.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  0  0   W  R  X  B |

// IsREX returns whether b is a REX
// prefix byte. This is only meaningful
// in 64-bit mode.
func IsREX(b byte) bool { return b&0xf0 == 0x40 }

func (r REX) On() bool     { return ((r >> 6) & 1) == 1 }
func (r REX) W() bool      { return ((r >> 3) & 1) == 1 }
func (r REX) R() bool      { return ((r >> 2) & 1) == 1 }
func (r REX) X() bool      { return ((r >> 1) & 1) == 1 }
func (r REX) B() bool      { return ((r >> 0) & 1) == 1 }
func (r *REX) SetOn()      { *r |= (1 << 6) }
func (r *REX) SetW(b bool) { *r = (*r & 0b11110111) | REX(b2i(b)<<3) }
func (r *REX) SetR(b bool) { *r = (*r & 0b11111011) | REX(b2i(b)<<2) }
func (r *REX) SetX(b bool) { *r = (*r & 0b11111101) | REX(b2i(b)<<1) }
func (r *REX) SetB(b bool) { *r = (*r & 0b11111110) | REX(b2i(b)<<0) }

func (r REX) String() string {
	const names = "0100WRXB"
	out := []byte("01000000")
	for i := 4; i < 8; i++ {
		if (r>>(7-i))&1 == 1 {
			out[i] = names[i]
		}
	}

	return string(out)
}

// ModRM provides helper functionality
// for reading and writing a ModR/M
// byte.
type ModRM byte

const (
	ModRMmod00 ModRM = 0b00_000_000
	ModRMmod01 ModRM = 0b01_000_000
	ModRMmod10 ModRM = 0b10_000_000
	ModRMmod11 ModRM = 0b11_000_000

	// Section 2.1.5, table 2.2, Mod column.
	ModRMmodDereferenceRegister    = ModRMmod00
	ModRMmodSmallDisplacedRegister = ModRMmod01
	ModRMmodLargeDisplacedRegister = ModRMmod10
	ModRMmodRegister               = ModRMmod11

	// Section 2.1.5, table 2.2, Effective address column.
	ModRMrmSIB                = 0b100
	ModRMrmDisplacementOnly32 = 0b101
	ModRMrmDisplacementOnly16 = 0b110
)

func (m ModRM) Mod() byte      { return byte(m&0b11000000) >> 6 }
func (m ModRM) Reg() byte      { return byte(m&0b00111000) >> 3 }
func (m ModRM) RM() byte       { return byte(m&0b00000111) >> 0 }
func (m *ModRM) SetMod(b byte) { *m = (*m & 0b00111111) | ((ModRM(b) & 0b11) << 6) }
func (m *ModRM) SetReg(b byte) { *m = (*m & 0b11000111) | ((ModRM(b) & 0b111) << 3) }
func (m *ModRM) SetRM(b byte)  { *m = (*m & 0b11111000) | ((ModRM(b) & 0b111) << 0) }

// IsRegister returns whether the r/m field
// names a register, rather than memory.
func (m ModRM) IsRegister() bool { return m.Mod() == 0b11 }

func (m ModRM) String() string {
	return fmt.Sprintf("{Mod: %02b, Reg: %03b, R/M: %03b}", m.Mod(), m.Reg(), m.RM())
}

// SIB provides helper functionality
// for reading and writing a SIB
// byte.
type SIB byte

const (
	// Section 2.1.5, table 2.3, Index column.
	SIBindexNone = 0b100

	// Section 2.1.5, table 2.3, Base row.
	SIBbaseNone = 0b101
)

func (s SIB) Scale() byte      { return byte(s&0b11000000) >> 6 }
func (s SIB) Index() byte      { return byte(s&0b00111000) >> 3 }
func (s SIB) Base() byte       { return byte(s&0b00000111) >> 0 }
func (s *SIB) SetScale(b byte) { *s = (*s & 0b00111111) | ((SIB(b) & 0b11) << 6) }
func (s *SIB) SetIndex(b byte) { *s = (*s & 0b11000111) | ((SIB(b) & 0b111) << 3) }
func (s *SIB) SetBase(b byte)  { *s = (*s & 0b11111000) | ((SIB(b) & 0b111) << 0) }

func (s SIB) String() string {
	return fmt.Sprintf("{Scale: %02b, Index: %03b, Base: %03b}", s.Scale(), s.Index(), s.Base())
}
