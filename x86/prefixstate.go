// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// PrefixState records everything the prefixes
// of an instruction contribute to its decoding.
//
// The extension bits are stored already inverted
// where the prefix encodes them inverted, so R
// is true when ModR/M.reg selects registers 8-15
// regardless of whether it came from a REX, VEX,
// XOP, or EVEX prefix.
type PrefixState struct {
	Encoding EncodingKind
	Map      OpcodeMap

	// Legacy prefixes.
	Segment             Register // Winning segment override, or None.
	OperandSizeOverride bool     // A 66 prefix was present.
	AddressSizeOverride bool     // A 67 prefix was present.
	Lock                bool
	Repe                bool // F3 was the last repeat prefix.
	Repne               bool // F2 was the last repeat prefix.
	Mandatory           MandatoryPrefix

	// REX, or the equivalent fields of
	// a VEX, XOP, or EVEX prefix.
	HasREX bool
	REX    REX
	W      bool
	R      bool
	X      bool
	B      bool

	// VEX, XOP, and EVEX.
	VVVV uint8 // Register number, already inverted.
	L    uint8 // Vector length: 0, 1, or 2 (EVEX only).

	// EVEX.
	RPrime    bool  // R' extends ModR/M.reg to 32 registers.
	XRegister bool  // X extends a register r/m to 32 registers.
	VPrime    bool  // V' extends vvvv or a VSIB index.
	OpMask    uint8 // aaa.
	Zeroing   bool  // z.
	Broadcast bool  // b.
	LL        uint8 // Raw L'L, used for rounding control.
}

// Reset clears the state for a new
// instruction.
func (p *PrefixState) Reset() {
	*p = PrefixState{}
}

// OperandSize returns the operand size in bits
// for an instruction decoded in the given mode.
//
// If d64 is set, the operand size defaults to
// 64 bits in 64-bit mode. If f64 is set, it is
// always 64 bits in 64-bit mode.
func (p *PrefixState) OperandSize(mode Mode, d64, f64 bool) int {
	size := int(mode.DefaultOperandSize())
	if mode == Mode64 {
		switch {
		case f64 || p.W:
			return 64
		case p.OperandSizeOverride:
			return 16
		case d64:
			return 64
		}

		return size
	}

	if p.OperandSizeOverride {
		// 66 toggles between 16 and 32 bits.
		return 48 - size
	}

	return size
}

// AddressSize returns the address size in bits
// for an instruction decoded in the given mode.
func (p *PrefixState) AddressSize(mode Mode) int {
	size := int(mode.DefaultAddressSize())
	if !p.AddressSizeOverride {
		return size
	}

	if mode == Mode64 {
		return 32
	}

	return 48 - size
}

// VectorBits returns the vector length selected
// by L in bits.
func (p *PrefixState) VectorBits() int {
	return 128 << p.L
}
