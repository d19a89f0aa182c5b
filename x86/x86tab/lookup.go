// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86tab

import (
	"errors"
	"fmt"
	"strings"

	"firefly-os.dev/x86dec/x86"
)

var (
	// ErrNoForm indicates that no instruction
	// form uses the opcode with the given
	// prefixes.
	ErrNoForm = errors.New("no matching instruction form")

	// ErrReserved indicates that an instruction
	// form uses the opcode, but not with the
	// ModR/M byte's register or memory form.
	ErrReserved = errors.New("reserved ModR/M encoding")
)

// Mismatch identifies the first constraint of
// a form that an encoding does not satisfy.
// Constraints are checked in the order of the
// constants below, so a larger Mismatch means
// the encoding came closer to matching.
type Mismatch uint8

const (
	MismatchNone Mismatch = iota
	MismatchMode
	MismatchPrefix
	MismatchW
	MismatchVectorLength
	MismatchOperandSize
	MismatchAddressSize
	MismatchREX
	MismatchModRM
	MismatchMod
)

func (m Mismatch) String() string {
	switch m {
	case MismatchNone:
		return "match"
	case MismatchMode:
		return "unsupported mode"
	case MismatchPrefix:
		return "mandatory prefix mismatch"
	case MismatchW:
		return "W mismatch"
	case MismatchVectorLength:
		return "vector length mismatch"
	case MismatchOperandSize:
		return "operand size mismatch"
	case MismatchAddressSize:
		return "address size mismatch"
	case MismatchREX:
		return "REX mismatch"
	case MismatchModRM:
		return "ModR/M mismatch"
	case MismatchMod:
		return "register/memory form mismatch"
	default:
		return fmt.Sprintf("Mismatch(%d)", uint8(m))
	}
}

// LookupError describes a failed lookup.
type LookupError struct {
	Encoding x86.EncodingKind
	Map      x86.OpcodeMap
	Opcode   byte
	Reason   Mismatch // The closest mismatch, or MismatchNone if the opcode is unused.
}

func (e *LookupError) Error() string {
	if e.Reason == MismatchNone {
		return fmt.Sprintf("no %s instruction uses opcode %s %02x", e.Encoding, e.Map, e.Opcode)
	}

	return fmt.Sprintf("no %s form of opcode %s %02x matches: %s", e.Encoding, e.Map, e.Opcode, e.Reason)
}

func (e *LookupError) Unwrap() error {
	if e.Reason == MismatchMod {
		return ErrReserved
	}

	return ErrNoForm
}

var (
	forms    []*Form
	byCode   [x86.NumCodes]*Form
	index    [x86.NumEncodings][x86.NumOpcodeMaps][256][]*Form
	hasModRM [x86.NumEncodings][x86.NumOpcodeMaps][256]bool
)

func init() {
	var err error
	forms, err = ParseForms(strings.NewReader(formsTxt))
	if err != nil {
		panic("x86tab: invalid form table: " + err.Error())
	}

	for _, form := range forms {
		byCode[form.Code] = form
		slot := &index[form.Encoding][form.Map][form.Opcode]
		if len(*slot) > 0 && hasModRM[form.Encoding][form.Map][form.Opcode] != form.ModRM {
			panic(fmt.Sprintf("x86tab: %s disagrees with %s on the use of ModR/M", form, (*slot)[0]))
		}

		*slot = append(*slot, form)
		hasModRM[form.Encoding][form.Map][form.Opcode] = form.ModRM
	}
}

// Forms returns every instruction form, in
// table order. The result must not be
// modified.
func Forms() []*Form {
	return forms
}

// ByCode returns the form with the given
// code, or nil.
func ByCode(code x86.Code) *Form {
	if int(code) >= len(byCode) {
		return nil
	}

	return byCode[code]
}

// HasModRM returns whether instructions
// with the given encoding, opcode map, and
// opcode have a ModR/M byte.
func HasModRM(encoding x86.EncodingKind, m x86.OpcodeMap, opcode byte) bool {
	return hasModRM[encoding][m][opcode]
}

// Lookup returns the first form that matches
// the prefixes, opcode, and ModR/M byte of an
// instruction being decoded in the given mode.
// The encoding and opcode map are taken from
// p. If the opcode has no ModR/M byte, modrm
// is ignored.
//
// If no form matches, Lookup returns a
// *LookupError wrapping ErrNoForm or
// ErrReserved.
func Lookup(p *x86.PrefixState, mode x86.Mode, opcode byte, modrm x86.ModRM) (*Form, error) {
	var reason Mismatch
	for _, form := range index[p.Encoding][p.Map][opcode] {
		m := form.Match(p, mode, modrm)
		if m == MismatchNone {
			return form, nil
		}

		reason = max(reason, m)
	}

	return nil, &LookupError{Encoding: p.Encoding, Map: p.Map, Opcode: opcode, Reason: reason}
}

// Match checks whether the form's encoding
// constraints are satisfied, returning the
// first mismatch.
func (f *Form) Match(p *x86.PrefixState, mode x86.Mode, modrm x86.ModRM) Mismatch {
	if !f.Modes.Has(mode) {
		return MismatchMode
	}

	switch {
	case f.Encoding != x86.EncodingLegacy:
		if p.Mandatory != f.Prefix {
			return MismatchPrefix
		}
	case f.NoPrefix:
		if p.Mandatory != x86.MandatoryNone {
			return MismatchPrefix
		}
	case f.Prefix != x86.MandatoryNone:
		if p.Mandatory != f.Prefix {
			return MismatchPrefix
		}
	}

	if !f.W.allows(p.W) && !(f.Has(FlagWIG32) && mode != x86.Mode64) {
		return MismatchW
	}

	if f.VectorBits != 0 {
		l := p.L
		if p.Encoding == x86.EncodingEVEX && p.Broadcast && f.ModRM && modrm.IsRegister() {
			// L'L holds the rounding control.
			l = 2
		}

		if 128<<l != f.VectorBits {
			return MismatchVectorLength
		}
	}

	if f.OperandSize != 0 {
		size := p.OperandSize(mode, f.Has(FlagDefault64), f.Has(FlagForce64))
		switch f.OperandSize {
		case 16:
			if size != 16 {
				return MismatchOperandSize
			}
		case 32:
			// 64-bit forms precede their 32-bit
			// counterparts where both exist.
			if size == 16 {
				return MismatchOperandSize
			}
		case 64:
			if size != 64 {
				return MismatchOperandSize
			}
		}
	}

	if f.AddressSize != 0 && p.AddressSize(mode) != f.AddressSize {
		return MismatchAddressSize
	}

	if !f.REX.allows(p.HasREX) || !f.REXB.allows(p.B) {
		return MismatchREX
	}

	if !f.ModRM {
		return MismatchNone
	}

	if f.FixedModRM >= 0 && int(modrm) != f.FixedModRM {
		return MismatchModRM
	}

	if f.Reg >= 0 && int(modrm.Reg()) != f.Reg {
		return MismatchModRM
	}

	if f.Has(FlagModIgnored) {
		return MismatchNone
	}

	if f.Has(FlagRegisterOnly) && !modrm.IsRegister() {
		if f.registerForm {
			return MismatchModRM
		}

		return MismatchMod
	}

	if f.Has(FlagMemoryOnly) && modrm.IsRegister() {
		return MismatchMod
	}

	return MismatchNone
}
