// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strconv"
)

//go:generate go run ./gen-code -forms x86tab/forms.txt -out code.go

// NumCodes is the number of distinct codes,
// including INVALID.
const NumCodes = int(numCodes)

// CodesByName maps the name of each code
// to its value.
var CodesByName = make(map[string]Code, numCodes)

func init() {
	for c := INVALID; c < numCodes; c++ {
		CodesByName[codeNames[c]] = c
	}
}

func (c Code) String() string {
	if c >= numCodes {
		return "Code(" + strconv.Itoa(int(c)) + ")"
	}

	return codeNames[c]
}

func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Code) UnmarshalText(text []byte) error {
	got, ok := CodesByName[string(text)]
	if !ok {
		return fmt.Errorf("invalid code %q", text)
	}

	*c = got

	return nil
}

// OpKind describes how an operand's value
// is stored in a decoded instruction.
type OpKind uint8

const (
	OpRegister OpKind = iota
	OpNearBranch16
	OpNearBranch32
	OpNearBranch64
	OpFarBranch16
	OpFarBranch32
	OpImmediate8
	OpImmediate8_2nd
	OpImmediate16
	OpImmediate32
	OpImmediate64
	OpImmediate8to16
	OpImmediate8to32
	OpImmediate8to64
	OpImmediate32to64
	OpMemorySegSI
	OpMemorySegESI
	OpMemorySegRSI
	OpMemorySegDI
	OpMemorySegEDI
	OpMemorySegRDI
	OpMemoryESDI
	OpMemoryESEDI
	OpMemoryESRDI
	OpMemory64
	OpMemory

	numOpKinds
)

var opKindNames = [numOpKinds]string{
	OpRegister:        "Register",
	OpNearBranch16:    "NearBranch16",
	OpNearBranch32:    "NearBranch32",
	OpNearBranch64:    "NearBranch64",
	OpFarBranch16:     "FarBranch16",
	OpFarBranch32:     "FarBranch32",
	OpImmediate8:      "Immediate8",
	OpImmediate8_2nd:  "Immediate8_2nd",
	OpImmediate16:     "Immediate16",
	OpImmediate32:     "Immediate32",
	OpImmediate64:     "Immediate64",
	OpImmediate8to16:  "Immediate8to16",
	OpImmediate8to32:  "Immediate8to32",
	OpImmediate8to64:  "Immediate8to64",
	OpImmediate32to64: "Immediate32to64",
	OpMemorySegSI:     "MemorySegSI",
	OpMemorySegESI:    "MemorySegESI",
	OpMemorySegRSI:    "MemorySegRSI",
	OpMemorySegDI:     "MemorySegDI",
	OpMemorySegEDI:    "MemorySegEDI",
	OpMemorySegRDI:    "MemorySegRDI",
	OpMemoryESDI:      "MemoryESDI",
	OpMemoryESEDI:     "MemoryESEDI",
	OpMemoryESRDI:     "MemoryESRDI",
	OpMemory64:        "Memory64",
	OpMemory:          "Memory",
}

func (k OpKind) String() string {
	if k >= numOpKinds {
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}

	return opKindNames[k]
}

func (k OpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *OpKind) UnmarshalText(text []byte) error {
	for i, name := range opKindNames {
		if name == string(text) {
			*k = OpKind(i)
			return nil
		}
	}

	return fmt.Errorf("invalid operand kind %q", text)
}

// IsImmediate returns whether the operand
// is an immediate value.
func (k OpKind) IsImmediate() bool {
	return OpImmediate8 <= k && k <= OpImmediate32to64
}

// IsBranch returns whether the operand is
// a near or far branch target.
func (k OpKind) IsBranch() bool {
	return OpNearBranch16 <= k && k <= OpFarBranch32
}

// IsMemory returns whether the operand
// refers to memory, including the implicit
// string operands.
func (k OpKind) IsMemory() bool {
	return OpMemorySegSI <= k && k <= OpMemory
}

// RoundingControl is the static rounding
// mode selected by an EVEX prefix.
type RoundingControl uint8

const (
	RoundNone RoundingControl = iota
	RoundToNearest
	RoundDown
	RoundUp
	RoundTowardZero
)

func (rc RoundingControl) String() string {
	switch rc {
	case RoundNone:
		return "None"
	case RoundToNearest:
		return "RoundToNearest"
	case RoundDown:
		return "RoundDown"
	case RoundUp:
		return "RoundUp"
	case RoundTowardZero:
		return "RoundTowardZero"
	default:
		return fmt.Sprintf("RoundingControl(%d)", uint8(rc))
	}
}

func (rc RoundingControl) MarshalText() ([]byte, error) {
	return []byte(rc.String()), nil
}

// EncodingKind identifies the family of
// prefix an instruction is encoded with.
type EncodingKind uint8

const (
	EncodingLegacy EncodingKind = iota
	EncodingVEX
	EncodingEVEX
	EncodingXOP

	NumEncodings = int(EncodingXOP) + 1
)

func (e EncodingKind) String() string {
	switch e {
	case EncodingLegacy:
		return "Legacy"
	case EncodingVEX:
		return "VEX"
	case EncodingEVEX:
		return "EVEX"
	case EncodingXOP:
		return "XOP"
	default:
		return fmt.Sprintf("EncodingKind(%d)", uint8(e))
	}
}

func (e EncodingKind) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// MandatoryPrefix is the prefix that selects
// between instructions sharing an opcode.
// For legacy instructions it comes from the
// 66, F2, and F3 prefixes. VEX, EVEX, and
// XOP encode it in the pp field.
type MandatoryPrefix uint8

const (
	MandatoryNone MandatoryPrefix = iota
	Mandatory66
	MandatoryF3
	MandatoryF2
)

func (p MandatoryPrefix) String() string {
	switch p {
	case MandatoryNone:
		return "NP"
	case Mandatory66:
		return "66"
	case MandatoryF3:
		return "F3"
	case MandatoryF2:
		return "F2"
	default:
		return fmt.Sprintf("MandatoryPrefix(%d)", uint8(p))
	}
}

// OpcodeMap identifies the table an opcode
// byte is looked up in.
type OpcodeMap uint8

const (
	MapPrimary OpcodeMap = iota
	Map0F
	Map0F38
	Map0F3A
	MapXOP8
	MapXOP9
	MapXOPA

	NumOpcodeMaps = int(MapXOPA) + 1
)

func (m OpcodeMap) String() string {
	switch m {
	case MapPrimary:
		return "1-byte"
	case Map0F:
		return "0F"
	case Map0F38:
		return "0F38"
	case Map0F3A:
		return "0F3A"
	case MapXOP8:
		return "X8"
	case MapXOP9:
		return "X9"
	case MapXOPA:
		return "XA"
	default:
		return fmt.Sprintf("OpcodeMap(%d)", uint8(m))
	}
}
