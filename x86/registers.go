// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// Register identifies a single x86
// register. The zero value is None.
//
// Registers within a family are laid
// out contiguously in encoding order,
// so the register with number n in a
// family is the family's first register
// plus n.
type Register uint8

const (
	None Register = iota

	// 8-bit registers.
	AL
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	SPL
	BPL
	SIL
	DIL
	R8L
	R9L
	R10L
	R11L
	R12L
	R13L
	R14L
	R15L

	// 16-bit registers.
	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W

	// 32-bit registers.
	EAX
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D

	// 64-bit registers.
	RAX
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15

	// Instruction pointers.
	EIP
	RIP

	// Segment registers.
	ES
	CS
	SS
	DS
	FS
	GS

	// x87 registers.
	ST0
	ST1
	ST2
	ST3
	ST4
	ST5
	ST6
	ST7

	// MMX registers.
	MM0
	MM1
	MM2
	MM3
	MM4
	MM5
	MM6
	MM7

	// Control registers.
	CR0
	_ // CR1 through CR15 follow CR0.
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	CR15

	// Debug registers.
	DR0
	_ // DR1 through DR15 follow DR0.
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	DR15

	// Vector registers.
	XMM0
	XMM31 = XMM0 + 31
	YMM0  = XMM0 + 32
	YMM31 = YMM0 + 31
	ZMM0  = YMM0 + 32
	ZMM31 = ZMM0 + 31

	// Opmask registers.
	K0 = ZMM0 + 32
	K7 = K0 + 7

	numRegisters = K7 + 1
)

// Names for the members of numbered
// families used elsewhere in the module.
const (
	CR2 = CR0 + 2
	CR3 = CR0 + 3
	CR4 = CR0 + 4
	CR8 = CR0 + 8
	DR7 = DR0 + 7

	XMM1  = XMM0 + 1
	XMM2  = XMM0 + 2
	XMM3  = XMM0 + 3
	XMM4  = XMM0 + 4
	XMM5  = XMM0 + 5
	XMM6  = XMM0 + 6
	XMM7  = XMM0 + 7
	XMM8  = XMM0 + 8
	XMM15 = XMM0 + 15
	XMM16 = XMM0 + 16
	XMM17 = XMM0 + 17
	XMM18 = XMM0 + 18
	XMM22 = XMM0 + 22

	YMM1  = YMM0 + 1
	YMM2  = YMM0 + 2
	YMM3  = YMM0 + 3
	YMM6  = YMM0 + 6
	YMM16 = YMM0 + 16

	ZMM1  = ZMM0 + 1
	ZMM2  = ZMM0 + 2
	ZMM3  = ZMM0 + 3
	ZMM6  = ZMM0 + 6
	ZMM16 = ZMM0 + 16

	K1 = K0 + 1
	K2 = K0 + 2
	K3 = K0 + 3
	K4 = K0 + 4
	K5 = K0 + 5
	K6 = K0 + 6
)

type registerInfo struct {
	name string
	typ  RegisterType
	bits uint16
	num  uint8
}

var registers [numRegisters]registerInfo

// RegistersByName maps the lower-case
// name of each register to its value.
var RegistersByName = make(map[string]Register)

func init() {
	family := func(first Register, n int, typ RegisterType, bits uint16, name func(i int) string) {
		for i := 0; i < n; i++ {
			registers[first+Register(i)] = registerInfo{name: name(i), typ: typ, bits: bits, num: uint8(i)}
		}
	}
	names := func(list ...string) func(int) string {
		return func(i int) string { return list[i] }
	}
	numbered := func(format string, offset int) func(int) string {
		return func(i int) string { return fmt.Sprintf(format, i+offset) }
	}
	legacy := func(list string, format string) func(int) string {
		low := strings.Fields(list)
		return func(i int) string {
			if i < len(low) {
				return low[i]
			}

			return fmt.Sprintf(format, i)
		}
	}

	family(AL, 4, TypeGeneralPurpose, 8, names("al", "cl", "dl", "bl"))
	family(AH, 4, TypeGeneralPurpose, 8, names("ah", "ch", "dh", "bh"))
	family(SPL, 4, TypeGeneralPurpose, 8, names("spl", "bpl", "sil", "dil"))
	family(R8L, 8, TypeGeneralPurpose, 8, numbered("r%dl", 8))
	family(AX, 16, TypeGeneralPurpose, 16, legacy("ax cx dx bx sp bp si di", "r%dw"))
	family(EAX, 16, TypeGeneralPurpose, 32, legacy("eax ecx edx ebx esp ebp esi edi", "r%dd"))
	family(RAX, 16, TypeGeneralPurpose, 64, legacy("rax rcx rdx rbx rsp rbp rsi rdi", "r%d"))
	family(EIP, 1, TypeInstructionPointer, 32, names("eip"))
	family(RIP, 1, TypeInstructionPointer, 64, names("rip"))
	family(ES, 6, TypeSegment, 16, names("es", "cs", "ss", "ds", "fs", "gs"))
	family(ST0, 8, TypeX87, 80, numbered("st%d", 0))
	family(MM0, 8, TypeMMX, 64, numbered("mm%d", 0))
	family(CR0, 16, TypeControl, 64, numbered("cr%d", 0))
	family(DR0, 16, TypeDebug, 64, numbered("dr%d", 0))
	family(XMM0, 32, TypeXMM, 128, numbered("xmm%d", 0))
	family(YMM0, 32, TypeYMM, 256, numbered("ymm%d", 0))
	family(ZMM0, 32, TypeZMM, 512, numbered("zmm%d", 0))
	family(K0, 8, TypeOpmask, 64, numbered("k%d", 0))

	// The high byte registers share
	// encodings 4-7 with SPL-DIL.
	for i := Register(0); i < 4; i++ {
		registers[AH+i].num = uint8(4 + i)
		registers[SPL+i].num = uint8(4 + i)
	}
	for i := Register(0); i < 8; i++ {
		registers[R8L+i].num = uint8(8 + i)
	}

	for r := AL; r < numRegisters; r++ {
		RegistersByName[registers[r].name] = r
	}
}

// Type returns the register's family.
func (r Register) Type() RegisterType {
	if r >= numRegisters {
		return 0
	}

	return registers[r].typ
}

// Bits returns the register's size in
// bits.
func (r Register) Bits() int {
	if r >= numRegisters {
		return 0
	}

	return int(registers[r].bits)
}

// Number returns the register's number
// within its family, as used in the
// encoded register fields.
func (r Register) Number() int {
	if r >= numRegisters {
		return 0
	}

	return int(registers[r].num)
}

func (r Register) String() string {
	if r == None {
		return "none"
	}
	if r >= numRegisters {
		return fmt.Sprintf("Register(%d)", uint8(r))
	}

	return registers[r].name
}

func (r Register) UpperName() string { return strings.ToUpper(r.String()) }

func (r Register) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Register) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "none" || s == "" {
		*r = None
		return nil
	}

	got, ok := RegistersByName[strings.ToLower(s)]
	if !ok {
		return fmt.Errorf("invalid register %q", s)
	}

	*r = got

	return nil
}

// GPR8 returns the 8-bit register with
// the given number. Without a REX prefix,
// numbers 4-7 select AH, CH, DH, and BH.
// With any REX prefix, they select SPL,
// BPL, SIL, and DIL.
func GPR8(num int, rex bool) Register {
	switch {
	case num < 4:
		return AL + Register(num)
	case num < 8 && !rex:
		return AH + Register(num-4)
	case num < 8:
		return SPL + Register(num-4)
	default:
		return R8L + Register(num-8)
	}
}

// GPR returns the general purpose register
// with the given size in bits and number.
// 8-bit registers are chosen as if a REX
// prefix was present, so callers that care
// about AH-BH should use GPR8.
func GPR(bits, num int) Register {
	switch bits {
	case 8:
		return GPR8(num, true)
	case 16:
		return AX + Register(num)
	case 32:
		return EAX + Register(num)
	case 64:
		return RAX + Register(num)
	default:
		panic(fmt.Sprintf("invalid general purpose register size %d", bits))
	}
}

// RegisterOf returns the register with the
// given number in a family that is laid out
// contiguously, such as the vector, opmask,
// segment, x87, control, and debug registers.
//
// RegisterOf returns None if the number is
// out of range for the family.
func RegisterOf(typ RegisterType, num int) Register {
	var first Register
	var n int
	switch typ {
	case TypeSegment:
		first, n = ES, 6
	case TypeX87:
		first, n = ST0, 8
	case TypeMMX:
		first, n = MM0, 8
	case TypeControl:
		first, n = CR0, 16
	case TypeDebug:
		first, n = DR0, 16
	case TypeXMM:
		first, n = XMM0, 32
	case TypeYMM:
		first, n = YMM0, 32
	case TypeZMM:
		first, n = ZMM0, 32
	case TypeOpmask:
		first, n = K0, 8
	default:
		panic(fmt.Sprintf("RegisterOf called with %s", typ))
	}

	if num < 0 || num >= n {
		return None
	}

	return first + Register(num)
}

// RegisterType categorises an x86
// register.
type RegisterType uint8

const (
	_ RegisterType = iota
	TypeGeneralPurpose
	TypeInstructionPointer
	TypeSegment
	TypeX87
	TypeControl
	TypeDebug
	TypeOpmask
	TypeMMX
	TypeXMM
	TypeYMM
	TypeZMM
)

func (t RegisterType) String() string {
	switch t {
	case TypeGeneralPurpose:
		return "general purpose register"
	case TypeInstructionPointer:
		return "instruction pointer register"
	case TypeSegment:
		return "segment register"
	case TypeX87:
		return "x87 register"
	case TypeControl:
		return "control register"
	case TypeDebug:
		return "debug register"
	case TypeOpmask:
		return "opmask register"
	case TypeMMX:
		return "MMX register"
	case TypeXMM:
		return "XMM register"
	case TypeYMM:
		return "YMM register"
	case TypeZMM:
		return "ZMM register"
	default:
		return fmt.Sprintf("RegisterType(%d)", t)
	}
}

// IsVector returns whether the register
// type is one of the SSE/AVX vector
// register families.
func (t RegisterType) IsVector() bool {
	return t == TypeXMM || t == TypeYMM || t == TypeZMM
}
