// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"fmt"
	"strings"

	"firefly-os.dev/x86dec/x86"
)

// Operand is a single decoded operand.
//
// Register is set for OpRegister operands.
// Immediate holds the value of immediate
// operands, the target of near branches,
// and the offset of far branches.
type Operand struct {
	Kind      x86.OpKind   `json:"kind" yaml:"kind"`
	Register  x86.Register `json:"register,omitempty" yaml:"register,omitempty"`
	Immediate uint64       `json:"immediate,omitempty" yaml:"immediate,omitempty"`
}

// ConstantOffsets gives the location of the
// displacement and immediates within the
// instruction's bytes. Sizes are zero when
// the field is absent.
type ConstantOffsets struct {
	DisplacementOffset int `json:"displacementOffset" yaml:"displacementOffset"`
	DisplacementSize   int `json:"displacementSize" yaml:"displacementSize"`
	ImmediateOffset    int `json:"immediateOffset" yaml:"immediateOffset"`
	ImmediateSize      int `json:"immediateSize" yaml:"immediateSize"`
	ImmediateOffset2   int `json:"immediateOffset2" yaml:"immediateOffset2"`
	ImmediateSize2     int `json:"immediateSize2" yaml:"immediateSize2"`
}

// Instruction is a single decoded x86
// instruction.
//
// The zero Instruction has the code INVALID.
type Instruction struct {
	Code       x86.Code         `json:"code" yaml:"code"`
	Mode       x86.Mode         `json:"mode" yaml:"mode"`
	Encoding   x86.EncodingKind `json:"encoding" yaml:"encoding"`
	IP         uint64           `json:"ip" yaml:"ip"`
	NextIP     uint64           `json:"nextIP" yaml:"nextIP"`
	ByteLength int              `json:"length" yaml:"length"`

	OpCount           int        `json:"opCount" yaml:"opCount"`
	Ops               [4]Operand `json:"ops" yaml:"ops"`
	FarBranchSelector uint16     `json:"farBranchSelector,omitempty" yaml:"farBranchSelector,omitempty"`

	// Memory operand. MemoryDisplacement is
	// sign extended and truncated to the
	// address size. For RIP- and EIP-relative
	// operands it holds the absolute target.
	// MemoryDisplSize is the number of
	// displacement bytes: 0, 1, 2, or 4, or
	// 8 for a 64-bit moffs operand.
	MemorySegment      x86.Register   `json:"memorySegment,omitempty" yaml:"memorySegment,omitempty"`
	MemoryBase         x86.Register   `json:"memoryBase,omitempty" yaml:"memoryBase,omitempty"`
	MemoryIndex        x86.Register   `json:"memoryIndex,omitempty" yaml:"memoryIndex,omitempty"`
	MemoryIndexScale   int            `json:"memoryIndexScale,omitempty" yaml:"memoryIndexScale,omitempty"`
	MemoryDisplacement uint64         `json:"memoryDisplacement,omitempty" yaml:"memoryDisplacement,omitempty"`
	MemoryDisplSize    int            `json:"memoryDisplSize,omitempty" yaml:"memoryDisplSize,omitempty"`
	MemorySize         x86.MemorySize `json:"memorySize,omitempty" yaml:"memorySize,omitempty"`

	// Prefixes.
	HasPrefixLock  bool         `json:"lock,omitempty" yaml:"lock,omitempty"`
	HasPrefixRepe  bool         `json:"repe,omitempty" yaml:"repe,omitempty"`
	HasPrefixRepne bool         `json:"repne,omitempty" yaml:"repne,omitempty"`
	PrefixSegment  x86.Register `json:"prefixSegment,omitempty" yaml:"prefixSegment,omitempty"`

	// EVEX.
	OpMask                x86.Register        `json:"opMask,omitempty" yaml:"opMask,omitempty"`
	ZeroingMasking        bool                `json:"zeroingMasking,omitempty" yaml:"zeroingMasking,omitempty"`
	RoundingControl       x86.RoundingControl `json:"roundingControl,omitempty" yaml:"roundingControl,omitempty"`
	SuppressAllExceptions bool                `json:"suppressAllExceptions,omitempty" yaml:"suppressAllExceptions,omitempty"`
	IsBroadcast           bool                `json:"broadcast,omitempty" yaml:"broadcast,omitempty"`

	Offsets ConstantOffsets `json:"offsets" yaml:"offsets"`
}

// Op returns operand i. It panics if i is
// not less than OpCount.
func (inst *Instruction) Op(i int) Operand {
	if i < 0 || i >= inst.OpCount {
		panic(fmt.Sprintf("operand %d out of range for %s with %d operands", i, inst.Code, inst.OpCount))
	}

	return inst.Ops[i]
}

// Operands returns the instruction's
// operands.
func (inst *Instruction) Operands() []Operand {
	return inst.Ops[:inst.OpCount]
}

// HasMemory returns whether any operand
// refers to memory.
func (inst *Instruction) HasMemory() bool {
	for _, op := range inst.Operands() {
		if op.Kind.IsMemory() {
			return true
		}
	}

	return false
}

// NearBranchTarget returns the target of a
// near branch, and whether the instruction
// has one.
func (inst *Instruction) NearBranchTarget() (uint64, bool) {
	for _, op := range inst.Operands() {
		switch op.Kind {
		case x86.OpNearBranch16, x86.OpNearBranch32, x86.OpNearBranch64:
			return op.Immediate, true
		}
	}

	return 0, false
}

// Bytes returns the instruction's machine
// code, given the buffer it was decoded
// from and the IP of the buffer's first
// byte.
func (inst *Instruction) Bytes(data []byte, ip uint64) []byte {
	start := inst.IP - ip

	return data[start : start+uint64(inst.ByteLength)]
}

// String returns a debug rendering of the
// instruction, with its code followed by
// the operands in Intel order.
func (inst *Instruction) String() string {
	var b strings.Builder
	b.WriteString(inst.Code.String())
	for i, op := range inst.Operands() {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}

		inst.writeOperand(&b, op)
		if i == 0 {
			if inst.OpMask != x86.None {
				fmt.Fprintf(&b, "{%s}", inst.OpMask)
			}

			if inst.ZeroingMasking {
				b.WriteString("{z}")
			}
		}
	}

	switch {
	case inst.RoundingControl != x86.RoundNone:
		fmt.Fprintf(&b, ", {%s}", roundingNames[inst.RoundingControl])
	case inst.SuppressAllExceptions:
		b.WriteString(", {sae}")
	}

	return b.String()
}

var roundingNames = [...]string{
	x86.RoundToNearest:  "rn-sae",
	x86.RoundDown:       "rd-sae",
	x86.RoundUp:         "ru-sae",
	x86.RoundTowardZero: "rz-sae",
}

func (inst *Instruction) writeOperand(b *strings.Builder, op Operand) {
	switch op.Kind {
	case x86.OpRegister:
		b.WriteString(op.Register.String())
	case x86.OpFarBranch16, x86.OpFarBranch32:
		fmt.Fprintf(b, "%#x:%#x", inst.FarBranchSelector, op.Immediate)
	case x86.OpMemorySegSI, x86.OpMemorySegESI, x86.OpMemorySegRSI:
		fmt.Fprintf(b, "%s:[%s]", inst.MemorySegment, stringRegisters[op.Kind])
	case x86.OpMemorySegDI, x86.OpMemorySegEDI, x86.OpMemorySegRDI:
		fmt.Fprintf(b, "%s:[%s]", inst.MemorySegment, stringRegisters[op.Kind])
	case x86.OpMemoryESDI, x86.OpMemoryESEDI, x86.OpMemoryESRDI:
		fmt.Fprintf(b, "es:[%s]", stringRegisters[op.Kind])
	case x86.OpMemory, x86.OpMemory64:
		inst.writeMemory(b)
	default:
		fmt.Fprintf(b, "%#x", op.Immediate)
	}
}

var stringRegisters = map[x86.OpKind]x86.Register{
	x86.OpMemorySegSI:  x86.SI,
	x86.OpMemorySegESI: x86.ESI,
	x86.OpMemorySegRSI: x86.RSI,
	x86.OpMemorySegDI:  x86.DI,
	x86.OpMemorySegEDI: x86.EDI,
	x86.OpMemorySegRDI: x86.RDI,
	x86.OpMemoryESDI:   x86.DI,
	x86.OpMemoryESEDI:  x86.EDI,
	x86.OpMemoryESRDI:  x86.RDI,
}

func (inst *Instruction) writeMemory(b *strings.Builder) {
	if inst.MemorySize != x86.Unknown {
		fmt.Fprintf(b, "%s ", inst.MemorySize)
	}

	fmt.Fprintf(b, "%s:[", inst.MemorySegment)
	switch inst.MemoryBase {
	case x86.RIP, x86.EIP:
		// Relative operands are printed as
		// the absolute target.
		fmt.Fprintf(b, "%#x]", inst.MemoryDisplacement)
		return
	}

	plus := false
	if inst.MemoryBase != x86.None {
		b.WriteString(inst.MemoryBase.String())
		plus = true
	}

	if inst.MemoryIndex != x86.None {
		if plus {
			b.WriteByte('+')
		}

		fmt.Fprintf(b, "%s*%d", inst.MemoryIndex, inst.MemoryIndexScale)
		plus = true
	}

	switch {
	case !plus:
		fmt.Fprintf(b, "%#x", inst.MemoryDisplacement)
	case inst.MemoryDisplSize != 0:
		bits := inst.MemoryBase.Bits()
		if inst.MemoryBase == x86.None {
			bits = 64
			if inst.MemoryIndex.Type() == x86.TypeGeneralPurpose {
				bits = inst.MemoryIndex.Bits()
			}
		}

		shift := 64 - bits
		disp := int64(inst.MemoryDisplacement<<shift) >> shift
		if disp < 0 {
			fmt.Fprintf(b, "-%#x", uint64(-disp))
		} else {
			fmt.Fprintf(b, "+%#x", disp)
		}
	}

	b.WriteByte(']')
}
