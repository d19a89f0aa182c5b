// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// MemorySize describes the data accessed
// by a memory operand: its total size, and
// the size and type of each element.
//
// Packed sizes are named by their total
// width and element type, such as
// Packed128_Float32. Broadcast sizes are
// named by the vector width and the single
// element that is repeated across it.
type MemorySize uint8

const (
	Unknown MemorySize = iota
	UInt8
	UInt16
	UInt32
	UInt52
	UInt64
	UInt128
	UInt256
	UInt512
	Int8
	Int16
	Int32
	Int64
	Int128
	Int256
	Int512
	SegPtr16
	SegPtr32
	SegPtr64
	WordOffset
	DwordOffset
	QwordOffset
	Bound16_WordWord
	Bound32_DwordDword
	Bnd32
	Bnd64
	Fword5
	Fword6
	Fword10
	Float16
	Float32
	Float64
	Float80
	Float128
	BFloat16
	FpuEnv14
	FpuEnv28
	FpuState94
	FpuState108
	Fxsave_512Byte
	Fxsave64_512Byte
	Xsave
	Xsave64
	Bcd
	Packed16_UInt8
	Packed16_Int8
	Packed32_UInt8
	Packed32_Int8
	Packed32_UInt16
	Packed32_Int16
	Packed32_BFloat16
	Packed64_UInt8
	Packed64_Int8
	Packed64_UInt16
	Packed64_Int16
	Packed64_UInt32
	Packed64_Int32
	Packed64_Float16
	Packed64_Float32
	Packed128_UInt8
	Packed128_Int8
	Packed128_UInt16
	Packed128_Int16
	Packed128_UInt32
	Packed128_Int32
	Packed128_UInt52
	Packed128_UInt64
	Packed128_Int64
	Packed128_Float16
	Packed128_Float32
	Packed128_Float64
	Packed128_2xBFloat16
	Packed256_UInt8
	Packed256_Int8
	Packed256_UInt16
	Packed256_Int16
	Packed256_UInt32
	Packed256_Int32
	Packed256_UInt52
	Packed256_UInt64
	Packed256_Int64
	Packed256_UInt128
	Packed256_Int128
	Packed256_Float16
	Packed256_Float32
	Packed256_Float64
	Packed256_Float128
	Packed256_2xBFloat16
	Packed512_UInt8
	Packed512_Int8
	Packed512_UInt16
	Packed512_Int16
	Packed512_UInt32
	Packed512_Int32
	Packed512_UInt52
	Packed512_UInt64
	Packed512_Int64
	Packed512_UInt128
	Packed512_Float32
	Packed512_Float64
	Packed512_2xBFloat16
	Broadcast64_UInt32
	Broadcast64_Int32
	Broadcast64_Float32
	Broadcast128_UInt32
	Broadcast128_Int32
	Broadcast128_UInt52
	Broadcast128_UInt64
	Broadcast128_Int64
	Broadcast128_Float32
	Broadcast128_Float64
	Broadcast256_UInt32
	Broadcast256_Int32
	Broadcast256_UInt52
	Broadcast256_UInt64
	Broadcast256_Int64
	Broadcast256_Float32
	Broadcast256_Float64
	Broadcast512_UInt32
	Broadcast512_Int32
	Broadcast512_UInt52
	Broadcast512_UInt64
	Broadcast512_Int64
	Broadcast512_Float32
	Broadcast512_Float64
	Broadcast128_2xInt16
	Broadcast256_2xInt16
	Broadcast512_2xInt16
	Broadcast128_2xUInt32
	Broadcast256_2xUInt32
	Broadcast512_2xUInt32
	Broadcast128_2xInt32
	Broadcast256_2xInt32
	Broadcast512_2xInt32
	Broadcast128_2xBFloat16
	Broadcast256_2xBFloat16
	Broadcast512_2xBFloat16

	numMemorySizes
)

type memorySizeInfo struct {
	name        string
	size        uint16
	elementSize uint16
	elementType MemorySize
	signed      bool
	broadcast   bool
}

var memorySizes [numMemorySizes]memorySizeInfo

// MemorySizesByName maps the name of each
// memory size to its value.
var MemorySizesByName = make(map[string]MemorySize)

func init() {
	const (
		unsigned  = 0
		signed    = 1
		broadcast = 2
	)

	info := func(ms MemorySize, name string, size, elementSize uint16, elementType MemorySize, flags int) {
		memorySizes[ms] = memorySizeInfo{
			name:        name,
			size:        size,
			elementSize: elementSize,
			elementType: elementType,
			signed:      flags&signed != 0,
			broadcast:   flags&broadcast != 0,
		}
	}

	info(Unknown, "Unknown", 0, 0, Unknown, unsigned)
	info(UInt8, "UInt8", 1, 1, UInt8, unsigned)
	info(UInt16, "UInt16", 2, 2, UInt16, unsigned)
	info(UInt32, "UInt32", 4, 4, UInt32, unsigned)
	info(UInt52, "UInt52", 8, 8, UInt52, unsigned)
	info(UInt64, "UInt64", 8, 8, UInt64, unsigned)
	info(UInt128, "UInt128", 16, 16, UInt128, unsigned)
	info(UInt256, "UInt256", 32, 32, UInt256, unsigned)
	info(UInt512, "UInt512", 64, 64, UInt512, unsigned)
	info(Int8, "Int8", 1, 1, Int8, signed)
	info(Int16, "Int16", 2, 2, Int16, signed)
	info(Int32, "Int32", 4, 4, Int32, signed)
	info(Int64, "Int64", 8, 8, Int64, signed)
	info(Int128, "Int128", 16, 16, Int128, signed)
	info(Int256, "Int256", 32, 32, Int256, signed)
	info(Int512, "Int512", 64, 64, Int512, signed)
	info(SegPtr16, "SegPtr16", 4, 4, SegPtr16, unsigned)
	info(SegPtr32, "SegPtr32", 6, 6, SegPtr32, unsigned)
	info(SegPtr64, "SegPtr64", 10, 10, SegPtr64, unsigned)
	info(WordOffset, "WordOffset", 2, 2, WordOffset, unsigned)
	info(DwordOffset, "DwordOffset", 4, 4, DwordOffset, unsigned)
	info(QwordOffset, "QwordOffset", 8, 8, QwordOffset, unsigned)
	info(Bound16_WordWord, "Bound16_WordWord", 4, 4, Bound16_WordWord, unsigned)
	info(Bound32_DwordDword, "Bound32_DwordDword", 8, 8, Bound32_DwordDword, unsigned)
	info(Bnd32, "Bnd32", 8, 8, Bnd32, unsigned)
	info(Bnd64, "Bnd64", 16, 16, Bnd64, unsigned)
	info(Fword5, "Fword5", 5, 5, Fword5, unsigned)
	info(Fword6, "Fword6", 6, 6, Fword6, unsigned)
	info(Fword10, "Fword10", 10, 10, Fword10, unsigned)
	info(Float16, "Float16", 2, 2, Float16, signed)
	info(Float32, "Float32", 4, 4, Float32, signed)
	info(Float64, "Float64", 8, 8, Float64, signed)
	info(Float80, "Float80", 10, 10, Float80, signed)
	info(Float128, "Float128", 16, 16, Float128, signed)
	info(BFloat16, "BFloat16", 2, 2, BFloat16, signed)
	info(FpuEnv14, "FpuEnv14", 14, 14, FpuEnv14, unsigned)
	info(FpuEnv28, "FpuEnv28", 28, 28, FpuEnv28, unsigned)
	info(FpuState94, "FpuState94", 94, 94, FpuState94, unsigned)
	info(FpuState108, "FpuState108", 108, 108, FpuState108, unsigned)
	info(Fxsave_512Byte, "Fxsave_512Byte", 512, 512, Fxsave_512Byte, unsigned)
	info(Fxsave64_512Byte, "Fxsave64_512Byte", 512, 512, Fxsave64_512Byte, unsigned)
	info(Xsave, "Xsave", 0, 0, Xsave, unsigned)
	info(Xsave64, "Xsave64", 0, 0, Xsave64, unsigned)
	info(Bcd, "Bcd", 10, 10, Bcd, signed)
	info(Packed16_UInt8, "Packed16_UInt8", 2, 1, UInt8, unsigned)
	info(Packed16_Int8, "Packed16_Int8", 2, 1, Int8, signed)
	info(Packed32_UInt8, "Packed32_UInt8", 4, 1, UInt8, unsigned)
	info(Packed32_Int8, "Packed32_Int8", 4, 1, Int8, signed)
	info(Packed32_UInt16, "Packed32_UInt16", 4, 2, UInt16, unsigned)
	info(Packed32_Int16, "Packed32_Int16", 4, 2, Int16, signed)
	info(Packed32_BFloat16, "Packed32_BFloat16", 4, 2, BFloat16, signed)
	info(Packed64_UInt8, "Packed64_UInt8", 8, 1, UInt8, unsigned)
	info(Packed64_Int8, "Packed64_Int8", 8, 1, Int8, signed)
	info(Packed64_UInt16, "Packed64_UInt16", 8, 2, UInt16, unsigned)
	info(Packed64_Int16, "Packed64_Int16", 8, 2, Int16, signed)
	info(Packed64_UInt32, "Packed64_UInt32", 8, 4, UInt32, unsigned)
	info(Packed64_Int32, "Packed64_Int32", 8, 4, Int32, signed)
	info(Packed64_Float16, "Packed64_Float16", 8, 2, Float16, signed)
	info(Packed64_Float32, "Packed64_Float32", 8, 4, Float32, signed)
	info(Packed128_UInt8, "Packed128_UInt8", 16, 1, UInt8, unsigned)
	info(Packed128_Int8, "Packed128_Int8", 16, 1, Int8, signed)
	info(Packed128_UInt16, "Packed128_UInt16", 16, 2, UInt16, unsigned)
	info(Packed128_Int16, "Packed128_Int16", 16, 2, Int16, signed)
	info(Packed128_UInt32, "Packed128_UInt32", 16, 4, UInt32, unsigned)
	info(Packed128_Int32, "Packed128_Int32", 16, 4, Int32, signed)
	info(Packed128_UInt52, "Packed128_UInt52", 16, 8, UInt52, unsigned)
	info(Packed128_UInt64, "Packed128_UInt64", 16, 8, UInt64, unsigned)
	info(Packed128_Int64, "Packed128_Int64", 16, 8, Int64, signed)
	info(Packed128_Float16, "Packed128_Float16", 16, 2, Float16, signed)
	info(Packed128_Float32, "Packed128_Float32", 16, 4, Float32, signed)
	info(Packed128_Float64, "Packed128_Float64", 16, 8, Float64, signed)
	info(Packed128_2xBFloat16, "Packed128_2xBFloat16", 16, 4, Packed32_BFloat16, signed)
	info(Packed256_UInt8, "Packed256_UInt8", 32, 1, UInt8, unsigned)
	info(Packed256_Int8, "Packed256_Int8", 32, 1, Int8, signed)
	info(Packed256_UInt16, "Packed256_UInt16", 32, 2, UInt16, unsigned)
	info(Packed256_Int16, "Packed256_Int16", 32, 2, Int16, signed)
	info(Packed256_UInt32, "Packed256_UInt32", 32, 4, UInt32, unsigned)
	info(Packed256_Int32, "Packed256_Int32", 32, 4, Int32, signed)
	info(Packed256_UInt52, "Packed256_UInt52", 32, 8, UInt52, unsigned)
	info(Packed256_UInt64, "Packed256_UInt64", 32, 8, UInt64, unsigned)
	info(Packed256_Int64, "Packed256_Int64", 32, 8, Int64, signed)
	info(Packed256_UInt128, "Packed256_UInt128", 32, 16, UInt128, unsigned)
	info(Packed256_Int128, "Packed256_Int128", 32, 16, Int128, signed)
	info(Packed256_Float16, "Packed256_Float16", 32, 2, Float16, signed)
	info(Packed256_Float32, "Packed256_Float32", 32, 4, Float32, signed)
	info(Packed256_Float64, "Packed256_Float64", 32, 8, Float64, signed)
	info(Packed256_Float128, "Packed256_Float128", 32, 16, Float128, signed)
	info(Packed256_2xBFloat16, "Packed256_2xBFloat16", 32, 4, Packed32_BFloat16, signed)
	info(Packed512_UInt8, "Packed512_UInt8", 64, 1, UInt8, unsigned)
	info(Packed512_Int8, "Packed512_Int8", 64, 1, Int8, signed)
	info(Packed512_UInt16, "Packed512_UInt16", 64, 2, UInt16, unsigned)
	info(Packed512_Int16, "Packed512_Int16", 64, 2, Int16, signed)
	info(Packed512_UInt32, "Packed512_UInt32", 64, 4, UInt32, unsigned)
	info(Packed512_Int32, "Packed512_Int32", 64, 4, Int32, signed)
	info(Packed512_UInt52, "Packed512_UInt52", 64, 8, UInt52, unsigned)
	info(Packed512_UInt64, "Packed512_UInt64", 64, 8, UInt64, unsigned)
	info(Packed512_Int64, "Packed512_Int64", 64, 8, Int64, signed)
	info(Packed512_UInt128, "Packed512_UInt128", 64, 16, UInt128, unsigned)
	info(Packed512_Float32, "Packed512_Float32", 64, 4, Float32, signed)
	info(Packed512_Float64, "Packed512_Float64", 64, 8, Float64, signed)
	info(Packed512_2xBFloat16, "Packed512_2xBFloat16", 64, 4, Packed32_BFloat16, signed)
	info(Broadcast64_UInt32, "Broadcast64_UInt32", 4, 4, UInt32, broadcast)
	info(Broadcast64_Int32, "Broadcast64_Int32", 4, 4, Int32, signed|broadcast)
	info(Broadcast64_Float32, "Broadcast64_Float32", 4, 4, Float32, signed|broadcast)
	info(Broadcast128_UInt32, "Broadcast128_UInt32", 4, 4, UInt32, broadcast)
	info(Broadcast128_Int32, "Broadcast128_Int32", 4, 4, Int32, signed|broadcast)
	info(Broadcast128_UInt52, "Broadcast128_UInt52", 8, 8, UInt52, broadcast)
	info(Broadcast128_UInt64, "Broadcast128_UInt64", 8, 8, UInt64, broadcast)
	info(Broadcast128_Int64, "Broadcast128_Int64", 8, 8, Int64, signed|broadcast)
	info(Broadcast128_Float32, "Broadcast128_Float32", 4, 4, Float32, signed|broadcast)
	info(Broadcast128_Float64, "Broadcast128_Float64", 8, 8, Float64, signed|broadcast)
	info(Broadcast256_UInt32, "Broadcast256_UInt32", 4, 4, UInt32, broadcast)
	info(Broadcast256_Int32, "Broadcast256_Int32", 4, 4, Int32, signed|broadcast)
	info(Broadcast256_UInt52, "Broadcast256_UInt52", 8, 8, UInt52, broadcast)
	info(Broadcast256_UInt64, "Broadcast256_UInt64", 8, 8, UInt64, broadcast)
	info(Broadcast256_Int64, "Broadcast256_Int64", 8, 8, Int64, signed|broadcast)
	info(Broadcast256_Float32, "Broadcast256_Float32", 4, 4, Float32, signed|broadcast)
	info(Broadcast256_Float64, "Broadcast256_Float64", 8, 8, Float64, signed|broadcast)
	info(Broadcast512_UInt32, "Broadcast512_UInt32", 4, 4, UInt32, broadcast)
	info(Broadcast512_Int32, "Broadcast512_Int32", 4, 4, Int32, signed|broadcast)
	info(Broadcast512_UInt52, "Broadcast512_UInt52", 8, 8, UInt52, broadcast)
	info(Broadcast512_UInt64, "Broadcast512_UInt64", 8, 8, UInt64, broadcast)
	info(Broadcast512_Int64, "Broadcast512_Int64", 8, 8, Int64, signed|broadcast)
	info(Broadcast512_Float32, "Broadcast512_Float32", 4, 4, Float32, signed|broadcast)
	info(Broadcast512_Float64, "Broadcast512_Float64", 8, 8, Float64, signed|broadcast)
	info(Broadcast128_2xInt16, "Broadcast128_2xInt16", 4, 2, Int16, signed|broadcast)
	info(Broadcast256_2xInt16, "Broadcast256_2xInt16", 4, 2, Int16, signed|broadcast)
	info(Broadcast512_2xInt16, "Broadcast512_2xInt16", 4, 2, Int16, signed|broadcast)
	info(Broadcast128_2xUInt32, "Broadcast128_2xUInt32", 8, 4, UInt32, broadcast)
	info(Broadcast256_2xUInt32, "Broadcast256_2xUInt32", 8, 4, UInt32, broadcast)
	info(Broadcast512_2xUInt32, "Broadcast512_2xUInt32", 8, 4, UInt32, broadcast)
	info(Broadcast128_2xInt32, "Broadcast128_2xInt32", 8, 4, Int32, signed|broadcast)
	info(Broadcast256_2xInt32, "Broadcast256_2xInt32", 8, 4, Int32, signed|broadcast)
	info(Broadcast512_2xInt32, "Broadcast512_2xInt32", 8, 4, Int32, signed|broadcast)
	info(Broadcast128_2xBFloat16, "Broadcast128_2xBFloat16", 4, 2, BFloat16, signed|broadcast)
	info(Broadcast256_2xBFloat16, "Broadcast256_2xBFloat16", 4, 2, BFloat16, signed|broadcast)
	info(Broadcast512_2xBFloat16, "Broadcast512_2xBFloat16", 4, 2, BFloat16, signed|broadcast)

	for ms := Unknown; ms < numMemorySizes; ms++ {
		MemorySizesByName[memorySizes[ms].name] = ms
	}
}

// Size returns the total number of bytes
// accessed, or zero if it is not known.
func (ms MemorySize) Size() int {
	if ms >= numMemorySizes {
		return 0
	}

	return int(memorySizes[ms].size)
}

// ElementSize returns the size in bytes of
// each element. For scalar sizes, this is
// the same as Size.
func (ms MemorySize) ElementSize() int {
	if ms >= numMemorySizes {
		return 0
	}

	return int(memorySizes[ms].elementSize)
}

// ElementType returns the memory size of a
// single element, such as Float32 for
// Packed128_Float32.
func (ms MemorySize) ElementType() MemorySize {
	if ms >= numMemorySizes {
		return Unknown
	}

	return memorySizes[ms].elementType
}

// IsSigned returns whether the elements
// are signed integers or floating point.
func (ms MemorySize) IsSigned() bool {
	return ms < numMemorySizes && memorySizes[ms].signed
}

// IsBroadcast returns whether the memory
// size is a single element broadcast to
// every lane of a vector.
func (ms MemorySize) IsBroadcast() bool {
	return ms < numMemorySizes && memorySizes[ms].broadcast
}

// IsPacked returns whether the memory
// holds more than one element.
func (ms MemorySize) IsPacked() bool {
	return ms < numMemorySizes && memorySizes[ms].elementSize < memorySizes[ms].size
}

func (ms MemorySize) String() string {
	if ms >= numMemorySizes {
		return fmt.Sprintf("MemorySize(%d)", uint8(ms))
	}

	return memorySizes[ms].name
}

func (ms MemorySize) MarshalText() ([]byte, error) {
	return []byte(ms.String()), nil
}

func (ms *MemorySize) UnmarshalText(text []byte) error {
	got, ok := MemorySizesByName[string(text)]
	if !ok {
		return fmt.Errorf("invalid memory size %q", text)
	}

	*ms = got

	return nil
}
