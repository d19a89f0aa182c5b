// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidInstructionLength indicates
	// that decoding would consume more than
	// 15 bytes.
	ErrInvalidInstructionLength = errors.New("instruction longer than 15 bytes")

	// ErrUnrecognizedOpcode indicates that no
	// instruction form matches the opcode and
	// its prefixes in the current mode.
	ErrUnrecognizedOpcode = errors.New("unrecognized opcode")

	// ErrInvalidModRMOrSIB indicates a ModR/M
	// or SIB byte that selects a reserved
	// register or addressing form.
	ErrInvalidModRMOrSIB = errors.New("invalid ModR/M or SIB")

	// ErrTruncatedInstruction indicates that
	// the input ended part way through an
	// instruction.
	ErrTruncatedInstruction = fmt.Errorf("truncated instruction: %w", io.ErrUnexpectedEOF)

	// ErrInvalidPrefixCombination indicates
	// prefixes that cannot be combined, or
	// VEX, XOP, or EVEX fields with values
	// the instruction does not permit.
	ErrInvalidPrefixCombination = errors.New("invalid prefix combination")
)

// DecodeError describes a failure to decode
// an instruction. Offset is the number of
// bytes of the instruction that had been
// consumed when decoding failed.
type DecodeError struct {
	Err    error
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("x86 decode failed at instruction byte %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
