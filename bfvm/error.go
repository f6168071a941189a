package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange         = errors.New("data pointer out of range")
	ErrInputNotSupported  = errors.New("input instruction not supported")
	ErrMalformedProgram   = errors.New("malformed program: unmatched ]")
	ErrNoMoreInstructions = errors.New("no more instructions")
	ErrBadSnapshot        = errors.New("bad snapshot")
)

// RuntimeError is a failure of the instruction at InstructionPointer. The machine state is left
// as it was before that instruction; Err is one of the Err* sentinels.
type RuntimeError struct {
	Err                error
	Instruction        byte
	InstructionPointer int
	DataPointer        int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error @ IP %d DP %d: %q: %v",
		e.InstructionPointer, e.DataPointer, e.Instruction, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
