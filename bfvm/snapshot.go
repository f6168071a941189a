package bfvm

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

type image struct {
	Cells              []byte
	DataPointer        int
	Instructions       []byte
	InstructionPointer int
	JumpStack          []int
	SeekDepth          int
	Output             []byte
}

// Snapshot writes the whole machine state, tape included, to w.
func (v *VM) Snapshot(w io.Writer) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(enc).Encode(image{
		Cells:              v.tape,
		DataPointer:        v.dataPointer,
		Instructions:       v.instructions,
		InstructionPointer: v.ip,
		JumpStack:          v.jumps,
		SeekDepth:          v.seekDepth,
		Output:             v.output,
	}); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Restore replaces the machine state, capacity included, with one written by Snapshot. The
// machine is left untouched on error.
func (v *VM) Restore(r io.Reader) error {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return err
	}
	defer dec.Close()

	var img image
	if err := gob.NewDecoder(dec).Decode(&img); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if err := img.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	v.tape = Tape(img.Cells)
	v.dataPointer = img.DataPointer
	v.instructions = Instructions(img.Instructions)
	v.ip = img.InstructionPointer
	v.jumps = img.JumpStack
	v.seekDepth = img.SeekDepth
	v.output = img.Output
	return nil
}

func (i image) validate() error {
	if len(i.Cells) == 0 {
		return fmt.Errorf("empty tape")
	}
	if i.DataPointer < 0 || i.DataPointer >= len(i.Cells) {
		return fmt.Errorf("data pointer %d out of tape of %d cells", i.DataPointer, len(i.Cells))
	}
	if i.InstructionPointer < 0 || i.InstructionPointer > len(i.Instructions) {
		return fmt.Errorf("instruction pointer %d out of %d instructions", i.InstructionPointer, len(i.Instructions))
	}
	if i.SeekDepth < 0 {
		return fmt.Errorf("negative seek depth %d", i.SeekDepth)
	}
	for _, pos := range i.JumpStack {
		if pos < 0 || pos >= i.InstructionPointer || i.Instructions[pos] != '[' {
			return fmt.Errorf("jump stack entry %d is not an entered [", pos)
		}
	}
	return nil
}
