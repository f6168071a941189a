// Package bfvm executes programs of the eight-instruction tape language.
//
// The machine never pre-scans brackets. A [ whose guard cell is zero puts the machine into
// seeking mode, counting nested brackets until its ] is reached, so a program may be fed in
// pieces and run before its closing brackets have been appended.
package bfvm

import (
	"context"
	"fmt"
	"io"
	"slices"
)

type Options struct {
	// Capacity is the number of tape cells; DefaultCapacity when not positive.
	Capacity int
	// Output receives the output drained by Run; discarded when nil.
	Output   io.Writer
	Observer Observer
	Debug    bool
}

// VM is a single engine instance. It is not safe for concurrent use.
type VM struct {
	tape         Tape
	instructions Instructions
	dataPointer  int
	ip           int
	jumps        []int
	seekDepth    int
	output       []byte

	out      io.Writer
	observer Observer
	debug    bool
}

func New(options Options) *VM {
	capacity := options.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	out := options.Output
	if out == nil {
		out = io.Discard
	}
	return &VM{
		tape:     NewTape(capacity),
		out:      out,
		observer: options.Observer,
		debug:    options.Debug,
	}
}

func (v *VM) SetDebug(debug bool) {
	v.debug = debug
}

func (v *VM) Debug() bool {
	return v.debug
}

func (v *VM) Capacity() int {
	return v.tape.Len()
}

// Cell returns the value of the cell at ptr. It panics if ptr is out of range.
func (v *VM) Cell(ptr int) byte {
	return v.tape.Read(ptr)
}

// AddInstructions appends text to the program.
func (v *VM) AddInstructions(text string) {
	v.instructions.Append(text)
}

// Step executes the instruction at the instruction pointer. It returns ErrNoMoreInstructions,
// without touching any state, when the program is exhausted.
func (v *VM) Step() error {
	inst, ok := v.instructions.At(v.ip)
	if !ok {
		return ErrNoMoreInstructions
	}
	if err := v.process(inst); err != nil {
		return err
	}
	if v.debug && v.observer != nil {
		v.observer(Event{
			Kind:               EventStep,
			Instruction:        inst,
			InstructionPointer: v.ip,
			DataPointer:        v.dataPointer,
			Cell:               v.tape.Read(v.dataPointer),
			SeekDepth:          v.seekDepth,
			JumpStack:          slices.Clone(v.jumps),
		})
	}
	return nil
}

// Run executes until the program is exhausted, then drains the output. The tape, pointers, jump
// stack and seek depth are kept, so more instructions can be appended and Run called again.
// Run does not return on a program that loops forever; see RunContext.
func (v *VM) Run() error {
	return v.RunContext(context.Background())
}

const ctxCheckInterval = 1024

// RunContext is Run with ctx checked between instructions.
func (v *VM) RunContext(ctx context.Context) error {
	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		err := v.Step()
		if err == ErrNoMoreInstructions {
			break
		}
		if err != nil {
			return err
		}
	}
	return v.flush()
}

func (v *VM) flush() error {
	if len(v.output) == 0 {
		return nil
	}
	if _, err := v.out.Write(v.output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if v.observer != nil {
		v.observer(Event{
			Kind:   EventFlush,
			Output: v.output,
		})
	}
	v.output = v.output[:0]
	return nil
}

// Reset returns the machine to its initial state. Options given to New are kept.
func (v *VM) Reset() {
	v.tape.Reset()
	v.instructions.Reset()
	v.dataPointer = 0
	v.ip = 0
	v.jumps = v.jumps[:0]
	v.seekDepth = 0
	v.output = v.output[:0]
}
