package debugs

import (
	"fmt"

	"github.com/xioustic/bf-naive/bfvm"
	"go.starlark.net/starlark"
)

// StateGlobals exposes the state of vm to starlark: the snapshot fields under their JSON names,
// the whole snapshot as state, and cell(i) / cells(from, to) reading the tape.
func StateGlobals(vm *bfvm.VM) map[string]any {
	state := vm.State()
	return map[string]any{
		"state":               state,
		"data_pointer":        state.DataPointer,
		"instructions":        state.Instructions,
		"instruction_pointer": state.InstructionPointer,
		"jump_stack":          state.JumpStack,
		"seek_depth":          state.SeekDepth,
		"output":              state.Output,
		"capacity":            vm.Capacity(),
		"cell":                cellBuiltin(vm),
		"cells": func(from, to int) []int {
			from = max(from, 0)
			to = min(to, vm.Capacity())
			var ret []int
			for i := from; i < to; i++ {
				ret = append(ret, int(vm.Cell(i)))
			}
			return ret
		},
	}
}

func cellBuiltin(vm *bfvm.VM) *starlark.Builtin {
	return starlark.NewBuiltin("cell", func(
		thread *starlark.Thread,
		fn *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var ptr int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &ptr); err != nil {
			return nil, err
		}
		if ptr < 0 || ptr >= vm.Capacity() {
			return nil, fmt.Errorf("%s: %d out of tape of %d cells", fn.Name(), ptr, vm.Capacity())
		}
		return starlark.MakeInt(int(vm.Cell(ptr))), nil
	})
}
