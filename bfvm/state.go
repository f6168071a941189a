package bfvm

// State is a read-only copy of the execution state.
type State struct {
	DataPointer        int    `json:"data_pointer"`
	Instructions       string `json:"instructions"`
	InstructionPointer int    `json:"instruction_pointer"`
	JumpStack          []int  `json:"jump_stack"`
	SeekDepth          int    `json:"seek_depth"`
	Output             string `json:"output"`
}

func (v *VM) State() State {
	return State{
		DataPointer:        v.dataPointer,
		Instructions:       string(v.instructions),
		InstructionPointer: v.ip,
		JumpStack:          append([]int{}, v.jumps...),
		SeekDepth:          v.seekDepth,
		Output:             string(v.output),
	}
}

// EmitState passes a snapshot of the execution state to fn.
func (v *VM) EmitState(fn func(State)) {
	fn(v.State())
}
