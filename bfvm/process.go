package bfvm

// process executes inst at the instruction pointer and advances it. On failure nothing is
// mutated.
func (v *VM) process(inst byte) error {
	seeking := v.seekDepth > 0

	switch inst {

	case '>':
		if seeking {
			break
		}
		if v.dataPointer+1 >= v.tape.Len() {
			return v.fail(inst, ErrOutOfRange)
		}
		v.dataPointer++

	case '<':
		if seeking {
			break
		}
		if v.dataPointer-1 < 0 {
			return v.fail(inst, ErrOutOfRange)
		}
		v.dataPointer--

	case '+':
		if !seeking {
			v.tape.Increment(v.dataPointer)
		}

	case '-':
		if !seeking {
			v.tape.Decrement(v.dataPointer)
		}

	case '[':
		if seeking {
			// nested loop inside a skipped body
			v.seekDepth++
		} else if v.tape.Read(v.dataPointer) == 0 {
			v.seekDepth = 1
		} else {
			v.jumps = append(v.jumps, v.ip)
		}

	case ']':
		if seeking {
			v.seekDepth--
			break
		}
		if len(v.jumps) == 0 {
			return v.fail(inst, ErrMalformedProgram)
		}
		top := v.jumps[len(v.jumps)-1]
		v.jumps = v.jumps[:len(v.jumps)-1]
		if v.tape.Read(v.dataPointer) != 0 {
			// land on the [ after the advance below, re-evaluating its guard
			v.ip = top - 1
		}

	case '.':
		if seeking {
			break
		}
		cell := v.tape.Read(v.dataPointer)
		v.output = append(v.output, cell)
		if v.debug && v.observer != nil {
			v.observer(Event{
				Kind:               EventOutput,
				Instruction:        inst,
				InstructionPointer: v.ip,
				DataPointer:        v.dataPointer,
				Cell:               cell,
				Output:             []byte{cell},
			})
		}

	case ',':
		if !seeking {
			return v.fail(inst, ErrInputNotSupported)
		}

	}

	v.ip++
	return nil
}

func (v *VM) fail(inst byte, err error) error {
	return &RuntimeError{
		Err:                err,
		Instruction:        inst,
		InstructionPointer: v.ip,
		DataPointer:        v.dataPointer,
	}
}
