package bfvm

type EventKind uint8

const (
	// EventStep follows every executed instruction while debug is on.
	EventStep EventKind = iota + 1
	// EventOutput follows every output instruction while debug is on.
	EventOutput
	// EventFlush carries the output drained by Run.
	EventFlush
)

func (k EventKind) String() string {
	switch k {
	case EventStep:
		return "step"
	case EventOutput:
		return "output"
	case EventFlush:
		return "flush"
	}
	return "unknown"
}

type Event struct {
	Kind               EventKind
	Instruction        byte
	InstructionPointer int
	DataPointer        int
	Cell               byte
	SeekDepth          int
	JumpStack          []int
	Output             []byte
}

// Observer receives diagnostic events. It must not retain Event.Output or Event.JumpStack.
type Observer func(Event)
