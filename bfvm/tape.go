package bfvm

// DefaultCapacity is the number of cells of a tape when no capacity is configured.
const DefaultCapacity = 65536

// Tape is a fixed-length array of wrapping byte cells. It does not check bounds; callers keep
// pointers in range.
type Tape []byte

func NewTape(capacity int) Tape {
	return make(Tape, capacity)
}

func (t Tape) Len() int {
	return len(t)
}

func (t Tape) Read(ptr int) byte {
	return t[ptr]
}

func (t Tape) Increment(ptr int) {
	t[ptr]++
}

func (t Tape) Decrement(ptr int) {
	t[ptr]--
}

func (t Tape) Reset() {
	clear(t)
}
