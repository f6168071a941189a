package bfvm

// Instructions is an append-only program buffer. Positions are byte offsets.
type Instructions []byte

func (i *Instructions) Append(text string) {
	*i = append(*i, text...)
}

// At returns the instruction at ip, or false when ip is at or past the end.
func (i Instructions) At(ip int) (byte, bool) {
	if ip < 0 || ip >= len(i) {
		return 0, false
	}
	return i[ip], true
}

func (i Instructions) Len() int {
	return len(i)
}

func (i *Instructions) Reset() {
	*i = (*i)[:0]
}
