package buffer

// Buffer accumulates bytes up to a hard limit. It's used to collect a request headers block
// streamingly, while the data arrives piece by piece.
type Buffer struct {
	memory  []byte
	maxSize int
}

func New(initialSize, maxSize int) Buffer {
	return Buffer{
		memory:  make([]byte, 0, min(initialSize, maxSize)),
		maxSize: maxSize,
	}
}

// AppendTruncated writes as much of data as the limit allows. It returns false if anything
// was cut off.
func (b *Buffer) AppendTruncated(elements []byte) (ok bool) {
	if space := b.Space(); len(elements) > space {
		b.memory = append(b.memory, elements[:space]...)
		return false
	}

	b.memory = append(b.memory, elements...)
	return true
}

// Space returns how many more bytes the buffer is able to accept.
func (b *Buffer) Space() int {
	return b.maxSize - len(b.memory)
}

// Full tells whether the limit is reached.
func (b *Buffer) Full() bool {
	return len(b.memory) >= b.maxSize
}

// Preview returns everything written so far without copying.
func (b *Buffer) Preview() []byte {
	return b.memory
}
