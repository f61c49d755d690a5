package main

const defaultBufferCapacity = 16

// charBuffer is the scratch area a scanner fills with one token at a time.
// Its contents are overwritten on every fill, so only copies leave it.
type charBuffer struct {
	data    []byte
	pos     int
	growths int
}

func newCharBuffer(capacity int) *charBuffer {
	if capacity < 1 {
		capacity = defaultBufferCapacity
	}
	return &charBuffer{data: make([]byte, capacity)}
}

// ensure grows the buffer to hold at least n characters. Capacity never
// shrinks and at least doubles on each reallocation.
func (b *charBuffer) ensure(n int) {
	if n <= len(b.data) {
		return
	}
	data := make([]byte, max(n, 2*len(b.data)))
	copy(data, b.data[:b.pos])
	b.data = data
	b.growths++
}

func (b *charBuffer) append(ch byte) {
	if b.pos == len(b.data) {
		b.ensure(b.pos + 1)
	}
	b.data[b.pos] = ch
	b.pos++
}

func (b *charBuffer) reset() {
	b.pos = 0
}

func (b *charBuffer) empty() bool {
	return b.pos == 0
}

func (b *charBuffer) capacity() int {
	return len(b.data)
}

func (b *charBuffer) numOfGrowths() int {
	return b.growths
}

// view aliases the internal storage and must not escape the scanner.
func (b *charBuffer) view() []byte {
	return b.data[:b.pos]
}

func (b *charBuffer) text() string {
	return string(b.data[:b.pos])
}
