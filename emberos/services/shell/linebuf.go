package shell

// LineBuffer is a fixed-capacity edit buffer. At most capacity-1 bytes of
// text fit; the last slot is reserved for a terminator on the wire.
// It is display-agnostic: echoing is the editor's job.
type LineBuffer struct {
	buf    []byte
	length int
}

// NewLineBuffer returns a buffer holding up to capacity-1 bytes.
func NewLineBuffer(capacity int) *LineBuffer {
	if capacity < 2 {
		capacity = 2
	}
	return &LineBuffer{buf: make([]byte, capacity)}
}

func (b *LineBuffer) Len() int { return b.length }

// Cap returns the declared capacity (maximum text length plus one).
func (b *LineBuffer) Cap() int { return len(b.buf) }

func (b *LineBuffer) String() string { return string(b.buf[:b.length]) }

// Byte returns the byte at index i.
func (b *LineBuffer) Byte(i int) byte { return b.buf[i] }

// Insert places c at index at, shifting the tail right. It reports false,
// leaving the buffer unchanged, when the buffer is full or at is out of
// range.
func (b *LineBuffer) Insert(at int, c byte) bool {
	if b.length >= len(b.buf)-1 {
		return false
	}
	if at < 0 || at > b.length {
		return false
	}
	copy(b.buf[at+1:b.length+1], b.buf[at:b.length])
	b.buf[at] = c
	b.length++
	return true
}

// DeleteBefore removes the character immediately before index at
// (backspace semantics). It reports false when at is 0.
func (b *LineBuffer) DeleteBefore(at int) bool {
	if at <= 0 || at > b.length {
		return false
	}
	copy(b.buf[at-1:b.length-1], b.buf[at:b.length])
	b.length--
	return true
}

// DeleteWordBefore removes trailing spaces and then one run of non-space
// characters before index at, returning the number of bytes removed.
func (b *LineBuffer) DeleteWordBefore(at int) int {
	n := 0
	for at-n > 0 && b.buf[at-n-1] == ' ' {
		n++
	}
	for at-n > 0 && b.buf[at-n-1] != ' ' {
		n++
	}
	if n == 0 {
		return 0
	}
	copy(b.buf[at-n:b.length-n], b.buf[at:b.length])
	b.length -= n
	return n
}

// Clear empties the buffer.
func (b *LineBuffer) Clear() { b.length = 0 }

// Set replaces the contents with s, truncated to capacity-1 bytes.
func (b *LineBuffer) Set(s string) {
	max := len(b.buf) - 1
	if len(s) > max {
		s = s[:max]
	}
	b.length = copy(b.buf, s)
}
