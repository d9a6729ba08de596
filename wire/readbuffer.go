package wire

// FixedReadBuffer is a ReadBuffer over caller-provided storage. It never grows:
// Push appends incoming bytes behind the unread ones and compacts what has
// already been consumed, which lets a message be fed in chunks.
type FixedReadBuffer struct {
	buf      []byte
	pos      int // next unread byte
	end      int // one past the last readable byte
	consumed int // bytes consumed before the last compaction
}

// NewFixedReadBuffer creates an empty read buffer with the capacity of storage
func NewFixedReadBuffer(storage []byte) *FixedReadBuffer {
	return &FixedReadBuffer{buf: storage[:cap(storage)]}
}

// NewReadBufferFrom creates a read buffer whose readable bytes are data
func NewReadBufferFrom(data []byte) *FixedReadBuffer {
	return &FixedReadBuffer{buf: data, end: len(data)}
}

// Len returns the number of unread bytes
func (b *FixedReadBuffer) Len() int { return b.end - b.pos }

// Cap returns the size of the underlying storage
func (b *FixedReadBuffer) Cap() int { return len(b.buf) }

// Offset returns the total number of bytes consumed since the last Reset
func (b *FixedReadBuffer) Offset() int { return b.consumed + b.pos }

// Bytes returns the unread bytes without consuming them
func (b *FixedReadBuffer) Bytes() []byte { return b.buf[b.pos:b.end] }

// Peek returns the unread byte at offset without consuming it
func (b *FixedReadBuffer) Peek(offset int) (byte, error) {
	if offset < 0 || offset >= b.end-b.pos {
		return 0, ErrEndOfBuffer
	}
	return b.buf[b.pos+offset], nil
}

// Advance consumes n bytes
func (b *FixedReadBuffer) Advance(n int) error {
	if n < 0 {
		return ErrIndexOutOfBound
	}
	if n > b.end-b.pos {
		return ErrEndOfBuffer
	}
	b.pos += n
	return nil
}

// ReadByte consumes and returns the next byte
func (b *FixedReadBuffer) ReadByte() (byte, error) {
	if b.pos >= b.end {
		return 0, ErrEndOfBuffer
	}
	c := b.buf[b.pos]
	b.pos++
	return c, nil
}

// ReadFull copies exactly len(p) bytes into p
func (b *FixedReadBuffer) ReadFull(p []byte) error {
	if len(p) > b.end-b.pos {
		return ErrEndOfBuffer
	}
	b.pos += copy(p, b.buf[b.pos:b.end])
	return nil
}

// Push appends as much of p as fits and returns how many bytes were taken.
// Consumed bytes are compacted away first when the tail has no room left.
func (b *FixedReadBuffer) Push(p []byte) (int, error) {
	if len(p) > len(b.buf)-b.end && b.pos > 0 {
		copy(b.buf, b.buf[b.pos:b.end])
		b.consumed += b.pos
		b.end -= b.pos
		b.pos = 0
	}

	n := copy(b.buf[b.end:], p)
	b.end += n
	if n < len(p) {
		return n, ErrBufferFull
	}
	return n, nil
}

// Reset drops all bytes so the storage can be reused
func (b *FixedReadBuffer) Reset() {
	b.pos, b.end, b.consumed = 0, 0, 0
}
