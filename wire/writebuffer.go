package wire

// FixedWriteBuffer is a WriteBuffer over caller-provided storage. It will not
// grow the storage; a write that does not fit fails with ErrBufferFull.
type FixedWriteBuffer struct {
	buf []byte // destination storage
	n   int    // current write position
}

// NewFixedWriteBuffer creates a write buffer using the full capacity of storage
func NewFixedWriteBuffer(storage []byte) *FixedWriteBuffer {
	return &FixedWriteBuffer{buf: storage[:cap(storage)]}
}

// Len returns the number of bytes written
func (w *FixedWriteBuffer) Len() int { return w.n }

// Cap returns the capacity of the underlying storage
func (w *FixedWriteBuffer) Cap() int { return len(w.buf) }

// Available returns the number of bytes available for writing
func (w *FixedWriteBuffer) Available() int { return len(w.buf) - w.n }

// Bytes returns a slice view of the written data
func (w *FixedWriteBuffer) Bytes() []byte { return w.buf[:w.n] }

// Reset allows the underlying storage to be reused
func (w *FixedWriteBuffer) Reset() { w.n = 0 }

// WriteByte appends one byte
func (w *FixedWriteBuffer) WriteByte(c byte) error {
	if w.n >= len(w.buf) {
		return ErrBufferFull
	}
	w.buf[w.n] = c
	w.n++
	return nil
}

// WriteBytes appends all of p or nothing
func (w *FixedWriteBuffer) WriteBytes(p []byte) error {
	if len(p) > len(w.buf)-w.n {
		return ErrBufferFull
	}
	w.n += copy(w.buf[w.n:], p)
	return nil
}
