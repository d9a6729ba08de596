package wire

// ReadBuffer is a read cursor over a fixed amount of bytes. Implementations never
// grow or reallocate; they only report what is readable and move forward.
type ReadBuffer interface {
	// Len returns the number of bytes that can still be read.
	Len() int
	// Cap returns the maximum number of bytes the buffer can hold.
	Cap() int
	// Peek returns the unread byte at offset without consuming it.
	// It fails with ErrEndOfBuffer when offset is not below Len.
	Peek(offset int) (byte, error)
	// Advance consumes n bytes, or fails with ErrEndOfBuffer consuming nothing.
	Advance(n int) error
	// ReadByte consumes and returns the next byte.
	ReadByte() (byte, error)
	// ReadFull copies exactly len(p) bytes, or fails with ErrEndOfBuffer consuming nothing.
	ReadFull(p []byte) error
}

// WriteBuffer is a write sink with a fixed capacity.
type WriteBuffer interface {
	// Len returns the number of bytes written so far.
	Len() int
	// Available returns the number of bytes that can still be written.
	Available() int
	// WriteByte appends one byte, or fails with ErrBufferFull.
	WriteByte(c byte) error
	// WriteBytes appends all of p, or fails with ErrBufferFull writing nothing.
	WriteBytes(p []byte) error
}
