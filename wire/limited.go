package wire

// LimitedReader restricts reads from R to the next N bytes. Nested messages are
// decoded through it so their field loop stops at the end of the section.
type LimitedReader struct {
	R ReadBuffer
	N int // bytes left in the section
}

// Len returns the readable bytes left within the limit
func (l *LimitedReader) Len() int {
	return min(l.N, l.R.Len())
}

// Cap returns the size of the section
func (l *LimitedReader) Cap() int { return l.N }

// Peek returns the byte at offset if it lies within the limit
func (l *LimitedReader) Peek(offset int) (byte, error) {
	if offset >= l.N {
		return 0, ErrEndOfBuffer
	}
	return l.R.Peek(offset)
}

// Advance consumes n bytes within the limit
func (l *LimitedReader) Advance(n int) error {
	if n > l.N {
		return ErrEndOfBuffer
	}
	if err := l.R.Advance(n); err != nil {
		return err
	}
	l.N -= n
	return nil
}

// ReadByte consumes the next byte within the limit
func (l *LimitedReader) ReadByte() (byte, error) {
	if l.N <= 0 {
		return 0, ErrEndOfBuffer
	}
	c, err := l.R.ReadByte()
	if err != nil {
		return 0, err
	}
	l.N--
	return c, nil
}

// ReadFull copies exactly len(p) bytes within the limit
func (l *LimitedReader) ReadFull(p []byte) error {
	if len(p) > l.N {
		return ErrEndOfBuffer
	}
	if err := l.R.ReadFull(p); err != nil {
		return err
	}
	l.N -= len(p)
	return nil
}
