package embedproto

import (
	"fmt"

	"github.com/anirudhraja/embedproto/field"
	"github.com/anirudhraja/embedproto/wire"
)

// Stream decodes one message from bytes that arrive in chunks. Chunks are
// buffered in fixed storage; a field is decoded as soon as all of its bytes have
// arrived, so the storage only has to hold the largest single field.
type Stream struct {
	msg field.Message
	buf *wire.FixedReadBuffer
}

// NewStream clears m and prepares to decode into it using storage as buffer
func NewStream(m field.Message, storage []byte) *Stream {
	m.Clear()
	return &Stream{msg: m, buf: wire.NewFixedReadBuffer(storage)}
}

// Write feeds the next chunk. It implements io.Writer.
func (s *Stream) Write(p []byte) (int, error) {
	written := 0
	for {
		n, _ := s.buf.Push(p[written:])
		written += n

		err := s.msg.Deserialize(s.buf)
		if err != nil && err != wire.ErrEndOfBuffer {
			return written, fmt.Errorf("stream at offset %d: %w", s.buf.Offset(), err)
		}

		if written == len(p) {
			return written, nil
		}
		// The buffer is full and decoding could not free any of it.
		if n == 0 && s.buf.Len() == s.buf.Cap() {
			return written, fmt.Errorf("stream at offset %d: field larger than buffer: %w", s.buf.Offset(), wire.ErrBufferFull)
		}
	}
}

// Close reports whether the stream ended on a message boundary
func (s *Stream) Close() error {
	if number, _, ok := field.Pending(s.msg); ok {
		return fmt.Errorf("stream ended inside field %d: %w", number, wire.ErrEndOfBuffer)
	}
	if s.buf.Len() > 0 {
		return fmt.Errorf("stream ended inside a tag: %w", wire.ErrEndOfBuffer)
	}
	return nil
}

// Offset returns the number of bytes decoded so far
func (s *Stream) Offset() int { return s.buf.Offset() }
