// Package embedproto serializes protobuf messages into and out of fixed,
// caller-owned storage. Messages are Go types generated by cmd/embedgen; this
// package drives them over byte slices and chunked streams.
package embedproto

import (
	"fmt"

	"github.com/anirudhraja/embedproto/field"
	"github.com/anirudhraja/embedproto/wire"
)

// ===== MESSAGE API =====

// Marshal serializes m into storage and returns the written part of it.
// wire.ErrBufferFull is returned when storage is too small. Each call
// allocates the buffer wrapping storage; MarshalTo with a reused buffer does
// not allocate.
func Marshal(m field.Message, storage []byte) ([]byte, error) {
	w := wire.NewFixedWriteBuffer(storage)
	if err := MarshalTo(m, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// MarshalTo serializes m into w. Nothing of a field that does not fit is
// written.
func MarshalTo(m field.Message, w wire.WriteBuffer) error {
	if err := m.Serialize(w); err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return nil
}

// Size returns the number of bytes Marshal needs for m
func Size(m field.Message) (int, error) {
	n, err := field.SerializedSize(m)
	if err != nil {
		return 0, fmt.Errorf("size: %w", err)
	}
	return n, nil
}

// Unmarshal clears m and reads one complete message from data. Empty data is
// the all-default message. Fields unknown to m are skipped. Like Marshal it
// allocates the buffer wrapping data; UnmarshalFrom does not.
func Unmarshal(data []byte, m field.Message) error {
	return UnmarshalFrom(wire.NewReadBufferFrom(data), m)
}

// UnmarshalFrom clears m and reads one complete message from the bytes
// buffered in r.
func UnmarshalFrom(r wire.ReadBuffer, m field.Message) error {
	m.Clear()
	if r.Len() == 0 {
		return nil
	}

	if err := m.Deserialize(r); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	// Leftover bytes are the start of a tag that never completed.
	if r.Len() > 0 {
		return fmt.Errorf("unmarshal: truncated tag, %d bytes left: %w", r.Len(), wire.ErrEndOfBuffer)
	}
	return nil
}
