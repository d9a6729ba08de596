package field

import "github.com/anirudhraja/embedproto/wire"

// Message is a Field made of other fields. Types implement it by embedding
// MessageBase and providing a field table. Their SerializeWithID and
// DeserializeCheckType must delegate to SerializeMessage and DeserializeMessage.
type Message interface {
	Field

	// Serialize writes the fields of the message without an enclosing tag.
	Serialize(w wire.WriteBuffer) error

	messageBase() *MessageBase
}

// MessageBase carries the per-instance state shared by all messages: the
// resumable parse cursor, and scratch space for nested decoding and sizing so
// neither needs an allocation.
type MessageBase struct {
	// pendingNumber is the field number of a tag whose payload has not been
	// read yet, 0 when no tag is pending. pendingType is its wire type.
	pendingNumber wire.FieldNumber
	pendingType   wire.WireType

	view wire.LimitedReader
	size wire.SizeCalculator
}

func (b *MessageBase) messageBase() *MessageBase { return b }

// ResetCursor forgets a pending tag. Generated Clear methods call it.
func (b *MessageBase) ResetCursor() {
	b.pendingNumber = 0
	b.pendingType = 0
}

// Pending reports the field whose tag was read by an earlier call but whose
// payload did not fit in the buffer yet.
func (b *MessageBase) Pending() (wire.FieldNumber, wire.WireType, bool) {
	return b.pendingNumber, b.pendingType, b.pendingNumber != 0
}

// DeserializeFields reads tags from r and hands each payload to the field in
// fields with the same number; payloads of unknown numbers are skipped.
//
// Running out of bytes exactly where the next tag would start ends the message
// successfully. Running out inside a field returns wire.ErrEndOfBuffer and
// keeps the tag pending, so calling again with more bytes resumes at that field
// without reading the tag twice. A call on an empty buffer with nothing pending
// returns wire.ErrEndOfBuffer.
func (b *MessageBase) DeserializeFields(r wire.ReadBuffer, fields []Ref) error {
	var err error

	// If no tag is pending obtain the next one. A pending tag means an earlier
	// call ran out of bytes while reading its field.
	if b.pendingNumber == 0 {
		b.pendingNumber, b.pendingType, err = wire.DeserializeTag(r)
	}

	for err == nil {
		err = b.dispatch(r, fields)
		if err != nil {
			break
		}

		// Reset first so a failure reading the next tag retries the tag itself.
		b.pendingNumber = 0
		b.pendingNumber, b.pendingType, err = wire.DeserializeTag(r)
		if err != nil {
			if err == wire.ErrEndOfBuffer {
				err = nil
			}
			break
		}
	}

	return err
}

// dispatch routes the payload of the pending tag
func (b *MessageBase) dispatch(r wire.ReadBuffer, fields []Ref) error {
	for i := range fields {
		if fields[i].Number == b.pendingNumber {
			err := fields[i].Field.DeserializeCheckType(r, b.pendingType)
			if err == nil {
				fields[i].Present = true
			}
			return err
		}
	}
	return wire.SkipField(r, b.pendingType)
}

// SerializeMessage writes m as a length-delimited field: tag, content size,
// content. The size comes from a dry run into a SizeCalculator. When optional
// is true and every field of m is at its default, nothing is written.
func SerializeMessage(m Message, number wire.FieldNumber, w wire.WriteBuffer, optional bool) error {
	calc := &m.messageBase().size
	calc.Reset()
	if err := m.Serialize(calc); err != nil {
		return err
	}
	size := calc.N

	if optional && size == 0 {
		return nil
	}

	if w.Available() < wire.TagSize(number)+wire.VarintSize(uint64(size))+size {
		return wire.ErrBufferFull
	}
	if err := wire.EncodeTag(w, number, wire.WireBytes); err != nil {
		return err
	}
	if err := wire.EncodeVarint(w, uint64(size)); err != nil {
		return err
	}
	return m.Serialize(w)
}

// DeserializeMessage reads a length-delimited section into m. The section must
// be complete in r; until it is, wire.ErrEndOfBuffer is returned and nothing is
// consumed. Fields of m are merged, not cleared first.
func DeserializeMessage(m Message, r wire.ReadBuffer, wireType wire.WireType) error {
	if wireType != wire.WireBytes {
		return wire.ErrInvalidWireType
	}

	length, err := wire.DecodeLength(r)
	if err != nil {
		return err
	}
	if length == 0 {
		return nil
	}

	b := m.messageBase()
	b.ResetCursor()
	b.view.R, b.view.N = r, length
	err = m.Deserialize(&b.view)

	// A section that ends inside a tag is truncated.
	if err == nil && b.view.N > 0 {
		err = wire.ErrEndOfBuffer
	}
	b.view.R = nil
	return err
}

// SerializedSize returns the number of bytes Serialize writes for m
func SerializedSize(m Message) (int, error) {
	calc := &m.messageBase().size
	calc.Reset()
	if err := m.Serialize(calc); err != nil {
		return 0, err
	}
	return calc.N, nil
}

// Pending reports the field of m that is waiting for more bytes
func Pending(m Message) (wire.FieldNumber, wire.WireType, bool) {
	return m.messageBase().Pending()
}
