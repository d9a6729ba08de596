package field

import "github.com/anirudhraja/embedproto/wire"

// Bytes is a bytes field stored in caller-provided storage. Its capacity is the
// length of that storage and never changes.
type Bytes struct {
	buf []byte
	n   int
}

// Init binds the field to storage and empties it
func (b *Bytes) Init(storage []byte) {
	b.buf = storage
	b.n = 0
}

// Get returns the stored bytes. The slice aliases the storage.
func (b *Bytes) Get() []byte { return b.buf[:b.n] }

// Set copies p into the storage
func (b *Bytes) Set(p []byte) error {
	if len(p) > len(b.buf) {
		return wire.ErrArrayFull
	}
	b.n = copy(b.buf, p)
	return nil
}

// Len returns the number of stored bytes
func (b *Bytes) Len() int { return b.n }

// Cap returns the capacity of the storage
func (b *Bytes) Cap() int { return len(b.buf) }

// SerializeWithID writes tag and payload, or nothing when optional and empty
func (b *Bytes) SerializeWithID(number wire.FieldNumber, w wire.WriteBuffer, optional bool) error {
	if optional && b.n == 0 {
		return nil
	}
	if err := wire.EncodeTag(w, number, wire.WireBytes); err != nil {
		return err
	}
	return wire.EncodeBytes(w, b.buf[:b.n])
}

// Deserialize replaces the content with the length-delimited payload
func (b *Bytes) Deserialize(r wire.ReadBuffer) error {
	p, err := wire.DecodeBytes(r, b.buf)
	if err != nil {
		return err
	}
	b.n = len(p)
	return nil
}

// DeserializeCheckType reads the payload if wireType is length-delimited
func (b *Bytes) DeserializeCheckType(r wire.ReadBuffer, wireType wire.WireType) error {
	if wireType != wire.WireBytes {
		return wire.ErrInvalidWireType
	}
	return b.Deserialize(r)
}

// Clear empties the field
func (b *Bytes) Clear() { b.n = 0 }

// SetMaxValue fills the whole storage with 0xFF
func (b *Bytes) SetMaxValue() {
	for i := range b.buf {
		b.buf[i] = 0xFF
	}
	b.n = len(b.buf)
}

// String is a string field stored in caller-provided storage.
type String struct {
	Bytes
}

// GetString returns a copy of the content as a Go string
func (s *String) GetString() string { return string(s.Get()) }

// SetString copies v into the storage
func (s *String) SetString(v string) error {
	if len(v) > len(s.buf) {
		return wire.ErrArrayFull
	}
	s.n = copy(s.buf, v)
	return nil
}

// SetMaxValue fills the whole storage with '~', the highest printable ASCII
// character, so the content stays valid UTF-8.
func (s *String) SetMaxValue() {
	for i := range s.buf {
		s.buf[i] = '~'
	}
	s.n = len(s.buf)
}
