package field

import "github.com/anirudhraja/embedproto/wire"

// RepeatedScalar is a repeated scalar field stored in caller-provided storage.
// It is written packed and read in both packed and unpacked form.
type RepeatedScalar[T comparable, C Codec[T]] struct {
	items []T
	n     int
}

// Repeated scalar field kinds, one per protobuf scalar type.
type (
	RepeatedInt32    = RepeatedScalar[int32, Int32Codec]
	RepeatedInt64    = RepeatedScalar[int64, Int64Codec]
	RepeatedUint32   = RepeatedScalar[uint32, Uint32Codec]
	RepeatedUint64   = RepeatedScalar[uint64, Uint64Codec]
	RepeatedSint32   = RepeatedScalar[int32, Sint32Codec]
	RepeatedSint64   = RepeatedScalar[int64, Sint64Codec]
	RepeatedBool     = RepeatedScalar[bool, BoolCodec]
	RepeatedFixed32  = RepeatedScalar[uint32, Fixed32Codec]
	RepeatedFixed64  = RepeatedScalar[uint64, Fixed64Codec]
	RepeatedSfixed32 = RepeatedScalar[int32, Sfixed32Codec]
	RepeatedSfixed64 = RepeatedScalar[int64, Sfixed64Codec]
	RepeatedFloat    = RepeatedScalar[float32, FloatCodec]
	RepeatedDouble   = RepeatedScalar[float64, DoubleCodec]
)

// Init binds the field to storage and empties it
func (f *RepeatedScalar[T, C]) Init(storage []T) {
	f.items = storage
	f.n = 0
}

// Len returns the number of stored elements
func (f *RepeatedScalar[T, C]) Len() int { return f.n }

// Cap returns the maximum number of elements
func (f *RepeatedScalar[T, C]) Cap() int { return len(f.items) }

// Items returns the stored elements. The slice aliases the storage.
func (f *RepeatedScalar[T, C]) Items() []T { return f.items[:f.n] }

// Get returns the element at index i
func (f *RepeatedScalar[T, C]) Get(i int) (T, error) {
	if i < 0 || i >= f.n {
		var zero T
		return zero, wire.ErrIndexOutOfBound
	}
	return f.items[i], nil
}

// Set replaces the element at index i
func (f *RepeatedScalar[T, C]) Set(i int, v T) error {
	if i < 0 || i >= f.n {
		return wire.ErrIndexOutOfBound
	}
	f.items[i] = v
	return nil
}

// Append adds an element at the end
func (f *RepeatedScalar[T, C]) Append(v T) error {
	if f.n >= len(f.items) {
		return wire.ErrArrayFull
	}
	f.items[f.n] = v
	f.n++
	return nil
}

// SerializeWithID writes all elements as one packed field. An empty field is
// never written.
func (f *RepeatedScalar[T, C]) SerializeWithID(number wire.FieldNumber, w wire.WriteBuffer, _ bool) error {
	if f.n == 0 {
		return nil
	}

	var c C
	size := 0
	for _, v := range f.items[:f.n] {
		size += c.Size(v)
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
	for _, v := range f.items[:f.n] {
		if err := c.Encode(w, v); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads a packed payload and appends its elements
func (f *RepeatedScalar[T, C]) Deserialize(r wire.ReadBuffer) error {
	length, err := wire.DecodeLength(r)
	if err != nil {
		return err
	}

	var c C
	start := r.Len()
	for start-r.Len() < length {
		v, err := c.Decode(r)
		if err != nil {
			return err
		}
		if err := f.Append(v); err != nil {
			return err
		}
	}

	// The last element ran past the end of the packed section.
	if start-r.Len() != length {
		return wire.ErrEndOfBuffer
	}
	return nil
}

// DeserializeCheckType accepts a packed payload or a single unpacked element
func (f *RepeatedScalar[T, C]) DeserializeCheckType(r wire.ReadBuffer, wireType wire.WireType) error {
	var c C
	switch wireType {
	case wire.WireBytes:
		return f.Deserialize(r)
	case c.WireType():
		if f.n >= len(f.items) {
			return wire.ErrArrayFull
		}
		v, err := c.Decode(r)
		if err != nil {
			return err
		}
		return f.Append(v)
	default:
		return wire.ErrInvalidWireType
	}
}

// Clear removes all elements
func (f *RepeatedScalar[T, C]) Clear() { f.n = 0 }

// SetMaxValue fills the storage with the maximum value of the element type
func (f *RepeatedScalar[T, C]) SetMaxValue() {
	var c C
	for i := range f.items {
		f.items[i] = c.Max()
	}
	f.n = len(f.items)
}

// messagePtr is satisfied by pointers to generated message types
type messagePtr[M any] interface {
	*M
	Message
}

// RepeatedMessage is a repeated message field stored in caller-provided
// storage. Every element travels as its own length-delimited field.
type RepeatedMessage[M any, PM messagePtr[M]] struct {
	items []M
	n     int
}

// Init binds the field to storage and empties it
func (f *RepeatedMessage[M, PM]) Init(storage []M) {
	f.items = storage
	f.n = 0
}

// Len returns the number of stored elements
func (f *RepeatedMessage[M, PM]) Len() int { return f.n }

// Cap returns the maximum number of elements
func (f *RepeatedMessage[M, PM]) Cap() int { return len(f.items) }

// Get returns the element at index i
func (f *RepeatedMessage[M, PM]) Get(i int) (PM, error) {
	if i < 0 || i >= f.n {
		return nil, wire.ErrIndexOutOfBound
	}
	return PM(&f.items[i]), nil
}

// Add appends a cleared element and returns it for filling in
func (f *RepeatedMessage[M, PM]) Add() (PM, error) {
	if f.n >= len(f.items) {
		return nil, wire.ErrArrayFull
	}
	m := PM(&f.items[f.n])
	m.Clear()
	f.n++
	return m, nil
}

// SerializeWithID writes every element, including empty ones
func (f *RepeatedMessage[M, PM]) SerializeWithID(number wire.FieldNumber, w wire.WriteBuffer, _ bool) error {
	for i := 0; i < f.n; i++ {
		if err := PM(&f.items[i]).SerializeWithID(number, w, false); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads one length-delimited element and appends it
func (f *RepeatedMessage[M, PM]) Deserialize(r wire.ReadBuffer) error {
	if f.n >= len(f.items) {
		return wire.ErrArrayFull
	}
	m := PM(&f.items[f.n])
	m.Clear()
	if err := DeserializeMessage(m, r, wire.WireBytes); err != nil {
		return err
	}
	f.n++
	return nil
}

// DeserializeCheckType reads one element if wireType is length-delimited
func (f *RepeatedMessage[M, PM]) DeserializeCheckType(r wire.ReadBuffer, wireType wire.WireType) error {
	if wireType != wire.WireBytes {
		return wire.ErrInvalidWireType
	}
	return f.Deserialize(r)
}

// Clear removes all elements
func (f *RepeatedMessage[M, PM]) Clear() { f.n = 0 }

// SetMaxValue fills the storage with elements set to their maximum values
func (f *RepeatedMessage[M, PM]) SetMaxValue() {
	for i := range f.items {
		m := PM(&f.items[i])
		m.Clear()
		m.SetMaxValue()
	}
	f.n = len(f.items)
}
