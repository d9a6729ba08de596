package field

import "github.com/anirudhraja/embedproto/wire"

// Scalar is a singular numeric or bool field whose wire form is described by C.
type Scalar[T comparable, C Codec[T]] struct {
	value T
}

// Scalar field kinds, one per protobuf scalar type.
type (
	Int32    = Scalar[int32, Int32Codec]
	Int64    = Scalar[int64, Int64Codec]
	Uint32   = Scalar[uint32, Uint32Codec]
	Uint64   = Scalar[uint64, Uint64Codec]
	Sint32   = Scalar[int32, Sint32Codec]
	Sint64   = Scalar[int64, Sint64Codec]
	Bool     = Scalar[bool, BoolCodec]
	Fixed32  = Scalar[uint32, Fixed32Codec]
	Fixed64  = Scalar[uint64, Fixed64Codec]
	Sfixed32 = Scalar[int32, Sfixed32Codec]
	Sfixed64 = Scalar[int64, Sfixed64Codec]
	Float    = Scalar[float32, FloatCodec]
	Double   = Scalar[float64, DoubleCodec]
)

// Get returns the current value
func (s *Scalar[T, C]) Get() T { return s.value }

// Set replaces the current value
func (s *Scalar[T, C]) Set(v T) { s.value = v }

// SerializeWithID writes tag and value, or nothing when optional and default
func (s *Scalar[T, C]) SerializeWithID(number wire.FieldNumber, w wire.WriteBuffer, optional bool) error {
	var c C
	if optional && c.IsDefault(s.value) {
		return nil
	}
	if err := wire.EncodeTag(w, number, c.WireType()); err != nil {
		return err
	}
	return c.Encode(w, s.value)
}

// Deserialize reads the value. The field is left untouched on failure.
func (s *Scalar[T, C]) Deserialize(r wire.ReadBuffer) error {
	var c C
	v, err := c.Decode(r)
	if err != nil {
		return err
	}
	s.value = v
	return nil
}

// DeserializeCheckType reads the value if wireType matches the codec
func (s *Scalar[T, C]) DeserializeCheckType(r wire.ReadBuffer, wireType wire.WireType) error {
	var c C
	if wireType != c.WireType() {
		return wire.ErrInvalidWireType
	}
	return s.Deserialize(r)
}

// Clear sets the value to zero
func (s *Scalar[T, C]) Clear() {
	var zero T
	s.value = zero
}

// SetMaxValue sets the largest value of the type
func (s *Scalar[T, C]) SetMaxValue() {
	var c C
	s.value = c.Max()
}
