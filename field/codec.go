package field

import (
	"math"

	"github.com/anirudhraja/embedproto/wire"
)

// Codec describes how one scalar protobuf type travels on the wire. Codecs are
// zero-size types used as type parameters, so calling them costs nothing.
type Codec[T comparable] interface {
	WireType() wire.WireType
	Encode(w wire.WriteBuffer, v T) error
	Decode(r wire.ReadBuffer) (T, error)
	Size(v T) int
	IsDefault(v T) bool
	Max() T
}

// ===== VARINT CODECS =====

// Int32Codec encodes int32 as a sign-extended varint
type Int32Codec struct{}

func (Int32Codec) WireType() wire.WireType { return wire.WireVarint }
func (Int32Codec) Encode(w wire.WriteBuffer, v int32) error { return wire.EncodeInteger(w, v) }
func (Int32Codec) Decode(r wire.ReadBuffer) (int32, error) { return wire.DecodeInteger[int32](r) }
func (Int32Codec) Size(v int32) int { return wire.VarintSize(uint64(v)) }
func (Int32Codec) IsDefault(v int32) bool { return v == 0 }
func (Int32Codec) Max() int32 { return math.MaxInt32 }

// Int64Codec encodes int64 as a varint
type Int64Codec struct{}

func (Int64Codec) WireType() wire.WireType { return wire.WireVarint }
func (Int64Codec) Encode(w wire.WriteBuffer, v int64) error { return wire.EncodeInteger(w, v) }
func (Int64Codec) Decode(r wire.ReadBuffer) (int64, error) { return wire.DecodeInteger[int64](r) }
func (Int64Codec) Size(v int64) int { return wire.VarintSize(uint64(v)) }
func (Int64Codec) IsDefault(v int64) bool { return v == 0 }
func (Int64Codec) Max() int64 { return math.MaxInt64 }

// Uint32Codec encodes uint32 as a varint
type Uint32Codec struct{}

func (Uint32Codec) WireType() wire.WireType { return wire.WireVarint }
func (Uint32Codec) Encode(w wire.WriteBuffer, v uint32) error { return wire.EncodeInteger(w, v) }
func (Uint32Codec) Decode(r wire.ReadBuffer) (uint32, error) { return wire.DecodeInteger[uint32](r) }
func (Uint32Codec) Size(v uint32) int { return wire.VarintSize(uint64(v)) }
func (Uint32Codec) IsDefault(v uint32) bool { return v == 0 }
func (Uint32Codec) Max() uint32 { return math.MaxUint32 }

// Uint64Codec encodes uint64 as a varint
type Uint64Codec struct{}

func (Uint64Codec) WireType() wire.WireType { return wire.WireVarint }
func (Uint64Codec) Encode(w wire.WriteBuffer, v uint64) error { return wire.EncodeVarint(w, v) }
func (Uint64Codec) Decode(r wire.ReadBuffer) (uint64, error) { return wire.DecodeVarint(r) }
func (Uint64Codec) Size(v uint64) int { return wire.VarintSize(v) }
func (Uint64Codec) IsDefault(v uint64) bool { return v == 0 }
func (Uint64Codec) Max() uint64 { return math.MaxUint64 }

// Sint32Codec encodes int32 as a zigzag varint
type Sint32Codec struct{}

func (Sint32Codec) WireType() wire.WireType { return wire.WireVarint }
func (Sint32Codec) Encode(w wire.WriteBuffer, v int32) error {
	return wire.EncodeVarint(w, wire.EncodeZigZag32(v))
}
func (Sint32Codec) Decode(r wire.ReadBuffer) (int32, error) {
	v, err := wire.DecodeVarint(r)
	return wire.DecodeZigZag32(v), err
}
func (Sint32Codec) Size(v int32) int { return wire.VarintSize(wire.EncodeZigZag32(v)) }
func (Sint32Codec) IsDefault(v int32) bool { return v == 0 }
func (Sint32Codec) Max() int32 { return math.MaxInt32 }

// Sint64Codec encodes int64 as a zigzag varint
type Sint64Codec struct{}

func (Sint64Codec) WireType() wire.WireType { return wire.WireVarint }
func (Sint64Codec) Encode(w wire.WriteBuffer, v int64) error {
	return wire.EncodeVarint(w, wire.EncodeZigZag64(v))
}
func (Sint64Codec) Decode(r wire.ReadBuffer) (int64, error) {
	v, err := wire.DecodeVarint(r)
	return wire.DecodeZigZag64(v), err
}
func (Sint64Codec) Size(v int64) int { return wire.VarintSize(wire.EncodeZigZag64(v)) }
func (Sint64Codec) IsDefault(v int64) bool { return v == 0 }
func (Sint64Codec) Max() int64 { return math.MaxInt64 }

// BoolCodec encodes bool as a one byte varint
type BoolCodec struct{}

func (BoolCodec) WireType() wire.WireType { return wire.WireVarint }
func (BoolCodec) Encode(w wire.WriteBuffer, v bool) error {
	if v {
		return wire.EncodeVarint(w, 1)
	}
	return wire.EncodeVarint(w, 0)
}
func (BoolCodec) Decode(r wire.ReadBuffer) (bool, error) {
	v, err := wire.DecodeVarint(r)
	return v != 0, err
}
func (BoolCodec) Size(bool) int { return 1 }
func (BoolCodec) IsDefault(v bool) bool { return !v }
func (BoolCodec) Max() bool { return true }

// EnumCodec encodes an enum as a sign-extended varint
type EnumCodec[E ~int32] struct{}

func (EnumCodec[E]) WireType() wire.WireType { return wire.WireVarint }
func (EnumCodec[E]) Encode(w wire.WriteBuffer, v E) error { return wire.EncodeInteger(w, v) }
func (EnumCodec[E]) Decode(r wire.ReadBuffer) (E, error) { return wire.DecodeInteger[E](r) }
func (EnumCodec[E]) Size(v E) int { return wire.VarintSize(uint64(v)) }
func (EnumCodec[E]) IsDefault(v E) bool { return v == 0 }
func (EnumCodec[E]) Max() E { return E(math.MaxInt32) }

// ===== FIXED WIDTH CODECS =====

// Fixed32Codec encodes uint32 as 4 little-endian bytes
type Fixed32Codec struct{}

func (Fixed32Codec) WireType() wire.WireType { return wire.WireFixed32 }
func (Fixed32Codec) Encode(w wire.WriteBuffer, v uint32) error { return wire.EncodeFixed32(w, v) }
func (Fixed32Codec) Decode(r wire.ReadBuffer) (uint32, error) { return wire.DecodeFixed32(r) }
func (Fixed32Codec) Size(uint32) int { return wire.Fixed32Size }
func (Fixed32Codec) IsDefault(v uint32) bool { return v == 0 }
func (Fixed32Codec) Max() uint32 { return math.MaxUint32 }

// Fixed64Codec encodes uint64 as 8 little-endian bytes
type Fixed64Codec struct{}

func (Fixed64Codec) WireType() wire.WireType { return wire.WireFixed64 }
func (Fixed64Codec) Encode(w wire.WriteBuffer, v uint64) error { return wire.EncodeFixed64(w, v) }
func (Fixed64Codec) Decode(r wire.ReadBuffer) (uint64, error) { return wire.DecodeFixed64(r) }
func (Fixed64Codec) Size(uint64) int { return wire.Fixed64Size }
func (Fixed64Codec) IsDefault(v uint64) bool { return v == 0 }
func (Fixed64Codec) Max() uint64 { return math.MaxUint64 }

// Sfixed32Codec encodes int32 as 4 little-endian bytes
type Sfixed32Codec struct{}

func (Sfixed32Codec) WireType() wire.WireType { return wire.WireFixed32 }
func (Sfixed32Codec) Encode(w wire.WriteBuffer, v int32) error {
	return wire.EncodeFixed32(w, uint32(v))
}
func (Sfixed32Codec) Decode(r wire.ReadBuffer) (int32, error) {
	v, err := wire.DecodeFixed32(r)
	return int32(v), err
}
func (Sfixed32Codec) Size(int32) int { return wire.Fixed32Size }
func (Sfixed32Codec) IsDefault(v int32) bool { return v == 0 }
func (Sfixed32Codec) Max() int32 { return math.MaxInt32 }

// Sfixed64Codec encodes int64 as 8 little-endian bytes
type Sfixed64Codec struct{}

func (Sfixed64Codec) WireType() wire.WireType { return wire.WireFixed64 }
func (Sfixed64Codec) Encode(w wire.WriteBuffer, v int64) error {
	return wire.EncodeFixed64(w, uint64(v))
}
func (Sfixed64Codec) Decode(r wire.ReadBuffer) (int64, error) {
	v, err := wire.DecodeFixed64(r)
	return int64(v), err
}
func (Sfixed64Codec) Size(int64) int { return wire.Fixed64Size }
func (Sfixed64Codec) IsDefault(v int64) bool { return v == 0 }
func (Sfixed64Codec) Max() int64 { return math.MaxInt64 }

// FloatCodec encodes float32 as fixed32. Negative zero is not a default value.
type FloatCodec struct{}

func (FloatCodec) WireType() wire.WireType { return wire.WireFixed32 }
func (FloatCodec) Encode(w wire.WriteBuffer, v float32) error { return wire.EncodeFloat32(w, v) }
func (FloatCodec) Decode(r wire.ReadBuffer) (float32, error) { return wire.DecodeFloat32(r) }
func (FloatCodec) Size(float32) int { return wire.Fixed32Size }
func (FloatCodec) IsDefault(v float32) bool { return math.Float32bits(v) == 0 }
func (FloatCodec) Max() float32 { return math.MaxFloat32 }

// DoubleCodec encodes float64 as fixed64. Negative zero is not a default value.
type DoubleCodec struct{}

func (DoubleCodec) WireType() wire.WireType { return wire.WireFixed64 }
func (DoubleCodec) Encode(w wire.WriteBuffer, v float64) error { return wire.EncodeFloat64(w, v) }
func (DoubleCodec) Decode(r wire.ReadBuffer) (float64, error) { return wire.DecodeFloat64(r) }
func (DoubleCodec) Size(float64) int { return wire.Fixed64Size }
func (DoubleCodec) IsDefault(v float64) bool { return math.Float64bits(v) == 0 }
func (DoubleCodec) Max() float64 { return math.MaxFloat64 }
