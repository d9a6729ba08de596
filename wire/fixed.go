package wire

import "math"

// DECODER FUNCTIONS

// DecodeFixed32 decodes a 32-bit little-endian value
func DecodeFixed32(r ReadBuffer) (uint32, error) {
	if r.Len() < Fixed32Size {
		return 0, ErrEndOfBuffer
	}

	var value uint32
	for i := 0; i < Fixed32Size; i++ {
		b, err := r.Peek(i)
		if err != nil {
			return 0, err
		}
		value |= uint32(b) << (8 * i)
	}
	return value, r.Advance(Fixed32Size)
}

// DecodeFixed64 decodes a 64-bit little-endian value
func DecodeFixed64(r ReadBuffer) (uint64, error) {
	if r.Len() < Fixed64Size {
		return 0, ErrEndOfBuffer
	}

	var value uint64
	for i := 0; i < Fixed64Size; i++ {
		b, err := r.Peek(i)
		if err != nil {
			return 0, err
		}
		value |= uint64(b) << (8 * i)
	}
	return value, r.Advance(Fixed64Size)
}

// DecodeFloat32 decodes a 32-bit float from fixed32 data
func DecodeFloat32(r ReadBuffer) (float32, error) {
	v, err := DecodeFixed32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// DecodeFloat64 decodes a 64-bit float from fixed64 data
func DecodeFloat64(r ReadBuffer) (float64, error) {
	v, err := DecodeFixed64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ENCODER FUNCTIONS

// EncodeFixed32 encodes a 32-bit value little-endian
func EncodeFixed32(w WriteBuffer, v uint32) error {
	if w.Available() < Fixed32Size {
		return ErrBufferFull
	}
	for i := 0; i < Fixed32Size; i++ {
		if err := w.WriteByte(byte(v >> (8 * i))); err != nil {
			return err
		}
	}
	return nil
}

// EncodeFixed64 encodes a 64-bit value little-endian
func EncodeFixed64(w WriteBuffer, v uint64) error {
	if w.Available() < Fixed64Size {
		return ErrBufferFull
	}
	for i := 0; i < Fixed64Size; i++ {
		if err := w.WriteByte(byte(v >> (8 * i))); err != nil {
			return err
		}
	}
	return nil
}

// EncodeFloat32 encodes a 32-bit float as fixed32
func EncodeFloat32(w WriteBuffer, v float32) error {
	return EncodeFixed32(w, math.Float32bits(v))
}

// EncodeFloat64 encodes a 64-bit float as fixed64
func EncodeFloat64(w WriteBuffer, v float64) error {
	return EncodeFixed64(w, math.Float64bits(v))
}

// UTILITY

const (
	// Fixed32Size is the size of a fixed32 value
	Fixed32Size = 4
	// Fixed64Size is the size of a fixed64 value
	Fixed64Size = 8
)
