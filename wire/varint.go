package wire

import "golang.org/x/exp/constraints"

// MaxVarintLen64 is the maximum number of bytes of a 64-bit varint
const MaxVarintLen64 = 10

// DECODER FUNCTIONS

// PeekVarint decodes the varint starting offset bytes into r without consuming
// it. It returns the value and the number of bytes the varint occupies.
func PeekVarint(r ReadBuffer, offset int) (uint64, int, error) {
	var result uint64

	for i := 0; i < MaxVarintLen64; i++ {
		b, err := r.Peek(offset + i)
		if err != nil {
			return 0, 0, err
		}

		// The tenth byte may only contribute the top bit of a uint64.
		if i == MaxVarintLen64-1 && b > 1 {
			return 0, 0, ErrOverlongVarint
		}

		result |= uint64(b&0x7F) << (7 * i)

		if b&0x80 == 0 {
			return result, i + 1, nil
		}
	}

	return 0, 0, ErrOverlongVarint
}

// DecodeVarint decodes a varint from the current position. Nothing is consumed
// on failure.
func DecodeVarint(r ReadBuffer) (uint64, error) {
	v, n, err := PeekVarint(r, 0)
	if err != nil {
		return 0, err
	}
	return v, r.Advance(n)
}

// SkipVarint skips over a varint without keeping its value
func SkipVarint(r ReadBuffer) error {
	_, err := DecodeVarint(r)
	return err
}

// DecodeInteger decodes a varint and truncates it to T. Negative int32 values
// travel as sign-extended 64-bit varints, so truncation restores them.
func DecodeInteger[T constraints.Integer](r ReadBuffer) (T, error) {
	v, err := DecodeVarint(r)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

// ENCODER FUNCTIONS

// EncodeVarint encodes a uint64 as varint. Nothing is written when the varint
// does not fit.
func EncodeVarint(w WriteBuffer, v uint64) error {
	if w.Available() < VarintSize(v) {
		return ErrBufferFull
	}
	for v >= 0x80 {
		if err := w.WriteByte(byte(v) | 0x80); err != nil {
			return err
		}
		v >>= 7
	}
	return w.WriteByte(byte(v))
}

// EncodeInteger encodes any integer as varint, sign-extending signed values to 64 bits
func EncodeInteger[T constraints.Integer](w WriteBuffer, v T) error {
	return EncodeVarint(w, uint64(v))
}

// UTILITY FUNCTIONS

// DecodeZigZag32 decodes a zigzag-encoded 32-bit integer
func DecodeZigZag32(encoded uint64) int32 {
	return int32((uint32(encoded) >> 1) ^ uint32(-int32(encoded&1)))
}

// DecodeZigZag64 decodes a zigzag-encoded 64-bit integer
func DecodeZigZag64(encoded uint64) int64 {
	return int64((encoded >> 1) ^ uint64(-int64(encoded&1)))
}

// EncodeZigZag32 encodes a signed 32-bit integer using zigzag encoding
func EncodeZigZag32(v int32) uint64 {
	return uint64((uint32(v) << 1) ^ uint32(v>>31))
}

// EncodeZigZag64 encodes a signed 64-bit integer using zigzag encoding
func EncodeZigZag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// VarintSize returns the number of bytes needed to encode the given varint
func VarintSize(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	default:
		return 10
	}
}
