package wire

// DECODER FUNCTIONS

// DecodeLength reads the length prefix of a length-delimited field. It only
// consumes the prefix once the whole payload is readable, so a truncated field
// can be retried from its prefix later.
func DecodeLength(r ReadBuffer) (int, error) {
	length, n, err := PeekVarint(r, 0)
	if err != nil {
		return 0, err
	}

	if length > uint64(r.Len()-n) {
		return 0, ErrEndOfBuffer
	}

	if err := r.Advance(n); err != nil {
		return 0, err
	}
	return int(length), nil
}

// DecodeBytes copies a length-delimited payload into dst and returns the used
// part of dst. A payload larger than dst fails with ErrArrayFull.
func DecodeBytes(r ReadBuffer, dst []byte) ([]byte, error) {
	length, n, err := PeekVarint(r, 0)
	if err != nil {
		return nil, err
	}

	if length > uint64(r.Len()-n) {
		return nil, ErrEndOfBuffer
	}
	if length > uint64(len(dst)) {
		return nil, ErrArrayFull
	}

	if err := r.Advance(n); err != nil {
		return nil, err
	}
	dst = dst[:length]
	if err := r.ReadFull(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// SkipBytes skips over a length-delimited payload
func SkipBytes(r ReadBuffer) error {
	length, err := DecodeLength(r)
	if err != nil {
		return err
	}
	return r.Advance(length)
}

// ENCODER FUNCTIONS

// EncodeBytes encodes a byte array as length-delimited. Nothing is written when
// prefix and payload together do not fit.
func EncodeBytes(w WriteBuffer, data []byte) error {
	if w.Available() < BytesSize(data) {
		return ErrBufferFull
	}
	if err := EncodeVarint(w, uint64(len(data))); err != nil {
		return err
	}
	return w.WriteBytes(data)
}

// UTILITY FUNCTIONS

// BytesSize returns the size needed to encode the given bytes
func BytesSize(data []byte) int {
	return VarintSize(uint64(len(data))) + len(data)
}
