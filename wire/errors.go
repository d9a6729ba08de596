package wire

// Error is the closed set of outcomes of the codec. A nil error means no errors.
//
// Error values are small integers, so returning one as an error never allocates.
type Error uint8

const (
	// ErrEndOfBuffer means there are not enough bytes to complete the operation.
	// At a tag boundary it marks the end of a message; mid-field it means the
	// caller should retry once more bytes are available.
	ErrEndOfBuffer Error = iota + 1
	// ErrBufferFull means a write does not fit in the remaining capacity.
	ErrBufferFull
	// ErrInvalidWireType means the wire type of a tag does not match the field.
	ErrInvalidWireType
	// ErrInvalidFieldID means a tag carries field number 0 or one above MaxFieldNumber.
	ErrInvalidFieldID
	// ErrOverlongVarint means a varint does not terminate within 10 bytes or overflows 64 bits.
	ErrOverlongVarint
	// ErrArrayFull means a fixed-capacity field has no room for more data.
	ErrArrayFull
	// ErrIndexOutOfBound means an element index is outside the stored elements.
	ErrIndexOutOfBound
)

var errorText = [...]string{
	ErrEndOfBuffer:     "end of buffer",
	ErrBufferFull:      "buffer full",
	ErrInvalidWireType: "invalid wire type",
	ErrInvalidFieldID:  "invalid field id",
	ErrOverlongVarint:  "overlong varint",
	ErrArrayFull:       "array full",
	ErrIndexOutOfBound: "index out of bound",
}

// Error implements the error interface.
func (e Error) Error() string {
	if int(e) < len(errorText) && errorText[e] != "" {
		return "wire: " + errorText[e]
	}
	return "wire: unknown error"
}
