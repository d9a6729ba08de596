package wire

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType uint8

const (
	WireVarint  WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64 WireType = 1 // fixed64, sfixed64, double
	WireBytes   WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireFixed32 WireType = 5 // fixed32, sfixed32, float
)

// String returns the protobuf name of the wire type
func (wt WireType) String() string {
	switch wt {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "length-delimited"
	case WireFixed32:
		return "fixed32"
	default:
		return "invalid"
	}
}

// FieldNumber represents a protobuf field number
type FieldNumber uint32

// MaxFieldNumber is the largest field number protobuf allows.
const MaxFieldNumber FieldNumber = 1<<29 - 1

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType&0x7))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// TagSize returns the number of bytes the tag of a field occupies on the wire
func TagSize(fieldNumber FieldNumber) int {
	return VarintSize(uint64(MakeTag(fieldNumber, WireVarint)))
}

// EncodeTag writes the tag of a field.
func EncodeTag(w WriteBuffer, fieldNumber FieldNumber, wireType WireType) error {
	return EncodeVarint(w, uint64(MakeTag(fieldNumber, wireType)))
}

// DeserializeTag reads the next tag. Nothing is consumed on failure, so an
// incomplete tag can be read again once more bytes are available.
func DeserializeTag(r ReadBuffer) (FieldNumber, WireType, error) {
	v, n, err := PeekVarint(r, 0)
	if err != nil {
		return 0, 0, err
	}
	if v>>3 == 0 || v>>3 > uint64(MaxFieldNumber) {
		return 0, 0, ErrInvalidFieldID
	}
	if err := r.Advance(n); err != nil {
		return 0, 0, err
	}
	number, wireType := ParseTag(Tag(v))
	return number, wireType, nil
}
