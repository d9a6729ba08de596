package wire

// SkipField moves r past the payload of a field whose tag has already been
// read. It is how fields unknown to the local schema are dropped.
func SkipField(r ReadBuffer, wireType WireType) error {
	switch wireType {
	case WireVarint:
		return SkipVarint(r)
	case WireFixed64:
		return r.Advance(Fixed64Size)
	case WireBytes:
		return SkipBytes(r)
	case WireFixed32:
		return r.Advance(Fixed32Size)
	default:
		return ErrInvalidWireType
	}
}
