package field

// Enum is a singular enum field. Values not declared by the enum are kept as
// their number, as proto3 requires.
type Enum[E ~int32] struct {
	Scalar[E, EnumCodec[E]]
}

// RepeatedEnum is a repeated enum field, packed on the wire.
type RepeatedEnum[E ~int32] struct {
	RepeatedScalar[E, EnumCodec[E]]
}
