// Package field defines the Field capability every serializable member of a
// message implements, the concrete field kinds, and the message dispatcher that
// routes tags to fields through a static field table.
package field

import "github.com/anirudhraja/embedproto/wire"

// Field is a unit of serializable state.
type Field interface {
	// SerializeWithID writes the tag and payload of the field. When optional is
	// true and the field holds its default value, nothing may be written.
	SerializeWithID(number wire.FieldNumber, w wire.WriteBuffer, optional bool) error

	// Deserialize reads the payload of the field. The tag and its wire type
	// have already been consumed and validated.
	Deserialize(r wire.ReadBuffer) error

	// DeserializeCheckType validates the wire type of the tag before reading
	// the payload, failing with wire.ErrInvalidWireType on a mismatch.
	DeserializeCheckType(r wire.ReadBuffer, wireType wire.WireType) error

	// Clear resets the field to its protobuf default.
	Clear()

	// SetMaxValue sets the field to the largest value its type can hold. It is
	// meant for boundary tests.
	SetMaxValue()
}

// Ref associates a field of a message with its field number. Refs are built
// fresh for every call that walks a field table and never own the field.
//
// DeserializeFields sets Present on the Refs of the fields it reads. It lives
// in the table passed to that call, so a caller that needs presence must keep
// the table; generated messages build theirs per call and discard it.
type Ref struct {
	Field   Field
	Number  wire.FieldNumber
	Present bool
}

// SerializeFields serializes every field of a table in order, omitting fields
// that hold their default value.
func SerializeFields(w wire.WriteBuffer, fields []Ref) error {
	for i := range fields {
		if err := fields[i].Field.SerializeWithID(fields[i].Number, w, true); err != nil {
			return err
		}
	}
	return nil
}

// ClearFields clears every field of a table.
func ClearFields(fields []Ref) {
	for i := range fields {
		fields[i].Field.Clear()
	}
}

// SetMaxFields sets every field of a table to its maximum value.
func SetMaxFields(fields []Ref) {
	for i := range fields {
		fields[i].Field.SetMaxValue()
	}
}
