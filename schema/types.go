// Package schema models the parts of .proto files the code generator works
// from: messages, their fields, and enums.
package schema

import "github.com/anirudhraja/embedproto/wire"

// ProtoFile represents a single .proto file
type ProtoFile struct {
	Name     string     // file.proto
	Path     string     // path the file was loaded from
	Package  string     // package name
	Syntax   string     // proto2 or proto3
	Imports  []*Import  // imported files
	Messages []*Message // message definitions
	Enums    []*Enum    // enum definitions
}

// Import represents an import statement
type Import struct {
	Path   string // "sensor/common.proto"
	Public bool   // public import
	Weak   bool   // weak import
}

// Message represents a protobuf message definition
type Message struct {
	Name        string     // "Reading"
	FullName    string     // "sensor.Device.Reading"
	Fields      []*Field   // message fields, in declaration order
	NestedTypes []*Message // nested messages
	NestedEnums []*Enum    // nested enums
	OneofGroups []*Oneof   // oneof groups
}

// Field represents a message field
type Field struct {
	Name   string     // "sample_rate"
	Number int32      // 1
	Label  FieldLabel // optional, required, repeated
	Type   FieldType  // field type information
}

// IsRepeated reports whether the field holds a list of values
func (f *Field) IsRepeated() bool { return f.Label == LabelRepeated }

// Oneof represents a oneof group
type Oneof struct {
	Name   string   // "source"
	Fields []*Field // fields in this oneof
}

// FieldLabel represents field labels
type FieldLabel string

const (
	LabelOptional FieldLabel = "optional"
	LabelRequired FieldLabel = "required"
	LabelRepeated FieldLabel = "repeated"
)

// FieldType represents field type information
type FieldType struct {
	Kind          TypeKind      // primitive, message, enum, map, group
	PrimitiveType PrimitiveType // for primitive types
	TypeName      string        // type name as written in the file, before resolution
	MessageType   string        // for message types: fully qualified name
	EnumType      string        // for enum types: fully qualified name
	MapKey        *FieldType    // for map key type
	MapValue      *FieldType    // for map value type
}

// WireType returns the wire type a single value of this type is encoded with
func (t FieldType) WireType() wire.WireType {
	switch t.Kind {
	case KindEnum:
		return wire.WireVarint
	case KindPrimitive:
		switch t.PrimitiveType {
		case TypeFixed64, TypeSfixed64, TypeDouble:
			return wire.WireFixed64
		case TypeFixed32, TypeSfixed32, TypeFloat:
			return wire.WireFixed32
		case TypeString, TypeBytes:
			return wire.WireBytes
		default:
			return wire.WireVarint
		}
	default:
		return wire.WireBytes
	}
}

// TypeKind represents the kind of field type
type TypeKind string

const (
	KindPrimitive TypeKind = "primitive"
	KindMessage   TypeKind = "message"
	KindEnum      TypeKind = "enum"
	KindMap       TypeKind = "map"
	KindGroup     TypeKind = "group"
	// KindNamed is a reference to a message or enum that has not been resolved yet.
	KindNamed TypeKind = "named"
)

// PrimitiveType represents protobuf primitive types
type PrimitiveType string

const (
	TypeDouble   PrimitiveType = "double"
	TypeFloat    PrimitiveType = "float"
	TypeInt64    PrimitiveType = "int64"
	TypeUint64   PrimitiveType = "uint64"
	TypeInt32    PrimitiveType = "int32"
	TypeFixed64  PrimitiveType = "fixed64"
	TypeFixed32  PrimitiveType = "fixed32"
	TypeBool     PrimitiveType = "bool"
	TypeString   PrimitiveType = "string"
	TypeBytes    PrimitiveType = "bytes"
	TypeUint32   PrimitiveType = "uint32"
	TypeSfixed32 PrimitiveType = "sfixed32"
	TypeSfixed64 PrimitiveType = "sfixed64"
	TypeSint32   PrimitiveType = "sint32"
	TypeSint64   PrimitiveType = "sint64"
)

var primitiveTypes = map[string]PrimitiveType{
	"double":   TypeDouble,
	"float":    TypeFloat,
	"int64":    TypeInt64,
	"uint64":   TypeUint64,
	"int32":    TypeInt32,
	"fixed64":  TypeFixed64,
	"fixed32":  TypeFixed32,
	"bool":     TypeBool,
	"string":   TypeString,
	"bytes":    TypeBytes,
	"uint32":   TypeUint32,
	"sfixed32": TypeSfixed32,
	"sfixed64": TypeSfixed64,
	"sint32":   TypeSint32,
	"sint64":   TypeSint64,
}

// LookupPrimitive returns the primitive type called name
func LookupPrimitive(name string) (PrimitiveType, bool) {
	t, ok := primitiveTypes[name]
	return t, ok
}

// IsPackedType checks and returns if the Primitive type is packed for repeated label
func IsPackedType(t PrimitiveType) bool {
	_, ok := primitiveTypes[string(t)]
	return ok && t != TypeString && t != TypeBytes
}

// Enum represents an enum definition
type Enum struct {
	Name     string       // "Status"
	FullName string       // "sensor.Device.Status"
	Values   []*EnumValue // enum values
}

// EnumValue represents an enum value
type EnumValue struct {
	Name   string // "ACTIVE"
	Number int32  // 1
}
