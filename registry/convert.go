package registry

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/anirudhraja/embedproto/schema"
)

// convertProto builds the schema of a parsed file. Field types naming other
// definitions stay KindNamed until the symbol table is built.
func convertProto(filePath string, proto *parser.Proto) (*schema.ProtoFile, error) {
	protoFile := &schema.ProtoFile{
		Name:   filepath.Base(filePath),
		Path:   filePath,
		Syntax: "proto2", // protoc's default when the syntax statement is missing
	}
	if proto.Syntax != nil {
		protoFile.Syntax = proto.Syntax.ProtobufVersion
	}

	// The package scopes every definition, wherever the statement appears.
	for _, body := range proto.ProtoBody {
		if pkg, ok := body.(*parser.Package); ok {
			protoFile.Package = pkg.Name
		}
	}

	for _, body := range proto.ProtoBody {
		switch b := body.(type) {
		case *parser.Import:
			protoFile.Imports = append(protoFile.Imports, &schema.Import{
				Path:   strings.Trim(b.Location, `"'`),
				Public: b.Modifier == parser.ImportModifierPublic,
				Weak:   b.Modifier == parser.ImportModifierWeak,
			})
		case *parser.Message:
			msg, err := convertMessage(protoFile.Package, b)
			if err != nil {
				return nil, err
			}
			protoFile.Messages = append(protoFile.Messages, msg)
		case *parser.Enum:
			enum, err := convertEnum(protoFile.Package, b)
			if err != nil {
				return nil, err
			}
			protoFile.Enums = append(protoFile.Enums, enum)
		}
	}
	return protoFile, nil
}

func convertMessage(scope string, m *parser.Message) (*schema.Message, error) {
	msg := &schema.Message{
		Name:     m.MessageName,
		FullName: qualify(scope, m.MessageName),
	}

	for _, body := range m.MessageBody {
		switch b := body.(type) {
		case *parser.Field:
			number, err := parseFieldNumber(b.FieldNumber)
			if err != nil {
				return nil, fmt.Errorf("field %s.%s: %w", msg.FullName, b.FieldName, err)
			}
			msg.Fields = append(msg.Fields, &schema.Field{
				Name:   b.FieldName,
				Number: number,
				Label:  fieldLabel(b.IsRepeated, b.IsRequired),
				Type:   typeFromName(b.Type),
			})
		case *parser.MapField:
			number, err := parseFieldNumber(b.FieldNumber)
			if err != nil {
				return nil, fmt.Errorf("field %s.%s: %w", msg.FullName, b.MapName, err)
			}
			key, value := typeFromName(b.KeyType), typeFromName(b.Type)
			msg.Fields = append(msg.Fields, &schema.Field{
				Name:   b.MapName,
				Number: number,
				Label:  schema.LabelRepeated,
				Type:   schema.FieldType{Kind: schema.KindMap, MapKey: &key, MapValue: &value},
			})
		case *parser.GroupField:
			number, err := parseFieldNumber(b.FieldNumber)
			if err != nil {
				return nil, fmt.Errorf("field %s.%s: %w", msg.FullName, b.GroupName, err)
			}
			msg.Fields = append(msg.Fields, &schema.Field{
				Name:   b.GroupName,
				Number: number,
				Label:  fieldLabel(b.IsRepeated, b.IsRequired),
				Type:   schema.FieldType{Kind: schema.KindGroup, TypeName: b.GroupName},
			})
		case *parser.Oneof:
			oneof := &schema.Oneof{Name: b.OneofName}
			for _, f := range b.OneofFields {
				number, err := parseFieldNumber(f.FieldNumber)
				if err != nil {
					return nil, fmt.Errorf("field %s.%s: %w", msg.FullName, f.FieldName, err)
				}
				oneof.Fields = append(oneof.Fields, &schema.Field{
					Name:   f.FieldName,
					Number: number,
					Label:  schema.LabelOptional,
					Type:   typeFromName(f.Type),
				})
			}
			msg.OneofGroups = append(msg.OneofGroups, oneof)
		case *parser.Message:
			nested, err := convertMessage(msg.FullName, b)
			if err != nil {
				return nil, err
			}
			msg.NestedTypes = append(msg.NestedTypes, nested)
		case *parser.Enum:
			nested, err := convertEnum(msg.FullName, b)
			if err != nil {
				return nil, err
			}
			msg.NestedEnums = append(msg.NestedEnums, nested)
		}
	}
	return msg, nil
}

func convertEnum(scope string, e *parser.Enum) (*schema.Enum, error) {
	enum := &schema.Enum{
		Name:     e.EnumName,
		FullName: qualify(scope, e.EnumName),
	}
	for _, body := range e.EnumBody {
		field, ok := body.(*parser.EnumField)
		if !ok {
			continue
		}
		number, err := strconv.ParseInt(field.Number, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("enum value %s.%s: invalid number %q", enum.FullName, field.Ident, field.Number)
		}
		enum.Values = append(enum.Values, &schema.EnumValue{Name: field.Ident, Number: int32(number)})
	}
	return enum, nil
}

func parseFieldNumber(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid field number %q", s)
	}
	return int32(n), nil
}

func fieldLabel(repeated, required bool) schema.FieldLabel {
	switch {
	case repeated:
		return schema.LabelRepeated
	case required:
		return schema.LabelRequired
	default:
		return schema.LabelOptional
	}
}

func typeFromName(name string) schema.FieldType {
	if t, ok := schema.LookupPrimitive(name); ok {
		return schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: t}
	}
	return schema.FieldType{Kind: schema.KindNamed, TypeName: name}
}

func qualify(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}
