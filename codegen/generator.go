// Package codegen generates Go message types for embedproto from a resolved
// schema. Every generated message keeps its variable-size fields in inline
// arrays sized by Config, so using it never allocates.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/anirudhraja/embedproto"
	"github.com/anirudhraja/embedproto/schema"
	"github.com/anirudhraja/embedproto/wire"
)

// Resolver looks up message definitions by fully qualified name.
// *registry.Registry implements it.
type Resolver interface {
	GetMessage(name string) (*schema.Message, error)
}

// Generator turns the files of a loaded schema into Go source.
// It is safe for concurrent use.
type Generator struct {
	cfg      Config
	resolver Resolver
}

// New creates a generator. Capacities in cfg are used as given, so start from
// DefaultConfig; a variable-size field whose capacity is not positive fails
// generation with ErrCapacity.
func New(cfg Config, resolver Resolver) *Generator {
	return &Generator{cfg: cfg, resolver: resolver}
}

type fileData struct {
	Source       string
	Package      string
	VersionMajor int
	VersionMinor int
	Enums        []*enumData
	Messages     []*messageData
}

type enumData struct {
	GoName   string
	FullName string
	Values   []*enumValueData
	Names    []*enumValueData // first value of every number, for String
}

type enumValueData struct {
	GoName     string
	EnumGoName string
	Name       string
	Number     int32
}

type messageData struct {
	GoName   string
	FullName string
	Fields   []*fieldData
	Storage  []*fieldData // fields bound to inline storage
}

type fieldData struct {
	GoName      string
	GoType      string
	Number      int32
	FieldGoName string
	StorageName string
	StorageType string
}

// Generate returns the formatted Go source for file
func (g *Generator) Generate(file *schema.ProtoFile) ([]byte, error) {
	data := &fileData{
		Source:       file.Name,
		Package:      g.cfg.Package,
		VersionMajor: embedproto.VersionMajor,
		VersionMinor: embedproto.VersionMinor,
	}
	if data.Package == "" {
		data.Package = goPackageName(file.Package, file.Name)
	}

	for _, enum := range file.Enums {
		if err := g.addEnum(data, file.Package, enum); err != nil {
			return nil, err
		}
	}
	for _, msg := range file.Messages {
		if err := g.addMessage(data, file.Package, msg); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code for %s: %w", file.Name, err)
	}
	return src, nil
}

func (g *Generator) addEnum(data *fileData, pkg string, enum *schema.Enum) error {
	goName, ok := goTypeName(enum.FullName, pkg)
	if !ok {
		return &FieldError{FieldPath: []string{enum.FullName}, Err: ErrForeignType}
	}

	ed := &enumData{GoName: goName, FullName: enum.FullName}
	seen := make(map[int32]struct{}, len(enum.Values))
	for _, v := range enum.Values {
		vd := &enumValueData{
			GoName:     goName + "_" + v.Name,
			EnumGoName: goName,
			Name:       v.Name,
			Number:     v.Number,
		}
		ed.Values = append(ed.Values, vd)
		if _, dup := seen[v.Number]; !dup {
			seen[v.Number] = struct{}{}
			ed.Names = append(ed.Names, vd)
		}
	}
	data.Enums = append(data.Enums, ed)
	return nil
}

// addMessage adds msg and, after it, its nested definitions
func (g *Generator) addMessage(data *fileData, pkg string, msg *schema.Message) error {
	md, err := g.message(pkg, msg)
	if err != nil {
		return wrapWithField(err, msg.Name)
	}
	data.Messages = append(data.Messages, md)

	for _, enum := range msg.NestedEnums {
		if err := g.addEnum(data, pkg, enum); err != nil {
			return wrapWithField(err, msg.Name)
		}
	}
	for _, nested := range msg.NestedTypes {
		if err := g.addMessage(data, pkg, nested); err != nil {
			return wrapWithField(err, msg.Name)
		}
	}
	return nil
}

func (g *Generator) message(pkg string, msg *schema.Message) (*messageData, error) {
	goName, ok := goTypeName(msg.FullName, pkg)
	if !ok {
		return nil, ErrForeignType
	}
	if len(msg.OneofGroups) > 0 {
		return nil, wrapWithField(fmt.Errorf("%w: oneof", ErrUnsupported), msg.OneofGroups[0].Name)
	}
	md := &messageData{GoName: goName, FullName: msg.FullName}
	names := make(map[string]struct{}, len(msg.Fields))
	numbers := make(map[int32]struct{}, len(msg.Fields))
	for _, f := range msg.Fields {
		fd, err := g.field(pkg, msg, f)
		if err != nil {
			return nil, wrapWithField(err, f.Name)
		}

		if f.Number < 1 || f.Number > int32(wire.MaxFieldNumber) {
			return nil, wrapWithField(fmt.Errorf("%w: %d", ErrFieldNumber, f.Number), f.Name)
		}
		if _, dup := numbers[f.Number]; dup {
			return nil, wrapWithField(fmt.Errorf("%w: %d used twice", ErrFieldNumber, f.Number), f.Name)
		}
		numbers[f.Number] = struct{}{}

		if _, taken := methodNames[fd.GoName]; taken {
			return nil, wrapWithField(fmt.Errorf("%w: %s is a method of every message", ErrName, fd.GoName), f.Name)
		}
		if _, dup := names[fd.GoName]; dup {
			return nil, wrapWithField(fmt.Errorf("%w: %s used twice", ErrName, fd.GoName), f.Name)
		}
		names[fd.GoName] = struct{}{}

		md.Fields = append(md.Fields, fd)
		if fd.StorageName != "" {
			md.Storage = append(md.Storage, fd)
		}
	}

	if err := g.checkRecursion(msg, map[string]bool{}); err != nil {
		return nil, err
	}
	return md, nil
}

var scalarKinds = map[schema.PrimitiveType]struct{ kind, elem string }{
	schema.TypeInt32:    {"Int32", "int32"},
	schema.TypeInt64:    {"Int64", "int64"},
	schema.TypeUint32:   {"Uint32", "uint32"},
	schema.TypeUint64:   {"Uint64", "uint64"},
	schema.TypeSint32:   {"Sint32", "int32"},
	schema.TypeSint64:   {"Sint64", "int64"},
	schema.TypeBool:     {"Bool", "bool"},
	schema.TypeFixed32:  {"Fixed32", "uint32"},
	schema.TypeFixed64:  {"Fixed64", "uint64"},
	schema.TypeSfixed32: {"Sfixed32", "int32"},
	schema.TypeSfixed64: {"Sfixed64", "int64"},
	schema.TypeFloat:    {"Float", "float32"},
	schema.TypeDouble:   {"Double", "float64"},
}

// field maps a schema field onto a field kind and, for variable-size
// fields, its inline storage
func (g *Generator) field(pkg string, msg *schema.Message, f *schema.Field) (*fieldData, error) {
	fd := &fieldData{GoName: toUpperCamel(f.Name), Number: f.Number}
	repeated := f.IsRepeated()

	var elem string
	switch f.Type.Kind {
	case schema.KindPrimitive:
		switch f.Type.PrimitiveType {
		case schema.TypeString, schema.TypeBytes:
			if repeated {
				return nil, fmt.Errorf("%w: repeated %s", ErrUnsupported, f.Type.PrimitiveType)
			}
			if f.Type.PrimitiveType == schema.TypeString {
				fd.GoType = "field.String"
			} else {
				fd.GoType = "field.Bytes"
			}
			elem = "byte"
		default:
			sk, ok := scalarKinds[f.Type.PrimitiveType]
			if !ok {
				return nil, fmt.Errorf("%w: type %q", ErrUnsupported, f.Type.PrimitiveType)
			}
			if repeated {
				fd.GoType = "field.Repeated" + sk.kind
				elem = sk.elem
			} else {
				fd.GoType = "field." + sk.kind
			}
		}
	case schema.KindEnum:
		name, ok := goTypeName(f.Type.EnumType, pkg)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrForeignType, f.Type.EnumType)
		}
		if repeated {
			fd.GoType = "field.RepeatedEnum[" + name + "]"
			elem = name
		} else {
			fd.GoType = "field.Enum[" + name + "]"
		}
	case schema.KindMessage:
		name, ok := goTypeName(f.Type.MessageType, pkg)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrForeignType, f.Type.MessageType)
		}
		if repeated {
			fd.GoType = "field.RepeatedMessage[" + name + ", *" + name + "]"
			elem = name
		} else {
			fd.GoType = name
		}
	case schema.KindMap:
		return nil, fmt.Errorf("%w: map", ErrUnsupported)
	case schema.KindGroup:
		return nil, fmt.Errorf("%w: group", ErrUnsupported)
	default:
		return nil, fmt.Errorf("unresolved type %q", f.Type.TypeName)
	}

	if elem == "" {
		return fd, nil
	}

	fallback := g.cfg.RepeatedCapacity
	switch {
	case f.Type.PrimitiveType == schema.TypeString && !repeated:
		fallback = g.cfg.StringCapacity
	case f.Type.PrimitiveType == schema.TypeBytes && !repeated:
		fallback = g.cfg.BytesCapacity
	}
	capacity := g.cfg.capacity(pkg, msg.FullName, f.Name, fallback)
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCapacity, capacity)
	}

	fd.FieldGoName = fd.GoName
	fd.StorageName = toLowerCamel(f.Name) + "Storage"
	fd.StorageType = fmt.Sprintf("[%d]%s", capacity, elem)
	return fd, nil
}

// checkRecursion fails when msg contains itself through its message fields.
// Generated messages hold their sub-messages by value, so such a type would
// have infinite size.
func (g *Generator) checkRecursion(msg *schema.Message, path map[string]bool) error {
	if path[msg.FullName] {
		return fmt.Errorf("%w: %s", ErrRecursive, msg.FullName)
	}
	path[msg.FullName] = true
	defer delete(path, msg.FullName)

	for _, f := range msg.Fields {
		if f.Type.Kind != schema.KindMessage {
			continue
		}
		sub, err := g.resolver.GetMessage(f.Type.MessageType)
		if err != nil {
			return wrapWithField(err, f.Name)
		}
		if err := g.checkRecursion(sub, path); err != nil {
			return wrapWithField(err, f.Name)
		}
	}
	return nil
}
