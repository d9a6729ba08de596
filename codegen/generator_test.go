package codegen

import (
	"errors"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudhraja/embedproto/registry"
	"github.com/anirudhraja/embedproto/schema"
)

// testmsgConfig matches internal/testmsg/embedgen.toml
func testmsgConfig() Config {
	return Config{
		Package:          "testmsg",
		StringCapacity:   16,
		BytesCapacity:    16,
		RepeatedCapacity: 8,
		Capacity: map[string]int{
			"SimpleTypesV2.extra_bytes": 8,
			"Nested.children":           2,
			"Nested.modes":              4,
		},
	}
}

func TestGenerate_Golden(t *testing.T) {
	reg := registry.NewRegistry("../internal/testmsg")
	file, err := reg.LoadFile("testmsg.proto")
	require.NoError(t, err)

	got, err := New(testmsgConfig(), reg).Generate(file)
	require.NoError(t, err)

	golden, err := os.ReadFile("../internal/testmsg/testmsg.embedproto.go")
	require.NoError(t, err)
	want, err := format.Source(golden)
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got))
}

func TestGenerate_FullyQualifiedCapacity(t *testing.T) {
	reg := registry.NewRegistry("../internal/testmsg")
	file, err := reg.LoadFile("testmsg.proto")
	require.NoError(t, err)

	cfg := testmsgConfig()
	cfg.Capacity = map[string]int{"testmsg.Nested.name": 5}
	got, err := New(cfg, reg).Generate(file)
	require.NoError(t, err)

	assert.Contains(t, string(got), "nameStorage     [5]byte")
	assert.Contains(t, string(got), "childrenStorage [8]SimpleTypes")
}

// mapResolver resolves the messages it was built from
type mapResolver map[string]*schema.Message

func (r mapResolver) GetMessage(name string) (*schema.Message, error) {
	if m, ok := r[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("message not found: %s", name)
}

func newResolver(msgs ...*schema.Message) mapResolver {
	r := mapResolver{}
	var add func(m *schema.Message)
	add = func(m *schema.Message) {
		r[m.FullName] = m
		for _, n := range m.NestedTypes {
			add(n)
		}
	}
	for _, m := range msgs {
		add(m)
	}
	return r
}

func primitive(name string, number int32, t schema.PrimitiveType) *schema.Field {
	return &schema.Field{
		Name:   name,
		Number: number,
		Label:  schema.LabelOptional,
		Type:   schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: t, TypeName: string(t)},
	}
}

func messageField(name string, number int32, fullName string) *schema.Field {
	return &schema.Field{
		Name:   name,
		Number: number,
		Label:  schema.LabelOptional,
		Type:   schema.FieldType{Kind: schema.KindMessage, TypeName: fullName, MessageType: fullName},
	}
}

func repeated(f *schema.Field) *schema.Field {
	f.Label = schema.LabelRepeated
	return f
}

func generate(t *testing.T, cfg Config, msgs ...*schema.Message) ([]byte, error) {
	t.Helper()
	file := &schema.ProtoFile{
		Name:     "sensor.proto",
		Package:  "sensor",
		Syntax:   "proto3",
		Messages: msgs,
	}
	return New(cfg, newResolver(msgs...)).Generate(file)
}

func TestGenerate_NestedDefinitions(t *testing.T) {
	state := &schema.Enum{
		Name:     "State",
		FullName: "sensor.Device.State",
		Values: []*schema.EnumValue{
			{Name: "OFF", Number: 0},
			{Name: "ON", Number: 1},
			{Name: "RUNNING", Number: 1},
		},
	}
	reading := &schema.Message{
		Name:     "Reading",
		FullName: "sensor.Device.Reading",
		Fields:   []*schema.Field{primitive("value", 1, schema.TypeDouble)},
	}
	device := &schema.Message{
		Name:     "Device",
		FullName: "sensor.Device",
		Fields: []*schema.Field{
			primitive("serial_number", 1, schema.TypeString),
			{
				Name:   "state",
				Number: 2,
				Label:  schema.LabelOptional,
				Type:   schema.FieldType{Kind: schema.KindEnum, TypeName: "State", EnumType: "sensor.Device.State"},
			},
			repeated(messageField("readings", 3, "sensor.Device.Reading")),
			repeated(primitive("samples", 4, schema.TypeFloat)),
		},
		NestedTypes: []*schema.Message{reading},
		NestedEnums: []*schema.Enum{state},
	}

	src, err := generate(t, DefaultConfig(), device)
	require.NoError(t, err)
	code := string(src)

	_, err = parser.ParseFile(token.NewFileSet(), "sensor.embedproto.go", src, parser.AllErrors)
	require.NoError(t, err)

	assert.Contains(t, code, "package sensor\n")
	assert.Contains(t, code, "type Device_State int32")
	assert.Contains(t, code, "Device_State_RUNNING Device_State = 1")
	// aliases share the name of the first value
	assert.Equal(t, 1, strings.Count(code, "case Device_State_"+"ON:"))
	assert.NotContains(t, code, "case Device_State_RUNNING:")
	assert.Contains(t, code, "type Device_Reading struct")
	assert.Contains(t, code, "Readings     field.RepeatedMessage[Device_Reading, *Device_Reading]")
	assert.Contains(t, code, "State        field.Enum[Device_State]")
	assert.Contains(t, code, "serialNumberStorage [32]byte")
	assert.Contains(t, code, "readingsStorage     [8]Device_Reading")
	assert.Contains(t, code, "samplesStorage      [8]float32")
	assert.Contains(t, code, "m.Samples.Init(m.samplesStorage[:])")

	// nested messages follow their parent
	assert.Less(t, strings.Index(code, "type Device struct"), strings.Index(code, "type Device_Reading struct"))
}

func TestGenerate_EmptyMessage(t *testing.T) {
	src, err := generate(t, DefaultConfig(), &schema.Message{Name: "Ping", FullName: "sensor.Ping"})
	require.NoError(t, err)

	code := string(src)
	assert.Contains(t, code, "func (m *Ping) table() [0]field.Ref {")
	assert.NotContains(t, code, "\"strconv\"")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		capacity map[string]int
		msgs     func() []*schema.Message
		wantErr error
		path    []string
	}{
		{
			name: "repeated_string",
			msgs: func() []*schema.Message {
				return []*schema.Message{{
					Name: "Device", FullName: "sensor.Device",
					Fields: []*schema.Field{repeated(primitive("names", 1, schema.TypeString))},
				}}
			},
			wantErr: ErrUnsupported,
			path:    []string{"Device", "names"},
		},
		{
			name: "map",
			msgs: func() []*schema.Message {
				key := schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString}
				return []*schema.Message{{
					Name: "Device", FullName: "sensor.Device",
					Fields: []*schema.Field{{
						Name: "labels", Number: 1, Label: schema.LabelRepeated,
						Type: schema.FieldType{Kind: schema.KindMap, MapKey: &key, MapValue: &key},
					}},
				}}
			},
			wantErr: ErrUnsupported,
			path:    []string{"Device", "labels"},
		},
		{
			name: "oneof",
			msgs: func() []*schema.Message {
				return []*schema.Message{{
					Name: "Device", FullName: "sensor.Device",
					OneofGroups: []*schema.Oneof{{
						Name:   "source",
						Fields: []*schema.Field{primitive("usb", 1, schema.TypeBool)},
					}},
				}}
			},
			wantErr: ErrUnsupported,
			path:    []string{"Device", "source"},
		},
		{
			name:     "zero_capacity",
			capacity: map[string]int{"Device.name": 0},
			msgs: func() []*schema.Message {
				return []*schema.Message{{
					Name: "Device", FullName: "sensor.Device",
					Fields: []*schema.Field{primitive("name", 1, schema.TypeString)},
				}}
			},
			wantErr: ErrCapacity,
			path:    []string{"Device", "name"},
		},
		{
			name: "field_number_zero",
			msgs: func() []*schema.Message {
				return []*schema.Message{{
					Name: "Device", FullName: "sensor.Device",
					Fields: []*schema.Field{primitive("id", 0, schema.TypeUint32)},
				}}
			},
			wantErr: ErrFieldNumber,
			path:    []string{"Device", "id"},
		},
		{
			name: "duplicate_field_number",
			msgs: func() []*schema.Message {
				return []*schema.Message{{
					Name: "Device", FullName: "sensor.Device",
					Fields: []*schema.Field{
						primitive("id", 1, schema.TypeUint32),
						primitive("rev", 1, schema.TypeUint32),
					},
				}}
			},
			wantErr: ErrFieldNumber,
			path:    []string{"Device", "rev"},
		},
		{
			name: "reserved_name",
			msgs: func() []*schema.Message {
				return []*schema.Message{{
					Name: "Device", FullName: "sensor.Device",
					Fields: []*schema.Field{primitive("clear", 1, schema.TypeBool)},
				}}
			},
			wantErr: ErrName,
			path:    []string{"Device", "clear"},
		},
		{
			name: "duplicate_go_name",
			msgs: func() []*schema.Message {
				return []*schema.Message{{
					Name: "Device", FullName: "sensor.Device",
					Fields: []*schema.Field{
						primitive("serial_no", 1, schema.TypeUint32),
						primitive("serialNo", 2, schema.TypeUint32),
					},
				}}
			},
			wantErr: ErrName,
			path:    []string{"Device", "serialNo"},
		},
		{
			name: "foreign_type",
			msgs: func() []*schema.Message {
				return []*schema.Message{{
					Name: "Device", FullName: "sensor.Device",
					Fields: []*schema.Field{messageField("at", 1, "google.protobuf.Timestamp")},
				}}
			},
			wantErr: ErrForeignType,
			path:    []string{"Device", "at"},
		},
		{
			name: "recursive",
			msgs: func() []*schema.Message {
				return []*schema.Message{
					{
						Name: "Node", FullName: "sensor.Node",
						Fields: []*schema.Field{messageField("next", 1, "sensor.Link")},
					},
					{
						Name: "Link", FullName: "sensor.Link",
						Fields: []*schema.Field{messageField("node", 1, "sensor.Node")},
					},
				}
			},
			wantErr: ErrRecursive,
			path:    []string{"Node", "next", "node"},
		},
		{
			name: "recursive_nested",
			msgs: func() []*schema.Message {
				inner := &schema.Message{
					Name: "Inner", FullName: "sensor.Outer.Inner",
					Fields: []*schema.Field{repeated(messageField("self", 1, "sensor.Outer.Inner"))},
				}
				return []*schema.Message{{
					Name: "Outer", FullName: "sensor.Outer",
					NestedTypes: []*schema.Message{inner},
				}}
			},
			wantErr: ErrRecursive,
			path:    []string{"Outer", "Inner", "self"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Capacity = tt.capacity
			_, err := generate(t, cfg, tt.msgs()...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, &FieldError{})

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.path, fe.FieldPath)
		})
	}
}

func TestGenerate_ZeroDefaultCapacity(t *testing.T) {
	device := &schema.Message{
		Name:     "Device",
		FullName: "sensor.Device",
		Fields: []*schema.Field{
			primitive("id", 1, schema.TypeUint32),
			primitive("name", 2, schema.TypeString),
		},
	}

	cfg := DefaultConfig()
	cfg.StringCapacity = 0
	_, err := generate(t, cfg, device)
	require.ErrorIs(t, err, ErrCapacity)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"Device", "name"}, fe.FieldPath)

	// the zero value configures no capacity at all
	_, err = generate(t, Config{}, device)
	require.ErrorIs(t, err, ErrCapacity)
}

func TestGenerate_ParsedProto(t *testing.T) {
	dir := t.TempDir()
	proto := `syntax = "proto3";
package fleet.v1;

message Truck {
  message Axle {
    uint32 load = 1;
  }
  enum Fuel {
    DIESEL = 0;
    ELECTRIC = 1;
  }
  string plate = 1;
  repeated Axle axles = 2;
  Fuel fuel = 3;
  repeated sint64 odometer = 4;
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "truck.proto"), []byte(proto), 0o644))

	reg := registry.NewRegistry(dir)
	file, err := reg.LoadFile("truck.proto")
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Capacity = map[string]int{"Truck.axles": 6}
	src, err := New(cfg, reg).Generate(file)
	require.NoError(t, err)

	code := string(src)
	assert.Contains(t, code, "// source: truck.proto")
	assert.Contains(t, code, "package v1\n")
	assert.Contains(t, code, "// Truck is the message fleet.v1.Truck.")
	assert.Contains(t, code, "Axles    field.RepeatedMessage[Truck_Axle, *Truck_Axle]")
	assert.Contains(t, code, "Fuel     field.Enum[Truck_Fuel]")
	assert.Contains(t, code, "Odometer field.RepeatedSint64")
	assert.Contains(t, code, "axlesStorage    [6]Truck_Axle")
	assert.Contains(t, code, "Truck_Fuel_ELECTRIC Truck_Fuel = 1")
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "truck.embedproto.go", OutputName("fleet/v1/truck.proto"))
}

func TestNames(t *testing.T) {
	tests := []struct {
		in, upper, lower string
	}{
		{"serial_number", "SerialNumber", "serialNumber"},
		{"a_int32", "AInt32", "aInt32"},
		{"Plate", "Plate", "plate"},
		{"x", "X", "x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.upper, toUpperCamel(tt.in), tt.in)
		assert.Equal(t, tt.lower, toLowerCamel(tt.in), tt.in)
	}

	assert.Equal(t, "v1", goPackageName("fleet.v1", "truck.proto"))
	assert.Equal(t, "truck_log", goPackageName("", "truck-log.proto"))
}
