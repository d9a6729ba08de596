package codegen

import "text/template"

var fileTemplate = template.Must(template.New("file").Parse(fileTemplateText))

const fileTemplateText = `// Code generated by embedgen. DO NOT EDIT.
// source: {{.Source}}

package {{.Package}}

import (
{{- if .Enums}}
	"strconv"
{{end}}
	"github.com/anirudhraja/embedproto"
{{- if .Messages}}
	"github.com/anirudhraja/embedproto/field"
	"github.com/anirudhraja/embedproto/wire"
{{- end}}
)

func init() {
	if err := embedproto.CheckVersion({{.VersionMajor}}, {{.VersionMinor}}); err != nil {
		panic(err)
	}
}
{{range .Enums}}{{template "enum" .}}{{end}}
{{- range .Messages}}{{template "message" .}}{{end}}

{{- define "enum"}}
// {{.GoName}} is the enum {{.FullName}}.
type {{.GoName}} int32
{{- if .Values}}

const (
{{- range .Values}}
	{{.GoName}} {{.EnumGoName}} = {{.Number}}
{{- end}}
)
{{- end}}

func (x {{.GoName}}) String() string {
{{- if .Names}}
	switch x {
{{- range .Names}}
	case {{.GoName}}:
		return "{{.Name}}"
{{- end}}
	}
{{- end}}
	return strconv.Itoa(int(x))
}
{{end}}

{{- define "message"}}
// {{.GoName}} is the message {{.FullName}}.
type {{.GoName}} struct {
	field.MessageBase
{{- if .Fields}}
{{range .Fields}}
	{{.GoName}} {{.GoType}}
{{- end}}
{{- end}}
{{- if .Storage}}
{{range .Storage}}
	{{.StorageName}} {{.StorageType}}
{{- end}}
{{- end}}
}

// New{{.GoName}} returns an empty {{.GoName}} ready for use.
func New{{.GoName}}() *{{.GoName}} {
	m := &{{.GoName}}{}
	m.Clear()
	return m
}

func (m *{{.GoName}}) table() [{{len .Fields}}]field.Ref {
	return [{{len .Fields}}]field.Ref{
{{- range .Fields}}
		{Field: &m.{{.GoName}}, Number: {{.Number}}},
{{- end}}
	}
}

// Serialize writes the fields of m without an enclosing tag.
func (m *{{.GoName}}) Serialize(w wire.WriteBuffer) error {
	t := m.table()
	return field.SerializeFields(w, t[:])
}

// Deserialize reads fields from r into m. It can be called again with more
// bytes after wire.ErrEndOfBuffer.
func (m *{{.GoName}}) Deserialize(r wire.ReadBuffer) error {
	t := m.table()
	return m.DeserializeFields(r, t[:])
}

func (m *{{.GoName}}) SerializeWithID(number wire.FieldNumber, w wire.WriteBuffer, optional bool) error {
	return field.SerializeMessage(m, number, w, optional)
}

func (m *{{.GoName}}) DeserializeCheckType(r wire.ReadBuffer, wireType wire.WireType) error {
	return field.DeserializeMessage(m, r, wireType)
}

// Clear resets every field of m to its default.
func (m *{{.GoName}}) Clear() {
	m.ResetCursor()
{{- range .Storage}}
	m.{{.FieldGoName}}.Init(m.{{.StorageName}}[:])
{{- end}}
	t := m.table()
	field.ClearFields(t[:])
}

// SetMaxValue sets every field of m to its maximum value.
func (m *{{.GoName}}) SetMaxValue() {
	t := m.table()
	field.SetMaxFields(t[:])
}
{{end}}`
