package codegen

import (
	"path/filepath"
	"strings"
)

// toUpperCamel converts snake_case to UpperCamelCase
func toUpperCamel(s string) string {
	lower := toLowerCamel(s)
	if lower == "" {
		return lower
	}
	c := lower[0]
	if c >= 'a' && c <= 'z' {
		c = c - 'a' + 'A'
	}
	return string(c) + lower[1:]
}

// toLowerCamel converts snake_case to lowerCamelCase
func toLowerCamel(s string) string {
	out := make([]byte, 0, len(s))
	upperNext := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			upperNext = true
			continue
		}
		if len(out) == 0 {
			// first rune lowercased
			if c >= 'A' && c <= 'Z' {
				c = c - 'A' + 'a'
			}
			out = append(out, c)
			upperNext = false
			continue
		}
		if upperNext {
			if c >= 'a' && c <= 'z' {
				c = c - 'a' + 'A'
			}
			upperNext = false
		}
		out = append(out, c)
	}
	return string(out)
}

// goTypeName returns the Go name of a definition of the proto package pkg.
// Nested definitions are joined with underscores: pkg.Outer.Inner is Outer_Inner.
func goTypeName(fullName, pkg string) (string, bool) {
	name := fullName
	if pkg != "" {
		if !strings.HasPrefix(fullName, pkg+".") {
			return "", false
		}
		name = strings.TrimPrefix(fullName, pkg+".")
	}
	return strings.ReplaceAll(name, ".", "_"), true
}

// goPackageName derives a Go package name from the proto package, or from the
// file name when the file has no package
func goPackageName(protoPackage, fileName string) string {
	name := protoPackage
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	}

	out := []byte(strings.ToLower(name))
	for i, c := range out {
		if !(c >= 'a' && c <= 'z' || c == '_' || i > 0 && c >= '0' && c <= '9') {
			out[i] = '_'
		}
	}
	return string(out)
}

// OutputName returns the name of the Go file generated for a .proto file
func OutputName(protoFile string) string {
	return strings.TrimSuffix(filepath.Base(protoFile), ".proto") + ".embedproto.go"
}

// methodNames are taken by the generated methods and the embedded
// field.MessageBase, so fields cannot use them
var methodNames = map[string]struct{}{
	"MessageBase":          {},
	"Serialize":            {},
	"Deserialize":          {},
	"SerializeWithID":      {},
	"DeserializeCheckType": {},
	"DeserializeFields":    {},
	"Clear":                {},
	"SetMaxValue":          {},
	"ResetCursor":          {},
	"Pending":              {},
}
