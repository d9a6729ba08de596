package main

import (
	"bytes"
	"context"
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/anirudhraja/embedproto/codegen"
)

const testmsgDir = "../../internal/testmsg"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_GeneratesTestmsg(t *testing.T) {
	out := t.TempDir()
	var stderr bytes.Buffer

	err := run(context.Background(), []string{
		"-config", filepath.Join(testmsgDir, "embedgen.toml"),
		"-I", testmsgDir,
		"-out", out,
		"testmsg.proto",
	}, &stderr)
	require.NoError(t, err, stderr.String())

	got, err := os.ReadFile(filepath.Join(out, "testmsg.embedproto.go"))
	require.NoError(t, err)
	golden, err := os.ReadFile(filepath.Join(testmsgDir, "testmsg.embedproto.go"))
	require.NoError(t, err)
	want, err := format.Source(golden)
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got))
	assert.Contains(t, stderr.String(), "generated")
}

func TestRun_ParallelFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "common.proto", `syntax = "proto3";
package fleet;
enum Fuel {
  DIESEL = 0;
  ELECTRIC = 1;
}
`)
	writeFile(t, dir, "truck.proto", `syntax = "proto3";
package fleet;
import "common.proto";
message Truck {
  string plate = 1;
  Fuel fuel = 2;
}
`)
	writeFile(t, dir, "trailer.proto", `syntax = "proto3";
package fleet;
message Trailer {
  repeated uint32 axle_loads = 1;
}
`)

	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-I", dir, "-log-level", "warn", "truck.proto", "trailer.proto", "common.proto"}, &stderr)
	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	for _, name := range []string{"truck.embedproto.go", "trailer.embedproto.go", "common.embedproto.go"} {
		src, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "package fleet\n", name)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "oneof.proto", `syntax = "proto3";
package fleet;
message Truck {
  oneof engine {
    uint32 cylinders = 1;
    uint32 cells = 2;
  }
}
`)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no_files", []string{"-I", dir}, "no .proto files given"},
		{"unknown_flag", []string{"-bogus"}, "flag provided but not defined"},
		{"missing_file", []string{"-I", dir, "absent.proto"}, "path does not exist"},
		{"bad_log_level", []string{"-log-level", "loud", "oneof.proto"}, "-log-level"},
		{"bad_config", []string{"-config", filepath.Join(dir, "embedgen.json"), "oneof.proto"}, "unsupported format"},
		{"unsupported", []string{"-I", dir, "-out", t.TempDir(), "oneof.proto"}, "error at proto path Truck.engine"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("unsupported_is_field_error", func(t *testing.T) {
		err := run(context.Background(), []string{"-I", dir, "-out", t.TempDir(), "oneof.proto"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, codegen.ErrUnsupported)
		assert.ErrorIs(t, err, &codegen.FieldError{})
	})
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "truck.proto", `syntax = "proto3";
package fleet;
message Truck {
  string plate = 1;
}
`)
	config := writeFile(t, dir, "embedgen.yaml", "package: fromconfig\nstring_capacity: 12\n")

	out := t.TempDir()
	err := run(context.Background(), []string{"-config", config, "-I", dir, "-out", out, "-package", "fromflag", "truck.proto"}, &bytes.Buffer{})
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(out, "truck.embedproto.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package fromflag\n")
	assert.Contains(t, string(src), "plateStorage [12]byte")
}

func TestLoadConfigFile_TOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "embedgen.toml", `
package = "fleet"
proto_paths = ["protos", "/usr/include"]
out = "gen"
log_level = "debug"
repeated_capacity = 3

[capacity]
"Truck.axles" = 6
`)

	opts := defaultOptions()
	require.NoError(t, loadConfigFile(path, &opts))

	assert.Equal(t, "fleet", opts.gen.Package)
	assert.Equal(t, []string{filepath.Join(dir, "protos"), "/usr/include"}, opts.protoPaths)
	assert.Equal(t, filepath.Join(dir, "gen"), opts.out)
	assert.Equal(t, zerolog.DebugLevel, opts.logLevel)
	assert.Equal(t, 3, opts.gen.RepeatedCapacity)
	assert.Equal(t, map[string]int{"Truck.axles": 6}, opts.gen.Capacity)

	// keys absent from the file keep their defaults
	def := codegen.DefaultConfig()
	assert.Equal(t, def.StringCapacity, opts.gen.StringCapacity)
	assert.Equal(t, def.BytesCapacity, opts.gen.BytesCapacity)
}

func TestLoadConfigFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "embedgen.yml", `
package: fleet
bytes_capacity: 4
capacity:
  Truck.plate: 9
`)

	opts := defaultOptions()
	require.NoError(t, loadConfigFile(path, &opts))

	assert.Equal(t, "fleet", opts.gen.Package)
	assert.Equal(t, 4, opts.gen.BytesCapacity)
	assert.Equal(t, codegen.DefaultConfig().StringCapacity, opts.gen.StringCapacity)
	assert.Equal(t, map[string]int{"Truck.plate": 9}, opts.gen.Capacity)
	assert.Empty(t, opts.out)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name, file, content, wantErr string
	}{
		{"toml_syntax", "a.toml", "package = ", "load embedgen config"},
		{"yaml_not_mapping", "b.yaml", "- fleet\n", "top level must be a mapping"},
		{"yaml_type", "c.yaml", "string_capacity: many\n", "load embedgen config"},
		{"log_level", "d.toml", `log_level = "loud"`, "parse log_level"},
		{"missing", "", "", "load embedgen config"},
		{"zero_capacity", "e.toml", "string_capacity = 0", "string_capacity must be positive"},
		{"negative_capacity", "f.yaml", "repeated_capacity: -1\n", "repeated_capacity must be positive"},
		{"zero_field_capacity", "g.yaml", "capacity:\n  Truck.plate: 0\n", "capacity of Truck.plate must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "missing.toml")
			if tt.file != "" {
				path = writeFile(t, dir, tt.file, tt.content)
			}
			opts := defaultOptions()
			err := loadConfigFile(path, &opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"EMBEDGEN_PACKAGE":           "fleet",
		"EMBEDGEN_PROTO_PATH":        "a" + string(filepath.ListSeparator) + "b",
		"EMBEDGEN_OUT":               "gen",
		"EMBEDGEN_LOG_LEVEL":         "error",
		"EMBEDGEN_STRING_CAPACITY":   "7",
		"EMBEDGEN_REPEATED_CAPACITY": "2",
	}
	opts := defaultOptions()
	require.NoError(t, applyEnv(&opts, func(k string) string { return env[k] }))

	assert.Equal(t, "fleet", opts.gen.Package)
	assert.Equal(t, []string{"a", "b"}, opts.protoPaths)
	assert.Equal(t, "gen", opts.out)
	assert.Equal(t, zerolog.ErrorLevel, opts.logLevel)
	assert.Equal(t, 7, opts.gen.StringCapacity)
	assert.Equal(t, codegen.DefaultConfig().BytesCapacity, opts.gen.BytesCapacity)
	assert.Equal(t, 2, opts.gen.RepeatedCapacity)

	env = map[string]string{"EMBEDGEN_BYTES_CAPACITY": "lots"}
	err := applyEnv(&opts, func(k string) string { return env[k] })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMBEDGEN_BYTES_CAPACITY")

	env = map[string]string{"EMBEDGEN_REPEATED_CAPACITY": "0"}
	err = applyEnv(&opts, func(k string) string { return env[k] })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMBEDGEN_REPEATED_CAPACITY must be positive")
	assert.Equal(t, 2, opts.gen.RepeatedCapacity)
}
