package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/anirudhraja/embedproto/codegen"
)

type fileConfig struct {
	Package          string         `toml:"package" yaml:"package"`
	ProtoPaths       []string       `toml:"proto_paths" yaml:"proto_paths"`
	Out              string         `toml:"out" yaml:"out"`
	LogLevel         string         `toml:"log_level" yaml:"log_level"`
	StringCapacity   int            `toml:"string_capacity" yaml:"string_capacity"`
	BytesCapacity    int            `toml:"bytes_capacity" yaml:"bytes_capacity"`
	RepeatedCapacity int            `toml:"repeated_capacity" yaml:"repeated_capacity"`
	Capacity         map[string]int `toml:"capacity" yaml:"capacity"`
}

// options is the resolved configuration of one run. Sources are applied in
// order: defaults, config file, environment, flags.
type options struct {
	gen        codegen.Config
	protoPaths []string
	out        string
	logLevel   zerolog.Level
}

func defaultOptions() options {
	return options{
		gen:      codegen.DefaultConfig(),
		logLevel: zerolog.InfoLevel,
	}
}

// loadConfigFile applies the keys present in the file at path. Relative
// proto_paths and out are taken relative to the file.
func loadConfigFile(path string, opts *options) error {
	var (
		raw       fileConfig
		isDefined func(key string) bool
		err       error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		raw, isDefined, err = decodeTOML(path)
	case ".yaml", ".yml":
		raw, isDefined, err = decodeYAML(path)
	default:
		return fmt.Errorf("load embedgen config: unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("load embedgen config: %w", err)
	}

	base := filepath.Dir(path)
	if isDefined("package") {
		opts.gen.Package = strings.TrimSpace(raw.Package)
	}
	if isDefined("proto_paths") {
		opts.protoPaths = opts.protoPaths[:0]
		for _, p := range raw.ProtoPaths {
			if p = strings.TrimSpace(p); p != "" {
				opts.protoPaths = append(opts.protoPaths, relativeTo(base, p))
			}
		}
	}
	if isDefined("out") {
		opts.out = relativeTo(base, strings.TrimSpace(raw.Out))
	}
	if isDefined("log_level") {
		level, err := zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return fmt.Errorf("parse log_level: %w", err)
		}
		opts.logLevel = level
	}
	capacities := []struct {
		key string
		src int
		dst *int
	}{
		{"string_capacity", raw.StringCapacity, &opts.gen.StringCapacity},
		{"bytes_capacity", raw.BytesCapacity, &opts.gen.BytesCapacity},
		{"repeated_capacity", raw.RepeatedCapacity, &opts.gen.RepeatedCapacity},
	}
	for _, c := range capacities {
		if !isDefined(c.key) {
			continue
		}
		if c.src <= 0 {
			return fmt.Errorf("%s must be positive, got %d", c.key, c.src)
		}
		*c.dst = c.src
	}
	if isDefined("capacity") {
		for name, n := range raw.Capacity {
			if n <= 0 {
				return fmt.Errorf("capacity of %s must be positive, got %d", name, n)
			}
		}
		opts.gen.Capacity = raw.Capacity
	}
	return nil
}

func decodeTOML(path string) (fileConfig, func(string) bool, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fileConfig{}, nil, err
	}
	return raw, func(key string) bool { return meta.IsDefined(key) }, nil
}

func decodeYAML(path string) (fileConfig, func(string) bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fileConfig{}, nil, err
	}

	var raw fileConfig
	keys := map[string]bool{}
	if len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return fileConfig{}, nil, fmt.Errorf("%s: top level must be a mapping", path)
		}
		if err := root.Decode(&raw); err != nil {
			return fileConfig{}, nil, err
		}
		for i := 0; i+1 < len(root.Content); i += 2 {
			keys[root.Content[i].Value] = true
		}
	}
	return raw, func(key string) bool { return keys[key] }, nil
}

func relativeTo(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// applyEnv applies the EMBEDGEN_* variables that are set
func applyEnv(opts *options, getenv func(string) string) error {
	if v := getenv("EMBEDGEN_PACKAGE"); v != "" {
		opts.gen.Package = v
	}
	if v := getenv("EMBEDGEN_PROTO_PATH"); v != "" {
		opts.protoPaths = filepath.SplitList(v)
	}
	if v := getenv("EMBEDGEN_OUT"); v != "" {
		opts.out = v
	}
	if v := getenv("EMBEDGEN_LOG_LEVEL"); v != "" {
		level, err := zerolog.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("EMBEDGEN_LOG_LEVEL: %w", err)
		}
		opts.logLevel = level
	}

	capacities := []struct {
		name string
		dst  *int
	}{
		{"EMBEDGEN_STRING_CAPACITY", &opts.gen.StringCapacity},
		{"EMBEDGEN_BYTES_CAPACITY", &opts.gen.BytesCapacity},
		{"EMBEDGEN_REPEATED_CAPACITY", &opts.gen.RepeatedCapacity},
	}
	for _, c := range capacities {
		v := getenv(c.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		if n <= 0 {
			return fmt.Errorf("%s must be positive, got %d", c.name, n)
		}
		*c.dst = n
	}
	return nil
}
