package codegen

import "strings"

// Config controls the generated code. Capacities bound the storage generated
// inline in each message, since generated messages never allocate.
type Config struct {
	// Package is the Go package name of the generated files. Empty derives it
	// from the proto package.
	Package string

	// Default capacities for fields without an entry in Capacity. They must be
	// positive wherever a field falls back to them.
	StringCapacity   int
	BytesCapacity    int
	RepeatedCapacity int

	// Capacity overrides the capacity of single fields. Keys are the message
	// name, relative to the proto package or fully qualified, and the field
	// name: "Device.readings".
	Capacity map[string]int
}

// DefaultConfig returns the capacities used when none are configured
func DefaultConfig() Config {
	return Config{
		StringCapacity:   32,
		BytesCapacity:    32,
		RepeatedCapacity: 8,
	}
}

// capacity returns the configured capacity of a field of the message fullName
func (c Config) capacity(pkg, fullName, fieldName string, fallback int) int {
	if n, ok := c.Capacity[fullName+"."+fieldName]; ok {
		return n
	}
	if pkg != "" {
		if n, ok := c.Capacity[strings.TrimPrefix(fullName, pkg+".")+"."+fieldName]; ok {
			return n
		}
	}
	return fallback
}
