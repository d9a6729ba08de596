package registry

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/anirudhraja/embedproto/schema"
)

// Registry holds the .proto files loaded for code generation and resolves the
// type references between them.
type Registry struct {
	// ProtoDirectories are searched in order for files and their imports.
	ProtoDirectories []string

	files    map[string]*schema.ProtoFile // resolved path -> file
	order    []string                     // resolved paths in load order
	messages map[string]*schema.Message   // fully qualified name -> message
	enums    map[string]*schema.Enum      // fully qualified name -> enum
}

// NewRegistry creates a registry that finds files in protoDirectories, or in
// the working directory when none are given.
func NewRegistry(protoDirectories ...string) *Registry {
	if len(protoDirectories) == 0 {
		protoDirectories = []string{"."}
	}
	return &Registry{ProtoDirectories: protoDirectories}
}

func (r *Registry) init() {
	if r.files == nil {
		r.files = make(map[string]*schema.ProtoFile)
	}
	if r.messages == nil {
		r.messages = make(map[string]*schema.Message)
	}
	if r.enums == nil {
		r.enums = make(map[string]*schema.Enum)
	}
}

// LoadFile loads protoFile, which is looked up in ProtoDirectories, together
// with everything it imports, and resolves all type references.
func (r *Registry) LoadFile(protoFile string) (*schema.ProtoFile, error) {
	r.init()

	paths, err := r.getAllProtoInfo(protoFile)
	if err != nil {
		return nil, err
	}
	if err := r.buildSymbolTable(); err != nil {
		return nil, fmt.Errorf("failed to build symbol table: %w", err)
	}
	return r.files[paths[0]], nil
}

// LoadSchema loads a single .proto file, or every .proto file below a
// directory. The directory becomes a search path for imports.
func (r *Registry) LoadSchema(protoPath string) error {
	r.init()

	info, err := os.Stat(protoPath)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	if !info.IsDir() {
		if !strings.HasSuffix(protoPath, ".proto") {
			return fmt.Errorf("file %s is not a .proto file", protoPath)
		}
		r.addDirectory(filepath.Dir(protoPath))
		if _, err := r.getAllProtoInfo(filepath.Base(protoPath)); err != nil {
			return fmt.Errorf("failed to load proto file: %w", err)
		}
	} else {
		r.addDirectory(protoPath)
		err = filepath.WalkDir(protoPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			// Skip directories and non-proto files
			if d.IsDir() || !strings.HasSuffix(path, ".proto") {
				return nil
			}

			rel, err := filepath.Rel(protoPath, path)
			if err != nil {
				return err
			}
			if _, err := r.getAllProtoInfo(filepath.ToSlash(rel)); err != nil {
				return fmt.Errorf("failed to load proto file %s: %w", path, err)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to walk directory: %w", err)
		}
	}

	if err := r.buildSymbolTable(); err != nil {
		return fmt.Errorf("failed to build symbol table: %w", err)
	}
	return nil
}

func (r *Registry) addDirectory(dir string) {
	if !slices.Contains(r.ProtoDirectories, dir) {
		r.ProtoDirectories = append([]string{dir}, r.ProtoDirectories...)
	}
}

// buildSymbolTable registers every definition by its fully qualified name and
// then resolves the named field types against them
func (r *Registry) buildSymbolTable() error {
	clear(r.messages)
	clear(r.enums)

	// Pass 1: Register all message and enum names
	for _, path := range r.order {
		if err := r.registerNames(r.files[path]); err != nil {
			return err
		}
	}

	entities := make(map[string]struct{}, len(r.messages)+len(r.enums))
	for name := range r.messages {
		entities[name] = struct{}{}
	}
	for name := range r.enums {
		entities[name] = struct{}{}
	}

	// Pass 2: Resolve field types
	for _, path := range r.order {
		for _, msg := range r.files[path].Messages {
			if err := r.resolveMessage(msg, entities); err != nil {
				return fmt.Errorf("%s: %w", r.files[path].Name, err)
			}
		}
	}
	return nil
}

// registerNames registers the messages and enums of a file
func (r *Registry) registerNames(protoFile *schema.ProtoFile) error {
	for _, msg := range protoFile.Messages {
		if err := r.registerMessage(msg); err != nil {
			return err
		}
	}
	for _, enum := range protoFile.Enums {
		if err := r.registerEnum(enum); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) registerMessage(msg *schema.Message) error {
	if _, exists := r.messages[msg.FullName]; exists {
		return fmt.Errorf("duplicate definition of %s", msg.FullName)
	}
	r.messages[msg.FullName] = msg

	// Register nested types
	for _, nested := range msg.NestedTypes {
		if err := r.registerMessage(nested); err != nil {
			return err
		}
	}
	for _, nested := range msg.NestedEnums {
		if err := r.registerEnum(nested); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) registerEnum(enum *schema.Enum) error {
	if _, exists := r.enums[enum.FullName]; exists {
		return fmt.Errorf("duplicate definition of %s", enum.FullName)
	}
	r.enums[enum.FullName] = enum
	return nil
}

// resolveMessage turns the named field types of msg and its nested messages
// into message or enum references
func (r *Registry) resolveMessage(msg *schema.Message, entities map[string]struct{}) error {
	resolve := func(t *schema.FieldType) error {
		if t == nil || t.Kind != schema.KindNamed {
			return nil
		}
		name, err := getReferencedType(t.TypeName, msg.FullName, entities)
		if err != nil {
			return err
		}
		if _, ok := r.messages[name]; ok {
			t.Kind, t.MessageType = schema.KindMessage, name
		} else {
			t.Kind, t.EnumType = schema.KindEnum, name
		}
		return nil
	}

	for _, f := range msg.Fields {
		if err := resolve(&f.Type); err != nil {
			return fmt.Errorf("field %s.%s: %w", msg.FullName, f.Name, err)
		}
		if err := resolve(f.Type.MapValue); err != nil {
			return fmt.Errorf("field %s.%s: %w", msg.FullName, f.Name, err)
		}
	}
	for _, oneof := range msg.OneofGroups {
		for _, f := range oneof.Fields {
			if err := resolve(&f.Type); err != nil {
				return fmt.Errorf("field %s.%s: %w", msg.FullName, f.Name, err)
			}
		}
	}
	for _, nested := range msg.NestedTypes {
		if err := r.resolveMessage(nested, entities); err != nil {
			return err
		}
	}
	return nil
}

// Files returns the loaded files in load order
func (r *Registry) Files() []*schema.ProtoFile {
	files := make([]*schema.ProtoFile, 0, len(r.order))
	for _, path := range r.order {
		files = append(files, r.files[path])
	}
	return files
}

// GetMessage retrieves a message definition by name
func (r *Registry) GetMessage(name string) (*schema.Message, error) {
	if msg, exists := r.messages[name]; exists {
		return msg, nil
	}

	// Try without package prefix
	for _, fullName := range r.ListMessages() {
		if strings.HasSuffix(fullName, "."+name) {
			return r.messages[fullName], nil
		}
	}

	return nil, fmt.Errorf("message not found: %s", name)
}

// GetEnum retrieves an enum definition by name
func (r *Registry) GetEnum(name string) (*schema.Enum, error) {
	if enum, exists := r.enums[name]; exists {
		return enum, nil
	}

	// Try without package prefix
	for _, fullName := range r.ListEnums() {
		if strings.HasSuffix(fullName, "."+name) {
			return r.enums[fullName], nil
		}
	}

	return nil, fmt.Errorf("enum not found: %s", name)
}

// ListMessages returns all registered message names, sorted
func (r *Registry) ListMessages() []string {
	names := make([]string, 0, len(r.messages))
	for name := range r.messages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ListEnums returns all registered enum names, sorted
func (r *Registry) ListEnums() []string {
	names := make([]string, 0, len(r.enums))
	for name := range r.enums {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
