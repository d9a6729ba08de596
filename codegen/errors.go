package codegen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupported is returned for schema constructs that have no fixed-size
	// representation: maps, oneofs, groups, and repeated strings or bytes.
	ErrUnsupported = errors.New("unsupported")
	// ErrCapacity is returned when a string, bytes or repeated field has no
	// positive capacity.
	ErrCapacity = errors.New("capacity must be positive")
	// ErrRecursive is returned for a message that contains itself.
	ErrRecursive = errors.New("message contains itself")
	// ErrName is returned for a field whose Go name is taken.
	ErrName = errors.New("name conflict")
	// ErrFieldNumber is returned for a field number that is out of range or used twice.
	ErrFieldNumber = errors.New("invalid field number")
	// ErrForeignType is returned for a reference to a type outside the generated package.
	ErrForeignType = errors.New("type belongs to another package")
)

// FieldError represents a generation error with a message/field path.
type FieldError struct {
	FieldPath []string // e.g., ["Device", "Reading", "unit"]
	Err       error    // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("error at proto path %s: %v", strings.Join(e.FieldPath, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// wrapWithField prefixes the path of err with name
func wrapWithField(err error, name string) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{
			FieldPath: append([]string{name}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{name},
		Err:       err,
	}
}
