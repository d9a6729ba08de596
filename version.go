package embedproto

import (
	"errors"
	"fmt"
)

// Version of the runtime. Generated code records the version of the generator
// that produced it and checks it against these at init time.
const (
	VersionMajor = 4
	VersionMinor = 0
	VersionPatch = 0

	Version = "4.0.0"
)

// ErrVersionMismatch is returned when generated code needs a different major
// version of the runtime
var ErrVersionMismatch = errors.New("embedproto: version mismatch")

// CheckVersion verifies that code generated for major.minor can run on this
// runtime. A different major version is an error; a different minor version
// only logs a warning.
func CheckVersion(major, minor int) error {
	if major != VersionMajor {
		return fmt.Errorf("%w: generated for %d.%d, runtime is %s", ErrVersionMismatch, major, minor, Version)
	}
	if minor != VersionMinor {
		logger.Warn().
			Int("generated_major", major).
			Int("generated_minor", minor).
			Str("runtime", Version).
			Msg("generated code and runtime differ in minor version")
	}
	return nil
}
