package embedproto

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "embedproto").Logger()

// SetLogger replaces the logger used for runtime warnings.
// It is not safe to call concurrently with CheckVersion.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Logger returns the logger used for runtime warnings
func Logger() zerolog.Logger {
	return logger
}
