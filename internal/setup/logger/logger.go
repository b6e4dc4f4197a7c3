package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger at the configured level. Unknown or empty
// levels fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
