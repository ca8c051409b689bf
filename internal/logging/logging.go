// Package logging builds the zerolog logger used by the gridpath CLI and
// bench runner.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridpath/internal/config"
)

type Logger = zerolog.Logger

// New returns a logger writing to stderr: JSON by default, human-readable
// when cfg.Logging.Pretty is set. An unknown level falls back to info.
func New(cfg config.Config) Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(cfg config.Config, w io.Writer) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if cfg.Logging.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
