package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"fyyur/config"
)

// New builds the process logger. Development gets a console writer, everything
// else emits JSON lines.
func New(cfg *config.Config) zerolog.Logger {
	var out io.Writer = os.Stdout
	if !cfg.IsProduction() {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || cfg.Log.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "fyyur").
		Str("env", cfg.Env).
		Logger()
}
