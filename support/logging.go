package support

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func Logger(cfg Config) *zerolog.Logger {
	return NewLogger(os.Stderr, cfg)
}

func NewLogger(out io.Writer, cfg Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &logger
}
