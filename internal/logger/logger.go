// Package logger builds the zerolog logger shared by the server and the seed tool.
package logger

import (
	"os"
	"time"

	"cardpay/internal/config"

	"github.com/rs/zerolog"
)

// New returns a logger tagged with the service name. Unknown levels fall back to info.
func New(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var l zerolog.Logger
	if cfg.Pretty {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		l = zerolog.New(os.Stdout)
	}

	return l.With().
		Timestamp().
		Str("service", "cardpay").
		Logger()
}
