package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Environment string
	Level       string
	// File enables a rolling log file next to stderr output.
	File string
}

// New returns a console logger in development and a JSON logger elsewhere.
func New(opts Options) zerolog.Logger {
	var writers []io.Writer
	if isDevelopment(opts.Environment) {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		writers = append(writers, os.Stderr)
	}
	if opts.File != "" {
		writers = append(writers, newRollingFile(opts.File))
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(parseLevel(opts.Level, opts.Environment)).
		With().
		Timestamp().
		Str("service", "contracts").
		Logger()
}

func newRollingFile(path string) io.Writer {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 10,
		MaxAge:     30, // days
	}
}

func parseLevel(raw, env string) zerolog.Level {
	if raw != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw))); err == nil {
			return level
		}
	}
	if isDevelopment(env) {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func isDevelopment(env string) bool {
	switch strings.ToLower(env) {
	case "", "development", "dev", "local":
		return true
	default:
		return false
	}
}
