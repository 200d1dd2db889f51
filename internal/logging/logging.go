// Package logging configures the process-wide zerolog logger used by every
// other package in this module: a package-level Logger, an Init that picks
// console-vs-JSON output, and small WithX helpers for attaching
// request-scoped fields.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. Init replaces it; until Init is
// called it defaults to zerolog's own global logger writing to stderr.
var Logger = log.Logger

// EnvVar is the environment variable consulted by InitFromEnv.
const EnvVar = "SPALHAD_LOG_LEVEL"

// Config controls Init's output shape.
type Config struct {
	// Level is one of "trace", "debug", "info", "warn", "error". Defaults
	// to "info" if empty or unrecognized.
	Level string
	// JSONOutput writes ND-JSON records instead of the human-readable
	// console writer.
	JSONOutput bool
	// Output is where records are written; defaults to os.Stderr.
	Output io.Writer
}

// Init installs cfg as the process-wide logging configuration.
func Init(cfg Config) {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSONOutput {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	Logger = zerolog.New(out).With().Timestamp().Logger()
	log.Logger = Logger
}

// InitFromEnv calls Init with a Level read from EnvVar, defaulting to
// "info" if unset.
func InitFromEnv() {
	level := os.Getenv(EnvVar)
	if level == "" {
		level = "info"
	}
	Init(Config{Level: level})
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithComponent returns a child logger tagged with a "component" field, for
// per-package logging (e.g. "bouncer", "coordinator", "storage").
func WithComponent(component string) zerolog.Logger {
	return Logger.With().Str("component", component).Logger()
}

// WithNodeID returns a child logger tagged with this node's self id.
func WithNodeID(logger zerolog.Logger, selfID int) zerolog.Logger {
	return logger.With().Int("self_id", selfID).Logger()
}
