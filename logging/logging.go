// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options selects the level and the output format.
type Options struct {
	Level  string
	Pretty bool
	Writer io.Writer // defaults to stderr
}

// ParseLevel maps a level name to a zerolog level. The second result is
// false for unknown names, which map to info.
func ParseLevel(name string) (zerolog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel, true
	case "DEBUG":
		return zerolog.DebugLevel, true
	case "", "INFO":
		return zerolog.InfoLevel, true
	case "WARN", "WARNING":
		return zerolog.WarnLevel, true
	case "ERROR":
		return zerolog.ErrorLevel, true
	case "DISABLED", "OFF":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

// Setup replaces the global logger and returns it.
func Setup(opts Options) zerolog.Logger {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	level, known := ParseLevel(opts.Level)
	log.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	if !known {
		log.Warn().Str("level", opts.Level).Msg("unknown log level, using info")
	}
	return log.Logger
}
