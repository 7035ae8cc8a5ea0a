package log

import (
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

var (
	global zerolog.Logger
	once   sync.Once
)

func init() {
	// Safe default before Init() is called.
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// New creates a configured zerolog.Logger writing to w.
// Logs go to stderr in the CLI so stdout carries only codes and reports.
func New(cfg Config, w io.Writer) zerolog.Logger {
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Init initialises the global logger. Call once at startup.
// It also routes stdlib log output through the global logger.
func Init(cfg Config) {
	once.Do(func() {
		global = New(cfg, os.Stderr)

		stdlog.SetFlags(0)
		stdlog.SetOutput(NewStdWriter(global.With().Str(FieldSource, "stdlog").Logger()))
	})
}

// stdWriter logs each stdlib log line as an info event, so the line is
// subject to the logger's level like any other event.
type stdWriter struct {
	logger zerolog.Logger
}

// NewStdWriter returns a writer for stdlog.SetOutput that logs through l at info level.
func NewStdWriter(l zerolog.Logger) io.Writer {
	return &stdWriter{logger: l}
}

func (w *stdWriter) Write(p []byte) (int, error) {
	w.logger.Info().Msg(strings.TrimRight(string(p), "\r\n"))
	return len(p), nil
}

// L returns the global logger.
func L() zerolog.Logger {
	return global
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// ValidLevel reports whether s names a level ParseLevel understands (empty means info).
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled", "off", "none":
		return true
	}
	return false
}
