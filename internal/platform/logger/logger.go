package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

type Level int

const (
	Debug Level = iota
	Verbose
	Info
	Warn
	Error
)

// levelVerbose queda entre DEBUG (-4) e INFO (0) en la escala de slog.
const levelVerbose = slog.Level(-2)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "verbose":
		return Verbose
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Verbose:
		return "verbose"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case Debug:
		return slog.LevelDebug
	case Verbose:
		return levelVerbose
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger es lo que reciben handlers y middleware por inyección.
// Fire-and-forget: ningún método devuelve algo que el caller deba mirar.
type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Verbose(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// SlogLogger implementa Logger sobre log/slog (text o json).
type SlogLogger struct {
	l *slog.Logger
}

type Options struct {
	Level  Level
	Format Format
	App    string
	Output io.Writer // default os.Stdout
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	hopts := &slog.HandlerOptions{
		Level:       opts.Level.slogLevel(),
		ReplaceAttr: renderLevel,
	}

	var h slog.Handler
	switch opts.Format {
	case FormatJSON:
		h = slog.NewJSONHandler(out, hopts)
	default:
		h = slog.NewTextHandler(out, hopts)
	}

	l := slog.New(h)
	if app := strings.TrimSpace(opts.App); app != "" {
		l = l.With("app", app)
	}
	return &SlogLogger{l: l}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|verbose|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME=penguin-api (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

// Nop descarta todo. Útil en tests.
func Nop() Logger {
	return New(Options{Output: io.Discard, Level: Error})
}

func (s *SlogLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return s
	}
	return &SlogLogger{l: s.l.With(attrsOf(fields)...)}
}

func (s *SlogLogger) Debug(msg string, fields map[string]any)   { s.log(Debug, msg, fields) }
func (s *SlogLogger) Verbose(msg string, fields map[string]any) { s.log(Verbose, msg, fields) }
func (s *SlogLogger) Info(msg string, fields map[string]any)    { s.log(Info, msg, fields) }
func (s *SlogLogger) Warn(msg string, fields map[string]any)    { s.log(Warn, msg, fields) }
func (s *SlogLogger) Error(msg string, fields map[string]any)   { s.log(Error, msg, fields) }

func (s *SlogLogger) log(lvl Level, msg string, fields map[string]any) {
	ctx := context.Background()
	if !s.l.Enabled(ctx, lvl.slogLevel()) {
		return
	}
	s.l.Log(ctx, lvl.slogLevel(), msg, attrsOf(fields)...)
}

// attrsOf ordena las keys para salida estable (útil en tests/logs).
func attrsOf(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}

func renderLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == levelVerbose {
		a.Value = slog.StringValue("VERBOSE")
	}
	return a
}
