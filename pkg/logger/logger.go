// Package logger provides the application's shared structured logger.
package logger

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Level aliases zerolog's level type.
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// Config configures the global logger.
type Config struct {
	Level      string
	Format     string // json/console
	Output     string // stdout/stderr/file
	FilePath   string
	TimeFormat string
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	}
}

// Init initializes the global logger. Safe to call more than once; only the
// first call takes effect.
func Init(cfg Config) {
	once.Do(func() {
		level := parseLevel(cfg.Level)
		zerolog.SetGlobalLevel(level)

		var output io.Writer
		switch cfg.Output {
		case "stderr":
			output = os.Stderr
		case "file":
			if cfg.FilePath != "" {
				f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
				if err == nil {
					output = f
				} else {
					output = os.Stdout
				}
			} else {
				output = os.Stdout
			}
		default:
			output = os.Stdout
		}

		if cfg.Format == "console" {
			output = zerolog.ConsoleWriter{
				Out:        output,
				TimeFormat: cfg.TimeFormat,
			}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get returns the global logger, initializing it with defaults if needed.
func Get() *zerolog.Logger {
	// Init runs at most once, so this is a no-op after an explicit Init.
	Init(DefaultConfig())
	return &logger
}

// WithContext derives a logger carrying the request id found in ctx, if any.
func WithContext(ctx context.Context) *zerolog.Logger {
	l := Get().With().Logger()
	if reqID, ok := ctx.Value("request_id").(string); ok {
		l = l.With().Str("request_id", reqID).Logger()
	}
	return &l
}

// Debug logs a debug-level event.
func Debug() *zerolog.Event {
	return Get().Debug()
}

// Info logs an info-level event.
func Info() *zerolog.Event {
	return Get().Info()
}

// Warn logs a warn-level event.
func Warn() *zerolog.Event {
	return Get().Warn()
}

// Error logs an error-level event.
func Error() *zerolog.Event {
	return Get().Error()
}

// Fatal logs a fatal-level event.
func Fatal() *zerolog.Event {
	return Get().Fatal()
}

// WithError logs an error-level event carrying err.
func WithError(err error) *zerolog.Event {
	return Get().Error().Err(err)
}

// WithField derives a logger carrying one structured field.
func WithField(key string, value interface{}) *zerolog.Logger {
	l := Get().With().Interface(key, value).Logger()
	return &l
}

// WithFields derives a logger carrying several structured fields.
func WithFields(fields map[string]interface{}) *zerolog.Logger {
	ctx := Get().With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	l := ctx.Logger()
	return &l
}

// SolveLogger is the scheduling engine's dedicated logger.
type SolveLogger struct {
	base *zerolog.Logger
}

// NewSolveLogger creates the scheduling engine's dedicated logger.
func NewSolveLogger() *SolveLogger {
	l := Get().With().Str("component", "scheduler").Logger()
	return &SolveLogger{base: &l}
}

// StartSolve logs the beginning of a solve.
func (l *SolveLogger) StartSolve(runID string, employees, days int) {
	l.base.Info().
		Str("run_id", runID).
		Int("employees", employees).
		Int("days", days).
		Msg("starting schedule solve")
}

// WeightsFallback logs that invalid objective weights were replaced by defaults.
func (l *SolveLogger) WeightsFallback(sum float64) {
	l.base.Warn().
		Float64("weights_sum", sum).
		Msg("objective weights did not sum to 1.0, falling back to defaults")
}

// SolveComplete logs the outcome of a solve.
func (l *SolveLogger) SolveComplete(runID string, duration time.Duration, status string, objective float64) {
	l.base.Info().
		Str("run_id", runID).
		Dur("duration", duration).
		Str("status", status).
		Float64("objective", objective).
		Msg("schedule solve complete")
}
