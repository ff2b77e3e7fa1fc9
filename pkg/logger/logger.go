package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

const EnvProduction = "production"

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Opts struct {
	Env       string
	Level     string
	SentryDSN string
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// Impl is a slog logger fanned out to zerolog and, when a DSN is configured, to sentry.
// It also satisfies fx.Printer and resty.Logger.
type Impl struct {
	*slog.Logger
	sentry bool
}

var _ Logger = (*Impl)(nil)

func New(opts Opts) *Impl {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var zl zerolog.Logger
	if opts.Env == EnvProduction {
		zl = zerolog.New(w).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}).
			With().Timestamp().Logger()
	}

	level := ParseLevel(opts.Level)
	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	sentryEnabled := false
	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Env,
		})
		if err != nil {
			zl.Error().Err(err).Msg("Failed to initialize sentry, continuing without it")
		} else {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
			sentryEnabled = true
		}
	}

	return &Impl{
		Logger: slog.New(slogmulti.Fanout(handlers...)),
		sentry: sentryEnabled,
	}
}

// ParseLevel maps a LOG_LEVEL value to a slog level, falling back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Flush waits for buffered sentry events to be delivered.
func (l *Impl) Flush(timeout time.Duration) {
	if l.sentry {
		sentry.Flush(timeout)
	}
}

// Printf is used by fx for its own lifecycle events.
func (l *Impl) Printf(format string, args ...interface{}) {
	l.Logger.Debug(fmt.Sprintf(format, args...))
}

func (l *Impl) Errorf(format string, args ...interface{}) {
	l.Logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *Impl) Warnf(format string, args ...interface{}) {
	l.Logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *Impl) Debugf(format string, args ...interface{}) {
	l.Logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
