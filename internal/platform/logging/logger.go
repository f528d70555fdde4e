// Package logging wraps zap behind key/value methods. Spans found on the
// context add trace_id and span_id to the entry.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Logger struct {
	z    *zap.Logger
	sync *sync.Once
}

var fallback atomic.Pointer[Logger]

func init() {
	fallback.Store(NewNop())
}

// New builds a logger writing to w. Command output owns stdout, so callers
// normally pass os.Stderr.
func New(w io.Writer, format string, level Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	core := zapcore.NewCore(newEncoder(format), zapcore.Lock(zapcore.AddSync(w)), level)
	// skip the wrapper method and log
	return wrap(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(LevelError)))
}

func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.MessageKey = "msg"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder

	if strings.EqualFold(strings.TrimSpace(format), FormatJSON) {
		cfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	return zapcore.NewConsoleEncoder(cfg)
}

func NewNop() *Logger {
	return wrap(zap.NewNop())
}

func wrap(z *zap.Logger) *Logger {
	return &Logger{z: z, sync: new(sync.Once)}
}

// Default is the process-wide logger used by code built without one.
func Default() *Logger {
	return fallback.Load()
}

func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	fallback.Store(logger)
}

// Sync flushes buffered entries once. Loggers derived with With share the
// flush.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	l.sync.Do(func() {
		// stderr returns EINVAL on sync for some terminals
		_ = l.z.Sync()
	})
	return nil
}

func (l *Logger) With(args ...any) *Logger {
	base := l.orDefault()
	return &Logger{z: base.z.With(fieldsOf(args)...), sync: base.sync}
}

func (l *Logger) Debug(msg string, args ...any) { l.write(context.TODO(), LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.write(context.TODO(), LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.write(context.TODO(), LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.write(context.TODO(), LevelError, msg, args) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelDebug, msg, args)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelInfo, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelWarn, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelError, msg, args)
}

func (l *Logger) orDefault() *Logger {
	if l == nil {
		return Default()
	}
	return l
}

func (l *Logger) write(ctx context.Context, level Level, msg string, args []any) {
	entry := l.orDefault().z.Check(level, msg)
	if entry == nil {
		return
	}
	fields := fieldsOf(args)
	if span := trace.SpanContextFromContext(ctx); span.IsValid() {
		fields = append(fields,
			zap.Stringer("trace_id", span.TraceID()),
			zap.Stringer("span_id", span.SpanID()),
		)
	}
	entry.Write(fields...)
}

// fieldsOf pairs args into fields. A non-string key becomes "arg" and a
// trailing key without a value is logged as null.
func fieldsOf(args []any) []zap.Field {
	fields := make([]zap.Field, 0, len(args)/2+3)
	for len(args) > 0 {
		key, ok := args[0].(string)
		if !ok || key == "" {
			key = "arg"
		}
		if len(args) == 1 {
			fields = append(fields, zap.Any(key, nil))
			break
		}
		if err, isErr := args[1].(error); isErr {
			fields = append(fields, zap.NamedError(key, err))
		} else {
			fields = append(fields, zap.Any(key, args[1]))
		}
		args = args[2:]
	}
	return fields
}

// ParseLevel accepts zap's level names plus "warning", defaulting to info.
func ParseLevel(v string) Level {
	name := strings.ToLower(strings.TrimSpace(v))
	if name == "warning" {
		return LevelWarn
	}
	var level Level
	if err := level.UnmarshalText([]byte(name)); err != nil || level > LevelError {
		return LevelInfo
	}
	return level
}
