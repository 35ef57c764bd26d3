package logger

import (
	"fmt"
	"strings"

	"shortlink/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ log.Logger = (*ZapLogger)(nil)

// ZapLogger is a kratos log.Logger backed by zap.
type ZapLogger struct {
	log    *zap.Logger
	msgKey string
}

// NewZapLogger wraps an existing zap logger.
func NewZapLogger(zl *zap.Logger) *ZapLogger {
	return &ZapLogger{
		log:    zl.WithOptions(zap.AddCallerSkip(2)),
		msgKey: log.DefaultMessageKey,
	}
}

// New builds a zap logger from the log section of the config. Format is
// "json" (default) or "console"; level defaults to info.
func New(c *conf.Log) (*ZapLogger, error) {
	var level, format string
	if c != nil {
		level, format = c.Level, c.Format
	}

	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	var zc zap.Config
	switch strings.ToLower(format) {
	case "", "json":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	// kratos already stamps ts and caller.
	zc.EncoderConfig.TimeKey = ""
	zc.EncoderConfig.CallerKey = ""
	zc.DisableStacktrace = true

	zl, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(zl), nil
}

// Log implements log.Logger.
func (l *ZapLogger) Log(level log.Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 || len(keyvals)%2 != 0 {
		l.log.Warn(fmt.Sprint("keyvals must appear in pairs: ", keyvals))
		return nil
	}

	var msg string
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if key == l.msgKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}

	switch level {
	case log.LevelDebug:
		l.log.Debug(msg, fields...)
	case log.LevelWarn:
		l.log.Warn(msg, fields...)
	case log.LevelError:
		l.log.Error(msg, fields...)
	case log.LevelFatal:
		l.log.Fatal(msg, fields...)
	default:
		l.log.Info(msg, fields...)
	}
	return nil
}

func (l *ZapLogger) Sync() error {
	return l.log.Sync()
}

func (l *ZapLogger) Close() error {
	return l.Sync()
}
