package eventbus

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/go-kratos/kratos/v2/log"
)

// KratosLoggerAdapter routes Watermill logs into a Kratos logger.
type KratosLoggerAdapter struct {
	logger log.Logger
	fields watermill.LogFields
}

// NewKratosLoggerAdapter creates a new Watermill logger adapter.
func NewKratosLoggerAdapter(logger log.Logger) watermill.LoggerAdapter {
	return &KratosLoggerAdapter{
		logger: log.With(logger, "module", "eventbus"),
		fields: watermill.LogFields{},
	}
}

func (l *KratosLoggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	l.log(log.LevelError, msg, err, fields)
}

func (l *KratosLoggerAdapter) Info(msg string, fields watermill.LogFields) {
	l.log(log.LevelInfo, msg, nil, fields)
}

func (l *KratosLoggerAdapter) Debug(msg string, fields watermill.LogFields) {
	l.log(log.LevelDebug, msg, nil, fields)
}

// Trace maps to debug; Kratos has no trace level.
func (l *KratosLoggerAdapter) Trace(msg string, fields watermill.LogFields) {
	l.log(log.LevelDebug, msg, nil, fields)
}

func (l *KratosLoggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &KratosLoggerAdapter{
		logger: l.logger,
		fields: l.fields.Add(fields),
	}
}

func (l *KratosLoggerAdapter) log(level log.Level, msg string, err error, fields watermill.LogFields) {
	keyvals := make([]interface{}, 0, (len(l.fields)+len(fields))*2+4)
	keyvals = append(keyvals, log.DefaultMessageKey, msg)
	for k, v := range l.fields {
		keyvals = append(keyvals, k, v)
	}
	for k, v := range fields {
		keyvals = append(keyvals, k, v)
	}
	if err != nil {
		keyvals = append(keyvals, "error", err.Error())
	}
	_ = l.logger.Log(level, keyvals...)
}
