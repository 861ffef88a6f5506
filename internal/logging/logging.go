package logging

import (
	"context"
	"log"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
)

type LoggerCtxKey struct{}

type Logger struct {
	log *zap.Logger
}

var (
	logOnce      sync.Once
	cachedLogger *Logger
	production   bool
)

// SetProduction switches the default logger to zap's production config. It
// only has an effect before the first call to New.
func SetProduction(enabled bool) {
	production = enabled
}

// SetCustomGlobalLogger replaces the default logger. Tests pass zap.NewNop()
// or an observer core here.
func SetCustomGlobalLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}
	logOnce.Do(func() {})
	cachedLogger = &Logger{log: logger}
}

func defaultLogger() *zap.Logger {
	opts := []Option{
		zap.AddCallerSkip(1),
	}

	var logCfg zap.Config
	if production {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := logCfg.Build(opts...)
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	return logger
}

func New() *Logger {
	logOnce.Do(func() {
		cachedLogger = &Logger{log: defaultLogger()}
	})
	return cachedLogger
}

// Wrap adapts an existing zap logger.
func Wrap(logger *zap.Logger) *Logger {
	if logger == nil {
		return New()
	}
	return &Logger{log: logger}
}

func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}

	if l, ok := ctx.Value(LoggerCtxKey{}).(*Logger); ok {
		return l
	}

	return New()
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.log.Sync()
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{log: l.log.With(fields...)}
}

func (l *Logger) GetContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, LoggerCtxKey{}, l)
}
