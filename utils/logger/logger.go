package logger

import (
	"context"

	"github.com/muhammadheryan/watch-storefront/constant"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "watch-storefront"

var (
	globalLogger *zap.Logger
	level        = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Init builds the global logger. Production uses JSON output, anything else
// the colored console encoder. levelName overrides the environment default
// when it parses as a zap level.
func Init(environment, levelName string) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level.SetLevel(config.Level.Level())
	if levelName != "" {
		if err := level.UnmarshalText([]byte(levelName)); err != nil {
			return err
		}
	}
	config.Level = level
	config.InitialFields = map[string]interface{}{"service": serviceName}

	l, err := config.Build()
	if err != nil {
		return err
	}
	globalLogger = l

	return nil
}

// Replace swaps the global logger, mostly for tests observing log output.
func Replace(l *zap.Logger) {
	globalLogger = l
}

// Level reports the level the global logger currently writes at.
func Level() zapcore.Level {
	return level.Level()
}

// Get returns the global logger
func Get() *zap.Logger {
	if globalLogger == nil {
		globalLogger = zap.NewNop()
	}
	return globalLogger
}

// Ctx returns the global logger tagged with the request id carried by ctx.
func Ctx(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return Get()
	}
	if id, ok := ctx.Value(constant.RequestIDKey).(string); ok && id != "" {
		return Get().With(zap.String("request_id", id))
	}
	return Get()
}

// Close flushes any buffered entries.
func Close() error {
	if globalLogger == nil {
		return nil
	}
	return globalLogger.Sync()
}

func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

// Fatal logs and exits the process.
func Fatal(msg string, fields ...zap.Field) {
	Get().Fatal(msg, fields...)
}
