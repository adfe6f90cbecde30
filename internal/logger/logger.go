package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

// New builds a JSON zap logger for the given level (debug|info|warn|error).
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// GormLevel maps the application log level onto gorm's logger levels.
func GormLevel(level string) gormlogger.LogLevel {
	switch parseLevel(level) {
	case zapcore.DebugLevel:
		return gormlogger.Info
	case zapcore.InfoLevel, zapcore.WarnLevel:
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}

func parseLevel(level string) zapcore.Level {
	l := zapcore.InfoLevel
	if err := l.Set(strings.ToLower(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}
