package commands

import (
	"io"
	"maps"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger implements web3api.Logger on top of zap.
type zapLogger struct {
	logger *zap.Logger
}

// newLogger builds a console logger writing to w. Verbose mode logs at debug
// level, otherwise only warnings and errors are shown.
func newLogger(w io.Writer, verbose bool) *zapLogger {
	encoderConfig := zapcore.EncoderConfig{
		CallerKey:      "C",
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		LevelKey:       "L",
		MessageKey:     "M",
		NameKey:        "N",
		TimeKey:        "T",
	}

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)

	return &zapLogger{logger: zap.New(core).Named("web3api")}
}

func (l *zapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, toZapFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, toZapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, toZapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, toZapFields(fields)...)
}

// Sync flushes buffered entries.
func (l *zapLogger) Sync() {
	_ = l.logger.Sync()
}

// toZapFields converts the field map in key order so output is stable.
func toZapFields(fields map[string]interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		zapFields = append(zapFields, zap.Any(key, fields[key]))
	}

	return zapFields
}
