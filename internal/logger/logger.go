// internal/logger/logger.go
// Logger terstruktur (zap) dari LOG_LEVEL / LOG_FORMAT

package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger. format is "json" (default) or "console".
// outputs defaults to stdout; the MCP stdio server passes "stderr".
func New(level, format string, outputs ...string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}

	encoding := "json"
	if strings.EqualFold(format, "console") {
		encoding = "console"
	}

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}
	zc.EncoderConfig.TimeKey = "@t"
	zc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	if encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return zc.Build()
}

// Must seperti New tapi jatuh ke zap.NewNop() kalau gagal.
func Must(level, format string, outputs ...string) *zap.Logger {
	l, err := New(level, format, outputs...)
	if err != nil {
		return zap.NewNop()
	}
	return l
}
